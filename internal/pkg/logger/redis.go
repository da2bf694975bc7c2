package logger

import (
	"Blogicum/internal/pkg/consts"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisSlow = 100 * time.Millisecond

const maskedArg = "***"

// RedisLoggerHook 只记录失败与慢命令，令牌签名和上传元数据不落日志
type RedisLoggerHook struct {
	slow   time.Duration
	logger *log.Logger
}

func NewRedisLogger(slow time.Duration) *RedisLoggerHook {
	if slow <= 0 {
		slow = defaultRedisSlow
	}
	return &RedisLoggerHook{slow: slow, logger: log.Default()}
}

func (s *RedisLoggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		start := time.Now()
		conn, err := next(ctx, network, addr)
		if err != nil {
			s.logger.ErrorContext(ctx, "Redis Dial Error",
				log.String("addr", addr),
				log.Duration("latency", time.Since(start)),
				log.Any("err", err),
			)
		}
		return conn, err
	}
}

func (s *RedisLoggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		s.report(ctx, "Redis", []redis.Cmder{cmd}, time.Since(start), err)
		return err
	}
}

func (s *RedisLoggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		s.report(ctx, "Redis Pipeline", cmds, time.Since(start), err)
		return err
	}
}

func (s *RedisLoggerHook) report(ctx context.Context, prefix string, cmds []redis.Cmder, elapsed time.Duration, err error) {
	if ignorableRedisError(err) {
		err = nil
	}
	if err == nil && elapsed < s.slow {
		return
	}

	described := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		described = append(described, describeCmd(cmd))
	}
	fields := []any{
		log.Int("cmd_count", len(cmds)),
		log.String("commands", strings.Join(described, "; ")),
		log.Duration("latency", elapsed),
	}

	if err != nil {
		s.logger.ErrorContext(ctx, prefix+" Error", append(fields, log.Any("err", err))...)
		return
	}
	s.logger.WarnContext(ctx, prefix+" Slow", fields...)
}

// ignorableRedisError 键不存在与旧版本不支持 CLIENT SETINFO 不算错误
func ignorableRedisError(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return true
	}
	msg := err.Error()
	return msg == "ERR no such key" || strings.Contains(msg, "setinfo")
}

// describeCmd 渲染命令，遮蔽黑名单令牌签名、上传元数据和认证参数
func describeCmd(cmd redis.Cmder) string {
	name := cmd.Name()
	args := cmd.Args()
	parts := make([]string, 0, len(args))
	for i, arg := range args {
		text := fmt.Sprint(arg)
		switch {
		case i == 0:
		case name == "auth" || name == "hello":
			text = maskedArg
		case strings.HasPrefix(text, consts.TokenBlacklistKey):
			text = consts.TokenBlacklistKey + maskedArg
		case name == "hset" && i >= 3 && i%2 == 1:
			text = maskedArg
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}
