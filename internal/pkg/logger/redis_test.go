package logger

import (
	"bytes"
	"context"
	"errors"
	log "log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestDescribeCmdMasksSecrets(t *testing.T) {
	ctx := context.Background()

	revoke := redis.NewStatusCmd(ctx, "set", "token:blacklist:sig-abc", 1, "ex", 3600)
	assert.Equal(t, "set token:blacklist:*** 1 ex 3600", describeCmd(revoke))

	pending := redis.NewIntCmd(ctx, "hset", "media:temp", "post_images/a.jpg", `{"user_id":1}`)
	assert.Equal(t, "hset media:temp post_images/a.jpg ***", describeCmd(pending))

	auth := redis.NewStatusCmd(ctx, "auth", "secret")
	assert.Equal(t, "auth ***", describeCmd(auth))
}

func TestRedisHookReportsErrorsAndSlowCommands(t *testing.T) {
	var buf bytes.Buffer
	hook := &RedisLoggerHook{slow: 50 * time.Millisecond, logger: log.New(log.NewJSONHandler(&buf, nil))}
	ctx := context.Background()
	cmd := redis.NewStringCmd(ctx, "hget", "media:temp", "k")

	miss := hook.ProcessHook(func(context.Context, redis.Cmder) error { return redis.Nil })
	assert.ErrorIs(t, miss(ctx, cmd), redis.Nil)
	assert.Empty(t, buf.String())

	failing := hook.ProcessHook(func(context.Context, redis.Cmder) error { return errors.New("boom") })
	assert.Error(t, failing(ctx, cmd))
	assert.Contains(t, buf.String(), "Redis Error")
	buf.Reset()

	slow := hook.ProcessPipelineHook(func(context.Context, []redis.Cmder) error {
		time.Sleep(60 * time.Millisecond)
		return nil
	})
	assert.NoError(t, slow(ctx, []redis.Cmder{cmd, cmd}))
	assert.Contains(t, buf.String(), "Redis Pipeline Slow")
	assert.Contains(t, buf.String(), `"cmd_count":2`)
}
