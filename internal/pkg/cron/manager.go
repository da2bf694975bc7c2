package cron

import (
	"Blogicum/internal/job"
	"context"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	mediaCleanupJob *job.MediaCleanupJob
}

func NewCronManager(mediaCleanupJob *job.MediaCleanupJob) *Manager {
	return &Manager{
		engine: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		mediaCleanupJob: mediaCleanupJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@hourly", s.mediaCleanupJob); err != nil {
		return err
	}
	return nil
}

// Entries 已注册的任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

// Run 注册并启动任务，ctx 结束后停止调度并等待执行中的任务完成
func (s *Manager) Run(ctx context.Context) error {
	if err := s.RegisterJobs(); err != nil {
		return err
	}
	s.engine.Start()
	for _, entry := range s.engine.Entries() {
		log.Info("Cron 任务已调度", "entry_id", entry.ID, "next", entry.Next)
	}

	<-ctx.Done()
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
	return nil
}
