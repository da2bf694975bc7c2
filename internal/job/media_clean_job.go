package job

import (
	"Blogicum/internal/service"
	"context"
	log "log/slog"
	"time"
)

// MediaExpiration 上传后超过该时长仍未被引用的图片会被回收
const MediaExpiration = 24 * time.Hour

type MediaCleanupJob struct {
	mediaSvc service.MediaService
	timeout  time.Duration
}

func NewMediaCleanupJob(mediaSvc service.MediaService) *MediaCleanupJob {
	return &MediaCleanupJob{
		mediaSvc: mediaSvc,
		timeout:  5 * time.Minute,
	}
}

func (s *MediaCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	log.Info("start media cleanup job")

	count, err := s.mediaSvc.CleanupPending(ctx, MediaExpiration)
	if err != nil {
		log.Error("media cleanup job failed", "err", err)
		return
	}
	if count > 0 {
		log.Info("media cleanup job finished", "cleaned_count", count)
	}
}
