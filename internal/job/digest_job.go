package job

import (
	"Inkstone/internal/pkg/logger"
	"Inkstone/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// DigestJob 每日定时生成新闻摘要
type DigestJob struct {
	genSvc service.GenerationService
}

func NewDigestJob(genSvc service.GenerationService) *DigestJob {
	return &DigestJob{
		genSvc: genSvc,
	}
}

func (s *DigestJob) Run() {
	traceID := "job-digest-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	result := s.genSvc.RunDigest(ctx, false)
	switch {
	case result.Skipped:
		log.InfoContext(ctx, "DigestJob skipped, digest already exists", "title", result.PostTitle)
	case !result.Success:
		log.WarnContext(ctx, "DigestJob finished without new post", "message", result.Message)
	default:
		log.InfoContext(ctx, "DigestJob finished", "title", result.PostTitle)
	}
}
