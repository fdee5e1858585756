package job

import (
	"Inkstone/internal/pkg/logger"
	"Inkstone/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// SimplePostJob 定时生成随机话题文章
type SimplePostJob struct {
	genSvc service.GenerationService
}

func NewSimplePostJob(genSvc service.GenerationService) *SimplePostJob {
	return &SimplePostJob{
		genSvc: genSvc,
	}
}

func (s *SimplePostJob) Run() {
	traceID := "job-simple-post-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	result := s.genSvc.RunSimple(ctx, false)
	if !result.Success {
		log.WarnContext(ctx, "SimplePostJob finished without new post", "message", result.Message)
		return
	}
	log.InfoContext(ctx, "SimplePostJob finished", "title", result.PostTitle)
}
