package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/mongo"
	"context"
	"fmt"
	log "log/slog"
	"sync/atomic"
	"time"
)

// GenerationService 内容生成编排器：持有进程内唯一的运行许可，
// 所有失败都折算为结构化结果，不向外抛错
type GenerationService interface {
	RunSimple(ctx context.Context, manual bool) *dto.GenerateResultDTO
	RunDigest(ctx context.Context, manual bool) *dto.GenerateResultDTO
	EnsureInitialPost(ctx context.Context)
}

type generationServiceImpl struct {
	synth    Synthesizer
	postRepo mongo.PostRepo

	// 单许可闸门，try-acquire 语义，第二个调用者直接被拒绝而不是排队
	running atomic.Bool

	now func() time.Time
}

func NewGenerationService(synth Synthesizer, postRepo mongo.PostRepo) GenerationService {
	return &generationServiceImpl{
		synth:    synth,
		postRepo: postRepo,
		now:      time.Now,
	}
}

func busyResult() *dto.GenerateResultDTO {
	return &dto.GenerateResultDTO{
		Busy:    true,
		Message: "上一次生成尚未结束，本次请求已忽略",
	}
}

// RunSimple 生成一篇随机话题文章并落库
func (s *generationServiceImpl) RunSimple(ctx context.Context, manual bool) *dto.GenerateResultDTO {
	if !s.running.CompareAndSwap(false, true) {
		log.InfoContext(ctx, "生成任务进行中，跳过本次随机文章生成", "manual", manual)
		return busyResult()
	}
	defer s.running.Store(false)

	log.InfoContext(ctx, "开始生成随机话题文章", "manual", manual)

	draft, err := s.synth.SimplePost(ctx)
	if err != nil {
		log.ErrorContext(ctx, "随机文章生成失败", "err", err)
		return &dto.GenerateResultDTO{
			Success: false,
			Message: "AI 内容生成失败: " + err.Error(),
		}
	}

	return s.persist(ctx, draft, false)
}

// RunDigest 生成当日新闻摘要并落库。
// 自动触发时当天已有摘要则跳过；手动触发绕过该检查，
// 标题追加 时:分 后缀避免与当天自动摘要的 slug 冲突
func (s *generationServiceImpl) RunDigest(ctx context.Context, manual bool) *dto.GenerateResultDTO {
	if !s.running.CompareAndSwap(false, true) {
		log.InfoContext(ctx, "生成任务进行中，跳过本次摘要生成", "manual", manual)
		return busyResult()
	}
	defer s.running.Store(false)

	now := s.now()

	if !manual {
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		existing, err := s.postRepo.FindDigestSince(ctx, startOfDay)
		if err != nil {
			// 冗余检查失败不阻断生成，slug 唯一索引仍会兜住重复
			log.ErrorContext(ctx, "查询当日摘要失败", "err", err)
		}
		if existing != nil {
			log.InfoContext(ctx, "当日摘要已存在，跳过生成", "title", existing.Title)
			return &dto.GenerateResultDTO{
				Skipped:   true,
				Message:   "今日摘要已存在",
				PostTitle: existing.Title,
			}
		}
	}

	log.InfoContext(ctx, "开始生成新闻摘要", "manual", manual)

	draft := s.synth.Digest(ctx)
	if manual {
		draft.Title = fmt.Sprintf("%s (%s)", draft.Title, now.Format("15:04"))
	}

	return s.persist(ctx, draft, true)
}

// persist 将草稿落库，持久化失败同样折算为失败结果
func (s *generationServiceImpl) persist(ctx context.Context, draft *PostDraft, digest bool) *dto.GenerateResultDTO {
	post := &mongo.Post{
		Title:       draft.Title,
		Content:     draft.Content,
		Tags:        draft.Tags,
		AIGenerated: true,
		NewsDigest:  digest,
		Status:      mongo.StatusPublished,
		ModifiedBy:  "system",
	}
	post.Normalize()

	if err := s.postRepo.Create(ctx, post); err != nil {
		msg := "帖子保存失败: " + err.Error()
		if mongo.IsDup(err) {
			msg = ErrDuplicateSlug.Error()
		}
		log.ErrorContext(ctx, "生成内容持久化失败", "title", post.Title, "err", err)
		return &dto.GenerateResultDTO{
			Success: false,
			Message: msg,
		}
	}

	log.InfoContext(ctx, "生成内容已发布", "title", post.Title, "digest", digest)
	return &dto.GenerateResultDTO{
		Success:   true,
		Message:   "生成成功",
		PostTitle: post.Title,
	}
}

// EnsureInitialPost 启动时文档库为空则立即生成一篇，保证站点非空
func (s *generationServiceImpl) EnsureInitialPost(ctx context.Context) {
	count, err := s.postRepo.Count(ctx, mongo.PostFilter{})
	if err != nil {
		log.ErrorContext(ctx, "启动检查帖子数量失败", "err", err)
		return
	}
	if count > 0 {
		return
	}

	log.InfoContext(ctx, "文档库为空，生成首篇文章")
	result := s.RunSimple(ctx, false)
	if !result.Success {
		log.WarnContext(ctx, "首篇文章生成未成功", "message", result.Message)
	}
}
