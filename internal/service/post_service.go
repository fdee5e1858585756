package service

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/mongo"
	"Inkstone/internal/pkg/util"
	"context"
	"errors"
	log "log/slog"
	"regexp"

	"github.com/jinzhu/copier"
)

const (
	defaultPageSize  = 10
	maxPageSize      = 50
	recentActivityN  = 5
	adminListPageCap = 1000
)

type PostService interface {
	ListPublished(ctx context.Context, page, pageSize int) (*dto.PostPageDTO, error)
	GetByIdentifier(ctx context.Context, identifier string) (*dto.PostDTO, error)

	ListAll(ctx context.Context) ([]*dto.PostSummaryDTO, error)
	GetByID(ctx context.Context, id string) (*dto.PostDTO, error)
	Create(ctx context.Context, req *dto.PostBaseDTO) (*dto.PostDTO, error)
	Update(ctx context.Context, id string, req *dto.PostBaseDTO) (*dto.PostDTO, error)
	Delete(ctx context.Context, id string) error
	Profile(ctx context.Context) (*dto.ProfileDTO, error)
}

type postServiceImpl struct {
	postRepo mongo.PostRepo
}

func NewPostService(postRepo mongo.PostRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
	}
}

// ListPublished 公开列表：仅已发布，按发布时间倒序分页
func (s *postServiceImpl) ListPublished(ctx context.Context, page, pageSize int) (*dto.PostPageDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := mongo.PostFilter{Status: mongo.StatusPublished}

	posts, err := s.postRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		log.ErrorContext(ctx, "查询帖子列表失败", "err", err)
		return nil, UnExpectedError
	}

	total, err := s.postRepo.Count(ctx, filter)
	if err != nil {
		log.ErrorContext(ctx, "统计帖子数量失败", "err", err)
		return nil, UnExpectedError
	}

	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}

	return &dto.PostPageDTO{
		Posts: toSummaryDTOs(posts),
		Pagination: dto.PaginationDTO{
			Page:  page,
			Limit: pageSize,
			Total: total,
			Pages: pages,
		},
	}, nil
}

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// GetByIdentifier 先按 ObjectID 命中，退化为按 slug 查已发布帖子
func (s *postServiceImpl) GetByIdentifier(ctx context.Context, identifier string) (*dto.PostDTO, error) {
	if objectIDPattern.MatchString(identifier) {
		post, err := s.postRepo.GetByID(ctx, identifier)
		if err == nil {
			return toPostDTO(post), nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.ErrorContext(ctx, "查询帖子失败", "id", identifier, "err", err)
			return nil, UnExpectedError
		}
	}

	post, err := s.postRepo.GetBySlug(ctx, identifier, true)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		log.ErrorContext(ctx, "查询帖子失败", "slug", identifier, "err", err)
		return nil, UnExpectedError
	}
	return toPostDTO(post), nil
}

// ListAll 管理端列表：不过滤状态
func (s *postServiceImpl) ListAll(ctx context.Context) ([]*dto.PostSummaryDTO, error) {
	posts, err := s.postRepo.List(ctx, mongo.PostFilter{}, 1, adminListPageCap)
	if err != nil {
		log.ErrorContext(ctx, "查询帖子列表失败", "err", err)
		return nil, UnExpectedError
	}
	return toSummaryDTOs(posts), nil
}

func (s *postServiceImpl) GetByID(ctx context.Context, id string) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		log.ErrorContext(ctx, "查询帖子失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return toPostDTO(post), nil
}

// Create 管理端手工建帖
func (s *postServiceImpl) Create(ctx context.Context, req *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		log.InfoContext(ctx, "建帖参数校验失败", "err", err)
		return nil, ErrParamInvalid
	}

	post := &mongo.Post{
		Title:       req.Title,
		Content:     req.Content,
		Status:      req.Status,
		Media:       toMediaModels(req.Media),
		Tags:        req.Tags,
		AIGenerated: false,
		ModifiedBy:  "admin",
	}
	post.Normalize()

	if err := s.postRepo.Create(ctx, post); err != nil {
		if mongo.IsDup(err) {
			return nil, ErrDuplicateSlug
		}
		log.ErrorContext(ctx, "建帖失败", "err", err)
		return nil, UnExpectedError
	}
	return toPostDTO(post), nil
}

// Update 整篇替换 title/content/status/media/tags，生成来源等字段保留
func (s *postServiceImpl) Update(ctx context.Context, id string, req *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		log.InfoContext(ctx, "改帖参数校验失败", "err", err)
		return nil, ErrParamInvalid
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		log.ErrorContext(ctx, "查询帖子失败", "id", id, "err", err)
		return nil, UnExpectedError
	}

	post.Title = req.Title
	post.Content = req.Content
	post.Status = req.Status
	post.Media = toMediaModels(req.Media)
	post.Tags = req.Tags
	post.Excerpt = ""
	post.ModifiedBy = "admin"
	post.Normalize()

	if err = s.postRepo.Update(ctx, post); err != nil {
		if mongo.IsDup(err) {
			return nil, ErrDuplicateSlug
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		log.ErrorContext(ctx, "改帖失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return toPostDTO(post), nil
}

func (s *postServiceImpl) Delete(ctx context.Context, id string) error {
	_, err := s.postRepo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPostNotFound
		}
		log.ErrorContext(ctx, "删帖失败", "id", id, "err", err)
		return UnExpectedError
	}
	return nil
}

// Profile 管理端概览：帖子统计与最近动态
func (s *postServiceImpl) Profile(ctx context.Context) (*dto.ProfileDTO, error) {
	total, err := s.postRepo.Count(ctx, mongo.PostFilter{})
	if err != nil {
		log.ErrorContext(ctx, "统计帖子数量失败", "err", err)
		return nil, UnExpectedError
	}

	aiGenerated := true
	aiCount, err := s.postRepo.Count(ctx, mongo.PostFilter{AIGenerated: &aiGenerated})
	if err != nil {
		log.ErrorContext(ctx, "统计AI帖子数量失败", "err", err)
		return nil, UnExpectedError
	}

	recent, err := s.postRepo.List(ctx, mongo.PostFilter{}, 1, recentActivityN)
	if err != nil {
		log.ErrorContext(ctx, "查询最近帖子失败", "err", err)
		return nil, UnExpectedError
	}

	return &dto.ProfileDTO{
		Username: config.Cfg.Admin.Username,
		Role:     "Administrator",
		Stats: dto.ProfileStatsDTO{
			TotalPosts:  total,
			AIPosts:     aiCount,
			ManualPosts: total - aiCount,
		},
		RecentActivity: toSummaryDTOs(recent),
	}, nil
}

func toMediaModels(medias []dto.MediaDTO) []mongo.Media {
	if len(medias) == 0 {
		return nil
	}
	models := make([]mongo.Media, 0, len(medias))
	_ = copier.Copy(&models, &medias)
	return models
}

func toPostDTO(post *mongo.Post) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)
	item.ID = post.ID.Hex()
	return item
}

func toSummaryDTOs(posts []*mongo.Post) []*dto.PostSummaryDTO {
	list := make([]*dto.PostSummaryDTO, 0, len(posts))
	for _, post := range posts {
		item := &dto.PostSummaryDTO{}
		_ = copier.Copy(item, post)
		item.ID = post.ID.Hex()
		list = append(list, item)
	}
	return list
}
