package dto

import "time"

// MediaDTO 媒体附件
type MediaDTO struct {
	Type      string `json:"type" validate:"required,oneof=image video youtube"`
	URL       string `json:"url" validate:"required,url"`
	Caption   string `json:"caption,omitempty" validate:"omitempty,max=200"`
	Position  int    `json:"position"`
	VideoID   string `json:"video_id,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// PostBaseDTO 创建/更新帖子请求体，更新为整篇替换
type PostBaseDTO struct {
	Title   string     `json:"title" validate:"required,max=200"`
	Content string     `json:"content" validate:"required,max=50000"`
	Status  string     `json:"status" validate:"omitempty,oneof=draft published"`
	Media   []MediaDTO `json:"media" validate:"omitempty,dive"`
	Tags    []string   `json:"tags" validate:"omitempty,dive,max=50"`
}

// PostDTO 帖子明细
type PostDTO struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Excerpt      string     `json:"excerpt"`
	Slug         string     `json:"slug"`
	Status       string     `json:"status"`
	Date         time.Time  `json:"date"`
	AIGenerated  bool       `json:"ai_generated"`
	NewsDigest   bool       `json:"news_digest"`
	Media        []MediaDTO `json:"media,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	LastModified time.Time  `json:"last_modified"`
	ModifiedBy   string     `json:"modified_by"`
}

// PostSummaryDTO 列表项投影
type PostSummaryDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Slug        string    `json:"slug"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
	AIGenerated bool      `json:"ai_generated"`
}

// PostListDTO 分页查询参数
type PostListDTO struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationDTO 分页信息
type PaginationDTO struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// PostPageDTO 帖子分页响应
type PostPageDTO struct {
	Posts      []*PostSummaryDTO `json:"posts"`
	Pagination PaginationDTO     `json:"pagination"`
}

// ProfileStatsDTO 管理端统计
type ProfileStatsDTO struct {
	TotalPosts  int64 `json:"total_posts"`
	AIPosts     int64 `json:"ai_posts"`
	ManualPosts int64 `json:"manual_posts"`
}

// ProfileDTO 管理端概览
type ProfileDTO struct {
	Username       string            `json:"username"`
	Role           string            `json:"role"`
	Stats          ProfileStatsDTO   `json:"stats"`
	RecentActivity []*PostSummaryDTO `json:"recent_activity"`
}
