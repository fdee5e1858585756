package dto

// GenerateResultDTO 一次内容生成运行的结构化结果。
// Busy/Skipped 为 true 时没有产生新帖子
type GenerateResultDTO struct {
	Success   bool   `json:"success"`
	Busy      bool   `json:"busy,omitempty"`
	Skipped   bool   `json:"skipped,omitempty"`
	Message   string `json:"message"`
	PostTitle string `json:"post_title,omitempty"`
}
