package news

// Article 来自任一新闻源的文章元数据
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
	Source      string `json:"source"`
	Score       int    `json:"score"`
}
