package mongo

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaType 媒体变体，取值封闭
type MediaType string

const (
	MediaImage   MediaType = "image"
	MediaVideo   MediaType = "video"
	MediaYouTube MediaType = "youtube"
)

// Valid 判断媒体类型是否在封闭集合内
func (t MediaType) Valid() bool {
	switch t {
	case MediaImage, MediaVideo, MediaYouTube:
		return true
	}
	return false
}

// Media 帖子媒体附件，youtube 变体额外携带视频 ID 与缩略图
type Media struct {
	Type      MediaType `bson:"type" json:"type"`
	URL       string    `bson:"url" json:"url"`
	Caption   string    `bson:"caption,omitempty" json:"caption,omitempty"`
	Position  int       `bson:"position" json:"position"`
	VideoID   string    `bson:"video_id,omitempty" json:"video_id,omitempty"`
	Thumbnail string    `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
}

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Post 博客帖子文档
type Post struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Content      string             `bson:"content" json:"content"`
	Excerpt      string             `bson:"excerpt,omitempty" json:"excerpt"`
	Date         time.Time          `bson:"date" json:"date"`
	AIGenerated  bool               `bson:"ai_generated" json:"ai_generated"`
	NewsDigest   bool               `bson:"news_digest" json:"news_digest"`
	Slug         string             `bson:"slug" json:"slug"`
	Status       string             `bson:"status" json:"status"`
	Media        []Media            `bson:"media,omitempty" json:"media,omitempty"`
	Tags         []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	LastModified time.Time          `bson:"last_modified" json:"last_modified"`
	ModifiedBy   string             `bson:"modified_by" json:"modified_by"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 由标题派生 URL 安全的 slug：小写，非字母数字段折叠为连字符
func Slugify(title string) string {
	s := slugInvalid.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

const excerptLen = 150

// DeriveExcerpt 剥离正文中的标记后截取前 150 个字符
func DeriveExcerpt(content string) string {
	plain := content
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
		plain = doc.Text()
	}
	runes := []rune(plain)
	if len(runes) > excerptLen {
		runes = runes[:excerptLen]
	}
	return string(runes) + "..."
}

// 已知的 YouTube 链接形态
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

// ExtractYouTubeID 从 URL 中提取视频 ID，无法识别时返回空串
func ExtractYouTubeID(url string) string {
	for _, p := range youtubePatterns {
		if m := p.FindStringSubmatch(url); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// Normalize 保存前处理：派生 slug 与摘要，识别 YouTube 媒体并补全变体字段，
// 刷新修改时间。对应原始写入路径的全部不变量
func (p *Post) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = Slugify(p.Title)

	if p.Excerpt == "" && p.Content != "" {
		p.Excerpt = DeriveExcerpt(p.Content)
	}

	if p.Status == "" {
		p.Status = StatusPublished
	}
	if p.ModifiedBy == "" {
		p.ModifiedBy = "admin"
	}

	// 摘要帖一定是机器生成的
	if p.NewsDigest {
		p.AIGenerated = true
	}

	for i := range p.Tags {
		p.Tags[i] = strings.TrimSpace(p.Tags[i])
	}

	for i := range p.Media {
		m := &p.Media[i]
		switch m.Type {
		case MediaVideo, MediaYouTube:
			if id := ExtractYouTubeID(m.URL); id != "" {
				m.Type = MediaYouTube
				m.VideoID = id
				m.Thumbnail = "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
			}
		case MediaImage:
			// 图片不做变换
		}
	}

	now := time.Now()
	if p.Date.IsZero() {
		p.Date = now
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.LastModified = now
	p.UpdatedAt = now
}
