package service

import (
	"Inkstone/internal/pkg/news"
	"context"
	"fmt"
	log "log/slog"
	"math/rand"
	"sort"
	"strings"
	"time"
)

// TextGenerator 文本生成后端：prompt 进，正文出
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ArticleSource 新闻后端，失败在适配器内部消化，调用方只看到文章列表
type ArticleSource interface {
	FetchArticles(ctx context.Context) []news.Article
}

// PostDraft 待持久化的生成结果
type PostDraft struct {
	Title   string
	Content string
	Tags    []string
}

// Synthesizer 内容合成器
type Synthesizer interface {
	// SimplePost 随机话题文章，后端失败时错误原样上抛
	SimplePost(ctx context.Context) (*PostDraft, error)
	// Digest 新闻摘要，任何失败都退化为兜底内容，保证总有可用草稿
	Digest(ctx context.Context) *PostDraft
}

var topics = []string{
	"The Future of Artificial Intelligence",
	"Web Development Trends",
	"Technology and Society",
	"Digital Innovation",
	"Programming Best Practices",
	"Cloud Computing Evolution",
	"Cybersecurity in Modern World",
	"Mobile App Development",
	"Data Science Insights",
	"Machine Learning Applications",
}

var simpleTags = []string{"ai generated", "technology", "insights"}

var digestTags = []string{"tech news", "daily digest", "technology", "news roundup"}

var fallbackDigestTags = []string{"tech news", "daily digest", "technology"}

// 摘要帖进入排序时技术标题的加权
const techTitleBonus = 10

// 摘要帖最多引用的文章数
const digestArticleLimit = 15

type synthesizerImpl struct {
	textGen  TextGenerator
	articles ArticleSource
	now      func() time.Time
}

func NewSynthesizer(textGen TextGenerator, articles ArticleSource) Synthesizer {
	return &synthesizerImpl{
		textGen:  textGen,
		articles: articles,
		now:      time.Now,
	}
}

// SimplePost 随机选题、随机标题模板，低概率追加时间派生的数字后缀降低撞标题概率
func (s *synthesizerImpl) SimplePost(ctx context.Context) (*PostDraft, error) {
	now := s.now()
	topic := topics[rand.Intn(len(topics))]

	titleVariations := []string{
		topic + ": A Complete Guide",
		"Understanding " + topic,
		topic + " Explained",
		"The Future of " + topic,
		topic + ": Key Insights",
		"Exploring " + topic,
		fmt.Sprintf("%s in %d", topic, now.Year()),
		topic + ": Best Practices",
	}
	title := titleVariations[rand.Intn(len(titleVariations))]

	if rand.Float64() < 0.3 {
		title = fmt.Sprintf("%s #%d", title, now.Unix()%1000)
	}

	prompt := fmt.Sprintf(`Write a comprehensive blog post about "%s".
The post should be informative, engaging, and around 800-1200 words.
Include practical insights and real-world examples.
Make it suitable for a tech-savvy audience but accessible to general readers.
Format it with clear paragraphs and structure.
Do not include a title in the content - just write the body of the blog post.
Start directly with the content, no title or heading at the beginning.
Do NOT include any conclusion, summary, or closing section at the end.
End the post naturally after covering the main content without wrapping up statements.`, topic)

	content, err := s.textGen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &PostDraft{
		Title:   title,
		Content: content,
		Tags:    simpleTags,
	}, nil
}

// Digest 聚合新闻并合成当日技术摘要
func (s *synthesizerImpl) Digest(ctx context.Context) *PostDraft {
	articles := s.articles.FetchArticles(ctx)
	if len(articles) == 0 {
		log.WarnContext(ctx, "无可用新闻文章，返回兜底摘要")
		return s.fallbackDigest()
	}

	ranked := rankArticles(articles)

	content, err := s.textGen.GenerateText(ctx, buildDigestPrompt(ranked))
	if err != nil {
		log.ErrorContext(ctx, "摘要生成失败，返回兜底摘要", "err", err)
		return s.fallbackDigest()
	}

	return &PostDraft{
		Title:   s.digestTitle(),
		Content: content,
		Tags:    digestTags,
	}
}

func (s *synthesizerImpl) digestTitle() string {
	return "Tech News Digest - " + s.now().Format("Monday, January 2, 2006")
}

// rankArticles 过滤缺标题/链接的文章，按热度加技术标题加权倒序取前 15
func rankArticles(articles []news.Article) []news.Article {
	filtered := make([]news.Article, 0, len(articles))
	for _, a := range articles {
		if a.Title != "" && a.URL != "" {
			filtered = append(filtered, a)
		}
	}

	score := func(a news.Article) int {
		v := a.Score
		if news.IsTechRelated(a.Title) {
			v += techTitleBonus
		}
		return v
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return score(filtered[i]) > score(filtered[j])
	})

	if len(filtered) > digestArticleLimit {
		filtered = filtered[:digestArticleLimit]
	}
	return filtered
}

func buildDigestPrompt(articles []news.Article) string {
	var b strings.Builder
	b.WriteString(`Create a comprehensive daily tech news digest from the following articles.

Format the content as a well-structured blog post with:
1. A brief introduction about today's tech highlights
2. Organize news into relevant categories (AI/ML, Web Development, Cybersecurity, Startups, etc.)
3. For each news item, provide:
   - A compelling headline
   - A 2-3 sentence summary in your own words
   - The original source link formatted as: [Read more at {source}]({url})
4. Add insightful commentary connecting related stories

Make it engaging and informative. Use proper markdown formatting with headers, bullet points, and links.
Do NOT include any conclusion, summary, or closing section at the end.
End the digest naturally after covering all the news items without wrapping up statements.

Here are the articles:
`)

	for i, a := range articles {
		fmt.Fprintf(&b, `
%d. Title: %s
   Description: %s
   Source: %s
   URL: %s
   Published: %s
`, i+1, a.Title, a.Description, a.Source, a.URL, a.PublishedAt)
	}

	b.WriteString("\nWrite a comprehensive digest that synthesizes this information into a cohesive, engaging read.")
	return b.String()
}

// fallbackDigest 固定的兜底摘要，聚合与生成全部失效时使用
func (s *synthesizerImpl) fallbackDigest() *PostDraft {
	return &PostDraft{
		Title: s.digestTitle(),
		Content: `# Today's Tech Landscape

Welcome to today's technology digest. While we're currently experiencing some technical difficulties with our news aggregation service, the tech world continues to evolve at breakneck speed.

## Key Areas to Watch

### Artificial Intelligence & Machine Learning
The AI revolution continues to reshape industries, from healthcare to finance. Major developments in large language models, computer vision, and autonomous systems are driving unprecedented innovation.

### Web Development & Software Engineering
Modern web development frameworks and tools are making it easier than ever to build scalable, performant applications. The rise of edge computing and serverless architectures is changing how we think about deployment and scaling.

### Cybersecurity
As digital transformation accelerates, cybersecurity remains a critical concern. New threats emerge daily, but so do innovative solutions to protect our digital infrastructure.

### Emerging Technologies
Blockchain, quantum computing, and IoT continue to mature, promising to unlock new possibilities across various sectors.

---

*We're working to restore our full news aggregation service. Check back tomorrow for comprehensive coverage of the latest tech developments.*

[Visit our homepage](/) for more technology insights and analysis.`,
		Tags: fallbackDigestTags,
	}
}
