package news

import (
	"Inkstone/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	readability "github.com/go-shiori/go-readability"
	"github.com/goccy/go-json"
)

const (
	defaultNewsApiURL    = "https://newsapi.org/v2/everything"
	defaultHackerNewsURL = "https://hacker-news.firebaseio.com/v0"

	// 链接聚合源只看当前 top 15
	topStoryLimit = 15

	newsApiQuery = `technology OR programming OR AI OR "artificial intelligence" OR software OR "web development" OR cybersecurity OR blockchain OR "machine learning"`
)

// Fetcher 新闻适配器：聚合关键词检索源与链接聚合源，两边都是尽力而为
type Fetcher struct {
	httpClient    *resty.Client
	newsApiURL    string
	newsApiKey    string
	hackerNewsURL string
	enrichStories bool
}

func NewFetcher(cfg config.NewsConfig) *Fetcher {
	ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	client := resty.New().
		SetTimeout(20 * time.Second).
		SetHeader("User-Agent", ua)

	f := &Fetcher{
		httpClient:    client,
		newsApiURL:    cfg.NewsApiURL,
		newsApiKey:    cfg.NewsApiKey,
		hackerNewsURL: cfg.HackerNewsURL,
		enrichStories: cfg.EnrichStories,
	}
	if f.newsApiURL == "" {
		f.newsApiURL = defaultNewsApiURL
	}
	if f.hackerNewsURL == "" {
		f.hackerNewsURL = defaultHackerNewsURL
	}
	return f
}

// FetchArticles 拉取近 24 小时的技术相关文章。
// 任一来源失败只记日志不中断；两边都拿不到时替换为兜底文章集
func (s *Fetcher) FetchArticles(ctx context.Context) []Article {
	var articles []Article

	if s.newsApiKey != "" {
		fetched, err := s.fetchNewsApi(ctx)
		if err != nil {
			log.ErrorContext(ctx, "NewsAPI 拉取失败", "err", err)
		} else {
			articles = append(articles, fetched...)
		}
	}

	fetched, err := s.fetchHackerNews(ctx)
	if err != nil {
		log.ErrorContext(ctx, "HackerNews 拉取失败", "err", err)
	} else {
		articles = append(articles, fetched...)
	}

	if len(articles) == 0 {
		log.WarnContext(ctx, "所有新闻源均无可用文章，使用兜底文章集")
		return fallbackArticles()
	}

	log.InfoContext(ctx, "新闻拉取完成", "count", len(articles))
	return articles
}

type newsApiArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

// fetchNewsApi 关键词检索源：最近 24 小时、按发布时间排序
func (s *Fetcher) fetchNewsApi(ctx context.Context) ([]Article, error) {
	from := time.Now().Add(-24 * time.Hour).Format("2006-01-02")

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        newsApiQuery,
			"language": "en",
			"sortBy":   "publishedAt",
			"pageSize": "20",
			"from":     from,
			"apiKey":   s.newsApiKey,
		}).
		Get(s.newsApiURL)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("newsapi status %d", resp.StatusCode())
	}

	var payload struct {
		Articles []newsApiArticle `json:"articles"`
	}
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
		})
	}
	return articles, nil
}

type hnStory struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Score int    `json:"score"`
	Time  int64  `json:"time"`
}

// fetchHackerNews 链接聚合源：逐条拉取 top 故事元数据，仅保留技术相关标题。
// 单条失败跳过，不影响整批
func (s *Fetcher) fetchHackerNews(ctx context.Context) ([]Article, error) {
	resp, err := s.httpClient.R().
		SetContext(ctx).
		Get(s.hackerNewsURL + "/topstories.json")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("hackernews status %d", resp.StatusCode())
	}

	var ids []int64
	if err = json.Unmarshal(resp.Body(), &ids); err != nil {
		return nil, err
	}
	if len(ids) > topStoryLimit {
		ids = ids[:topStoryLimit]
	}

	var articles []Article
	for _, id := range ids {
		story, err := s.fetchStory(ctx, id)
		if err != nil {
			log.ErrorContext(ctx, "HN 故事拉取失败", "id", id, "err", err)
			continue
		}
		if story == nil || story.Title == "" || story.URL == "" || !IsTechRelated(story.Title) {
			continue
		}

		// HN 本身没有摘要，默认用标题占位
		description := story.Title
		if s.enrichStories {
			if d := s.describeStory(ctx, story.URL); d != "" {
				description = d
			}
		}

		articles = append(articles, Article{
			Title:       story.Title,
			Description: description,
			URL:         story.URL,
			PublishedAt: time.Unix(story.Time, 0).UTC().Format(time.RFC3339),
			Source:      "Hacker News",
			Score:       story.Score,
		})
	}
	return articles, nil
}

func (s *Fetcher) fetchStory(ctx context.Context, id int64) (*hnStory, error) {
	resp, err := s.httpClient.R().
		SetContext(ctx).
		Get(s.hackerNewsURL + "/item/" + strconv.FormatInt(id, 10) + ".json")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("hackernews item status %d", resp.StatusCode())
	}

	var story hnStory
	if err = json.Unmarshal(resp.Body(), &story); err != nil {
		return nil, err
	}
	return &story, nil
}

var whitespace = regexp.MustCompile(`\s+`)

// describeStory 尽力从故事页面提取一段正文作为摘要，失败返回空串
func (s *Fetcher) describeStory(ctx context.Context, storyURL string) string {
	resp, err := s.httpClient.R().SetContext(ctx).Get(storyURL)
	if err != nil || resp.IsError() {
		return ""
	}

	parsedURL, err := url.Parse(storyURL)
	if err != nil {
		return ""
	}
	article, err := readability.FromReader(strings.NewReader(resp.String()), parsedURL)
	if err != nil {
		return ""
	}

	text := strings.TrimSpace(whitespace.ReplaceAllString(article.TextContent, " "))
	if len(text) > 300 {
		text = text[:300] + "..."
	}
	return text
}
