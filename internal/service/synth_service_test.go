package service

import (
	"Inkstone/internal/pkg/news"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTextGen struct {
	content string
	err     error
	prompts []string
}

func (f *fakeTextGen) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

type fakeArticleSource struct {
	articles []news.Article
}

func (f *fakeArticleSource) FetchArticles(context.Context) []news.Article {
	return f.articles
}

func newTestSynthesizer(gen *fakeTextGen, src *fakeArticleSource, now time.Time) *synthesizerImpl {
	return &synthesizerImpl{
		textGen:  gen,
		articles: src,
		now:      func() time.Time { return now },
	}
}

func techArticles() []news.Article {
	return []news.Article{
		{Title: "New AI compiler ships", Description: "faster builds", URL: "https://example.com/ai", Source: "Hacker News", Score: 42},
		{Title: "Go 1.25 released", Description: "the latest release", URL: "https://example.com/go", Source: "Example Wire", Score: 10},
	}
}

func TestSimplePost(t *testing.T) {
	gen := &fakeTextGen{content: "generated body"}
	s := newTestSynthesizer(gen, &fakeArticleSource{}, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	draft, err := s.SimplePost(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "generated body", draft.Content)
	assert.Equal(t, simpleTags, draft.Tags)

	// 标题一定由某个预置话题派生
	matched := false
	for _, topic := range topics {
		if strings.Contains(draft.Title, topic) {
			matched = true
			break
		}
	}
	assert.True(t, matched, "title %q should contain a known topic", draft.Title)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Write a comprehensive blog post about")
	assert.Contains(t, gen.prompts[0], "800-1200 words")
	assert.Contains(t, gen.prompts[0], "Do NOT include any conclusion")
}

func TestSimplePostPropagatesError(t *testing.T) {
	gen := &fakeTextGen{err: errors.New("backend unavailable")}
	s := newTestSynthesizer(gen, &fakeArticleSource{}, time.Now())

	draft, err := s.SimplePost(context.Background())
	require.Error(t, err)
	assert.Nil(t, draft)
	assert.EqualError(t, err, "backend unavailable")
}

func TestDigest(t *testing.T) {
	gen := &fakeTextGen{content: "digest body"}
	src := &fakeArticleSource{articles: techArticles()}
	s := newTestSynthesizer(gen, src, time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC))

	draft := s.Digest(context.Background())

	assert.Equal(t, "Tech News Digest - Monday, January 5, 2026", draft.Title)
	assert.Equal(t, "digest body", draft.Content)
	assert.Equal(t, digestTags, draft.Tags)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "New AI compiler ships")
	assert.Contains(t, gen.prompts[0], "https://example.com/go")
}

func TestDigestFallsBackWithoutArticles(t *testing.T) {
	gen := &fakeTextGen{content: "should not be used"}
	s := newTestSynthesizer(gen, &fakeArticleSource{}, time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC))

	draft := s.Digest(context.Background())

	assert.Empty(t, gen.prompts, "text backend must not be called without articles")
	assert.Equal(t, "Tech News Digest - Monday, January 5, 2026", draft.Title)
	assert.Contains(t, draft.Content, "Today's Tech Landscape")
	assert.Equal(t, fallbackDigestTags, draft.Tags)
}

func TestDigestFallsBackOnGenerateError(t *testing.T) {
	gen := &fakeTextGen{err: errors.New("model timeout")}
	src := &fakeArticleSource{articles: techArticles()}
	s := newTestSynthesizer(gen, src, time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC))

	draft := s.Digest(context.Background())

	assert.Contains(t, draft.Content, "Today's Tech Landscape")
	assert.Equal(t, fallbackDigestTags, draft.Tags)
}

func TestRankArticlesFiltersIncomplete(t *testing.T) {
	articles := []news.Article{
		{Title: "No URL", Score: 100},
		{URL: "https://example.com/untitled", Score: 100},
		{Title: "Complete story", URL: "https://example.com/ok", Score: 1},
	}

	ranked := rankArticles(articles)
	require.Len(t, ranked, 1)
	assert.Equal(t, "Complete story", ranked[0].Title)
}

func TestRankArticlesTechBonus(t *testing.T) {
	articles := []news.Article{
		{Title: "Quiet day at the beach", URL: "https://example.com/beach", Score: 15},
		{Title: "Machine learning hits the mainstream", URL: "https://example.com/ml", Score: 10},
	}

	ranked := rankArticles(articles)
	require.Len(t, ranked, 2)
	// 技术标题 +10 后反超
	assert.Equal(t, "Machine learning hits the mainstream", ranked[0].Title)
}

func TestRankArticlesCapsAtLimit(t *testing.T) {
	articles := make([]news.Article, 0, 20)
	for i := 0; i < 20; i++ {
		articles = append(articles, news.Article{
			Title: fmt.Sprintf("Story %d", i),
			URL:   fmt.Sprintf("https://example.com/%d", i),
			Score: i,
		})
	}

	ranked := rankArticles(articles)
	require.Len(t, ranked, digestArticleLimit)
	assert.Equal(t, "Story 19", ranked[0].Title)
}

func TestBuildDigestPrompt(t *testing.T) {
	prompt := buildDigestPrompt(techArticles())

	assert.Contains(t, prompt, "daily tech news digest")
	assert.Contains(t, prompt, "1. Title: New AI compiler ships")
	assert.Contains(t, prompt, "2. Title: Go 1.25 released")
	assert.Contains(t, prompt, "Source: Hacker News")
	assert.Contains(t, prompt, "URL: https://example.com/ai")
}
