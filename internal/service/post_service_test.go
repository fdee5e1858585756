package service

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/mongo"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPost(t *testing.T, repo *fakeRepo, post *mongo.Post) *mongo.Post {
	t.Helper()
	post.Normalize()
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

func TestListPublished(t *testing.T) {
	repo := &fakeRepo{}
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		seedPost(t, repo, &mongo.Post{
			Title:   fmt.Sprintf("Published %d", i),
			Content: "body",
			Date:    base.Add(time.Duration(i) * time.Hour),
		})
	}
	for i := 0; i < 3; i++ {
		seedPost(t, repo, &mongo.Post{
			Title:   fmt.Sprintf("Draft %d", i),
			Content: "body",
			Status:  mongo.StatusDraft,
		})
	}

	svc := NewPostService(repo)

	page, err := svc.ListPublished(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Len(t, page.Posts, 10)
	assert.Equal(t, int64(12), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.Pages)
	assert.Equal(t, 10, page.Pagination.Limit)
	// 按发布时间倒序
	assert.Equal(t, "Published 11", page.Posts[0].Title)

	second, err := svc.ListPublished(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Len(t, second.Posts, 2)
}

func TestListPublishedClampsParams(t *testing.T) {
	repo := &fakeRepo{}
	seedPost(t, repo, &mongo.Post{Title: "Only One", Content: "body"})

	svc := NewPostService(repo)

	page, err := svc.ListPublished(context.Background(), -3, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, defaultPageSize, page.Pagination.Limit)

	page, err = svc.ListPublished(context.Background(), 1, 10000)
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, page.Pagination.Limit)
}

func TestGetByIdentifier(t *testing.T) {
	repo := &fakeRepo{}
	published := seedPost(t, repo, &mongo.Post{Title: "Hello, World! 2024", Content: "body"})
	seedPost(t, repo, &mongo.Post{Title: "Hidden Draft", Content: "body", Status: mongo.StatusDraft})

	svc := NewPostService(repo)

	t.Run("by object id", func(t *testing.T) {
		post, err := svc.GetByIdentifier(context.Background(), published.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, published.ID.Hex(), post.ID)
	})

	t.Run("by slug", func(t *testing.T) {
		post, err := svc.GetByIdentifier(context.Background(), "hello-world-2024")
		require.NoError(t, err)
		assert.Equal(t, "Hello, World! 2024", post.Title)
	})

	t.Run("draft invisible by slug", func(t *testing.T) {
		_, err := svc.GetByIdentifier(context.Background(), "hidden-draft")
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := svc.GetByIdentifier(context.Background(), "no-such-post")
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestCreatePost(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewPostService(repo)

	post, err := svc.Create(context.Background(), &dto.PostBaseDTO{
		Title:   "Manual Post",
		Content: "<p>Hand written content</p>",
		Tags:    []string{"notes"},
		Media: []dto.MediaDTO{
			{Type: "video", URL: "https://youtu.be/dQw4w9WgXcQ"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "manual-post", post.Slug)
	assert.Equal(t, "Hand written content...", post.Excerpt)
	assert.Equal(t, mongo.StatusPublished, post.Status)
	assert.False(t, post.AIGenerated)
	assert.Equal(t, "admin", post.ModifiedBy)
	require.Len(t, post.Media, 1)
	assert.Equal(t, "youtube", post.Media[0].Type)
	assert.Equal(t, "dQw4w9WgXcQ", post.Media[0].VideoID)
}

func TestCreatePostValidation(t *testing.T) {
	svc := NewPostService(&fakeRepo{})

	tests := []struct {
		name string
		req  *dto.PostBaseDTO
	}{
		{
			name: "missing title",
			req:  &dto.PostBaseDTO{Content: "body"},
		},
		{
			name: "missing content",
			req:  &dto.PostBaseDTO{Title: "title"},
		},
		{
			name: "bad status",
			req:  &dto.PostBaseDTO{Title: "title", Content: "body", Status: "archived"},
		},
		{
			name: "bad media type",
			req: &dto.PostBaseDTO{
				Title:   "title",
				Content: "body",
				Media:   []dto.MediaDTO{{Type: "gif", URL: "https://example.com/a.gif"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrParamInvalid)
		})
	}
}

func TestCreatePostDuplicateSlug(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewPostService(repo)

	req := &dto.PostBaseDTO{Title: "Same Title", Content: "body"}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestUpdatePost(t *testing.T) {
	repo := &fakeRepo{}
	original := seedPost(t, repo, &mongo.Post{
		Title:       "AI Original",
		Content:     "machine written",
		AIGenerated: true,
		NewsDigest:  true,
		ModifiedBy:  "system",
	})

	svc := NewPostService(repo)

	updated, err := svc.Update(context.Background(), original.ID.Hex(), &dto.PostBaseDTO{
		Title:   "Edited by Hand",
		Content: "now hand curated content",
		Status:  mongo.StatusDraft,
	})
	require.NoError(t, err)

	assert.Equal(t, "Edited by Hand", updated.Title)
	assert.Equal(t, "edited-by-hand", updated.Slug)
	assert.Equal(t, "now hand curated content...", updated.Excerpt)
	assert.Equal(t, mongo.StatusDraft, updated.Status)
	assert.Equal(t, "admin", updated.ModifiedBy)
	// 生成来源标记在编辑后保留
	assert.True(t, updated.AIGenerated)
	assert.True(t, updated.NewsDigest)
}

func TestUpdatePostNotFound(t *testing.T) {
	svc := NewPostService(&fakeRepo{})

	_, err := svc.Update(context.Background(), "64b0c8f2a1b2c3d4e5f60718", &dto.PostBaseDTO{
		Title:   "title",
		Content: "body",
	})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePost(t *testing.T) {
	repo := &fakeRepo{}
	post := seedPost(t, repo, &mongo.Post{Title: "To Delete", Content: "body"})

	svc := NewPostService(repo)

	require.NoError(t, svc.Delete(context.Background(), post.ID.Hex()))
	assert.Empty(t, repo.posts)

	err := svc.Delete(context.Background(), post.ID.Hex())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestProfile(t *testing.T) {
	config.Cfg = &config.Config{
		Admin: config.AdminConfig{Username: "admin"},
	}

	repo := &fakeRepo{}
	seedPost(t, repo, &mongo.Post{Title: "Manual One", Content: "body"})
	seedPost(t, repo, &mongo.Post{Title: "Generated One", Content: "body", AIGenerated: true})
	seedPost(t, repo, &mongo.Post{Title: "Generated Digest", Content: "body", NewsDigest: true})

	svc := NewPostService(repo)

	profile, err := svc.Profile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "admin", profile.Username)
	assert.Equal(t, "Administrator", profile.Role)
	assert.Equal(t, int64(3), profile.Stats.TotalPosts)
	assert.Equal(t, int64(2), profile.Stats.AIPosts)
	assert.Equal(t, int64(1), profile.Stats.ManualPosts)
	assert.Len(t, profile.RecentActivity, 3)
}

func TestListAllIncludesDrafts(t *testing.T) {
	repo := &fakeRepo{}
	seedPost(t, repo, &mongo.Post{Title: "Published", Content: "body"})
	seedPost(t, repo, &mongo.Post{Title: "Draft", Content: "body", Status: mongo.StatusDraft})

	svc := NewPostService(repo)

	posts, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}
