package mongo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "punctuation and spaces",
			title: "Hello, World! 2024",
			want:  "hello-world-2024",
		},
		{
			name:  "leading and trailing separators",
			title: "  --Trimmed Title--  ",
			want:  "trimmed-title",
		},
		{
			name:  "already a slug",
			title: "already-a-slug",
			want:  "already-a-slug",
		},
		{
			name:  "consecutive specials collapse",
			title: "AI & ML: What's Next???",
			want:  "ai-ml-what-s-next",
		},
		{
			name:  "non ascii dropped",
			title: "Café ☕ Culture",
			want:  "caf-culture",
		},
		{
			name:  "only specials",
			title: "!!!",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestDeriveExcerpt(t *testing.T) {
	t.Run("short content kept whole", func(t *testing.T) {
		assert.Equal(t, "A short post...", DeriveExcerpt("A short post"))
	})

	t.Run("long content truncated to 150 runes", func(t *testing.T) {
		content := strings.Repeat("a", 200)
		got := DeriveExcerpt(content)
		assert.Equal(t, strings.Repeat("a", 150)+"...", got)
	})

	t.Run("markup stripped before truncation", func(t *testing.T) {
		got := DeriveExcerpt("<p>Hello <b>world</b></p>")
		assert.Equal(t, "Hello world...", got)
	})
}

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "watch url",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "watch url with extra params",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "short link",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "embed url",
			url:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "legacy v path",
			url:  "https://www.youtube.com/v/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "watch url with v after other params",
			url:  "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "unrelated url",
			url:  "https://vimeo.com/123456",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractYouTubeID(tt.url))
		})
	}
}

func TestMediaTypeValid(t *testing.T) {
	assert.True(t, MediaImage.Valid())
	assert.True(t, MediaVideo.Valid())
	assert.True(t, MediaYouTube.Valid())
	assert.False(t, MediaType("gif").Valid())
	assert.False(t, MediaType("").Valid())
}

func TestNormalizeDefaults(t *testing.T) {
	post := &Post{
		Title:   "  My First Post  ",
		Content: "Some content for the excerpt",
	}
	post.Normalize()

	assert.Equal(t, "My First Post", post.Title)
	assert.Equal(t, "my-first-post", post.Slug)
	assert.Equal(t, "Some content for the excerpt...", post.Excerpt)
	assert.Equal(t, StatusPublished, post.Status)
	assert.Equal(t, "admin", post.ModifiedBy)
	assert.False(t, post.Date.IsZero())
	assert.False(t, post.CreatedAt.IsZero())
	assert.False(t, post.LastModified.IsZero())
	assert.False(t, post.UpdatedAt.IsZero())
}

func TestNormalizeKeepsExplicitFields(t *testing.T) {
	post := &Post{
		Title:      "Draft Notes",
		Content:    "body",
		Excerpt:    "hand written excerpt",
		Status:     StatusDraft,
		ModifiedBy: "system",
	}
	post.Normalize()

	assert.Equal(t, "hand written excerpt", post.Excerpt)
	assert.Equal(t, StatusDraft, post.Status)
	assert.Equal(t, "system", post.ModifiedBy)
}

func TestNormalizeDigestImpliesAIGenerated(t *testing.T) {
	post := &Post{
		Title:      "Tech News Digest - Monday, January 5, 2026",
		Content:    "digest body",
		NewsDigest: true,
	}
	post.Normalize()

	assert.True(t, post.AIGenerated)
	assert.Equal(t, "tech-news-digest-monday-january-5-2026", post.Slug)
}

func TestNormalizeYouTubeMedia(t *testing.T) {
	post := &Post{
		Title:   "Video Post",
		Content: "watch this",
		Media: []Media{
			{Type: MediaVideo, URL: "https://youtu.be/dQw4w9WgXcQ", Position: 0},
			{Type: MediaYouTube, URL: "https://www.youtube.com/watch?v=abc123xyz_-", Position: 1},
			{Type: MediaImage, URL: "https://example.com/pic.png", Position: 2},
			{Type: MediaVideo, URL: "https://example.com/clip.mp4", Position: 3},
		},
	}
	post.Normalize()

	require.Len(t, post.Media, 4)

	// video 链接指向 YouTube 时升格为 youtube 变体并补全派生字段
	assert.Equal(t, MediaYouTube, post.Media[0].Type)
	assert.Equal(t, "dQw4w9WgXcQ", post.Media[0].VideoID)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", post.Media[0].Thumbnail)

	assert.Equal(t, MediaYouTube, post.Media[1].Type)
	assert.Equal(t, "abc123xyz_-", post.Media[1].VideoID)

	assert.Equal(t, MediaImage, post.Media[2].Type)
	assert.Empty(t, post.Media[2].VideoID)

	// 非 YouTube 的视频链接保持原样
	assert.Equal(t, MediaVideo, post.Media[3].Type)
	assert.Empty(t, post.Media[3].VideoID)
}

func TestNormalizeTrimsTags(t *testing.T) {
	post := &Post{
		Title:   "Tagged",
		Content: "body",
		Tags:    []string{" tech news ", "daily digest"},
	}
	post.Normalize()

	assert.Equal(t, []string{"tech news", "daily digest"}, post.Tags)
}
