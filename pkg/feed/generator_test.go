package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsfeed/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	gen := NewGenerator("http://localhost:8080/")
	gen.now = fixedNow

	created := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	items := []domain.FeedItem{
		{ID: "a1", Title: "Go 1.24 released", Content: "New release notes", Language: "en",
			Categories: []string{"tech", "go"}, CreatedAt: created},
		{ID: "a2", Title: "Weather & news", Content: "Sunny", Language: "en", Categories: []string{}},
	}

	out, err := gen.GenerateRSS(items, "u1", "en")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `isPermaLink="false"`)

	parsed, err := gofeed.NewParser().ParseString(out)
	require.NoError(t, err)
	assert.Equal(t, "rss", parsed.FeedType)
	assert.Equal(t, "Newsfeed - personal feed", parsed.Title)
	assert.Equal(t, "en", parsed.Language)
	assert.Equal(t, "Top 2 articles ranked for the reader", parsed.Description)
	require.Len(t, parsed.Items, 2)

	first := parsed.Items[0]
	assert.Equal(t, "Go 1.24 released", first.Title)
	assert.Equal(t, "http://localhost:8080/api/v1/articles/a1", first.Link)
	assert.Equal(t, "a1", first.GUID)
	assert.Equal(t, "New release notes", first.Description)
	assert.Equal(t, []string{"tech", "go"}, first.Categories)
	require.NotNil(t, first.PublishedParsed)
	assert.True(t, created.Equal(*first.PublishedParsed))

	second := parsed.Items[1]
	assert.Equal(t, "Weather & news", second.Title)
	assert.Nil(t, second.PublishedParsed)
	assert.NotContains(t, out, "<pubDate></pubDate>")
}

func TestGenerator_SelfLink(t *testing.T) {
	gen := NewGenerator("https://news.example.com")

	out, err := gen.GenerateRSS(nil, "u1", "")
	require.NoError(t, err)
	assert.Contains(t, out, `href="https://news.example.com/rss/u1"`)
	assert.NotContains(t, out, "<language>")

	out, err = gen.GenerateRSS(nil, "u1", "es")
	require.NoError(t, err)
	assert.Contains(t, out, `href="https://news.example.com/rss/u1?language=es"`)

	parsed, err := gofeed.NewParser().ParseString(out)
	require.NoError(t, err)
	assert.Empty(t, parsed.Items)

	out, err = gen.GenerateRSS(nil, "u 1/x", "a&b")
	require.NoError(t, err)
	assert.Contains(t, out, `href="https://news.example.com/rss/u%201%2Fx?language=a%26b"`)
	_, err = gofeed.NewParser().ParseString(out)
	require.NoError(t, err)
}

func TestGenerator_TruncatesDescription(t *testing.T) {
	gen := NewGenerator("http://localhost")
	long := strings.Repeat("ж", descriptionLimit+10)

	out, err := gen.GenerateRSS([]domain.FeedItem{{ID: "a1", Title: "t", Content: long}}, "u1", "ru")
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().ParseString(out)
	require.NoError(t, err)
	require.Len(t, parsed.Items, 1)
	assert.Equal(t, strings.Repeat("ж", descriptionLimit)+"...", parsed.Items[0].Description)
}
