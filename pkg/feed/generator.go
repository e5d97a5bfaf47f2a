package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/newsfeed/pkg/domain"
)

// descriptionLimit caps the item description taken from the article content
const descriptionLimit = 500

// Generator renders assembled feeds as RSS
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 document from feed items of a user
func (g *Generator) GenerateRSS(items []domain.FeedItem, userID, lang string) (string, error) {
	selfLink := fmt.Sprintf("%s/rss/%s", g.baseURL, url.PathEscape(userID))
	if lang != "" {
		selfLink += "?language=" + url.QueryEscape(lang)
	}

	rssItems := make([]*RSSItem, 0, len(items))
	for _, item := range items {
		rssItems = append(rssItems, g.convertToRSSItem(item))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "Newsfeed - personal feed",
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Top %d articles ranked for the reader", len(items)),
			Language:      lang,
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a feed item to an RSS item
func (g *Generator) convertToRSSItem(item domain.FeedItem) *RSSItem {
	desc := item.Content
	if r := []rune(desc); len(r) > descriptionLimit {
		desc = string(r[:descriptionLimit]) + "..."
	}

	res := &RSSItem{
		Title:       item.Title,
		Link:        fmt.Sprintf("%s/api/v1/articles/%s", g.baseURL, item.ID),
		GUID:        RSSGUID{Value: item.ID},
		Description: desc,
		Categories:  item.Categories,
	}
	if !item.CreatedAt.IsZero() {
		res.PubDate = item.CreatedAt.Format(time.RFC1123Z)
	}
	return res
}
