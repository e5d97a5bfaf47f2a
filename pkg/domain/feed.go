package domain

import "time"

// UserContext is the per-request view of a user used for scoring
type UserContext struct {
	Categories map[string]struct{}
	Liked      map[string]struct{}
}

// NewUserContext builds a context from preference categories and interactions.
// Only interactions with the like action contribute to the liked set.
func NewUserContext(categories []string, interactions []Interaction) UserContext {
	uc := UserContext{
		Categories: make(map[string]struct{}, len(categories)),
		Liked:      make(map[string]struct{}),
	}
	for _, c := range categories {
		uc.Categories[c] = struct{}{}
	}
	for _, it := range interactions {
		if it.Action == ActionLike {
			uc.Liked[it.ArticleID] = struct{}{}
		}
	}
	return uc
}

// ScoredArticle is an article paired with its relevance score
type ScoredArticle struct {
	Article
	Score float64
}

// FeedItem is one entry of an assembled feed
type FeedItem struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Content          string           `json:"content"`
	Language         string           `json:"language"`
	Region           string           `json:"region,omitempty"`
	Categories       []string         `json:"categories"`
	ModerationStatus ModerationStatus `json:"moderation_status"`
	CreatedAt        time.Time        `json:"created_at"`
}
