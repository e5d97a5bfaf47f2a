package domain

import "time"

// ModerationStatus is the tri-state moderation classification of an article
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// DefaultLanguage is used for articles submitted without a language
const DefaultLanguage = "en"

// Article represents a submitted news article
type Article struct {
	ID               string
	Title            string
	Content          string
	AuthorID         string
	Language         string
	Region           string
	Categories       []string
	Source           string
	MediaURLs        []string
	IsPublished      bool
	ModerationStatus ModerationStatus
	ModerationNotes  string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Translated keeps cached translations keyed by target language code
	Translated map[string]Translation
}

// Translation is a translated title/content pair
type Translation struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ArticleFilter selects candidate articles, empty fields are not applied
type ArticleFilter struct {
	Published *bool
	Language  string
	Region    string
}

// ModerationResult is the outcome of the moderation gate
type ModerationResult struct {
	Status ModerationStatus
	Notes  string
}

// CachedTranslation returns the cached translation for lang, if any
func (a *Article) CachedTranslation(lang string) (Translation, bool) {
	if a.Translated == nil {
		return Translation{}, false
	}
	tr, ok := a.Translated[lang]
	return tr, ok
}
