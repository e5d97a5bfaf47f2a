package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/singleflight"

	"github.com/umputun/newsfeed/pkg/domain"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/preference_store.go -pkg mocks -skip-ensure -fmt goimports . PreferenceStore
//go:generate moq -out mocks/interaction_store.go -pkg mocks -skip-ensure -fmt goimports . InteractionStore
//go:generate moq -out mocks/translator.go -pkg mocks -skip-ensure -fmt goimports . Translator

// ArticleStore provides candidate articles and the translation cache
type ArticleStore interface {
	FindArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	UpsertTranslation(ctx context.Context, id, lang string, tr domain.Translation) error
}

// PreferenceStore returns user preferences, empty for unknown users
type PreferenceStore interface {
	GetPreference(ctx context.Context, userID string) (domain.Preference, error)
}

// InteractionStore returns the interaction log of a user
type InteractionStore interface {
	GetInteractions(ctx context.Context, userID string) ([]domain.Interaction, error)
}

// Translator translates text into the target language
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Assembler builds ranked, optionally translated feeds
type Assembler struct {
	articles         ArticleStore
	preferences      PreferenceStore
	interactions     InteractionStore
	translator       Translator
	scorer           Scorer
	translateTimeout time.Duration
	filterByLanguage bool

	inflight singleflight.Group
}

// AssemblerConfig holds dependencies and settings of the Assembler
type AssemblerConfig struct {
	Articles     ArticleStore
	Preferences  PreferenceStore
	Interactions InteractionStore
	Translator   Translator
	Scorer       Scorer

	// TranslateTimeout bounds every single translator call, no bound if zero
	TranslateTimeout time.Duration

	// FilterByLanguage restricts candidates to an exact match of the resolved
	// language. With it set, foreign articles never reach the feed, so nothing
	// gets translated. Off by default: the resolved language is then only the
	// translation target and articles in any language are candidates.
	FilterByLanguage bool
}

// FeedRequest describes a feed to assemble.
// Language and Region override the stored preference when set.
type FeedRequest struct {
	UserID   string
	Language string
	Region   string
	Limit    int
}

// NewAssembler makes an Assembler from the provided configuration
func NewAssembler(cfg AssemblerConfig) *Assembler {
	return &Assembler{
		articles:         cfg.Articles,
		preferences:      cfg.Preferences,
		interactions:     cfg.Interactions,
		translator:       cfg.Translator,
		scorer:           cfg.Scorer,
		translateTimeout: cfg.TranslateTimeout,
		filterByLanguage: cfg.FilterByLanguage,
	}
}

// AssembleFeed returns up to req.Limit published articles ranked for the user.
// Articles not written in the resolved language are translated through the
// translation cache. A failed translation leaves its item untranslated.
// Limit bounds are checked by the caller, non-positive limit means no limit.
func (a *Assembler) AssembleFeed(ctx context.Context, req FeedRequest) ([]domain.FeedItem, error) {
	pref, err := a.preferences.GetPreference(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	lang := firstNonEmpty(req.Language, pref.Language)
	region := firstNonEmpty(req.Region, pref.Region)

	published := true
	filter := domain.ArticleFilter{Published: &published, Region: region}
	if a.filterByLanguage {
		filter.Language = lang
	}
	candidates, err := a.articles.FindArticles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load articles: %w", err)
	}
	if len(candidates) == 0 {
		return []domain.FeedItem{}, nil
	}

	interactions, err := a.interactions.GetInteractions(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}

	ranked := a.scorer.Rank(candidates, domain.NewUserContext(pref.Categories, interactions))
	if req.Limit > 0 && len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	items := make([]domain.FeedItem, 0, len(ranked))
	for i := range ranked {
		article := &ranked[i].Article
		item := toFeedItem(article)
		if lang != "" && article.Language != lang {
			tr, err := a.cachedTranslation(ctx, article, lang)
			if err != nil {
				lgr.Printf("[WARN] can't translate article %s to %s, keep original: %v", article.ID, lang, err)
			} else {
				item.Title, item.Content, item.Language = tr.Title, tr.Content, lang
			}
		}
		items = append(items, item)
	}

	lgr.Printf("[DEBUG] assembled feed for %q: %d of %d candidates, lang=%q, region=%q",
		req.UserID, len(items), len(candidates), lang, region)
	return items, nil
}

// Translate always recomputes the translation of an article and overwrites the
// cached entry. Unlike the feed path it never reads the cache.
func (a *Assembler) Translate(ctx context.Context, articleID, targetLang string) (domain.Translation, error) {
	if targetLang == "" {
		return domain.Translation{}, fmt.Errorf("empty target language: %w", domain.ErrInvalidArgument)
	}

	article, err := a.articles.GetArticle(ctx, articleID)
	if err != nil {
		return domain.Translation{}, fmt.Errorf("load article: %w", err)
	}

	// the cache never holds the native language
	if article.Language == targetLang {
		return domain.Translation{Title: article.Title, Content: article.Content}, nil
	}

	tr, err := a.translatePair(ctx, article, targetLang)
	if err != nil {
		return domain.Translation{}, err
	}
	if err := a.articles.UpsertTranslation(ctx, article.ID, targetLang, tr); err != nil {
		return domain.Translation{}, fmt.Errorf("store translation: %w", err)
	}
	return tr, nil
}

// cachedTranslation returns the cached pair or translates and writes it through.
// Concurrent misses for the same article and language share one translation.
// The shared call is detached from the caller's cancellation, so a dropped
// request can't fail the translation for others waiting on it.
func (a *Assembler) cachedTranslation(ctx context.Context, article *domain.Article, lang string) (domain.Translation, error) {
	if tr, ok := article.CachedTranslation(lang); ok {
		return tr, nil
	}

	sharedCtx := context.WithoutCancel(ctx)
	v, err, _ := a.inflight.Do(article.ID+"/"+lang, func() (interface{}, error) {
		tr, err := a.translatePair(sharedCtx, article, lang)
		if err != nil {
			return domain.Translation{}, err
		}
		if err := a.articles.UpsertTranslation(sharedCtx, article.ID, lang, tr); err != nil {
			// the fresh pair is still good for this response
			lgr.Printf("[WARN] can't store translation of %s to %s: %v", article.ID, lang, err)
		}
		return tr, nil
	})
	if err != nil {
		return domain.Translation{}, err
	}
	return v.(domain.Translation), nil
}

// translatePair translates title and content of the article
func (a *Assembler) translatePair(ctx context.Context, article *domain.Article, lang string) (domain.Translation, error) {
	if a.translator == nil {
		return domain.Translation{}, &domain.TranslationError{ArticleID: article.ID, Language: lang,
			Err: errors.New("no translator configured")}
	}
	title, err := a.translateText(ctx, article.Title, lang)
	if err != nil {
		return domain.Translation{}, &domain.TranslationError{ArticleID: article.ID, Language: lang, Err: err}
	}
	content, err := a.translateText(ctx, article.Content, lang)
	if err != nil {
		return domain.Translation{}, &domain.TranslationError{ArticleID: article.ID, Language: lang, Err: err}
	}
	return domain.Translation{Title: title, Content: content}, nil
}

func (a *Assembler) translateText(ctx context.Context, text, lang string) (string, error) {
	if a.translateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.translateTimeout)
		defer cancel()
	}
	return a.translator.Translate(ctx, text, lang)
}

func toFeedItem(article *domain.Article) domain.FeedItem {
	categories := article.Categories
	if categories == nil {
		categories = []string{}
	}
	return domain.FeedItem{
		ID:               article.ID,
		Title:            article.Title,
		Content:          article.Content,
		Language:         article.Language,
		Region:           article.Region,
		Categories:       categories,
		ModerationStatus: article.ModerationStatus,
		CreatedAt:        article.CreatedAt,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
