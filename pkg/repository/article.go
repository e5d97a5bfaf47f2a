package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsfeed/pkg/domain"
)

// ArticleRepository handles article and translation cache operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID               string     `db:"id"`
	Title            string     `db:"title"`
	Content          string     `db:"content"`
	AuthorID         string     `db:"author_id"`
	Language         string     `db:"language"`
	Region           string     `db:"region"`
	Categories       stringsSQL `db:"categories"`
	Source           string     `db:"source"`
	MediaURLs        stringsSQL `db:"media_urls"`
	IsPublished      bool       `db:"is_published"`
	ModerationStatus string     `db:"moderation_status"`
	ModerationNotes  string     `db:"moderation_notes"`
	CreatedAt        *time.Time `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

// translationSQL is a row of the translation cache
type translationSQL struct {
	ArticleID string    `db:"article_id"`
	Language  string    `db:"language"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// CreateArticle inserts a new article, assigning id and timestamps when missing
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	if article.Language == "" {
		article.Language = domain.DefaultLanguage
	}
	if article.ModerationStatus == "" {
		article.ModerationStatus = domain.ModerationPending
	}
	now := time.Now().UTC()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	if article.UpdatedAt.IsZero() {
		article.UpdatedAt = now
	}

	row := &articleSQL{
		ID:               article.ID,
		Title:            article.Title,
		Content:          article.Content,
		AuthorID:         article.AuthorID,
		Language:         article.Language,
		Region:           article.Region,
		Categories:       stringsSQL(article.Categories),
		Source:           article.Source,
		MediaURLs:        stringsSQL(article.MediaURLs),
		IsPublished:      article.IsPublished,
		ModerationStatus: string(article.ModerationStatus),
		ModerationNotes:  article.ModerationNotes,
		CreatedAt:        &article.CreatedAt,
		UpdatedAt:        &article.UpdatedAt,
	}

	query := `
		INSERT INTO articles (
			id, title, content, author_id, language, region, categories, source,
			media_urls, is_published, moderation_status, moderation_notes, created_at, updated_at
		) VALUES (
			:id, :title, :content, :author_id, :language, :region, :categories, :source,
			:media_urls, :is_published, :moderation_status, :moderation_notes, :created_at, :updated_at
		)
	`
	return withLockRetry(ctx, "create article", func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
}

// GetArticle retrieves an article by id together with its cached translations
func (r *ArticleRepository) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	if err := parseID(id); err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	var row articleSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get article %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	article := r.toDomainArticle(&row)
	translations, err := r.GetTranslations(ctx, id)
	if err != nil {
		return nil, err
	}
	article.Translated = translations
	return &article, nil
}

// FindArticles returns articles matching the filter in insertion order
func (r *ArticleRepository) FindArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	var conds []string
	var args []interface{}
	if filter.Published != nil {
		conds = append(conds, "is_published = ?")
		args = append(args, *filter.Published)
	}
	if filter.Language != "" {
		conds = append(conds, "language = ?")
		args = append(args, filter.Language)
	}
	if filter.Region != "" {
		conds = append(conds, "region = ?")
		args = append(args, filter.Region)
	}

	query := "SELECT * FROM articles"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY rowid"

	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	if len(rows) == 0 {
		return []domain.Article{}, nil
	}

	ids := make([]string, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	translations, err := r.translationsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, len(rows))
	for i := range rows {
		articles[i] = r.toDomainArticle(&rows[i])
		articles[i].Translated = translations[rows[i].ID]
	}
	return articles, nil
}

// UpsertTranslation stores the translation of an article for lang, replacing
// only the entry of that language.
func (r *ArticleRepository) UpsertTranslation(ctx context.Context, id, lang string, tr domain.Translation) error {
	if err := parseID(id); err != nil {
		return fmt.Errorf("upsert translation: %w", err)
	}
	if lang == "" {
		return fmt.Errorf("upsert translation: empty language: %w", domain.ErrInvalidArgument)
	}

	// the select form skips unknown articles without relying on foreign keys
	query := `
		INSERT INTO article_translations (article_id, language, title, content, updated_at)
		SELECT ?, ?, ?, ?, ? WHERE EXISTS (SELECT 1 FROM articles WHERE id = ?)
		ON CONFLICT(article_id, language) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			updated_at = excluded.updated_at
	`
	return withLockRetry(ctx, "upsert translation", func() error {
		res, err := r.db.ExecContext(ctx, query, id, lang, tr.Title, tr.Content, time.Now().UTC(), id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

// GetTranslations returns all cached translations of an article keyed by language
func (r *ArticleRepository) GetTranslations(ctx context.Context, id string) (map[string]domain.Translation, error) {
	res, err := r.translationsFor(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if tr, ok := res[id]; ok {
		return tr, nil
	}
	return map[string]domain.Translation{}, nil
}

// translationsFor loads cached translations for a batch of articles
func (r *ArticleRepository) translationsFor(ctx context.Context, ids []string) (map[string]map[string]domain.Translation, error) {
	query, args, err := sqlx.In(`SELECT * FROM article_translations WHERE article_id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("build translations query: %w", err)
	}

	var rows []translationSQL
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get translations: %w", err)
	}

	res := make(map[string]map[string]domain.Translation, len(ids))
	for _, row := range rows {
		if res[row.ArticleID] == nil {
			res[row.ArticleID] = map[string]domain.Translation{}
		}
		res[row.ArticleID][row.Language] = domain.Translation{Title: row.Title, Content: row.Content}
	}
	return res, nil
}

// toDomainArticle converts articleSQL to domain.Article
func (r *ArticleRepository) toDomainArticle(row *articleSQL) domain.Article {
	a := domain.Article{
		ID:               row.ID,
		Title:            row.Title,
		Content:          row.Content,
		AuthorID:         row.AuthorID,
		Language:         row.Language,
		Region:           row.Region,
		Categories:       []string(row.Categories),
		Source:           row.Source,
		MediaURLs:        []string(row.MediaURLs),
		IsPublished:      row.IsPublished,
		ModerationStatus: domain.ModerationStatus(row.ModerationStatus),
		ModerationNotes:  row.ModerationNotes,
	}
	if row.CreatedAt != nil {
		a.CreatedAt = *row.CreatedAt
	}
	if row.UpdatedAt != nil {
		a.UpdatedAt = *row.UpdatedAt
	}
	return a
}
