package server

import (
	"context"

	"github.com/umputun/newsfeed/pkg/domain"
	"github.com/umputun/newsfeed/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// CreateUser creates a user record
func (r *RepositoryAdapter) CreateUser(ctx context.Context, user *domain.User) error {
	return r.repos.User.CreateUser(ctx, user)
}

// GetUser returns a user by id
func (r *RepositoryAdapter) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return r.repos.User.GetUser(ctx, id)
}

// SetVerified changes the verification flag of a user
func (r *RepositoryAdapter) SetVerified(ctx context.Context, id string, verified bool) error {
	return r.repos.User.SetVerified(ctx, id, verified)
}

// UpdateProfile copies preferences onto the user profile
func (r *RepositoryAdapter) UpdateProfile(ctx context.Context, id string, pref domain.Preference) error {
	return r.repos.User.UpdateProfile(ctx, id, pref)
}

// CreateSession issues a session token for the user
func (r *RepositoryAdapter) CreateSession(ctx context.Context, userID string) (*domain.Session, error) {
	return r.repos.Session.CreateSession(ctx, userID)
}

// GetSession finds the session of a token
func (r *RepositoryAdapter) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	return r.repos.Session.GetSession(ctx, token)
}

// GetPreference returns stored preferences or empty defaults
func (r *RepositoryAdapter) GetPreference(ctx context.Context, userID string) (domain.Preference, error) {
	return r.repos.Preference.GetPreference(ctx, userID)
}

// SetPreference upserts user preferences
func (r *RepositoryAdapter) SetPreference(ctx context.Context, pref domain.Preference) error {
	return r.repos.Preference.SetPreference(ctx, pref)
}

// CreateArticle stores a submitted article
func (r *RepositoryAdapter) CreateArticle(ctx context.Context, article *domain.Article) error {
	return r.repos.Article.CreateArticle(ctx, article)
}

// GetArticle returns an article with cached translations
func (r *RepositoryAdapter) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	return r.repos.Article.GetArticle(ctx, id)
}

// CreateInteraction appends an interaction
func (r *RepositoryAdapter) CreateInteraction(ctx context.Context, it *domain.Interaction) error {
	return r.repos.Interaction.CreateInteraction(ctx, it)
}

// Ping checks the database connection
func (r *RepositoryAdapter) Ping(ctx context.Context) error {
	return r.repos.Ping(ctx)
}
