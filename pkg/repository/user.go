package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsfeed/pkg/domain"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	db *sqlx.DB
}

// userSQL represents a user for SQL operations
type userSQL struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	AuthProvider string     `db:"auth_provider"`
	IsVerified   bool       `db:"is_verified"`
	Language     string     `db:"language"`
	Region       string     `db:"region"`
	Categories   stringsSQL `db:"categories"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user, assigning id and timestamps
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.AuthProvider == "" {
		user.AuthProvider = domain.AuthProviderAnonymous
	}
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	row := &userSQL{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		AuthProvider: user.AuthProvider,
		IsVerified:   user.IsVerified,
		Language:     user.Language,
		Region:       user.Region,
		Categories:   stringsSQL(user.Categories),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	query := `
		INSERT INTO users (
			id, email, name, auth_provider, is_verified, language, region, categories, created_at, updated_at
		) VALUES (
			:id, :email, :name, :auth_provider, :is_verified, :language, :region, :categories, :created_at, :updated_at
		)
	`
	return withLockRetry(ctx, "create user", func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
}

// GetUser retrieves a user by id
func (r *UserRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if err := parseID(id); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	var row userSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		AuthProvider: row.AuthProvider,
		IsVerified:   row.IsVerified,
		Language:     row.Language,
		Region:       row.Region,
		Categories:   []string(row.Categories),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

// SetVerified marks the user as verified for content upload
func (r *UserRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	return r.update(ctx, "set verified", id,
		"UPDATE users SET is_verified = ?, updated_at = ? WHERE id = ?", verified, time.Now().UTC(), id)
}

// UpdateProfile mirrors content preferences onto the user profile
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, pref domain.Preference) error {
	return r.update(ctx, "update profile", id,
		"UPDATE users SET language = ?, region = ?, categories = ?, updated_at = ? WHERE id = ?",
		pref.Language, pref.Region, stringsSQL(pref.Categories), time.Now().UTC(), id)
}

// update runs a single-row user update, reporting ErrNotFound if nothing matched
func (r *UserRepository) update(ctx context.Context, op, id, query string, args ...interface{}) error {
	return withLockRetry(ctx, op, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}
