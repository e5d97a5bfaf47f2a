package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsfeed/pkg/domain"
)

// PreferenceRepository handles user content preferences
type PreferenceRepository struct {
	db *sqlx.DB
}

type preferenceSQL struct {
	UserID     string     `db:"user_id"`
	Language   string     `db:"language"`
	Region     string     `db:"region"`
	Categories stringsSQL `db:"categories"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetPreference returns the stored preference or an empty default for unknown users
func (r *PreferenceRepository) GetPreference(ctx context.Context, userID string) (domain.Preference, error) {
	var row preferenceSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM preferences WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Preference{UserID: userID, Categories: []string{}}, nil
	}
	if err != nil {
		return domain.Preference{}, fmt.Errorf("get preference: %w", err)
	}
	return domain.Preference{
		UserID:     row.UserID,
		Language:   row.Language,
		Region:     row.Region,
		Categories: []string(row.Categories),
	}, nil
}

// SetPreference creates or replaces the user's preference
func (r *PreferenceRepository) SetPreference(ctx context.Context, pref domain.Preference) error {
	query := `
		INSERT INTO preferences (user_id, language, region, categories, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			language = excluded.language,
			region = excluded.region,
			categories = excluded.categories,
			updated_at = excluded.updated_at
	`
	return withLockRetry(ctx, "set preference", func() error {
		_, err := r.db.ExecContext(ctx, query, pref.UserID, pref.Language, pref.Region,
			stringsSQL(pref.Categories), time.Now().UTC())
		return err
	})
}
