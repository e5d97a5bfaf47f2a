package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsfeed/pkg/domain"
)

// InteractionRepository keeps the append-only interaction log
type InteractionRepository struct {
	db *sqlx.DB
}

type interactionSQL struct {
	ID             int64     `db:"id"`
	UserID         string    `db:"user_id"`
	ArticleID      string    `db:"article_id"`
	Action         string    `db:"action"`
	ReadingTimeSec int       `db:"reading_time_sec"`
	Engagement     float64   `db:"engagement"`
	CreatedAt      time.Time `db:"created_at"`
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *sqlx.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// CreateInteraction appends an interaction to the log
func (r *InteractionRepository) CreateInteraction(ctx context.Context, it *domain.Interaction) error {
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now().UTC()
	}
	row := &interactionSQL{
		UserID:         it.UserID,
		ArticleID:      it.ArticleID,
		Action:         string(it.Action),
		ReadingTimeSec: it.ReadingTimeSec,
		Engagement:     it.Engagement,
		CreatedAt:      it.CreatedAt,
	}
	query := `
		INSERT INTO interactions (user_id, article_id, action, reading_time_sec, engagement, created_at)
		VALUES (:user_id, :article_id, :action, :reading_time_sec, :engagement, :created_at)
	`
	return withLockRetry(ctx, "create interaction", func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
}

// GetInteractions returns all interactions of the user, oldest first
func (r *InteractionRepository) GetInteractions(ctx context.Context, userID string) ([]domain.Interaction, error) {
	var rows []interactionSQL
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM interactions WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("get interactions: %w", err)
	}

	res := make([]domain.Interaction, len(rows))
	for i, row := range rows {
		res[i] = domain.Interaction{
			UserID:         row.UserID,
			ArticleID:      row.ArticleID,
			Action:         domain.Action(row.Action),
			ReadingTimeSec: row.ReadingTimeSec,
			Engagement:     row.Engagement,
			CreatedAt:      row.CreatedAt,
		}
	}
	return res, nil
}
