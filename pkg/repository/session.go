package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsfeed/pkg/domain"
)

// SessionRepository handles session tokens
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession issues a new random token for the user
func (r *SessionRepository) CreateSession(ctx context.Context, userID string) (*domain.Session, error) {
	sess := &domain.Session{UserID: userID, Token: uuid.NewString(), CreatedAt: time.Now().UTC()}
	err := withLockRetry(ctx, "create session", func() error {
		_, err := r.db.ExecContext(ctx, "INSERT INTO sessions (token, user_id, created_at) VALUES (?, ?, ?)",
			sess.Token, sess.UserID, sess.CreatedAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// GetSession finds the session by token
func (r *SessionRepository) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	var sess struct {
		Token     string    `db:"token"`
		UserID    string    `db:"user_id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &sess, "SELECT * FROM sessions WHERE token = ?", token); err != nil {
		return nil, fmt.Errorf("get session: %w", notFound(err))
	}
	return &domain.Session{UserID: sess.UserID, Token: sess.Token, CreatedAt: sess.CreatedAt}, nil
}
