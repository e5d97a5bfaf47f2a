package domain

import "time"

// AuthProviderAnonymous is the provider of users created without credentials
const AuthProviderAnonymous = "anonymous"

// User represents an application user
type User struct {
	ID           string
	Email        string
	Name         string
	AuthProvider string
	IsVerified   bool
	Language     string
	Region       string
	Categories   []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session binds an opaque token to a user
type Session struct {
	UserID    string
	Token     string
	CreatedAt time.Time
}

// Preference holds user content preferences
type Preference struct {
	UserID     string
	Language   string
	Region     string
	Categories []string
}

// Action is the type of user interaction with an article
type Action string

const (
	ActionView  Action = "view"
	ActionLike  Action = "like"
	ActionShare Action = "share"
)

// Valid reports whether the action is one of the known actions
func (a Action) Valid() bool {
	switch a {
	case ActionView, ActionLike, ActionShare:
		return true
	}
	return false
}

// Interaction is an append-only record of a user acting on an article
type Interaction struct {
	UserID         string
	ArticleID      string
	Action         Action
	ReadingTimeSec int
	Engagement     float64
	CreatedAt      time.Time
}
