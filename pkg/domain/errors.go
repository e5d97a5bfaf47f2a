package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for unknown article or user ids
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned for malformed ids and out of range parameters
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized is returned for admin actions with a wrong credential
	ErrUnauthorized = errors.New("unauthorized")
)

// TranslationError reports a translator failure for one article
type TranslationError struct {
	ArticleID string
	Language  string
	Err       error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translate article %s to %s: %v", e.ArticleID, e.Language, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}
