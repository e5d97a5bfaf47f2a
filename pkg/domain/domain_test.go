package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserContext(t *testing.T) {
	uc := NewUserContext([]string{"tech", "science", "tech"}, []Interaction{
		{ArticleID: "a1", Action: ActionLike},
		{ArticleID: "a2", Action: ActionView},
		{ArticleID: "a3", Action: ActionShare},
		{ArticleID: "a4", Action: ActionLike},
	})
	assert.Equal(t, map[string]struct{}{"tech": {}, "science": {}}, uc.Categories)
	assert.Equal(t, map[string]struct{}{"a1": {}, "a4": {}}, uc.Liked)

	empty := NewUserContext(nil, nil)
	assert.NotNil(t, empty.Categories)
	assert.NotNil(t, empty.Liked)
	assert.Empty(t, empty.Liked)
}

func TestAction_Valid(t *testing.T) {
	for _, a := range []Action{ActionView, ActionLike, ActionShare} {
		assert.True(t, a.Valid(), a)
	}
	for _, a := range []Action{"", "LIKE", "bookmark"} {
		assert.False(t, a.Valid(), a)
	}
}

func TestArticle_CachedTranslation(t *testing.T) {
	a := &Article{}
	_, ok := a.CachedTranslation("es")
	assert.False(t, ok)

	a.Translated = map[string]Translation{"es": {Title: "hola", Content: "mundo"}}
	tr, ok := a.CachedTranslation("es")
	require.True(t, ok)
	assert.Equal(t, Translation{Title: "hola", Content: "mundo"}, tr)

	_, ok = a.CachedTranslation("fr")
	assert.False(t, ok)
}

func TestTranslationError(t *testing.T) {
	cause := errors.New("quota exceeded")
	var err error = &TranslationError{ArticleID: "a1", Language: "fr", Err: cause}
	assert.Equal(t, "translate article a1 to fr: quota exceeded", err.Error())
	assert.ErrorIs(t, err, cause)

	var trErr *TranslationError
	require.ErrorAs(t, errors.Join(errors.New("other"), err), &trErr)
	assert.Equal(t, "fr", trErr.Language)
}
