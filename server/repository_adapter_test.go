package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsfeed/pkg/domain"
	"github.com/umputun/newsfeed/pkg/repository"
)

func setupTestAdapter(t *testing.T) *RepositoryAdapter {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return NewRepositoryAdapter(repos)
}

func TestRepositoryAdapter(t *testing.T) {
	adapter := setupTestAdapter(t)
	ctx := context.Background()
	var _ Database = adapter

	require.NoError(t, adapter.Ping(ctx))

	user := &domain.User{}
	require.NoError(t, adapter.CreateUser(ctx, user))
	require.NotEmpty(t, user.ID)

	session, err := adapter.CreateSession(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.NotEmpty(t, session.Token)
	found, err := adapter.GetSession(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)

	pref := domain.Preference{UserID: user.ID, Language: "es", Region: "MX", Categories: []string{"tech"}}
	require.NoError(t, adapter.SetPreference(ctx, pref))
	require.NoError(t, adapter.UpdateProfile(ctx, user.ID, pref))
	got, err := adapter.GetPreference(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, pref, got)

	require.NoError(t, adapter.SetVerified(ctx, user.ID, true))
	stored, err := adapter.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
	assert.Equal(t, "es", stored.Language)
	assert.Equal(t, []string{"tech"}, stored.Categories)

	article := &domain.Article{Title: "T", Content: "C", AuthorID: user.ID, IsPublished: true}
	require.NoError(t, adapter.CreateArticle(ctx, article))
	loaded, err := adapter.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", loaded.Title)
	assert.Equal(t, domain.DefaultLanguage, loaded.Language)

	require.NoError(t, adapter.CreateInteraction(ctx, &domain.Interaction{UserID: user.ID, ArticleID: article.ID,
		Action: domain.ActionLike}))
}

func TestRepositoryAdapter_Errors(t *testing.T) {
	adapter := setupTestAdapter(t)
	ctx := context.Background()

	_, err := adapter.GetUser(ctx, "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = adapter.GetUser(ctx, "9b2f3c1e-8a4d-4e6f-9c0b-1d2e3f4a5b6c")
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = adapter.SetVerified(ctx, "9b2f3c1e-8a4d-4e6f-9c0b-1d2e3f4a5b6c", true)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = adapter.GetArticle(ctx, "9b2f3c1e-8a4d-4e6f-9c0b-1d2e3f4a5b6c")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = adapter.GetSession(ctx, "no-such-token")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
