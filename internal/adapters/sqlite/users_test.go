package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubhub/internal/domain"
)

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	_, ok, err := store.FindUser(ctx, "illini")
	require.NoError(t, err)
	assert.False(t, ok)

	user := domain.User{
		Username:     "illini",
		PasswordHash: []byte("$2a$10$hash"),
		CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.CreateUser(ctx, user))

	got, ok, err := store.FindUser(ctx, "illini")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, got)

	err = store.CreateUser(ctx, domain.User{Username: "illini", PasswordHash: []byte("x"), CreatedAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}
