package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubhub/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "deck.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestStore_LoadBeforeSave(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	deck := domain.Deck{
		Spots: []domain.Spot{
			{ID: 3, Name: "Pre-Vet Club", Type: "Professional", URL: "https://example.com/vet.jpg"},
			{ID: 1, Name: "Squirrel Watchers", Type: "Social", URL: "https://example.com/squirrel.jpg"},
		},
		Top:    1,
		LastID: 9,
	}
	require.NoError(t, store.Save(ctx, deck))

	got, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, deck, got)

	// a smaller snapshot replaces the previous one entirely
	shrunk := domain.Deck{Spots: deck.Spots[1:], Top: 0, LastID: 9}
	require.NoError(t, store.Save(ctx, shrunk))

	got, ok, err = store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int64{1}, domain.IDs(got.Spots))
	assert.EqualValues(t, 9, got.LastID)
}

func TestStore_SaveEmptyDeck(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Save(ctx, domain.Deck{LastID: 4}))

	got, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, got.Len())
	assert.EqualValues(t, 4, got.LastID)
}

func TestStore_SwipeLog(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	swipes := []domain.Swipe{
		{Spot: domain.Spot{ID: 1, Name: "Squirrel Watchers"}, Direction: domain.DirectionRight, SessionID: "s1", At: at},
		{Spot: domain.Spot{ID: 2, Name: "Geoff Fan Club"}, Direction: domain.DirectionLeft, SessionID: "s1", At: at.Add(time.Second)},
		{Spot: domain.Spot{ID: 3, Name: "Pre-Vet Club"}, Direction: domain.DirectionRight, SessionID: "s2", At: at.Add(2 * time.Second)},
	}
	deck := domain.NewDeck([]domain.Spot{swipes[0].Spot, swipes[1].Spot, swipes[2].Spot}, 3)
	for _, sw := range swipes {
		deck = deck.Advance()
		require.NoError(t, store.SaveSwipe(ctx, deck, sw))
	}

	got, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, got.Top)

	liked, err := store.ListSwipes(ctx, domain.DirectionRight)
	require.NoError(t, err)
	require.Len(t, liked, 2)
	assert.Equal(t, swipes[2], liked[0])
	assert.Equal(t, swipes[0], liked[1])

	all, err := store.ListSwipes(ctx, domain.DirectionNone)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStore_SaveSwipeIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	saved := domain.NewDeck([]domain.Spot{{ID: 1, Name: "Squirrel Watchers"}}, 1)
	require.NoError(t, store.Save(ctx, saved))

	// the repeated id violates the spots table, so the deck write fails
	broken := domain.Deck{Spots: []domain.Spot{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}, Top: 1, LastID: 1}
	swipe := domain.Swipe{Spot: saved.Spots[0], Direction: domain.DirectionRight, SessionID: "s1", At: time.Now().UTC()}
	require.Error(t, store.SaveSwipe(ctx, broken, swipe))

	got, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, got)

	all, err := store.ListSwipes(ctx, domain.DirectionNone)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_ReopenKeepsDeck(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "deck.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, domain.Deck{Spots: []domain.Spot{{ID: 5, Name: "Illini Star Gazers"}}, LastID: 5}))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	got, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Illini Star Gazers", got.Spots[0].Name)
}
