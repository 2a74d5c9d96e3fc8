package ports

import (
	"context"

	"clubhub/internal/domain"
)

// DeckRepository defines the interface for persisting the presented deck
// and the swipe log
type DeckRepository interface {
	// Load returns the last saved deck. A repository that was never saved
	// to returns ok == false.
	Load(ctx context.Context) (deck domain.Deck, ok bool, err error)

	// Save replaces the stored deck with the given snapshot
	Save(ctx context.Context, deck domain.Deck) error

	// SaveSwipe saves deck and appends swipe to the swipe log as one
	// step. When it fails neither is stored.
	SaveSwipe(ctx context.Context, deck domain.Deck, swipe domain.Swipe) error

	// ListSwipes returns the swipe log, newest first
	ListSwipes(ctx context.Context, dir domain.Direction) ([]domain.Swipe, error)

	Close() error
}
