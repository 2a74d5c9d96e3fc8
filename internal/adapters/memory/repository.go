package memory

import (
	"context"
	"slices"
	"sync"

	"clubhub/internal/domain"
	"clubhub/internal/ports"
)

// Repository implements ports.DeckRepository in process memory.
// Nothing survives a restart.
type Repository struct {
	mu     sync.Mutex
	deck   domain.Deck
	saved  bool
	swipes []domain.Swipe
	users  map[string]domain.User
}

var (
	_ ports.DeckRepository = (*Repository)(nil)
	_ ports.UserRepository = (*Repository)(nil)
)

// NewRepository creates an empty in-memory repository
func NewRepository() *Repository {
	return &Repository{users: make(map[string]domain.User)}
}

// Load returns the last saved deck
func (r *Repository) Load(ctx context.Context) (domain.Deck, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deck, r.saved, nil
}

// Save stores a copy of the deck
func (r *Repository) Save(ctx context.Context, deck domain.Deck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store(deck)
	return nil
}

// SaveSwipe stores a copy of the deck and appends to the swipe log
func (r *Repository) SaveSwipe(ctx context.Context, deck domain.Deck, swipe domain.Swipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store(deck)
	r.swipes = append(r.swipes, swipe)
	return nil
}

func (r *Repository) store(deck domain.Deck) {
	deck.Spots = slices.Clone(deck.Spots)
	r.deck = deck
	r.saved = true
}

// ListSwipes returns swipes in the given direction, newest first.
// DirectionNone returns every swipe.
func (r *Repository) ListSwipes(ctx context.Context, dir domain.Direction) ([]domain.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Swipe
	for i := len(r.swipes) - 1; i >= 0; i-- {
		if dir == domain.DirectionNone || r.swipes[i].Direction == dir {
			out = append(out, r.swipes[i])
		}
	}
	return out, nil
}

// CreateUser stores a new account
func (r *Repository) CreateUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return domain.ErrUsernameTaken
	}
	r.users[user.Username] = user
	return nil
}

// FindUser looks an account up by username
func (r *Repository) FindUser(ctx context.Context, username string) (domain.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	return user, ok, nil
}

// Close is a no-op
func (r *Repository) Close() error {
	return nil
}
