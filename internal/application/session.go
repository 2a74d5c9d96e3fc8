package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"clubhub/internal/domain"
	"clubhub/internal/ports"
)

// EditFunc derives the next snapshot from the current one. New cards must
// take their ids from ids.
type EditFunc func(d domain.Deck, ids domain.IDGenerator) (domain.Deck, error)

// Session owns the presented deck. Every operation goes through Mutate,
// which takes a snapshot, edits it, reconciles, persists and publishes the
// result as one step, so a diff is always computed against the snapshot
// the user is looking at.
type Session struct {
	mu        sync.Mutex
	repo      ports.DeckRepository
	catalog   ports.Catalog
	ids       *domain.Counter
	deck      domain.Deck
	lookahead int
	batchSize int
	id        string
	logger    zerolog.Logger
	now       func() time.Time
}

// Option configures a Session
type Option func(*Session)

// WithLookahead sets how close to the end the top may get before paginating
func WithLookahead(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.lookahead = n
		}
	}
}

// WithBatchSize sets how many spots a page appends. Without it a page is
// one full pass over the catalog.
func WithBatchSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithLogger sets the session logger
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithClock overrides the time source used for the swipe log
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession loads the saved deck from repo, or deals a first page from
// catalog when nothing was saved yet.
func NewSession(ctx context.Context, repo ports.DeckRepository, catalog ports.Catalog, opts ...Option) (*Session, error) {
	s := &Session{
		repo:      repo,
		catalog:   catalog,
		lookahead: domain.DefaultLookahead,
		id:        uuid.NewString(),
		logger:    zerolog.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("session", s.id).Logger()

	deck, ok, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	s.ids = domain.NewCounter(deck.LastID)

	if !ok {
		deck = domain.NewDeck(s.Deal(s.ids), s.ids.Last())
		if err := repo.Save(ctx, deck); err != nil {
			return nil, fmt.Errorf("failed to save initial deck: %w", err)
		}
		s.logger.Info().Int("spots", deck.Len()).Msg("dealt new deck")
	}
	s.deck = deck

	return s, nil
}

// ID returns the session identifier recorded with every swipe
func (s *Session) ID() string {
	return s.id
}

// Deck returns the currently presented snapshot
func (s *Session) Deck() domain.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck
}

// Lookahead returns the pagination threshold
func (s *Session) Lookahead() int {
	return s.lookahead
}

// Fresh returns n new spots from the catalog, stamped with ids from ids
func (s *Session) Fresh(ids domain.IDGenerator, n int) []domain.Spot {
	spots := make([]domain.Spot, n)
	for i := range spots {
		spots[i] = s.catalog.Next()
	}
	return domain.Stamp(ids, spots...)
}

// BatchSize returns the page size, 0 when a page is the whole catalog
func (s *Session) BatchSize() int {
	return s.batchSize
}

// Deal returns the whole catalog in order, stamped with ids from ids
func (s *Session) Deal(ids domain.IDGenerator) []domain.Spot {
	return domain.Stamp(ids, s.catalog.Batch()...)
}

// Page returns the spots appended by pagination, stamped with ids from ids.
// Pages of a configured batch size continue the catalog cycle.
func (s *Session) Page(ids domain.IDGenerator) []domain.Spot {
	if s.batchSize > 0 {
		return s.Fresh(ids, s.batchSize)
	}
	return s.Deal(ids)
}

// Mutate applies edit to the current deck as one atomic step.
func (s *Session) Mutate(ctx context.Context, op string, edit EditFunc) (*Change, error) {
	return s.mutate(ctx, op, edit, s.repo.Save)
}

// mutate is Mutate with the persistence step supplied by the caller, so an
// operation can store a side record together with the deck.
func (s *Session) mutate(ctx context.Context, op string, edit EditFunc, save func(context.Context, domain.Deck) error) (*Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.deck
	next, err := edit(old, s.ids)
	if err != nil {
		return nil, &OperationError{Op: op, Err: err}
	}
	next.LastID = max(next.LastID, s.ids.Last())

	script, err := domain.DiffSpots(old.Spots, next.Spots)
	if err != nil {
		return nil, &OperationError{Op: op, Err: err}
	}

	if err := save(ctx, next); err != nil {
		return nil, &OperationError{Op: op, Err: fmt.Errorf("failed to save deck: %w", err)}
	}
	s.deck = next

	s.logger.Debug().
		Str("op", op).
		Int("top", next.Top).
		Int("spots", next.Len()).
		Str("edits", script.Summary()).
		Msg("deck changed")

	return &Change{Op: op, Old: old, New: next, Script: script}, nil
}

// Handle reacts to an event from the card stack.
//
// Swiped advances the top, logs the swipe and paginates when the top comes
// within the lookahead of the end. Rewound brings the last card back. The
// other events only get logged and return a nil Change.
func (s *Session) Handle(ctx context.Context, ev domain.CardEvent) (*Change, error) {
	switch ev.Kind {
	case domain.EventSwiped:
		return s.swipe(ctx, ev.Direction)

	case domain.EventRewound:
		return s.Mutate(ctx, "rewind", func(d domain.Deck, _ domain.IDGenerator) (domain.Deck, error) {
			if d.Top <= 0 {
				return d, ErrNothingToRewind
			}
			return d.Rewind(), nil
		})

	case domain.EventDragging:
		s.logger.Debug().
			Str("event", ev.Kind.String()).
			Str("direction", ev.Direction.String()).
			Float64("ratio", ev.Ratio).
			Msg("card event")

	case domain.EventAppeared, domain.EventDisappeared:
		s.logger.Debug().
			Str("event", ev.Kind.String()).
			Int("position", ev.Position).
			Int64("id", ev.Spot.ID).
			Str("spot", ev.Spot.Name).
			Msg("card event")

	default:
		s.logger.Debug().
			Str("event", ev.Kind.String()).
			Int("top", s.Deck().Top).
			Msg("card event")
	}

	return nil, nil
}

func (s *Session) swipe(ctx context.Context, dir domain.Direction) (*Change, error) {
	if err := ValidateSwipeDirection(dir); err != nil {
		return nil, err
	}

	var swipe domain.Swipe
	edit := func(d domain.Deck, ids domain.IDGenerator) (domain.Deck, error) {
		top, ok := d.TopSpot()
		if !ok {
			return d, ErrNoCardOnTop
		}
		swipe = domain.Swipe{Spot: top, Direction: dir, SessionID: s.id, At: s.now()}
		d = d.Advance()
		if domain.ShouldPaginate(d.Top, d.Len(), s.lookahead) {
			d = d.Append(s.Page(ids)...)
		}
		return d, nil
	}
	// the advanced deck and its log entry are stored together or not at all
	save := func(ctx context.Context, next domain.Deck) error {
		return s.repo.SaveSwipe(ctx, next, swipe)
	}

	change, err := s.mutate(ctx, "swipe", edit, save)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("event", domain.EventSwiped.String()).
		Str("direction", dir.String()).
		Int("top", change.New.Top).
		Str("spot", swipe.Spot.Name).
		Msg("card event")

	return change, nil
}
