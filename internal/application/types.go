package application

import "clubhub/internal/domain"

// Re-export domain types for use by adapters
type (
	Spot      = domain.Spot
	Deck      = domain.Deck
	Swipe     = domain.Swipe
	Direction = domain.Direction
	CardEvent = domain.CardEvent
	Script    = domain.Script[domain.Spot]
	Edit      = domain.Edit[domain.Spot]
)

const (
	DirectionLeft   = domain.DirectionLeft
	DirectionRight  = domain.DirectionRight
	DirectionTop    = domain.DirectionTop
	DirectionBottom = domain.DirectionBottom
)

// ParseDirection parses a swipe direction name
func ParseDirection(s string) (Direction, error) {
	return domain.ParseDirection(s)
}

// Change is the outcome of one deck operation: the snapshot before and
// after, and the edit script that reconciles them.
type Change struct {
	Op     string
	Old    Deck
	New    Deck
	Script Script
}

// Changed reports whether the operation altered the deck or its top position
func (c *Change) Changed() bool {
	return !c.Script.Empty() || c.Old.Top != c.New.Top
}
