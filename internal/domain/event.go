package domain

import (
	"fmt"
	"strings"
	"time"
)

// Direction is the way a card leaves or comes back to the stack.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionTop
	DirectionBottom
)

// String returns a human-readable name for the direction
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionTop:
		return "top"
	case DirectionBottom:
		return "bottom"
	default:
		return "none"
	}
}

// ParseDirection parses a direction name. "like" and "skip" are accepted
// as aliases for right and left.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "skip":
		return DirectionLeft, nil
	case "right", "like":
		return DirectionRight, nil
	case "top", "up":
		return DirectionTop, nil
	case "bottom", "down":
		return DirectionBottom, nil
	default:
		return DirectionNone, fmt.Errorf("unknown direction: %q", s)
	}
}

// Liked reports whether a swipe in this direction counts as a like.
func (d Direction) Liked() bool {
	return d == DirectionRight
}

// EventKind tags a CardEvent.
type EventKind int

const (
	EventDragging EventKind = iota
	EventSwiped
	EventRewound
	EventCanceled
	EventAppeared
	EventDisappeared
)

// String returns a human-readable name for the event kind
func (k EventKind) String() string {
	switch k {
	case EventDragging:
		return "dragging"
	case EventSwiped:
		return "swiped"
	case EventRewound:
		return "rewound"
	case EventCanceled:
		return "canceled"
	case EventAppeared:
		return "appeared"
	case EventDisappeared:
		return "disappeared"
	default:
		return "unknown"
	}
}

// CardEvent is emitted by the presentation layer while the user handles
// the card stack. Only the fields relevant to Kind are set.
type CardEvent struct {
	Kind      EventKind
	Direction Direction // Dragging, Swiped
	Ratio     float64   // Dragging: 0 (resting) to 1 (swipe threshold reached)
	Position  int       // Appeared, Disappeared: index of the card in its snapshot
	Spot      Spot      // Appeared, Disappeared: the card itself
}

// Dragging builds a drag progress event.
func Dragging(d Direction, ratio float64) CardEvent {
	return CardEvent{Kind: EventDragging, Direction: d, Ratio: ratio}
}

// Swiped builds a swipe completion event.
func Swiped(d Direction) CardEvent {
	return CardEvent{Kind: EventSwiped, Direction: d}
}

// Rewound builds a rewind event.
func Rewound() CardEvent {
	return CardEvent{Kind: EventRewound}
}

// Canceled builds a drag cancellation event.
func Canceled() CardEvent {
	return CardEvent{Kind: EventCanceled}
}

// Appeared builds an event for a card becoming the top of the stack.
func Appeared(position int, spot Spot) CardEvent {
	return CardEvent{Kind: EventAppeared, Position: position, Spot: spot}
}

// Disappeared builds an event for a card leaving the top of the stack.
// position refers to the snapshot the card left, which may no longer be
// the presented one.
func Disappeared(position int, spot Spot) CardEvent {
	return CardEvent{Kind: EventDisappeared, Position: position, Spot: spot}
}

// Swipe is one entry of the swipe log.
type Swipe struct {
	Spot      Spot
	Direction Direction
	SessionID string
	At        time.Time
}
