package commands

import (
	"context"

	"clubhub/internal/application"
	"clubhub/internal/domain"
)

// SwipeCommand swipes the card on top in a direction: right likes, left skips
type SwipeCommand struct {
	session   *application.Session
	Direction domain.Direction
}

// NewSwipeCommand creates a new SwipeCommand
func NewSwipeCommand(session *application.Session, dir domain.Direction) *SwipeCommand {
	return &SwipeCommand{session: session, Direction: dir}
}

// Validate checks if the swipe is valid
func (c *SwipeCommand) Validate() error {
	return application.ValidateSwipeDirection(c.Direction)
}

// Execute runs the swipe command
func (c *SwipeCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	change, err := c.session.Handle(ctx, domain.Swiped(c.Direction))
	if err != nil {
		return nil, err
	}

	swiped, _ := change.Old.TopSpot()
	verb := "Skipped"
	if c.Direction.Liked() {
		verb = "Liked"
	}
	return newResult(change, "%s %s", verb, swiped.Name), nil
}

// RewindCommand brings the last swiped card back on top
type RewindCommand struct {
	session *application.Session
}

// NewRewindCommand creates a new RewindCommand
func NewRewindCommand(session *application.Session) *RewindCommand {
	return &RewindCommand{session: session}
}

// Validate checks if the rewind is valid
func (c *RewindCommand) Validate() error {
	return nil
}

// Execute runs the rewind command
func (c *RewindCommand) Execute(ctx context.Context) (*Result, error) {
	change, err := c.session.Handle(ctx, domain.Rewound())
	if err != nil {
		return nil, err
	}

	top, _ := change.New.TopSpot()
	return newResult(change, "Rewound to %s", top.Name), nil
}
