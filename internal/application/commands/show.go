package commands

import (
	"context"

	"clubhub/internal/application"
	"clubhub/internal/domain"
	"clubhub/internal/ports"
)

// ShowCommand returns the currently presented deck
type ShowCommand struct {
	session *application.Session
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(session *application.Session) *ShowCommand {
	return &ShowCommand{session: session}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context) (domain.Deck, error) {
	return c.session.Deck(), nil
}

// ListSwipesCommand lists the swipe log, optionally filtered by direction
type ListSwipesCommand struct {
	repo      ports.DeckRepository
	Direction domain.Direction
}

// NewListSwipesCommand creates a new ListSwipesCommand. DirectionNone lists every swipe.
func NewListSwipesCommand(repo ports.DeckRepository, dir domain.Direction) *ListSwipesCommand {
	return &ListSwipesCommand{repo: repo, Direction: dir}
}

// Execute runs the list swipes command
func (c *ListSwipesCommand) Execute(ctx context.Context) ([]domain.Swipe, error) {
	return c.repo.ListSwipes(ctx, c.Direction)
}
