package commands

import (
	"context"
	"fmt"

	"clubhub/internal/application"
	"clubhub/internal/domain"
)

// Result contains the outcome of a deck command
type Result struct {
	Change  *application.Change
	Message string
}

// DeckCommand is implemented by every command that edits the deck
type DeckCommand interface {
	Validate() error
	Execute(ctx context.Context) (*Result, error)
}

func newResult(change *application.Change, format string, args ...any) *Result {
	msg := fmt.Sprintf(format, args...)
	if change != nil {
		msg = fmt.Sprintf("%s (%s)", msg, change.Script.Summary())
	}
	return &Result{Change: change, Message: msg}
}

func plural(n int) string {
	if n == 1 {
		return "spot"
	}
	return "spots"
}

// AddFirstCommand inserts fresh spots at the top of the stack
type AddFirstCommand struct {
	session *application.Session
	Count   int
}

// NewAddFirstCommand creates a new AddFirstCommand
func NewAddFirstCommand(session *application.Session, count int) *AddFirstCommand {
	return &AddFirstCommand{session: session, Count: count}
}

// Validate checks if the add operation is valid
func (c *AddFirstCommand) Validate() error {
	return application.ValidateCount("count", c.Count)
}

// Execute runs the add first command
func (c *AddFirstCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	change, err := c.session.Mutate(ctx, OpAddFirst, func(d domain.Deck, ids domain.IDGenerator) (domain.Deck, error) {
		return d.InsertAtTop(c.session.Fresh(ids, c.Count)...), nil
	})
	if err != nil {
		return nil, err
	}

	return newResult(change, "Added %d %s to first", c.Count, plural(c.Count)), nil
}

// AddLastCommand appends fresh spots at the end of the stack
type AddLastCommand struct {
	session *application.Session
	Count   int
}

// NewAddLastCommand creates a new AddLastCommand
func NewAddLastCommand(session *application.Session, count int) *AddLastCommand {
	return &AddLastCommand{session: session, Count: count}
}

// Validate checks if the add operation is valid
func (c *AddLastCommand) Validate() error {
	return application.ValidateCount("count", c.Count)
}

// Execute runs the add last command
func (c *AddLastCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	change, err := c.session.Mutate(ctx, OpAddLast, func(d domain.Deck, ids domain.IDGenerator) (domain.Deck, error) {
		return d.Append(c.session.Fresh(ids, c.Count)...), nil
	})
	if err != nil {
		return nil, err
	}

	return newResult(change, "Added %d %s to last", c.Count, plural(c.Count)), nil
}

// RemoveFirstCommand removes spots starting at the top of the stack.
// On an empty deck it changes nothing.
type RemoveFirstCommand struct {
	session *application.Session
	Count   int
}

// NewRemoveFirstCommand creates a new RemoveFirstCommand
func NewRemoveFirstCommand(session *application.Session, count int) *RemoveFirstCommand {
	return &RemoveFirstCommand{session: session, Count: count}
}

// Validate checks if the remove operation is valid
func (c *RemoveFirstCommand) Validate() error {
	return application.ValidateCount("count", c.Count)
}

// Execute runs the remove first command
func (c *RemoveFirstCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	change, err := c.session.Mutate(ctx, OpRemoveFirst, func(d domain.Deck, _ domain.IDGenerator) (domain.Deck, error) {
		return d.RemoveFromTop(c.Count), nil
	})
	if err != nil {
		return nil, err
	}

	removed := change.Script.Removals()
	return newResult(change, "Removed %d %s from first", removed, plural(removed)), nil
}

// RemoveLastCommand removes spots from the end of the stack.
// On an empty deck it changes nothing.
type RemoveLastCommand struct {
	session *application.Session
	Count   int
}

// NewRemoveLastCommand creates a new RemoveLastCommand
func NewRemoveLastCommand(session *application.Session, count int) *RemoveLastCommand {
	return &RemoveLastCommand{session: session, Count: count}
}

// Validate checks if the remove operation is valid
func (c *RemoveLastCommand) Validate() error {
	return application.ValidateCount("count", c.Count)
}

// Execute runs the remove last command
func (c *RemoveLastCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	change, err := c.session.Mutate(ctx, OpRemoveLast, func(d domain.Deck, _ domain.IDGenerator) (domain.Deck, error) {
		return d.RemoveFromEnd(c.Count), nil
	})
	if err != nil {
		return nil, err
	}

	removed := change.Script.Removals()
	return newResult(change, "Removed %d %s from last", removed, plural(removed)), nil
}

// ReplaceCommand swaps the card on top for a freshly identified spot
type ReplaceCommand struct {
	session *application.Session
}

// NewReplaceCommand creates a new ReplaceCommand
func NewReplaceCommand(session *application.Session) *ReplaceCommand {
	return &ReplaceCommand{session: session}
}

// Validate checks if the replace operation is valid
func (c *ReplaceCommand) Validate() error {
	return nil
}

// Execute runs the replace command
func (c *ReplaceCommand) Execute(ctx context.Context) (*Result, error) {
	change, err := c.session.Mutate(ctx, OpReplace, func(d domain.Deck, ids domain.IDGenerator) (domain.Deck, error) {
		if _, ok := d.TopSpot(); !ok {
			return d, nil
		}
		return d.ReplaceTop(c.session.Fresh(ids, 1)[0]), nil
	})
	if err != nil {
		return nil, err
	}

	if !change.Changed() {
		return newResult(change, "No spot on top to replace"), nil
	}
	return newResult(change, "Replaced first spot"), nil
}

// SwapCommand exchanges the card on top with the last card
type SwapCommand struct {
	session *application.Session
}

// NewSwapCommand creates a new SwapCommand
func NewSwapCommand(session *application.Session) *SwapCommand {
	return &SwapCommand{session: session}
}

// Validate checks if the swap operation is valid
func (c *SwapCommand) Validate() error {
	return nil
}

// Execute runs the swap command
func (c *SwapCommand) Execute(ctx context.Context) (*Result, error) {
	change, err := c.session.Mutate(ctx, OpSwap, func(d domain.Deck, _ domain.IDGenerator) (domain.Deck, error) {
		return d.SwapTopAndLast(), nil
	})
	if err != nil {
		return nil, err
	}

	if !change.Changed() {
		return newResult(change, "Nothing to swap"), nil
	}
	return newResult(change, "Swapped first for last"), nil
}

// ReloadCommand deals the catalog afresh and presents it from the first card
type ReloadCommand struct {
	session *application.Session
}

// NewReloadCommand creates a new ReloadCommand
func NewReloadCommand(session *application.Session) *ReloadCommand {
	return &ReloadCommand{session: session}
}

// Validate checks if the reload operation is valid
func (c *ReloadCommand) Validate() error {
	return nil
}

// Execute runs the reload command
func (c *ReloadCommand) Execute(ctx context.Context) (*Result, error) {
	change, err := c.session.Mutate(ctx, OpReload, func(d domain.Deck, ids domain.IDGenerator) (domain.Deck, error) {
		return d.Reset(c.session.Deal(ids)), nil
	})
	if err != nil {
		return nil, err
	}

	return newResult(change, "Reloaded %d %s", change.New.Len(), plural(change.New.Len())), nil
}

// PaginateCommand appends a fresh page at the end of the stack
type PaginateCommand struct {
	session *application.Session
}

// NewPaginateCommand creates a new PaginateCommand
func NewPaginateCommand(session *application.Session) *PaginateCommand {
	return &PaginateCommand{session: session}
}

// Validate checks if the paginate operation is valid
func (c *PaginateCommand) Validate() error {
	return nil
}

// Execute runs the paginate command
func (c *PaginateCommand) Execute(ctx context.Context) (*Result, error) {
	change, err := c.session.Mutate(ctx, OpPaginate, func(d domain.Deck, ids domain.IDGenerator) (domain.Deck, error) {
		return d.Append(c.session.Page(ids)...), nil
	})
	if err != nil {
		return nil, err
	}

	added := change.Script.Insertions()
	return newResult(change, "Loaded %d more %s", added, plural(added)), nil
}
