package commands

import (
	"fmt"
	"strings"

	"clubhub/internal/application"
)

// Operation names shared by the drawer menu, the CLI and the MCP tools
const (
	OpReload      = "reload"
	OpAddFirst    = "add-first"
	OpAddLast     = "add-last"
	OpRemoveFirst = "remove-first"
	OpRemoveLast  = "remove-last"
	OpReplace     = "replace"
	OpSwap        = "swap"
	OpPaginate    = "paginate"
)

// Operation describes a drawer menu entry
type Operation struct {
	Name       string
	Title      string
	TakesCount bool
}

// Operations lists the drawer menu in display order
var Operations = []Operation{
	{Name: OpReload, Title: "Reload"},
	{Name: OpAddFirst, Title: "Add spot to first", TakesCount: true},
	{Name: OpAddLast, Title: "Add spot to last", TakesCount: true},
	{Name: OpRemoveFirst, Title: "Remove spot from first", TakesCount: true},
	{Name: OpRemoveLast, Title: "Remove spot from last", TakesCount: true},
	{Name: OpReplace, Title: "Replace first spot"},
	{Name: OpSwap, Title: "Swap first for last"},
}

// NewOperationCommand builds the command for a named operation. count is
// ignored by operations that do not take one.
func NewOperationCommand(session *application.Session, name string, count int) (DeckCommand, error) {
	if err := application.ValidateRequired("operation", name); err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case OpReload:
		return NewReloadCommand(session), nil
	case OpAddFirst:
		return NewAddFirstCommand(session, count), nil
	case OpAddLast:
		return NewAddLastCommand(session, count), nil
	case OpRemoveFirst:
		return NewRemoveFirstCommand(session, count), nil
	case OpRemoveLast:
		return NewRemoveLastCommand(session, count), nil
	case OpReplace:
		return NewReplaceCommand(session), nil
	case OpSwap:
		return NewSwapCommand(session), nil
	case OpPaginate:
		return NewPaginateCommand(session), nil
	default:
		return nil, &application.ValidationError{
			Field:   "operation",
			Message: fmt.Sprintf("unknown operation %q", name),
			Err:     application.ErrInvalidOperation,
		}
	}
}
