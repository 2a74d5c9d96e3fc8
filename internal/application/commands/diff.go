package commands

import (
	"context"
	"fmt"
	"strings"

	"clubhub/internal/domain"
)

// DiffResult contains the edit script between two sequences
type DiffResult struct {
	Script  domain.Script[domain.Spot]
	Message string
}

// DiffCommand reconciles two spot sequences without touching the deck
type DiffCommand struct {
	Old []domain.Spot
	New []domain.Spot
}

// NewDiffCommand creates a new DiffCommand
func NewDiffCommand(old, new []domain.Spot) *DiffCommand {
	return &DiffCommand{Old: old, New: new}
}

// Execute runs the diff command
func (c *DiffCommand) Execute(ctx context.Context) (*DiffResult, error) {
	script, err := domain.DiffSpots(c.Old, c.New)
	if err != nil {
		return nil, fmt.Errorf("failed to diff: %w", err)
	}

	return &DiffResult{Script: script, Message: FormatScript(script)}, nil
}

// FormatScript renders one edit per line followed by the summary
func FormatScript(script domain.Script[domain.Spot]) string {
	var sb strings.Builder
	for _, e := range script {
		sb.WriteString(FormatEdit(e))
		sb.WriteByte('\n')
	}
	sb.WriteString(script.Summary())
	return sb.String()
}

// FormatEdit renders a single edit
func FormatEdit(e domain.Edit[domain.Spot]) string {
	switch e.Kind {
	case domain.EditRemove:
		return fmt.Sprintf("- remove @%d", e.From)
	case domain.EditInsert:
		return fmt.Sprintf("+ insert @%d  #%d %s", e.To, e.Item.ID, e.Item.Name)
	case domain.EditMove:
		return fmt.Sprintf("↕ move   @%d → @%d", e.From, e.To)
	case domain.EditUpdate:
		return fmt.Sprintf("~ update @%d  #%d %s", e.To, e.Item.ID, e.Item.Name)
	default:
		return e.Kind.String()
	}
}
