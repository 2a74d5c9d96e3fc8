package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"clubhub/internal/adapters/tui/styles"
	"clubhub/internal/application/commands"
)

// ConfirmKeyMap defines key bindings for confirmation prompts
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel asks before running an operation that discards cards
type ConfirmationModel struct {
	Target commands.Operation
	Keys   ConfirmKeyMap
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() ConfirmationModel {
	return ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// SetTarget sets the operation awaiting confirmation
func (m *ConfirmationModel) SetTarget(op commands.Operation) {
	m.Target = op
}

// HandleKeyMsg processes key messages for the prompt.
// Returns (handled, confirmed).
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg) (handled, confirmed bool) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		return true, false
	case key.Matches(msg, m.Keys.Confirm):
		return true, true
	}
	return false, false
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}

// confirmQuestion is asked before an operation that throws the stack away
func confirmQuestion(op commands.Operation) string {
	if op.Name == commands.OpReload {
		return "Reload discards every card in the stack. Continue?"
	}
	return op.Title + "?"
}

// needsConfirmation reports whether op should be confirmed first
func needsConfirmation(op commands.Operation) bool {
	return op.Name == commands.OpReload
}
