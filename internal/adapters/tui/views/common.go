package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"clubhub/internal/application/commands"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages
type (
	SwitchToDeckMsg   struct{}
	SwitchToDrawerMsg struct{}
	SwitchToHelpMsg   struct{}
	SwitchToLikesMsg  struct{}
)

// ChangeAppliedMsg carries the result of a deck command
type ChangeAppliedMsg struct {
	Result *commands.Result
}

// OperationErrMsg reports a failed deck command
type OperationErrMsg struct {
	Err error
}

// CatalogChangedMsg is sent when the catalog file was reloaded
type CatalogChangedMsg struct{}

// RunCommand executes cmd off the UI loop and reports its outcome
func RunCommand(cmd commands.DeckCommand) tea.Cmd {
	return func() tea.Msg {
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return OperationErrMsg{Err: err}
		}
		return ChangeAppliedMsg{Result: result}
	}
}

func switchTo(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
