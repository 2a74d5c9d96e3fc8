package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"clubhub/internal/adapters/tui/styles"
	"clubhub/internal/application"
)

// InputKeyMap defines key bindings for input prompts
type InputKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultInputKeys returns the default input key bindings
var DefaultInputKeys = InputKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// CountInput prompts for how many spots an operation should touch
type CountInput struct {
	Label string
	Input textinput.Model
	Keys  InputKeyMap
}

// NewCountInput creates a focused count prompt
func NewCountInput(label string) *CountInput {
	input := textinput.New()
	input.Placeholder = "1"
	input.CharLimit = 4
	input.Focus()
	return &CountInput{Label: label, Input: input, Keys: DefaultInputKeys}
}

// Init returns the blink command for the input
func (c *CountInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text input
func (c *CountInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.Input, cmd = c.Input.Update(msg)
	return cmd
}

// Reset sets the label and the prefilled value
func (c *CountInput) Reset(label, value string) {
	c.Label = label
	c.Input.SetValue(value)
	c.Input.CursorEnd()
	c.Input.Focus()
}

// Count parses the entered value. An empty prompt counts as one.
func (c *CountInput) Count() (int, error) {
	raw := strings.TrimSpace(c.Input.Value())
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &application.ValidationError{Field: "count", Message: "count must be a number"}
	}
	if err := application.ValidateCount("count", n); err != nil {
		return 0, err
	}
	return n, nil
}

// View renders the prompt
func (c *CountInput) View() string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(c.Label))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(c.Input.View()))
	b.WriteString("\n")
	b.WriteString(styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("apply") + "  ")
	b.WriteString(styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("back"))
	return b.String()
}
