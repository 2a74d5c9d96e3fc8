package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"clubhub/internal/adapters/tui/styles"
	"clubhub/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, switchTo(SwitchToDeckMsg{})
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Clubhub Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Swipe through campus clubs"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Swiping"))
	b.WriteString("\n")
	b.WriteString(helpLine("l / →", "Like the card on top"))
	b.WriteString(helpLine("h / ←", "Skip the card on top"))
	b.WriteString(helpLine("esc", "Cancel a swipe in progress"))
	b.WriteString(helpLine("r", "Rewind the last swipe"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Card"))
	b.WriteString("\n")
	b.WriteString(helpLine("o", "Open the picture in a browser"))
	b.WriteString(helpLine("y", "Copy the picture URL"))
	b.WriteString(helpLine("L", "Liked spots"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Menu"))
	b.WriteString("\n")
	b.WriteString(helpLine("tab / m", "Open the menu: reload, add, remove, replace, swap"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Change markers"))
	b.WriteString("\n")
	b.WriteString("  " + RenderBadge(domain.EditInsert) + "  " + RenderBadge(domain.EditMove) + "  " + RenderBadge(domain.EditUpdate) + "\n")
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
