package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"clubhub/internal/adapters/tui/styles"
	"clubhub/internal/application"
	"clubhub/internal/application/commands"
)

// DrawerKeyMap defines key bindings for the operations menu
type DrawerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

var DrawerKeys = DrawerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "tab", "m", "q"),
		key.WithHelp("esc", "close"),
	),
}

type drawerMode int

const (
	drawerMenu drawerMode = iota
	drawerCount
	drawerConfirm
)

// DrawerModel is the operations menu
type DrawerModel struct {
	ViewState
	session *application.Session
	ops     []commands.Operation
	keys    DrawerKeyMap
	cursor  int
	mode    drawerMode
	count   *CountInput
	confirm ConfirmationModel
}

// NewDrawerModel creates the operations menu
func NewDrawerModel(session *application.Session) *DrawerModel {
	return &DrawerModel{
		session: session,
		ops:     commands.Operations,
		keys:    DrawerKeys,
		count:   NewCountInput(""),
		confirm: NewConfirmationModel(),
	}
}

// Open resets the drawer to its menu
func (m *DrawerModel) Open() tea.Cmd {
	m.mode = drawerMenu
	m.ClearMessage()
	return nil
}

// Init initializes the drawer
func (m *DrawerModel) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted operation
func (m *DrawerModel) Selected() commands.Operation {
	return m.ops[m.cursor]
}

// Update handles messages for the drawer
func (m *DrawerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case drawerCount:
			return m, m.updateCount(msg)
		case drawerConfirm:
			return m, m.updateConfirm(msg)
		default:
			return m, m.updateMenu(msg)
		}
	}

	if m.mode == drawerCount {
		return m, m.count.Update(msg)
	}
	return m, nil
}

func (m *DrawerModel) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		return switchTo(SwitchToDeckMsg{})

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.ops)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		op := m.Selected()
		m.ClearMessage()
		switch {
		case op.TakesCount:
			m.mode = drawerCount
			m.count.Reset(op.Title+": how many?", "1")
			return m.count.Init()
		case needsConfirmation(op):
			m.mode = drawerConfirm
			m.confirm.SetTarget(op)
			return nil
		default:
			return m.run(op, 0)
		}
	}
	return nil
}

func (m *DrawerModel) updateCount(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.count.Keys.Cancel):
		m.mode = drawerMenu
		m.ClearMessage()
		return nil

	case key.Matches(msg, m.count.Keys.Submit):
		n, err := m.count.Count()
		if err != nil {
			m.SetMessage(err.Error(), true)
			return nil
		}
		return m.run(m.Selected(), n)
	}
	return m.count.Update(msg)
}

func (m *DrawerModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	handled, confirmed := m.confirm.HandleKeyMsg(msg)
	if !handled {
		return nil
	}
	if !confirmed {
		m.mode = drawerMenu
		return nil
	}
	return m.run(m.confirm.Target, 0)
}

func (m *DrawerModel) run(op commands.Operation, count int) tea.Cmd {
	cmd, err := commands.NewOperationCommand(m.session, op.Name, count)
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	if err := cmd.Validate(); err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	m.mode = drawerMenu
	return RunCommand(cmd)
}

// View renders the drawer
func (m *DrawerModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Menu"))
	b.WriteString("\n")

	for i, op := range m.ops {
		if i == m.cursor {
			b.WriteString(styles.MenuSelected.Render(op.Title))
		} else {
			b.WriteString(styles.MenuItem.Render(op.Title))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.mode {
	case drawerCount:
		b.WriteString(m.count.View())
		b.WriteString("\n")
	case drawerConfirm:
		b.WriteString(RenderConfirmPrompt(confirmQuestion(m.confirm.Target)))
		b.WriteString("\n")
	default:
		b.WriteString(RenderHelpLine(m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Close))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	return styles.Drawer.Render(b.String())
}
