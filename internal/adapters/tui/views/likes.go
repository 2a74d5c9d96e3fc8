package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"clubhub/internal/adapters/tui/styles"
	"clubhub/internal/application/commands"
	"clubhub/internal/domain"
	"clubhub/internal/ports"
)

// LikesKeyMap defines key bindings for the likes list
type LikesKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Filter   key.Binding
	Open     key.Binding
	Copy     key.Binding
	Close    key.Binding
}

var LikesKeys = LikesKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	Filter: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "likes/all"),
	),
	Open: key.NewBinding(
		key.WithKeys("o", "enter"),
		key.WithHelp("o", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy url"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "L"),
		key.WithHelp("esc", "back"),
	),
}

const likesPageSize = 10

// LikesModel lists the swipe log, liked spots by default
type LikesModel struct {
	ViewState
	repo    ports.DeckRepository
	opener  ports.URLOpener
	copy    func(string) error
	keys    LikesKeyMap
	showAll bool
	swipes  []domain.Swipe
	pager   paginator.Model
	cursor  int // index into swipes
}

type swipesLoadedMsg struct {
	swipes []domain.Swipe
}

type swipesErrMsg struct {
	err error
}

// NewLikesModel creates the likes list
func NewLikesModel(repo ports.DeckRepository, opener ports.URLOpener) *LikesModel {
	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = likesPageSize
	pager.ArabicFormat = "page %d/%d"

	return &LikesModel{
		repo:   repo,
		opener: opener,
		copy:   clipboard.WriteAll,
		keys:   LikesKeys,
		pager:  pager,
	}
}

// Init loads the list
func (m *LikesModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload fetches the swipe log again
func (m *LikesModel) Reload() tea.Cmd {
	dir := domain.DirectionRight
	if m.showAll {
		dir = domain.DirectionNone
	}
	cmd := commands.NewListSwipesCommand(m.repo, dir)
	return func() tea.Msg {
		swipes, err := cmd.Execute(context.Background())
		if err != nil {
			return swipesErrMsg{err}
		}
		return swipesLoadedMsg{swipes}
	}
}

// Update handles messages for the likes list
func (m *LikesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case swipesLoadedMsg:
		m.swipes = msg.swipes
		m.pager.SetTotalPages(len(m.swipes))
		m.moveCursor(0)
		return m, nil

	case swipesErrMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Close):
			m.ClearMessage()
			return m, switchTo(SwitchToDeckMsg{})
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(m.cursor - 1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(m.cursor + 1)
		case key.Matches(msg, m.keys.NextPage):
			if !m.pager.OnLastPage() {
				m.moveCursor((m.pager.Page + 1) * m.pager.PerPage)
			}
		case key.Matches(msg, m.keys.PrevPage):
			if !m.pager.OnFirstPage() {
				m.moveCursor((m.pager.Page - 1) * m.pager.PerPage)
			}
		case key.Matches(msg, m.keys.Filter):
			m.showAll = !m.showAll
			return m, m.Reload()
		case key.Matches(msg, m.keys.Open):
			if s, ok := m.Selected(); ok {
				if err := m.opener.Open(s.Spot.URL); err != nil {
					m.SetMessage(err.Error(), true)
				} else {
					m.SetMessage("Opened "+s.Spot.Name, false)
				}
			}
		case key.Matches(msg, m.keys.Copy):
			if s, ok := m.Selected(); ok {
				if err := m.copy(s.Spot.URL); err != nil {
					m.SetMessage("Copy failed: "+err.Error(), true)
				} else {
					m.SetMessage("Copied picture URL", false)
				}
			}
		}
	}

	return m, nil
}

// moveCursor puts the cursor on swipe i, clamped to the log, and turns
// to the page holding it
func (m *LikesModel) moveCursor(i int) {
	m.cursor = max(min(i, len(m.swipes)-1), 0)
	m.pager.Page = m.cursor / m.pager.PerPage
}

// Selected returns the swipe under the cursor
func (m *LikesModel) Selected() (domain.Swipe, bool) {
	if m.cursor >= len(m.swipes) {
		return domain.Swipe{}, false
	}
	return m.swipes[m.cursor], true
}

// View renders the likes list
func (m *LikesModel) View() string {
	var b strings.Builder

	title := "Liked Spots"
	if m.showAll {
		title = "Swipe Log"
	}
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")

	if len(m.swipes) == 0 {
		b.WriteString(RenderMuted("Nothing here yet. Swipe right on a spot you like."))
		b.WriteString("\n")
	} else {
		start, end := m.pager.GetSliceBounds(len(m.swipes))
		for i := start; i < end; i++ {
			line := formatSwipeLine(m.swipes[i])
			if i == m.cursor {
				b.WriteString(styles.MenuSelected.Render(line))
			} else {
				b.WriteString(styles.MenuItem.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString(RenderMuted(m.pager.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderHelpLine(m.keys.Up, m.keys.Down, m.keys.NextPage, m.keys.PrevPage, m.keys.Filter, m.keys.Open, m.keys.Copy, m.keys.Close))
	return styles.App.Render(b.String())
}

func formatSwipeLine(s domain.Swipe) string {
	mark := "✗"
	if s.Direction.Liked() {
		mark = "♥"
	}
	return fmt.Sprintf("%s  %-32s %s  %s", mark, truncate(s.Spot.Name, 32), s.Spot.Type, s.At.Local().Format(time.Kitchen))
}
