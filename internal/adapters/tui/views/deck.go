package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"clubhub/internal/adapters/tui/styles"
	"clubhub/internal/application"
	"clubhub/internal/application/commands"
	"clubhub/internal/domain"
	"clubhub/internal/ports"
)

// DeckKeyMap defines key bindings for the card stack
type DeckKeyMap struct {
	Skip   key.Binding
	Like   key.Binding
	Rewind key.Binding
	Cancel key.Binding
	Menu   key.Binding
	Open   key.Binding
	Copy   key.Binding
	Likes  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var DeckKeys = DeckKeyMap{
	Skip: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "skip"),
	),
	Like: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "like"),
	),
	Rewind: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rewind"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel swipe"),
	),
	Menu: key.NewBinding(
		key.WithKeys("tab", "m"),
		key.WithHelp("tab", "menu"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open picture"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy url"),
	),
	Likes: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "likes"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

const (
	cardWidth = 44
	maxShift  = 12
)

// DeckModel is the swipeable card stack
type DeckModel struct {
	ViewState
	session *application.Session
	opener  ports.URLOpener
	copy    func(string) error
	keys    DeckKeyMap
	visible int

	drag         dragState
	highlight    map[int64]domain.EditKind
	highlightGen int
	summary      string
}

// NewDeckModel creates the card stack showing visible cards at a time
func NewDeckModel(session *application.Session, opener ports.URLOpener, visible int) *DeckModel {
	return &DeckModel{
		session: session,
		opener:  opener,
		copy:    clipboard.WriteAll,
		keys:    DeckKeys,
		visible: max(visible, 1),
	}
}

// Init announces the card on top
func (m *DeckModel) Init() tea.Cmd {
	deck := m.session.Deck()
	top, ok := deck.TopSpot()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		m.emit(domain.Appeared(deck.Top, top))
		return nil
	}
}

// Update handles messages for the card stack
func (m *DeckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case dragTickMsg:
		if msg.gen != m.drag.gen || !m.drag.Active() {
			return m, nil
		}
		done := m.drag.advance()
		m.emit(domain.Dragging(m.drag.dir, m.drag.ratio))
		if !done {
			return m, m.drag.tick()
		}
		dir := m.drag.dir
		m.drag.stop()
		return m, RunCommand(commands.NewSwipeCommand(m.session, dir))

	case ChangeAppliedMsg:
		return m, m.Apply(msg.Result)

	case OperationErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case highlightExpiredMsg:
		if msg.gen == m.highlightGen {
			m.highlight = nil
		}
		return m, nil
	}

	return m, nil
}

func (m *DeckModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Like):
		return m.startDrag(domain.DirectionRight)

	case key.Matches(msg, m.keys.Skip):
		return m.startDrag(domain.DirectionLeft)

	case key.Matches(msg, m.keys.Cancel):
		if m.drag.Active() {
			m.drag.stop()
			m.emit(domain.Canceled())
			m.SetMessage("Swipe canceled", false)
		}
		return nil

	case key.Matches(msg, m.keys.Rewind):
		if m.drag.Active() {
			return nil
		}
		return RunCommand(commands.NewRewindCommand(m.session))

	case key.Matches(msg, m.keys.Menu):
		m.cancelDrag()
		return switchTo(SwitchToDrawerMsg{})

	case key.Matches(msg, m.keys.Likes):
		m.cancelDrag()
		return switchTo(SwitchToLikesMsg{})

	case key.Matches(msg, m.keys.Help):
		m.cancelDrag()
		return switchTo(SwitchToHelpMsg{})

	case key.Matches(msg, m.keys.Open):
		if spot, ok := m.session.Deck().TopSpot(); ok {
			if err := m.opener.Open(spot.URL); err != nil {
				m.SetMessage(err.Error(), true)
			} else {
				m.SetMessage("Opened "+spot.Name, false)
			}
		}
		return nil

	case key.Matches(msg, m.keys.Copy):
		if spot, ok := m.session.Deck().TopSpot(); ok {
			if spot.URL == "" {
				m.SetMessage(spot.Name+" has no picture", true)
			} else if err := m.copy(spot.URL); err != nil {
				m.SetMessage("Copy failed: "+err.Error(), true)
			} else {
				m.SetMessage("Copied picture URL", false)
			}
		}
		return nil
	}

	return nil
}

func (m *DeckModel) startDrag(dir domain.Direction) tea.Cmd {
	if m.drag.Active() {
		return nil
	}
	if _, ok := m.session.Deck().TopSpot(); !ok {
		m.SetMessage("No more spots. Open the menu to reload.", true)
		return nil
	}
	m.ClearMessage()
	cmd := m.drag.start(dir)
	m.emit(domain.Dragging(dir, 0))
	return cmd
}

func (m *DeckModel) cancelDrag() {
	if m.drag.Active() {
		m.drag.stop()
		m.emit(domain.Canceled())
	}
}

// Apply shows the outcome of a deck command: the message, the summary of
// the edit script and a transient highlight of the cards it touched.
func (m *DeckModel) Apply(result *commands.Result) tea.Cmd {
	if result == nil {
		return nil
	}
	m.SetMessage(result.Message, false)

	change := result.Change
	if change == nil {
		return nil
	}

	before, hadTop := change.Old.TopSpot()
	after, hasTop := change.New.TopSpot()
	if hadTop != hasTop || before.ID != after.ID {
		if hadTop {
			m.emit(domain.Disappeared(change.Old.Top, before))
		}
		if hasTop {
			m.emit(domain.Appeared(change.New.Top, after))
		}
	}

	m.summary = change.Script.Summary()
	m.highlight = Highlights(change.Old.Spots, change.Script)
	m.highlightGen++
	if len(m.highlight) == 0 {
		return nil
	}
	return expireHighlight(m.highlightGen)
}

// emit hands a passive card event to the session
func (m *DeckModel) emit(ev domain.CardEvent) {
	_, _ = m.session.Handle(context.Background(), ev)
}

// View renders the card stack
func (m *DeckModel) View() string {
	var b strings.Builder
	deck := m.session.Deck()

	b.WriteString(RenderTitle("Club Spots"))
	b.WriteString("\n")
	b.WriteString(RenderMuted(fmt.Sprintf("%d of %d left", deck.Remaining(), deck.Len())))
	b.WriteString("\n\n")

	if deck.Exhausted() {
		b.WriteString(styles.Card.Width(m.cardWidth()).Render(
			"No more spots.\n" + RenderMuted("Press tab and pick Reload or add a spot."),
		))
	} else {
		b.WriteString(m.renderStack(deck.Visible(m.visible)))
	}
	b.WriteString("\n\n")

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}
	if m.summary != "" {
		b.WriteString(RenderMuted("last change " + m.summary))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(RenderHelpLine(m.keys.Skip, m.keys.Like, m.keys.Rewind, m.keys.Menu, m.keys.Help, m.keys.Quit))

	return styles.App.Render(b.String())
}

func (m *DeckModel) cardWidth() int {
	if m.Width > 0 {
		return max(min(cardWidth, m.Width-2*maxShift-8), 20)
	}
	return cardWidth
}

func (m *DeckModel) renderStack(cards []domain.Spot) string {
	width := m.cardWidth()
	shift := maxShift
	if m.drag.Active() {
		offset := int(m.drag.ratio * maxShift)
		if m.drag.dir == domain.DirectionLeft {
			shift -= offset
		} else {
			shift += offset
		}
	}

	var rows []string
	rows = append(rows, lipgloss.NewStyle().MarginLeft(shift).Render(m.renderCard(cards[0], width)))
	for i, spot := range cards[1:] {
		depth := i + 1
		edge := styles.CardEdge.
			Width(max(width-2*depth, 4)).
			MarginLeft(maxShift + depth).
			Render(m.withBadge(truncate(spot.Name, width-2*depth-4), spot.ID))
		rows = append(rows, edge)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *DeckModel) renderCard(spot domain.Spot, width int) string {
	var b strings.Builder

	if m.drag.Active() && m.drag.ratio > 0 {
		if m.drag.dir.Liked() {
			b.WriteString(styles.CardStampLike.Render("LIKE"))
		} else {
			b.WriteString(styles.CardStampNope.Render("NOPE"))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.withBadge(styles.CardName.Render(spot.Name), spot.ID))
	b.WriteString("\n")
	b.WriteString(styles.TypeBadge(spot.Type))
	b.WriteString("\n\n")
	if spot.URL == "" {
		b.WriteString(RenderMuted("no picture"))
	} else {
		b.WriteString(RenderMuted(truncate(spot.URL, width-6)))
	}
	b.WriteString("\n")
	b.WriteString(RenderMuted(fmt.Sprintf("#%d", spot.ID)))

	style := styles.Card.Width(width)
	switch {
	case m.drag.Active() && m.drag.dir.Liked():
		style = style.BorderForeground(styles.Secondary)
	case m.drag.Active():
		style = style.BorderForeground(styles.Error)
	}
	return style.Render(b.String())
}

func (m *DeckModel) withBadge(s string, id int64) string {
	if kind, ok := m.highlight[id]; ok {
		return s + "  " + RenderBadge(kind)
	}
	return s
}

// Dragging reports whether a swipe animation is running
func (m *DeckModel) Dragging() bool {
	return m.drag.Active()
}
