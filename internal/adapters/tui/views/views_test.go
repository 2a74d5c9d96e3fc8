package views

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"clubhub/internal/adapters/catalog"
	"clubhub/internal/adapters/memory"
	"clubhub/internal/application"
	"clubhub/internal/application/commands"
	"clubhub/internal/domain"
)

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(rawURL string) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, rawURL)
	return nil
}

func newTestSession(t *testing.T, n int) (*application.Session, *memory.Repository) {
	t.Helper()
	batch := make([]domain.Spot, n)
	for i := range batch {
		batch[i] = domain.Spot{Name: "s" + string(rune('1'+i)), Type: "Social", URL: "https://example.com/" + string(rune('1'+i))}
	}
	cat, err := catalog.New(batch)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	repo := memory.NewRepository()
	session, err := application.NewSession(context.Background(), repo, cat)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return session, repo
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// finishDrag feeds animation frames until the swipe command is issued
func finishDrag(t *testing.T, m *DeckModel) tea.Cmd {
	t.Helper()
	for i := 0; i < 10; i++ {
		_, cmd := m.Update(dragTickMsg{gen: m.drag.gen})
		if !m.Dragging() {
			return cmd
		}
	}
	t.Fatal("drag never finished")
	return nil
}

func TestHighlights(t *testing.T) {
	old := []domain.Spot{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}}
	updated := []domain.Spot{{ID: 2, Name: "b2"}, {ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 4, Name: "d"}}

	script, err := domain.DiffSpots(old, updated)
	if err != nil {
		t.Fatalf("DiffSpots() error = %v", err)
	}

	got := Highlights(old, script)
	want := map[int64]domain.EditKind{1: domain.EditMove, 2: domain.EditUpdate, 4: domain.EditInsert}
	if len(got) != len(want) {
		t.Fatalf("Highlights() = %v, want %v", got, want)
	}
	for id, kind := range want {
		if got[id] != kind {
			t.Errorf("spot %d: got %s, want %s", id, got[id], kind)
		}
	}
}

func TestDeckModel_SwipeAnimation(t *testing.T) {
	session, repo := newTestSession(t, 8)
	m := NewDeckModel(session, &fakeOpener{}, 3)

	_, cmd := m.Update(keyMsg("right"))
	if cmd == nil || !m.Dragging() {
		t.Fatal("expected a drag to start")
	}

	// a second press while dragging is ignored
	if _, cmd := m.Update(keyMsg("left")); cmd != nil {
		t.Error("expected no command while dragging")
	}

	swipe := finishDrag(t, m)
	if swipe == nil {
		t.Fatal("expected swipe command")
	}
	msg, ok := swipe().(ChangeAppliedMsg)
	if !ok {
		t.Fatalf("expected ChangeAppliedMsg, got %T", swipe())
	}
	m.Update(msg)

	if session.Deck().Top != 1 {
		t.Errorf("top = %d, want 1", session.Deck().Top)
	}
	if !strings.Contains(m.Message, "Liked s1") {
		t.Errorf("message = %q", m.Message)
	}

	likes, _ := repo.ListSwipes(context.Background(), domain.DirectionRight)
	if len(likes) != 1 {
		t.Errorf("expected one like, got %d", len(likes))
	}
}

func TestDeckModel_CancelDrag(t *testing.T) {
	session, _ := newTestSession(t, 8)
	m := NewDeckModel(session, &fakeOpener{}, 3)

	m.Update(keyMsg("left"))
	staleGen := m.drag.gen
	m.Update(dragTickMsg{gen: staleGen})

	m.Update(keyMsg("esc"))
	if m.Dragging() {
		t.Fatal("expected drag to stop")
	}

	if _, cmd := m.Update(dragTickMsg{gen: staleGen}); cmd != nil {
		t.Error("stale tick should be ignored")
	}
	if session.Deck().Top != 0 {
		t.Errorf("top = %d, want 0", session.Deck().Top)
	}
	if m.Message != "Swipe canceled" {
		t.Errorf("message = %q", m.Message)
	}
}

func TestDeckModel_Rewind(t *testing.T) {
	session, _ := newTestSession(t, 8)
	m := NewDeckModel(session, &fakeOpener{}, 3)

	_, cmd := m.Update(keyMsg("r"))
	errMsg, ok := cmd().(OperationErrMsg)
	if !ok || !errors.Is(errMsg.Err, application.ErrNothingToRewind) {
		t.Fatalf("expected ErrNothingToRewind, got %v", cmd())
	}
	m.Update(errMsg)
	if !m.MessageErr {
		t.Error("expected error message")
	}
}

func TestDeckModel_Exhausted(t *testing.T) {
	session, _ := newTestSession(t, 1)
	m := NewDeckModel(session, &fakeOpener{}, 3)

	if _, err := session.Mutate(context.Background(), "empty", func(d domain.Deck, _ domain.IDGenerator) (domain.Deck, error) {
		return d.RemoveFromTop(1), nil
	}); err != nil {
		t.Fatalf("Mutate() error = %v", err)
	}

	if _, cmd := m.Update(keyMsg("l")); cmd != nil {
		t.Error("expected no drag on an empty stack")
	}
	if !m.MessageErr || !strings.Contains(m.Message, "No more spots") {
		t.Errorf("message = %q", m.Message)
	}
	if !strings.Contains(m.View(), "No more spots.") {
		t.Error("expected empty state in view")
	}
}

func TestDeckModel_OpenAndCopy(t *testing.T) {
	session, _ := newTestSession(t, 3)
	opener := &fakeOpener{}
	m := NewDeckModel(session, opener, 3)

	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m.Update(keyMsg("o"))
	if len(opener.opened) != 1 || opener.opened[0] != "https://example.com/1" {
		t.Errorf("opened = %v", opener.opened)
	}

	m.Update(keyMsg("y"))
	if copied != "https://example.com/1" {
		t.Errorf("copied = %q", copied)
	}

	opener.err = errors.New("no browser")
	m.Update(keyMsg("o"))
	if !m.MessageErr {
		t.Error("expected open error to be shown")
	}
}

func TestDeckModel_ApplyHighlightsAndExpires(t *testing.T) {
	session, _ := newTestSession(t, 3)
	m := NewDeckModel(session, &fakeOpener{}, 3)

	result, err := commands.NewAddFirstCommand(session, 1).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if cmd := m.Apply(result); cmd == nil {
		t.Fatal("expected highlight expiry timer")
	}
	if m.highlight[4] != domain.EditInsert {
		t.Errorf("highlight = %v, want spot 4 inserted", m.highlight)
	}
	if !strings.Contains(m.View(), "+ new") {
		t.Error("expected inserted badge in view")
	}

	m.Update(highlightExpiredMsg{gen: m.highlightGen - 1})
	if m.highlight == nil {
		t.Error("stale expiry cleared the highlight")
	}
	m.Update(highlightExpiredMsg{gen: m.highlightGen})
	if m.highlight != nil {
		t.Error("expected highlight to clear")
	}
}

func TestDeckModel_View(t *testing.T) {
	session, _ := newTestSession(t, 4)
	m := NewDeckModel(session, &fakeOpener{}, 2)

	view := m.View()
	for _, want := range []string{"Club Spots", "4 of 4 left", "s1", "s2", "#1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "s3") {
		t.Error("only two cards should be drawn")
	}
}

func TestDeckModel_KeysSwitchViews(t *testing.T) {
	session, _ := newTestSession(t, 2)
	m := NewDeckModel(session, &fakeOpener{}, 3)

	tests := []struct {
		key  string
		want tea.Msg
	}{
		{"tab", SwitchToDrawerMsg{}},
		{"m", SwitchToDrawerMsg{}},
		{"L", SwitchToLikesMsg{}},
		{"?", SwitchToHelpMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, cmd := m.Update(keyMsg(tt.key))
			if cmd == nil {
				t.Fatal("expected command")
			}
			if got := cmd(); got != tt.want {
				t.Errorf("got %T, want %T", got, tt.want)
			}
		})
	}
}
