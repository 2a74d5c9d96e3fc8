package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"clubhub/internal/adapters/catalog"
	"clubhub/internal/adapters/memory"
	"clubhub/internal/adapters/tui/views"
	"clubhub/internal/application"
	"clubhub/internal/application/commands"
)

type nopOpener struct{}

func (nopOpener) Open(string) error { return nil }

func newTestApp(t *testing.T, changes <-chan struct{}) (*App, *application.Session) {
	t.Helper()
	repo := memory.NewRepository()
	session, err := application.NewSession(context.Background(), repo, catalog.Builtin())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return NewApp(session, repo, nopOpener{}, Options{VisibleCount: 3, CatalogChanges: changes}), session
}

func TestApp_SwitchesViews(t *testing.T) {
	app, _ := newTestApp(t, nil)

	tests := []struct {
		msg  tea.Msg
		want ViewState
	}{
		{views.SwitchToDrawerMsg{}, ViewDrawer},
		{views.SwitchToDeckMsg{}, ViewDeck},
		{views.SwitchToHelpMsg{}, ViewHelp},
		{views.SwitchToLikesMsg{}, ViewLikes},
		{views.SwitchToDeckMsg{}, ViewDeck},
	}

	for _, tt := range tests {
		app.Update(tt.msg)
		if app.State() != tt.want {
			t.Errorf("after %T state = %d, want %d", tt.msg, app.State(), tt.want)
		}
	}
}

func TestApp_ChangeReturnsToDeck(t *testing.T) {
	app, session := newTestApp(t, nil)
	app.Update(views.SwitchToDrawerMsg{})

	result, err := commands.NewSwapCommand(session).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	app.Update(views.ChangeAppliedMsg{Result: result})

	if app.State() != ViewDeck {
		t.Errorf("state = %d, want deck", app.State())
	}
}

func TestApp_CatalogChangeReloads(t *testing.T) {
	changes := make(chan struct{}, 1)
	app, session := newTestApp(t, changes)

	changes <- struct{}{}
	msg := app.waitForCatalog()()
	if _, ok := msg.(views.CatalogChangedMsg); !ok {
		t.Fatalf("expected CatalogChangedMsg, got %T", msg)
	}

	_, cmd := app.Update(msg)
	batch, ok := cmd().(tea.BatchMsg)
	if !ok || len(batch) != 2 {
		t.Fatalf("expected reload and re-armed watcher, got %T", cmd())
	}
	applied, ok := batch[0]().(views.ChangeAppliedMsg)
	if !ok || applied.Result.Change.Op != commands.OpReload {
		t.Fatalf("unexpected reload outcome %#v", applied)
	}
	if session.Deck().Top != 0 || session.Deck().Len() != 10 {
		t.Errorf("deck = %+v after reload", session.Deck())
	}

	close(changes)
	if msg := app.waitForCatalog()(); msg != nil {
		t.Errorf("closed channel should yield nil, got %T", msg)
	}
}

func TestApp_NoCatalogWatcher(t *testing.T) {
	app, _ := newTestApp(t, nil)
	if app.waitForCatalog() != nil {
		t.Error("expected no watcher command")
	}
}
