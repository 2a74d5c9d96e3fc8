package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"clubhub/internal/adapters/tui/views"
	"clubhub/internal/application"
	"clubhub/internal/application/commands"
	"clubhub/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewDeck ViewState = iota
	ViewDrawer
	ViewHelp
	ViewLikes
)

// Options configures the TUI
type Options struct {
	// VisibleCount is how many cards of the stack are drawn
	VisibleCount int
	// CatalogChanges signals that the catalog file was reloaded
	CatalogChanges <-chan struct{}
}

// App is the main TUI application model
type App struct {
	session *application.Session
	changes <-chan struct{}

	state  ViewState
	deck   *views.DeckModel
	drawer *views.DrawerModel
	help   *views.HelpModel
	likes  *views.LikesModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(session *application.Session, repo ports.DeckRepository, opener ports.URLOpener, opts Options) *App {
	return &App{
		session: session,
		changes: opts.CatalogChanges,
		state:   ViewDeck,
		deck:    views.NewDeckModel(session, opener, opts.VisibleCount),
		drawer:  views.NewDrawerModel(session),
		help:    views.NewHelpModel(),
		likes:   views.NewLikesModel(repo, opener),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.deck.Init(), a.waitForCatalog())
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.deck.SetSize(msg.Width, msg.Height)
		a.drawer.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		a.likes.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToDrawerMsg:
		a.state = ViewDrawer
		return a, a.drawer.Open()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToLikesMsg:
		a.state = ViewLikes
		return a, a.likes.Reload()

	case views.SwitchToDeckMsg:
		a.state = ViewDeck
		return a, nil

	// Deck changes land on the stack whichever view started them
	case views.ChangeAppliedMsg:
		a.state = ViewDeck
		return a, a.deck.Apply(msg.Result)

	case views.OperationErrMsg:
		a.state = ViewDeck
		a.deck.SetMessage(msg.Err.Error(), true)
		return a, nil

	case views.CatalogChangedMsg:
		return a, tea.Batch(
			views.RunCommand(commands.NewReloadCommand(a.session)),
			a.waitForCatalog(),
		)
	}

	// Animation and highlight timers keep running behind other views
	if _, isKey := msg.(tea.KeyMsg); !isKey && a.state != ViewDeck {
		_, cmd := a.deck.Update(msg)
		if cmd != nil {
			return a, cmd
		}
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewDeck:
		_, cmd = a.deck.Update(msg)
	case ViewDrawer:
		_, cmd = a.drawer.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	case ViewLikes:
		_, cmd = a.likes.Update(msg)
	}

	return a, cmd
}

// waitForCatalog blocks on the next catalog reload
func (a *App) waitForCatalog() tea.Cmd {
	if a.changes == nil {
		return nil
	}
	changes := a.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return views.CatalogChangedMsg{}
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDrawer:
		return a.drawer.View()
	case ViewHelp:
		return a.help.View()
	case ViewLikes:
		return a.likes.View()
	default:
		return a.deck.View()
	}
}
