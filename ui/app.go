package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"cropconnect-client/api"
	"cropconnect-client/config"
	"cropconnect-client/models"
	"cropconnect-client/services"
	"cropconnect-client/storage"
	"cropconnect-client/utils"
)

// ViewID names the screens the client can show.
type ViewID int

const (
	ViewLogin ViewID = iota
	ViewBidder
	ViewFarmer
	ViewChat
	ViewBidPortal
	ViewWishlist
)

// App is the explicit application state shared by every view: session
// user, persisted store and the service layer. Views receive it
// instead of reaching for globals.
type App struct {
	Cfg      *config.Config
	Logger   *utils.Logger
	Store    storage.KeyValue
	API      *api.Client
	Catalog  *services.Catalog
	Chat     *services.Chat
	Wishlist *services.Wishlist
	Location *services.Location

	User models.User
}

// SetUser persists the session user and keeps it in memory.
func (a *App) SetUser(u models.User) {
	a.User = u
	if err := a.Store.Put(storage.KeyLoggedInUser, u); err != nil {
		a.Logger.Warn("[app] persist session user: %v", err)
	}
}

// LoadUser restores the persisted session user, if any. A corrupt or
// absent snapshot leaves the zero user, which forces the login view.
func (a *App) LoadUser() {
	var u models.User
	if err := a.Store.Get(storage.KeyLoggedInUser, &u); err != nil {
		return
	}
	a.User = u
}

// HomeView is where a user lands after login, by role.
func (a *App) HomeView() ViewID {
	if a.User.Role == "farmer" {
		return ViewFarmer
	}
	return ViewBidder
}

// view is the contract every screen implements. A view owns its
// timers: tick commands are tagged with the owning instance and a view
// that is no longer active simply never re-arms them.
type view interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// switchViewMsg asks the root model to replace the active view.
type switchViewMsg struct {
	target ViewID
}

func switchView(target ViewID) tea.Cmd {
	return func() tea.Msg { return switchViewMsg{target: target} }
}

// Model is the root Bubble Tea model: it owns the active view and the
// terminal size, and routes every other message to the active view.
type Model struct {
	app    *App
	active ViewID
	cur    view
	width  int
	height int
}

// NewModel builds the root model. A persisted session user skips the
// login gate and lands on their role's home view.
func NewModel(app *App) Model {
	app.LoadUser()

	m := Model{app: app, active: ViewLogin}
	if app.User.LoggedIn() {
		m.active = app.HomeView()
	}
	m.cur = m.makeView(m.active)
	return m
}

func (m Model) makeView(id ViewID) view {
	switch id {
	case ViewBidder:
		return newBidderView(m.app)
	case ViewFarmer:
		return newFarmerView(m.app)
	case ViewChat:
		return newChatView(m.app)
	case ViewBidPortal:
		return newBidPortalView(m.app)
	case ViewWishlist:
		return newWishlistView(m.app)
	default:
		return newLoginView(m.app)
	}
}

func (m Model) Init() tea.Cmd {
	return m.cur.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case switchViewMsg:
		// Replacing the view drops its timer chains: pending ticks
		// are tagged with the old instance and will not be re-armed.
		m.active = typed.target
		m.cur = m.makeView(typed.target)
		return m, m.cur.Init()
	}

	return m, m.cur.Update(msg)
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	return m.cur.View(m.width, m.height)
}
