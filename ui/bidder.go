package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cropconnect-client/models"
	"cropconnect-client/services"
	"cropconnect-client/storage"
)

type bidderLoadedMsg struct {
	owner *bidderView
	crops []models.Crop
	token uint64
	err   error
}

type bidderTickMsg struct {
	owner *bidderView
	now   time.Time
}

// bidderView is the open-crop catalog: cards with live countdowns, the
// search/location filter pipeline, wishlist toggling and the bid/chat
// handoffs.
type bidderView struct {
	app *App

	crops    []models.Crop
	filtered []models.Crop
	selected int
	now      time.Time

	search   textinput.Model
	location textinput.Model
	typing   bool

	showDetails bool
	errMsg      string
}

func newBidderView(app *App) *bidderView {
	search := textinput.New()
	search.Placeholder = "search by crop name"
	search.CharLimit = 64

	location := textinput.New()
	location.Placeholder = "filter by location"
	location.CharLimit = 64

	return &bidderView{
		app:      app,
		now:      time.Now(),
		search:   search,
		location: location,
	}
}

func (v *bidderView) Init() tea.Cmd {
	return tea.Batch(v.loadCmd(), v.tickCmd())
}

func (v *bidderView) loadCmd() tea.Cmd {
	return func() tea.Msg {
		crops, token, err := v.app.Catalog.List()
		return bidderLoadedMsg{owner: v, crops: crops, token: token, err: err}
	}
}

func (v *bidderView) tickCmd() tea.Cmd {
	interval := time.Duration(v.app.Cfg.CountdownTickMs) * time.Millisecond
	return tea.Tick(interval, func(ts time.Time) tea.Msg {
		return bidderTickMsg{owner: v, now: ts}
	})
}

func (v *bidderView) Update(msg tea.Msg) tea.Cmd {
	switch typed := msg.(type) {
	case bidderLoadedMsg:
		if typed.owner != v {
			return nil
		}
		if typed.err != nil {
			v.errMsg = "Error loading crops."
			v.app.Logger.Error("[bidder] load crops: %v", typed.err)
			return nil
		}
		if !v.app.Catalog.Fresh(typed.token) {
			// A newer refresh is already in flight; this response lost.
			return nil
		}
		v.errMsg = ""
		v.crops = typed.crops
		v.applyFilter()
		return nil

	case bidderTickMsg:
		if typed.owner != v {
			return nil
		}
		v.now = typed.now
		// Crops whose window just expired drop off on the next pass.
		v.applyFilter()
		return v.tickCmd()

	case tea.KeyMsg:
		return v.handleKey(typed)
	}

	if v.typing {
		return v.updateInputs(msg)
	}
	return nil
}

func (v *bidderView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.showDetails {
		switch msg.String() {
		case "esc", "d", "enter", "q":
			v.showDetails = false
		}
		return nil
	}

	if v.typing {
		switch msg.String() {
		case "esc", "enter":
			v.typing = false
			v.search.Blur()
			v.location.Blur()
			return nil
		}
		cmd := v.updateInputs(msg)
		v.applyFilter()
		return cmd
	}

	switch msg.String() {
	case "j", "down":
		v.moveSelection(1)
	case "k", "up":
		v.moveSelection(-1)
	case "/":
		v.typing = true
		return v.search.Focus()
	case "l":
		v.typing = true
		return v.location.Focus()
	case "r":
		return v.loadCmd()
	case "d":
		if v.current() != nil {
			v.showDetails = true
		}
	case "w":
		if c := v.current(); c != nil {
			v.app.Wishlist.Toggle(*c)
		}
	case "W":
		return switchView(ViewWishlist)
	case "b":
		return v.placeBid()
	case "c":
		return v.openChat()
	case "q", "esc":
		return tea.Quit
	}
	return nil
}

// placeBid stashes the selected crop and hands off to the bid portal.
func (v *bidderView) placeBid() tea.Cmd {
	c := v.current()
	if c == nil {
		return nil
	}
	if err := v.app.Store.Put(storage.KeyCurrentBidCrop, *c); err != nil {
		v.app.Logger.Warn("[bidder] stash bid crop: %v", err)
	}
	return switchView(ViewBidPortal)
}

func (v *bidderView) openChat() tea.Cmd {
	c := v.current()
	if c == nil {
		return nil
	}
	if !v.app.User.LoggedIn() {
		return switchView(ViewLogin)
	}
	if err := v.app.Store.Put(storage.KeyChatCropID, c.ID); err != nil {
		v.app.Logger.Warn("[bidder] stash chat crop id: %v", err)
	}
	return switchView(ViewChat)
}

// applyFilter runs the strict narrowing pipeline: status+time first,
// then location substring, then name substring.
func (v *bidderView) applyFilter() {
	result := services.FilterOpen(v.crops, v.now)
	result = services.FilterLocation(result, v.location.Value())
	result = services.FilterName(result, v.search.Value())
	v.filtered = result
	if v.selected >= len(v.filtered) {
		v.selected = len(v.filtered) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
}

func (v *bidderView) moveSelection(delta int) {
	if len(v.filtered) == 0 {
		return
	}
	next := v.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(v.filtered) {
		next = len(v.filtered) - 1
	}
	v.selected = next
}

func (v *bidderView) current() *models.Crop {
	if v.selected < 0 || v.selected >= len(v.filtered) {
		return nil
	}
	return &v.filtered[v.selected]
}

func (v *bidderView) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	cmds = append(cmds, cmd)
	v.location, cmd = v.location.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (v *bidderView) countdownLine(c models.Crop) string {
	cd, ok := services.Remaining(c, v.now)
	if ok {
		return timerStyle.Render(fmt.Sprintf("Time Left: %dh %dm %ds", cd.Hours, cd.Minutes, cd.Seconds))
	}
	if _, known := services.WindowEnd(c.Datetime); known {
		return errStyle.Render("Bidding Closed")
	}
	return ""
}

func (v *bidderView) View(width, height int) string {
	if v.showDetails {
		return v.renderDetails(width, height)
	}

	header := titleStyle.Render("Open Crops") +
		mutedStyle.Render(fmt.Sprintf("  (%d shown)", len(v.filtered))) +
		"   " + wishStyle.Render(fmt.Sprintf("♥ wishlist: %d", v.app.Wishlist.Count()))

	filterLine := "Search: " + v.search.View() + "   Location: " + v.location.View()

	var body string
	switch {
	case v.errMsg != "":
		body = errStyle.Render(v.errMsg)
	case len(v.filtered) == 0:
		body = mutedStyle.Render("No crops available for bidding.")
	default:
		body = v.renderCards(height - 6)
	}

	hints := statusBarStyle.Render("j/k move  / search  l location  w wishlist  W saved  b bid  c chat  d details  r refresh  q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, filterLine, "", body, "", hints)
}

func (v *bidderView) renderCards(maxHeight int) string {
	const cardHeight = 6
	visible := maxHeight / cardHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := start + visible
	if end > len(v.filtered) {
		end = len(v.filtered)
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		c := v.filtered[i]

		name := c.Name
		if name == "" {
			name = "Unnamed"
		}
		farmer := c.FarmerName
		if farmer == "" {
			farmer = "Unknown"
		}
		location := c.Location
		if location == "" {
			location = "N/A"
		}

		mark := "🤍"
		if v.app.Wishlist.Contains(c.ID) {
			mark = "❤️"
		}

		lines := []string{
			lipgloss.NewStyle().Bold(true).Render(name) + "  " + mark,
			fmt.Sprintf("Price: ₹%.0f   Quantity: %.0f kg", c.Price, c.Quantity),
			"Farmer: " + farmer + "   Location: " + location,
			v.countdownLine(c),
		}

		style := cardStyle
		if i == v.selected {
			style = selectedCardStyle
		}
		cards = append(cards, style.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (v *bidderView) renderDetails(width, height int) string {
	c := v.current()
	if c == nil {
		return ""
	}

	status := okStyle.Render("🟢 Bidding Open")
	if !services.IsBiddable(*c, v.now) {
		status = errStyle.Render("🔴 Bidding Closed")
	}

	dash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}

	lines := []string{
		titleStyle.Render(dash(c.Name)),
		"",
		"Quantity: " + fmt.Sprintf("%.0f kg", c.Quantity),
		"Quality:  " + dash(c.Quality),
		"Location: " + dash(c.Location),
		"Posted:   " + dash(c.Datetime),
		"Notes:    " + dash(c.Notes),
		"Images:   " + fmt.Sprintf("%d attached", len(c.Images)),
		"",
		status,
		"",
		mutedStyle.Render("Esc close"),
	}

	box := popupStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
