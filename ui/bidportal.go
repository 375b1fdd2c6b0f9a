package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cropconnect-client/models"
	"cropconnect-client/services"
	"cropconnect-client/storage"
)

type bidPlacedMsg struct {
	owner *bidPortalView
	err   error
}

type bidTickMsg struct {
	owner *bidPortalView
	now   time.Time
}

// bidPortalView shows the crop handed over from the catalog and takes
// a bid amount while the window countdown keeps running.
type bidPortalView struct {
	app *App

	crop   models.Crop
	hasBid bool
	now    time.Time

	amount textinput.Model
	busy   bool
	errMsg string
	okMsg  string
}

func newBidPortalView(app *App) *bidPortalView {
	amount := textinput.New()
	amount.Placeholder = "bid amount"
	amount.CharLimit = 12

	v := &bidPortalView{app: app, amount: amount, now: time.Now()}
	if err := app.Store.Get(storage.KeyCurrentBidCrop, &v.crop); err != nil {
		app.Logger.Warn("[bid] no crop selected: %v", err)
	} else {
		v.hasBid = true
	}
	return v
}

func (v *bidPortalView) Init() tea.Cmd {
	if !v.hasBid {
		return nil
	}
	return tea.Batch(v.amount.Focus(), v.tickCmd())
}

func (v *bidPortalView) tickCmd() tea.Cmd {
	interval := time.Duration(v.app.Cfg.CountdownTickMs) * time.Millisecond
	return tea.Tick(interval, func(ts time.Time) tea.Msg {
		return bidTickMsg{owner: v, now: ts}
	})
}

func (v *bidPortalView) Update(msg tea.Msg) tea.Cmd {
	switch typed := msg.(type) {
	case bidTickMsg:
		if typed.owner != v {
			return nil
		}
		v.now = typed.now
		return v.tickCmd()

	case bidPlacedMsg:
		if typed.owner != v {
			return nil
		}
		v.busy = false
		if typed.err != nil {
			v.errMsg = "Bid failed: " + typed.err.Error()
			v.app.Logger.Error("[bid] place bid: %v", typed.err)
			return nil
		}
		v.errMsg = ""
		v.okMsg = "Bid placed successfully."
		return nil

	case tea.KeyMsg:
		switch typed.String() {
		case "esc":
			return switchView(ViewBidder)
		case "enter":
			return v.submit()
		}
	}

	var cmd tea.Cmd
	v.amount, cmd = v.amount.Update(msg)
	return cmd
}

func (v *bidPortalView) submit() tea.Cmd {
	if v.busy || !v.hasBid {
		return nil
	}
	raw := strings.TrimSpace(v.amount.Value())
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price <= 0 {
		v.errMsg = "Enter a valid bid amount."
		return nil
	}
	if !services.IsBiddable(v.crop, time.Now()) {
		v.errMsg = "Bidding has closed for this crop."
		return nil
	}

	cropID := v.crop.ID
	bidderID := v.app.User.ID
	v.busy = true
	v.errMsg = ""
	v.okMsg = ""
	return func() tea.Msg {
		return bidPlacedMsg{owner: v, err: v.app.API.PlaceBid(cropID, bidderID, price)}
	}
}

func (v *bidPortalView) View(width, height int) string {
	if !v.hasBid {
		box := popupStyle.Render(errStyle.Render("No crop selected for bidding.") + "\n" +
			mutedStyle.Render("Esc back"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}

	timer := ""
	if cd, ok := services.Remaining(v.crop, v.now); ok {
		timer = timerStyle.Render(fmt.Sprintf("Time Left: %dh %dm %ds", cd.Hours, cd.Minutes, cd.Seconds))
	} else if _, known := services.WindowEnd(v.crop.Datetime); known {
		timer = errStyle.Render("Bidding Closed")
	}

	lines := []string{
		titleStyle.Render("Place a Bid"),
		"",
		lipgloss.NewStyle().Bold(true).Render(v.crop.Name),
		fmt.Sprintf("Asking: ₹%.0f   Quantity: %.0f kg", v.crop.Price, v.crop.Quantity),
		"Farmer: " + v.crop.FarmerName,
		timer,
		"",
		"Your bid: " + v.amount.View(),
		"",
	}
	if v.busy {
		lines = append(lines, mutedStyle.Render("Placing bid..."))
	}
	if v.errMsg != "" {
		lines = append(lines, errStyle.Render(v.errMsg))
	}
	if v.okMsg != "" {
		lines = append(lines, okStyle.Render(v.okMsg))
	}
	lines = append(lines, mutedStyle.Render("Enter submit  Esc back"))

	box := popupStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
