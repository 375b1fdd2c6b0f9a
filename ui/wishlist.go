package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cropconnect-client/models"
	"cropconnect-client/storage"
)

// wishlistView lists saved crops straight from the local snapshot, so
// it works with or without the network.
type wishlistView struct {
	app      *App
	selected int
}

func newWishlistView(app *App) *wishlistView {
	return &wishlistView{app: app}
}

func (v *wishlistView) Init() tea.Cmd { return nil }

func (v *wishlistView) items() []models.Crop { return v.app.Wishlist.Items() }

func (v *wishlistView) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	items := v.items()
	switch key.String() {
	case "j", "down":
		if v.selected < len(items)-1 {
			v.selected++
		}
	case "k", "up":
		if v.selected > 0 {
			v.selected--
		}
	case "w", "x":
		if v.selected < len(items) {
			v.app.Wishlist.Toggle(items[v.selected])
			if v.selected >= v.app.Wishlist.Count() && v.selected > 0 {
				v.selected--
			}
		}
	case "b":
		if v.selected < len(items) {
			if err := v.app.Store.Put(storage.KeyCurrentBidCrop, items[v.selected]); err != nil {
				v.app.Logger.Warn("[wishlist] stash bid crop: %v", err)
			}
			return switchView(ViewBidPortal)
		}
	case "esc", "q":
		return switchView(ViewBidder)
	}
	return nil
}

func (v *wishlistView) View(width, height int) string {
	items := v.items()

	header := titleStyle.Render("Wishlist") +
		mutedStyle.Render(fmt.Sprintf("  (%d saved)", len(items)))

	var body string
	if len(items) == 0 {
		body = mutedStyle.Render("Nothing saved yet. Press w on a crop to keep it here.")
	} else {
		var rows []string
		for i, c := range items {
			line := fmt.Sprintf("%-20s ₹%-8.0f %s", c.Name, c.Price, c.Location)
			if i == v.selected {
				line = selectedCardStyle.Render(line)
			} else {
				line = cardStyle.Render(line)
			}
			rows = append(rows, line)
		}
		body = strings.Join(rows, "\n")
	}

	hints := statusBarStyle.Render("j/k move  w remove  b bid  esc back")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", hints)
}
