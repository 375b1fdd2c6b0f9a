package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cropconnect-client/api"
	"cropconnect-client/models"
	"cropconnect-client/storage"
)

const (
	fieldName = iota
	fieldType
	fieldQuality
	fieldPrice
	fieldQuantity
	fieldLocation
	fieldNotes
	fieldImages
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Type", "Quality", "Price", "Quantity", "Location", "Notes", "Images"}

type farmerLoadedMsg struct {
	owner *farmerView
	crops []models.Crop
	token uint64
	err   error
}

type farmerSavedMsg struct {
	owner *farmerView
	crops []models.Crop
	token uint64
	err   error
}

type farmerLocationMsg struct {
	owner    *farmerView
	location string
}

// farmerView lists the signed-in farmer's crops and hosts the
// create/edit form, including image attachment and location autofill.
type farmerView struct {
	app *App

	crops    []models.Crop
	mine     []models.Crop
	selected int

	editing      bool
	editID       string
	editPostedAt string
	inputs       [fieldCount]textinput.Model
	focus        int
	confirming   bool

	busy    bool
	errMsg  string
	infoMsg string
}

func newFarmerView(app *App) *farmerView {
	v := &farmerView{app: app}
	for i := range v.inputs {
		in := textinput.New()
		in.CharLimit = 128
		in.Placeholder = strings.ToLower(fieldLabels[i])
		v.inputs[i] = in
	}
	v.inputs[fieldImages].Placeholder = "comma separated image paths"
	v.inputs[fieldImages].CharLimit = 512
	return v
}

func (v *farmerView) Init() tea.Cmd {
	return v.loadCmd()
}

func (v *farmerView) loadCmd() tea.Cmd {
	return func() tea.Msg {
		crops, token, err := v.app.Catalog.List()
		return farmerLoadedMsg{owner: v, crops: crops, token: token, err: err}
	}
}

func (v *farmerView) Update(msg tea.Msg) tea.Cmd {
	switch typed := msg.(type) {
	case farmerLoadedMsg:
		if typed.owner != v {
			return nil
		}
		if typed.err != nil {
			v.errMsg = "Error loading crops."
			v.app.Logger.Error("[farmer] load crops: %v", typed.err)
			return nil
		}
		if !v.app.Catalog.Fresh(typed.token) {
			return nil
		}
		v.errMsg = ""
		v.setCrops(typed.crops)
		return nil

	case farmerSavedMsg:
		if typed.owner != v {
			return nil
		}
		v.busy = false
		if typed.err != nil {
			v.errMsg = typed.err.Error()
			v.app.Logger.Error("[farmer] save crop: %v", typed.err)
			return nil
		}
		if v.app.Catalog.Fresh(typed.token) {
			v.setCrops(typed.crops)
		}
		v.editing = false
		v.errMsg = ""
		v.infoMsg = "Saved."
		return nil

	case farmerLocationMsg:
		if typed.owner != v {
			return nil
		}
		if typed.location != "" && v.editing {
			v.inputs[fieldLocation].SetValue(typed.location)
		}
		return nil

	case tea.KeyMsg:
		return v.handleKey(typed)
	}

	if v.editing {
		return v.updateInputs(msg)
	}
	return nil
}

func (v *farmerView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.confirming {
		switch msg.String() {
		case "y", "enter":
			v.confirming = false
			return v.deleteCmd()
		default:
			v.confirming = false
		}
		return nil
	}

	if v.editing {
		return v.handleFormKey(msg)
	}

	switch msg.String() {
	case "j", "down":
		if v.selected < len(v.mine)-1 {
			v.selected++
		}
	case "k", "up":
		if v.selected > 0 {
			v.selected--
		}
	case "n":
		return v.openForm(nil)
	case "e", "enter":
		if c := v.current(); c != nil {
			return v.openForm(c)
		}
	case "x":
		if v.current() != nil {
			v.confirming = true
		}
	case "c":
		if c := v.current(); c != nil {
			if err := v.app.Store.Put(storage.KeyChatCropID, c.ID); err != nil {
				v.app.Logger.Warn("[farmer] stash chat crop id: %v", err)
			}
			return switchView(ViewChat)
		}
	case "r":
		return v.loadCmd()
	case "q", "esc":
		return tea.Quit
	}
	return nil
}

func (v *farmerView) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		v.editing = false
		v.errMsg = ""
		return nil
	case "tab", "down":
		return v.focusField((v.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return v.focusField((v.focus + fieldCount - 1) % fieldCount)
	case "ctrl+l":
		return v.autofillCmd()
	case "ctrl+s", "enter":
		if msg.String() == "enter" && v.focus != fieldCount-1 {
			return v.focusField(v.focus + 1)
		}
		return v.submit()
	}
	return v.updateInputs(msg)
}

func (v *farmerView) focusField(idx int) tea.Cmd {
	v.inputs[v.focus].Blur()
	v.focus = idx
	return v.inputs[v.focus].Focus()
}

func (v *farmerView) openForm(c *models.Crop) tea.Cmd {
	v.editing = true
	v.errMsg = ""
	v.infoMsg = ""
	v.editID = ""
	for i := range v.inputs {
		v.inputs[i].SetValue("")
		v.inputs[i].Blur()
	}
	v.editPostedAt = ""
	if c != nil {
		v.editID = c.ID
		v.editPostedAt = c.Datetime
		v.inputs[fieldName].SetValue(c.Name)
		v.inputs[fieldType].SetValue(c.Type)
		v.inputs[fieldQuality].SetValue(c.Quality)
		v.inputs[fieldPrice].SetValue(strconv.FormatFloat(c.Price, 'f', -1, 64))
		v.inputs[fieldQuantity].SetValue(strconv.FormatFloat(c.Quantity, 'f', -1, 64))
		v.inputs[fieldLocation].SetValue(c.Location)
		v.inputs[fieldNotes].SetValue(c.Notes)
	}
	v.focus = fieldName
	return v.inputs[fieldName].Focus()
}

// autofillCmd resolves the device position to a readable place name in
// the background and fills the location field when it lands.
func (v *farmerView) autofillCmd() tea.Cmd {
	return func() tea.Msg {
		return farmerLocationMsg{owner: v, location: v.app.Location.AutoFill()}
	}
}

func (v *farmerView) submit() tea.Cmd {
	if v.busy {
		return nil
	}

	// Edits keep the original posting time so the bidding window
	// anchor never moves; only a new crop starts a fresh window.
	postedAt := v.editPostedAt
	if v.editID == "" {
		postedAt = time.Now().UTC().Format(time.RFC3339)
	}

	form := models.CropForm{
		Name:     strings.TrimSpace(v.inputs[fieldName].Value()),
		Type:     strings.TrimSpace(v.inputs[fieldType].Value()),
		Quality:  strings.TrimSpace(v.inputs[fieldQuality].Value()),
		Location: strings.TrimSpace(v.inputs[fieldLocation].Value()),
		Notes:    strings.TrimSpace(v.inputs[fieldNotes].Value()),
		Datetime: postedAt,
	}
	if raw := strings.TrimSpace(v.inputs[fieldPrice].Value()); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			v.errMsg = "Price must be a number."
			return nil
		}
		form.Price = price
	}
	if raw := strings.TrimSpace(v.inputs[fieldQuantity].Value()); raw != "" {
		qty, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			v.errMsg = "Quantity must be a number."
			return nil
		}
		form.Quantity = qty
	}

	paths := splitPaths(v.inputs[fieldImages].Value())
	id := v.editID

	v.busy = true
	v.errMsg = ""
	return func() tea.Msg {
		images, err := loadAttachments(paths)
		if err != nil {
			return farmerSavedMsg{owner: v, err: err}
		}
		var crops []models.Crop
		var token uint64
		if id == "" {
			crops, token, err = v.app.Catalog.Create(form, images)
		} else {
			crops, token, err = v.app.Catalog.Update(id, form, images)
		}
		return farmerSavedMsg{owner: v, crops: crops, token: token, err: err}
	}
}

func (v *farmerView) deleteCmd() tea.Cmd {
	c := v.current()
	if c == nil {
		return nil
	}
	id := c.ID
	v.busy = true
	return func() tea.Msg {
		crops, token, err := v.app.Catalog.Delete(id)
		return farmerSavedMsg{owner: v, crops: crops, token: token, err: err}
	}
}

func (v *farmerView) setCrops(crops []models.Crop) {
	v.crops = crops
	v.mine = v.mine[:0]
	for _, c := range crops {
		if c.FarmerID == v.app.User.ID {
			v.mine = append(v.mine, c)
		}
	}
	if v.selected >= len(v.mine) {
		v.selected = len(v.mine) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
}

func (v *farmerView) current() *models.Crop {
	if v.selected < 0 || v.selected >= len(v.mine) {
		return nil
	}
	return &v.mine[v.selected]
}

func (v *farmerView) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return cmd
}

func splitPaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func loadAttachments(paths []string) ([]api.Attachment, error) {
	var images []api.Attachment
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", p, err)
		}
		images = append(images, api.Attachment{Name: filepath.Base(p), Data: data})
	}
	return images, nil
}

func (v *farmerView) View(width, height int) string {
	if v.editing {
		return v.renderForm(width, height)
	}

	header := titleStyle.Render("My Crops") +
		mutedStyle.Render(fmt.Sprintf("  (%s)", v.app.User.Username))

	var body string
	switch {
	case v.errMsg != "":
		body = errStyle.Render(v.errMsg)
	case len(v.mine) == 0:
		body = mutedStyle.Render("No crops posted yet. Press n to add one.")
	default:
		var rows []string
		for i, c := range v.mine {
			status := c.Status
			if status == "" {
				status = "Available"
			}
			line := fmt.Sprintf("%-20s ₹%-8.0f %-8.0fkg %s", c.Name, c.Price, c.Quantity, status)
			if i == v.selected {
				line = selectedCardStyle.Render(line)
			} else {
				line = cardStyle.Render(line)
			}
			rows = append(rows, line)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	status := v.infoMsg
	if v.confirming {
		status = errStyle.Render("Delete this crop? y/n")
	}

	hints := statusBarStyle.Render("j/k move  n new  e edit  x delete  c chat  r refresh  q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", okStyle.Render(status), hints)
}

func (v *farmerView) renderForm(width, height int) string {
	title := "New Crop"
	if v.editID != "" {
		title = "Edit Crop"
	}

	lines := []string{titleStyle.Render(title), ""}
	for i := range v.inputs {
		lines = append(lines, fieldLabelStyle.Render(fieldLabels[i])+" "+v.inputs[i].View())
	}
	lines = append(lines, "")
	if v.errMsg != "" {
		lines = append(lines, errStyle.Render(v.errMsg))
	}
	if v.busy {
		lines = append(lines, mutedStyle.Render("Saving..."))
	}
	lines = append(lines, mutedStyle.Render("Tab next  Ctrl+L locate  Ctrl+S save  Esc cancel"))

	box := popupStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
