package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cropconnect-client/models"
)

const (
	loginFieldUsername = iota
	loginFieldEmail
	loginFieldPassword
	loginFieldCount
)

type loginDoneMsg struct {
	owner *loginView
	user  models.User
	err   error
}

type registerDoneMsg struct {
	owner *loginView
	err   error
}

// loginView gates the bidder and chat views: without a session user
// the client always lands here first.
type loginView struct {
	app *App

	inputs       [loginFieldCount]textinput.Model
	focus        int
	registerMode bool
	roleFarmer   bool
	busy         bool

	errMsg  string
	infoMsg string
}

func newLoginView(app *App) *loginView {
	v := &loginView{app: app}

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	v.inputs[loginFieldUsername] = username
	v.inputs[loginFieldEmail] = email
	v.inputs[loginFieldPassword] = password

	v.focus = loginFieldEmail
	v.inputs[v.focus].Focus()
	return v
}

func (v *loginView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *loginView) Update(msg tea.Msg) tea.Cmd {
	switch typed := msg.(type) {
	case loginDoneMsg:
		if typed.owner != v {
			return nil
		}
		v.busy = false
		if typed.err != nil {
			v.errMsg = typed.err.Error()
			return nil
		}
		v.app.SetUser(typed.user)
		return switchView(v.app.HomeView())

	case registerDoneMsg:
		if typed.owner != v {
			return nil
		}
		v.busy = false
		if typed.err != nil {
			v.errMsg = typed.err.Error()
			return nil
		}
		v.registerMode = false
		v.infoMsg = "Account created. Log in to continue."
		v.setFocus(loginFieldEmail)
		return nil

	case tea.KeyMsg:
		return v.handleKey(typed)
	}

	return v.updateInputs(msg)
}

func (v *loginView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		delta := 1
		if msg.String() == "shift+tab" || msg.String() == "up" {
			delta = -1
		}
		v.cycleFocus(delta)
		return nil
	case "ctrl+r":
		v.registerMode = !v.registerMode
		v.errMsg = ""
		v.infoMsg = ""
		if v.registerMode {
			v.setFocus(loginFieldUsername)
		} else {
			v.setFocus(loginFieldEmail)
		}
		return nil
	case "ctrl+f":
		if v.registerMode {
			v.roleFarmer = !v.roleFarmer
		}
		return nil
	case "enter":
		return v.submit()
	case "esc":
		return tea.Quit
	}
	return v.updateInputs(msg)
}

func (v *loginView) submit() tea.Cmd {
	if v.busy {
		return nil
	}
	email := strings.TrimSpace(v.inputs[loginFieldEmail].Value())
	password := v.inputs[loginFieldPassword].Value()
	if email == "" || password == "" {
		v.errMsg = "Email and password are required."
		return nil
	}

	v.busy = true
	v.errMsg = ""
	v.infoMsg = ""

	if v.registerMode {
		username := strings.TrimSpace(v.inputs[loginFieldUsername].Value())
		if username == "" {
			v.busy = false
			v.errMsg = "Username is required."
			return nil
		}
		role := "bidder"
		if v.roleFarmer {
			role = "farmer"
		}
		return func() tea.Msg {
			err := v.app.API.Register(username, email, password, role)
			return registerDoneMsg{owner: v, err: err}
		}
	}

	return func() tea.Msg {
		user, err := v.app.API.Login(email, password)
		return loginDoneMsg{owner: v, user: user, err: err}
	}
}

func (v *loginView) cycleFocus(delta int) {
	first := loginFieldEmail
	if v.registerMode {
		first = loginFieldUsername
	}
	next := v.focus + delta
	if next < first {
		next = loginFieldPassword
	}
	if next > loginFieldPassword {
		next = first
	}
	v.setFocus(next)
}

func (v *loginView) setFocus(field int) {
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
	v.focus = field
	v.inputs[field].Focus()
}

func (v *loginView) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return cmd
}

func (v *loginView) View(width, height int) string {
	title := "CropConnect — Log In"
	if v.registerMode {
		title = "CropConnect — Register"
	}

	lines := []string{titleStyle.Render(title), ""}

	if v.registerMode {
		lines = append(lines, fieldLabelStyle.Render("Username")+v.inputs[loginFieldUsername].View())
	}
	lines = append(lines,
		fieldLabelStyle.Render("Email")+v.inputs[loginFieldEmail].View(),
		fieldLabelStyle.Render("Password")+v.inputs[loginFieldPassword].View(),
	)

	if v.registerMode {
		role := "bidder"
		if v.roleFarmer {
			role = "farmer"
		}
		lines = append(lines, "", fieldLabelStyle.Render("Role")+role+mutedStyle.Render("  (ctrl+f toggles)"))
	}

	if v.busy {
		lines = append(lines, "", mutedStyle.Render("Contacting server..."))
	}
	if v.errMsg != "" {
		lines = append(lines, "", errStyle.Render(v.errMsg))
	}
	if v.infoMsg != "" {
		lines = append(lines, "", okStyle.Render(v.infoMsg))
	}

	hint := "Enter submit  Tab next field  Ctrl+R register  Esc quit"
	if v.registerMode {
		hint = "Enter submit  Tab next field  Ctrl+R back to login  Esc quit"
	}
	lines = append(lines, "", mutedStyle.Render(hint))

	box := popupStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
