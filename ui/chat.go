package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cropconnect-client/models"
	"cropconnect-client/storage"
)

type chatThreadMsg struct {
	owner    *chatView
	messages []models.Message
	err      error
}

type chatTickMsg struct {
	owner *chatView
}

type chatSentMsg struct {
	owner *chatView
	sent  bool
	err   error
}

// chatView renders the per-crop conversation and refreshes it on a
// fixed poll interval. A failed poll keeps the last good thread on
// screen; only sends surface their errors.
type chatView struct {
	app *App

	cropID   string
	messages []models.Message
	compose  textinput.Model

	sendErr string
	loaded  bool
}

func newChatView(app *App) *chatView {
	compose := textinput.New()
	compose.Placeholder = "type a message"
	compose.CharLimit = 500

	v := &chatView{app: app, compose: compose}
	if err := app.Store.Get(storage.KeyChatCropID, &v.cropID); err != nil {
		app.Logger.Warn("[chat] no crop selected: %v", err)
	}
	return v
}

func (v *chatView) Init() tea.Cmd {
	if v.cropID == "" {
		return nil
	}
	return tea.Batch(v.compose.Focus(), v.fetchCmd(), v.tickCmd())
}

func (v *chatView) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		messages, err := v.app.Chat.Thread(v.cropID)
		return chatThreadMsg{owner: v, messages: messages, err: err}
	}
}

func (v *chatView) tickCmd() tea.Cmd {
	interval := time.Duration(v.app.Cfg.ChatPollMs) * time.Millisecond
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return chatTickMsg{owner: v}
	})
}

func (v *chatView) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		sent, err := v.app.Chat.Send(v.cropID, v.app.User.ID, text)
		return chatSentMsg{owner: v, sent: sent, err: err}
	}
}

func (v *chatView) Update(msg tea.Msg) tea.Cmd {
	switch typed := msg.(type) {
	case chatThreadMsg:
		if typed.owner != v {
			return nil
		}
		if typed.err != nil {
			// Keep whatever thread we already have.
			return nil
		}
		v.loaded = true
		v.messages = typed.messages
		return nil

	case chatTickMsg:
		if typed.owner != v {
			return nil
		}
		return tea.Batch(v.fetchCmd(), v.tickCmd())

	case chatSentMsg:
		if typed.owner != v {
			return nil
		}
		if typed.err != nil {
			v.sendErr = "Message failed to send."
			v.app.Logger.Error("[chat] send: %v", typed.err)
			return nil
		}
		v.sendErr = ""
		if typed.sent {
			v.compose.SetValue("")
			// The thread is the server's; re-fetch rather than append.
			return v.fetchCmd()
		}
		return nil

	case tea.KeyMsg:
		switch typed.String() {
		case "esc":
			return switchView(v.app.HomeView())
		case "enter":
			// Cleared only once the send succeeds, so a failed send
			// leaves the typed message in place.
			return v.sendCmd(v.compose.Value())
		}
	}

	var cmd tea.Cmd
	v.compose, cmd = v.compose.Update(msg)
	return cmd
}

func (v *chatView) View(width, height int) string {
	if v.cropID == "" {
		return errStyle.Render("No conversation selected.") + "\n" +
			mutedStyle.Render("Esc back")
	}

	header := titleStyle.Render("Chat") + mutedStyle.Render("  crop "+v.cropID)

	var lines []string
	if !v.loaded {
		lines = append(lines, mutedStyle.Render("Loading messages..."))
	} else if len(v.messages) == 0 {
		lines = append(lines, mutedStyle.Render("No messages yet."))
	}
	for _, m := range v.messages {
		who := m.SenderName
		if who == "" {
			who = m.SenderID
		}
		line := fmt.Sprintf("%s: %s", who, m.Body)
		if m.SenderID == v.app.User.ID {
			lines = append(lines, selfMsgStyle.Render(line))
		} else {
			lines = append(lines, otherMsgStyle.Render(line))
		}
	}

	// Show the tail of the thread when it outgrows the pane.
	pane := height - 6
	if pane < 3 {
		pane = 3
	}
	if len(lines) > pane {
		lines = lines[len(lines)-pane:]
	}

	var footer []string
	if v.sendErr != "" {
		footer = append(footer, errStyle.Render(v.sendErr))
	}
	footer = append(footer,
		"> "+v.compose.View(),
		statusBarStyle.Render("Enter send  Esc back"))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		strings.Join(lines, "\n"),
		"",
		strings.Join(footer, "\n"))
}
