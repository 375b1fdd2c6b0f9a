package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("42"))

	timerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	wishStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	selfMsgStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	otherMsgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	popupStyle      = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2)
	statusBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")).Padding(0, 1)
	fieldLabelStyle = lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color("250"))
)
