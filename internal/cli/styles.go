package cli

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	linkStyle       = lipgloss.NewStyle().Underline(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	noticeBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	warningBoxStyle = noticeBoxStyle.BorderForeground(lipgloss.Color("11"))
	errorBoxStyle   = noticeBoxStyle.BorderForeground(lipgloss.Color("9"))
)
