package app

import "github.com/charmbracelet/lipgloss"

var (
	menuBarStyle          = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252"))
	menuTitleStyle        = lipgloss.NewStyle().Padding(0, 1)
	menuActiveStyle       = menuTitleStyle.Reverse(true)
	menuItemStyle         = lipgloss.NewStyle()
	menuItemDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	dropdownStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("244"))
	statusStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusMsgStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)
