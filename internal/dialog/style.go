package dialog

import "github.com/charmbracelet/lipgloss"

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("244")).
			Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	errorTitleStyle = titleStyle.Foreground(lipgloss.Color("203"))
	buttonStyle     = lipgloss.NewStyle().Padding(0, 1)
	activeButton    = buttonStyle.Reverse(true)
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// frame centers a titled box on a width x height screen. Zero sizes skip
// centering.
func frame(width, height int, title lipgloss.Style, titleText, body, help string) string {
	content := lipgloss.JoinVertical(lipgloss.Left, title.Render(titleText), "", body)
	if help != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", helpStyle.Render(help))
	}
	box := boxStyle.Render(content)
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
