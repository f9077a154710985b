package dialog

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel asks a question with a row of buttons. Each button can also be
// chosen by the first letter of its label.
type confirmModel struct {
	keys     keyMap
	title    string
	question string
	choices  []string

	cursor int
	chosen int // -1 until answered or when cancelled

	width, height int
}

func newConfirm(title, question string, choices ...string) confirmModel {
	return confirmModel{
		keys:     defaultKeyMap(),
		title:    title,
		question: question,
		choices:  choices,
		chosen:   -1,
	}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.chosen = -1
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.cursor = (m.cursor + len(m.choices) - 1) % len(m.choices)
		case key.Matches(msg, m.keys.Next):
			m.cursor = (m.cursor + 1) % len(m.choices)
		case key.Matches(msg, m.keys.Accept):
			m.chosen = m.cursor
			return m, tea.Quit
		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			if i := m.shortcut(msg.Runes[0]); i >= 0 {
				m.chosen = i
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m confirmModel) shortcut(r rune) int {
	r = unicode.ToLower(r)
	for i, c := range m.choices {
		if first, _ := utf8.DecodeRuneInString(c); unicode.ToLower(first) == r {
			return i
		}
	}
	return -1
}

func (m confirmModel) View() string {
	buttons := make([]string, 0, len(m.choices))
	for i, c := range m.choices {
		style := buttonStyle
		if i == m.cursor {
			style = activeButton
		}
		buttons = append(buttons, style.Render(c))
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.question,
		"",
		strings.Join(buttons, " "),
	)
	return frame(m.width, m.height, titleStyle, m.title, body, "←/→ select • enter choose • esc cancel")
}

// messageModel shows a message until it is acknowledged.
type messageModel struct {
	keys  keyMap
	title string
	text  string

	width, height int
}

func newMessage(title, text string) messageModel {
	return messageModel{keys: defaultKeyMap(), title: title, text: text}
}

func (m messageModel) Init() tea.Cmd { return nil }

func (m messageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Accept, m.keys.Cancel) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m messageModel) View() string {
	body := m.text
	if m.width > 8 {
		body = lipgloss.NewStyle().Width(min(m.width-8, 72)).Render(body)
	}
	return frame(m.width, m.height, errorTitleStyle, m.title, body, "enter ok")
}
