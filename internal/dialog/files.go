package dialog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pyojuwon-sketc/notepad"
)

// openModel browses for an existing file. Tab cycles the file-type filters.
type openModel struct {
	keys    keyMap
	picker  filepicker.Model
	filters []notepad.FileFilter
	filter  int

	path     string
	canceled bool

	width, height int
}

func newOpen(dir string, filters []notepad.FileFilter) openModel {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.ShowPermissions = false
	m := openModel{keys: defaultKeyMap(), picker: fp, filters: filters}
	m.applyFilter()
	return m
}

func (m *openModel) applyFilter() {
	m.picker.AllowedTypes = nil
	if m.filter >= len(m.filters) {
		return
	}
	for _, p := range m.filters[m.filter].Patterns {
		if p == "*" {
			m.picker.AllowedTypes = nil
			return
		}
		m.picker.AllowedTypes = append(m.picker.AllowedTypes, "."+strings.TrimPrefix(p, "."))
	}
}

func (m openModel) Init() tea.Cmd { return m.picker.Init() }

func (m openModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		var cmd tea.Cmd
		// Title, filter line and help take four rows.
		m.picker, cmd = m.picker.Update(tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-4, 1)})
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Filter) && len(m.filters) > 1:
			m.filter = (m.filter + 1) % len(m.filters)
			m.applyFilter()
			return m, m.picker.Init()
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.path = path
		return m, tea.Quit
	}
	return m, cmd
}

func (m openModel) View() string {
	filter := ""
	if m.filter < len(m.filters) {
		filter = helpStyle.Render("Type: " + m.filters[m.filter].Name)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Open")+"  "+helpStyle.Render(m.picker.CurrentDirectory),
		filter,
		m.picker.View(),
		helpStyle.Render("enter open • tab file type • esc cancel"),
	)
}

// pathModel asks for a file name to save to. Relative names are resolved
// against dir.
type pathModel struct {
	keys  keyMap
	input textinput.Model
	dir   string

	path     string
	canceled bool

	width, height int
}

func newPathInput(dir, name string) pathModel {
	ti := textinput.New()
	ti.Prompt = "File name: "
	ti.Placeholder = name
	ti.SetValue(name)
	ti.CursorEnd()
	ti.Width = 48
	ti.Focus()

	return pathModel{keys: defaultKeyMap(), input: ti, dir: dir}
}

func (m pathModel) Init() tea.Cmd { return textinput.Blink }

func (m pathModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			if p := resolvePath(m.dir, m.input.Value()); p != "" {
				m.path = p
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m pathModel) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		helpStyle.Render("In "+m.dir),
		m.input.View(),
	)
	return frame(m.width, m.height, titleStyle, "Save As", body, "enter save • esc cancel")
}

func resolvePath(dir, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if name == "~" || strings.HasPrefix(name, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			name = filepath.Join(home, strings.TrimPrefix(name, "~"))
		}
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	return filepath.Clean(name)
}
