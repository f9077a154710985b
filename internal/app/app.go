// Package app is the notepad's root Bubble Tea model: menu bar, editor and
// status line, with key and mouse input routed to the document session.
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pyojuwon-sketc/notepad"
	"github.com/pyojuwon-sketc/notepad/editor"
	"github.com/pyojuwon-sketc/notepad/internal/config"
)

// ConfigMsg delivers a reloaded configuration.
type ConfigMsg struct{ Config config.Config }

// ConfigErrorMsg reports a configuration file that could not be reloaded.
type ConfigErrorMsg struct{ Err error }

type openPathMsg struct{ path string }

// Dialogs provides the modal prompts and file pickers.
type Dialogs interface {
	notepad.Prompter
	notepad.FilePicker
}

type Options struct {
	Config    config.Config
	Dialogs   Dialogs
	Clipboard editor.Clipboard
	Logger    *log.Logger

	// Path is opened once the program starts.
	Path string
}

type Model struct {
	cfg  config.Config
	keys KeyMap
	log  *log.Logger

	editor  editor.Model
	ph      *notepad.Placeholder
	session *notepad.Session
	window  *window
	changes *changes
	menu    menuBar

	path      string
	lastTitle string
	status    string
	quitting  bool

	width, height int
}

func New(opt Options) Model {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	keys := DefaultKeyMap()
	track := &changes{}
	ed := editor.New(editor.Config{
		ShowLineNums: opt.Config.LineNumbers,
		TabWidth:     opt.Config.TabWidth,
		WrapMode:     wrapMode(opt.Config.WordWrap),
		Style:        editor.DefaultStyle(),
		Clipboard:    opt.Clipboard,
		HistoryLimit: opt.Config.HistoryLimit,
		OnChange:     track.observe,
	}).Blur()

	surf := surface{ed: ed}
	win := &window{}
	ph := notepad.NewPlaceholder(surf, opt.Config.Hint)
	session := notepad.NewSession(surf, ph, opt.Dialogs, opt.Dialogs, win, notepad.Options{
		DefaultExt: opt.Config.DefaultExt,
		Logger:     logger,
	})
	track.ph = ph
	ph.OnFocusLost()

	m := Model{
		cfg:     opt.Config,
		keys:    keys,
		log:     logger,
		editor:  ed.Sync(),
		ph:      ph,
		session: session,
		window:  win,
		changes: track,
		menu:    newMenuBar(keys),

		path:      opt.Path,
		lastTitle: win.title,
	}
	m.menu = m.menu.setChecked(actWordWrap, opt.Config.WordWrap)
	m.menu.disabled = m.disabledActions()
	return m
}

func (m Model) Session() *notepad.Session { return m.session }

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(m.title())}
	if m.path != "" {
		path := m.path
		cmds = append(cmds, func() tea.Msg { return openPathMsg{path: path} })
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor = m.editor.SetSize(msg.Width, m.editorHeight())

	case openPathMsg:
		if err := m.session.OpenPath(msg.path); err == nil {
			m.changes.markSaved(m.ph.RealContent())
		}

	case ConfigMsg:
		m = m.applyConfig(msg.Config)

	case ConfigErrorMsg:
		m.log.Printf("config: %v", msg.Err)
		m.status = "Configuration error: " + msg.Err.Error()

	case tea.FocusMsg:
		m = m.focusEditor()

	case tea.BlurMsg:
		m = m.blurEditor()

	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)

	case tea.KeyMsg:
		m.status = ""
		m, cmd = m.updateKey(msg)
	}

	m.editor = m.editor.Sync()
	m.menu.disabled = m.disabledActions()
	title := m.titleCmd()
	return m, tea.Batch(cmd, title)
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.menu.open {
		var act action
		m.menu, act = m.menu.update(msg)
		return m.run(act)
	}

	switch {
	case key.Matches(msg, m.keys.Menu):
		m.menu = m.menu.openMenu(0)
		return m, nil
	case key.Matches(msg, m.keys.New):
		return m.run(actNew)
	case key.Matches(msg, m.keys.Open):
		return m.run(actOpen)
	case key.Matches(msg, m.keys.Save):
		return m.run(actSave)
	case key.Matches(msg, m.keys.SaveAs):
		return m.run(actSaveAs)
	case key.Matches(msg, m.keys.Exit):
		return m.run(actExit)
	case key.Matches(msg, m.keys.Undo):
		return m.run(actUndo)
	case key.Matches(msg, m.keys.Redo):
		return m.run(actRedo)
	case key.Matches(msg, m.keys.Cut):
		return m.run(actCut)
	case key.Matches(msg, m.keys.Copy):
		return m.run(actCopy)
	case key.Matches(msg, m.keys.Paste):
		return m.run(actPaste)
	case key.Matches(msg, m.keys.SelectAll):
		return m.run(actSelectAll)
	case key.Matches(msg, m.keys.Delete) && m.hasSelection():
		return m.run(actDelete)
	case key.Matches(msg, m.keys.Blur):
		return m.blurEditor(), nil
	}

	// Any other key goes to the text, focusing it first.
	m = m.focusEditor()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	ev := tea.MouseEvent(msg)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		var (
			act     action
			handled bool
		)
		m.menu, act, handled = m.menu.click(msg.X, msg.Y)
		if handled {
			return m.run(act)
		}
	}

	inside := msg.Y >= 1 && msg.Y <= m.editorHeight()
	if !inside && msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && !ev.IsWheel() {
		m = m.focusEditor()
	}
	msg.Y--
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// run performs a menu or shortcut action.
func (m Model) run(act action) (Model, tea.Cmd) {
	switch act {
	case actNone:
		return m, nil
	case actNew:
		if m.session.New() {
			if m.editor.Focused() {
				m.ph.OnFocusGained()
			}
			m.changes.markSaved("")
		}
	case actOpen:
		if m.session.Open() {
			m.changes.markSaved(m.ph.RealContent())
		}
	case actSave:
		if m.session.Save() {
			m.changes.markSaved(m.ph.RealContent())
			m.status = "Saved " + m.session.Path()
		}
	case actSaveAs:
		if m.session.SaveAs() {
			m.changes.markSaved(m.ph.RealContent())
			m.status = "Saved " + m.session.Path()
		}
	case actWordWrap:
		m.editor = m.editor.SetWrapMode(toggleWrap(m.editor.WrapMode()))
		m.menu = m.menu.setChecked(actWordWrap, m.editor.WrapMode() != editor.WrapNone)
	case actExit:
		if m.session.Exit() {
			m.quitting = true
			return m, tea.Quit
		}
	default:
		// Edit commands act on the text, never on the hint.
		m = m.focusEditor()
		cmd := editCommands[act]
		if err := m.session.Edit(cmd); err != nil {
			m.status = fmt.Sprintf("%s failed: %v", cmd, err)
		}
	}
	return m, nil
}

var editCommands = map[action]notepad.Command{
	actUndo:      notepad.CmdUndo,
	actRedo:      notepad.CmdRedo,
	actCut:       notepad.CmdCut,
	actCopy:      notepad.CmdCopy,
	actPaste:     notepad.CmdPaste,
	actDelete:    notepad.CmdDelete,
	actSelectAll: notepad.CmdSelectAll,
}

func (m Model) focusEditor() Model {
	if m.editor.Focused() {
		return m
	}
	m.ph.OnFocusGained()
	m.editor = m.editor.Focus()
	return m
}

func (m Model) blurEditor() Model {
	if !m.editor.Focused() {
		return m
	}
	m.editor = m.editor.Blur()
	m.ph.OnFocusLost()
	return m
}

// disabledActions greys out Edit items that would do nothing.
func (m Model) disabledActions() map[action]bool {
	buf := m.editor.Buffer()
	sel := m.hasSelection()
	return map[action]bool{
		actUndo:   !buf.CanUndo(),
		actRedo:   !buf.CanRedo(),
		actCut:    !sel,
		actCopy:   !sel,
		actDelete: !sel,
	}
}

func (m Model) hasSelection() bool {
	_, ok := m.editor.Buffer().Selection()
	return ok
}

func (m Model) applyConfig(c config.Config) Model {
	m.status = "Configuration reloaded"
	if !m.ph.SetHint(c.Hint) {
		m.log.Printf("config: hint %q matches the document text, keeping %q", c.Hint, m.ph.Hint())
		m.status = "Configuration reloaded; hint unchanged because it matches the text"
		c.Hint = m.ph.Hint()
	}
	if c.WordWrap != m.cfg.WordWrap {
		m.editor = m.editor.SetWrapMode(wrapMode(c.WordWrap))
		m.menu = m.menu.setChecked(actWordWrap, c.WordWrap)
	}
	if c.LineNumbers != m.cfg.LineNumbers {
		m.editor = m.editor.SetShowLineNums(c.LineNumbers)
	}
	if c.TabWidth != m.cfg.TabWidth {
		m.editor = m.editor.SetTabWidth(c.TabWidth)
	}
	m.cfg = c
	return m
}

// title is the session's window title, marked with a leading "*" while the
// document has unsaved changes.
func (m Model) title() string {
	if m.changes.modified() {
		return "*" + m.window.title
	}
	return m.window.title
}

func (m *Model) titleCmd() tea.Cmd {
	t := m.title()
	if t == m.lastTitle {
		return nil
	}
	m.lastTitle = t
	return tea.SetWindowTitle(t)
}

func wrapMode(on bool) editor.WrapMode {
	if on {
		return editor.WrapWord
	}
	return editor.WrapNone
}

func toggleWrap(w editor.WrapMode) editor.WrapMode {
	if w == editor.WrapNone {
		return editor.WrapWord
	}
	return editor.WrapNone
}

func (m Model) editorHeight() int { return max(m.height-2, 0) }

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.editor.View()
	if m.menu.open {
		x, lines := m.menu.dropdown()
		body = overlay(body, lines, x, 0)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.menu.view(m.width, m.title()),
		body,
		m.statusView(),
	)
}

func (m Model) statusView() string {
	cur := m.editor.Buffer().Cursor()
	pos := fmt.Sprintf("Ln %d, Col %d", cur.Row+1, cur.GraphemeCol+1)
	if m.ph.Shown() {
		pos = ""
	}

	left := statusMsgStyle.Render(m.status)
	right := statusStyle.Render(pos)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
