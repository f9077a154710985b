package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pyojuwon-sketc/notepad/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.buf.InsertText(NormalizeNewlines(string(msg.Runes)))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.moveRow(-1, false)
	case key.Matches(msg, km.Down):
		m.moveRow(1, false)

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.moveRow(-1, true)
	case key.Matches(msg, km.ShiftDown):
		m.moveRow(1, true)

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(msg, km.PageUp):
		m.movePage(-1)
	case key.Matches(msg, km.PageDown):
		m.movePage(1)

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()

	case key.Matches(msg, km.Undo):
		_ = m.Exec(CommandUndo)
	case key.Matches(msg, km.Redo):
		_ = m.Exec(CommandRedo)
	case key.Matches(msg, km.Copy):
		_ = m.Exec(CommandCopy)
	case key.Matches(msg, km.Cut):
		_ = m.Exec(CommandCut)
	case key.Matches(msg, km.Paste):
		_ = m.Exec(CommandPaste)
	case key.Matches(msg, km.SelectAll):
		_ = m.Exec(CommandSelectAll)

	default:
		switch {
		case msg.Type == tea.KeyTab:
			m.buf.InsertText("\t")
		case msg.Type == tea.KeySpace:
			m.buf.InsertText(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.buf.InsertText(string(msg.Runes))
		}
	}

	return m, nil
}

// moveRow moves the cursor one visual row up or down. Without wrapping a
// visual row is a document line.
func (m Model) moveRow(dir int, extend bool) {
	if m.cfg.WrapMode == WrapNone {
		d := buffer.DirDown
		if dir < 0 {
			d = buffer.DirUp
		}
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: d, Extend: extend})
		return
	}
	m.moveVisual(dir, extend)
}

func (m Model) movePage(dir int) {
	h := max(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 1)
	if m.cfg.WrapMode != WrapNone {
		m.moveVisual(dir*h, false)
		return
	}
	cur := m.buf.Cursor()
	m.buf.SetCursor(buffer.Pos{Row: cur.Row + dir*h, GraphemeCol: cur.GraphemeCol})
}

// moveVisual moves the cursor by n visual rows, keeping its cell offset
// within the row. Moving past the first or last row clamps to it.
func (m Model) moveVisual(n int, extend bool) {
	l := m.layout
	if m.buf.Version() != m.lastBufVersion {
		l = m.buildLayout()
	}
	if len(l.rows) == 0 {
		return
	}
	cur := m.buf.Cursor()
	lr := l.rows[min(max(l.visualRow(cur)+n, 0), len(l.rows)-1)]
	next := buffer.Pos{Row: lr.row, GraphemeCol: l.colAt(lr, l.cellInRow(cur))}

	if !extend {
		m.buf.SetCursor(next)
		return
	}
	anchor := cur
	if sel, ok := m.buf.Selection(); ok {
		anchor = sel.Start
		if sel.Start == cur {
			anchor = sel.End
		}
	}
	m.buf.SetSelection(buffer.Range{Start: anchor, End: next})
}
