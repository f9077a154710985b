package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pyojuwon-sketc/notepad/buffer"
)

// updateMouse expects coordinates relative to the editor's top-left corner.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.buf == nil {
		return m, nil
	}

	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	pos, ok := m.hitTest(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if !ok {
			return m, nil
		}
		m.buf.SetCursor(pos)
		m.dragging = true
		m.dragAnchor = m.buf.Cursor()
	case tea.MouseActionMotion:
		if m.dragging && ok {
			m.buf.SetSelection(buffer.Range{Start: m.dragAnchor, End: pos})
		}
	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m, nil
}

// hitTest maps a cell inside the editor to a document position through the
// wrapped layout. Clicks past the end of a row land at its end; clicks below
// the last row land on it.
func (m Model) hitTest(x, y int) (buffer.Pos, bool) {
	if x < 0 || y < 0 || y >= m.viewport.Height || m.look.hint || len(m.layout.rows) == 0 {
		return buffer.Pos{}, false
	}
	lr := m.layout.rows[min(y+m.viewport.YOffset, len(m.layout.rows)-1)]

	cellX := x - m.gutterWidth()
	if m.cfg.WrapMode == WrapNone {
		cellX += m.xOffset
	}
	return buffer.Pos{Row: lr.row, GraphemeCol: m.layout.colAt(lr, cellX)}, true
}
