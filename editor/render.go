package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pyojuwon-sketc/notepad/buffer"
	"github.com/pyojuwon-sketc/notepad/internal/grapheme"
)

type cellKind uint8

const (
	cellText cellKind = iota
	cellSelection
	cellCursor
)

// run is a stretch of consecutive graphemes rendered with the same style.
type run struct {
	kind cellKind
	text strings.Builder
}

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}
	m.layout = m.buildLayout()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(m.buf.LineCount())
	}
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	out := make([]string, 0, len(m.layout.rows))
	for _, lr := range m.layout.rows {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && lr.row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			num := strings.Repeat(" ", digits)
			if lr.first {
				num = fmt.Sprintf("%*d", digits, lr.row+1)
			}
			sb.WriteString(numStyle.Render(num))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		if m.look.hint {
			sb.WriteString(m.renderHintLine(m.buf.Line(lr.row)))
		} else {
			sb.WriteString(m.renderRow(lr, cursor, sel, selOK))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderHintLine(line string) string {
	s := m.cfg.Style.Hint.Render(expandTabs(line, m.cfg.TabWidth))
	if w := m.contentWidth(); w > 0 && lipgloss.Width(s) < w {
		return lipgloss.PlaceHorizontal(w, lipgloss.Center, s)
	}
	return s
}

// renderRow draws the segment of a line shown on one visual row. Without
// wrapping the row is clipped to the horizontal scroll window.
func (m *Model) renderRow(lr layoutRow, cursor buffer.Pos, sel buffer.Range, selOK bool) string {
	vl := m.layout.lines[lr.row]
	cursorCol := -1
	if m.focused && lr.row == cursor.Row {
		cursorCol = cursor.GraphemeCol
	}
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, lr.row, len(vl.clusters))

	left := lr.seg.startCell
	if m.cfg.WrapMode == WrapNone {
		left += m.xOffset
	}
	right := int(^uint(0) >> 1)
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	var runs []*run
	push := func(kind cellKind, s string) {
		if n := len(runs); n > 0 && runs[n-1].kind == kind {
			runs[n-1].text.WriteString(s)
			return
		}
		r := &run{kind: kind}
		r.text.WriteString(s)
		runs = append(runs, r)
	}

	for i := lr.seg.StartCol; i < lr.seg.EndCol; i++ {
		start, w := vl.starts[i], vl.widths[i]
		if start < left || start+w > right {
			continue
		}
		g := vl.clusters[i]
		if g == "\t" {
			g = strings.Repeat(" ", w)
		}

		kind := cellText
		switch {
		case i == cursorCol:
			kind = cellCursor
		case hasSel && i >= selStart && i < selEnd:
			kind = cellSelection
		}
		push(kind, g)
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if lr.last && cursorCol == len(vl.clusters) && vl.cells >= left && vl.cells < right {
		push(cellCursor, " ")
	}

	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(m.styleFor(r.kind).Render(r.text.String()))
	}
	return sb.String()
}

func (m *Model) styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case cellCursor:
		return m.cfg.Style.Cursor
	case cellSelection:
		return m.cfg.Style.Selection
	default:
		return m.cfg.Style.Text
	}
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.GraphemeCol
	}
	if row == sel.End.Row {
		end = sel.End.GraphemeCol
	}
	return start, end, start < end
}

func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func (m *Model) contentWidth() int {
	return m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
}

func gutterDigits(lines int) int {
	return max(len(fmt.Sprint(lines)), 2)
}

func expandTabs(s string, tabWidth int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	cell := 0
	for _, g := range grapheme.Split(s) {
		w := grapheme.Width(g, cell, tabWidth)
		if g == "\t" {
			g = strings.Repeat(" ", w)
		}
		sb.WriteString(g)
		cell += w
	}
	return sb.String()
}
