package editor

import "github.com/pyojuwon-sketc/notepad/buffer"

// layoutRow is one visual row of the editor.
type layoutRow struct {
	row   int
	seg   wrappedSegment
	first bool
	last  bool
}

type layout struct {
	lines []visualLine
	rows  []layoutRow
	start []int // first visual row of each document line
}

func (m *Model) buildLayout() layout {
	n := m.buf.LineCount()
	mode := m.cfg.WrapMode
	if m.look.hint {
		mode = WrapNone
	}
	width := m.contentWidth()

	l := layout{lines: make([]visualLine, n), start: make([]int, n)}
	for row := 0; row < n; row++ {
		vl := buildVisualLine(m.buf.Line(row), m.cfg.TabWidth)
		l.lines[row] = vl
		l.start[row] = len(l.rows)
		segs := wrapSegments(vl, mode, width)
		for i, seg := range segs {
			l.rows = append(l.rows, layoutRow{row: row, seg: seg, first: i == 0, last: i == len(segs)-1})
		}
	}
	return l
}

// visualRow returns the visual row that shows pos. A column on a wrap
// boundary belongs to the lower row.
func (l layout) visualRow(pos buffer.Pos) int {
	if pos.Row < 0 || pos.Row >= len(l.start) {
		return 0
	}
	r := l.start[pos.Row]
	for r+1 < len(l.rows) && l.rows[r+1].row == pos.Row && l.rows[r+1].seg.StartCol <= pos.GraphemeCol {
		r++
	}
	return r
}

// colAt maps cell x, relative to the start of lr, to a grapheme column on
// lr. Past the end of a wrapped row the column stays on that row.
func (l layout) colAt(lr layoutRow, x int) int {
	if x <= 0 {
		return lr.seg.StartCol
	}
	col := l.lines[lr.row].colForCell(lr.seg.startCell + x)
	if col >= lr.seg.EndCol && !lr.last {
		return max(lr.seg.EndCol-1, lr.seg.StartCol)
	}
	return min(col, lr.seg.EndCol)
}

// cellInRow returns the cell offset of pos from the start of its visual row.
func (l layout) cellInRow(pos buffer.Pos) int {
	if pos.Row < 0 || pos.Row >= len(l.lines) {
		return 0
	}
	lr := l.rows[l.visualRow(pos)]
	return l.lines[pos.Row].cellForCol(pos.GraphemeCol) - lr.seg.startCell
}
