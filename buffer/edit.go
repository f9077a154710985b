package buffer

import (
	"strings"

	"github.com/pyojuwon-sketc/notepad/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col > 0:
		b.edit(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "")
	case row > 0:
		// Join with previous line (delete the newline).
		prev := Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
		b.edit(Range{Start: prev, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col < len(b.lines[row]):
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "")
	case row < len(b.lines)-1:
		// Join with next line (delete the newline).
		b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(r, "")
}

// edit replaces r with text as one undoable step. No-op edits leave version
// and history untouched.
func (b *Buffer) edit(r Range, text string) {
	prev := b.snapshot()

	nextCursor, changed := b.replaceRange(r, text)
	if !changed {
		return
	}

	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}
	if textForLinesRange(b.lines, r) == text {
		return b.cursor, false
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol

	prefix := append([]string(nil), b.lines[startRow][:startCol]...)
	suffix := append([]string(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	ins := make([][]string, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, grapheme.Split(p))
	}

	repl := make([][]string, 0, len(ins))
	if len(ins) == 1 {
		line := make([]string, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, GraphemeCol: len(prefix) + len(ins[0])}
	} else {
		repl = append(repl, append(prefix, ins[0]...))
		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, ins[i])
		}
		lastPart := ins[len(ins)-1]
		repl = append(repl, append(append([]string(nil), lastPart...), suffix...))
		nextCursor = Pos{Row: startRow + len(ins) - 1, GraphemeCol: len(lastPart)}
	}

	out := make([][]string, 0, startRow+len(repl)+len(b.lines)-endRow-1)
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)

	b.lines = out
	return nextCursor, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
