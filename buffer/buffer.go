package buffer

import (
	"strings"

	"github.com/pyojuwon-sketc/notepad/internal/grapheme"
)

type Options struct {
	// HistoryLimit caps the undo stack. Zero means 1000; negative disables
	// history entirely.
	HistoryLimit int
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// IsEmpty reports whether the document holds no text at all.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// LineCount returns the number of logical lines (always >= 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// Version changes on every effective mutation of text, cursor or selection.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectedText returns the text covered by the active selection.
func (b *Buffer) SelectedText() (string, bool) {
	r, ok := b.Selection()
	if !ok {
		return "", false
	}
	return textForLinesRange(b.lines, r), true
}

// SetSelection selects r and moves the cursor to r.End. An empty range clears
// the selection.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if NormalizeRange(clamped).IsEmpty() {
		next = selectionState{}
	}

	if selectionStateEqual(b.sel, next) && b.cursor == clamped.End {
		return
	}
	b.sel = next
	b.cursor = clamped.End
	b.version++
}

// SelectAll selects the whole document, leaving the cursor at its end.
func (b *Buffer) SelectAll() {
	b.SetSelection(Range{Start: Pos{}, End: b.endPos()})
}

func (b *Buffer) ClearSelection() {
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

// Reset replaces the whole document with text, places the cursor at the start
// and drops the undo/redo history. Loading a file is not an undoable edit.
func (b *Buffer) Reset(text string) {
	before := b.Text()

	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.sel = selectionState{}
	b.hist = historyState{}
	b.version++
	if before != text {
		b.textVersion++
	}
}

func (b *Buffer) endPos() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, GraphemeCol: len(b.lines[last])}
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
