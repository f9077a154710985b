package buffer

import "testing"

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, GraphemeCol: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}

	b.SetCursor(Pos{Row: 1, GraphemeCol: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SetCursor_ClearsSelection(t *testing.T) {
	b := New("abc", Options{})
	b.SelectAll()

	b.SetCursor(b.Cursor())
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_SetSelection_NormalizesClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(Range{
		Start: Pos{Row: 1, GraphemeCol: 99},
		End:   Pos{Row: 0, GraphemeCol: -1},
	})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := Range{Start: Pos{Row: 0, GraphemeCol: 0}, End: Pos{Row: 1, GraphemeCol: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if got := b.Cursor(); got != (Pos{Row: 0, GraphemeCol: 0}) {
		t.Fatalf("cursor=%v, want selection end (0,0)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	// Setting the same effective selection should not bump the version.
	b.SetSelection(Range{Start: Pos{Row: 1, GraphemeCol: 2}, End: Pos{Row: 0, GraphemeCol: 0}})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	if b.Version() != 2 {
		t.Fatalf("expected version 2, got %d", b.Version())
	}

	// Clearing again should be a no-op.
	b.ClearSelection()
	if b.Version() != 2 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SelectAll_CoversDocument(t *testing.T) {
	b := New("one\ntwo", Options{})
	b.SelectAll()

	got, ok := b.SelectedText()
	if !ok {
		t.Fatalf("expected selection after SelectAll")
	}
	if want := "one\ntwo"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_SelectAll_EmptyDocumentHasNoSelection(t *testing.T) {
	b := New("", Options{})
	b.SelectAll()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected no selection on empty document")
	}
	if b.Version() != 0 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SelectedText_Unicode(t *testing.T) {
	b := New("가나다\n라마", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 1, GraphemeCol: 1}})

	got, ok := b.SelectedText()
	if !ok {
		t.Fatalf("expected selection")
	}
	if want := "나다\n라"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}
}

func TestBuffer_Reset_ReplacesTextAndDropsHistory(t *testing.T) {
	b := New("", Options{})
	b.InsertText("draft")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true before reset")
	}
	tv := b.TextVersion()

	b.Reset("loaded\ntext")
	if got, want := b.Text(), "loaded\ntext"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}
	if b.CanUndo() || b.CanRedo() {
		t.Fatalf("expected empty history after reset")
	}
	if got := b.TextVersion(); got != tv+1 {
		t.Fatalf("text version=%d, want %d", got, tv+1)
	}
}

func TestBuffer_Reset_SameTextKeepsTextVersion(t *testing.T) {
	b := New("same", Options{})
	b.Reset("same")
	if got := b.TextVersion(); got != 0 {
		t.Fatalf("text version=%d, want 0", got)
	}
}

func TestBuffer_IsEmpty(t *testing.T) {
	if !New("", Options{}).IsEmpty() {
		t.Fatalf("expected empty buffer")
	}
	if New("\n", Options{}).IsEmpty() {
		t.Fatalf("a lone newline is content")
	}
	if New(" ", Options{}).IsEmpty() {
		t.Fatalf("whitespace is content")
	}
}

func TestBuffer_LineAccessors(t *testing.T) {
	b := New("ab\n\ncd", Options{})
	if got := b.LineCount(); got != 3 {
		t.Fatalf("line count=%d, want 3", got)
	}
	if got := b.Line(2); got != "cd" {
		t.Fatalf("line 2=%q, want %q", got, "cd")
	}
	if got := b.Line(7); got != "" {
		t.Fatalf("out of range line=%q, want empty", got)
	}
}

func TestBuffer_HistoryDisabled(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	if b.CanUndo() {
		t.Fatalf("expected no undo history when disabled")
	}
}

func TestClampRange_KeepsPositionsInsideDocument(t *testing.T) {
	lineLen := func(row int) int { return []int{3, 0, 5}[row] }

	cases := []struct {
		name string
		in   Range
		want Range
	}{
		{
			name: "inside",
			in:   Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 2, GraphemeCol: 4}},
			want: Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 2, GraphemeCol: 4}},
		},
		{
			name: "past end of short line",
			in:   Range{Start: Pos{Row: 1, GraphemeCol: 9}, End: Pos{Row: 0, GraphemeCol: 9}},
			want: Range{Start: Pos{Row: 1, GraphemeCol: 0}, End: Pos{Row: 0, GraphemeCol: 3}},
		},
		{
			name: "negative and past last row",
			in:   Range{Start: Pos{Row: -2, GraphemeCol: -1}, End: Pos{Row: 8, GraphemeCol: 1}},
			want: Range{Start: Pos{Row: 0, GraphemeCol: 0}, End: Pos{Row: 2, GraphemeCol: 1}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampRange(tc.in, 3, lineLen); got != tc.want {
				t.Fatalf("clamped=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestNormalizeRange_BackwardSelection(t *testing.T) {
	back := Range{Start: Pos{Row: 2, GraphemeCol: 0}, End: Pos{Row: 1, GraphemeCol: 7}}
	got := NormalizeRange(back)
	if want := (Range{Start: Pos{Row: 1, GraphemeCol: 7}, End: Pos{Row: 2, GraphemeCol: 0}}); got != want {
		t.Fatalf("normalized=%v, want %v", got, want)
	}
	if ComparePos(got.Start, got.End) >= 0 {
		t.Fatalf("expected start before end: %v", got)
	}
	if !NormalizeRange(Range{Start: Pos{Row: 1}, End: Pos{Row: 1}}).IsEmpty() {
		t.Fatalf("expected collapsed range to stay empty")
	}
}
