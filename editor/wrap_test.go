package editor

import "testing"

func segBounds(segs []wrappedSegment) [][3]int {
	out := make([][3]int, len(segs))
	for i, s := range segs {
		out[i] = [3]int{s.StartCol, s.EndCol, s.Cells}
	}
	return out
}

func equalBounds(a, b [][3]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWrapSegments_Grapheme_CoversLineAndRespectsWidth(t *testing.T) {
	vl := buildVisualLine("abcdef", 4)
	got := segBounds(wrapSegments(vl, WrapGrapheme, 4))
	want := [][3]int{{0, 4, 4}, {4, 6, 2}}
	if !equalBounds(got, want) {
		t.Fatalf("segments: got %v, want %v", got, want)
	}
}

func TestWrapSegments_Word_WhitespaceAndLongTokenFallback(t *testing.T) {
	word := buildVisualLine("hello world", 4)
	if got, want := segBounds(wrapSegments(word, WrapWord, 6)), [][3]int{{0, 6, 6}, {6, 11, 5}}; !equalBounds(got, want) {
		t.Fatalf("word segments: got %v, want %v", got, want)
	}

	longToken := buildVisualLine("abcdefghij", 4)
	if got, want := segBounds(wrapSegments(longToken, WrapWord, 4)), [][3]int{{0, 4, 4}, {4, 8, 4}, {8, 10, 2}}; !equalBounds(got, want) {
		t.Fatalf("fallback segments: got %v, want %v", got, want)
	}
}

func TestWrapSegments_Word_NextRowDoesNotStartWithPunctuation(t *testing.T) {
	vl := buildVisualLine("abc,def", 4)
	segs := wrapSegments(vl, WrapWord, 3)
	if len(segs) < 2 {
		t.Fatalf("segment count: got %d, want >=2", len(segs))
	}
	for i := 1; i < len(segs); i++ {
		if vl.clusters[segs[i].StartCol] == "," {
			t.Fatalf("segment %d starts with punctuation at col %d", i, segs[i].StartCol)
		}
	}
}

func TestWrapSegments_WideClustersNeverSplit(t *testing.T) {
	words := buildVisualLine("한글 메모", 4)
	if got, want := segBounds(wrapSegments(words, WrapWord, 5)), [][3]int{{0, 3, 5}, {3, 5, 4}}; !equalBounds(got, want) {
		t.Fatalf("word segments: got %v, want %v", got, want)
	}

	// The wide syllable does not fit next to "ab" and moves down whole.
	mixed := buildVisualLine("ab한", 4)
	if got, want := segBounds(wrapSegments(mixed, WrapGrapheme, 3)), [][3]int{{0, 2, 2}, {2, 3, 2}}; !equalBounds(got, want) {
		t.Fatalf("grapheme segments: got %v, want %v", got, want)
	}
}

func TestWrapSegments_EmptyAndSpaceOnlyStable(t *testing.T) {
	empty := buildVisualLine("", 4)
	if got, want := segBounds(wrapSegments(empty, WrapWord, 4)), [][3]int{{0, 0, 0}}; !equalBounds(got, want) {
		t.Fatalf("empty segments: got %v, want %v", got, want)
	}

	spaces := buildVisualLine("     ", 4)
	segs := wrapSegments(spaces, WrapWord, 2)
	if got, want := segs[len(segs)-1].endCell, spaces.cells; got != want {
		t.Fatalf("space final endCell: got %d, want %d", got, want)
	}
	for i, seg := range segs {
		if seg.Cells > 2 {
			t.Fatalf("space segment %d exceeds width: got %d, max %d", i, seg.Cells, 2)
		}
	}
}

func TestWrapSegments_FullLastRowGetsEmptyRowForCursor(t *testing.T) {
	vl := buildVisualLine("abcd", 4)
	if got, want := segBounds(wrapSegments(vl, WrapWord, 4)), [][3]int{{0, 4, 4}, {4, 4, 0}}; !equalBounds(got, want) {
		t.Fatalf("segments: got %v, want %v", got, want)
	}
}

func TestWrapSegments_NoneOrZeroWidthKeepsOneRow(t *testing.T) {
	vl := buildVisualLine("hello world", 4)
	for _, tc := range []struct {
		mode  WrapMode
		width int
	}{
		{WrapNone, 4},
		{WrapWord, 0},
	} {
		if got, want := segBounds(wrapSegments(vl, tc.mode, tc.width)), [][3]int{{0, 11, 11}}; !equalBounds(got, want) {
			t.Fatalf("mode %d width %d: got %v, want %v", tc.mode, tc.width, got, want)
		}
	}
}

func TestWrapSegments_TabsKeepLineRelativeStops(t *testing.T) {
	vl := buildVisualLine("ab\tcd", 4)
	segs := wrapSegments(vl, WrapGrapheme, 3)
	// The tab starts at cell 2 and runs to the next stop at cell 4.
	if got, want := segBounds(segs), [][3]int{{0, 2, 2}, {2, 4, 3}, {4, 5, 1}}; !equalBounds(got, want) {
		t.Fatalf("segments: got %v, want %v", got, want)
	}
}
