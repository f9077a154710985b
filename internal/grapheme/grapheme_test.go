package grapheme

import "testing"

const family = "\U0001F468\u200D\U0001F469\u200D\U0001F467"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if got := Join(got); got != text {
		t.Fatalf("join=%q, want %q", got, text)
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split(""); got != nil {
		t.Fatalf("split of empty=%v, want nil", got)
	}
	if got := Count(""); got != 0 {
		t.Fatalf("count of empty=%d, want 0", got)
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if IsSpace("") {
		t.Fatalf("empty cluster should not be space")
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		cluster  string
		col, tab int
		want     int
	}{
		{cluster: "a", want: 1},
		{cluster: "가", want: 2},
		{cluster: "é", want: 1},
		{cluster: "\t", col: 0, tab: 4, want: 4},
		{cluster: "\t", col: 3, tab: 4, want: 1},
		{cluster: "\t", col: 2, tab: 0, want: 2},
	}
	for _, tc := range cases {
		if got := Width(tc.cluster, tc.col, tc.tab); got != tc.want {
			t.Fatalf("Width(%q, %d, %d)=%d, want %d", tc.cluster, tc.col, tc.tab, got, tc.want)
		}
	}
}

func TestIsPunct(t *testing.T) {
	for _, g := range []string{",", ".", "!", "。", "」"} {
		if !IsPunct(g) {
			t.Fatalf("%q should be punctuation", g)
		}
	}
	for _, g := range []string{"", "a", " ", "가"} {
		if IsPunct(g) {
			t.Fatalf("%q should not be punctuation", g)
		}
	}
}
