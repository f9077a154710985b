package editor

import "github.com/pyojuwon-sketc/notepad/internal/grapheme"

// visualLine is a document line measured in terminal cells. Tab widths are
// resolved against the start of the line, so they do not change when the
// line wraps.
type visualLine struct {
	clusters []string
	starts   []int
	widths   []int
	cells    int
}

func buildVisualLine(line string, tabWidth int) visualLine {
	clusters := grapheme.Split(line)
	vl := visualLine{
		clusters: clusters,
		starts:   make([]int, len(clusters)),
		widths:   make([]int, len(clusters)),
	}
	cell := 0
	for i, g := range clusters {
		w := grapheme.Width(g, cell, tabWidth)
		vl.starts[i] = cell
		vl.widths[i] = w
		cell += w
	}
	vl.cells = cell
	return vl
}

// colForCell returns the grapheme column drawn at cell x. Cells past the end
// map to the end of the line.
func (vl visualLine) colForCell(x int) int {
	for i := range vl.clusters {
		if x < vl.starts[i]+vl.widths[i] {
			return i
		}
	}
	return len(vl.clusters)
}

// cellForCol returns the first cell of grapheme column col.
func (vl visualLine) cellForCol(col int) int {
	switch {
	case col <= 0:
		return 0
	case col >= len(vl.clusters):
		return vl.cells
	}
	return vl.starts[col]
}
