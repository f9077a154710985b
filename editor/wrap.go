package editor

import "github.com/pyojuwon-sketc/notepad/internal/grapheme"

// wrappedSegment is the part of a line shown on one visual row:
// grapheme columns [StartCol, EndCol) covering cells [startCell, endCell).
type wrappedSegment struct {
	StartCol int
	EndCol   int
	Cells    int

	startCell int
	endCell   int
}

type wrapUnit struct {
	startCell int
	endCell   int
	width     int

	isWhitespace bool
	isPunct      bool
}

// wrapSegments splits vl into rows of at most width cells. A single cluster
// wider than width still gets a row of its own. A line that fills its last
// row exactly gets a trailing empty row so the cursor at its end stays
// visible.
func wrapSegments(vl visualLine, mode WrapMode, width int) []wrappedSegment {
	n := len(vl.clusters)
	if width <= 0 || mode == WrapNone || n == 0 {
		return []wrappedSegment{{EndCol: n, Cells: vl.cells, endCell: vl.cells}}
	}

	units := wrapUnits(vl)
	segments := make([]wrappedSegment, 0, 1+vl.cells/width)
	for start := 0; start < len(units); {
		used := 0
		overflow := start
		for overflow < len(units) {
			w := max(units[overflow].width, 1)
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < len(units) {
			if br, ok := findWordWrapBreak(units, start, overflow); ok {
				end = br
			} else {
				end = adjustBreakForLeadingPunctuation(units, start, overflow)
			}
		}
		if end <= start {
			end = min(start+1, len(units))
		}

		segments = append(segments, segmentFromUnitRange(units, start, end))
		start = end
	}

	if last := segments[len(segments)-1]; last.Cells >= width {
		segments = append(segments, wrappedSegment{
			StartCol:  n,
			EndCol:    n,
			startCell: vl.cells,
			endCell:   vl.cells,
		})
	}
	return segments
}

func wrapUnits(vl visualLine) []wrapUnit {
	units := make([]wrapUnit, len(vl.clusters))
	for i, g := range vl.clusters {
		units[i] = wrapUnit{
			startCell:    vl.starts[i],
			endCell:      vl.starts[i] + vl.widths[i],
			width:        vl.widths[i],
			isWhitespace: grapheme.IsSpace(g),
			isPunct:      grapheme.IsPunct(g),
		}
	}
	return units
}

// Units map one-to-one onto grapheme columns.
func segmentFromUnitRange(units []wrapUnit, start, end int) wrappedSegment {
	startCell := units[start].startCell
	endCell := max(units[end-1].endCell, startCell)
	return wrappedSegment{
		StartCol:  start,
		EndCol:    end,
		Cells:     endCell - startCell,
		startCell: startCell,
		endCell:   endCell,
	}
}
