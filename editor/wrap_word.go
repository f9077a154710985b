package editor

// findWordWrapBreak returns the unit index just after the last whitespace run
// in [start, overflow), so that trailing spaces stay on the upper row.
func findWordWrapBreak(units []wrapUnit, start, overflow int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if overflow > len(units) {
		overflow = len(units)
	}
	if start >= overflow {
		return 0, false
	}

	lastBreak := -1
	i := start
	for i < overflow {
		if !units[i].isWhitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && units[j].isWhitespace {
			j++
		}
		lastBreak = j
		i = j
	}

	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

// adjustBreakForLeadingPunctuation moves a forced break back so the next row
// does not start with punctuation, as long as the row keeps one unit.
func adjustBreakForLeadingPunctuation(units []wrapUnit, start, overflow int) int {
	end := overflow
	for end > start+1 && end < len(units) && units[end].isPunct {
		end--
	}
	return end
}
