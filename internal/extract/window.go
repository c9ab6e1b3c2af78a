package extract

import "strings"

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// isSectionStart reports whether a line opens the item-listing section.
func isSectionStart(line string) bool {
	if containsAny(line, sectionStartMarkers) {
		return true
	}
	return strings.Contains(line, sectionPairMarker[0]) && strings.Contains(line, sectionPairMarker[1])
}

// isSectionStop reports whether a line is a policy-section marker that ends
// any windowed scan immediately.
func isSectionStop(line string) bool {
	return containsAny(line, sectionStopMarkers)
}

// findSectionStart returns the index of the first item-section start line,
// or -1 when the document has none.
func findSectionStart(lines []string) int {
	for i, line := range lines {
		if isSectionStart(line) {
			return i
		}
	}
	return -1
}

// scanWindow visits the trimmed lines after start, up to limit lines ahead
// (or all remaining lines when limit <= 0), halting as soon as the stop
// predicate fires. The stop line itself is not visited.
func scanWindow(lines []string, start, limit int, stop func(string) bool, visit func(string)) {
	end := len(lines)
	if limit > 0 && start+1+limit < end {
		end = start + 1 + limit
	}

	for i := start + 1; i < end; i++ {
		line := strings.TrimSpace(lines[i])
		if stop != nil && stop(line) {
			return
		}
		visit(line)
	}
}
