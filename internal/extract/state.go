package extract

import (
	"sort"
	"strings"

	"github.com/gembid/gem-bid-extractor/internal/bids"
)

// stateNamesByLength holds the canonical state names in a fixed matching
// order: longest first, so free text naming several states resolves to the
// most specific name, never to map iteration order.
var stateNamesByLength = func() []string {
	names := make([]string, 0, len(stateCodeTable))
	for _, name := range stateCodeTable {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

// ExtractState determines the buyer's state or union territory.
//
// The primary path keys off the bid-opening timestamp: GeM documents encode
// a 2-digit state code in the month position of the "CC-YYYY HH:MM:SS"
// shaped token next to the "Bid Opening Date/Time" label. The secondary
// path accepts an explicit "State:" label whose free text names a known
// state; the canonical table name is returned. No match resolves to the
// not-found sentinel rather than a guessed default.
func ExtractState(lines []string) bids.FieldResult {
	for i, line := range lines {
		if !containsAny(line, openingDateLabels) {
			continue
		}
		for j := i; j < len(lines) && j <= i+2; j++ {
			m := stateCodeRe.FindStringSubmatch(lines[j])
			if m == nil {
				continue
			}
			if name, ok := stateCodeTable[m[1]]; ok {
				return bids.Matched(name, "opening_datetime_state_code")
			}
		}
	}

	for _, line := range lines {
		for _, rule := range stateLabelRules {
			m := rule.pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if name, ok := canonicalStateName(m[1]); ok {
				return bids.Matched(name, rule.name)
			}
		}
	}

	return bids.Missing(bids.StateNotFound)
}

// canonicalStateName matches labeled free text against the state table and
// returns the canonical name.
func canonicalStateName(freeText string) (string, bool) {
	candidate := strings.ToLower(strings.TrimSpace(freeText))
	if candidate == "" {
		return "", false
	}

	for _, name := range stateNamesByLength {
		if strings.Contains(candidate, strings.ToLower(name)) {
			return name, true
		}
	}
	return "", false
}
