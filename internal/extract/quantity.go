package extract

import (
	"strconv"

	"github.com/gembid/gem-bid-extractor/internal/bids"
)

// ExtractTotalQuantity sums the per-item quantities listed in the item
// section: every "<N> <unit>" token on a line contributes, with unit words
// like Nos, Units, Pieces, Sets, Meters, Mtr, Rolls and Boxes, and each N
// accepted only within [1, 999999]. The scan runs at most 50 lines past the
// section start and halts at the first policy-section marker. A zero sum
// falls back to generic "Total Quantity"/"Qty" label patterns over the
// whole text.
func ExtractTotalQuantity(text string, lines []string) bids.FieldResult {
	start := findSectionStart(lines)
	if start >= 0 {
		total := 0
		scanWindow(lines, start, quantityWindowLines, isSectionStop, func(line string) {
			for _, m := range unitQuantityRe.FindAllStringSubmatch(line, -1) {
				qty, err := strconv.Atoi(m[1])
				if err != nil {
					continue
				}
				if qty >= minItemQuantity && qty <= maxItemQuantity {
					total += qty
				}
			}
		})
		if total > 0 {
			return bids.Matched(strconv.Itoa(total), "item_section_unit_sum")
		}
	}

	for _, rule := range quantityLabelRules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		qty, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if qty >= minItemQuantity && qty <= maxItemQuantity {
			return bids.Matched(strconv.Itoa(qty), rule.name)
		}
	}

	return bids.Missing(bids.QuantityNotFound)
}
