package extract

import (
	"strings"

	"github.com/gembid/gem-bid-extractor/internal/bids"
)

// ExtractItemCategory collects the item description snippets listed in the
// item section. Lines are kept only when, after trimming leading numbering
// and symbols, their length falls strictly between 10 and 300 characters,
// they pass the boilerplate noise filters, and they carry at least one
// domain indicator substring. When the section yields nothing, fixed
// electrical-component patterns are tried over the whole text. The result
// is deduplicated, capped at 20 entries and pipe-joined.
func ExtractItemCategory(text string, lines []string) bids.FieldResult {
	var items []string
	ruleName := "item_section_lines"

	if start := findSectionStart(lines); start >= 0 {
		scanWindow(lines, start, 0, isSectionStop, func(line string) {
			if cleaned, ok := cleanItemLine(line); ok {
				items = append(items, cleaned)
			}
		})
	}

	if len(items) == 0 {
		ruleName = "item_fallback_patterns"
		for _, rule := range itemFallbackRules {
			items = append(items, rule.pattern.FindAllString(text, -1)...)
		}
	}

	items = dedupeItems(items)
	if len(items) > maxItemCategoryEntries {
		items = items[:maxItemCategoryEntries]
	}

	if len(items) == 0 {
		return bids.Missing(bids.NoItemsFound)
	}

	return bids.Matched(strings.Join(items, " | "), ruleName)
}

// cleanItemLine filters and normalizes one candidate item line.
func cleanItemLine(line string) (string, bool) {
	if line == "" || len(line) <= 5 {
		return "", false
	}

	if pageNumberLineRe.MatchString(line) {
		return "", false
	}
	if containsAny(line, itemNoiseContains) {
		return "", false
	}
	for _, prefix := range itemNoisePrefixes {
		if strings.HasPrefix(line, prefix) {
			return "", false
		}
	}

	cleaned := leadingNumberRe.ReplaceAllString(line, "")
	cleaned = leadingSymbolsRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if len(cleaned) <= minItemLineLength || len(cleaned) >= maxItemLineLength {
		return "", false
	}

	if !hasItemIndicator(cleaned) {
		return "", false
	}

	return cleaned, true
}

// hasItemIndicator reports whether the line names anything that looks like
// procurement line-item content.
func hasItemIndicator(line string) bool {
	lower := strings.ToLower(line)
	for _, indicator := range itemIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// dedupeItems removes duplicates preserving first-seen order.
func dedupeItems(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
