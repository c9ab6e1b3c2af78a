package extract

import (
	"fmt"
	"strings"

	"github.com/gembid/gem-bid-extractor/internal/bids"
)

// Field extractors are pure functions over the document text and its line
// view. Each applies an ordered chain of named recognition rules and
// resolves rule exhaustion to the documented default or sentinel; none of
// them ever fails on arbitrary input, including empty text.

// ExtractBidNumber finds the bid reference number, preferring matches
// adjacent to a "Bid Number" label over bare pattern matches.
func ExtractBidNumber(text string) bids.FieldResult {
	for _, rule := range bidNumberRules {
		if m := rule.pattern.FindStringSubmatch(text); m != nil {
			return bids.Matched(strings.ToUpper(m[1]), rule.name)
		}
	}
	return bids.Defaulted(bids.DefaultBidNumber)
}

// ExtractBuyer finds the buying ministry or department. Template matches
// are cleaned of trailing boilerplate labels and accepted only when more
// than 5 characters survive; otherwise the known-ministry verbatim scan and
// finally the domain default apply.
func ExtractBuyer(text string) bids.FieldResult {
	for _, rule := range buyerRules {
		m := rule.pattern.FindString(text)
		if m == "" {
			continue
		}
		cleaned := cleanBuyer(m)
		if len(cleaned) > 5 {
			return bids.Matched(cleaned, rule.name)
		}
	}

	for _, ministry := range knownMinistries {
		if strings.Contains(text, ministry) {
			return bids.Matched(ministry, "known_ministry")
		}
	}

	return bids.Defaulted(bids.DefaultBuyer)
}

// cleanBuyer cuts a raw buyer match at the first boilerplate label the
// noisy layout may have appended and collapses interior whitespace.
func cleanBuyer(raw string) string {
	for _, token := range buyerBoilerplate {
		if idx := strings.Index(raw, token); idx >= 0 {
			raw = raw[:idx]
		}
	}
	return strings.Join(strings.Fields(raw), " ")
}

// ExtractStartDate finds the bid start date. The labeled path looks for a
// "Dated" (or Hindi equivalent) line and takes a DD-MM-YYYY token from that
// line or the two following it; the fallback scans the document header zone
// for any date token.
func ExtractStartDate(lines []string) bids.FieldResult {
	for i, line := range lines {
		if !containsAny(line, datedLabels) {
			continue
		}
		for j := i; j < len(lines) && j <= i+2; j++ {
			if m := dateTokenRe.FindStringSubmatch(lines[j]); m != nil {
				return bids.Matched(m[1], "labeled_dated")
			}
		}
	}

	zone := len(lines)
	if zone > headerZoneLines {
		zone = headerZoneLines
	}
	for i := 0; i < zone; i++ {
		if m := dateTokenRe.FindStringSubmatch(lines[i]); m != nil {
			return bids.Matched(m[1], "header_zone_date")
		}
	}

	return bids.Defaulted(bids.DefaultStartDate)
}

// ExtractValidity finds the bid offer validity period, formatted as
// "N (Days)".
func ExtractValidity(text string) bids.FieldResult {
	for _, rule := range validityRules {
		if m := rule.pattern.FindStringSubmatch(text); m != nil {
			return bids.Matched(fmt.Sprintf("%s (Days)", m[1]), rule.name)
		}
	}
	return bids.Defaulted(bids.DefaultValidity)
}
