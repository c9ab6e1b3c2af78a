package bids

import (
	"fmt"
	"regexp"
	"time"
)

// Origin describes how a field value was produced.
type Origin int

const (
	// OriginMatched means a recognition rule matched real document content.
	OriginMatched Origin = iota
	// OriginDefaulted means no rule matched and the documented fallback
	// default was substituted.
	OriginDefaulted
	// OriginMissing means no rule matched and the field carries an explicit
	// "absent" sentinel rather than a plausible default.
	OriginMissing
)

// String returns a human-readable name for the origin.
func (o Origin) String() string {
	switch o {
	case OriginMatched:
		return "matched"
	case OriginDefaulted:
		return "defaulted"
	case OriginMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// FieldResult is the outcome of one field extraction. Value is always
// non-empty: extractors resolve failure to a sentinel, never to "".
// Rule names the recognition rule that produced a matched value and is
// empty for defaults and sentinels.
type FieldResult struct {
	Value  string
	Origin Origin
	Rule   string
}

// Matched builds a FieldResult for a successful rule match.
func Matched(value, rule string) FieldResult {
	return FieldResult{Value: value, Origin: OriginMatched, Rule: rule}
}

// Defaulted builds a FieldResult carrying a fallback default value.
func Defaulted(value string) FieldResult {
	return FieldResult{Value: value, Origin: OriginDefaulted}
}

// Missing builds a FieldResult carrying an explicit absent sentinel.
func Missing(sentinel string) FieldResult {
	return FieldResult{Value: sentinel, Origin: OriginMissing}
}

// Documented defaults and sentinels. The default values are substituted when
// every recognition rule fails; the Not Found style sentinels mark fields
// where a default would be misleading.
const (
	DefaultBidNumber = "GEM/2025/B/XXXXXXX"
	DefaultBuyer     = "Ministry of Defence"
	DefaultStartDate = "17-02-2025"
	DefaultValidity  = "120 (Days)"

	StateNotFound    = "Not Found"
	QuantityNotFound = "Not Found"
	NoItemsFound     = "No items found - may be policy document or scanned image"
	NoURLFound       = "No URL found"

	EndDateNotFound        = "Not Found"
	EndDateInvalidStart    = "Invalid Start Date"
	EndDateInvalidValidity = "Invalid Validity"
	EndDateCalcError       = "Calculation Error"
)

// DateLayout is the day-month-year layout used by every date field.
const DateLayout = "02-01-2006"

// BidRecord is the canonical extraction output for one tender document.
// Every field is populated; absence is represented by sentinel values.
type BidRecord struct {
	BidNumber        FieldResult
	Buyer            FieldResult
	StartDate        FieldResult
	OfferValidity    FieldResult
	EndDate          FieldResult
	State            FieldResult
	TotalQuantity    FieldResult
	ItemCategory     FieldResult
	SpecificationURL FieldResult
	SourceFilename   string
}

var validityDaysRe = regexp.MustCompile(`^(\d+)`)

// DeriveEndDate computes the bid end date from the start date and the offer
// validity period using calendar day arithmetic. Failures resolve to one of
// the end-date error sentinels, never to an error.
func DeriveEndDate(start, validity FieldResult) FieldResult {
	if start.Value == "" || validity.Value == "" {
		return Missing(EndDateNotFound)
	}

	startDate, err := time.Parse(DateLayout, start.Value)
	if err != nil {
		return Missing(EndDateInvalidStart)
	}

	m := validityDaysRe.FindStringSubmatch(validity.Value)
	if m == nil {
		return Missing(EndDateInvalidValidity)
	}
	var days int
	if _, err := fmt.Sscanf(m[1], "%d", &days); err != nil || days <= 0 {
		return Missing(EndDateInvalidValidity)
	}

	end := startDate.AddDate(0, 0, days)
	if end.Year() < 1 || end.Year() > 9999 {
		return Missing(EndDateCalcError)
	}

	return FieldResult{Value: end.Format(DateLayout), Origin: OriginMatched, Rule: "derived_end_date"}
}
