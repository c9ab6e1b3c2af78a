package bids

import "fmt"

// ValidationResult carries the quality assessment of one extracted record.
// Warnings are advisory; Valid=false marks records whose core fields could
// not be extracted at all.
type ValidationResult struct {
	Valid    bool
	Warnings []string
}

// minItemCategoryLength is the item category length below which extraction
// is likely incomplete.
const minItemCategoryLength = 50

// Validate inspects a record and flags fields that fell back to their
// documented defaults or are missing entirely. The check is origin-based:
// a genuinely extracted value that happens to equal a default is not
// flagged. Validate never fails; it always returns a result.
func Validate(rec BidRecord) ValidationResult {
	result := ValidationResult{Valid: true}

	defaulted := []struct {
		name  string
		field FieldResult
	}{
		{"BID Number", rec.BidNumber},
		{"Buyer", rec.Buyer},
		{"BID Start Date", rec.StartDate},
		{"BID Offer Validity", rec.OfferValidity},
		{"State", rec.State},
	}
	for _, f := range defaulted {
		if f.field.Origin == OriginDefaulted {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s is using the default value %q", f.name, f.field.Value))
		}
	}

	if rec.State.Origin == OriginMissing {
		result.Warnings = append(result.Warnings, "State not found in document")
	}

	if rec.TotalQuantity.Origin == OriginMissing {
		result.Warnings = append(result.Warnings, "Total Quantity not found in document")
		result.Valid = false
	}

	if rec.ItemCategory.Origin == OriginMissing {
		result.Warnings = append(result.Warnings, "Item Category not found in document")
		result.Valid = false
	}

	if rec.EndDate.Origin == OriginMissing {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("BID End Date could not be derived: %s", rec.EndDate.Value))
		result.Valid = false
	}

	if rec.SpecificationURL.Origin == OriginMissing {
		result.Warnings = append(result.Warnings, "No technical specification link found")
	}

	if rec.ItemCategory.Origin != OriginMissing && len(rec.ItemCategory.Value) < minItemCategoryLength {
		result.Warnings = append(result.Warnings,
			"Item Category content seems too short - extraction may be incomplete")
	}

	return result
}
