package bids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullyExtractedRecord() BidRecord {
	return BidRecord{
		BidNumber:        Matched("GEM/2025/B/6168487", "labeled_bid_number"),
		Buyer:            Matched("Ministry Of Railways", "ministry_of"),
		StartDate:        Matched("03-03-2025", "labeled_dated"),
		OfferValidity:    Matched("90 (Days)", "days_parenthesized"),
		EndDate:          Matched("01-06-2025", "derived_end_date"),
		State:            Matched("Rajasthan", "opening_datetime_state_code"),
		TotalQuantity:    Matched("240", "item_section_unit_sum"),
		ItemCategory:     Matched(strings.Repeat("Switch Socket 230V 16A | ", 4), "item_section_lines"),
		SpecificationURL: Matched("https://bidplus.gem.gov.in/showboq/12345", "boq_document"),
		SourceFilename:   "GeM-Bidding-6168487.pdf",
	}
}

func TestValidateCleanRecord(t *testing.T) {
	result := Validate(fullyExtractedRecord())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
}

func TestValidateDefaultedFieldsWarn(t *testing.T) {
	rec := fullyExtractedRecord()
	rec.Buyer = Defaulted(DefaultBuyer)
	rec.StartDate = Defaulted(DefaultStartDate)

	result := Validate(rec)
	assert.True(t, result.Valid)
	assert.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "Buyer")
	assert.Contains(t, result.Warnings[1], "BID Start Date")
}

func TestValidateMatchedValueEqualToDefaultIsNotFlagged(t *testing.T) {
	// A buyer genuinely extracted from the document can equal the fallback
	// default; origin tracking keeps it unflagged.
	rec := fullyExtractedRecord()
	rec.Buyer = Matched(DefaultBuyer, "ministry_of")

	result := Validate(rec)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
}

func TestValidateMissingCoreFieldsInvalidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BidRecord)
	}{
		{"missing quantity", func(r *BidRecord) { r.TotalQuantity = Missing(QuantityNotFound) }},
		{"missing item category", func(r *BidRecord) { r.ItemCategory = Missing(NoItemsFound) }},
		{"end date error", func(r *BidRecord) { r.EndDate = Missing(EndDateInvalidValidity) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := fullyExtractedRecord()
			tt.mutate(&rec)

			result := Validate(rec)
			assert.False(t, result.Valid)
			assert.NotEmpty(t, result.Warnings)
		})
	}
}

func TestValidateMissingStateWarnsOnly(t *testing.T) {
	rec := fullyExtractedRecord()
	rec.State = Missing(StateNotFound)

	result := Validate(rec)
	assert.True(t, result.Valid)
	assert.Len(t, result.Warnings, 1)
}

func TestValidateShortItemCategoryWarnsWithoutInvalidating(t *testing.T) {
	rec := fullyExtractedRecord()
	rec.ItemCategory = Matched("Plug Top 16A", "item_section_lines")

	result := Validate(rec)
	assert.True(t, result.Valid)
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "too short")
}

func TestValidateMissingURLWarnsOnly(t *testing.T) {
	rec := fullyExtractedRecord()
	rec.SpecificationURL = Missing(NoURLFound)

	result := Validate(rec)
	assert.True(t, result.Valid)
	assert.Len(t, result.Warnings, 1)
}
