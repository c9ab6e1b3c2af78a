package bids

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordWithEndDate(end FieldResult) BidRecord {
	return BidRecord{
		BidNumber: Matched("GEM/2025/B/1234567", "labeled_bid_number"),
		EndDate:   end,
	}
}

func TestCategorize(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		end         FieldResult
		wantActive  bool
	}{
		{"end date in the future", Matched("20-06-2025", "derived_end_date"), true},
		{"end date today is still active", Matched("15-06-2025", "derived_end_date"), true},
		{"end date in the past", Matched("14-06-2025", "derived_end_date"), false},
		{"not-found sentinel", Missing(EndDateNotFound), false},
		{"invalid validity sentinel", Missing(EndDateInvalidValidity), false},
		{"malformed date string", Matched("99-99-9999", "derived_end_date"), false},
		{"garbage date string", Matched("soon", "derived_end_date"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cohort := Categorize([]BidRecord{recordWithEndDate(tt.end)}, now)
			if tt.wantActive {
				assert.Len(t, cohort.Active, 1)
				assert.Empty(t, cohort.Expired)
			} else {
				assert.Empty(t, cohort.Active)
				assert.Len(t, cohort.Expired, 1)
			}
		})
	}
}

func TestCategorizeIsTotalPartition(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	batch := []BidRecord{
		recordWithEndDate(Matched("16-06-2025", "derived_end_date")),
		recordWithEndDate(Matched("14-06-2025", "derived_end_date")),
		recordWithEndDate(Missing(EndDateNotFound)),
		recordWithEndDate(Matched("15-06-2025", "derived_end_date")),
		recordWithEndDate(Missing(EndDateCalcError)),
	}

	cohort := Categorize(batch, now)
	require.Equal(t, len(batch), len(cohort.Active)+len(cohort.Expired))
	assert.Len(t, cohort.Active, 2)
	assert.Len(t, cohort.Expired, 3)
}

func TestCategorizeAllSentinelBatch(t *testing.T) {
	now := time.Now()

	batch := []BidRecord{
		recordWithEndDate(Missing(EndDateNotFound)),
		recordWithEndDate(Missing(EndDateInvalidStart)),
		recordWithEndDate(Missing(EndDateInvalidValidity)),
		recordWithEndDate(Missing(EndDateCalcError)),
	}

	cohort := Categorize(batch, now)
	assert.Empty(t, cohort.Active)
	assert.Len(t, cohort.Expired, len(batch))
}

func TestCategorizeEmptyBatch(t *testing.T) {
	cohort := Categorize(nil, time.Now())
	assert.Empty(t, cohort.Active)
	assert.Empty(t, cohort.Expired)
}
