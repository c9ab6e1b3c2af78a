package bids

import "time"

// Cohort is a batch of bid records partitioned by expiry status.
type Cohort struct {
	Active  []BidRecord
	Expired []BidRecord
}

// Categorize partitions records into active and expired cohorts by comparing
// each record's end date against now, date-only and inclusive of today.
// Records whose end date is a sentinel or cannot be parsed land in Expired;
// malformed input never causes a failure. The result is a total partition of
// the input batch.
func Categorize(records []BidRecord, now time.Time) Cohort {
	cohort := Cohort{
		Active:  make([]BidRecord, 0, len(records)),
		Expired: make([]BidRecord, 0, len(records)),
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, rec := range records {
		if isActive(rec, today) {
			cohort.Active = append(cohort.Active, rec)
		} else {
			cohort.Expired = append(cohort.Expired, rec)
		}
	}

	return cohort
}

func isActive(rec BidRecord, today time.Time) bool {
	if rec.EndDate.Origin != OriginMatched {
		return false
	}

	end, err := time.ParseInLocation(DateLayout, rec.EndDate.Value, today.Location())
	if err != nil {
		return false
	}

	return !end.Before(today)
}
