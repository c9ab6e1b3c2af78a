package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gembid/gem-bid-extractor/internal/bids"
)

func TestFilename(t *testing.T) {
	now := time.Date(2025, 6, 17, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "GeM_Bidding_Data_2025-06-17.xlsx", Filename(now))
}

func TestEncodeRoundTrip(t *testing.T) {
	active := sampleRecord("GEM/2025/B/1111111", "15-10-2025", "a.pdf")
	expired := sampleRecord("GEM/2024/B/2222222", "01-01-2025", "b.pdf")
	now := time.Date(2025, 6, 17, 10, 30, 0, 0, time.UTC)

	wb, err := Build(
		[]bids.BidRecord{active, expired},
		bids.Cohort{Active: []bids.BidRecord{active}, Expired: []bids.BidRecord{expired}},
		2, now,
	)
	require.NoError(t, err)

	raw, err := Encode(wb)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetAllBids, SheetActiveBids, SheetExpiredBids, SheetSummary}, f.GetSheetList())

	header, err := f.GetCellValue(SheetAllBids, "A1")
	require.NoError(t, err)
	assert.Equal(t, "BID Number", header)

	bidNumber, err := f.GetCellValue(SheetAllBids, "A2")
	require.NoError(t, err)
	assert.Equal(t, "GEM/2025/B/1111111", bidNumber)

	filename, err := f.GetCellValue(SheetActiveBids, "J2")
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", filename)

	label, err := f.GetCellValue(SheetSummary, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Generated on", label)
	generated, err := f.GetCellValue(SheetSummary, "B4")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-17 10:30:00", generated)
}

func TestEncodeRejectsEmptyWorkbook(t *testing.T) {
	_, err := Encode(nil)
	assert.Error(t, err)
	_, err = Encode(&Workbook{})
	assert.Error(t, err)
}
