package report

import (
	"errors"
	"strconv"
	"time"

	"github.com/gembid/gem-bid-extractor/internal/bids"
)

// ErrEmptyBatch is returned when a report is requested for a batch that
// produced no bid records at all.
var ErrEmptyBatch = errors.New("no bid records to report")

// Sheet names. The active and expired sheets are emitted only when their
// cohort is non-empty.
const (
	SheetAllBids     = "All Bids"
	SheetActiveBids  = "Active Bids"
	SheetExpiredBids = "Expired Bids"
	SheetSummary     = "Summary"
)

// bidHeader is the fixed column header of every bid sheet.
var bidHeader = []string{
	"BID Number",
	"Buyer",
	"BID Start Date",
	"BID Offer Validity",
	"BID End Date",
	"State",
	"Total Quantity",
	"Item Category",
	"Technical Specification",
	"Filename",
}

// Column width hints: content length plus padding, capped so the item
// category column stays readable.
const (
	colWidthPadding = 2
	maxColWidth     = 100
)

// headerFill is the tint applied behind bid-sheet header cells.
const headerFill = "E6E6FA"

// HeaderStyle describes how bid-sheet header rows are rendered.
type HeaderStyle struct {
	Bold     bool
	Centered bool
	Fill     string
}

// Sheet is one worksheet of the report: an optional styled header row,
// data rows, and per-column width hints.
type Sheet struct {
	Name      string
	Header    []string
	Rows      [][]string
	ColWidths []float64
}

// Workbook is the encoder-independent description of a full report.
type Workbook struct {
	Sheets []Sheet
	Style  HeaderStyle
}

// Build assembles the workbook descriptor for one extraction batch. The
// all-bids sheet and the summary are always present; the active and expired
// sheets appear only when their cohort has records. An empty batch is an
// error, not an empty workbook.
func Build(records []bids.BidRecord, cohort bids.Cohort, filesProcessed int, now time.Time) (*Workbook, error) {
	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}

	wb := &Workbook{
		Style: HeaderStyle{Bold: true, Centered: true, Fill: headerFill},
	}

	wb.Sheets = append(wb.Sheets, bidSheet(SheetAllBids, records))
	if len(cohort.Active) > 0 {
		wb.Sheets = append(wb.Sheets, bidSheet(SheetActiveBids, cohort.Active))
	}
	if len(cohort.Expired) > 0 {
		wb.Sheets = append(wb.Sheets, bidSheet(SheetExpiredBids, cohort.Expired))
	}
	wb.Sheets = append(wb.Sheets, summarySheet(len(records), cohort, filesProcessed, now))

	return wb, nil
}

func bidSheet(name string, records []bids.BidRecord) Sheet {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, recordRow(rec))
	}
	return Sheet{
		Name:      name,
		Header:    bidHeader,
		Rows:      rows,
		ColWidths: columnWidths(bidHeader, rows),
	}
}

// recordRow flattens one record into the fixed column order of bidHeader.
func recordRow(rec bids.BidRecord) []string {
	return []string{
		rec.BidNumber.Value,
		rec.Buyer.Value,
		rec.StartDate.Value,
		rec.OfferValidity.Value,
		rec.EndDate.Value,
		rec.State.Value,
		rec.TotalQuantity.Value,
		rec.ItemCategory.Value,
		rec.SpecificationURL.Value,
		rec.SourceFilename,
	}
}

func summarySheet(total int, cohort bids.Cohort, filesProcessed int, now time.Time) Sheet {
	rows := [][]string{
		{"Total Bids", strconv.Itoa(total)},
		{"Active Bids", strconv.Itoa(len(cohort.Active))},
		{"Expired Bids", strconv.Itoa(len(cohort.Expired))},
		{"Generated on", now.Format("2006-01-02 15:04:05")},
		{"Total Files Processed", strconv.Itoa(filesProcessed)},
	}
	return Sheet{
		Name:      SheetSummary,
		Rows:      rows,
		ColWidths: columnWidths(nil, rows),
	}
}

// columnWidths derives per-column hints from the longest cell in each
// column (header included), padded and capped.
func columnWidths(header []string, rows [][]string) []float64 {
	cols := len(header)
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	widths := make([]float64, cols)
	for i := 0; i < cols; i++ {
		longest := 0
		if i < len(header) {
			longest = len(header[i])
		}
		for _, row := range rows {
			if i < len(row) && len(row[i]) > longest {
				longest = len(row[i])
			}
		}
		w := longest + colWidthPadding
		if w > maxColWidth {
			w = maxColWidth
		}
		widths[i] = float64(w)
	}
	return widths
}
