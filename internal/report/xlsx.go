package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Filename returns the report artifact name for the given generation time,
// e.g. GeM_Bidding_Data_2025-06-17.xlsx.
func Filename(now time.Time) string {
	return fmt.Sprintf("GeM_Bidding_Data_%s.xlsx", now.Format("2006-01-02"))
}

// Encode renders a workbook descriptor to XLSX bytes.
func Encode(wb *Workbook) ([]byte, error) {
	if wb == nil || len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("encode: empty workbook")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := newHeaderStyle(f, wb.Style)
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, sheet := range wb.Sheets {
		if i == 0 {
			// Rename the implicit default sheet instead of leaving it empty.
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}

		if err := encodeSheet(f, sheet, headerStyle); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func newHeaderStyle(f *excelize.File, hs HeaderStyle) (int, error) {
	style := &excelize.Style{}
	if hs.Bold {
		style.Font = &excelize.Font{Bold: true}
	}
	if hs.Centered {
		style.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	}
	if hs.Fill != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hs.Fill}}
	}
	return f.NewStyle(style)
}

func encodeSheet(f *excelize.File, sheet Sheet, headerStyle int) error {
	row := 1

	if len(sheet.Header) > 0 {
		for col, h := range sheet.Header {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet.Name, cell, h); err != nil {
				return err
			}
		}
		last, err := excelize.CoordinatesToCellName(len(sheet.Header), row)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet.Name, "A1", last, headerStyle); err != nil {
			return err
		}
		row++
	}

	for _, dataRow := range sheet.Rows {
		for col, v := range dataRow {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet.Name, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	for i, width := range sheet.ColWidths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, name, name, width); err != nil {
			return err
		}
	}

	return nil
}
