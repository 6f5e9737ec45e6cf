// Package parser reads catalog worksheets into header-addressable rows.
package parser

import (
	"time"

	"github.com/xuri/excelize/v2"
)

// textDateLayout is how a date value renders when read as plain text.
const textDateLayout = "2006-01-02 15:04:05"

// Cell is a single worksheet value.
type Cell struct {
	// Value is the raw cell text, untrimmed. Date cells keep their serial number here.
	Value string
	// Date is set when the cell stores a serial number under a date number format.
	Date *time.Time
	// Link is the hyperlink target (only read when links were requested).
	Link string
}

// IsEmpty reports whether the cell holds nothing.
func (c Cell) IsEmpty() bool {
	return c.Date == nil && c.Value == ""
}

// String returns the cell as text. Date cells render as "YYYY-MM-DD HH:MM:SS".
func (c Cell) String() string {
	if c.Date != nil {
		return c.Date.Format(textDateLayout)
	}
	return c.Value
}

// Sheet is a worksheet split into its header row and data rows.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Header is the first worksheet row.
	Header []Cell
	// Rows are the data rows; Rows[i] is worksheet row i+2.
	Rows [][]Cell
}

// ActiveSheet returns the name of the workbook's active sheet,
// falling back to the first sheet.
func ActiveSheet(f *excelize.File) string {
	if name := f.GetSheetName(f.GetActiveSheetIndex()); name != "" {
		return name
	}
	if list := f.GetSheetList(); len(list) > 0 {
		return list[0]
	}
	return ""
}

// ExtractSheet reads every row of a sheet. Rows keep their worksheet
// position, so empty rows between data rows appear as empty slices.
func ExtractSheet(f *excelize.File, sheetName string, includeLinks bool) (*Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	dates := newDateDetector(f)
	sheet := &Sheet{Name: sheetName}
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cells := make([]Cell, len(row))

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cells[colIdx].Value = cellValue

			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				continue
			}
			if t, ok := dates.lookup(sheetName, cellName, cellValue); ok {
				cells[colIdx].Date = &t
			}

			if includeLinks {
				hasLink, target, err := f.GetCellHyperLink(sheetName, cellName)
				if err == nil && hasLink && target != "" {
					cells[colIdx].Link = target
				}
			}
		}

		if rowIdx == 0 {
			sheet.Header = cells
			continue
		}
		sheet.Rows = append(sheet.Rows, cells)
	}

	return sheet, nil
}
