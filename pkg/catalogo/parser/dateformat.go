package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// builtInDateFormats are the built-in number format ids that render a calendar date.
// Time-only formats (18-21, 45-47) are not included.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true,
	32: true, 33: true, 34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true,
	55: true, 56: true, 57: true, 58: true,
}

// IsDateFormatCode reports whether a custom number format code renders a date.
// Quoted literals, bracketed sections and escaped characters are ignored.
func IsDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++ // skip the escaped or padding character
		default:
			b.WriteByte(ch)
		}
	}
	// Only the first section (positive numbers) decides.
	section, _, _ := strings.Cut(strings.ToLower(b.String()), ";")
	return strings.ContainsAny(section, "dy")
}

// dateDetector decides whether numeric cells are dates, caching per style id.
type dateDetector struct {
	f       *excelize.File
	use1904 bool
	styles  map[int]bool
}

func newDateDetector(f *excelize.File) *dateDetector {
	d := &dateDetector{f: f, styles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.use1904 = *props.Date1904
	}
	return d
}

// lookup returns the date stored in a cell when the cell holds a number
// (not text that looks like one) and its style uses a date number format.
func (d *dateDetector) lookup(sheet, cell, raw string) (time.Time, bool) {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}
	cellType, err := d.f.GetCellType(sheet, cell)
	if err != nil || (cellType != excelize.CellTypeNumber && cellType != excelize.CellTypeUnset) {
		return time.Time{}, false
	}
	styleID, err := d.f.GetCellStyle(sheet, cell)
	if err != nil || !d.isDateStyle(styleID) {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, d.use1904)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (d *dateDetector) isDateStyle(styleID int) bool {
	if isDate, ok := d.styles[styleID]; ok {
		return isDate
	}
	isDate := false
	if style, err := d.f.GetStyle(styleID); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = IsDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = builtInDateFormats[style.NumFmt]
		}
	}
	d.styles[styleID] = isDate
	return isDate
}
