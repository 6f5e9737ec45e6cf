// Package normalize turns raw worksheet cells into catalog field values.
//
// Every function here degrades to an empty or nil result instead of
// returning an error; a bad cell never stops a row.
package normalize

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/parser"
)

// ISOLayout is the canonical date layout of every emitted date.
const ISOLayout = "2006-01-02"

// Date converts a cell into a YYYY-MM-DD string. It returns nil for empty
// cells and for date cells whose corrected day/month is not a calendar date.
//
// Date cells go through SwapDayMonth; text goes through DateText.
func Date(c parser.Cell) *string {
	if c.Date != nil {
		if s, ok := SwapDayMonth(*c.Date); ok {
			return &s
		}
		return nil
	}
	if s, ok := DateText(c.Value); ok {
		return &s
	}
	return nil
}

// SwapDayMonth exchanges the day and month of a stored date.
//
// The catalog workbooks were typed day-first into a month-first spreadsheet
// locale, so every value stored as a real date has its day and month
// transposed: a stored 2025-03-05 was entered as 3 May 2025 and comes out
// as "2025-05-03". ok is false when the stored day is above 12.
func SwapDayMonth(t time.Time) (string, bool) {
	day, month := int(t.Month()), t.Day()
	if month > 12 {
		return "", false
	}
	swapped := time.Date(t.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if swapped.Day() != day || int(swapped.Month()) != month {
		return "", false
	}
	return swapped.Format(ISOLayout), true
}

// DateText normalizes a date typed as text.
//
//   - "D/M/Y" with exactly three parts becomes "Y-MM-DD", day first, no swap.
//   - Text containing "-" of at least 10 characters is cut to its first 10.
//   - Anything else is returned trimmed and unchecked.
//
// ok is false only for blank input.
func DateText(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if strings.Contains(s, "/") {
		if parts := strings.Split(s, "/"); len(parts) == 3 {
			day, month, year := parts[0], parts[1], parts[2]
			return year + "-" + zeroPad(month) + "-" + zeroPad(day), true
		}
	}

	if strings.Contains(s, "-") && utf8.RuneCountInString(s) >= 10 {
		return string([]rune(s)[:10]), true
	}

	return s, true
}

func zeroPad(s string) string {
	if n := utf8.RuneCountInString(s); n < 2 {
		return strings.Repeat("0", 2-n) + s
	}
	return s
}
