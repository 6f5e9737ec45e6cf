package normalize

import (
	"testing"
	"time"

	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/parser"
)

func TestDateText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"5/3/2025", "2025-03-05", true},
		{"15/11/2024", "2024-11-15", true},
		{" 05/03/2025 ", "2025-03-05", true},
		{"1/2", "1/2", true},         // two parts: left as text
		{"1/2/3/4", "1/2/3/4", true}, // four parts: left as text
		{"2025-03-05", "2025-03-05", true},
		{"2025-03-05 00:00:00", "2025-03-05", true},
		{"2025-3-5", "2025-3-5", true}, // too short to cut
		{"Por confirmar", "Por confirmar", true},
		{"", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		result, ok := DateText(tt.input)
		if result != tt.expected || ok != tt.ok {
			t.Errorf("DateText(%q) = (%q, %v), expected (%q, %v)",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestSwapDayMonth(t *testing.T) {
	tests := []struct {
		stored   time.Time
		expected string
		ok       bool
	}{
		// Stored as 5 March; entered as 3 May.
		{time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), "2025-05-03", true},
		{time.Date(2024, time.December, 1, 13, 30, 0, 0, time.UTC), "2024-01-12", true},
		{time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC), "2025-07-07", true},
		// Day 13 cannot become a month.
		{time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC), "", false},
		{time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), "", false},
	}

	for _, tt := range tests {
		result, ok := SwapDayMonth(tt.stored)
		if result != tt.expected || ok != tt.ok {
			t.Errorf("SwapDayMonth(%s) = (%q, %v), expected (%q, %v)",
				tt.stored.Format(time.RFC3339), result, ok, tt.expected, tt.ok)
		}
	}
}

func TestDate(t *testing.T) {
	stored := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	invalid := time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		cell     parser.Cell
		expected *string
	}{
		{"empty", parser.Cell{}, nil},
		{"date cell swaps", parser.Cell{Value: "45721", Date: &stored}, strPtr("2025-05-03")},
		{"text date keeps order", parser.Cell{Value: "5/3/2025"}, strPtr("2025-03-05")},
		{"impossible swap", parser.Cell{Value: "45741", Date: &invalid}, nil},
		{"free text", parser.Cell{Value: " TBA "}, strPtr("TBA")},
	}

	for _, tt := range tests {
		result := Date(tt.cell)
		if !equalPtr(result, tt.expected) {
			t.Errorf("%s: Date(%+v) = %v, expected %v", tt.name, tt.cell, deref(result), deref(tt.expected))
		}
	}
}

func strPtr(s string) *string { return &s }

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
