package normalize

import (
	"reflect"
	"testing"

	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/parser"
)

func TestSplitSemicolon(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"b; a ;;c", []string{"a", "b", "c"}},
		{"Economía digital", []string{"Economía digital"}},
		{"b;a;b", []string{"a", "b", "b"}},
		{"", []string{}},
		{" nan ", []string{}},
		{"None", []string{}},
		{"NONE", []string{}},
		{" ; ; ", []string{}},
	}

	for _, tt := range tests {
		result := SplitSemicolon(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("SplitSemicolon(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestSplitPipe(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"x|  y |", []string{"x", "y"}},
		{"Medicina | Biología | Ecología", []string{"Medicina", "Biología", "Ecología"}},
		{"b|a", []string{"b", "a"}},
		{"NaN", []string{}},
		{"", []string{}},
	}

	for _, tt := range tests {
		result := SplitPipe(tt.input)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("SplitPipe(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestSplitNeverNil(t *testing.T) {
	if SplitSemicolon("") == nil || SplitPipe("none") == nil {
		t.Error("split results must be non-nil")
	}
}

func TestText(t *testing.T) {
	cell := parser.Cell{Value: "  Lima ", Link: "https://example.org"}

	if got := Text(cell, true); got != "Lima" {
		t.Errorf("Text = %q", got)
	}
	if got := Text(cell, false); got != "" {
		t.Errorf("Text on missing column = %q", got)
	}
	if got := OptionalText(parser.Cell{Value: "  "}, true); got != nil {
		t.Errorf("OptionalText on blank = %q", *got)
	}
	if got := OptionalText(parser.Cell{}, false); got != nil {
		t.Errorf("OptionalText on missing = %q", *got)
	}
	if got := Link(cell, true); got != "https://example.org" {
		t.Errorf("Link = %q", got)
	}
	if got := Raw(cell, true); got != "  Lima " {
		t.Errorf("Raw = %q", got)
	}
	if got := Raw(cell, false); got != "" {
		t.Errorf("Raw on missing column = %q", got)
	}
	if got := Link(parser.Cell{Value: " www.x.org "}, true); got != " www.x.org " {
		t.Errorf("Link without target = %q", got)
	}
}
