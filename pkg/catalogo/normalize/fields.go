package normalize

import (
	"sort"
	"strings"

	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/parser"
)

// SplitSemicolon splits a ";"-joined value into trimmed, non-empty parts, sorted.
func SplitSemicolon(raw string) []string {
	parts := splitTrimmed(raw, ";")
	sort.Strings(parts)
	return parts
}

// SplitPipe splits a "|"-joined value into trimmed, non-empty parts, in order.
func SplitPipe(raw string) []string {
	return splitTrimmed(raw, "|")
}

// splitTrimmed never returns nil, so empty lists encode as [].
func splitTrimmed(raw, sep string) []string {
	out := []string{}
	s := strings.TrimSpace(raw)
	if IsBlank(s) {
		return out
	}
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsBlank reports whether a value is empty or one of the
// placeholder strings "nan" and "none", ignoring case.
func IsBlank(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nan", "none":
		return true
	}
	return false
}

// Raw returns the cell text as stored, "" for a missing cell.
func Raw(c parser.Cell, ok bool) string {
	if !ok {
		return ""
	}
	return c.String()
}

// Text returns the trimmed cell text, "" for a missing cell.
func Text(c parser.Cell, ok bool) string {
	return strings.TrimSpace(Raw(c, ok))
}

// OptionalText is Text with nil in place of "".
func OptionalText(c parser.Cell, ok bool) *string {
	s := Text(c, ok)
	if s == "" {
		return nil
	}
	return &s
}

// Link is Raw, except that a hyperlink target wins over the display text.
func Link(c parser.Cell, ok bool) string {
	if ok && c.Link != "" {
		return c.Link
	}
	return Raw(c, ok)
}
