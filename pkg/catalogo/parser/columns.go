package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Columns maps header names to column positions.
// Names are trimmed and NFC-normalized; when a header repeats, the last one wins.
type Columns map[string]int

// ResolveColumns builds the column map from a header row.
func ResolveColumns(header []Cell) Columns {
	cols := make(Columns, len(header))
	for i, h := range header {
		if h.IsEmpty() {
			continue
		}
		name := headerKey(h.String())
		if name == "" {
			continue
		}
		cols[name] = i
	}
	return cols
}

// Has reports whether the header row contains name.
func (c Columns) Has(name string) bool {
	_, ok := c[headerKey(name)]
	return ok
}

// Get returns the cell under the named column. ok is false when the
// column does not exist or the row is too short to reach it.
func (c Columns) Get(row []Cell, name string) (Cell, bool) {
	idx, ok := c[headerKey(name)]
	if !ok || idx >= len(row) {
		return Cell{}, false
	}
	return row[idx], true
}

// Missing returns the names not present in the header row, in the given order.
func (c Columns) Missing(names ...string) []string {
	var missing []string
	for _, name := range names {
		if !c.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func headerKey(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
