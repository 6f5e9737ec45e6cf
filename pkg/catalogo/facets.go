package catalogo

import (
	"sort"
	"strings"
)

// valueSet collects distinct trimmed, non-empty values.
type valueSet map[string]struct{}

func (s valueSet) add(v string) {
	if v = strings.TrimSpace(v); v != "" {
		s[v] = struct{}{}
	}
}

// sorted never returns nil.
func (s valueSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
