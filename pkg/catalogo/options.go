// Package catalogo converts congress and journal workbooks into the JSON
// documents read by the catalog front end.
package catalogo

import (
	"log/slog"
	"time"
)

// Default file locations, relative to the working directory.
const (
	DefaultCongresosInput  = "List_congreso.xlsx"
	DefaultCongresosOutput = "public/congresses.json"
	DefaultRevistasInput   = "List_revista.xlsx"
	DefaultRevistasOutput  = "public/revistas.json"
)

// Options configures a conversion run.
type Options struct {
	// Sheet is the worksheet to read. Empty means the workbook's active sheet.
	Sheet string
	// ResolveLinks makes link columns use a cell's hyperlink target
	// instead of its display text when the cell has one.
	ResolveLinks bool
	// Now returns the processing time. If nil, time.Now is used.
	Now func() time.Time
	// Logger receives progress and row warnings. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Now:    time.Now,
		Logger: slog.Default(),
	}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
