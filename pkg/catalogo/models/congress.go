// Package models defines the JSON documents produced from catalog workbooks.
package models

// DeadlineStatus is the urgency bucket of a submission deadline.
type DeadlineStatus string

const (
	// DeadlineUnknown is used when the deadline is missing or not a date.
	DeadlineUnknown DeadlineStatus = "unknown"
	// DeadlinePassed is used when the deadline is in the past.
	DeadlinePassed DeadlineStatus = "passed"
	// DeadlineUrgent covers 0 to 30 days ahead, inclusive.
	DeadlineUrgent DeadlineStatus = "urgent"
	// DeadlineUpcoming covers 31 to 90 days ahead, inclusive.
	DeadlineUpcoming DeadlineStatus = "upcoming"
	// DeadlineFuture is anything more than 90 days ahead.
	DeadlineFuture DeadlineStatus = "future"
)

// Congress represents one conference or event row.
type Congress struct {
	// ID is the 1-based data row position in the sheet.
	ID int `json:"id"`
	// Evento is the short event name.
	Evento string `json:"evento"`
	// NombreCompleto is the full event name.
	NombreCompleto string `json:"nombreCompleto"`
	// Disciplina is the free-text discipline.
	Disciplina string `json:"disciplina"`
	// Categoria holds the ULIMA categories, sorted.
	Categoria []string `json:"categoria"`
	// Linea holds the ULIMA research lines, sorted.
	Linea []string `json:"linea"`
	// Sublinea holds the ULIMA sub-lines, sorted.
	Sublinea []string `json:"sublinea"`
	// FechaInicio is the start date (YYYY-MM-DD) or nil.
	FechaInicio *string `json:"fechaInicio"`
	// FechaFin is the end date (YYYY-MM-DD) or nil.
	FechaFin *string `json:"fechaFin"`
	Lugar    string  `json:"lugar"`
	Ciudad   string  `json:"ciudad"`
	Pais     string  `json:"pais"`
	// Modalidad is the attendance mode (presencial, virtual, ...).
	Modalidad string `json:"modalidad"`
	// Deadline is the submission deadline (YYYY-MM-DD) or nil.
	Deadline *string `json:"deadline"`
	// DeadlineStatus is derived from Deadline at processing time.
	DeadlineStatus DeadlineStatus `json:"deadlineStatus"`
	Publicacion    string         `json:"publicacion"`
	Enlace         string         `json:"enlace"`
}

// CongressMetadata describes a congresses document.
type CongressMetadata struct {
	TotalCongresses int    `json:"totalCongresses"`
	LastUpdated     string `json:"lastUpdated"`
	Version         string `json:"version"`
}

// CongressDocument is the top-level congresses JSON document.
type CongressDocument struct {
	Metadata   CongressMetadata `json:"metadata"`
	Taxonomy   Taxonomy         `json:"taxonomy"`
	Congresses []Congress       `json:"congresses"`
}
