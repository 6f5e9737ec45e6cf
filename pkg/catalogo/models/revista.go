package models

// Revista represents one academic journal row.
type Revista struct {
	// ID is the 1-based data row position in the sheet.
	ID      int     `json:"id"`
	Journal string  `json:"journal"`
	ISSN    *string `json:"issn"`
	EISSN   *string `json:"eissn"`
	// Publisher is nil when the cell is empty.
	Publisher *string `json:"publisher"`
	// Enfoque is the main data focus of the journal, nil when empty.
	Enfoque *string `json:"enfoque"`
	// Disciplinas keeps the order used in the sheet.
	Disciplinas []string `json:"disciplinas"`
	SitioWeb    *string  `json:"sitioWeb"`
}

// RevistaMetadata describes a revistas document.
// Publishers and Disciplinas are distinct value counts.
type RevistaMetadata struct {
	TotalRevistas int    `json:"totalRevistas"`
	Publishers    int    `json:"publishers"`
	Disciplinas   int    `json:"disciplinas"`
	LastUpdated   string `json:"lastUpdated"`
	Version       string `json:"version"`
}

// RevistaFacets lists the distinct filter values, each sorted.
type RevistaFacets struct {
	Publishers  []string `json:"publishers"`
	Enfoques    []string `json:"enfoques"`
	Disciplinas []string `json:"disciplinas"`
}

// RevistaDocument is the top-level revistas JSON document.
type RevistaDocument struct {
	Metadata RevistaMetadata `json:"metadata"`
	Revistas []Revista       `json:"revistas"`
	Facets   RevistaFacets   `json:"facets"`
}
