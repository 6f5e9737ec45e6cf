package catalogo

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/models"
	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/normalize"
	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/parser"
)

// RevistaVersion is written to metadata.version of revistas documents.
const RevistaVersion = "1.0"

// Journal sheet column names.
const (
	ColJournal     = "Journal"
	ColISSN        = "ISSN (impreso)"
	ColEISSN       = "eISSN"
	ColPublisher   = "Publisher"
	ColEnfoque     = "Enfoque principal (datos/base de datos)"
	ColDisciplinas = "Disciplinas principales"
	ColSitioWeb    = "Sitio web de la revista"
)

var revistaColumns = []string{
	ColJournal, ColISSN, ColEISSN, ColPublisher, ColEnfoque, ColDisciplinas, ColSitioWeb,
}

// BuildRevistas turns a journal sheet into a document. Rows without a
// Journal are skipped; ids keep the row position.
func BuildRevistas(sheet *parser.Sheet, opts Options) *models.RevistaDocument {
	logger := opts.logger().With("pipeline", "revistas", "sheet", sheet.Name)

	cols := parser.ResolveColumns(sheet.Header)
	if missing := cols.Missing(revistaColumns...); len(missing) > 0 {
		logger.Warn("columns not found, fields will be null", "columns", missing)
	}

	publishers, enfoques, disciplinas := valueSet{}, valueSet{}, valueSet{}
	revistas := []models.Revista{}

	for i, row := range sheet.Rows {
		get := func(name string) (parser.Cell, bool) { return cols.Get(row, name) }

		journal := normalize.Text(get(ColJournal))
		if journal == "" {
			continue
		}

		publisher := normalize.OptionalText(get(ColPublisher))
		enfoque := normalize.OptionalText(get(ColEnfoque))
		discs := normalize.SplitPipe(normalize.Text(get(ColDisciplinas)))

		if publisher != nil {
			publishers.add(*publisher)
		}
		if enfoque != nil {
			enfoques.add(*enfoque)
		}
		for _, d := range discs {
			disciplinas.add(d)
		}

		var sitio *string
		if s := strings.TrimSpace(normalize.Link(get(ColSitioWeb))); s != "" {
			sitio = &s
		}

		revistas = append(revistas, models.Revista{
			ID:          i + 1,
			Journal:     journal,
			ISSN:        normalize.OptionalText(get(ColISSN)),
			EISSN:       normalize.OptionalText(get(ColEISSN)),
			Publisher:   publisher,
			Enfoque:     enfoque,
			Disciplinas: discs,
			SitioWeb:    sitio,
		})
	}

	return &models.RevistaDocument{
		Metadata: models.RevistaMetadata{
			TotalRevistas: len(revistas),
			Publishers:    len(publishers),
			Disciplinas:   len(disciplinas),
			LastUpdated:   opts.now().Format(timestampLayout),
			Version:       RevistaVersion,
		},
		Revistas: revistas,
		Facets: models.RevistaFacets{
			Publishers:  publishers.sorted(),
			Enfoques:    enfoques.sorted(),
			Disciplinas: disciplinas.sorted(),
		},
	}
}

// ConvertRevistas reads the journal workbook at inputPath and writes its
// JSON document to outputPath.
func ConvertRevistas(inputPath, outputPath string, opts Options) (*models.RevistaDocument, error) {
	sheet, err := ReadSheet(inputPath, opts)
	if err != nil {
		return nil, NewConversionError("revistas", "read", err)
	}

	doc := BuildRevistas(sheet, opts)

	n, err := WriteJSON(outputPath, doc)
	if err != nil {
		return nil, NewConversionError("revistas", "write", err)
	}

	opts.logger().Info("revistas written",
		"output", outputPath,
		"size", humanize.Bytes(uint64(n)),
		"revistas", doc.Metadata.TotalRevistas,
		"publishers", doc.Metadata.Publishers,
		"disciplinas", doc.Metadata.Disciplinas,
	)
	return doc, nil
}
