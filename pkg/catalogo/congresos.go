package catalogo

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/models"
	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/normalize"
	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/parser"
)

// CongressVersion is written to metadata.version of congresses documents.
const CongressVersion = "2.1"

// Congress sheet column names.
const (
	ColEvento         = "Evento"
	ColNombreCompleto = "Nombre Completo"
	ColFechaInicio    = "Fecha inicio"
	ColFechaFin       = "Fecha fin"
	ColDeadline       = "Deadline"
	ColCiudad         = "Ciudad"
	ColPais           = "Pais"
	ColModalidad      = "Modalidad"
	ColCategoria      = "categoria_ulima"
	ColLinea          = "linea_ulima"
	ColSublinea       = "sublinea_ulima"
	ColDisciplina     = "Disciplina"
	ColLugar          = "Lugar"
	ColPublicacion    = "Publicación"
	ColEnlace         = "Enlace"
)

var congressColumns = []string{
	ColEvento, ColNombreCompleto, ColFechaInicio, ColFechaFin, ColDeadline,
	ColCiudad, ColPais, ColModalidad, ColCategoria, ColLinea, ColSublinea,
	ColDisciplina, ColLugar, ColPublicacion, ColEnlace,
}

// CongressStats summarizes a congresses conversion.
type CongressStats struct {
	Rows       int
	Skipped    int
	Countries  []string
	Modalities map[string]int
}

// BuildCongresses turns a congress sheet into a document. Rows without
// Evento and Nombre Completo are skipped; ids keep the row position, so
// skipped rows leave gaps.
func BuildCongresses(sheet *parser.Sheet, opts Options) (*models.CongressDocument, CongressStats) {
	logger := opts.logger().With("pipeline", "congresos", "sheet", sheet.Name)
	now := opts.now()

	cols := parser.ResolveColumns(sheet.Header)
	if missing := cols.Missing(congressColumns...); len(missing) > 0 {
		logger.Warn("columns not found, fields will be empty", "columns", missing)
	}

	countries := valueSet{}
	stats := CongressStats{Rows: len(sheet.Rows), Modalities: map[string]int{}}
	congresses := []models.Congress{}

	for i, row := range sheet.Rows {
		get := func(name string) (parser.Cell, bool) { return cols.Get(row, name) }
		date := func(name string) *string {
			cell, ok := get(name)
			if !ok {
				return nil
			}
			d := normalize.Date(cell)
			if d == nil && cell.Date != nil {
				logger.Warn("date cell cannot be corrected, leaving it empty",
					"row", i+2, "column", name, "stored", cell.Date.Format(normalize.ISOLayout))
			}
			return d
		}

		evento := normalize.Raw(get(ColEvento))
		nombre := normalize.Raw(get(ColNombreCompleto))
		if strings.TrimSpace(evento) == "" && strings.TrimSpace(nombre) == "" {
			stats.Skipped++
			continue
		}

		// Fields are emitted as stored; only the aggregates are trimmed.
		pais := normalize.Raw(get(ColPais))
		modalidad := normalize.Raw(get(ColModalidad))
		countries.add(pais)
		if m := strings.TrimSpace(modalidad); m != "" {
			stats.Modalities[m]++
		}

		deadline := date(ColDeadline)
		congresses = append(congresses, models.Congress{
			ID:             i + 1,
			Evento:         evento,
			NombreCompleto: nombre,
			Disciplina:     normalize.Raw(get(ColDisciplina)),
			Categoria:      normalize.SplitSemicolon(normalize.Raw(get(ColCategoria))),
			Linea:          normalize.SplitSemicolon(normalize.Raw(get(ColLinea))),
			Sublinea:       normalize.SplitSemicolon(normalize.Raw(get(ColSublinea))),
			FechaInicio:    date(ColFechaInicio),
			FechaFin:       date(ColFechaFin),
			Lugar:          normalize.Raw(get(ColLugar)),
			Ciudad:         normalize.Raw(get(ColCiudad)),
			Pais:           pais,
			Modalidad:      modalidad,
			Deadline:       deadline,
			DeadlineStatus: normalize.DeadlineStatus(deadline, now),
			Publicacion:    normalize.Raw(get(ColPublicacion)),
			Enlace:         normalize.Link(get(ColEnlace)),
		})
	}
	stats.Countries = countries.sorted()

	doc := &models.CongressDocument{
		Metadata: models.CongressMetadata{
			TotalCongresses: len(congresses),
			LastUpdated:     now.Format(timestampLayout),
			Version:         CongressVersion,
		},
		Taxonomy:   models.ULIMATaxonomy(),
		Congresses: congresses,
	}
	return doc, stats
}

// ConvertCongresos reads the congress workbook at inputPath and writes its
// JSON document to outputPath.
func ConvertCongresos(inputPath, outputPath string, opts Options) (*models.CongressDocument, error) {
	logger := opts.logger()

	sheet, err := ReadSheet(inputPath, opts)
	if err != nil {
		return nil, NewConversionError("congresos", "read", err)
	}

	doc, stats := BuildCongresses(sheet, opts)

	n, err := WriteJSON(outputPath, doc)
	if err != nil {
		return nil, NewConversionError("congresos", "write", err)
	}

	logger.Info("congresses written",
		"output", outputPath,
		"size", humanize.Bytes(uint64(n)),
		"congresses", len(doc.Congresses),
		"skipped", stats.Skipped,
		"countries", len(stats.Countries),
		"modalities", fmt.Sprint(stats.Modalities),
		"categorias", len(doc.Taxonomy),
	)
	return doc, nil
}
