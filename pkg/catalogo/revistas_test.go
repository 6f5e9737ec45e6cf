package catalogo

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/models"
	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/parser"
)

func TestConvertRevistas(t *testing.T) {
	input := writeWorkbook(t, [][]interface{}{
		{"Sitio web de la revista", "Disciplinas principales", "Journal", "ISSN (impreso)", "eISSN",
			"Publisher", "Enfoque principal (datos/base de datos)"},
		{"https://a.org", "Medicina | Biología |", " Revista A ", "1234-5678", "",
			"Elsevier", "Bases de datos"},
		{"", "", "   ", "", "", "Springer", ""},
		{"", "Ecología|Biología", "Revista C", "", "8765-4321", " Elsevier ", ""},
	})
	output := filepath.Join(t.TempDir(), "revistas.json")

	doc, err := ConvertRevistas(input, output, testOptions())
	if err != nil {
		t.Fatalf("ConvertRevistas failed: %v", err)
	}

	expected := []models.Revista{
		{
			ID:          1,
			Journal:     "Revista A",
			ISSN:        strPtr("1234-5678"),
			Publisher:   strPtr("Elsevier"),
			Enfoque:     strPtr("Bases de datos"),
			Disciplinas: []string{"Medicina", "Biología"},
			SitioWeb:    strPtr("https://a.org"),
		},
		{
			ID:          3,
			Journal:     "Revista C",
			EISSN:       strPtr("8765-4321"),
			Publisher:   strPtr("Elsevier"),
			Disciplinas: []string{"Ecología", "Biología"},
		},
	}
	if !reflect.DeepEqual(doc.Revistas, expected) {
		t.Errorf("revistas:\n got %+v\nwant %+v", doc.Revistas, expected)
	}

	facets := models.RevistaFacets{
		Publishers:  []string{"Elsevier"},
		Enfoques:    []string{"Bases de datos"},
		Disciplinas: []string{"Biología", "Ecología", "Medicina"},
	}
	if !reflect.DeepEqual(doc.Facets, facets) {
		t.Errorf("facets = %+v, expected %+v", doc.Facets, facets)
	}

	meta := doc.Metadata
	if meta.TotalRevistas != 2 || meta.Publishers != 1 || meta.Disciplinas != 3 || meta.Version != "1.0" {
		t.Errorf("unexpected metadata %+v", meta)
	}

	var decoded models.RevistaDocument
	if err := ReadJSON(output, &decoded); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, *doc) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, *doc)
	}
}

func TestBuildRevistasEmptyFacets(t *testing.T) {
	sheet := &parser.Sheet{
		Header: []parser.Cell{{Value: "Journal"}},
		Rows:   [][]parser.Cell{{{Value: "Solo"}}},
	}

	doc := BuildRevistas(sheet, testOptions())

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw struct {
		Revistas []map[string]interface{} `json:"revistas"`
		Facets   map[string][]string      `json:"facets"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, key := range []string{"issn", "eissn", "publisher", "enfoque", "sitioWeb"} {
		if v, ok := raw.Revistas[0][key]; !ok || v != nil {
			t.Errorf("%s = %v (present %v), expected null", key, v, ok)
		}
	}
	for name, values := range raw.Facets {
		if values == nil {
			t.Errorf("facet %s encoded as null", name)
		}
	}
}
