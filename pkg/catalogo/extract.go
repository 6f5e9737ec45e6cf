package catalogo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/parser"
	"github.com/xuri/excelize/v2"
)

// ReadSheet opens a workbook and reads the sheet selected by opts.
func ReadSheet(path string, opts Options) (*parser.Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheetName = parser.ActiveSheet(f)
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheetName, path)
	}

	sheet, err := parser.ExtractSheet(f, sheetName, opts.ResolveLinks)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}

	opts.logger().Info("sheet read",
		"file", path,
		"sheet", sheetName,
		"columns", len(sheet.Header),
		"rows", len(sheet.Rows),
	)
	return sheet, nil
}
