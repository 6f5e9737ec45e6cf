package catalogo

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested worksheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ConversionError represents a run-level failure of a pipeline.
type ConversionError struct {
	Pipeline string // "congresos", "revistas"
	Stage    string // "read", "write"
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Pipeline, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(pipeline, stage string, err error) *ConversionError {
	return &ConversionError{
		Pipeline: pipeline,
		Stage:    stage,
		Err:      err,
	}
}
