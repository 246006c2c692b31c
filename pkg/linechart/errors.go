package linechart

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is neither a JSON dataset nor an xlsx workbook.
var ErrInvalidFormat = errors.New("invalid dataset format")

// ErrEmptyDataset indicates a dataset without samples.
var ErrEmptyDataset = errors.New("dataset is empty")

// ErrUnsorted indicates samples that are not in ascending year order.
var ErrUnsorted = errors.New("samples are not sorted by year")

// ErrInvalidValue indicates a NaN or infinite sample value.
var ErrInvalidValue = errors.New("sample value is not finite")

// ErrUnknownEvent indicates a pointer event type other than enter, leave or move.
var ErrUnknownEvent = errors.New("unknown pointer event")

// ErrUnsupportedFormat indicates an output format no renderer handles.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// LoadError represents an error while loading a dataset.
type LoadError struct {
	Source string // file path or dataset name
	Stage  string // "read", "parse", "validate"
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q (%s): %v", e.Source, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(source, stage string, err error) *LoadError {
	return &LoadError{
		Source: source,
		Stage:  stage,
		Err:    err,
	}
}
