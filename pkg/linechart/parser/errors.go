package parser

import (
	"errors"
	"fmt"
)

// ErrMissingField indicates a record without a year or value.
var ErrMissingField = errors.New("missing field")

// ErrNoData indicates that no sample rows were found.
var ErrNoData = errors.New("no data")

// SampleError reports a field of one record that could not be parsed.
type SampleError struct {
	Index int    // 0-based record position
	Field string // "year" or "value"
	Raw   string
	Err   error
}

func (e *SampleError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("sample %d: %s: %v", e.Index, e.Field, e.Err)
	}
	return fmt.Sprintf("sample %d: %s %q: %v", e.Index, e.Field, e.Raw, e.Err)
}

func (e *SampleError) Unwrap() error {
	return e.Err
}
