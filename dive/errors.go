package dive

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField    = errors.New("missing field")
	ErrMalformed       = errors.New("malformed value")
	ErrMalformedHeader = errors.New("malformed header block")
	ErrNoColumns       = errors.New("missing column names")
	ErrNoSamples       = errors.New("no samples loaded")
)

// FieldError reports a header field or sample column that could not be read.
// Row is 0 for header fields and the 1-based sample index otherwise.
type FieldError struct {
	Field string
	Value string
	Row   int
	Err   error
}

func (e *FieldError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d, column '%s' (value '%s'): %s", e.Row, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("field '%s' (value '%s'): %s", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
