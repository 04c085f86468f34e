package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required key is absent from a record
	ErrMissingField = errors.New("missing required field")
	// ErrUnexpectedShape is returned when a record or one of its values has the wrong JSON type
	ErrUnexpectedShape = errors.New("unexpected shape")
)

// RecordMapError describes one input record that could not be mapped to a waypoint.
// It never aborts a conversion; the record is skipped.
type RecordMapError struct {
	Index int
	Name  string
	Err   error
}

func (e *RecordMapError) Error() string {
	return fmt.Sprintf("could not process mark %s: %v", e.Name, e.Err)
}

func (e *RecordMapError) Unwrap() error { return e.Err }
