package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is returned when a required CSV column is absent
	ErrMissingColumn = errors.New("missing required column")

	// ErrInvalidShares is returned when split shares do not sum up to 1
	ErrInvalidShares = errors.New("invalid split shares")
)

// ParseError reports a value that violates the input contract
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
