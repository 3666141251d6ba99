package core

import "fmt"

// ErrTotalOverflow marks an amount that parses but would push a running
// total past the int64 cent range.
var ErrTotalOverflow = fmt.Errorf("%w: total out of range", ErrInvalidAmount)

// ParseError reports a currency field that could not be parsed.
type ParseError struct {
	RecordID string
	Field    string
	Value    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %s: parse %s %q: %v", e.RecordID, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidInputError reports a classifier signal that maps to no tier.
type InvalidInputError struct {
	Signal float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid signal %v: %s", e.Signal, e.Reason)
}
