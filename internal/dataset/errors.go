package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrHeader = errors.New("invalid header")
	ErrFetch  = errors.New("fail to fetch dataset")
)

// HeaderError is returned when a required column is missing from the
// header row.
type HeaderError struct {
	Column string
	File   string
}

func (e HeaderError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("column %s not found in header", e.Column)
	}
	return fmt.Sprintf("%s: column %s not found in header", e.File, e.Column)
}

func (e HeaderError) Unwrap() error {
	return ErrHeader
}

// Issue reports a field that could not be converted. Line is the line of
// the record in the source, the header being line 1.
type Issue struct {
	Line   int
	Column string
	Value  string
}

func (i Issue) Error() string {
	if i.Value == "" {
		return fmt.Sprintf("line %d: %s: empty value", i.Line, i.Column)
	}
	return fmt.Sprintf("line %d: %s: %q is not a valid number", i.Line, i.Column, i.Value)
}
