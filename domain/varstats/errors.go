package varstats

import "fmt"

// MalformedRecordError reports a data row missing a required column. Row is
// the zero-based index of the data row (the header row is not counted).
type MalformedRecordError struct {
	Row   int
	Field string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at row %d: missing required field %q", e.Row, e.Field)
}

// TypeMismatchError reports a non-numeric value in a numeric column.
type TypeMismatchError struct {
	Row    int
	Column string
	Value  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch at row %d, column %q: cannot parse %q as a number", e.Row, e.Column, e.Value)
}
