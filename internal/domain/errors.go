package domain

import (
	"errors"
	"fmt"
)

// ErrLoad marks failures to read or parse the source dataset. These are the
// only errors that escape view computation.
var ErrLoad = errors.New("load dataset")

// ParseError reports a cell that could not be converted to its field type.
type ParseError struct {
	Row    int // 1-based data row, header excluded
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s at row %d (%q): %v", e.Column, e.Row, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrLoad.
func (e *ParseError) Is(target error) bool { return target == ErrLoad }
