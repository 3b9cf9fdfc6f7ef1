package a1notation

import (
	"errors"
	"fmt"
)

// ErrInvalidArgumentCount indicates Notation was called with no arguments or more than four.
var ErrInvalidArgumentCount = errors.New("function expects at least one argument")

// ErrInvalidColumn indicates a column number below 1.
var ErrInvalidColumn = errors.New("invalid column number")

// ErrInvalidRow indicates a row number below 1.
var ErrInvalidRow = errors.New("invalid row number")

// ErrInvalidRef indicates a Ref with no recognised Kind.
var ErrInvalidRef = errors.New("invalid reference kind")

// ArgumentCountError reports how many arguments were actually passed.
type ArgumentCountError struct {
	Count int
}

func (e *ArgumentCountError) Error() string {
	if e.Count == 0 {
		return ErrInvalidArgumentCount.Error()
	}
	return fmt.Sprintf("function expects at most 4 arguments, got %d", e.Count)
}

func (e *ArgumentCountError) Unwrap() error {
	return ErrInvalidArgumentCount
}

// CoordinateError represents a row or column value that cannot be rendered.
type CoordinateError struct {
	Field string // "row", "col", "lastRow", "lastCol"
	Value int
	Err   error
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Field, e.Value, e.Err)
}

func (e *CoordinateError) Unwrap() error {
	return e.Err
}

func newCoordinateError(field string, value int, err error) *CoordinateError {
	return &CoordinateError{
		Field: field,
		Value: value,
		Err:   err,
	}
}

// ScanError represents an error while scanning one component of a sheet.
type ScanError struct {
	SheetName string
	Component string // "cells", "used_range", "tables", "print_areas"
	Err       error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a new ScanError.
func NewScanError(sheetName, component string, err error) *ScanError {
	return &ScanError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
