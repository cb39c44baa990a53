// Package mf reads the file formats written and read by MODFLOW-style
// groundwater solvers: the name file, discretization (DIS), volumetric
// budget listing, gage output, HYDMOD binary and streamflow-routing (SFR)
// output. Readers are whole-file and fail fast on the first malformed row.
package mf

import "fmt"

// ParseError locates a malformed value in a solver file. Col is 1-based;
// zero when the failure is not tied to one column.
type ParseError struct {
	File string
	Line int
	Col  int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("%s: line %d: column %d: %v", e.File, e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("%s: line %d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeMismatch reports array dimensions inconsistent with the declared
// grid.
type ShapeMismatch struct {
	File string
	Nam  string
	Want int
	Got  int
}

func (e *ShapeMismatch) Error() string {
	return fmt.Sprintf("%s: %s: expected %d values, found %d", e.File, e.Nam, e.Want, e.Got)
}
