package epsort

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/pareto/eparchive"
)

// defaultEpsilon is the box width used for every objective when the
// caller supplies none: small enough to make epsilon-dominance
// indistinguishable from exact Pareto dominance for typical data.
const defaultEpsilon = 1e-9

// Sentinel errors for driver configuration and input handling.
var (
	// ErrEpsilonCount indicates an epsilon vector whose length does not
	// match the number of objective columns.
	ErrEpsilonCount = fmt.Errorf("%w: epsilon count does not match objective count", eparchive.ErrParameter)
	// ErrMaximizeColumn indicates a maximize column that is not among the
	// objective columns.
	ErrMaximizeColumn = fmt.Errorf("%w: maximize column is not an objective column", eparchive.ErrParameter)
	// ErrEmptyInput indicates that no table produced a row and the
	// objective count could not be inferred.
	ErrEmptyInput = errors.New("epsort: no input rows and no objective columns or epsilons to size the archive")
	// ErrColumnRange indicates a row with too few fields for a requested
	// objective column.
	ErrColumnRange = errors.New("epsort: objective column out of range")
	// ErrNotNumeric indicates a field that could not be parsed as a
	// floating-point number.
	ErrNotNumeric = errors.New("epsort: value is not numeric")
)

// Table yields rows of string fields, one row per candidate solution.
// Next returns io.EOF after the last row.  tabular.Reader implements
// Table; so does any in-memory [][]string via SliceTable.
type Table interface {
	Next() ([]string, error)
}

// SliceTable adapts an in-memory slice of rows to the Table interface.
type SliceTable struct {
	rows [][]string
	next int
}

// NewSliceTable returns a Table over rows.  The slice is not copied.
func NewSliceTable(rows [][]string) *SliceTable {
	return &SliceTable{rows: rows}
}

// Next returns the next row, or io.EOF when exhausted.
func (s *SliceTable) Next() ([]string, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.next]
	s.next++

	return row, nil
}

// Solution is one pre-parsed candidate: a minimization-oriented
// objective vector plus an opaque tag-along payload.
type Solution struct {
	Objectives []float64
	Tag        any
}

// RowError reports a defective input row.  Table is the zero-based
// index of the source table, Row the 1-based row number within it (as
// yielded by the table, after any upstream filtering).  It unwraps to
// its cause, so errors.Is sees ErrNotNumeric, ErrColumnRange,
// eparchive.ErrDimension and friends through it.
type RowError struct {
	Table int
	Row   int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("epsort: row %d of table %d: %v", e.Row, e.Table, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Options configures a sort.
//   - Objectives  — zero-based column indices holding objectives; nil
//     means every column, with the count inferred from the first row.
//   - Maximize    — objective columns whose sense is inverted
//     (sign-flipped) before insertion.
//   - MaximizeAll — invert the sense of every objective column.
//   - Epsilons    — box widths, one per objective; nil defaults every
//     width to 1e-9.
//   - Archive     — options passed through to the eparchive core.
type Options struct {
	Objectives  []int
	Maximize    []int
	MaximizeAll bool
	Epsilons    []float64
	Archive     eparchive.Options
}

// DefaultOptions returns Options that treat every column as a minimized
// objective with 1e-9 epsilons.
func DefaultOptions() Options {
	return Options{}
}
