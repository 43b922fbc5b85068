package epsort

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/pareto/eparchive"
)

// Sort performs an epsilon-nondominated sort across tables, in order,
// and returns the surviving archive.
//
// Steps:
//  1. Walk every table row by row (lazy; nothing is buffered).
//  2. Per row, extract the objective columns (opts.Objectives, or every
//     column when nil) and parse them as floats.
//  3. On the first data row, fix the number of objectives, resolve
//     maximize columns to vector positions, validate the epsilon count,
//     and construct the archive (epsilons default to 1e-9 each).
//  4. Sign-flip maximized positions and insert, with the raw row as the
//     tag-along.
//
// A defective row aborts the sort with a *RowError naming the table
// index and 1-based row number; rows accepted before it are unaffected.
// When no table yields a row, an empty archive is returned if the
// objective count is determined by opts (Epsilons or Objectives),
// otherwise ErrEmptyInput.
//
// Complexity: O(N·A·M) — N total rows, A archive size, M objectives.
func Sort(tables []Table, opts Options) (*eparchive.Archive, error) {
	var (
		arch    *eparchive.Archive
		flipPos []int
		err     error
	)

	for ti, table := range tables {
		row := 0
		for {
			fields, nerr := table.Next()
			if errors.Is(nerr, io.EOF) {
				break
			}
			row++
			if nerr != nil {
				return nil, &RowError{Table: ti, Row: row, Err: nerr}
			}

			objectives, perr := parseObjectives(fields, opts.Objectives)
			if perr != nil {
				return nil, &RowError{Table: ti, Row: row, Err: perr}
			}

			// First data row fixes the dimensionality.
			if arch == nil {
				if arch, flipPos, err = newArchive(len(objectives), opts); err != nil {
					return nil, err
				}
			}

			for _, p := range flipPos {
				objectives[p] = -objectives[p]
			}

			if ierr := arch.Insert(objectives, fields); ierr != nil {
				return nil, &RowError{Table: ti, Row: row, Err: ierr}
			}
		}
	}

	if arch == nil {
		// No rows anywhere: build an empty archive if opts pins the
		// objective count, otherwise there is nothing to infer from.
		nobj := len(opts.Objectives)
		if nobj == 0 {
			nobj = len(opts.Epsilons)
		}
		if nobj == 0 {
			return nil, ErrEmptyInput
		}
		if arch, _, err = newArchive(nobj, opts); err != nil {
			return nil, err
		}
	}

	return arch, nil
}

// SortSolutions sorts pre-parsed candidates.  The epsilon vector is
// required and fixes the number of objectives, exactly as with
// eparchive.New.  A defective solution aborts the sort with its
// zero-based position wrapped around the archive's error.
func SortSolutions(solutions []Solution, epsilons []float64, archOpts eparchive.Options) (*eparchive.Archive, error) {
	arch, err := eparchive.New(epsilons, archOpts)
	if err != nil {
		return nil, err
	}
	for i, s := range solutions {
		if err = arch.Insert(s.Objectives, s.Tag); err != nil {
			return nil, fmt.Errorf("epsort: solution %d: %w", i, err)
		}
	}

	return arch, nil
}

// newArchive builds the archive once dimensionality is known, resolving
// epsilon defaults and maximize columns.  Returns the archive and the
// vector positions to sign-flip on every insertion.
func newArchive(nobj int, opts Options) (*eparchive.Archive, []int, error) {
	epsilons := opts.Epsilons
	if epsilons == nil {
		epsilons = make([]float64, nobj)
		for i := range epsilons {
			epsilons[i] = defaultEpsilon
		}
	} else if len(epsilons) != nobj {
		return nil, nil, fmt.Errorf("epsort: %d epsilons for %d objectives: %w",
			len(epsilons), nobj, ErrEpsilonCount)
	}

	flipPos, err := resolveFlips(nobj, opts)
	if err != nil {
		return nil, nil, err
	}

	arch, err := eparchive.New(epsilons, opts.Archive)
	if err != nil {
		return nil, nil, err
	}

	return arch, flipPos, nil
}

// resolveFlips maps maximize column indices onto objective-vector
// positions.  With MaximizeAll every position flips; otherwise each
// maximize column must be an objective column.
func resolveFlips(nobj int, opts Options) ([]int, error) {
	if opts.MaximizeAll {
		all := make([]int, nobj)
		for i := range all {
			all[i] = i
		}

		return all, nil
	}
	if len(opts.Maximize) == 0 {
		return nil, nil
	}

	flips := make([]int, 0, len(opts.Maximize))
	for _, col := range opts.Maximize {
		pos := -1
		if opts.Objectives == nil {
			if col >= 0 && col < nobj {
				pos = col
			}
		} else {
			for p, oc := range opts.Objectives {
				if oc == col {
					pos = p

					break
				}
			}
		}
		if pos < 0 {
			return nil, fmt.Errorf("epsort: column %d: %w", col, ErrMaximizeColumn)
		}
		flips = append(flips, pos)
	}

	return flips, nil
}

// parseObjectives extracts and parses the objective columns of one row.
// cols == nil selects every field.
func parseObjectives(fields []string, cols []int) ([]float64, error) {
	if cols == nil {
		out := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: column %d value %q", ErrNotNumeric, i, f)
			}
			out[i] = v
		}

		return out, nil
	}

	out := make([]float64, len(cols))
	for i, c := range cols {
		if c < 0 || c >= len(fields) {
			return nil, fmt.Errorf("%w: column %d, row has %d fields", ErrColumnRange, c, len(fields))
		}
		v, err := strconv.ParseFloat(fields[c], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %d value %q", ErrNotNumeric, c, fields[c])
		}
		out[i] = v
	}

	return out, nil
}
