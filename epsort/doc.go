// Package epsort drives epsilon-nondominated sorts over one or more row
// sources, feeding the eparchive core.
//
// 🚀 What does the driver add on top of eparchive?
//
//	The archive consumes plain (objective-vector, tag-along) pairs.  Real
//	inputs are tables of delimited text: the driver walks every table in
//	order, selects the objective columns, parses them, applies
//	maximization sign-flips, infers dimensionality from the first data
//	row when no columns were named, defaults epsilons to 1e-9 when none
//	were given, and attaches each raw row as the tag-along so survivors
//	can be printed back verbatim.
//
// ✨ Key features:
//   - Sort         — sequential multi-table sort, deterministic for a
//     fixed table order
//   - SortSolutions — entry point for pre-parsed numeric candidates
//   - SortSharded  — optional coarse-grained parallelism: one archive
//     per table via errgroup, merged pairwise by re-insertion
//   - RowError     — failures carry table index and 1-based row number
//     so callers can name the offending file and line
//
// ⚙️ Usage:
//
//	tables := []epsort.Table{
//	    tabular.NewReader(f1, tabular.DefaultOptions()),
//	    tabular.NewReader(f2, tabular.DefaultOptions()),
//	}
//	opts := epsort.DefaultOptions()
//	opts.Objectives = []int{0, 1, 2}
//	opts.Epsilons = []float64{0.05, 0.05, 1.0}
//	arch, err := epsort.Sort(tables, opts)
//
// Error handling: a malformed row (non-numeric value, missing column,
// ragged width) aborts the sort with a *RowError; previously accepted
// entries are untouched, per the archive's atomic insert guarantee.
//
// Determinism: Sort inserts strictly sequentially.  SortSharded keeps
// per-box winners dependent on merge order, the same documented
// order-sensitivity carried by any incremental epsilon-archive; the
// surviving box set is identical either way.
package epsort
