// Package tabular reads and writes delimited text tables of candidate
// solutions, lazily, one row at a time.
//
// 🚀 Role in the module:
//
//	Optimization outputs arrive as whitespace- or tab-delimited text
//	files, often with comment lines, headers, and blank separators.
//	tabular turns any io.Reader into a stream of string-field rows
//	(implementing epsort.Table) and writes surviving rows back out.
//
// ✨ Key features:
//   - lazy line iteration — files are never read whole into memory
//   - configurable delimiter (space by default, tabs via options)
//   - row filtering: skip N header lines, skip blanks, skip rows whose
//     first field starts with any comment prefix
//   - provenance tagging: append the source name and, optionally, the
//     1-based line number to every row, so each surviving solution can
//     be traced back to its origin
//
// ⚙️ Usage:
//
//	opts := tabular.DefaultOptions()
//	opts.Comment = []string{"#"}
//	opts.Contribution = "runs/a.txt"
//	opts.LineNumbers = true
//	rd := tabular.NewReader(f, opts)
//	for {
//	    row, err := rd.Next()
//	    if errors.Is(err, io.EOF) { break }
//	    ...
//	}
//
// Filtering notes: a blank row that is not skipped is passed through as
// a single empty field and will fail numeric parsing downstream — the
// caller opted out of silent tolerance.  Line numbers count physical
// lines of the source, including skipped ones, so they match what an
// editor shows.
package tabular
