// Package pareto performs epsilon-nondominated (epsilon-Pareto) sorting:
// it filters streams of multi-objective candidate solutions down to a
// minimal archive representing the Pareto frontier at a chosen resolution.
//
// 🚀 What is epsilon-nondominated sorting?
//
//	Multi-objective optimization runs (evolutionary algorithms, parameter
//	sweeps) emit thousands-to-millions of candidate solutions.  Exact
//	Pareto sorting keeps every nondominated point, which is often far too
//	many.  Epsilon-dominance coarsens the comparison: objective space is
//	discretized into boxes of configurable width (epsilon per objective),
//	and at most one representative survives per occupied nondominated box.
//
// ✨ What the module provides:
//   - eparchive/ — the epsilon-dominance archive: the core insertion
//     algorithm with exact, deterministic tie-breaking
//   - epsort/    — the sort driver: multi-source iteration, objective
//     column selection, maximization sign-flips, sharded parallel sorts
//   - tabular/   — delimited text rows: lazy reading, comment/header/blank
//     filtering, provenance tagging, output writing
//   - cmd/pareto — the command-line front end
//
// ⚙️ Quick start:
//
//	arch, _ := eparchive.New([]float64{0.1, 0.1}, eparchive.DefaultOptions())
//	for _, s := range candidates {
//	    _ = arch.Insert(s.Objectives, s.Tag)
//	}
//	frontier := arch.Objectives() // surviving nondominated set
//
// Or from the shell:
//
//	pareto runs/*.txt -o 0-2 -e 0.05 0.05 1.0 --contribution > frontier.txt
//
// The archive holds, after any sequence of insertions, a set of entries
// whose boxes are mutually nondominated, with at most one entry per box.
// Results are deterministic for a fixed insertion order; see eparchive's
// package documentation for the same-box tie-break rules.
package pareto
