// Package eparchive maintains an archive of epsilon-nondominated
// solutions: the minimal representative subset of a multi-objective
// candidate stream under epsilon-dominance.
//
// 🚀 What is an epsilon-dominance archive?
//
//	Each solution is an ordered vector of objective values, all
//	minimization-oriented.  A vector of positive box widths (epsilons,
//	one per objective) discretizes objective space into a grid; a
//	solution's "box" is floor(objective[i]/epsilon[i]) per objective.
//	Boxes are compared componentwise: a box that is ≤ another in every
//	coordinate and < in at least one dominates it.  The archive accepts
//	a stream of solutions one at a time and keeps only those whose boxes
//	are mutually nondominated — with at most one survivor per box.
//
// ✨ Key features:
//   - single-pass insertion: each candidate is compared against the
//     current archive exactly once, O(archive × objectives)
//   - safe mid-scan removal: entries dominated by the candidate are
//     dropped without skipping or revisiting neighbors
//   - deterministic same-box tie-break: the solution closer (squared
//     Euclidean distance) to the box's lower corner wins; an exact
//     distance tie keeps the earlier-inserted resident
//   - opaque tag-along payloads: provenance or whole input rows ride
//     along uninspected and come back out verbatim
//   - optional event callback for tracing accept/reject/removal
//     decisions (Options.OnEvent)
//
// ⚙️ Usage:
//
//	arch, err := eparchive.New([]float64{0.5, 0.5}, eparchive.DefaultOptions())
//	if err != nil { ... }
//	if err := arch.Insert([]float64{0.1, 0.9}, "run-A:17"); err != nil { ... }
//	fmt.Println(arch.Objectives(), arch.Tags())
//
// Guarantees after any sequence of Insert calls:
//   - no entry's box componentwise-dominates another entry's box
//   - no two entries share a box
//   - entries appear in insertion order among survivors (removals drop
//     entries without re-sorting)
//   - a failed Insert leaves the archive untouched
//
// Determinism: results are fully determined by the insertion order.
// Different orders can keep different representatives of the same box
// (only the first-seen winner stays resident to compete with later
// arrivals); this is an accepted property of incremental
// epsilon-archiving, not a defect.
//
// The archive is not safe for concurrent mutation.  Interleave multiple
// sources into one sequential insertion stream, or guard the archive
// with external locking.  See the epsort package for a driver that does
// this, including an optional sharded parallel sort.
//
// Complexity:
//
//	Insert:  O(A·M) worst case, A = archive size, M = objectives
//	Full sort of N candidates: O(N·A·M)
//
// No spatial index is used — a deliberate simplicity/correctness
// trade-off appropriate for archives in the thousands of entries.
package eparchive
