package eparchive_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pareto/eparchive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew builds an archive or fails the test.
func mustNew(t *testing.T, epsilons []float64) *eparchive.Archive {
	t.Helper()
	arch, err := eparchive.New(epsilons, eparchive.DefaultOptions())
	require.NoError(t, err, "archive construction should succeed")

	return arch
}

// assertInvariants verifies the archive invariant: no pairwise box
// domination and at most one entry per box.
func assertInvariants(t *testing.T, arch *eparchive.Archive) {
	t.Helper()
	boxes := arch.Boxes()
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			assert.False(t, boxDominates(boxes[i], boxes[j]),
				"box %v must not dominate box %v", boxes[i], boxes[j])
			assert.False(t, boxDominates(boxes[j], boxes[i]),
				"box %v must not dominate box %v", boxes[j], boxes[i])
			assert.NotEqual(t, boxes[i], boxes[j], "boxes must be unique")
		}
	}
}

// boxDominates reports whether box a componentwise-dominates box b
// (a ≤ b everywhere, strict in at least one coordinate).
func boxDominates(a, b []float64) bool {
	strict := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strict = true
		}
	}

	return strict
}

// TestNew_EmptyEpsilons verifies that an empty epsilon vector is rejected
// as a parameter error.
func TestNew_EmptyEpsilons(t *testing.T) {
	_, err := eparchive.New(nil, eparchive.DefaultOptions())
	assert.ErrorIs(t, err, eparchive.ErrNoEpsilons, "nil epsilons must error")
	assert.ErrorIs(t, err, eparchive.ErrParameter, "ErrNoEpsilons unwraps to ErrParameter")

	_, err = eparchive.New([]float64{}, eparchive.DefaultOptions())
	assert.ErrorIs(t, err, eparchive.ErrNoEpsilons, "empty epsilons must error")
}

// TestNew_NonPositiveEpsilon verifies that zero, negative and NaN box
// widths are rejected: they would degenerate the box mapping.
func TestNew_NonPositiveEpsilon(t *testing.T) {
	for _, eps := range [][]float64{
		{1.0, 0.0},
		{-0.5},
		{1.0, math.NaN()},
	} {
		_, err := eparchive.New(eps, eparchive.DefaultOptions())
		assert.ErrorIs(t, err, eparchive.ErrNonPositiveEpsilon, "epsilons %v must error", eps)
		assert.ErrorIs(t, err, eparchive.ErrParameter, "unwraps to ErrParameter")
	}
}

// TestNew_CopiesEpsilons verifies the archive does not alias the
// caller's epsilon slice.
func TestNew_CopiesEpsilons(t *testing.T) {
	eps := []float64{1.0, 2.0}
	arch := mustNew(t, eps)
	eps[0] = 99.0
	assert.Equal(t, []float64{1.0, 2.0}, arch.Epsilons(), "mutating the argument must not affect the archive")
}

// TestInsert_DimensionMismatch verifies a wrong-length vector fails with
// DimensionError and never mutates the archive.
func TestInsert_DimensionMismatch(t *testing.T) {
	arch := mustNew(t, []float64{1.0, 1.0})
	require.NoError(t, arch.Insert([]float64{0.5, 0.5}, nil))

	err := arch.Insert([]float64{0.1, 0.2, 0.3}, nil)
	assert.ErrorIs(t, err, eparchive.ErrDimension, "3 objectives into a 2-objective archive must error")

	var dimErr *eparchive.DimensionError
	require.ErrorAs(t, err, &dimErr, "error must carry expected/actual lengths")
	assert.Equal(t, 2, dimErr.Expected)
	assert.Equal(t, 3, dimErr.Actual)

	assert.Equal(t, 1, arch.Len(), "a failed insert must not mutate the archive")
	assert.Equal(t, [][]float64{{0.5, 0.5}}, arch.Objectives())
}

// TestInsert_NonFiniteValue verifies NaN and infinite objectives are
// rejected with ValueError before any state changes.
func TestInsert_NonFiniteValue(t *testing.T) {
	arch := mustNew(t, []float64{1.0, 1.0})

	err := arch.Insert([]float64{0.5, math.NaN()}, nil)
	assert.ErrorIs(t, err, eparchive.ErrValue, "NaN objective must error")

	var valErr *eparchive.ValueError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 1, valErr.Index, "error must name the offending objective")

	err = arch.Insert([]float64{math.Inf(1), 0.5}, nil)
	assert.ErrorIs(t, err, eparchive.ErrValue, "infinite objective must error")

	assert.Equal(t, 0, arch.Len(), "rejected inserts must leave the archive empty")
}

// TestInsert_SameBoxCornerDistance replays the canonical same-box
// scenario: three solutions in box (0,0); the one closest to the corner
// survives.
func TestInsert_SameBoxCornerDistance(t *testing.T) {
	arch := mustNew(t, []float64{1.0, 1.0})
	require.NoError(t, arch.Insert([]float64{0.1, 0.1}, "a"))
	require.NoError(t, arch.Insert([]float64{0.2, 0.2}, "b"))
	require.NoError(t, arch.Insert([]float64{0.9, 0.9}, "c"))

	assert.Equal(t, [][]float64{{0.1, 0.1}}, arch.Objectives(), "closest-to-corner solution survives")
	assert.Equal(t, []any{"a"}, arch.Tags())
}

// TestInsert_SameBoxOrderIndependent verifies the corner-distance winner
// survives regardless of insertion order.
func TestInsert_SameBoxOrderIndependent(t *testing.T) {
	arch := mustNew(t, []float64{1.0, 1.0})
	require.NoError(t, arch.Insert([]float64{0.9, 0.9}, "far"))
	require.NoError(t, arch.Insert([]float64{0.1, 0.1}, "near"))

	assert.Equal(t, [][]float64{{0.1, 0.1}}, arch.Objectives(), "a closer later arrival displaces the resident")
}

// TestInsert_SingleObjectiveDomination replays the single-objective
// scenario: a strictly smaller box removes the resident.
func TestInsert_SingleObjectiveDomination(t *testing.T) {
	arch := mustNew(t, []float64{1.0})
	require.NoError(t, arch.Insert([]float64{5.0}, nil))
	require.NoError(t, arch.Insert([]float64{3.0}, nil))

	assert.Equal(t, [][]float64{{3.0}}, arch.Objectives(), "smaller box dominates, resident removed")
}

// TestInsert_MutuallyNondominated verifies that trade-off boxes coexist.
func TestInsert_MutuallyNondominated(t *testing.T) {
	arch := mustNew(t, []float64{1.0, 1.0})
	require.NoError(t, arch.Insert([]float64{0.0, 2.0}, nil))
	require.NoError(t, arch.Insert([]float64{2.0, 0.0}, nil))

	assert.Equal(t, 2, arch.Len(), "boxes (0,2) and (2,0) are mutually nondominated")
	assert.Equal(t, [][]float64{{0.0, 2.0}, {2.0, 0.0}}, arch.Objectives(), "insertion order preserved")
}

// TestInsert_ExactTieFavorsResident verifies that an exact corner-distance
// tie keeps the earlier-inserted solution, and that reversing the order
// therefore changes the survivor.
func TestInsert_ExactTieFavorsResident(t *testing.T) {
	// (0.3,0.4) and (0.4,0.3) share box (0,0) at squared distance 0.25.
	first := []float64{0.3, 0.4}
	second := []float64{0.4, 0.3}

	arch := mustNew(t, []float64{1.0, 1.0})
	require.NoError(t, arch.Insert(first, "first"))
	require.NoError(t, arch.Insert(second, "second"))
	assert.Equal(t, []any{"first"}, arch.Tags(), "resident wins an exact distance tie")

	arch = mustNew(t, []float64{1.0, 1.0})
	require.NoError(t, arch.Insert(second, "second"))
	require.NoError(t, arch.Insert(first, "first"))
	assert.Equal(t, []any{"second"}, arch.Tags(), "reversed order flips the survivor of an exact tie")
}

// TestInsert_MultipleRemovalsOneScan verifies that a candidate dominating
// several consecutive residents removes all of them without skipping any.
func TestInsert_MultipleRemovalsOneScan(t *testing.T) {
	arch := mustNew(t, []float64{1.0, 1.0})
	// Boxes (5,0), (4,1), (3,2): pairwise nondominated, all admitted.
	require.NoError(t, arch.Insert([]float64{5.5, 0.5}, nil))
	require.NoError(t, arch.Insert([]float64{4.5, 1.5}, nil))
	require.NoError(t, arch.Insert([]float64{3.5, 2.5}, nil))
	require.Equal(t, 3, arch.Len())

	// Box (0,0) dominates every resident.
	require.NoError(t, arch.Insert([]float64{0.5, 0.5}, nil))
	assert.Equal(t, [][]float64{{0.5, 0.5}}, arch.Objectives(), "all dominated residents removed in one scan")
}

// TestInsert_DominatedCandidateStopsEarly verifies a dominated candidate
// is discarded without disturbing any resident.
func TestInsert_DominatedCandidateStopsEarly(t *testing.T) {
	arch := mustNew(t, []float64{1.0})
	require.NoError(t, arch.Insert([]float64{-0.5}, nil)) // box -1

	require.NoError(t, arch.Insert([]float64{0.5}, nil)) // box 0, dominated
	assert.Equal(t, [][]float64{{-0.5}}, arch.Objectives(), "dominated candidate discarded, resident intact")
}

// TestInsert_CopiesObjectives verifies the archive owns its stored
// vectors: mutating the caller's slice after Insert has no effect.
func TestInsert_CopiesObjectives(t *testing.T) {
	arch := mustNew(t, []float64{1.0, 1.0})
	obj := []float64{0.5, 0.5}
	require.NoError(t, arch.Insert(obj, nil))
	obj[0] = 99.0

	assert.Equal(t, [][]float64{{0.5, 0.5}}, arch.Objectives(), "archive must copy inserted vectors")
}

// TestInsert_TagPassthrough verifies tag-alongs are held by reference
// and returned verbatim, uninspected.
func TestInsert_TagPassthrough(t *testing.T) {
	arch := mustNew(t, []float64{1.0, 1.0})
	tag := &struct{ Source string }{Source: "run-7"}
	require.NoError(t, arch.Insert([]float64{0.5, 0.5}, tag))

	tags := arch.Tags()
	require.Len(t, tags, 1)
	assert.Same(t, tag, tags[0], "tag must come back as the same reference")
}

// TestInsert_InvariantsRandomStream inserts a deterministic pseudo-random
// stream and checks the archive invariant afterwards.
func TestInsert_InvariantsRandomStream(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	arch := mustNew(t, []float64{0.25, 0.25, 0.25})

	for i := 0; i < 2000; i++ {
		obj := []float64{rng.Float64() * 4, rng.Float64() * 4, rng.Float64() * 4}
		require.NoError(t, arch.Insert(obj, i))
	}

	require.Greater(t, arch.Len(), 1, "stream should keep a nontrivial frontier")
	assertInvariants(t, arch)
}

// TestInsert_Idempotence verifies that re-inserting an archive's own
// contents into a fresh archive with the same epsilons reproduces the
// identical surviving set.
func TestInsert_Idempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	eps := []float64{0.5, 0.5}
	first := mustNew(t, eps)
	for i := 0; i < 500; i++ {
		require.NoError(t, first.Insert([]float64{rng.Float64() * 3, rng.Float64() * 3}, i))
	}

	second := mustNew(t, eps)
	objs := first.Objectives()
	tags := first.Tags()
	for i := range objs {
		require.NoError(t, second.Insert(objs[i], tags[i]))
	}

	assert.Equal(t, first.Objectives(), second.Objectives(), "re-insertion must be idempotent")
	assert.Equal(t, first.Tags(), second.Tags())
}

// TestOptions_OnEvent verifies the trace callback reports each archive
// decision in order.
func TestOptions_OnEvent(t *testing.T) {
	var kinds []eparchive.EventKind
	opts := eparchive.Options{OnEvent: func(ev eparchive.Event) {
		kinds = append(kinds, ev.Kind)
	}}
	arch, err := eparchive.New([]float64{1.0, 1.0}, opts)
	require.NoError(t, err)

	require.NoError(t, arch.Insert([]float64{0.9, 0.9}, nil)) // accepted
	require.NoError(t, arch.Insert([]float64{0.1, 0.1}, nil)) // removes resident (same box), accepted
	require.NoError(t, arch.Insert([]float64{0.5, 0.5}, nil)) // rejected (same box, farther)
	require.NoError(t, arch.Insert([]float64{2.5, 2.5}, nil)) // dominated by (0,0)

	assert.Equal(t, []eparchive.EventKind{
		eparchive.EventAccepted,
		eparchive.EventRemovedSameBox,
		eparchive.EventAccepted,
		eparchive.EventRejectedSameBox,
		eparchive.EventDominatedByArchive,
	}, kinds, "event stream must mirror archive decisions")
}

// TestBoxes_NegativeObjectives verifies box coordinates round toward
// negative infinity, not toward zero.
func TestBoxes_NegativeObjectives(t *testing.T) {
	arch := mustNew(t, []float64{1.0})
	require.NoError(t, arch.Insert([]float64{-0.5}, nil))

	assert.Equal(t, [][]float64{{-1.0}}, arch.Boxes(), "floor(-0.5/1.0) = -1")
}
