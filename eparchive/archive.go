package eparchive

import "math"

// entry is one archived solution.  The box is cached at insertion so it
// never needs recomputation during later comparisons.
type entry struct {
	objectives []float64
	tag        any
	box        []float64
}

// Archive holds the current epsilon-nondominated set.  The epsilon
// vector is fixed at construction; its length defines the number of
// objectives for the archive's entire lifetime.  Not safe for
// concurrent mutation.
type Archive struct {
	epsilons []float64
	nobj     int
	entries  []entry
	onEvent  func(Event)
}

// New constructs an empty archive from a vector of box widths, one per
// objective.  Returns ErrNoEpsilons if the vector is empty and
// ErrNonPositiveEpsilon if any width is zero or negative (both unwrap
// to ErrParameter).  The epsilon slice is copied; the caller keeps
// ownership of its argument.
func New(epsilons []float64, opts Options) (*Archive, error) {
	if len(epsilons) == 0 {
		return nil, ErrNoEpsilons
	}
	for _, eps := range epsilons {
		if !(eps > 0) { // rejects zero, negatives and NaN alike
			return nil, ErrNonPositiveEpsilon
		}
	}
	a := &Archive{
		epsilons: append([]float64(nil), epsilons...),
		nobj:     len(epsilons),
		onEvent:  opts.OnEvent,
	}

	return a, nil
}

// Insert offers one candidate solution to the archive.
//
// The candidate's box is compared against every current entry's box in
// one pass:
//   - mutually nondominated boxes: move on to the next entry
//   - candidate's box dominated: discard the candidate, stop immediately
//   - resident's box dominated: remove the resident and keep scanning
//   - identical boxes: the solution with the smaller squared Euclidean
//     distance to the box's lower corner wins; an exact tie keeps the
//     resident
//
// A candidate that survives every comparison is appended.  The tag
// rides along uninspected and is returned verbatim by Tags; the archive
// does not copy it, so callers must not mutate shared backing storage
// afterwards.
//
// Errors: *DimensionError if len(objectives) != NumObjectives(),
// *ValueError if any objective is NaN or infinite.  A failed Insert
// never mutates the archive.
//
// Complexity: O(Len()·NumObjectives()) comparisons worst case.
func (a *Archive) Insert(objectives []float64, tag any) error {
	// 1) Validate before touching any state: reject-or-succeed is atomic.
	if len(objectives) != a.nobj {
		return &DimensionError{Expected: a.nobj, Actual: len(objectives)}
	}
	for i, v := range objectives {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValueError{Index: i, Value: v}
		}
	}

	// 2) Copy the vector (the archive owns its storage) and derive the box.
	sobj := append([]float64(nil), objectives...)
	sbox := make([]float64, a.nobj)
	for i := range sobj {
		sbox[i] = math.Floor(sobj[i] / a.epsilons[i])
	}

	// 3) One pass over the archive.  The index advances only when the
	//    current resident survives: a removal shifts the next entry into
	//    slot ai, so staying put neither skips nor revisits anyone.
	ai := 0
	for ai < len(a.entries) {
		abox := a.entries[ai].box

		// 3a) Componentwise box comparison.
		var adominate, sdominate, nondominate bool
		for oo := 0; oo < a.nobj; oo++ {
			if abox[oo] < sbox[oo] {
				adominate = true
				if sdominate {
					nondominate = true
					break
				}
			} else if abox[oo] > sbox[oo] {
				sdominate = true
				if adominate {
					nondominate = true
					break
				}
			}
		}

		switch {
		case nondominate:
			// 3b) Neither box dominates: the resident stays, scan on.
			ai++
		case adominate:
			// 3c) The candidate's box is dominated: discard it, done.
			a.emit(EventDominatedByArchive, sobj, tag)

			return nil
		case sdominate:
			// 3d) The resident's box is dominated: remove it, scan on.
			a.removeAt(ai, EventRemovedDominated)
		default:
			// 3e) Same box: closer to the lower corner wins; the resident
			//     keeps an exact distance tie.
			sdist := a.cornerDistance(sobj, sbox)
			adist := a.cornerDistance(a.entries[ai].objectives, sbox)
			if sdist < adist {
				a.removeAt(ai, EventRemovedSameBox)
			} else {
				a.emit(EventRejectedSameBox, sobj, tag)

				return nil
			}
		}
	}

	// 4) No resident dominated the candidate: append it.
	a.entries = append(a.entries, entry{objectives: sobj, tag: tag, box: sbox})
	a.emit(EventAccepted, sobj, tag)

	return nil
}

// removeAt drops the entry at index i, preserving the order of the
// remaining entries, and reports the removal.
func (a *Archive) removeAt(i int, kind EventKind) {
	removed := a.entries[i]
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
	a.emit(kind, removed.objectives, removed.tag)
}

// cornerDistance returns the squared Euclidean distance from obj to the
// lower corner of box (corner[i] = box[i]·epsilon[i]).
func (a *Archive) cornerDistance(obj, box []float64) float64 {
	var sum float64
	for i := range obj {
		d := obj[i] - box[i]*a.epsilons[i]
		sum += d * d
	}

	return sum
}

// emit invokes the event callback if one is configured.
func (a *Archive) emit(kind EventKind, objectives []float64, tag any) {
	if a.onEvent != nil {
		a.onEvent(Event{Kind: kind, Objectives: objectives, Tag: tag})
	}
}

// Len returns the number of entries currently in the archive.
func (a *Archive) Len() int { return len(a.entries) }

// NumObjectives returns the archive's fixed number of objectives.
func (a *Archive) NumObjectives() int { return a.nobj }

// Epsilons returns a copy of the archive's epsilon vector.
func (a *Archive) Epsilons() []float64 {
	return append([]float64(nil), a.epsilons...)
}

// Objectives returns the surviving objective vectors in insertion order
// among survivors.  Rows are copies; mutating them does not affect the
// archive.
func (a *Archive) Objectives() [][]float64 {
	out := make([][]float64, len(a.entries))
	for i, e := range a.entries {
		out[i] = append([]float64(nil), e.objectives...)
	}

	return out
}

// Tags returns the surviving tag-along payloads, parallel to
// Objectives.  Tags are returned verbatim, by reference.
func (a *Archive) Tags() []any {
	out := make([]any, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.tag
	}

	return out
}

// Boxes returns the surviving entries' grid coordinates, parallel to
// Objectives.  Coordinates are integer-valued float64s
// (floor(objective/epsilon)).  Rows are copies.
func (a *Archive) Boxes() [][]float64 {
	out := make([][]float64, len(a.entries))
	for i, e := range a.entries {
		out[i] = append([]float64(nil), e.box...)
	}

	return out
}
