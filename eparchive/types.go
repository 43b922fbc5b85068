package eparchive

import (
	"errors"
	"fmt"
)

// Sentinel errors for archive construction and insertion.
var (
	// ErrParameter indicates invalid archive configuration.
	ErrParameter = errors.New("eparchive: invalid archive parameters")
	// ErrNoEpsilons indicates an empty epsilon vector.
	ErrNoEpsilons = fmt.Errorf("%w: epsilon vector must be non-empty", ErrParameter)
	// ErrNonPositiveEpsilon indicates an epsilon that is zero or negative.
	ErrNonPositiveEpsilon = fmt.Errorf("%w: epsilons must be strictly positive", ErrParameter)
	// ErrDimension indicates an objective vector of the wrong length.
	ErrDimension = errors.New("eparchive: objective vector length mismatch")
	// ErrValue indicates an objective value that is not a finite number.
	ErrValue = errors.New("eparchive: objective value is not a finite number")
)

// DimensionError reports an inserted objective vector whose length does
// not match the archive's fixed number of objectives.  It unwraps to
// ErrDimension.
type DimensionError struct {
	Expected int // the archive's number of objectives
	Actual   int // length of the rejected vector
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("eparchive: expected %d objectives, got %d", e.Expected, e.Actual)
}

func (e *DimensionError) Unwrap() error { return ErrDimension }

// ValueError reports a NaN or infinite objective value, which would make
// the box mapping undefined.  It unwraps to ErrValue.
type ValueError struct {
	Index int     // objective index of the offending value
	Value float64 // the offending value
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("eparchive: objective %d is %v, want a finite number", e.Index, e.Value)
}

func (e *ValueError) Unwrap() error { return ErrValue }

// EventKind identifies one archive decision during Insert.
type EventKind int

const (
	// EventAccepted: the candidate survived every comparison and was appended.
	EventAccepted EventKind = iota
	// EventDominatedByArchive: the candidate's box is dominated by a
	// resident's box; the candidate was discarded.
	EventDominatedByArchive
	// EventRemovedDominated: a resident's box is dominated by the
	// candidate's box; the resident was removed.
	EventRemovedDominated
	// EventRemovedSameBox: the candidate shares a box with a resident and
	// sits strictly closer to the box corner; the resident was removed.
	EventRemovedSameBox
	// EventRejectedSameBox: the candidate shares a box with a resident
	// that is at least as close to the box corner; the candidate was
	// discarded.
	EventRejectedSameBox
)

// String returns a short lowercase name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventAccepted:
		return "accepted"
	case EventDominatedByArchive:
		return "dominated"
	case EventRemovedDominated:
		return "removed-dominated"
	case EventRemovedSameBox:
		return "removed-same-box"
	case EventRejectedSameBox:
		return "rejected-same-box"
	default:
		return "unknown"
	}
}

// Event describes one archive decision.  For removal events the fields
// describe the removed resident; otherwise they describe the candidate.
// Objectives is the archive's own storage: callers must not mutate it.
type Event struct {
	Kind       EventKind
	Objectives []float64
	Tag        any
}

// Options configures an Archive.
//   - OnEvent — optional callback receiving one Event per archive
//     decision (accept, discard, removal).  Replaces ad-hoc debug
//     tracing; a nil callback costs nothing on the insert path.
type Options struct {
	OnEvent func(Event)
}

// DefaultOptions returns Options with no event callback.
func DefaultOptions() Options {
	return Options{}
}
