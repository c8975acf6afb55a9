package art

import (
	"github.com/matzehuels/threadart/pkg/errors"
)

// Point is a nail position in the unit square.
type Point struct {
	X float64
	Y float64
}

// Art pairs a nail layout with a thread path. It is the in-memory form of
// one thread art file: Nails is the ordered layout (index = nail identity)
// and Thread is the ordered list of nail indices the thread visits.
type Art struct {
	Nails  []Point
	Thread []int
}

// Segments returns the number of line segments the thread draws.
// A path with fewer than two points draws nothing.
func (a Art) Segments() int {
	if len(a.Thread) < 2 {
		return 0
	}
	return len(a.Thread) - 1
}

// Validate checks the semantic invariants of loaded thread art data:
// every nail coordinate must lie in [0,1], and every thread entry must be
// a valid index into Nails. Nails are scanned before the thread, each in
// order, and the first offending entry is reported with its index.
//
// Thread entries may repeat and the thread may be empty; neither is an
// error.
func Validate(a Art) error {
	for i, n := range a.Nails {
		// Negated form so NaN coordinates fail the check too.
		if !(n.X >= 0 && n.X <= 1) || !(n.Y >= 0 && n.Y <= 1) {
			return errors.New(errors.ErrCodeInvalidNail,
				"nail %d: coordinates must be in unit square [0,1], got (%v, %v)", i, n.X, n.Y)
		}
	}
	for i, idx := range a.Thread {
		if idx < 0 || idx >= len(a.Nails) {
			return errors.New(errors.ErrCodeInvalidThreadIndex,
				"thread point %d: nail index %d is invalid (must be 0-%d)", i, idx, len(a.Nails)-1)
		}
	}
	return nil
}
