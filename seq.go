package genawaiter

import "iter"

// Seq adapts the generator to a lazy, pull-based sequence of its yielded
// values, for callers with no interest in the final result or in resume
// arguments: each pull performs one Resume, and completion ends the
// sequence, discarding the routine's result (callers needing it must drive
// the generator directly).
//
// The sequence is not restartable: ranging over it again after exhaustion
// produces nothing. Breaking out of the range leaves the generator
// suspended; it may be resumed again, ranged again, or stopped. A routine
// that never returns produces an infinite sequence, which is a supported
// use: bound consumption by breaking out of the range.
func (g Gen[Y, S, R]) Seq() iter.Seq[Y] {
	return func(yield func(Y) bool) {
		for !g.Done() {
			st := g.Resume()
			if st.Done() || !yield(st.Value()) {
				return
			}
		}
	}
}
