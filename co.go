package genawaiter

import (
	"runtime"
	"sync/atomic"

	"github.com/doytsujin/genawaiter/internal/gls"
)

// Co is the suspension handle passed to a generator's routine. Its only
// operation is Yield, which hands a value to the driver and pauses the
// routine until the driver resumes it. A Co belongs to the routine that
// received it as an argument; it is not meant to outlive the routine, and
// every use outside of that protocol is detected and reported by a panic
// naming the violated rule.
type Co[Y, S any] struct {
	box  engine[Y, S]
	next chan struct{}

	// pending is set for the duration of one Yield, from entry until the
	// routine has been resumed. A second Yield observing it means the
	// routine tried to hold two pauses open at once.
	pending atomic.Bool

	// done is set when the routine completed or was released, after which
	// the handle has no driver left to resume it.
	done atomic.Bool

	// stop is written by the driver before a resume, and read by the
	// routine after the rendezvous, so it needs no synchronization of its
	// own.
	stop bool
}

// Yield hands v to the driver and pauses the routine until the driver calls
// Resume (or one of its variants) on the generator again, at which point it
// returns the resume argument supplied with that call, or the zero value of
// S if none was supplied.
//
// The first resume argument, supplied before the routine reached its first
// Yield, is discarded: there is no pause it could resume.
//
// Yield panics when invoked outside of its single-use protocol: after the
// owning generator completed or was released, while a previous yield is
// still waiting to be resumed, from a goroutine that is not the generator's
// own routine, or after the generator was stopped.
func (co *Co[Y, S]) Yield(v Y) S {
	if co.done.Load() {
		panic("genawaiter: Co used after its generator was released")
	}
	if cur := gls.Context().Load(); cur != any(co) {
		// A foreign caller is diagnosed without touching the pending flag,
		// so that it cannot corrupt the routine's own protocol state. Two
		// pauses held open at once is the dominant violation; otherwise the
		// caller's identity names the rule.
		if co.pending.Load() {
			panic("genawaiter: Co.Yield called again before the previous yield was resumed")
		}
		if cur == nil {
			panic("genawaiter: Co.Yield called outside of a generator routine")
		}
		panic("genawaiter: Co.Yield called from inside another generator's routine")
	}
	if !co.pending.CompareAndSwap(false, true) {
		panic("genawaiter: Co.Yield called again before the previous yield was resumed")
	}
	if co.stop {
		panic("genawaiter: cannot yield from a generator that has been stopped")
	}
	co.box.clearResume()
	co.box.putYield(v)
	co.next <- struct{}{}
	<-co.next
	if co.stop {
		runtime.Goexit()
	}
	co.pending.Store(false)
	return co.box.takeResume()
}

// Yield hands v to the driver of the generator whose routine is running on
// the calling goroutine, without requiring access to its Co. See Co.Yield
// for the pause semantics.
//
// The function panics when called on a goroutine that is not a generator
// routine, or if the type parameters do not match those of the generator.
func Yield[Y, S any](v Y) S {
	switch co := gls.Context().Load().(type) {
	case *Co[Y, S]:
		return co.Yield(v)
	case nil:
		panic("genawaiter: Yield: not called from a generator routine")
	default:
		panic("genawaiter: Yield: generator type mismatch")
	}
}
