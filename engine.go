package genawaiter

import "sync"

// engine is the mailbox shared between the driver and the routine body: one
// cell for the value the body hands to the driver (the yield), one cell for
// the value the driver hands back into the body (the resume argument). The
// two sides strictly alternate around the rendezvous channel owned by the
// generator state, so the cells never see concurrent writers; the shared
// flavor still takes a lock so that the driver surface itself may be handed
// between goroutines without external synchronization.
type engine[Y, S any] interface {
	// putYield stores v as the pending yielded value.
	putYield(v Y)
	// takeYield removes and returns the pending yielded value. Calling it
	// with nothing pending is a bug in this package, not in the caller.
	takeYield() Y
	// pendingYield reports whether a yielded value is waiting for the
	// driver.
	pendingYield() bool
	// putResume stores the resume argument for the body to consume. Storing
	// again before the body consumed the previous argument overwrites it:
	// only the last value sent is observed.
	putResume(v S)
	// takeResume consumes the pending resume argument, or the zero value of
	// S if none was stored since the last clearResume.
	takeResume() S
	// clearResume zeroes the resume cell. The body calls it on its way into
	// a pause so that resuming without an argument delivers the zero value,
	// and so that the argument consumed next is one stored after the pause
	// became observable (the very first argument, stored before the body
	// ever paused, is deliberately discarded this way).
	clearResume()
}

// localEngine is the single-owner flavor: no synchronization beyond the
// rendezvous channel hand-off, for generators driven from one goroutine.
type localEngine[Y, S any] struct {
	yield    Y
	resume   S
	hasYield bool
}

func (e *localEngine[Y, S]) putYield(v Y) {
	e.yield = v
	e.hasYield = true
}

func (e *localEngine[Y, S]) takeYield() Y {
	if !e.hasYield {
		panic("genawaiter: no yielded value pending")
	}
	v := e.yield
	var zero Y
	e.yield = zero
	e.hasYield = false
	return v
}

func (e *localEngine[Y, S]) pendingYield() bool { return e.hasYield }

func (e *localEngine[Y, S]) putResume(v S) { e.resume = v }

func (e *localEngine[Y, S]) takeResume() S {
	v := e.resume
	var zero S
	e.resume = zero
	return v
}

func (e *localEngine[Y, S]) clearResume() {
	var zero S
	e.resume = zero
}

// sharedEngine is the cross-goroutine flavor: the same cells guarded by a
// mutex, selected with the Shared option.
type sharedEngine[Y, S any] struct {
	mu       sync.Mutex
	yield    Y
	resume   S
	hasYield bool
}

func (e *sharedEngine[Y, S]) putYield(v Y) {
	e.mu.Lock()
	e.yield = v
	e.hasYield = true
	e.mu.Unlock()
}

func (e *sharedEngine[Y, S]) takeYield() Y {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasYield {
		panic("genawaiter: no yielded value pending")
	}
	v := e.yield
	var zero Y
	e.yield = zero
	e.hasYield = false
	return v
}

func (e *sharedEngine[Y, S]) pendingYield() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasYield
}

func (e *sharedEngine[Y, S]) putResume(v S) {
	e.mu.Lock()
	e.resume = v
	e.mu.Unlock()
}

func (e *sharedEngine[Y, S]) takeResume() S {
	e.mu.Lock()
	defer e.mu.Unlock()
	v := e.resume
	var zero S
	e.resume = zero
	return v
}

func (e *sharedEngine[Y, S]) clearResume() {
	e.mu.Lock()
	var zero S
	e.resume = zero
	e.mu.Unlock()
}
