package genawaiter

import (
	"github.com/doytsujin/genawaiter/internal/gls"
)

// Gen instances expose APIs allowing the program to drive the execution of
// generators.
//
// The type parameter Y represents the type of values that the program can
// receive from the routine (what it yields), S is what the program can send
// back to a pause point, and R is the type of the routine's final result.
//
// A Gen is a small value holding a pointer to the generator's pinned state;
// it may be freely copied, moved and stored without affecting the routine,
// whose locals live on its own goroutine for the lifetime of the instance.
type Gen[Y, S, R any] struct{ state *state[Y, S, R] }

type state[Y, S, R any] struct {
	co     *Co[Y, S]
	result R
	perr   error

	// finished is the driver's view: set once a Complete state (or the
	// routine's panic) has been reported to the caller.
	finished bool

	// inflight is set while a resumption has been handed to the routine but
	// its reply has not been collected, which outlives a single call when a
	// context-aware resume is abandoned mid-step.
	inflight bool

	// staged is the resume argument supplied with the most recent
	// ResumeWith variant, parked on the driver side until the next
	// hand-off. While a step is in flight the routine owns its turn and the
	// mailbox must not be touched from the driver side.
	staged    S
	hasStaged bool
}

// stage records arg as the resume argument for the next hand-off,
// overwriting any argument staged earlier: only the last value sent is seen
// by the routine.
func (s *state[Y, S, R]) stage(arg S) {
	s.staged = arg
	s.hasStaged = true
}

// flushStaged publishes the staged resume argument into the mailbox. It
// must only be called while the driver holds the turn, immediately before a
// hand-off.
func (s *state[Y, S, R]) flushStaged() {
	if s.hasStaged {
		s.co.box.putResume(s.staged)
		var zero S
		s.staged = zero
		s.hasStaged = false
	}
}

// Option configures a generator at construction time.
type Option func(*options)

type options struct{ shared bool }

// Shared selects the cross-goroutine mailbox flavor, allowing the driver
// surface of the generator to be handed between goroutines without external
// synchronization. Generators driven from a single goroutine do not need it
// and skip its locking cost.
func Shared() Option {
	return func(o *options) { o.shared = true }
}

// New creates a generator which executes f as its routine.
//
// The routine does not start until the first resume, and runs on its own
// goroutine, alternating turns with the driver; the two never execute
// concurrently. A generator abandoned while suspended keeps that goroutine
// parked: call Stop followed by one final resume to unwind it and run the
// routine's deferred statements.
func New[Y, S, R any](f func(*Co[Y, S]) R, opts ...Option) Gen[Y, S, R] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	co := &Co[Y, S]{next: make(chan struct{})}
	if o.shared {
		co.box = &sharedEngine[Y, S]{}
	} else {
		co.box = &localEngine[Y, S]{}
	}
	s := &state[Y, S, R]{co: co}

	go func() {
		g := gls.Context()
		g.Store(co)

		defer func() {
			if r := recover(); r != nil {
				s.perr = newPanicError(r)
			}
			co.done.Store(true)
			g.Clear()
			close(co.next)
		}()

		<-co.next

		if !co.stop {
			s.result = f(co)
		}
	}()

	return Gen[Y, S, R]{state: s}
}

// Resume executes the routine until its next pause point or until
// completion, and reports a Yielded state carrying the value handed to the
// pending Yield call, or a Complete state carrying the routine's result.
//
// Resume supplies no resume argument: the pending Yield call returns the
// zero value of S. Resuming a generator that already reported completion
// panics; if the routine itself panicked, the panic is rethrown here,
// wrapped with the routine's stack trace.
func (g Gen[Y, S, R]) Resume() GeneratorState[Y, R] {
	return g.resume()
}

// ResumeWith is Resume with a resume argument: arg becomes the return value
// of the pending Yield call. The argument supplied before the routine
// reached its first pause is discarded (see Co.Yield). Supplying multiple
// arguments for one pause does not queue them, only the last one is seen.
//
// If an abandoned context-aware resume left a step in flight, this call
// collects the outstanding reply and the argument stays parked until the
// hand-off that follows it.
func (g Gen[Y, S, R]) ResumeWith(arg S) GeneratorState[Y, R] {
	g.state.stage(arg)
	return g.resume()
}

func (g Gen[Y, S, R]) resume() GeneratorState[Y, R] {
	s := g.state
	if s.finished {
		panic("genawaiter: resume called on a completed generator")
	}
	if s.inflight {
		_, ok := <-s.co.next
		s.inflight = false
		return s.report(ok)
	}
	s.flushStaged()
	s.co.next <- struct{}{}
	s.inflight = true
	_, ok := <-s.co.next
	s.inflight = false
	return s.report(ok)
}

// report translates the routine's hand-off into a GeneratorState. ok is
// false when the routine's goroutine exited, i.e. the rendezvous channel
// was closed.
func (s *state[Y, S, R]) report(ok bool) GeneratorState[Y, R] {
	if !ok {
		s.finished = true
		if s.perr != nil {
			panic(s.perr)
		}
		return Complete[Y, R](s.result)
	}
	if !s.co.box.pendingYield() {
		panic("genawaiter: generator suspended outside of Co.Yield")
	}
	return Yielded[Y, R](s.co.box.takeYield())
}

// Stop interrupts the generator. On the next resume, the routine will not
// return from its pause point; instead it unwinds, calling each deferred
// statement in the inverse order that they were declared, and the resume
// reports completion with a zero result.
//
// Stop is idempotent, calling it multiple times or after completion of the
// generator has no effect. It is only an interrupt mechanism: a generator
// that ran to completion does not need it.
func (g Gen[Y, S, R]) Stop() { g.state.co.stop = true }

// Done returns true once the generator has reported completion to its
// driver, either because the routine returned or because it was stopped and
// unwound. Resuming a done generator panics.
func (g Gen[Y, S, R]) Done() bool { return g.state.finished }

// Run drives g to completion, calling f for each value that the routine
// yields and sending back each value that f returns, and returns the
// routine's final result.
func Run[Y, S, R any](g Gen[Y, S, R], f func(Y) S) R {
	// The generator is run to completion, but f might panic in which case
	// we don't want to leave the routine parked and interrupt it instead.
	defer func() {
		if !g.Done() {
			g.Stop()
			g.Resume()
		}
	}()

	st := g.Resume()
	for !st.Done() {
		st = g.ResumeWith(f(st.Value()))
	}
	return st.Result()
}
