package genawaiter

import "context"

// ResumeContext is the awaitable flavor of Resume, for driving a generator
// from inside another suspension-capable caller: the wait for the routine's
// next pause point is bounded by ctx instead of blocking unconditionally.
// The result semantics are identical to Resume's.
//
// Cancellation does not retract a resumption that was already handed to the
// routine: the routine keeps its turn, and the step it was given stays in
// flight. The next resume, through any of the variants, collects that
// outstanding reply instead of initiating a new one, so no yielded value is
// lost or duplicated. While the step is in flight the driver also stays off
// the mailbox: a resume argument supplied in the meantime is parked on the
// driver side and published with the hand-off that follows. Cancellation is
// therefore not a way to interrupt the routine; for that, see Stop.
//
// A context that is already canceled refuses the step before the routine is
// handed its turn.
func (g Gen[Y, S, R]) ResumeContext(ctx context.Context) (GeneratorState[Y, R], error) {
	s := g.state
	if s.finished {
		panic("genawaiter: resume called on a completed generator")
	}
	// The hand-off select below would pick at random between a ready
	// routine and a canceled context.
	select {
	case <-ctx.Done():
		return GeneratorState[Y, R]{}, ctx.Err()
	default:
	}
	if !s.inflight {
		s.flushStaged()
		select {
		case s.co.next <- struct{}{}:
			s.inflight = true
		case <-ctx.Done():
			return GeneratorState[Y, R]{}, ctx.Err()
		}
	}
	select {
	case _, ok := <-s.co.next:
		s.inflight = false
		return s.report(ok), nil
	case <-ctx.Done():
		return GeneratorState[Y, R]{}, ctx.Err()
	}
}

// ResumeWithContext is ResumeContext with a resume argument, with the same
// argument semantics as ResumeWith.
func (g Gen[Y, S, R]) ResumeWithContext(ctx context.Context, arg S) (GeneratorState[Y, R], error) {
	g.state.stage(arg)
	return g.ResumeContext(ctx)
}
