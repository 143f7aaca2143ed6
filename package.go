// Package genawaiter provides resumable generators: routines written as
// ordinary straight-line functions that pause at explicit yield points,
// hand a value to their caller, and are later resumed with a new input
// while all of their local state is preserved.
//
// A generator is created with New, which takes the routine as a function
// receiving a Co, the suspension handle. The routine yields through the
// handle; the caller drives it one pause at a time through the returned
// Gen:
//
//	gen := genawaiter.New(func(co *genawaiter.Co[int, struct{}]) string {
//		for n := 1; n < 10; n += 2 {
//			co.Yield(n)
//		}
//		return "done"
//	})
//
//	for st := gen.Resume(); ; st = gen.Resume() {
//		if st.Done() {
//			// st.Result() == "done"
//			break
//		}
//		// st.Value() is 1, 3, 5, 7, 9 in turn
//	}
//
// Each resume runs the routine until its next Yield or until it returns,
// and reports the exchanged value as a GeneratorState. ResumeWith passes a
// value back into the routine, becoming the return value of its pending
// Yield; ResumeContext bounds the wait with a context for callers that are
// themselves suspension-capable. Callers that only want the yielded values
// can range over Seq instead.
//
// Nothing runs in the background: the routine lives on its own goroutine
// but executes only between a resume and the next pause, strictly
// alternating turns with its driver. Generators are independent of each
// other, and a single generator may be driven from changing goroutines when
// constructed with the Shared option.
//
// Misuse of the pause protocol (overlapping yields, yielding from a foreign
// routine, using an escaped handle after its generator is gone) is detected
// and reported by panics naming the violated rule; see Co.Yield.
package genawaiter
