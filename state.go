package genawaiter

import "fmt"

// GeneratorState is the result of resuming a generator. It has exactly two
// variants: a yielded intermediate value of type Y, or the final result of
// type R once the routine returned. A Complete state is terminal; resuming
// the generator again afterwards is misuse (see Gen.Resume).
type GeneratorState[Y, R any] struct {
	value  Y
	result R
	done   bool
}

// Yielded constructs the state reporting an intermediate value.
func Yielded[Y, R any](v Y) GeneratorState[Y, R] {
	return GeneratorState[Y, R]{value: v}
}

// Complete constructs the state reporting the routine's final result.
func Complete[Y, R any](r R) GeneratorState[Y, R] {
	return GeneratorState[Y, R]{result: r, done: true}
}

// Done returns true if the state carries the final result rather than a
// yielded value.
func (s GeneratorState[Y, R]) Done() bool { return s.done }

// Value returns the yielded value. It must only be consulted when Done
// reports false, otherwise it is the zero value of Y.
func (s GeneratorState[Y, R]) Value() Y { return s.value }

// Result returns the routine's final result. It must only be consulted when
// Done reports true, otherwise it is the zero value of R.
func (s GeneratorState[Y, R]) Result() R { return s.result }

func (s GeneratorState[Y, R]) String() string {
	if s.done {
		return fmt.Sprintf("Complete(%v)", s.result)
	}
	return fmt.Sprintf("Yielded(%v)", s.value)
}
