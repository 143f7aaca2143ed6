package genawaiter

import (
	"fmt"
	"runtime/debug"
)

// panicError carries a panic out of a generator routine into its driver,
// keeping the routine's stack trace since the driver rethrows on a stack
// that has nothing to do with the failure.
type panicError struct {
	value any
	stack []byte
}

func (p *panicError) Error() string {
	return fmt.Sprintf("genawaiter: generator routine panicked: %v", p.value)
}

func (p *panicError) ErrorWithStack() string {
	return fmt.Sprintf("%v\n\n%s", p.value, p.stack)
}

func (p *panicError) Unwrap() error {
	err, ok := p.value.(error)
	if !ok {
		return nil
	}
	return err
}

func newPanicError(v any) error {
	return &panicError{
		value: v,
		stack: debug.Stack(),
	}
}
