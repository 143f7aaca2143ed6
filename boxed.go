package genawaiter

import (
	"context"
	"iter"
)

// Generator is the driver surface of a generator behind a single layer of
// dynamic dispatch. Gen already is a nameable, uniform type for given Y, S
// and R, but an interface value decouples storage from construction, which
// is what package-level variables and heterogeneous collections of drivers
// need.
type Generator[Y, S, R any] interface {
	Resume() GeneratorState[Y, R]
	ResumeWith(arg S) GeneratorState[Y, R]
	ResumeContext(ctx context.Context) (GeneratorState[Y, R], error)
	ResumeWithContext(ctx context.Context, arg S) (GeneratorState[Y, R], error)
	Stop()
	Done() bool
	Seq() iter.Seq[Y]
}

var _ Generator[int, string, bool] = Gen[int, string, bool]{}

// NewBoxed is New returning the generator behind the Generator interface,
// at the cost of the one extra indirection.
func NewBoxed[Y, S, R any](f func(*Co[Y, S]) R, opts ...Option) Generator[Y, S, R] {
	return New(f, opts...)
}
