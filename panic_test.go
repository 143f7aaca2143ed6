package genawaiter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPanicErrorWrapsErrorValue(t *testing.T) {
	r := require.New(t)
	cause := errors.New("cause")

	g := New(func(co *Co[int, struct{}]) struct{} {
		panic(cause)
	})

	defer func() {
		err, ok := recover().(error)
		r.True(ok, "the rethrown panic should be an error")
		r.ErrorIs(err, cause)
		r.Contains(err.Error(), "generator routine panicked")
	}()
	g.Resume()
}

func TestPanicErrorKeepsRoutineStack(t *testing.T) {
	r := require.New(t)

	g := New(func(co *Co[int, struct{}]) struct{} {
		panic("with stack")
	})

	defer func() {
		p, ok := recover().(*panicError)
		r.True(ok, "the rethrown panic should be a *panicError")
		r.Contains(p.ErrorWithStack(), "with stack")
		r.Contains(p.ErrorWithStack(), "goroutine")
		r.Nil(p.Unwrap(), "a string panic does not unwrap to an error")
	}()
	g.Resume()
}

func TestPanicErrorFromStringValue(t *testing.T) {
	g := New(func(co *Co[int, struct{}]) struct{} {
		panic("something broke")
	})

	defer func() {
		err, ok := recover().(error)
		if !ok {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "something broke") {
			t.Errorf("unexpected message: %v", err)
		}
	}()
	g.Resume()
}
