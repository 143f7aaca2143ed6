package gls

import (
	"reflect"
	"testing"
)

func TestGLS(t *testing.T) {
	ch := make(chan any)
	val := any(42)

	go func() {
		g := Context()
		g.Store(val)
		defer g.Clear()
		ch <- g.Load()
	}()

	if v := <-ch; !reflect.DeepEqual(v, val) {
		t.Errorf("wrong value: %v", v)
	}

	// The storing goroutine cleared its entry; this goroutine never had one.
	if v := Context().Load(); v != nil {
		t.Errorf("expected no context for the test goroutine, got %v", v)
	}
}

func TestGoroutineIDsDiffer(t *testing.T) {
	ids := make(chan uint64)
	go func() { ids <- goid() }()
	if self, other := goid(), <-ids; self == other {
		t.Errorf("distinct goroutines reported the same id %d", self)
	}
}

func BenchmarkGLS(b *testing.B) {
	g := Context()
	g.Store(any(42))
	defer g.Clear()
	for i := 0; i < b.N; i++ {
		g.Load()
	}
}
