package genawaiter

import (
	"reflect"
	"testing"
)

func TestSeq(t *testing.T) {
	g := New(func(co *Co[int, struct{}]) string {
		for n := 1; n < 10; n += 2 {
			co.Yield(n)
		}
		return "done"
	})

	var got []int
	for v := range g.Seq() {
		got = append(got, v)
	}

	// The final result is discarded by the adapter.
	if want := []int{1, 3, 5, 7, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected sequence: got %v, expect %v", got, want)
	}
	if !g.Done() {
		t.Error("generator should be done after the sequence ended")
	}
}

func TestSeqExhaustedStaysExhausted(t *testing.T) {
	g := New(func(co *Co[int, struct{}]) struct{} {
		co.Yield(1)
		return struct{}{}
	})

	seq := g.Seq()
	n := 0
	for range seq {
		n++
	}
	if n != 1 {
		t.Fatalf("unexpected element count: %d", n)
	}

	for v := range seq {
		t.Errorf("exhausted sequence produced %v", v)
	}
}

func TestSeqEarlyBreakLeavesGeneratorResumable(t *testing.T) {
	g := New(func(co *Co[int, struct{}]) struct{} {
		for n := 0; n < 5; n++ {
			co.Yield(n)
		}
		return struct{}{}
	})

	var got []int
	for v := range g.Seq() {
		got = append(got, v)
		if v == 1 {
			break
		}
	}

	if st := g.Resume(); st.Value() != 2 {
		t.Errorf("generator did not stay suspended across the break: %v", st)
	}

	for v := range g.Seq() {
		got = append(got, v)
	}
	if want := []int{0, 1, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected sequence: got %v, expect %v", got, want)
	}
}

func TestSeqInfiniteGeneratorTake(t *testing.T) {
	g := New(func(co *Co[int, struct{}]) struct{} {
		for i, j := 0, 1; ; i, j = j, i+j {
			co.Yield(i)
		}
	})
	defer func() {
		g.Stop()
		g.Resume()
	}()

	var got []int
	for v := range g.Seq() {
		got = append(got, v)
		if len(got) == 7 {
			break
		}
	}

	if want := []int{0, 1, 1, 2, 3, 5, 8}; !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected sequence: got %v, expect %v", got, want)
	}
	if g.Done() {
		t.Error("an infinite generator can never be done")
	}
}
