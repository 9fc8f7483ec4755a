package engine

import (
	"math/rand"
	"testing"
)

func kindsOf(pieces []*Piece) []Kind {
	out := make([]Kind, len(pieces))
	for i, p := range pieces {
		out[i] = p.Kind()
	}
	return out
}

func equalKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestQueuePeekDoesNotConsume(t *testing.T) {
	q := NewQueue(rand.New(rand.NewSource(1)))

	first := kindsOf(q.Peek(3))
	second := kindsOf(q.Peek(3))
	if !equalKinds(first, second) {
		t.Errorf("Peek changed the queue: %v then %v", first, second)
	}
	if q.Len() < MinLookahead {
		t.Errorf("queue holds %d pieces, want at least %d", q.Len(), MinLookahead)
	}
}

func TestQueueDrawOrderAndRefill(t *testing.T) {
	q := NewQueue(&seqSource{vals: []int{0, 1, 2, 3, 4, 5, 6}})

	ahead := kindsOf(q.Peek(4))
	want := []Kind{KindI, KindJ, KindL, KindO}
	if !equalKinds(ahead, want) {
		t.Fatalf("initial queue = %v, want %v", ahead, want)
	}

	for i, k := range want {
		if got := q.Draw().Kind(); got != k {
			t.Errorf("draw %d = %s, want %s", i, got, k)
		}
		if q.Len() < MinLookahead {
			t.Errorf("after draw %d queue holds %d pieces", i, q.Len())
		}
	}

	if got := q.Draw().Kind(); got != KindS {
		t.Errorf("fifth draw = %s, want S", got)
	}
}

func TestQueuePeekGrows(t *testing.T) {
	q := NewQueue(rand.New(rand.NewSource(3)))
	if got := len(q.Peek(10)); got != 10 {
		t.Errorf("Peek(10) returned %d pieces", got)
	}
	if q.Peek(0) != nil {
		t.Error("Peek(0) should return nil")
	}
}

func TestQueueDeterministicWithSeed(t *testing.T) {
	a := NewQueue(rand.New(rand.NewSource(99)))
	b := NewQueue(rand.New(rand.NewSource(99)))
	for i := 0; i < 50; i++ {
		if ka, kb := a.Draw().Kind(), b.Draw().Kind(); ka != kb {
			t.Fatalf("draw %d differs: %s vs %s", i, ka, kb)
		}
	}
}
