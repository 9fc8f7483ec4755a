package engine

import "testing"

func TestScoreListeners(t *testing.T) {
	var s Score
	var seen []int
	s.OnChange(func(v int) { seen = append(seen, v) })

	s.Add(10)
	s.Add(0)
	s.Add(5)
	s.Reset()

	want := []int{10, 15, 0}
	if len(seen) != len(want) {
		t.Fatalf("listener saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("notification %d = %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestScoreNegativeAddPanics(t *testing.T) {
	var s Score
	defer func() {
		if recover() == nil {
			t.Error("expected panic on negative Add")
		}
	}()
	s.Add(-1)
}
