package engine

import "fmt"

// Score is a non-negative counter that only grows until reset.
// Listeners registered with OnChange run synchronously after every change.
type Score struct {
	value     int
	listeners []func(int)
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}

// Add increases the score by n. Negative n is a programming error.
func (s *Score) Add(n int) {
	if n < 0 {
		panic(fmt.Sprintf("engine: negative score addition %d", n))
	}
	if n == 0 {
		return
	}
	s.value += n
	s.notify()
}

// Reset sets the score back to zero.
func (s *Score) Reset() {
	s.value = 0
	s.notify()
}

// OnChange registers fn to receive the new value after each change.
func (s *Score) OnChange(fn func(int)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

func (s *Score) notify() {
	for _, fn := range s.listeners {
		fn(s.value)
	}
}
