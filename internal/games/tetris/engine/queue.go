package engine

// MinLookahead is the number of pieces kept in the queue at all times:
// the one about to spawn plus three previews.
const MinLookahead = 4

// Source is the random number source the queue draws from.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Queue produces an unbounded sequence of pieces, each chosen uniformly
// and independently from the catalog. Repeats are allowed.
type Queue struct {
	rng     Source
	pending []*Piece
}

// NewQueue creates a queue stocked with MinLookahead pieces.
func NewQueue(rng Source) *Queue {
	q := &Queue{rng: rng}
	q.fill(MinLookahead)
	return q
}

// Draw removes and returns the front piece, then tops the queue back up
// to MinLookahead.
func (q *Queue) Draw() *Piece {
	q.fill(1)
	p := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	q.fill(MinLookahead)
	return p
}

// Peek returns the next n pieces without consuming them.
// The queue grows if it holds fewer than n.
func (q *Queue) Peek(n int) []*Piece {
	if n <= 0 {
		return nil
	}
	q.fill(n)
	out := make([]*Piece, n)
	copy(out, q.pending[:n])
	return out
}

// Len returns the number of buffered pieces.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Reset discards all buffered pieces and restocks from the source.
func (q *Queue) Reset() {
	q.pending = nil
	q.fill(MinLookahead)
}

func (q *Queue) fill(n int) {
	for len(q.pending) < n {
		q.pending = append(q.pending, catalog[q.rng.Intn(len(catalog))])
	}
}
