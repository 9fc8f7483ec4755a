package tetris

// Snapshot contains the game state in primitive types for determinism
// tests and debugging.
type Snapshot struct {
	Tick     uint64
	State    string
	Score    int
	Lines    int
	Locked   int
	Level    int
	Active   int // Piece kind code, 0 before spawn
	Rotation int
	Col      int
	Row      int
	Held     int
	Upcoming []int
	Rows     int
	Cols     int
	Grid     []int // Row-major cell codes
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	board := g.ctrl.Board()
	kind, rot, col, row := board.Active()
	grid := board.Grid()

	cells := make([]int, 0, grid.Rows()*grid.Cols())
	for _, line := range grid {
		cells = append(cells, line...)
	}

	upcoming := make([]int, 0, g.cfg.Board.Preview)
	for _, k := range board.Upcoming(g.cfg.Board.Preview) {
		upcoming = append(upcoming, int(k))
	}

	return Snapshot{
		Tick:     uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:    g.state,
		Score:    board.Score(),
		Lines:    g.ctrl.Lines(),
		Locked:   g.ctrl.Locked(),
		Level:    g.level,
		Active:   int(kind),
		Rotation: rot,
		Col:      col,
		Row:      row,
		Held:     int(board.Held()),
		Upcoming: upcoming,
		Rows:     grid.Rows(),
		Cols:     grid.Cols(),
		Grid:     cells,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Score, snap.Lines, snap.Locked, snap.Level,
		snap.Active, snap.Rotation, snap.Col, snap.Row, snap.Held,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Upcoming {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Grid {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	return h
}
