package engine

// Default board geometry. The top HiddenRows rows are a spawn buffer
// kept free of obstacles.
const (
	DefaultRows       = 25
	DefaultCols       = 10
	DefaultHiddenRows = 5
	DefaultPreview    = 3
)

// BoardConfig fixes the geometry of a board for its whole lifetime.
type BoardConfig struct {
	Rows     int
	Cols     int
	SpawnCol int // Column of the piece matrix's left edge on spawn
	SpawnRow int
	Preview  int // Upcoming pieces reported in View.Previews
}

// DefaultBoardConfig returns the 25x10 board with spawn at column 4, row 0.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Rows:     DefaultRows,
		Cols:     DefaultCols,
		SpawnCol: DefaultCols/2 - 1,
		SpawnRow: 0,
		Preview:  DefaultPreview,
	}
}

// Board owns the grid, the active piece placement, the hold slot and the
// score. Every mutation checks the placement invariant first; blocked
// moves return false and leave the state as it was.
//
// Board is not safe for concurrent use.
type Board struct {
	cfg      BoardConfig
	grid     Grid
	queue    *Queue
	rotator  Rotator
	col, row int
	held     *Piece
	score    Score
	gameOver bool
}

// NewBoard creates a board with an empty grid and a stocked queue.
// No piece is active until SpawnNextPiece or NewGame is called.
func NewBoard(cfg BoardConfig, rng Source) *Board {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		cfg.Rows, cfg.Cols = DefaultRows, DefaultCols
	}
	if cfg.Preview <= 0 {
		cfg.Preview = DefaultPreview
	}
	return &Board{
		cfg:   cfg,
		grid:  NewGrid(cfg.Rows, cfg.Cols),
		queue: NewQueue(rng),
	}
}

// Config returns the board geometry.
func (b *Board) Config() BoardConfig {
	return b.cfg
}

// MoveDown shifts the active piece one row down if it fits.
func (b *Board) MoveDown() bool {
	return b.tryMove(0, 1)
}

// MoveLeft shifts the active piece one column left if it fits.
func (b *Board) MoveLeft() bool {
	return b.tryMove(-1, 0)
}

// MoveRight shifts the active piece one column right if it fits.
func (b *Board) MoveRight() bool {
	return b.tryMove(1, 0)
}

func (b *Board) tryMove(dc, dr int) bool {
	shape := b.rotator.CurrentShape()
	if shape == nil || b.gameOver {
		return false
	}
	if Intersects(b.grid, shape, b.col+dc, b.row+dr) {
		return false
	}
	b.col += dc
	b.row += dr
	return true
}

// Rotate advances the active piece to its next rotation state in place.
// There is no wall kick: a rotation that does not fit fails.
func (b *Board) Rotate() bool {
	if b.rotator.Piece() == nil || b.gameOver {
		return false
	}
	next, idx := b.rotator.PeekNext()
	if Intersects(b.grid, next, b.col, b.row) {
		return false
	}
	b.rotator.Commit(idx)
	return true
}

// LockActivePiece writes the active piece into the grid at its current
// placement. It neither clears rows nor spawns.
func (b *Board) LockActivePiece() {
	shape := b.rotator.CurrentShape()
	if shape == nil {
		return
	}
	b.grid = Merge(b.grid, shape, b.col, b.row)
}

// ClearRows removes full rows from the grid and returns what was removed.
// The score is left alone; the caller awards the bonus.
func (b *Board) ClearRows() LineClear {
	result := ClearFullRows(b.grid)
	b.grid = CopyGrid(result.Grid)
	return result
}

// SpawnNextPiece draws the next piece from the queue and places it at the
// spawn point. It reports true when the piece already overlaps the grid,
// which ends the game.
func (b *Board) SpawnNextPiece() bool {
	return b.activate(b.queue.Draw())
}

func (b *Board) activate(p *Piece) bool {
	b.rotator.SetPiece(p)
	b.col, b.row = b.cfg.SpawnCol, b.cfg.SpawnRow
	if Intersects(b.grid, b.rotator.CurrentShape(), b.col, b.row) {
		b.gameOver = true
	}
	return b.gameOver
}

// GhostCells returns where the active piece would come to rest if it fell
// straight down. The board is not changed.
func (b *Board) GhostCells() []Cell {
	shape := b.rotator.CurrentShape()
	if shape == nil {
		return nil
	}
	return OccupiedCells(shape, b.col, b.row+b.DropDistance())
}

// DropDistance returns how many rows the active piece can fall.
func (b *Board) DropDistance() int {
	shape := b.rotator.CurrentShape()
	if shape == nil {
		return 0
	}
	n := 0
	for !Intersects(b.grid, shape, b.col, b.row+n+1) {
		n++
	}
	return n
}

// Hold swaps the active piece with the held one. With an empty hold slot
// the next queued piece becomes active. Whichever piece becomes active
// restarts at rotation 0 on the spawn point; true means it did not fit.
func (b *Board) Hold() bool {
	current := b.rotator.Piece()
	if current == nil || b.gameOver {
		return b.gameOver
	}
	next := b.held
	b.held = current
	if next == nil {
		next = b.queue.Draw()
	}
	return b.activate(next)
}

// NewGame clears the grid, score and hold slot, restocks the queue and
// spawns the first piece. Obstacles are placed before the spawn, so one
// under the spawn footprint ends the game at once.
func (b *Board) NewGame(obstacles ...Cell) bool {
	b.grid = NewGrid(b.cfg.Rows, b.cfg.Cols)
	b.score.Reset()
	b.queue.Reset()
	b.held = nil
	b.gameOver = false
	b.rotator = Rotator{}
	b.PlaceObstacles(obstacles)
	return b.SpawnNextPiece()
}

// PlaceObstacles writes ObstacleCode into every in-bounds cell not covered
// by the active piece.
func (b *Board) PlaceObstacles(cells []Cell) {
	active := map[Cell]bool{}
	if shape := b.rotator.CurrentShape(); shape != nil {
		for _, c := range OccupiedCells(shape, b.col, b.row) {
			active[c] = true
		}
	}
	for _, c := range cells {
		if active[c] {
			continue
		}
		if c.Row >= 0 && c.Row < b.cfg.Rows && c.Col >= 0 && c.Col < b.cfg.Cols {
			b.grid[c.Row][c.Col] = ObstacleCode
		}
	}
}

// SetGrid replaces the grid contents with a copy of g. The dimensions must
// match the board's; anything else is a caller bug and panics.
func (b *Board) SetGrid(g Grid) {
	mustSameSize(b.grid, g)
	b.grid = CopyGrid(g)
}

// Grid returns a copy of the current grid.
func (b *Board) Grid() Grid {
	return CopyGrid(b.grid)
}

// Score returns the current score value.
func (b *Board) Score() int {
	return b.score.Value()
}

// OnScoreChange registers a listener called after every score change.
func (b *Board) OnScoreChange(fn func(int)) {
	b.score.OnChange(fn)
}

// GameOver reports whether the last spawn collided.
func (b *Board) GameOver() bool {
	return b.gameOver
}

// Active returns the active piece kind, rotation index and origin.
func (b *Board) Active() (Kind, int, int, int) {
	p := b.rotator.Piece()
	if p == nil {
		return KindNone, 0, b.col, b.row
	}
	return p.Kind(), b.rotator.Index(), b.col, b.row
}

// Held returns the held piece kind, KindNone when the slot is empty.
func (b *Board) Held() Kind {
	if b.held == nil {
		return KindNone
	}
	return b.held.Kind()
}

// Upcoming returns the kinds of the next n pieces without consuming them.
func (b *Board) Upcoming(n int) []Kind {
	pieces := b.queue.Peek(n)
	kinds := make([]Kind, len(pieces))
	for i, p := range pieces {
		kinds[i] = p.Kind()
	}
	return kinds
}

// View returns an independent snapshot of everything a renderer needs.
func (b *Board) View() View {
	v := View{
		Score:    b.score.Value(),
		GameOver: b.gameOver,
		Col:      b.col,
		Row:      b.row,
	}

	if p := b.rotator.Piece(); p != nil {
		v.Active = p.Kind()
		v.Rotation = b.rotator.Index()
		v.Shape = CopyShape(b.rotator.CurrentShape())
		v.Ghost = b.GhostCells()
	}

	for _, p := range b.queue.Peek(b.cfg.Preview) {
		v.Upcoming = append(v.Upcoming, p.Kind())
		v.Previews = append(v.Previews, p.Shape(0))
	}
	if len(v.Previews) > 0 {
		v.Next = CopyShape(v.Previews[0])
	}

	if b.held != nil {
		v.HeldKind = b.held.Kind()
		v.Held = b.held.Shape(0)
	}
	return v
}
