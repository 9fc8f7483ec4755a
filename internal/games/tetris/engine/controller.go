package engine

// Default drop scoring.
const (
	SoftDropPoints     = 1
	HardDropMultiplier = 2
)

// Scoring sets the points awarded by the controller.
type Scoring struct {
	SoftDrop       int // Per user down-step
	HardDropPerRow int
	LineFactor     int // Line bonus is LineFactor * n * n
}

// DefaultScoring returns 1 per soft drop row, 2 per hard drop row and
// the 50*n*n line bonus.
func DefaultScoring() Scoring {
	return Scoring{
		SoftDrop:       SoftDropPoints,
		HardDropPerRow: HardDropMultiplier,
		LineFactor:     LineBonusFactor,
	}
}

// LineBonus returns the bonus for clearing n rows at once.
func (s Scoring) LineBonus(n int) int {
	return s.LineFactor * n * n
}

// MoveSource tells the controller who asked for a down-step.
// Only user moves earn soft drop points.
type MoveSource int

const (
	SourceTimer MoveSource = iota
	SourceUser
)

func (s MoveSource) String() string {
	if s == SourceUser {
		return "user"
	}
	return "timer"
}

// Command is a discrete input for Apply.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdRotate
	CmdSoftDrop // Down-step on behalf of the player
	CmdGravity  // Down-step on behalf of the timer
	CmdHardDrop
	CmdHold
	CmdNewGame
)

// Result reports what a single command did.
type Result struct {
	View     View
	Moved    bool       // The active piece moved, rotated or was swapped
	Locked   bool       // The command locked a piece
	Clear    *LineClear // Set when the lock cleared rows
	Awarded  int        // Points added by this command
	GameOver bool
}

// Controller drives a Board through the lock, clear, score and spawn
// sequence. Once the game is over only NewGame has any effect.
type Controller struct {
	board   *Board
	scoring Scoring
	lines   int
	locked  int
}

// NewController wraps board with the default scoring. Call NewGame to
// start playing.
func NewController(board *Board) *Controller {
	return &Controller{board: board, scoring: DefaultScoring()}
}

// SetScoring replaces the point values. Negative values panic when the
// points are awarded.
func (c *Controller) SetScoring(s Scoring) {
	c.scoring = s
}

// Board returns the underlying board.
func (c *Controller) Board() *Board {
	return c.board
}

// Lines returns the number of rows cleared since the last NewGame.
func (c *Controller) Lines() int {
	return c.lines
}

// Locked returns the number of pieces locked since the last NewGame.
func (c *Controller) Locked() int {
	return c.locked
}

// GameOver reports whether the game has ended.
func (c *Controller) GameOver() bool {
	return c.board.GameOver()
}

// View returns the current snapshot.
func (c *Controller) View() View {
	return c.board.View()
}

// Apply dispatches cmd to the matching method.
func (c *Controller) Apply(cmd Command) Result {
	switch cmd {
	case CmdMoveLeft:
		return c.MoveLeft()
	case CmdMoveRight:
		return c.MoveRight()
	case CmdRotate:
		return c.Rotate()
	case CmdSoftDrop:
		return c.MoveDown(SourceUser)
	case CmdGravity:
		return c.MoveDown(SourceTimer)
	case CmdHardDrop:
		return c.HardDrop()
	case CmdHold:
		return c.Hold()
	case CmdNewGame:
		return c.NewGame()
	default:
		return c.result(false)
	}
}

// MoveLeft shifts the active piece left.
func (c *Controller) MoveLeft() Result {
	if c.idle() {
		return c.result(false)
	}
	return c.result(c.board.MoveLeft())
}

// MoveRight shifts the active piece right.
func (c *Controller) MoveRight() Result {
	if c.idle() {
		return c.result(false)
	}
	return c.result(c.board.MoveRight())
}

// Rotate turns the active piece to its next state.
func (c *Controller) Rotate() Result {
	if c.idle() {
		return c.result(false)
	}
	return c.result(c.board.Rotate())
}

// MoveDown steps the active piece down one row. A blocked step locks the
// piece and spawns the next one.
func (c *Controller) MoveDown(src MoveSource) Result {
	if c.idle() {
		return c.result(false)
	}
	if c.board.MoveDown() {
		awarded := 0
		if src == SourceUser {
			awarded = c.scoring.SoftDrop
			c.board.score.Add(awarded)
		}
		res := c.result(true)
		res.Awarded = awarded
		return res
	}
	return c.lock(0)
}

// HardDrop drops the active piece as far as it goes and locks it.
func (c *Controller) HardDrop() Result {
	if c.idle() {
		return c.result(false)
	}
	rows := 0
	for c.board.MoveDown() {
		rows++
	}
	points := rows * c.scoring.HardDropPerRow
	c.board.score.Add(points)
	res := c.lock(points)
	res.Moved = rows > 0
	return res
}

// Hold swaps the active piece with the hold slot.
func (c *Controller) Hold() Result {
	if c.idle() {
		return c.result(false)
	}
	c.board.Hold()
	return c.result(true)
}

// NewGame resets the board and counters, places any obstacles and spawns
// the first piece.
func (c *Controller) NewGame(obstacles ...Cell) Result {
	c.lines = 0
	c.locked = 0
	c.board.NewGame(obstacles...)
	return c.result(false)
}

func (c *Controller) lock(awarded int) Result {
	c.board.LockActivePiece()
	c.locked++

	lc := c.board.ClearRows()
	lc.Bonus = c.scoring.LineBonus(lc.Lines)
	if lc.Lines > 0 {
		c.lines += lc.Lines
		c.board.score.Add(lc.Bonus)
		awarded += lc.Bonus
	}

	c.board.SpawnNextPiece()

	res := c.result(false)
	res.Locked = true
	if lc.Lines > 0 {
		res.Clear = &lc
	}
	res.Awarded = awarded
	return res
}

// idle reports whether commands other than NewGame should be ignored:
// before the first spawn and after game over.
func (c *Controller) idle() bool {
	return c.board.GameOver() || c.board.rotator.Piece() == nil
}

func (c *Controller) result(moved bool) Result {
	return Result{
		View:     c.board.View(),
		Moved:    moved,
		GameOver: c.board.GameOver(),
	}
}
