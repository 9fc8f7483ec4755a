package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Visual characters. Each board cell is two screen columns wide.
const (
	BlockGlyph    = '█'
	GhostGlyph    = '░'
	ObstacleGlyph = '▓'
	FlashGlyph    = '▒'
	EmptyGlyph    = '·'
)

const (
	cellW      = 2
	panelW     = 12
	panelGap   = 2
	previewH   = 3 // Rows per preview slot, including spacing
	statsLines = 8
)

// pieceColors maps grid codes to palette colors.
var pieceColors = map[int]core.Color{
	int(engine.KindI):   core.ColorCyan,
	int(engine.KindJ):   core.ColorBlue,
	int(engine.KindL):   core.ColorOrange,
	int(engine.KindO):   core.ColorYellow,
	int(engine.KindS):   core.ColorGreen,
	int(engine.KindT):   core.ColorMagenta,
	int(engine.KindZ):   core.ColorRed,
	engine.ObstacleCode: core.ColorGray,
}

// layout holds screen positions computed once per Reset.
type layout struct {
	tooSmall   bool
	minW, minH int

	board core.Rect
	hold  core.Rect
	stats core.Rect
	next  core.Rect
}

func computeLayout(screenW, screenH int, b config.BoardConfig) layout {
	visible := b.Rows - b.RenderHiddenRows
	boardW := b.Cols*cellW + 2
	boardH := visible + 2

	l := layout{
		minW: panelW + panelGap + boardW + panelGap + panelW,
		minH: boardH + 1,
	}
	if screenW < l.minW || screenH < l.minH {
		l.tooSmall = true
		return l
	}

	x := (screenW - l.minW) / 2
	y := (screenH - boardH) / 2
	if y < 1 {
		y = 1
	}

	l.hold = core.NewRect(x, y, panelW, 5)
	l.stats = core.NewRect(x, y+6, panelW, statsLines+2)
	l.board = core.NewRect(x+panelW+panelGap, y, boardW, boardH)
	l.next = core.NewRect(l.board.Right()+panelGap, y, panelW, b.Preview*previewH+2)
	return l
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.ctrl == nil {
		return
	}

	if g.layout.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH), core.ColorDefault)
		return
	}

	view := g.ctrl.View()

	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)
	g.renderBoard(dst, view)
	g.renderHold(dst, view)
	g.renderStats(dst, view)
	g.renderNext(dst, view)
	g.renderOverlay(dst)
}

// cellOrigin returns the screen position of a grid cell, and false for
// hidden rows.
func (g *Game) cellOrigin(row, col int) (int, int, bool) {
	visibleRow := row - g.cfg.Board.RenderHiddenRows
	if visibleRow < 0 {
		return 0, 0, false
	}
	return g.layout.board.X + 1 + col*cellW, g.layout.board.Y + 1 + visibleRow, true
}

func (g *Game) drawCell(dst *core.Screen, row, col int, glyph rune, color core.Color) {
	x, y, ok := g.cellOrigin(row, col)
	if !ok {
		return
	}
	for i := 0; i < cellW; i++ {
		dst.SetColored(x+i, y, glyph, color)
	}
}

func (g *Game) renderBoard(dst *core.Screen, view engine.View) {
	dst.DrawBox(g.layout.board, core.ColorGray)

	// During the flash the pre-clear grid is shown with the cleared rows
	// blinking.
	grid := g.ctrl.Board().Grid()
	flashing := map[int]bool{}
	if g.flash != nil {
		grid = g.flash.Prev
		for _, r := range g.flash.Rows {
			flashing[r] = true
		}
	}
	blinkOn := (g.flashTicks/4)%2 == 0

	for r, line := range grid {
		for c, code := range line {
			switch {
			case flashing[r]:
				color := core.ColorBrightWhite
				if !blinkOn {
					color = core.ColorDim
				}
				g.drawCell(dst, r, c, FlashGlyph, color)
			case code == engine.Empty:
				x, y, ok := g.cellOrigin(r, c)
				if ok {
					dst.SetColored(x, y, ' ', core.ColorDefault)
					dst.SetColored(x+1, y, EmptyGlyph, core.ColorDim)
				}
			case code == engine.ObstacleCode:
				g.drawCell(dst, r, c, ObstacleGlyph, pieceColors[code])
			default:
				g.drawCell(dst, r, c, BlockGlyph, pieceColors[code])
			}
		}
	}

	if g.flash != nil || view.Shape == nil {
		return
	}

	color := pieceColors[int(view.Active)]
	for _, cell := range view.Ghost {
		g.drawCell(dst, cell.Row, cell.Col, GhostGlyph, color)
	}
	for _, cell := range view.ActiveCells() {
		g.drawCell(dst, cell.Row, cell.Col, BlockGlyph, color)
	}
}

// drawShape draws a piece matrix trimmed to its occupied rows and columns.
func drawShape(dst *core.Screen, x, y int, shape engine.Shape) {
	minR, maxR, minC := len(shape), -1, len(shape)
	for r, line := range shape {
		for c, v := range line {
			if v == engine.Empty {
				continue
			}
			minR = core.Min(minR, r)
			maxR = core.Max(maxR, r)
			minC = core.Min(minC, c)
		}
	}
	if maxR < 0 {
		return
	}
	for r := minR; r <= maxR; r++ {
		for c, v := range shape[r] {
			if v == engine.Empty || c < minC {
				continue
			}
			sx := x + (c-minC)*cellW
			for i := 0; i < cellW; i++ {
				dst.SetColored(sx+i, y+r-minR, BlockGlyph, pieceColors[v])
			}
		}
	}
}

func (g *Game) renderHold(dst *core.Screen, view engine.View) {
	r := g.layout.hold
	dst.DrawBox(r, core.ColorGray)
	dst.DrawTextColored(r.X+2, r.Y, " HOLD ", core.ColorWhite)
	if view.Held != nil {
		drawShape(dst, r.X+2, r.Y+1, view.Held)
	}
}

func (g *Game) renderStats(dst *core.Screen, view engine.View) {
	r := g.layout.stats
	dst.DrawBox(r, core.ColorGray)
	lines := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", view.Score)},
		{"LINES", fmt.Sprintf("%d", g.ctrl.Lines())},
		{"LEVEL", fmt.Sprintf("%d", g.level)},
		{"BEST", fmt.Sprintf("%d", max(g.best, view.Score))},
	}
	for i, l := range lines {
		dst.DrawTextColored(r.X+1, r.Y+1+i*2, l.label, core.ColorGray)
		dst.DrawTextColored(r.X+1, r.Y+2+i*2, l.value, core.ColorBrightWhite)
	}
}

func (g *Game) renderNext(dst *core.Screen, view engine.View) {
	r := g.layout.next
	dst.DrawBox(r, core.ColorGray)
	dst.DrawTextColored(r.X+2, r.Y, " NEXT ", core.ColorWhite)
	for i, shape := range view.Previews {
		drawShape(dst, r.X+2, r.Y+1+i*previewH, shape)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.ctrl.Board().Score())
		if g.rank > 0 {
			subtitle = fmt.Sprintf("Score: %d  |  Rank #%d  |  Press R to restart", g.ctrl.Board().Score(), g.rank)
		}
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	default:
		if g.tickCount < g.runtime.TickRate*2 {
			dst.DrawTextCentered(dst.Height()-1, config.LevelName(g.level), core.ColorBrightYellow)
		}
	}
}

// drawCenteredBox draws a centered message box over the board.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
