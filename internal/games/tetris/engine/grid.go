// Package engine implements the falling-block game state: the board grid,
// the piece catalog, the lookahead queue, rotation, scoring and hold.
// It has no dependencies outside the standard library and knows nothing
// about terminals or rendering; callers send discrete commands and read
// back snapshots.
package engine

import "fmt"

// Cell codes stored in a Grid.
const (
	Empty        = 0
	ObstacleCode = 8
)

// LineBonusFactor is the multiplier in the line clear bonus 50*n*n.
const LineBonusFactor = 50

// Grid is a rectangular board of cell codes indexed as grid[row][col].
type Grid [][]int

// Shape is a piece matrix indexed as shape[row][col].
// Nonzero entries are occupied cells.
type Shape [][]int

// Cell is a board coordinate.
type Cell struct {
	Row int
	Col int
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]int, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the code at (row, col), or Empty when out of bounds.
func (g Grid) At(row, col int) int {
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return Empty
	}
	return g[row][col]
}

// Equal reports whether both grids have the same dimensions and contents.
func (g Grid) Equal(other Grid) bool {
	if g.Rows() != other.Rows() || g.Cols() != other.Cols() {
		return false
	}
	for r := range g {
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the grid as rows of digits, '.' for empty cells.
// Handy in test failure output.
func (g Grid) String() string {
	b := make([]byte, 0, g.Rows()*(g.Cols()+1))
	for _, row := range g {
		for _, v := range row {
			if v == Empty {
				b = append(b, '.')
			} else {
				b = append(b, byte('0'+v%10))
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}

// Intersects reports whether shape placed with its top-left corner at
// (col, row) leaves the grid or overlaps a non-empty cell.
// Shape cell shape[j][i] lands on grid[row+j][col+i].
func Intersects(g Grid, shape Shape, col, row int) bool {
	rows, cols := g.Rows(), g.Cols()
	for j, line := range shape {
		for i, v := range line {
			if v == Empty {
				continue
			}
			tc, tr := col+i, row+j
			if tc < 0 || tc >= cols || tr < 0 || tr >= rows {
				return true
			}
			if g[tr][tc] != Empty {
				return true
			}
		}
	}
	return false
}

// Merge returns a copy of g with the shape's occupied cells written at
// (col, row). Cells falling outside the grid are dropped. Merge does not
// check for overlap; callers test Intersects first.
func Merge(g Grid, shape Shape, col, row int) Grid {
	out := CopyGrid(g)
	rows, cols := out.Rows(), out.Cols()
	for j, line := range shape {
		for i, v := range line {
			if v == Empty {
				continue
			}
			tc, tr := col+i, row+j
			if tc < 0 || tc >= cols || tr < 0 || tr >= rows {
				continue
			}
			out[tr][tc] = v
		}
	}
	return out
}

// LineClear is the outcome of one clear pass over a grid.
type LineClear struct {
	Lines int   // Number of rows removed
	Rows  []int // Original indices of the removed rows, top to bottom
	Bonus int   // Score bonus, LineBonusFactor * Lines * Lines
	Grid  Grid  // Grid after compaction
	Prev  Grid  // Grid before compaction, for row-flash animation
}

// LineBonus returns the score awarded for clearing n rows at once.
func LineBonus(n int) int {
	return LineBonusFactor * n * n
}

// ClearFullRows removes every full row of g in a single pass.
// Surviving rows keep their relative order and settle at the bottom;
// the freed rows reappear empty at the top. g is not modified.
func ClearFullRows(g Grid) LineClear {
	rows, cols := g.Rows(), g.Cols()
	result := LineClear{Prev: CopyGrid(g)}

	kept := make([][]int, 0, rows)
	for r, line := range g {
		if rowFull(line) {
			result.Rows = append(result.Rows, r)
			continue
		}
		kept = append(kept, line)
	}

	result.Lines = len(result.Rows)
	result.Bonus = LineBonus(result.Lines)

	out := make(Grid, 0, rows)
	for range result.Lines {
		out = append(out, make([]int, cols))
	}
	for _, line := range kept {
		row := make([]int, cols)
		copy(row, line)
		out = append(out, row)
	}
	result.Grid = out
	return result
}

func rowFull(line []int) bool {
	if len(line) == 0 {
		return false
	}
	for _, v := range line {
		if v == Empty {
			return false
		}
	}
	return true
}

// CopyGrid returns a deep copy of g. A nil grid copies to an empty one.
func CopyGrid(g Grid) Grid {
	if g == nil {
		return Grid{}
	}
	out := make(Grid, len(g))
	for r, line := range g {
		out[r] = make([]int, len(line))
		copy(out[r], line)
	}
	return out
}

// CopyShape returns a deep copy of s. A nil shape copies to nil.
func CopyShape(s Shape) Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for r, line := range s {
		out[r] = make([]int, len(line))
		copy(out[r], line)
	}
	return out
}

// OccupiedCells returns the grid coordinates covered by shape at (col, row).
func OccupiedCells(shape Shape, col, row int) []Cell {
	cells := make([]Cell, 0, 4)
	for j, line := range shape {
		for i, v := range line {
			if v != Empty {
				cells = append(cells, Cell{Row: row + j, Col: col + i})
			}
		}
	}
	return cells
}

// mustSameSize panics unless both grids have identical dimensions.
func mustSameSize(live, other Grid) {
	if live.Rows() != other.Rows() || live.Cols() != other.Cols() {
		panic(fmt.Sprintf("engine: grid size mismatch: have %dx%d, got %dx%d",
			live.Rows(), live.Cols(), other.Rows(), other.Cols()))
	}
}
