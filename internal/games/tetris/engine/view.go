package engine

// View is a read-only snapshot of the board. It shares no memory with the
// board, so callers may keep or modify it freely.
type View struct {
	Active   Kind
	Shape    Shape // Active matrix at the current rotation, nil before spawn
	Col      int
	Row      int
	Rotation int
	Ghost    []Cell

	Next     Shape   // Same as Previews[0]
	Upcoming []Kind  // Next pieces, front first
	Previews []Shape // Rotation 0 matrices for Upcoming

	Held     Shape
	HeldKind Kind

	Score    int
	GameOver bool
}

// ActiveCells returns the grid cells covered by the active piece.
func (v View) ActiveCells() []Cell {
	if v.Shape == nil {
		return nil
	}
	return OccupiedCells(v.Shape, v.Col, v.Row)
}
