package engine

import "fmt"

// Rotator tracks the active piece and its rotation state.
type Rotator struct {
	piece *Piece
	index int
}

// SetPiece makes p the active piece at rotation 0.
func (r *Rotator) SetPiece(p *Piece) {
	r.piece = p
	r.index = 0
}

// Piece returns the active piece, or nil before the first spawn.
func (r *Rotator) Piece() *Piece {
	return r.piece
}

// Index returns the current rotation state.
func (r *Rotator) Index() int {
	return r.index
}

// CurrentShape returns the shared matrix for the current state.
func (r *Rotator) CurrentShape() Shape {
	if r.piece == nil {
		return nil
	}
	return r.piece.shape(r.index)
}

// PeekNext returns the next rotation state and its index without
// committing it.
func (r *Rotator) PeekNext() (Shape, int) {
	if r.piece == nil {
		return nil, 0
	}
	next := r.piece.NextRotation(r.index)
	return r.piece.shape(next), next
}

// Commit sets the rotation state. The caller has already checked that
// the state fits on the board.
func (r *Rotator) Commit(index int) {
	if r.piece == nil || index < 0 || index >= r.piece.States() {
		panic(fmt.Sprintf("engine: rotation index %d out of range", index))
	}
	r.index = index
}
