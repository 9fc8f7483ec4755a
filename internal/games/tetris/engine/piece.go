package engine

// Kind identifies a piece type. Its value is the cell code the piece
// leaves on the grid.
type Kind int

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// String returns the single-letter piece name.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "-"
	}
}

// Piece is an immutable catalog entry: a fixed, ordered list of rotation
// states. Pieces are shared; never modify the shapes they hold.
type Piece struct {
	kind   Kind
	states []Shape
}

// Kind returns the piece type.
func (p *Piece) Kind() Kind {
	return p.kind
}

// States returns the number of rotation states (1, 2 or 4).
func (p *Piece) States() int {
	return len(p.states)
}

// Shape returns a copy of the matrix for rotation state i.
func (p *Piece) Shape(i int) Shape {
	return CopyShape(p.states[i])
}

// shape returns the shared matrix for state i without copying.
func (p *Piece) shape(i int) Shape {
	return p.states[i]
}

// NextRotation returns the state index that follows i.
func (p *Piece) NextRotation(i int) int {
	return (i + 1) % len(p.states)
}

var catalog = []*Piece{
	{kind: KindI, states: []Shape{
		{
			{0, 0, 0, 0},
			{1, 1, 1, 1},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
		},
	}},
	{kind: KindJ, states: []Shape{
		{
			{2, 0, 0},
			{2, 2, 2},
			{0, 0, 0},
		},
		{
			{0, 2, 2},
			{0, 2, 0},
			{0, 2, 0},
		},
		{
			{0, 0, 0},
			{2, 2, 2},
			{0, 0, 2},
		},
		{
			{0, 2, 0},
			{0, 2, 0},
			{2, 2, 0},
		},
	}},
	{kind: KindL, states: []Shape{
		{
			{0, 0, 3},
			{3, 3, 3},
			{0, 0, 0},
		},
		{
			{0, 3, 0},
			{0, 3, 0},
			{0, 3, 3},
		},
		{
			{0, 0, 0},
			{3, 3, 3},
			{3, 0, 0},
		},
		{
			{3, 3, 0},
			{0, 3, 0},
			{0, 3, 0},
		},
	}},
	{kind: KindO, states: []Shape{
		{
			{4, 4},
			{4, 4},
		},
	}},
	{kind: KindS, states: []Shape{
		{
			{0, 5, 5},
			{5, 5, 0},
			{0, 0, 0},
		},
		{
			{5, 0, 0},
			{5, 5, 0},
			{0, 5, 0},
		},
	}},
	{kind: KindT, states: []Shape{
		{
			{0, 6, 0},
			{6, 6, 6},
			{0, 0, 0},
		},
		{
			{0, 6, 0},
			{0, 6, 6},
			{0, 6, 0},
		},
		{
			{0, 0, 0},
			{6, 6, 6},
			{0, 6, 0},
		},
		{
			{0, 6, 0},
			{6, 6, 0},
			{0, 6, 0},
		},
	}},
	{kind: KindZ, states: []Shape{
		{
			{7, 7, 0},
			{0, 7, 7},
			{0, 0, 0},
		},
		{
			{0, 0, 7},
			{0, 7, 7},
			{0, 7, 0},
		},
	}},
}

// Catalog returns the seven pieces in code order (I, J, L, O, S, T, Z).
func Catalog() []*Piece {
	out := make([]*Piece, len(catalog))
	copy(out, catalog)
	return out
}

// PieceOf returns the catalog piece for k, or nil for KindNone and
// unknown kinds.
func PieceOf(k Kind) *Piece {
	if k < KindI || k > KindZ {
		return nil
	}
	return catalog[k-1]
}
