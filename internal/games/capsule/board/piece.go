package board

// Piece is the two-cell capsule under player control. Row and Col locate
// the left half (the pivot); Orientation gives the direction of the right
// half from the left.
type Piece struct {
	Left        Cell
	Right       Cell
	Orientation Orientation
	Row         int
	Col         int
}

// NewPiece creates a horizontal capsule with its pivot at (row, col).
func NewPiece(left, right Color, row, col int) Piece {
	return Piece{
		Left:        NewPill(left, East),
		Right:       NewPill(right, West),
		Orientation: East,
		Row:         row,
		Col:         col,
	}
}

// IsZero reports whether p is the zero piece (no live capsule).
func (p Piece) IsZero() bool {
	return p.Left.IsEmpty() && p.Right.IsEmpty()
}

// LeftPosition returns the pivot coordinates.
func (p Piece) LeftPosition() (int, int) {
	return p.Row, p.Col
}

// RightPosition returns the right half's coordinates. They may lie off the
// grid while a move is being evaluated.
func (p Piece) RightPosition() (int, int) {
	dr, dc := p.Orientation.Offset()
	return p.Row + dr, p.Col + dc
}

// CanPlace reports whether g accepts the piece at its current position.
func (p Piece) CanPlace(g *Grid) bool {
	return g.CanPlace(p)
}

// MoveLeft shifts the piece one column left if the grid allows it.
func (p *Piece) MoveLeft(g *Grid) bool {
	return p.shift(g, 0, -1)
}

// MoveRight shifts the piece one column right if the grid allows it.
func (p *Piece) MoveRight(g *Grid) bool {
	return p.shift(g, 0, 1)
}

// Descend lowers the piece one row if the grid allows it.
func (p *Piece) Descend(g *Grid) bool {
	if !g.CanPieceDescend(*p) {
		return false
	}
	p.Row--
	return true
}

// HardDrop lowers the piece until it rests and returns the rows travelled.
func (p *Piece) HardDrop(g *Grid) int {
	rows := 0
	for p.Descend(g) {
		rows++
	}
	return rows
}

func (p *Piece) shift(g *Grid, dRow, dCol int) bool {
	moved := *p
	moved.Row += dRow
	moved.Col += dCol
	if !g.CanPlace(moved) {
		return false
	}
	*p = moved
	return true
}

// RotateClockwise turns the piece a quarter turn clockwise.
func (p *Piece) RotateClockwise(g *Grid) bool {
	return p.rotate(g, p.Orientation.Clockwise())
}

// RotateCounterClockwise turns the piece a quarter turn counter-clockwise.
func (p *Piece) RotateCounterClockwise(g *Grid) bool {
	return p.rotate(g, p.Orientation.CounterClockwise())
}

// rotate tries the turn in place, then with the pivot kicked one cell away
// from the new right half. On failure p is left untouched.
func (p *Piece) rotate(g *Grid, o Orientation) bool {
	turned := *p
	turned.Orientation = o
	turned.Left.Orientation = o
	turned.Right.Orientation = o.Opposite()

	if g.CanPlace(turned) {
		*p = turned
		return true
	}

	dr, dc := o.Offset()
	turned.Row -= dr
	turned.Col -= dc
	if g.CanPlace(turned) {
		*p = turned
		return true
	}
	return false
}
