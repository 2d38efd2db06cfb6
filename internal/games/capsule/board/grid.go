package board

// Canonical board dimensions.
const (
	DefaultWidth  = 8
	DefaultHeight = 16
)

// Grid is a fixed-size board stored row-major, row 0 at the bottom.
type Grid struct {
	W     int
	H     int
	cells []Cell
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		cells: make([]Cell, w*h),
	}
}

// NewDefaultGrid creates an empty 8x16 grid.
func NewDefaultGrid() *Grid {
	return NewGrid(DefaultWidth, DefaultHeight)
}

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

func (g *Grid) index(row, col int) int {
	return row*g.W + col
}

// at returns the cell at (row, col). Off-grid positions read as a block so
// that callers probing neighbours treat the walls and floor as solid.
func (g *Grid) at(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Cell{Kind: KindBlock}
	}
	return g.cells[g.index(row, col)]
}

func (g *Grid) set(row, col int, c Cell) {
	g.cells[g.index(row, col)] = c
}

// Cell returns the cell at (row, col).
func (g *Grid) Cell(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, &OutOfRangeError{What: "cell", Row: row, Col: col}
	}
	return g.cells[g.index(row, col)], nil
}

// Update applies fn to the cell at (row, col) in place.
func (g *Grid) Update(row, col int, fn func(*Cell)) error {
	if !g.InBounds(row, col) {
		return &OutOfRangeError{What: "cell", Row: row, Col: col}
	}
	fn(&g.cells[g.index(row, col)])
	return nil
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.cells)
}

// CanPieceDescend reports whether p can move down one row.
func (g *Grid) CanPieceDescend(p Piece) bool {
	if p.Row == 0 {
		return false
	}
	lr, lc := p.LeftPosition()
	rr, rc := p.RightPosition()
	if lr <= 0 || rr <= 0 {
		return false
	}

	switch p.Orientation {
	case South:
		return !g.at(rr-1, rc).IsSolid()
	case North:
		return !g.at(lr-1, lc).IsSolid()
	}
	return !g.at(lr-1, lc).IsSolid() && !g.at(rr-1, rc).IsSolid()
}

// CanPlace reports whether both halves of p are on the grid and free.
func (g *Grid) CanPlace(p Piece) bool {
	lr, lc := p.LeftPosition()
	rr, rc := p.RightPosition()
	if !g.InBounds(lr, lc) || !g.InBounds(rr, rc) {
		return false
	}
	return !g.at(lr, lc).IsSolid() && !g.at(rr, rc).IsSolid()
}

// Place writes both halves of p into the grid. The caller validates with
// CanPlace first.
func (g *Grid) Place(p Piece) {
	lr, lc := p.LeftPosition()
	rr, rc := p.RightPosition()
	g.set(lr, lc, p.Left)
	g.set(rr, rc, p.Right)
}

// Remove clears both half positions of p.
func (g *Grid) Remove(p Piece) {
	lr, lc := p.LeftPosition()
	rr, rc := p.RightPosition()
	g.set(lr, lc, Empty)
	g.set(rr, rc, Empty)
}

// EnemyCount returns the number of enemies left on the board.
func (g *Grid) EnemyCount() int {
	n := 0
	for _, c := range g.cells {
		if c.IsEnemy() {
			n++
		}
	}
	return n
}

// BrokenCount returns the number of cells still marked broken.
func (g *Grid) BrokenCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == KindBroken {
			n++
		}
	}
	return n
}

// SpawnColumn is the pivot column for new pieces. The piece occupies this
// column and the one to its right.
func (g *Grid) SpawnColumn() int {
	return (g.W - 1) / 2
}

// IsGameOver reports whether both spawn cells on the top row are solid.
func (g *Grid) IsGameOver() bool {
	top := g.H - 1
	col := g.SpawnColumn()
	return g.at(top, col).IsSolid() && g.at(top, col+1).IsSolid()
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether two grids have the same size and identical cells,
// orientation included.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Each calls fn for every cell, bottom row first.
func (g *Grid) Each(fn func(row, col int, c Cell)) {
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			fn(row, col, g.cells[g.index(row, col)])
		}
	}
}

// partnerOf returns the position a pill half at (row, col) points at.
func partnerOf(row, col int, c Cell) (int, int) {
	dr, dc := c.Orientation.Offset()
	return row + dr, col + dc
}

// hasPartner reports whether the pill half at (row, col) is matched by a
// pill half pointing back at it.
func (g *Grid) hasPartner(row, col int) bool {
	c := g.at(row, col)
	if c.Kind != KindPill {
		return false
	}
	pr, pc := partnerOf(row, col, c)
	if !g.InBounds(pr, pc) {
		return false
	}
	p := g.at(pr, pc)
	return p.Kind == KindPill && p.Orientation == c.Orientation.Opposite()
}
