package board

import "github.com/kamstrup/intmap"

// TickGravity drops every unsupported cell one row and returns how many
// cells moved. Zero means the board is at rest. Rows are scanned bottom to
// top so a column above a gap descends together; each cell still moves at
// most one row per call. Paired capsule halves move in lockstep or not at
// all. Broken cells support what is above them until they are cleared.
func (g *Grid) TickGravity() int {
	moved := intmap.New[int, struct{}](g.W)
	count := 0

	for row := 1; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			idx := g.index(row, col)
			if moved.Has(idx) {
				continue
			}
			c := g.cells[idx]
			if !c.HasGravity() {
				continue
			}

			if g.hasPartner(row, col) {
				count += g.dropPair(row, col, moved)
				continue
			}

			if g.at(row-1, col).IsEmpty() {
				g.set(row-1, col, c)
				g.set(row, col, Empty)
				moved.Put(g.index(row-1, col), struct{}{})
				count++
			}
		}
	}
	return count
}

// dropPair moves the capsule anchored at (row, col) down one row when both
// halves have room. The upper half of a vertical capsule is carried by the
// lower one.
func (g *Grid) dropPair(row, col int, moved *intmap.Map[int, struct{}]) int {
	c := g.at(row, col)
	pr, pc := partnerOf(row, col, c)
	partner := g.at(pr, pc)

	switch c.Orientation {
	case South:
		return 0
	case North:
		if !g.at(row-1, col).IsEmpty() {
			return 0
		}
		g.set(row-1, col, c)
		g.set(row, col, partner)
		g.set(pr, pc, Empty)
		moved.Put(g.index(row-1, col), struct{}{})
		moved.Put(g.index(row, col), struct{}{})
		return 2
	}

	if !g.at(row-1, col).IsEmpty() || !g.at(pr-1, pc).IsEmpty() {
		return 0
	}
	g.set(row-1, col, c)
	g.set(pr-1, pc, partner)
	g.set(row, col, Empty)
	g.set(pr, pc, Empty)
	moved.Put(g.index(row-1, col), struct{}{})
	moved.Put(g.index(pr-1, pc), struct{}{})
	return 2
}
