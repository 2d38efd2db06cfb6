package board

import "github.com/kamstrup/intmap"

// ConnectedColorRun counts the breakable cells matching the color at
// (row, col) that extend contiguously from it along one axis, in both
// directions. The origin itself is not counted, so a run of length n
// through the origin reports n-1. Non-breakable origins report 0.
func (g *Grid) ConnectedColorRun(row, col int, horizontal bool) (int, error) {
	origin, err := g.Cell(row, col)
	if err != nil {
		return 0, err
	}
	return g.connected(row, col, origin, horizontal), nil
}

func (g *Grid) connected(row, col int, origin Cell, horizontal bool) int {
	if !origin.IsBreakable() {
		return 0
	}
	dr, dc := 1, 0
	if horizontal {
		dr, dc = 0, 1
	}
	return g.countMatching(row, col, dr, dc, origin.Color) +
		g.countMatching(row, col, -dr, -dc, origin.Color)
}

func (g *Grid) countMatching(row, col, dr, dc int, color Color) int {
	n := 0
	for r, c := row+dr, col+dc; g.InBounds(r, c); r, c = r+dr, c+dc {
		cell := g.at(r, c)
		if !cell.IsBreakable() || cell.Color != color {
			break
		}
		n++
	}
	return n
}

// longestRun returns the longer of the horizontal and vertical runs
// through (row, col), origin included.
func (g *Grid) longestRun(row, col int) int {
	origin := g.at(row, col)
	return 1 + max(g.connected(row, col, origin, true), g.connected(row, col, origin, false))
}

// BreakRuns clears the previous pass's broken cells, then marks every
// breakable cell lying on a horizontal or vertical run of at least minRun
// cells as broken. A capsule half whose partner breaks on its own becomes a
// spill. It returns the number of newly broken cells.
func (g *Grid) BreakRuns(minRun int) int {
	for i, c := range g.cells {
		if c.Kind == KindBroken {
			g.cells[i] = Empty
		}
	}

	pending := intmap.New[int, struct{}](g.W * 2)
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			c := g.at(row, col)
			if !c.IsBreakable() {
				continue
			}
			if 1+g.connected(row, col, c, true) >= minRun || 1+g.connected(row, col, c, false) >= minRun {
				pending.Put(g.index(row, col), struct{}{})
			}
		}
	}

	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			if !pending.Has(g.index(row, col)) {
				continue
			}
			if g.hasPartner(row, col) {
				pr, pc := partnerOf(row, col, g.at(row, col))
				if !pending.Has(g.index(pr, pc)) {
					g.cells[g.index(pr, pc)].Kind = KindSpill
				}
			}
			g.cells[g.index(row, col)].Kind = KindBroken
		}
	}
	return pending.Len()
}
