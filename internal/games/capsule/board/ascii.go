package board

import (
	"fmt"
	"strings"
)

// Cells are written as two characters: a color letter followed by a kind
// marker. ".." is empty.
const colorLetters = "KRCYGBW"

var orientationMarks = [...]byte{North: '^', East: '>', South: 'v', West: '<'}

func encodeCell(c Cell) string {
	if c.IsEmpty() {
		return ".."
	}
	letter := byte('?')
	if int(c.Color) < len(colorLetters) {
		letter = colorLetters[c.Color]
	}
	var mark byte
	switch c.Kind {
	case KindEnemy:
		mark = '@'
	case KindBlock:
		mark = '#'
	case KindSpill:
		mark = 'o'
	case KindBroken:
		mark = '*'
	case KindPill:
		mark = orientationMarks[c.Orientation%4]
	default:
		mark = '?'
	}
	return string([]byte{letter, mark})
}

func decodeCell(tok string) (Cell, error) {
	if tok == ".." {
		return Empty, nil
	}
	idx := strings.IndexByte(colorLetters, tok[0])
	if idx < 0 {
		return Cell{}, fmt.Errorf("unknown color %q", tok[0])
	}
	c := Cell{Color: Color(idx)}
	switch tok[1] {
	case '@':
		c.Kind = KindEnemy
	case '#':
		c.Kind = KindBlock
	case 'o':
		c.Kind = KindSpill
	case '*':
		c.Kind = KindBroken
	case '^', '>', 'v', '<':
		c.Kind = KindPill
		c.Orientation = Orientation(strings.IndexByte("^>v<", tok[1]))
	default:
		return Cell{}, fmt.Errorf("unknown kind marker %q", tok[1])
	}
	return c, nil
}

// ParseGrid builds a grid from rows written top row first, two characters
// per cell, in the format produced by RenderASCII.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("board: parse: no rows")
	}
	w := len(rows[0]) / 2
	g := NewGrid(w, len(rows))
	for i, line := range rows {
		if len(line) != w*2 {
			return nil, fmt.Errorf("board: parse row %d: width %d, want %d", i, len(line), w*2)
		}
		row := g.H - 1 - i
		for col := 0; col < w; col++ {
			c, err := decodeCell(line[col*2 : col*2+2])
			if err != nil {
				return nil, fmt.Errorf("board: parse row %d col %d: %w", i, col, err)
			}
			g.set(row, col, c)
		}
	}
	return g, nil
}

// Rows returns the grid in ParseGrid format, top row first.
func (g *Grid) Rows() []string {
	return g.rows(nil)
}

func (g *Grid) rows(p *Piece) []string {
	view := g
	if p != nil && !p.IsZero() && g.CanPlace(*p) {
		view = g.Clone()
		view.Place(*p)
	}
	out := make([]string, 0, g.H)
	for row := g.H - 1; row >= 0; row-- {
		var sb strings.Builder
		for col := 0; col < g.W; col++ {
			sb.WriteString(encodeCell(view.at(row, col)))
		}
		out = append(out, sb.String())
	}
	return out
}

// RenderASCII draws the grid, and the live piece if given, as text framed
// by a border, followed by an enemy count line.
func RenderASCII(g *Grid, p *Piece) string {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", g.W*2) + "+\n"
	sb.WriteString(border)
	for _, line := range g.rows(p) {
		sb.WriteString("|" + line + "|\n")
	}
	sb.WriteString(border)
	fmt.Fprintf(&sb, "enemies: %d\n", g.EnemyCount())
	return sb.String()
}
