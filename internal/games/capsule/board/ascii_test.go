package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGridRows(t *testing.T) {
	rows := []string{
		"C^......",
		"RvY#....",
		"R>Y<Bo..",
		"K@W*G@..",
	}
	g, err := ParseGrid(rows)
	require.NoError(t, err)
	assert.Equal(t, 4, g.W)
	assert.Equal(t, 4, g.H)
	assert.Equal(t, rows, g.Rows())

	c, _ := g.Cell(3, 0)
	assert.Equal(t, NewPill(ColorCyan, North), c)
	c, _ = g.Cell(0, 1)
	assert.Equal(t, Cell{Kind: KindBroken, Color: ColorWhite}, c)
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"ragged", []string{"....", ".."}},
		{"bad color", []string{"X@.."}},
		{"bad kind", []string{"R!.."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(tt.rows)
			assert.Error(t, err)
		})
	}
}

func TestRenderASCIIOverlaysPiece(t *testing.T) {
	g := NewGrid(4, 2)
	g.set(0, 0, NewEnemy(ColorRed))
	p := NewPiece(ColorCyan, ColorYellow, 1, 1)

	out := RenderASCII(g, &p)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "|..C>Y<..|", lines[1])
	assert.Equal(t, "|R@......|", lines[2])
	assert.Equal(t, "enemies: 1", lines[4])

	c, _ := g.Cell(1, 1)
	assert.True(t, c.IsEmpty(), "overlay does not mutate the grid")
}
