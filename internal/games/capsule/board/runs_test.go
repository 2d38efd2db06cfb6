package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(rows)
	require.NoError(t, err)
	return g
}

func TestConnectedColorRun(t *testing.T) {
	g := mustParse(t,
		"........",
		"Y@......",
		"R@R#R@..",
		"R@R@RoY@",
	)

	tests := []struct {
		name       string
		row, col   int
		horizontal bool
		want       int
	}{
		{"left end of bottom run", 0, 0, true, 2},
		{"middle of bottom run", 0, 1, true, 2},
		{"different color stops run", 0, 3, true, 0},
		{"block breaks horizontal run", 1, 0, true, 0},
		{"vertical pair", 0, 0, false, 1},
		{"color change stops vertical run", 1, 0, false, 1},
		{"block origin", 1, 1, true, 0},
		{"empty origin", 3, 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.ConnectedColorRun(tt.row, tt.col, tt.horizontal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := g.ConnectedColorRun(-1, 0, true)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestBreakRunsMarksThenClears(t *testing.T) {
	g := mustParse(t,
		"........",
		"........",
		"R@R@R@..",
	)

	assert.Equal(t, 3, g.BreakRuns(3))
	assert.Equal(t, 3, g.BrokenCount())
	assert.Equal(t, 0, g.EnemyCount())

	assert.Equal(t, 0, g.BreakRuns(3))
	assert.Equal(t, 0, g.BrokenCount())
	for _, c := range g.cells {
		assert.True(t, c.IsEmpty())
	}
}

func TestBreakRunsBelowThreshold(t *testing.T) {
	g := mustParse(t,
		"........",
		"R@R@C@..",
	)
	before := g.Clone()

	assert.Equal(t, 0, g.BreakRuns(3))
	assert.True(t, g.Equal(before))
}

func TestBreakRunsOrphansPartner(t *testing.T) {
	g := mustParse(t,
		"R>Y<....",
		"R@......",
		"R@......",
	)

	assert.Equal(t, 3, g.BreakRuns(3))
	partner, _ := g.Cell(2, 1)
	assert.Equal(t, KindSpill, partner.Kind)
	assert.Equal(t, ColorYellow, partner.Color)
}

func TestBreakRunsBothHalvesInRun(t *testing.T) {
	g := mustParse(t,
		"........",
		"R>R<R@R@",
	)

	assert.Equal(t, 4, g.BreakRuns(4))
	g.Each(func(row, col int, c Cell) {
		assert.NotEqual(t, KindSpill, c.Kind)
	})
}

func TestBreakRunsCrossShape(t *testing.T) {
	g := mustParse(t,
		"..C@....",
		"C@C@C@..",
		"..C@....",
	)

	assert.Equal(t, 5, g.BreakRuns(3))
}

func TestBreakRunsIgnoresBlocks(t *testing.T) {
	g := mustParse(t,
		"........",
		"R#R#R#R#",
	)

	assert.Equal(t, 0, g.BreakRuns(3))
}
