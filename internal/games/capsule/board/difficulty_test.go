package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveParamsDeterministic(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		a := DeriveParams(level, true, true)
		b := DeriveParams(level, true, true)
		assert.Equal(t, a, b, "level %d", level)
		require.NoError(t, a.Validate(DefaultHeight))
	}
}

func TestDeriveParamsScalesWithLevel(t *testing.T) {
	easy := DeriveParams(1, false, false)
	hard := DeriveParams(20, false, false)

	assert.Equal(t, 5, easy.CutoffRow)
	assert.Equal(t, 13, hard.CutoffRow)
	assert.Less(t, easy.CutoffRow, hard.CutoffRow)

	for row := 0; row < easy.CutoffRow; row++ {
		assert.Less(t, easy.EnemyChance[row], hard.EnemyChance[row], "row %d", row)
	}
	for row := 0; row < hard.CutoffRow; row++ {
		assert.Equal(t, 90, hard.EnemyChance[row], "row %d", row)
		assert.Equal(t, DefaultWidth, hard.MaxEntities[row], "row %d", row)
	}
}

func TestDeriveParamsClampsLevel(t *testing.T) {
	assert.Equal(t, DeriveParams(1, true, false), DeriveParams(-3, true, false))
	assert.Equal(t, DeriveParams(20, true, false), DeriveParams(99, true, false))
}

func TestDeriveParamsRowsAboveCutoffEmpty(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		p := DeriveParams(level, true, true)
		for row := p.CutoffRow; row < DefaultHeight; row++ {
			assert.Zero(t, p.MaxEntities[row], "level %d row %d", level, row)
			assert.Zero(t, p.EnemyChance[row], "level %d row %d", level, row)
		}
		for row := 0; row < p.CutoffRow; row++ {
			assert.GreaterOrEqual(t, p.MaxEntities[row], 2, "level %d row %d", level, row)
		}
	}
}

func TestDeriveParamsFlags(t *testing.T) {
	tests := []struct {
		name   string
		pills  bool
		blocks bool
	}{
		{"neither", false, false},
		{"pills", true, false},
		{"blocks", false, true},
		{"both", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DeriveParams(10, tt.pills, tt.blocks)
			for row := 0; row < p.CutoffRow; row++ {
				assert.Equal(t, tt.pills, p.PillChance[row] > 0, "pill row %d", row)
				assert.Equal(t, tt.blocks, p.BlockChance[row] > 0, "block row %d", row)
			}
		})
	}
}

func TestNewParamsRejectsMismatchedRows(t *testing.T) {
	rows := func(n int) []int { return make([]int, n) }

	_, err := NewParams(rows(4), rows(4), rows(3), rows(4), 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "pill_chance", cfgErr.Field)

	p, err := NewParams([]int{2, 1, 0, 0}, rows(4), rows(4), rows(4), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, p.CutoffRow)
	assert.Equal(t, 4, p.Height())
}
