package board

import "math"

// Level bounds accepted by DeriveParams. Values outside are clamped.
const (
	MinLevel = 1
	MaxLevel = 20
)

// DefaultMaxConnected keeps generated boards free of ready-made runs for
// the default run length of 4.
const DefaultMaxConnected = 3

// Params drives board population. Every per-row slice has one entry per
// grid row, bottom row first. Chances are percentages in [0, 100].
type Params struct {
	Level        int
	CutoffRow    int // rows below this one are populated
	MaxEntities  []int
	EnemyChance  []int
	PillChance   []int
	BlockChance  []int
	MaxConnected int // 0 disables the recolor pass
}

// NewParams builds Params from per-row arrays, rejecting arrays whose
// lengths disagree.
func NewParams(maxEntities, enemy, pill, block []int, maxConnected int) (Params, error) {
	p := Params{
		MaxEntities:  maxEntities,
		EnemyChance:  enemy,
		PillChance:   pill,
		BlockChance:  block,
		MaxConnected: maxConnected,
	}
	if err := p.Validate(len(maxEntities)); err != nil {
		return Params{}, err
	}
	for row, n := range maxEntities {
		if n > 0 {
			p.CutoffRow = row + 1
		}
	}
	return p, nil
}

// Validate checks that every row array has exactly height entries.
func (p Params) Validate(height int) error {
	fields := []struct {
		name string
		rows []int
	}{
		{"max_entities", p.MaxEntities},
		{"enemy_chance", p.EnemyChance},
		{"pill_chance", p.PillChance},
		{"block_chance", p.BlockChance},
	}
	for _, f := range fields {
		if len(f.rows) != height {
			return &ConfigurationError{Field: f.name, Got: len(f.rows), Want: height}
		}
	}
	if p.MaxConnected < 0 {
		return &ConfigurationError{Field: "max_connected", Got: p.MaxConnected, Want: 0}
	}
	return nil
}

// Height returns the number of rows the params describe.
func (p Params) Height() int {
	return len(p.MaxEntities)
}

// DeriveParams computes population params for the canonical 8x16 board.
func DeriveParams(level int, allowPills, allowBlocks bool) Params {
	return DeriveParamsSized(DefaultWidth, DefaultHeight, level, allowPills, allowBlocks)
}

// DeriveParamsSized computes population params for a w x h board.
//
// The level is normalised to t = level/20. A growth curve in t picks how
// many rows from the bottom are populated; within that band a bell-shaped
// density peaking mid-band sets the entity cap and spawn chances per row.
// The result depends only on the inputs.
func DeriveParamsSized(w, h, level int, allowPills, allowBlocks bool) Params {
	level = min(max(level, MinLevel), MaxLevel)
	t := float64(level) / float64(MaxLevel)
	growth := 1 - math.Pow(1-t, 1+2.5*t)
	cutoff := int(math.Round(lerp(4, float64(h-3), growth)))
	cutoff = min(max(cutoff, 0), h)

	minEntities := 2
	switch {
	case level >= 15:
		minEntities = 5
	case level >= 8:
		minEntities = 3
	}

	p := Params{
		Level:        level,
		CutoffRow:    cutoff,
		MaxEntities:  make([]int, h),
		EnemyChance:  make([]int, h),
		PillChance:   make([]int, h),
		BlockChance:  make([]int, h),
		MaxConnected: DefaultMaxConnected,
	}

	for row := 0; row < cutoff; row++ {
		norm := float64(row) / float64(cutoff+1)
		x := 2*norm - 1
		density := math.Max(t*t, 1-x*x)
		factor := t * density

		p.MaxEntities[row] = max(minEntities, int(math.Floor(float64(w)*density)))
		p.EnemyChance[row] = int(math.Round(lerp(25, 90, density*factor)))
		if allowBlocks {
			p.BlockChance[row] = int(math.Round(lerp(2, 15, factor)))
		}
		if allowPills {
			p.PillChance[row] = int(math.Round(lerp(2, 20, factor)))
		}
	}
	return p
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
