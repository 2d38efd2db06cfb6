package board

// RecolorAttempts bounds the color re-rolls spent keeping a generated cell
// under Params.MaxConnected. After that the last color stands.
const RecolorAttempts = 10

type spawnCandidate struct {
	kind   Kind
	chance int
}

// ResetAndPopulate empties the grid and fills it according to params.
//
// Each row visits its columns in shuffled order until the row's entity cap
// is reached. For each column the three candidate kinds are shuffled, one
// percentage roll in [0, 100] is made, and the first candidate whose chance
// covers the roll is placed with a random playable color.
func (g *Grid) ResetAndPopulate(params Params, rng Rand) error {
	if err := params.Validate(g.H); err != nil {
		return err
	}
	g.Reset()

	cols := make([]int, g.W)
	for row := 0; row < g.H; row++ {
		limit := params.MaxEntities[row]
		if limit <= 0 {
			continue
		}

		for i := range cols {
			cols[i] = i
		}
		rng.Shuffle(len(cols), func(i, j int) { cols[i], cols[j] = cols[j], cols[i] })

		candidates := [3]spawnCandidate{
			{KindSpill, params.PillChance[row]},
			{KindBlock, params.BlockChance[row]},
			{KindEnemy, params.EnemyChance[row]},
		}

		placed := 0
		for _, col := range cols {
			if placed >= limit {
				break
			}

			rng.Shuffle(len(candidates), func(i, j int) {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			})
			roll := rng.Intn(101)

			kind := KindEmpty
			for _, cand := range candidates {
				if cand.chance > 0 && roll <= cand.chance {
					kind = cand.kind
					break
				}
			}
			if kind == KindEmpty {
				continue
			}

			g.set(row, col, Cell{Kind: kind, Color: randomColor(rng)})
			if params.MaxConnected > 0 {
				g.recolor(row, col, params.MaxConnected, rng)
			}
			placed++
		}
	}
	return nil
}

func (g *Grid) recolor(row, col, maxConnected int, rng Rand) {
	idx := g.index(row, col)
	for attempt := 0; attempt < RecolorAttempts && g.longestRun(row, col) > maxConnected; attempt++ {
		g.cells[idx].Color = randomColor(rng)
	}
}

func randomColor(rng Rand) Color {
	return PlayableColors[rng.Intn(len(PlayableColors))]
}
