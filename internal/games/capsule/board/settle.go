package board

// StepResult describes the effect of one settle step.
type StepResult struct {
	Moved          int
	Broken         int
	EnemiesCleared int
	Settled        bool
}

// SettleStep advances the board one step toward rest: a gravity tick, or a
// break pass once gravity has nothing left to move. Settled is true when
// neither gravity nor breaking changed anything and no broken cells were
// pending from the previous pass.
func (g *Grid) SettleStep(minRun int) StepResult {
	if moved := g.TickGravity(); moved > 0 {
		return StepResult{Moved: moved}
	}

	hadBroken := g.BrokenCount() > 0
	before := g.EnemyCount()
	broken := g.BreakRuns(minRun)
	return StepResult{
		Broken:         broken,
		EnemiesCleared: before - g.EnemyCount(),
		Settled:        broken == 0 && !hadBroken,
	}
}

// SettleResult totals a full settle.
type SettleResult struct {
	Steps          int
	Moved          int
	Broken         int
	EnemiesCleared int
	Chains         int // break passes that cleared something
}

// Settle runs SettleStep until the board is at rest.
func (g *Grid) Settle(minRun int) SettleResult {
	var res SettleResult
	for {
		step := g.SettleStep(minRun)
		res.Steps++
		res.Moved += step.Moved
		res.Broken += step.Broken
		res.EnemiesCleared += step.EnemiesCleared
		if step.Broken > 0 {
			res.Chains++
		}
		if step.Settled {
			return res
		}
	}
}
