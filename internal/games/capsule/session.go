package capsule

import (
	"fmt"
	"math/rand"

	"github.com/gammazero/deque"

	"github.com/vovakirdan/tui-capsule/internal/config"
	"github.com/vovakirdan/tui-capsule/internal/core"
	"github.com/vovakirdan/tui-capsule/internal/games/capsule/board"
)

// Phase is the session's position in the tick cycle.
type Phase string

const (
	PhaseFalling  Phase = "falling"
	PhaseSettling Phase = "settling"
	PhaseCleared  Phase = "level_cleared"
	PhaseGameOver Phase = "game_over"
	PhaseWon      Phase = "win"
)

// Mode selects what happens after a level is cleared.
type Mode string

const (
	ModeCampaign Mode = "campaign" // advance through the levels, win after the last
	ModeEndless  Mode = "endless"  // keep generating boards, never win
)

// pieceActions are the actions that move the live piece, in the order
// they are applied within one tick.
var pieceActions = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionRotateCW,
	core.ActionRotateCCW,
	core.ActionDrop,
}

// Session owns one game: the grid, the live piece, the bag and the random
// source. Step advances it by one tick.
//
// A tick in the falling phase applies input and the drop timer to the
// piece. Once the piece locks, the settling phase runs one gravity or break
// step every GravityEvery ticks until the board is at rest, and only then is
// the next piece dealt. Piece input arriving while the board settles is
// queued and replayed against the new piece.
type Session struct {
	cfg        config.CapsuleConfig
	mode       Mode
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	grid  *board.Grid
	bag   *board.Bag
	piece board.Piece
	fresh bool // the bag has not dealt since the level began

	phase Phase
	level int
	score int
	chain int
	tick  uint64

	dropTimer   int
	locking     bool
	lockTimer   int
	settleTimer int
	clearTimer  int

	pending deque.Deque[core.Action]
	events  []string
}

// NewSession starts a game at the configured initial level.
func NewSession(cfg config.CapsuleConfig, mode Mode, seed int64) *Session {
	s := &Session{
		cfg:        cfg,
		mode:       mode,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		grid:       board.NewGrid(cfg.Board.Width, cfg.Board.Height),
		bag:        board.NewBag(),
	}
	s.startLevel(s.difficulty.InitialLevel())
	return s
}

// startLevel populates a fresh board and lets any loose cells settle
// before the first piece is dealt.
func (s *Session) startLevel(level int) {
	s.level = level
	s.piece = board.Piece{}
	s.locking = false
	s.dropTimer = 0
	s.settleTimer = 0
	s.chain = 0
	s.pending.Clear()

	params := board.DeriveParamsSized(s.grid.W, s.grid.H, level,
		s.cfg.Difficulty.AllowPills, s.cfg.Difficulty.AllowBlocks)
	params.MaxConnected = s.cfg.Rules.MaxConnected
	if err := s.grid.ResetAndPopulate(params, s.rng); err != nil {
		s.phase = PhaseGameOver
		s.emit("board generation failed: %v", err)
		return
	}

	s.bag.Reset(s.rng)
	s.fresh = true
	s.phase = PhaseSettling
	s.emit("level %d started with %d enemies", level, s.grid.EnemyCount())
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) {
	s.tick++
	s.events = s.events[:0]

	switch s.phase {
	case PhaseFalling:
		s.stepFalling(in)
	case PhaseSettling:
		s.queueInput(in)
		s.stepSettling()
	case PhaseCleared:
		s.stepCleared()
	}
}

func (s *Session) queueInput(in core.InputFrame) {
	for _, a := range pieceActions {
		if in.Has(a) && s.pending.Len() < s.cfg.Rules.InputBuffer {
			s.pending.PushBack(a)
		}
	}
}

func (s *Session) stepFalling(in core.InputFrame) {
	for s.pending.Len() > 0 && s.phase == PhaseFalling {
		s.apply(s.pending.PopFront())
	}
	for _, a := range pieceActions {
		if s.phase != PhaseFalling {
			return
		}
		if in.Has(a) {
			s.apply(a)
		}
	}
	if s.phase != PhaseFalling {
		return
	}

	if s.locking {
		if !s.grid.CanPieceDescend(s.piece) {
			s.lockTimer--
			if s.lockTimer <= 0 {
				s.lock()
			}
			return
		}
		// Slid off the ledge; resume falling.
		s.locking = false
	}

	interval := s.DropInterval()
	if in.Has(core.ActionDown) {
		interval = min(interval, s.cfg.Timing.SoftDropEvery)
	}
	s.dropTimer++
	if s.dropTimer < interval {
		return
	}
	s.dropTimer = 0

	if s.piece.Descend(s.grid) {
		return
	}
	if s.cfg.Timing.LockDelay == 0 {
		s.lock()
		return
	}
	s.locking = true
	s.lockTimer = s.cfg.Timing.LockDelay
}

func (s *Session) apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		s.piece.MoveLeft(s.grid)
	case core.ActionRight:
		s.piece.MoveRight(s.grid)
	case core.ActionRotateCW:
		s.piece.RotateClockwise(s.grid)
	case core.ActionRotateCCW:
		s.piece.RotateCounterClockwise(s.grid)
	case core.ActionDrop:
		s.piece.HardDrop(s.grid)
		s.lock()
	}
}

// lock commits the live piece to the grid and starts settling.
func (s *Session) lock() {
	s.grid.Place(s.piece)
	s.piece = board.Piece{}
	s.locking = false
	s.dropTimer = 0
	s.settleTimer = 0
	s.chain = 0
	s.phase = PhaseSettling
}

func (s *Session) stepSettling() {
	s.settleTimer++
	if s.settleTimer < s.cfg.Timing.GravityEvery {
		return
	}
	s.settleTimer = 0

	step := s.grid.SettleStep(s.cfg.Rules.MinRun)
	if step.Broken > 0 {
		s.chain++
		points := step.EnemiesCleared * s.cfg.Scoring.EnemyPoints * s.chain
		s.score += points
		if step.EnemiesCleared > 0 {
			s.emit("cleared %d enemies, chain %d, +%d", step.EnemiesCleared, s.chain, points)
		}
	}
	if step.Settled {
		s.afterSettle()
	}
}

// afterSettle decides what follows a board at rest: a cleared level, the
// end of the game, or the next piece.
func (s *Session) afterSettle() {
	if s.grid.EnemyCount() == 0 {
		s.phase = PhaseCleared
		s.clearTimer = s.cfg.Timing.ClearPause
		s.pending.Clear()
		s.emit("level %d cleared, score %d", s.level, s.score)
		return
	}
	if s.grid.IsGameOver() {
		s.gameOver("spawn cells filled")
		return
	}

	tpl := s.bag.Current()
	if !s.fresh {
		tpl = s.bag.Next(s.rng)
	}
	s.fresh = false

	piece := tpl.Spawn(s.grid)
	if !s.grid.CanPlace(piece) {
		s.gameOver("no room to spawn")
		return
	}
	s.piece = piece
	s.phase = PhaseFalling
	s.dropTimer = 0
}

func (s *Session) stepCleared() {
	s.clearTimer--
	if s.clearTimer > 0 {
		return
	}

	next, done := s.difficulty.NextLevel(s.level)
	if s.mode == ModeEndless {
		// Endless play repeats the last level once it is reached.
		s.startLevel(next)
		return
	}
	if done || !s.difficulty.IsEnabled() {
		s.phase = PhaseWon
		s.emit("campaign won, score %d", s.score)
		return
	}
	s.startLevel(next)
}

func (s *Session) gameOver(reason string) {
	s.phase = PhaseGameOver
	s.pending.Clear()
	s.emit("game over at level %d: %s, score %d", s.level, reason, s.score)
}

func (s *Session) emit(format string, args ...any) {
	s.events = append(s.events, fmt.Sprintf(format, args...))
}

// DropInterval returns the ticks between drops at the current level.
func (s *Session) DropInterval() int {
	return s.difficulty.DropInterval(s.cfg.Timing.DropEvery, s.level)
}

// Grid returns the board. Callers must not modify it.
func (s *Session) Grid() *board.Grid { return s.grid }

// Piece returns the live piece, if one is falling.
func (s *Session) Piece() (board.Piece, bool) {
	return s.piece, s.phase == PhaseFalling
}

// Hints returns the next two templates in the bag.
func (s *Session) Hints() [2]board.Template {
	if s.fresh {
		// The first deal of a level takes the template under the cursor.
		return [2]board.Template{s.bag.Current(), s.bag.Hints()[0]}
	}
	return s.bag.Hints()
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Level returns the level being played.
func (s *Session) Level() int { return s.level }

// Score returns the points earned so far.
func (s *Session) Score() int { return s.score }

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Tick returns the number of ticks stepped.
func (s *Session) Tick() uint64 { return s.tick }

// Pending returns the number of queued actions.
func (s *Session) Pending() int { return s.pending.Len() }

// Chain returns the break passes counted since the last lock.
func (s *Session) Chain() int { return s.chain }

// Events returns what happened during the last tick. The slice is reused
// by the next Step.
func (s *Session) Events() []string { return s.events }

// Finished reports whether the session has ended, in defeat or victory.
func (s *Session) Finished() bool {
	return s.phase == PhaseGameOver || s.phase == PhaseWon
}
