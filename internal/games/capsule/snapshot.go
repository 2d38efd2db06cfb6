package capsule

import "github.com/vovakirdan/tui-capsule/internal/games/capsule/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateSettling     GameStateType = "settling"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Level        int
	Mode         string // "campaign" or "endless"
	Score        int
	Enemies      int
	DropInterval int
	Pending      int // Queued actions
	Piece        board.Piece
	Hints        [2]board.Template
	Board        []string // ASCII rows, top first
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case s.Phase() == PhaseWon:
		state = StateWin
	case s.Phase() == PhaseGameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case s.Phase() == PhaseCleared:
		state = StateLevelCleared
	case s.Phase() == PhaseSettling:
		state = StateSettling
	}

	piece, _ := s.Piece()
	return Snapshot{
		Tick:         s.Tick(),
		Level:        s.Level(),
		Mode:         string(s.Mode()),
		Score:        s.Score(),
		Enemies:      s.Grid().EnemyCount(),
		DropInterval: s.DropInterval(),
		Pending:      s.Pending(),
		Piece:        piece,
		Hints:        s.Hints(),
		Board:        s.Grid().Rows(),
		State:        state,
	}
}
