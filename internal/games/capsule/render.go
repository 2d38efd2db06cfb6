package capsule

import (
	"fmt"

	"github.com/vovakirdan/tui-capsule/internal/core"
	"github.com/vovakirdan/tui-capsule/internal/games/capsule/board"
)

const (
	cellWidth  = 2  // Screen columns per board cell
	hudHeight  = 2  // Title and status lines above the board
	panelGap   = 2  // Columns between the board and the side panel
	panelWidth = 14 // Side panel with hints and counters
)

// cellColors maps board colors to screen colors for capsules.
var cellColors = map[board.Color]core.Color{
	board.ColorBlack:  core.ColorGray,
	board.ColorRed:    core.ColorRed,
	board.ColorCyan:   core.ColorCyan,
	board.ColorYellow: core.ColorYellow,
	board.ColorGreen:  core.ColorGreen,
	board.ColorBlue:   core.ColorBlue,
	board.ColorWhite:  core.ColorWhite,
}

// enemyColors highlights enemies against capsules of the same color.
var enemyColors = map[board.Color]core.Color{
	board.ColorRed:    core.ColorBrightRed,
	board.ColorCyan:   core.ColorBrightCyan,
	board.ColorYellow: core.ColorBrightYellow,
	board.ColorWhite:  core.ColorBrightWhite,
}

func (g *Game) boardWidth() int {
	return g.cfg.Board.Width*cellWidth + 2
}

func (g *Game) boardHeight() int {
	return g.cfg.Board.Height + 2
}

func (g *Game) requiredWidth() int {
	return g.boardWidth() + panelGap + panelWidth
}

func (g *Game) requiredHeight() int {
	return hudHeight + g.boardHeight()
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	layoutX := (g.screenW - g.requiredWidth()) / 2
	layoutY := max((g.screenH-g.requiredHeight())/2, 0)
	area := core.NewRect(layoutX, layoutY+hudHeight, g.boardWidth(), g.boardHeight())

	g.renderHUD(dst, layoutX, layoutY)
	g.renderBoard(dst, area)
	g.renderPanel(dst, area.Right()+panelGap, area.Y)
	g.renderOverlay(dst, area)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.requiredWidth(), g.requiredHeight()), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	dst.DrawTextWithColor(x, y, g.Title(), core.ColorBrightWhite)
	status := fmt.Sprintf("Level %d  Score %d", g.session.Level(), g.session.Score())
	dst.DrawText(x, y+1, status)
}

// renderBoard draws the well. Row 0 of the grid is the bottom line.
func (g *Game) renderBoard(dst *core.Screen, area core.Rect) {
	dst.DrawBox(area, core.ColorGray)

	grid := g.session.Grid()
	toScreen := func(row, col int) (int, int) {
		return area.X + 1 + col*cellWidth, area.Y + 1 + (grid.H - 1 - row)
	}

	grid.Each(func(row, col int, c board.Cell) {
		x, y := toScreen(row, col)
		drawCell(dst, x, y, c)
	})

	piece, falling := g.session.Piece()
	if !falling {
		return
	}
	lr, lc := piece.LeftPosition()
	rr, rc := piece.RightPosition()
	if x, y := toScreen(lr, lc); grid.InBounds(lr, lc) {
		drawCell(dst, x, y, piece.Left)
	}
	if x, y := toScreen(rr, rc); grid.InBounds(rr, rc) {
		drawCell(dst, x, y, piece.Right)
	}
}

// glyph returns the two runes that draw c.
func glyph(c board.Cell) (rune, rune) {
	switch c.Kind {
	case board.KindEnemy:
		return '{', '}'
	case board.KindBlock:
		return '▓', '▓'
	case board.KindSpill:
		return '(', ')'
	case board.KindBroken:
		return '*', '*'
	case board.KindPill:
		switch c.Orientation {
		case board.East:
			return '(', '█'
		case board.West:
			return '█', ')'
		default:
			return '[', ']'
		}
	}
	return ' ', ' '
}

func drawCell(dst *core.Screen, x, y int, c board.Cell) {
	if c.IsEmpty() {
		return
	}
	color := cellColors[c.Color]
	switch c.Kind {
	case board.KindEnemy:
		if bright, ok := enemyColors[c.Color]; ok {
			color = bright
		}
	case board.KindBlock:
		color = core.ColorGray
	case board.KindBroken:
		color = core.ColorWhite
	}
	left, right := glyph(c)
	dst.SetWithColor(x, y, left, color)
	dst.SetWithColor(x+1, y, right, color)
}

func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "NEXT")
	for i, tpl := range g.session.Hints() {
		row := y + 1 + i
		if tpl.IsNone() {
			dst.DrawTextWithColor(x, row, "--", core.ColorGray)
			continue
		}
		drawCell(dst, x, row, board.NewPill(tpl.Left, board.East))
		drawCell(dst, x+cellWidth, row, board.NewPill(tpl.Right, board.West))
	}

	mode := "Campaign"
	if g.mode == ModeEndless {
		mode = "Endless"
	}
	lines := []string{
		"",
		fmt.Sprintf("Enemies %d", g.session.Grid().EnemyCount()),
		fmt.Sprintf("Speed   %d", g.session.DropInterval()),
		mode,
	}
	for i, line := range lines {
		dst.DrawText(x, y+3+i, line)
	}
	if chain := g.session.Chain(); chain > 1 {
		dst.DrawTextWithColor(x, y+3+len(lines), fmt.Sprintf("Chain x%d", chain), core.ColorBrightYellow)
	}
}

// renderOverlay draws a centered message over the well for non-playing states.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect) {
	var title, hint string
	color := core.ColorBrightWhite
	switch {
	case g.session.Phase() == PhaseWon:
		title, hint = "YOU WIN", "R restart"
		color = core.ColorBrightYellow
	case g.session.Phase() == PhaseGameOver:
		title, hint = "GAME OVER", "R restart"
		color = core.ColorBrightRed
	case g.paused:
		title, hint = "PAUSED", "P resume"
	case g.session.Phase() == PhaseCleared:
		title = "CLEARED"
		hint = fmt.Sprintf("Score %d", g.session.Score())
		color = core.ColorGreen
	default:
		return
	}

	box := area.Centered(area.W, 4)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawTextWithColor(box.X+(box.W-len(title))/2, box.Y+1, title, color)
	dst.DrawTextWithColor(box.X+(box.W-len(hint))/2, box.Y+2, hint, core.ColorGray)
}
