package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-capsule/internal/core"
)

// recordingGame remembers the inputs it was stepped with.
type recordingGame struct {
	inputs  []core.InputFrame
	events  []string
	state   core.GameState
	resets  int
	resizes int
}

func (g *recordingGame) ID() string { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "frame") }
func (g *recordingGame) State() core.GameState { return g.state }
func (g *recordingGame) Resize(w, h int) { g.resizes++ }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	events := g.events
	g.events = nil
	return core.StepResult{State: g.state, Events: events}
}

func newTestModel(g *recordingGame, buf *bytes.Buffer) Model {
	logger := log.NewWithOptions(buf, log.Options{Formatter: log.LogfmtFormatter})
	return NewModel(g, logger, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})
}

func TestModelForwardsInputOnTick(t *testing.T) {
	g := &recordingGame{}
	var buf bytes.Buffer
	var m tea.Model = newTestModel(g, &buf)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(runeKey('x'))
	m, cmd := m.Update(TickMsg{})
	require.NotNil(t, cmd)

	require.Len(t, g.inputs, 1)
	assert.True(t, g.inputs[0].Has(core.ActionLeft))
	assert.True(t, g.inputs[0].Has(core.ActionRotateCW))

	_, _ = m.Update(TickMsg{})
	require.Len(t, g.inputs, 2)
	assert.False(t, g.inputs[1].Has(core.ActionLeft), "input is cleared after each tick")
}

func TestModelLogsEvents(t *testing.T) {
	g := &recordingGame{events: []string{"level 3 started"}}
	g.state = core.GameState{Level: 3, Score: 120}
	var buf bytes.Buffer
	var m tea.Model = newTestModel(g, &buf)

	m, _ = m.Update(TickMsg{})
	assert.Contains(t, buf.String(), "level 3 started")
	assert.Contains(t, buf.String(), "game=recording")

	g.state.GameOver = true
	m, _ = m.Update(TickMsg{})
	_, _ = m.Update(TickMsg{})
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("game finished")))
}

func TestModelQuit(t *testing.T) {
	g := &recordingGame{}
	var buf bytes.Buffer
	var m tea.Model = newTestModel(g, &buf)

	m, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelResizeUsesResizer(t *testing.T) {
	g := &recordingGame{}
	var buf bytes.Buffer
	var m tea.Model = newTestModel(g, &buf)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.Equal(t, 1, g.resizes)
	assert.Equal(t, 0, g.resets)
	assert.Contains(t, m.View(), "frame")
}
