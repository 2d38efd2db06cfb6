package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-capsule/internal/config"
	"github.com/vovakirdan/tui-capsule/internal/core"
	"github.com/vovakirdan/tui-capsule/internal/games/capsule"
	"github.com/vovakirdan/tui-capsule/internal/games/capsule/board"
)

// CapsuleSelection holds the user's choice from the mode selector.
type CapsuleSelection struct {
	Mode  capsule.Mode
	Level int // 0 = configured start level, 1-20 = specific level
}

// GameID returns the registry ID for the selected mode.
func (s CapsuleSelection) GameID() string {
	if s.Mode == capsule.ModeEndless {
		return "capsule_endless"
	}
	return "capsule"
}

var menuTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 2)

var (
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDetailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var capsuleModes = []string{
	"Campaign (20 levels)",
	"Endless Mode",
	"Select Level...",
}

// CapsuleModeModel lets users choose game mode and starting level.
type CapsuleModeModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	help          help.Model
	selection     CapsuleSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewCapsuleModeModel creates a new mode selection model.
func NewCapsuleModeModel(width, height int) CapsuleModeModel {
	return CapsuleModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m CapsuleModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CapsuleModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m CapsuleModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(capsuleModes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			return m.choose(CapsuleSelection{Mode: capsule.ModeCampaign})
		case 1:
			return m.choose(CapsuleSelection{Mode: capsule.ModeEndless})
		case 2:
			m.inLevelSelect = true
			m.levelCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m CapsuleModeModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	levelCount := config.MaxLevel - config.MinLevel + 1

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < levelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		return m.choose(CapsuleSelection{
			Mode:  capsule.ModeCampaign,
			Level: config.MinLevel + m.levelCursor,
		})
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

func (m CapsuleModeModel) choose(sel CapsuleSelection) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = sel
	return m, tea.Quit
}

// View renders the mode/level selection.
func (m CapsuleModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	if m.inLevelSelect {
		b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
		b.WriteString("\n\n")
		m.writeLevels(&b)
	} else {
		b.WriteString(centerText(menuTitleStyle.Render("C A P S U L E"), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText("Select game mode:", m.width))
		b.WriteString("\n\n")
		for i, mode := range capsuleModes {
			b.WriteString(centerText(menuLine(mode, i == m.cursor), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keyMapper.menu), m.width))
	return b.String()
}

// writeLevels lists a window of levels around the cursor so the list fits
// short terminals.
func (m CapsuleModeModel) writeLevels(b *strings.Builder) {
	levelCount := config.MaxLevel - config.MinLevel + 1
	visible := core.Clamp(m.height-8, 3, levelCount)
	first := core.Clamp(m.levelCursor-visible/2, 0, levelCount-visible)

	for i := first; i < first+visible; i++ {
		level := config.MinLevel + i
		params := board.DeriveParams(level, true, false)
		label := fmt.Sprintf("Level %2d", level)
		detail := menuDetailStyle.Render(fmt.Sprintf("  %2d rows", params.CutoffRow))
		b.WriteString(centerText(menuLine(label, i == m.levelCursor)+detail, m.width))
		b.WriteString("\n")
	}
}

func menuLine(text string, selected bool) string {
	if selected {
		return menuSelectedStyle.Render("> " + text)
	}
	return menuItemStyle.Render("  " + text)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// Selected returns the selection, or nil if still choosing.
func (m CapsuleModeModel) Selected() *CapsuleSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m CapsuleModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m CapsuleModeModel) WantsBack() bool {
	return m.back
}

// RunCapsuleModeSelector runs the mode selection and returns the selection.
// A nil selection means the user left without choosing.
func RunCapsuleModeSelector(cfg core.RuntimeConfig) (*CapsuleSelection, core.RuntimeConfig, error) {
	model := NewCapsuleModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(CapsuleModeModel)
	if !ok {
		return nil, cfg, nil
	}
	if m.width > 0 && m.height > 0 {
		cfg.ScreenW = m.width
		cfg.ScreenH = m.height
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
