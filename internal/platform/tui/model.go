package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termsnake/internal/config"
	"termsnake/internal/core"
	"termsnake/internal/snake"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model driving one game session. It owns the
// single Game instance: input, pacing and drawing all pass through here,
// one event at a time.
type Model struct {
	game    *snake.Game
	cfg     config.Config
	palette config.Palette
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	rt      core.RuntimeConfig

	paused   bool
	quitting bool
}

// NewModel creates a model for the given game configuration.
func NewModel(cfg config.Config, rt core.RuntimeConfig) (Model, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return Model{}, fmt.Errorf("resolve colors: %w", err)
	}

	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false

	game := snake.New(cfg)
	game.Reset(rt)

	return Model{
		game:    game,
		cfg:     cfg,
		palette: palette,
		keys:    DefaultKeyMap(),
		help:    h,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH-1), // last row is the help bar
		rt:      rt,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.rt.ScreenW = msg.Width
		m.rt.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps a key press to a game command.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if m.game.Alive() {
			m.paused = !m.paused
		}
		return m, nil

	case core.ActionRestart:
		// Reset is safe in any state; gate on terminal states so a stray
		// R mid-run doesn't wipe the game.
		if !m.game.Alive() {
			m.rt.Seed = time.Now().UnixNano()
			m.game.Reset(m.rt)
			m.paused = false
		}
		return m, nil
	}

	if dir, ok := snake.DirectionForAction(action); ok && !m.paused {
		m.game.SetPendingDirection(dir)
		return m, nil
	}

	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
	}
	return m, nil
}

// handleTick advances the simulation and schedules the next tick at the
// score-derived rate.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.game.Tick()
	}
	return m, tickCmd(m.game.TickRate())
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// draw paints the full frame: HUD, bordered grid, chain, food, overlays.
func (m Model) draw() {
	s := m.screen
	s.Clear()

	cellW := m.cfg.Render.CellWidth
	gridW := m.cfg.Grid.Width * cellW
	gridH := m.cfg.Grid.Height

	// Screen too small for the board: overlay only, no drawing past edges
	if s.Width() < gridW+2 || s.Height() < gridH+4 {
		m.drawOverlay("Window too small", "Resize to continue")
		return
	}

	// Center the bordered board below the HUD
	ox := (s.Width() - gridW) / 2
	oy := core.Max(2, (s.Height()-gridH)/2)

	m.drawHUD()
	s.DrawBox(core.NewRect(ox-1, oy-1, gridW+2, gridH+2), m.palette.Border)

	// Food
	if food, ok := m.game.Food(); ok {
		for i := 0; i < cellW; i++ {
			s.SetColored(ox+food.X*cellW+i, oy+food.Y, '●', m.palette.Food)
		}
	}

	// Chain, head drawn distinctly
	for i, cell := range m.game.Cells() {
		color := m.palette.Body
		if i == 0 {
			color = m.palette.Head
		}
		for j := 0; j < cellW; j++ {
			s.SetColored(ox+cell.X*cellW+j, oy+cell.Y, '█', color)
		}
	}

	switch {
	case m.game.State() == snake.StateWon:
		m.drawOverlay("You Win!", fmt.Sprintf("Final Score: %d — Press R to restart", m.game.Score()))
	case m.game.State() == snake.StateGameOver:
		m.drawOverlay("Game Over", "Press R to restart, Q to quit")
	case m.paused:
		m.drawOverlay("Paused", "Press P to continue")
	}
}

// drawHUD draws the top status line.
func (m Model) drawHUD() {
	hud := fmt.Sprintf(" Snake — Score: %d  Speed: %d  Length: %d",
		m.game.Score(), m.game.TickRate(), m.game.Length())
	m.screen.DrawTextColored(0, 0, hud, m.palette.Text)
}

// drawOverlay draws a centered two-line message box.
func (m Model) drawOverlay(line1, line2 string) {
	s := m.screen

	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((s.Width()-boxW)/2, (s.Height()-boxH)/2, boxW, boxH)

	s.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ', core.ColorDefault)
	s.DrawBox(box, m.palette.Border)
	s.DrawTextCentered(box.Y+1, line1)
	s.DrawTextCentered(box.Y+3, line2)
}

// saveScreenshot dumps the current frame to ~/.termsnake/screenshots.
func (m Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".termsnake", "screenshots")
	//nolint:errcheck // Best-effort save, game continues regardless
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// Run starts the Bubble Tea program for one session.
func Run(cfg config.Config, rt core.RuntimeConfig) error {
	model, err := NewModel(cfg, rt)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
