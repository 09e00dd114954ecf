package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov87/snakepit/internal/config"
	"github.com/akarpov87/snakepit/internal/core"
	"github.com/akarpov87/snakepit/internal/engine"
	"github.com/akarpov87/snakepit/internal/leaderboard"
)

// countdownStart is the number of seconds shown before a match begins.
const countdownStart = 3

// MatchOptions configures a single interactive match.
type MatchOptions struct {
	Preset     config.SpeedPreset
	PlayerName string
	ScreenW    int
	ScreenH    int
}

// Model is the Bubble Tea model for an interactive match.
type Model struct {
	eng        *engine.Engine
	screen     *core.Screen
	store      *leaderboard.Store
	cfg        config.Config
	opts       MatchOptions
	keyMapper  *KeyMapper
	wait       time.Duration
	countdown  int
	pending    engine.Action
	hasPending bool
	scoreSaved bool
	tooSmall   bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a match model for the given engine and options.
func NewModel(e *engine.Engine, store *leaderboard.Store, cfg config.Config, opts MatchOptions) Model {
	wait, err := cfg.MoveWait(opts.Preset)
	if err != nil {
		wait, _ = cfg.MoveWait(config.SpeedMedium)
	}

	m := Model{
		eng:       e,
		screen:    core.NewScreen(opts.ScreenW, opts.ScreenH),
		store:     store,
		cfg:       cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		wait:      time.Duration(wait) * time.Millisecond,
		countdown: countdownStart,
	}
	m.tooSmall = !m.fits(opts.ScreenW, opts.ScreenH)
	return m
}

// moveWait returns the wait before the next snake move. In hardcore mode
// the wait shrinks as the score grows.
func (m Model) moveWait() time.Duration {
	if m.opts.Preset == config.SpeedMegaHardcore {
		return time.Duration(m.cfg.HardcoreWait(m.eng.Score())) * time.Millisecond
	}
	return m.wait
}

// fits reports whether the board plus HUD fits in the given screen.
func (m Model) fits(w, h int) bool {
	need := m.eng.BoardSize() + 2
	return w >= need && h >= need+2
}

// Init starts the pre-match countdown.
func (m Model) Init() tea.Cmd {
	return countdownCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.tooSmall = !m.fits(msg.Width, msg.Height)
		return m, nil

	case CountdownMsg:
		return m.handleCountdown()

	case MoveMsg:
		return m.handleMove()
	}

	return m, nil
}

// handleKey processes keyboard input. Steering keys overwrite any
// earlier unapplied key so the last press before a move wins.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ok, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if ok {
		m.pending = action
		m.hasPending = true
		return m, nil
	}

	switch msg.String() {
	case "r":
		if m.eng.Done() {
			return m.restart()
		}
	case "b", "esc":
		if m.eng.Done() {
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// restart resets the engine and runs the countdown again.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.eng.Reset()
	m.countdown = countdownStart
	m.pending = engine.Idle
	m.hasPending = false
	m.scoreSaved = false
	return m, countdownCmd()
}

func (m Model) handleCountdown() (tea.Model, tea.Cmd) {
	m.countdown--
	if m.countdown > 0 {
		return m, countdownCmd()
	}
	return m, moveCmd(m.moveWait())
}

// handleMove advances the match by one cell.
func (m Model) handleMove() (tea.Model, tea.Cmd) {
	if m.eng.Done() {
		return m, nil
	}
	if m.tooSmall {
		// Keep ticking so the match resumes once the window grows.
		return m, moveCmd(m.moveWait())
	}

	action := engine.Idle
	if m.hasPending {
		action = m.pending
		m.hasPending = false
	}

	if err := m.eng.Play(action); err != nil {
		return m, nil
	}

	if m.eng.Done() {
		m.saveScore()
		return m, nil
	}

	return m, moveCmd(m.moveWait())
}

// saveScore records the final score once per match. Zero scores are not
// worth a leaderboard row.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.eng.Score() <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the overlay shows the score regardless
	m.store.Save(m.opts.PlayerName, m.eng.Score(), m.eng.Steps())
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// render draws the full frame into the screen buffer.
func (m Model) render() {
	m.screen.Clear()
	m.renderHUD()

	if m.tooSmall {
		m.renderOverlay("Window too small", "Resize to continue")
		return
	}

	m.renderBoard()

	switch {
	case m.countdown > 0:
		m.renderOverlay(fmt.Sprintf("Starting in %d", m.countdown), "W/A/S/D or arrows to steer")
	case m.won():
		m.renderOverlay("You Win!", fmt.Sprintf("Final Score: %d", m.eng.Score()))
	case m.eng.Done():
		m.renderOverlay("Game Over", "R: restart  Esc: menu  Q: quit")
	}
}

// won reports whether the match ended with the snake filling the board.
func (m Model) won() bool {
	size := m.eng.BoardSize()
	return m.eng.Done() && m.eng.Length() == size*size
}

// renderHUD draws the top status bar.
func (m Model) renderHUD() {
	hud := fmt.Sprintf(" Snakepit — Score: %d  Steps: %d  Speed: %s", m.eng.Score(), m.eng.Steps(), m.opts.Preset)
	m.screen.DrawText(0, 0, hud)
	m.screen.DrawHLine(0, 1, m.screen.Width(), '─')
}

// renderBoard draws the bordered board, the food, and the snake with a
// head-to-tail gradient.
func (m Model) renderBoard() {
	size := m.eng.BoardSize()
	offX := (m.screen.Width() - size - 2) / 2
	offY := 2 + (m.screen.Height()-2-size-2)/2
	if offX < 0 {
		offX = 0
	}
	if offY < 2 {
		offY = 2
	}

	m.screen.DrawBox(core.NewRect(offX, offY, size+2, size+2))

	// Interior is offset one cell past the border.
	baseX := offX + 1
	baseY := offY + 1

	food := m.eng.FoodPosition()
	m.screen.SetCell(baseX+food.X, baseY+food.Y, '*', core.ColorBrightRed)

	body := m.eng.Body()
	gradient := SnakeGradient(len(body))
	for i := len(body) - 1; i >= 0; i-- {
		glyph := 'o'
		if i == 0 {
			glyph = 'O'
		}
		m.screen.SetCellHex(baseX+body[i].X, baseY+body[i].Y, glyph, gradient[i])
	}
}

// renderOverlay draws a centered overlay message box.
func (m Model) renderOverlay(line1, line2 string) {
	w := m.screen.Width()
	h := m.screen.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	m.screen.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	m.screen.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	m.screen.DrawTextCentered(boxY+1, line1)
	m.screen.DrawTextCentered(boxY+3, line2)
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts a full-screen Bubble Tea program for a single match.
func Run(e *engine.Engine, store *leaderboard.Store, cfg config.Config, opts MatchOptions) error {
	p := tea.NewProgram(
		NewModel(e, store, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
