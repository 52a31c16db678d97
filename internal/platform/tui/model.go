package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Overlay and HUD colors.
const (
	panelFG   core.Color = "#ecf0f1"
	panelBG   core.Color = "#2c3e50"
	hudFG     core.Color = "#f1c40f"
	flashFG   core.Color = "#95a5a6"
	accentFG  core.Color = "#e67e22"
	flashTime            = 3 * time.Second
)

var pauseItems = []string{"Resume", "Restart"}

// ModelConfig holds everything a game screen needs.
type ModelConfig struct {
	Controller    *engine.Controller
	Sink          *engine.FrameSink
	Theme         snake.Theme
	Border        core.Color
	Renderer      *ScreenRenderer // nil renders for the local terminal
	ScreenshotDir string          // empty disables screenshots
	Logger        *log.Logger
	User          string // shown in the HUD when set
	Width         int
	Height        int
}

// Model is the Bubble Tea model for one snake game screen. The controller
// owns the game; the model turns keys into controller calls and frames
// into terminal output.
type Model struct {
	ctrl     *engine.Controller
	sink     *engine.FrameSink
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	renderer *ScreenRenderer
	logger   *log.Logger

	theme         snake.Theme
	border        core.Color
	screenshotDir string
	user          string

	frame       snake.Frame
	pauseCursor int
	flash       string
	flashUntil  time.Time
	width       int
	height      int
	quitting    bool
}

// NewModel creates a game screen. The controller is expected to be idle;
// the player starts the first run with Enter.
func NewModel(cfg ModelConfig) Model {
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = defaultScreenRenderer
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.Width

	return Model{
		ctrl:          cfg.Controller,
		sink:          cfg.Sink,
		keys:          DefaultKeyMap(),
		help:          h,
		screen:        core.NewScreen(cfg.Width, cfg.Height),
		renderer:      renderer,
		logger:        logger,
		theme:         cfg.Theme,
		border:        cfg.Border,
		screenshotDir: cfg.ScreenshotDir,
		user:          cfg.User,
		frame:         cfg.Controller.Frame(),
		width:         cfg.Width,
		height:        cfg.Height,
	}
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.sink.Frames(), m.sink.Done())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if f := snake.Frame(msg); newerFrame(f, m.frame) {
			m.frame = f
		}
		return m, waitForFrame(m.sink.Frames(), m.sink.Done())

	case sinkClosedMsg:
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.ctrl.Close()
		m.sink.Close()
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	if m.ctrl.Status() == snake.Paused {
		m.handlePauseMenu(action)
	} else {
		if action == core.ActionPause {
			m.pauseCursor = 0
		}
		m.ctrl.Handle(action)
	}

	if f := m.ctrl.Frame(); newerFrame(f, m.frame) {
		m.frame = f
	}
	return m, nil
}

// handlePauseMenu moves the pause menu cursor or applies the selection.
func (m *Model) handlePauseMenu(action core.Action) {
	switch action {
	case core.ActionUp:
		m.pauseCursor = (m.pauseCursor + len(pauseItems) - 1) % len(pauseItems)
	case core.ActionDown:
		m.pauseCursor = (m.pauseCursor + 1) % len(pauseItems)
	case core.ActionStart:
		if m.pauseCursor == 0 {
			m.ctrl.Resume()
		} else {
			m.ctrl.Restart()
		}
		m.pauseCursor = 0
	default:
		m.ctrl.Handle(action)
	}
}

// saveScreenshot writes the current frame as a PNG.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		m.setFlash("Screenshots are disabled")
		return
	}
	path, err := SaveScreenshot(m.frame, m.theme, m.screenshotDir, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		m.setFlash("Screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setFlash("Saved " + path)
}

func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashUntil = time.Now().Add(flashTime)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
	m.screen.Resize(m.width, max(m.height-lipgloss.Height(helpView), 0))
	m.screen.Clear()
	m.draw()

	return m.renderer.Render(m.screen) + "\n" + helpView
}

// boardLayout returns the pixel scale of the terminal canvas: one grid cell
// is two columns wide and one row tall.
func (m Model) boardLayout() (pxPerCol, pxPerRow, cols, rows int) {
	pxPerRow = max(m.frame.CellSize, 1)
	pxPerCol = max(m.frame.CellSize/2, 1)
	size := m.frame.GridCount * m.frame.CellSize
	cols = (size + pxPerCol - 1) / pxPerCol
	rows = (size + pxPerRow - 1) / pxPerRow
	return pxPerCol, pxPerRow, cols, rows
}

// draw renders the HUD, board and overlays into the screen buffer.
func (m Model) draw() {
	s := m.screen
	pxPerCol, pxPerRow, cols, rows := m.boardLayout()
	boxW, boxH := cols+2, rows+2

	if s.Width() < boxW || s.Height() < boxH+2 {
		s.DrawTextCentered(s.Height()/2-1, "Terminal too small")
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("need %dx%d, have %dx%d", boxW, boxH+3, m.width, m.height))
		return
	}

	x0 := (s.Width() - boxW) / 2
	y0 := 1

	m.drawHUD(x0, boxW)

	s.DrawStyledBox(core.NewRect(x0, y0, boxW, boxH), m.border)
	size := m.frame.GridCount * m.frame.CellSize
	canvas := core.NewScreenCanvas(s, x0+1, y0+1, size, size, pxPerCol, pxPerRow)
	snake.DrawFrame(canvas, m.frame, m.theme)

	board := core.NewRect(x0+1, y0+1, cols, rows)
	switch m.frame.Status {
	case snake.NotStarted:
		m.drawOverlay(board, []string{
			"S N A K E",
			"",
			"Press Enter to start",
			fmt.Sprintf("High score: %d", m.frame.HighScore),
		}, -1)
	case snake.Paused:
		lines := []string{"PAUSED", ""}
		for i, item := range pauseItems {
			prefix := "  "
			if i == m.pauseCursor {
				prefix = "> "
			}
			lines = append(lines, prefix+item+"  ")
		}
		m.drawOverlay(board, lines, 2+m.pauseCursor)
	case snake.Over:
		lines := []string{
			"GAME OVER",
			outcomeText(m.frame.Outcome),
			"",
			fmt.Sprintf("Score: %d", m.frame.Score),
		}
		if m.frame.Score > 0 && m.frame.Score >= m.frame.HighScore {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "", "Enter or R to restart")
		m.drawOverlay(board, lines, -1)
	}

	if m.flash != "" && time.Now().Before(m.flashUntil) {
		s.DrawStyledText(x0, y0+boxH, m.flash, flashFG, core.ColorDefault)
	}
}

// drawHUD writes the score line above the board.
func (m Model) drawHUD(x0, boxW int) {
	left := fmt.Sprintf("Score: %d  High: %d", m.frame.Score, m.frame.HighScore)
	m.screen.DrawStyledText(x0, 0, left, hudFG, core.ColorDefault)

	right := fmt.Sprintf("Length: %d", m.frame.Length)
	if m.user != "" {
		right = m.user + "  " + right
	}
	m.screen.DrawStyledText(x0+boxW-len([]rune(right)), 0, right, hudFG, core.ColorDefault)
}

// drawOverlay draws a centered panel over the board. The line at index
// highlight, if any, is drawn in the accent color.
func (m Model) drawOverlay(board core.Rect, lines []string, highlight int) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	panelW := min(width+4, board.W)
	panelH := min(len(lines)+2, board.H)
	px := board.X + (board.W-panelW)/2
	py := board.Y + (board.H-panelH)/2

	m.screen.FillRect(core.NewRect(px, py, panelW, panelH), core.Cell{Rune: ' ', BG: panelBG})

	for i, l := range lines {
		fg := panelFG
		if i == highlight {
			fg = accentFG
		}
		lx := px + (panelW-len([]rune(l)))/2
		m.screen.DrawStyledText(lx, py+1+i, l, fg, panelBG)
	}
}

func outcomeText(o snake.Outcome) string {
	switch o {
	case snake.OutcomeHitWall:
		return "You hit the wall"
	case snake.OutcomeHitSelf:
		return "You ran into yourself"
	case snake.OutcomeBoardFull:
		return "Board full. You win!"
	default:
		return ""
	}
}

// Options configures a local game.
type Options struct {
	Runtime       core.RuntimeConfig // Initial terminal size and RNG seed
	Rules         snake.Rules
	Theme         snake.Theme
	Border        core.Color
	Store         storage.Backend
	Logger        *log.Logger
	ScreenshotDir string
}

// Run plays snake in the local terminal until the player quits.
func Run(opts Options) error {
	sink := engine.NewFrameSink(engine.LocalSession, 16)
	ctrl := engine.NewController(engine.ControllerConfig{
		Rules:     opts.Rules,
		Store:     opts.Store,
		Results:   opts.Store,
		Scheduler: clock.NewReal(),
		Renderer:  sink,
		Logger:    opts.Logger,
		Session:   engine.LocalSession,
		Seed:      opts.Runtime.Seed,
	})
	defer ctrl.Close()
	defer sink.Close()

	model := NewModel(ModelConfig{
		Controller:    ctrl,
		Sink:          sink,
		Theme:         opts.Theme,
		Border:        opts.Border,
		ScreenshotDir: opts.ScreenshotDir,
		Logger:        opts.Logger,
		Width:         opts.Runtime.ScreenW,
		Height:        opts.Runtime.ScreenH,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
