package engine

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ControllerConfig holds the collaborators of a Controller.
type ControllerConfig struct {
	Rules     snake.Rules
	Store     snake.HighScoreStore // nil disables high score persistence
	Results   ResultSaver          // Optional, can be nil
	Scheduler clock.Scheduler      // Defaults to wall-clock time
	Renderer  Renderer             // Optional, can be nil
	Logger    *log.Logger          // Defaults to a discarding logger
	Session   SessionID
	Seed      int64 // 0 picks a time-based seed
}

// Controller runs a snake game on a repeating timer. All methods are safe
// for concurrent use; timer callbacks, input and lifecycle calls are
// serialized by one mutex.
type Controller struct {
	cfg    ControllerConfig
	logger *log.Logger

	mu        sync.Mutex
	game      *snake.Game // nil until the first start
	timer     clock.Timer
	gen       uint64 // Bumped on every cancel; stale callbacks compare against it
	runs      int64
	runID     string
	runStart  time.Time
	highScore int
	closed    bool
}

// NewController creates an idle controller. The high score is read from the
// store here and again before every run; a read failure is logged and the
// last known value is kept.
func NewController(cfg ControllerConfig) *Controller {
	if cfg.Scheduler == nil {
		cfg.Scheduler = clock.NewReal()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Session == "" {
		cfg.Session = LocalSession
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("session", string(cfg.Session))

	high, err := snake.LoadHighScore(cfg.Store, cfg.Rules.HighScoreKey)
	if err != nil {
		logger.Warn("high score unavailable", "err", err)
	}

	return &Controller{
		cfg:       cfg,
		logger:    logger,
		highScore: high,
	}
}

// Start begins the first run. It does nothing once a run exists; use
// Restart for that.
func (c *Controller) Start() bool {
	c.mu.Lock()
	if c.closed || c.game != nil {
		c.mu.Unlock()
		return false
	}
	c.newRun()
	frame := c.frame()
	c.mu.Unlock()

	c.publish(frame)
	return true
}

// Restart throws the current run away and starts a fresh one from any
// status except NotStarted.
func (c *Controller) Restart() bool {
	c.mu.Lock()
	if c.closed || c.game == nil {
		c.mu.Unlock()
		return false
	}
	c.newRun()
	frame := c.frame()
	c.mu.Unlock()

	c.publish(frame)
	return true
}

// newRun replaces the game and schedules its timer. Must hold c.mu.
func (c *Controller) newRun() {
	c.cancel()
	c.runs++
	c.refreshHighScore()
	c.game = snake.New(snake.Config{
		Rules:     c.cfg.Rules,
		Store:     c.cfg.Store,
		HighScore: c.highScore,
		Seed:      c.cfg.Seed + c.runs,
	})
	c.runID = uuid.NewString()
	c.runStart = time.Now()
	c.logger.Debug("run started", "run", c.runID, "seed", c.cfg.Seed+c.runs)

	if c.game.Status() == snake.Running {
		c.schedule()
	}
}

// refreshHighScore picks up scores other controllers saved to a shared
// store. Must hold c.mu.
func (c *Controller) refreshHighScore() {
	stored, err := snake.LoadHighScore(c.cfg.Store, c.cfg.Rules.HighScoreKey)
	if err != nil {
		c.logger.Warn("high score unavailable", "err", err)
		return
	}
	c.highScore = max(c.highScore, stored)
}

// Pause suspends a running game and cancels its timer.
func (c *Controller) Pause() bool {
	c.mu.Lock()
	if c.closed || c.game == nil || !c.game.Pause() {
		c.mu.Unlock()
		return false
	}
	c.cancel()
	c.logger.Debug("paused", "run", c.runID, "score", c.game.Score())
	frame := c.frame()
	c.mu.Unlock()

	c.publish(frame)
	return true
}

// Resume continues a paused game on a fresh timer. Ticks missed while
// paused are not replayed.
func (c *Controller) Resume() bool {
	c.mu.Lock()
	if c.closed || c.game == nil || !c.game.Resume() {
		c.mu.Unlock()
		return false
	}
	c.schedule()
	c.logger.Debug("resumed", "run", c.runID)
	frame := c.frame()
	c.mu.Unlock()

	c.publish(frame)
	return true
}

// TogglePause pauses a running game or resumes a paused one. It is ignored
// before the first start and after game over.
func (c *Controller) TogglePause() bool {
	switch c.Status() {
	case snake.Running:
		return c.Pause()
	case snake.Paused:
		return c.Resume()
	default:
		return false
	}
}

// RequestDirection queues a turn for the next tick.
func (c *Controller) RequestDirection(d snake.Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.game == nil {
		return false
	}
	return c.game.SetDirection(d)
}

// Handle applies a semantic action. It reports whether the action changed
// anything. Screenshot and Quit belong to the caller and are ignored here.
func (c *Controller) Handle(a core.Action) bool {
	if d, ok := snake.DirectionFor(a); ok {
		return c.RequestDirection(d)
	}

	switch a {
	case core.ActionPause:
		return c.TogglePause()
	case core.ActionStart:
		switch c.Status() {
		case snake.NotStarted:
			return c.Start()
		case snake.Over:
			return c.Restart()
		}
	case core.ActionRestart:
		return c.Restart()
	}
	return false
}

// Status returns the status of the current run.
func (c *Controller) Status() snake.RunStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.game == nil {
		return snake.NotStarted
	}
	return c.game.Status()
}

// Frame returns a snapshot of the current state.
func (c *Controller) Frame() snake.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame()
}

// Generation returns the current schedule generation.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Close cancels the timer. The controller ignores every call afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.cancel()
	c.closed = true
	c.logger.Debug("controller closed")
}

// schedule starts a timer for the current generation. Must hold c.mu.
func (c *Controller) schedule() {
	c.cancel()
	gen := c.gen
	c.timer = c.cfg.Scheduler.Every(c.cfg.Rules.TickPeriod, func() {
		c.tick(gen)
	})
}

// cancel stops the active timer and invalidates its pending callbacks.
// Must hold c.mu.
func (c *Controller) cancel() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// tick runs one step for the schedule of generation gen.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen || c.game == nil {
		c.mu.Unlock()
		return
	}

	res := c.game.Step()
	if res.Err != nil {
		c.logger.Warn("high score not saved", "err", res.Err)
	}
	c.highScore = max(c.highScore, c.game.HighScore())

	var result *RunResult
	if res.Outcome.Terminal() {
		c.cancel()
		result = c.result(res.Outcome)
		c.logger.Debug("game over",
			"run", c.runID,
			"outcome", res.Outcome,
			"score", result.Score,
			"length", result.Length,
		)
	}

	// Frames carry the generation they were produced under; the cancel above
	// means a terminal frame is tagged with the newer one.
	frame := c.frame()
	c.mu.Unlock()

	c.publish(frame)
	if result != nil {
		c.save(*result)
	}
}

// result describes the run that just ended. Must hold c.mu.
func (c *Controller) result(o snake.Outcome) *RunResult {
	return &RunResult{
		RunID:     c.runID,
		SessionID: c.cfg.Session,
		Score:     c.game.Score(),
		Length:    c.game.Len(),
		Ticks:     c.game.Ticks(),
		Outcome:   o,
		Duration:  time.Since(c.runStart),
	}
}

// frame snapshots the game, or the idle board before the first start.
// Must hold c.mu.
func (c *Controller) frame() snake.Frame {
	var f snake.Frame
	if c.game == nil {
		f = snake.IdleFrame(c.cfg.Rules, c.highScore)
	} else {
		f = c.game.Frame()
	}
	f.Generation = c.gen
	return f
}

func (c *Controller) publish(f snake.Frame) {
	if c.cfg.Renderer != nil {
		c.cfg.Renderer.Render(f)
	}
}

// save records a finished run. Runs without points are not kept.
func (c *Controller) save(r RunResult) {
	if c.cfg.Results == nil || r.Score <= 0 {
		return
	}
	if err := c.cfg.Results.SaveRunResult(r); err != nil {
		c.logger.Warn("run not recorded", "run", r.RunID, "err", err)
	}
}
