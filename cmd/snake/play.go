package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagScreenshotDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake in the current terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  Enter/Space       - Start, or restart after game over
  P/Esc             - Pause menu
  R                 - Restart
  Ctrl+S            - Save a PNG screenshot
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play --seed 7
  snake play --config ./my-snake.yaml
  snake play --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshot-dir", tui.DefaultScreenshotDir(), "Directory for Ctrl+S screenshots")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// The game owns the terminal; logs only go to a file when asked.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			exitf("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "snake")
	logger.Info("config loaded", "source", cfg.Source)

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store := openBackend(logger)

	runErr := tui.Run(tui.Options{
		Runtime:       rt,
		Rules:         cfg.ToRules(),
		Theme:         cfg.ToTheme(),
		Border:        core.Color(cfg.Theme.Border),
		Store:         store,
		Logger:        logger,
		ScreenshotDir: flagScreenshotDir,
	})

	// Close store before potential exit
	if err := store.Close(); err != nil {
		logger.Warn("closing store", "err", err)
	}

	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}
