package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// DefaultScreenshotDir returns ~/.arcade/screenshots, or a relative
// directory when home is unavailable.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".arcade", "screenshots")
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// SaveScreenshot draws f at full pixel size and writes it as a PNG into
// dir. Returns the path of the written file.
func SaveScreenshot(f snake.Frame, th snake.Theme, dir string, now time.Time) (string, error) {
	size := f.GridCount * f.CellSize
	if size <= 0 {
		return "", fmt.Errorf("tui: frame has no board")
	}

	canvas := core.NewImageCanvas(size, size)
	snake.DrawFrame(canvas, f, th)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("snake_%s.png", now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot: %w", err)
	}
	if err := canvas.WritePNG(file); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}
