// Package config provides YAML-based configuration loading for the snake
// game: board geometry, scoring rules, tick timing and colors.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board  SnakeBoard  `yaml:"board"`
	Rules  SnakeRules  `yaml:"rules"`
	Timing SnakeTiming `yaml:"timing"`
	Theme  SnakeTheme  `yaml:"theme"`

	// Source is the file the config was read from, or "embedded"/"builtin".
	Source string `yaml:"-"`
}

// SnakeBoard defines the board geometry in pixels.
type SnakeBoard struct {
	CanvasSize int `yaml:"canvas_size"`
	CellSize   int `yaml:"cell_size"`
}

// SnakeRules defines scoring and food placement.
type SnakeRules struct {
	Reward       int    `yaml:"reward"`
	FoodRetryCap int    `yaml:"food_retry_cap"`
	HighScoreKey string `yaml:"high_score_key"`
}

// SnakeTiming defines the fixed tick.
type SnakeTiming struct {
	TickMs int `yaml:"tick_ms"`
}

// SnakeTheme holds hex colors for the board.
type SnakeTheme struct {
	Background string `yaml:"background"`
	Body       string `yaml:"body"`
	Head       string `yaml:"head"`
	Food       string `yaml:"food"`
	Border     string `yaml:"border"`
}

// Validate checks that the config describes a playable board.
func (c SnakeConfig) Validate() error {
	if c.Timing.TickMs <= 0 {
		return fmt.Errorf("config: timing.tick_ms must be positive, got %d", c.Timing.TickMs)
	}
	if err := c.ToRules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ToRules converts the config to game rules.
func (c SnakeConfig) ToRules() snake.Rules {
	return snake.Rules{
		CanvasSize:   c.Board.CanvasSize,
		CellSize:     c.Board.CellSize,
		Reward:       c.Rules.Reward,
		FoodRetryCap: c.Rules.FoodRetryCap,
		TickPeriod:   time.Duration(c.Timing.TickMs) * time.Millisecond,
		HighScoreKey: c.Rules.HighScoreKey,
	}
}

// ToTheme converts the config colors to a board theme.
func (c SnakeConfig) ToTheme() snake.Theme {
	return snake.Theme{
		Background: core.Color(c.Theme.Background),
		Body:       core.Color(c.Theme.Body),
		Head:       core.Color(c.Theme.Head),
		Food:       core.Color(c.Theme.Food),
	}
}
