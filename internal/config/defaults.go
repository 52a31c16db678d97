package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	th := snake.DefaultTheme()
	return SnakeConfig{
		Board: SnakeBoard{
			CanvasSize: snake.DefaultCanvasSize,
			CellSize:   snake.DefaultCellSize,
		},
		Rules: SnakeRules{
			Reward:       snake.DefaultReward,
			FoodRetryCap: snake.DefaultFoodRetryCap,
			HighScoreKey: snake.DefaultHighScoreKey,
		},
		Timing: SnakeTiming{
			TickMs: int(snake.DefaultTickPeriod.Milliseconds()),
		},
		Theme: SnakeTheme{
			Background: string(th.Background),
			Body:       string(th.Body),
			Head:       string(th.Head),
			Food:       string(th.Food),
			Border:     "#95a5a6",
		},
		Source: "builtin",
	}
}
