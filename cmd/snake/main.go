// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                  - Play in this terminal (same as "snake play")
//	snake play             - Play in this terminal
//	snake serve            - Start SSH server for remote play
//	snake scores           - Show the best runs
//	snake config           - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--db <path>          - Set database path (default: ~/.arcade/snake.db)
//	--config <path>      - Load settings from a YAML file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic grid game: steer the snake to the food, grow,
and avoid the walls and your own tail.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective configuration

Examples:
  snake
  snake play --seed 42
  snake serve --addr :2222
  snake scores`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}

// loadConfig loads the snake config or exits.
func loadConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		exitf("%v", err)
	}
	return cfg
}

// openBackend opens the score database, falling back to memory so the
// game stays playable without persistence.
func openBackend(logger *log.Logger) storage.Backend {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("using in-memory scores", "err", err)
		return storage.NewMemoryStore()
	}
	return store
}
