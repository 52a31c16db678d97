package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs.

In a terminal this opens a scrollable scoreboard; otherwise, or with
--plain, the top runs are printed as text.

Examples:
  snake scores
  snake scores --plain --limit 5
  snake scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print scores as text instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete the run history and the high score")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.ClearRuns(); err != nil {
			exitf("clearing runs: %v", err)
		}
		if err := store.Delete(cfg.Rules.HighScoreKey); err != nil {
			exitf("clearing high score: %v", err)
		}
		fmt.Println("Scores reset.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			exitf("running scoreboard: %v", err)
		}
		return
	}

	printScores(store, cfg.Rules.HighScoreKey, flagScoresLimit)
}

// printScores writes the top runs as a text table.
func printScores(store *storage.Store, highScoreKey string, limit int) {
	runs, err := store.TopRuns(limit)
	if err != nil {
		exitf("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %s\n", "Rank", "Score", "Length", "Cause", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %s\n", "----", "-----", "------", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-10s  %s\n",
			i+1, r.Score, r.Length, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Average: %.1f\n", stats.Runs, stats.AvgScore)
	}
	if high, ok, err := store.Get(highScoreKey); err == nil && ok {
		fmt.Printf("Best: %d\n", high)
	}
}
