package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration snake would play with, as YAML.

Files are searched in this order: --config, ~/.arcade/configs/snake.yaml,
./configs/snake.yaml, then the built-in defaults. The output can be saved
and edited as a starting point.

Examples:
  snake config
  snake config > ~/.arcade/configs/snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	data, err := cfg.Marshal()
	if err != nil {
		exitf("%v", err)
	}

	fmt.Printf("# source: %s\n", cfg.Source)
	os.Stdout.Write(data)
}
