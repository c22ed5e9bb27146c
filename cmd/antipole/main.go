package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/antipole-index/antipole/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "antipole",
	Short: "A metric-space similarity index backed by an Antipole Tree",
	Long: `antipole builds an Antipole Tree over a user-supplied point set and
answers range and k-nearest-neighbor queries against it using
triangle-inequality pruning.

Features:
  • Randomized antipole/1-median selection with a tournament reduction
  • Range search and k-nearest-neighbor search with subtree pruning
  • NDJSON point-set files, text/JSON/YAML output`,
	Version: version.Short(),
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to .antipole.toml (defaults to ./.antipole.toml if present)")
	rootCmd.PersistentFlags().StringP("format", "o", "", "Output format: text, json, or yaml")

	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewQueryCmd())
	rootCmd.AddCommand(NewBenchCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
