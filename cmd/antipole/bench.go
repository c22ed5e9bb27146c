package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/antipole-index/antipole/app"
	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/service"
)

// BenchCommand represents the bench command.
type BenchCommand struct {
	glob          string
	targetRadius  float64
	dimensionHint int
	seed          uint64
	rangeRadius   float64
	k             int
}

// NewBenchCommand creates a new bench command.
func NewBenchCommand() *BenchCommand {
	return &BenchCommand{}
}

// CreateCobraCommand creates the cobra command for benchmarking build and
// query time across a set of point-set files.
func (b *BenchCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark build and query time across NDJSON point-set files",
		Long: `Bench matches --glob against the filesystem (doublestar patterns,
e.g. "testdata/**/*.ndjson"), builds a tree from each matched file, and
times a range search and a k-NN search against the first point of each
file.`,
		RunE: b.runBench,
	}

	cmd.Flags().StringVar(&b.glob, "glob", "", "Glob pattern matching NDJSON point-set files")
	cmd.Flags().Float64Var(&b.targetRadius, "target-radius", 20, "Target leaf cluster radius")
	cmd.Flags().IntVar(&b.dimensionHint, "dimension-hint", 3, "Dimensionality hint for tournament sizing")
	cmd.Flags().Uint64Var(&b.seed, "seed", 1, "Seed for the builder's randomness")
	cmd.Flags().Float64Var(&b.rangeRadius, "range-radius", 10, "Radius for the benchmark range search")
	cmd.Flags().IntVar(&b.k, "k", 10, "k for the benchmark k-NN search")

	return cmd
}

func (b *BenchCommand) runBench(cmd *cobra.Command, args []string) error {
	if b.glob == "" {
		return domain.NewInvalidInputError("bench requires --glob", nil)
	}

	format, _ := cmd.Flags().GetString("format")
	outFmt, err := resolveOutputFormat(format, "")
	if err != nil {
		return err
	}

	uc := app.NewBenchUseCase(service.NewBuildService(nil))
	results, err := uc.Execute(cmd.Context(), app.BenchRequest{
		Glob:          b.glob,
		TargetRadius:  b.targetRadius,
		DimensionHint: b.dimensionHint,
		Seed:          b.seed,
		RangeRadius:   b.rangeRadius,
		K:             b.k,
	})
	if err != nil {
		return err
	}

	return reportBenchResults(results, outFmt, cmd.OutOrStdout())
}

func reportBenchResults(results []app.BenchFileResult, format domain.OutputFormat, w io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case domain.OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(results)
	default:
		for _, r := range results {
			fmt.Fprintf(w, "%-40s points=%-6d build=%-12s range=%-12s(%d) knn=%-12s(%d)\n",
				r.File, r.Points, r.BuildElapsed, r.RangeElapsed, r.RangeMatches, r.KNNElapsed, r.KNNMatches)
		}
		return nil
	}
}

// NewBenchCmd creates and returns the bench cobra command.
func NewBenchCmd() *cobra.Command {
	return NewBenchCommand().CreateCobraCommand()
}
