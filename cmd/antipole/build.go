package main

import (
	"github.com/spf13/cobra"

	"github.com/antipole-index/antipole/app"
	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/internal/config"
	"github.com/antipole-index/antipole/service"
)

// BuildCommand represents the build command
type BuildCommand struct {
	pointsFile    string
	targetRadius  float64
	dimensionHint int
	generateCount int
	coordMax      int
	seed          uint64
	showProgress  bool
	savePoints    string
}

// NewBuildCommand creates a new build command
func NewBuildCommand() *BuildCommand {
	return &BuildCommand{}
}

// CreateCobraCommand creates the cobra command for index construction.
func (b *BuildCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an Antipole Tree over a point set and report its shape",
		Long: `Build constructs an Antipole Tree either from an NDJSON point-set
file (--points) or from a synthesized random dataset (--generate), then
reports the tree's statistics: internal node and leaf counts, maximum
depth, and average leaf size and radius.`,
		RunE: b.runBuild,
	}

	cmd.Flags().StringVar(&b.pointsFile, "points", "", "NDJSON point-set file to index")
	cmd.Flags().Float64Var(&b.targetRadius, "target-radius", 0, "Target leaf cluster radius")
	cmd.Flags().IntVar(&b.dimensionHint, "dimension-hint", 0, "Dimensionality hint for tournament sizing")
	cmd.Flags().IntVar(&b.generateCount, "generate", 0, "Generate this many random points instead of reading --points")
	cmd.Flags().IntVar(&b.coordMax, "coord-max", 0, "Max coordinate value for generated points")
	cmd.Flags().Uint64Var(&b.seed, "seed", 0, "Seed for the builder's randomness (0 picks a random seed)")
	cmd.Flags().BoolVar(&b.showProgress, "progress", false, "Show a progress bar on an interactive terminal")
	cmd.Flags().StringVar(&b.savePoints, "save-points", "", "Write the (possibly generated) point set to this NDJSON file")

	return cmd
}

func (b *BuildCommand) runBuild(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := resolveConfig(cfgPath)
	if err != nil {
		return domain.NewConfigError("failed to load configuration", err)
	}

	flags := explicitFlags(cmd)
	buildCfg := config.MergeBuildConfig(cfg.Build, config.BuildConfig{
		TargetRadius:  b.targetRadius,
		DimensionHint: b.dimensionHint,
		PointCount:    b.generateCount,
		CoordMax:      b.coordMax,
		Seed:          b.seed,
	}, flags)

	format, _ := cmd.Flags().GetString("format")
	outFmt, err := resolveOutputFormat(format, cfg.Output.Format)
	if err != nil {
		return err
	}

	req := domain.BuildRequest{
		TargetRadius:  buildCfg.TargetRadius,
		DimensionHint: buildCfg.DimensionHint,
		GenerateCount: buildCfg.PointCount,
		CoordMax:      buildCfg.CoordMax,
		Seed:          buildCfg.Seed,
		ShowProgress:  b.showProgress,
	}

	switch {
	case b.pointsFile != "":
		points, err := loadPointsFile(b.pointsFile)
		if err != nil {
			return err
		}
		req.Points = points
		req.GenerateCount = 0
	case b.savePoints != "":
		// Materialize the generated set in this process so it can be
		// written to --save-points as well as indexed.
		req.Points = generatePointRecords(buildCfg, req.Seed)
		req.GenerateCount = 0
	}

	uc := app.NewBuildUseCase(service.NewBuildService(cmd.ErrOrStderr()))
	_, err = uc.Execute(cmd.Context(), req, outFmt, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if b.savePoints != "" {
		if err := savePointRecords(b.savePoints, req.Points); err != nil {
			return err
		}
	}
	return nil
}

// NewBuildCmd creates and returns the build cobra command.
func NewBuildCmd() *cobra.Command {
	return NewBuildCommand().CreateCobraCommand()
}
