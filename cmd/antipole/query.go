package main

import (
	"github.com/spf13/cobra"

	"github.com/antipole-index/antipole/app"
	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/internal/config"
	"github.com/antipole-index/antipole/service"
)

// QueryCommand holds the flags shared by the range and knn subcommands.
type QueryCommand struct {
	pointsFile    string
	targetRadius  float64
	dimensionHint int
	seed          uint64

	queryCoord []int
	radius     float64
	k          int
}

// NewQueryCommand creates a new query command group.
func NewQueryCommand() *QueryCommand {
	return &QueryCommand{}
}

// CreateCobraCommand creates the "query" parent command with "range" and
// "knn" subcommands.
func (q *QueryCommand) CreateCobraCommand() *cobra.Command {
	parent := &cobra.Command{
		Use:   "query",
		Short: "Run a range or k-nearest-neighbor search",
	}

	parent.PersistentFlags().StringVar(&q.pointsFile, "points", "", "NDJSON point-set file to index")
	parent.PersistentFlags().Float64Var(&q.targetRadius, "target-radius", 0, "Target leaf cluster radius")
	parent.PersistentFlags().IntVar(&q.dimensionHint, "dimension-hint", 0, "Dimensionality hint for tournament sizing")
	parent.PersistentFlags().Uint64Var(&q.seed, "seed", 0, "Seed for the builder's randomness")
	parent.PersistentFlags().IntSliceVar(&q.queryCoord, "query", nil, "Query point coordinate, e.g. --query=1,2,3")

	rangeCmd := &cobra.Command{
		Use:   "range",
		Short: "Return every indexed point within a radius of a query point",
		RunE:  q.runRange,
	}
	rangeCmd.Flags().Float64Var(&q.radius, "radius", 0, "Search radius")

	knnCmd := &cobra.Command{
		Use:   "knn",
		Short: "Return the k nearest indexed points to a query point",
		RunE:  q.runKNN,
	}
	knnCmd.Flags().IntVar(&q.k, "k", 0, "Number of neighbors to return")

	parent.AddCommand(rangeCmd, knnCmd)
	return parent
}

func (q *QueryCommand) buildRequest(cmd *cobra.Command) (domain.BuildRequest, *config.Config, domain.OutputFormat, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := resolveConfig(cfgPath)
	if err != nil {
		return domain.BuildRequest{}, nil, "", domain.NewConfigError("failed to load configuration", err)
	}

	flags := explicitFlags(cmd)
	buildCfg := config.MergeBuildConfig(cfg.Build, config.BuildConfig{
		TargetRadius:  q.targetRadius,
		DimensionHint: q.dimensionHint,
		Seed:          q.seed,
	}, flags)

	format, _ := cmd.Flags().GetString("format")
	outFmt, err := resolveOutputFormat(format, cfg.Output.Format)
	if err != nil {
		return domain.BuildRequest{}, nil, "", err
	}

	if q.pointsFile == "" {
		return domain.BuildRequest{}, nil, "", domain.NewInvalidInputError("query requires --points", nil)
	}
	points, err := loadPointsFile(q.pointsFile)
	if err != nil {
		return domain.BuildRequest{}, nil, "", err
	}

	req := domain.BuildRequest{
		Points:        points,
		TargetRadius:  buildCfg.TargetRadius,
		DimensionHint: buildCfg.DimensionHint,
		Seed:          buildCfg.Seed,
	}
	return req, cfg, outFmt, nil
}

func (q *QueryCommand) runRange(cmd *cobra.Command, args []string) error {
	buildReq, cfg, outFmt, err := q.buildRequest(cmd)
	if err != nil {
		return err
	}
	if len(q.queryCoord) == 0 {
		return domain.NewInvalidInputError("range search requires --query", nil)
	}

	queryCfg := config.MergeQueryConfig(cfg.Query, config.QueryConfig{Radius: q.radius}, explicitFlags(cmd))

	uc := app.NewQueryUseCase(service.NewBuildService(nil))
	return uc.Execute(
		cmd.Context(), nil, buildReq, app.QueryKindRange,
		domain.RangeQueryRequest{Query: domain.PointRecord{Coord: q.queryCoord}, Radius: queryCfg.Radius},
		domain.KNNQueryRequest{},
		outFmt, cmd.OutOrStdout(),
	)
}

func (q *QueryCommand) runKNN(cmd *cobra.Command, args []string) error {
	buildReq, cfg, outFmt, err := q.buildRequest(cmd)
	if err != nil {
		return err
	}
	if len(q.queryCoord) == 0 {
		return domain.NewInvalidInputError("k-NN search requires --query", nil)
	}

	queryCfg := config.MergeQueryConfig(cfg.Query, config.QueryConfig{K: q.k}, explicitFlags(cmd))

	uc := app.NewQueryUseCase(service.NewBuildService(nil))
	return uc.Execute(
		cmd.Context(), nil, buildReq, app.QueryKindKNN,
		domain.RangeQueryRequest{},
		domain.KNNQueryRequest{Query: domain.PointRecord{Coord: q.queryCoord}, K: queryCfg.K},
		outFmt, cmd.OutOrStdout(),
	)
}

// NewQueryCmd creates and returns the query cobra command.
func NewQueryCmd() *cobra.Command {
	return NewQueryCommand().CreateCobraCommand()
}
