package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/internal/antipole"
	"github.com/antipole-index/antipole/internal/vector"
	"github.com/antipole-index/antipole/service"
)

// BenchRequest describes a benchmark run: build a tree from each
// point-set file matched by Glob, then run the same range and k-NN
// query against each, reporting per-file timings.
type BenchRequest struct {
	Glob          string
	TargetRadius  float64
	DimensionHint int
	Seed          uint64
	RangeRadius   float64
	K             int
}

// BenchFileResult is one file's outcome in a benchmark run.
type BenchFileResult struct {
	File         string        `json:"file" yaml:"file"`
	Points       int           `json:"points" yaml:"points"`
	BuildElapsed time.Duration `json:"build_elapsed" yaml:"build_elapsed"`
	RangeElapsed time.Duration `json:"range_elapsed" yaml:"range_elapsed"`
	RangeMatches int           `json:"range_matches" yaml:"range_matches"`
	KNNElapsed   time.Duration `json:"knn_elapsed" yaml:"knn_elapsed"`
	KNNMatches   int           `json:"knn_matches" yaml:"knn_matches"`
}

// BenchUseCase fans a build+query cycle out across every point-set file
// matched by a glob pattern, in the spirit of the original photomosaic
// tool's tree-statistics benchmarking driver.
type BenchUseCase struct {
	builder *service.BuildService
}

// NewBenchUseCase creates a BenchUseCase backed by builder.
func NewBenchUseCase(builder *service.BuildService) *BenchUseCase {
	return &BenchUseCase{builder: builder}
}

// Execute matches req.Glob against the filesystem (doublestar patterns,
// e.g. "testdata/**/*.ndjson"), and benchmarks build+query over each
// match in turn.
func (uc *BenchUseCase) Execute(ctx context.Context, req BenchRequest) ([]BenchFileResult, error) {
	files, err := doublestar.FilepathGlob(req.Glob)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid glob pattern %q", req.Glob), err)
	}
	if len(files) == 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("no files matched glob %q", req.Glob), nil)
	}

	results := make([]BenchFileResult, 0, len(files))
	for _, file := range files {
		select {
		case <-ctx.Done():
			return results, domain.NewQueryFailedError("benchmark cancelled", ctx.Err())
		default:
		}

		res, err := uc.benchFile(ctx, file, req)
		if err != nil {
			return results, fmt.Errorf("bench %s: %w", file, err)
		}
		results = append(results, *res)
	}
	return results, nil
}

func (uc *BenchUseCase) benchFile(ctx context.Context, file string, req BenchRequest) (*BenchFileResult, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := service.LoadPointSet(f)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("%s contains no points", file), nil)
	}

	records := make([]domain.PointRecord, len(points))
	for i, p := range points {
		records[i] = domain.PointRecord{ID: p.ID, Coord: coordOf(p)}
	}

	buildReq := domain.BuildRequest{
		Points:        records,
		TargetRadius:  req.TargetRadius,
		DimensionHint: req.DimensionHint,
		Seed:          req.Seed,
	}

	started := time.Now()
	built, err := uc.builder.Build(ctx, buildReq)
	if err != nil {
		return nil, err
	}
	buildElapsed := time.Since(started)

	qs := service.NewQueryService(built.Tree)
	query := domain.PointRecord{ID: points[0].ID, Coord: coordOf(points[0])}

	rangeStarted := time.Now()
	rangeResp, err := qs.RangeSearch(ctx, domain.RangeQueryRequest{Query: query, Radius: req.RangeRadius})
	if err != nil {
		return nil, err
	}
	rangeElapsed := time.Since(rangeStarted)

	knnStarted := time.Now()
	knnResp, err := qs.NearestNeighborSearch(ctx, domain.KNNQueryRequest{Query: query, K: req.K})
	if err != nil {
		return nil, err
	}
	knnElapsed := time.Since(knnStarted)

	return &BenchFileResult{
		File:         file,
		Points:       len(points),
		BuildElapsed: buildElapsed,
		RangeElapsed: rangeElapsed,
		RangeMatches: len(rangeResp.Matches),
		KNNElapsed:   knnElapsed,
		KNNMatches:   len(knnResp.Matches),
	}, nil
}

func coordOf(p *antipole.Point) []int {
	return []int(p.Payload.(vector.Vector))
}
