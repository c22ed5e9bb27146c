package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/internal/antipole"
	"github.com/antipole-index/antipole/internal/rng"
	"github.com/antipole-index/antipole/internal/vector"
)

// BuildService constructs an Antipole Tree from a domain.BuildRequest.
type BuildService struct {
	progressWriter io.Writer
}

// NewBuildService creates a BuildService that writes progress bar frames
// (when enabled and interactive) to progressWriter.
func NewBuildService(progressWriter io.Writer) *BuildService {
	return &BuildService{progressWriter: progressWriter}
}

// Result bundles the built tree together with the domain-level response
// describing it, since the tree itself cannot be serialized and must be
// handed off to a QueryService in the same process (or MCP session).
type Result struct {
	Tree     *antipole.Tree
	Response *domain.BuildResponse
}

// Build resolves the request's point set (explicit or generated),
// constructs a tree, and returns it alongside a summary response.
func (s *BuildService) Build(ctx context.Context, req domain.BuildRequest) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, domain.NewBuildFailedError("build cancelled", ctx.Err())
	default:
	}

	source := rng.New(req.Seed)
	if req.Seed == 0 {
		source = rng.NewUnseeded()
	}

	points, err := s.resolvePoints(req, source)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, domain.NewInvalidInputError("build request has no points", nil)
	}

	progress := NewBuildProgress(s.progressWriter, req.ShowProgress)
	progress.Start(len(points), "building tree")
	defer progress.Finish()

	started := time.Now()
	tree := antipole.BuildTree(points, req.TargetRadius, req.DimensionHint, vector.Distance, source)
	elapsed := time.Since(started)
	progress.Add(len(points))

	stats := tree.Stats()
	resp := &domain.BuildResponse{
		RunID:   uuid.NewString(),
		Points:  len(points),
		Elapsed: elapsed,
		Stats: domain.TreeStats{
			Points:        stats.Points,
			InternalNodes: stats.InternalNodes,
			Leaves:        stats.Leaves,
			MaxDepth:      stats.MaxDepth,
			AvgLeafSize:   stats.AvgLeafSize,
			AvgLeafRadius: stats.AvgLeafRadius,
		},
	}
	return &Result{Tree: tree, Response: resp}, nil
}

func (s *BuildService) resolvePoints(req domain.BuildRequest, source rng.Source) ([]*antipole.Point, error) {
	if len(req.Points) > 0 {
		points := make([]*antipole.Point, len(req.Points))
		for i, rec := range req.Points {
			points[i] = vector.Record{ID: rec.ID, Coord: rec.Coord}.ToPoint()
		}
		return points, nil
	}

	if req.GenerateCount <= 0 {
		return nil, domain.NewInvalidInputError("build request has neither points nor a generate count", nil)
	}

	dimension := req.DimensionHint
	if dimension <= 0 {
		return nil, fmt.Errorf("generate dataset: dimension hint must be positive, got %d", dimension)
	}
	coordMax := req.CoordMax
	if coordMax <= 0 {
		coordMax = 255
	}
	return GenerateRandomPoints(req.GenerateCount, dimension, coordMax, source), nil
}
