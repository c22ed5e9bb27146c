package service

import (
	"context"

	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/internal/antipole"
	"github.com/antipole-index/antipole/internal/vector"
)

// QueryService runs range and k-nearest-neighbor searches against an
// already-built Antipole Tree.
type QueryService struct {
	tree *antipole.Tree
}

// NewQueryService creates a QueryService bound to tree.
func NewQueryService(tree *antipole.Tree) *QueryService {
	return &QueryService{tree: tree}
}

// RangeSearch returns every indexed point within req.Radius of the query
// point.
func (s *QueryService) RangeSearch(ctx context.Context, req domain.RangeQueryRequest) (*domain.QueryResponse, error) {
	if s.tree == nil {
		return nil, domain.NewNotBuiltError()
	}
	select {
	case <-ctx.Done():
		return nil, domain.NewQueryFailedError("range search cancelled", ctx.Err())
	default:
	}
	if req.Radius < 0 {
		return nil, domain.NewInvalidInputError("range search radius must be non-negative", nil)
	}

	query := vector.Record{ID: req.Query.ID, Coord: req.Query.Coord}.ToPoint()
	results := s.tree.RangeSearch(query, req.Radius)
	return &domain.QueryResponse{Matches: toMatches(results)}, nil
}

// NearestNeighborSearch returns the req.K nearest indexed points to the
// query point.
func (s *QueryService) NearestNeighborSearch(ctx context.Context, req domain.KNNQueryRequest) (*domain.QueryResponse, error) {
	if s.tree == nil {
		return nil, domain.NewNotBuiltError()
	}
	select {
	case <-ctx.Done():
		return nil, domain.NewQueryFailedError("k-NN search cancelled", ctx.Err())
	default:
	}
	if req.K <= 0 {
		return nil, domain.NewInvalidInputError("k-NN search k must be positive", nil)
	}

	query := vector.Record{ID: req.Query.ID, Coord: req.Query.Coord}.ToPoint()
	results := s.tree.NearestNeighborSearch(query, req.K)
	return &domain.QueryResponse{Matches: toMatches(results)}, nil
}

func toMatches(results []antipole.RangeResult) []domain.QueryMatch {
	matches := make([]domain.QueryMatch, len(results))
	for i, r := range results {
		coord := []int(r.Point.Payload.(vector.Vector))
		matches[i] = domain.QueryMatch{ID: r.Point.ID, Coord: coord, Dist: r.Dist}
	}
	return matches
}
