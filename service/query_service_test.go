package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/internal/antipole"
	"github.com/antipole-index/antipole/internal/rng"
	"github.com/antipole-index/antipole/internal/vector"
)

func buildTestTree(t *testing.T) *antipole.Tree {
	t.Helper()
	points := []*antipole.Point{
		vector.Record{ID: 1, Coord: []int{0, 0}}.ToPoint(),
		vector.Record{ID: 2, Coord: []int{1, 0}}.ToPoint(),
		vector.Record{ID: 3, Coord: []int{2, 0}}.ToPoint(),
		vector.Record{ID: 4, Coord: []int{100, 100}}.ToPoint(),
		vector.Record{ID: 5, Coord: []int{101, 100}}.ToPoint(),
	}
	return antipole.BuildTree(points, 3, 2, vector.Distance, rng.New(1))
}

func TestQueryService_RangeSearch(t *testing.T) {
	svc := NewQueryService(buildTestTree(t))

	resp, err := svc.RangeSearch(context.Background(), domain.RangeQueryRequest{
		Query:  domain.PointRecord{ID: 0, Coord: []int{0, 0}},
		Radius: 2,
	})
	require.NoError(t, err)

	ids := make(map[int]bool)
	for _, m := range resp.Matches {
		ids[m.ID] = true
	}
	assert.True(t, ids[1])
	assert.True(t, ids[2])
	assert.False(t, ids[4])
}

func TestQueryService_NearestNeighborSearch(t *testing.T) {
	svc := NewQueryService(buildTestTree(t))

	resp, err := svc.NearestNeighborSearch(context.Background(), domain.KNNQueryRequest{
		Query: domain.PointRecord{ID: 0, Coord: []int{0, 0}},
		K:     2,
	})
	require.NoError(t, err)
	require.Len(t, resp.Matches, 2)
	assert.Equal(t, 1, resp.Matches[0].ID)
}

func TestQueryService_NotBuilt(t *testing.T) {
	svc := NewQueryService(nil)
	_, err := svc.RangeSearch(context.Background(), domain.RangeQueryRequest{Radius: 1})
	require.Error(t, err)

	_, err = svc.NearestNeighborSearch(context.Background(), domain.KNNQueryRequest{K: 1})
	require.Error(t, err)
}

func TestQueryService_InvalidInput(t *testing.T) {
	svc := NewQueryService(buildTestTree(t))

	_, err := svc.RangeSearch(context.Background(), domain.RangeQueryRequest{Radius: -1})
	require.Error(t, err)

	_, err = svc.NearestNeighborSearch(context.Background(), domain.KNNQueryRequest{K: 0})
	require.Error(t, err)
}
