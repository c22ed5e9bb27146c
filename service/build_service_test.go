package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antipole-index/antipole/domain"
)

func TestBuildService_Build_ExplicitPoints(t *testing.T) {
	svc := NewBuildService(nil)
	req := domain.BuildRequest{
		Points: []domain.PointRecord{
			{ID: 1, Coord: []int{0, 0}},
			{ID: 2, Coord: []int{10, 10}},
			{ID: 3, Coord: []int{20, 0}},
			{ID: 4, Coord: []int{5, 5}},
		},
		TargetRadius:  5,
		DimensionHint: 2,
		Seed:          42,
	}

	result, err := svc.Build(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result.Tree)
	assert.Equal(t, 4, result.Response.Points)
	assert.NotEmpty(t, result.Response.RunID)
	assert.Equal(t, 4, result.Response.Stats.Points)
}

func TestBuildService_Build_GeneratedPoints(t *testing.T) {
	svc := NewBuildService(nil)
	req := domain.BuildRequest{
		TargetRadius:  10,
		DimensionHint: 3,
		GenerateCount: 30,
		Seed:          1,
	}

	result, err := svc.Build(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 30, result.Response.Points)
}

func TestBuildService_Build_NoPointsNoCount(t *testing.T) {
	svc := NewBuildService(nil)
	_, err := svc.Build(context.Background(), domain.BuildRequest{DimensionHint: 2})
	require.Error(t, err)
}

func TestBuildService_Build_CancelledContext(t *testing.T) {
	svc := NewBuildService(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Build(ctx, domain.BuildRequest{
		Points:        []domain.PointRecord{{ID: 1, Coord: []int{0, 0}}},
		DimensionHint: 2,
	})
	require.Error(t, err)
}
