package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/service"
)

func TestBuildUseCase_Execute(t *testing.T) {
	uc := NewBuildUseCase(service.NewBuildService(nil))
	var buf bytes.Buffer

	result, err := uc.Execute(context.Background(), domain.BuildRequest{
		Points: []domain.PointRecord{
			{ID: 1, Coord: []int{0, 0}},
			{ID: 2, Coord: []int{5, 5}},
			{ID: 3, Coord: []int{10, 0}},
		},
		TargetRadius:  3,
		DimensionHint: 2,
		Seed:          1,
	}, domain.OutputFormatText, &buf)

	require.NoError(t, err)
	require.NotNil(t, result.Tree)
	assert.Contains(t, buf.String(), "Build Report")
}

func TestBuildUseCase_Execute_PropagatesError(t *testing.T) {
	uc := NewBuildUseCase(service.NewBuildService(nil))
	_, err := uc.Execute(context.Background(), domain.BuildRequest{}, domain.OutputFormatText, nil)
	require.Error(t, err)
}
