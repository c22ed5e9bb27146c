package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antipole-index/antipole/internal/rng"
	"github.com/antipole-index/antipole/service"
)

func writeBenchFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	points := service.GenerateRandomPoints(40, 2, 50, rng.New(1))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, service.WritePointSet(f, points))
	return path
}

func TestBenchUseCase_Execute(t *testing.T) {
	dir := t.TempDir()
	writeBenchFile(t, dir, "a.ndjson")
	writeBenchFile(t, dir, "b.ndjson")

	uc := NewBenchUseCase(service.NewBuildService(nil))
	results, err := uc.Execute(context.Background(), BenchRequest{
		Glob:          filepath.Join(dir, "*.ndjson"),
		TargetRadius:  5,
		DimensionHint: 2,
		Seed:          1,
		RangeRadius:   10,
		K:             3,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, 40, r.Points)
		assert.LessOrEqual(t, r.KNNMatches, 3)
	}
}

func TestBenchUseCase_Execute_NoMatches(t *testing.T) {
	uc := NewBenchUseCase(service.NewBuildService(nil))
	_, err := uc.Execute(context.Background(), BenchRequest{Glob: filepath.Join(t.TempDir(), "*.ndjson")})
	require.Error(t, err)
}
