package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antipole-index/antipole/internal/rng"
	"github.com/antipole-index/antipole/internal/vector"
)

func TestGenerateRandomPoints(t *testing.T) {
	points := GenerateRandomPoints(50, 3, 100, rng.New(1))
	require.Len(t, points, 50)

	for i, p := range points {
		assert.Equal(t, i, p.ID)
		coord := p.Payload.(vector.Vector)
		require.Len(t, coord, 3)
		for _, c := range coord {
			assert.GreaterOrEqual(t, c, 0)
			assert.LessOrEqual(t, c, 100)
		}
	}
}

func TestGenerateRandomPoints_Deterministic(t *testing.T) {
	a := GenerateRandomPoints(20, 3, 255, rng.New(7))
	b := GenerateRandomPoints(20, 3, 255, rng.New(7))

	for i := range a {
		assert.Equal(t, a[i].Payload, b[i].Payload)
	}
}

func TestWritePointSet_LoadPointSet_RoundTrip(t *testing.T) {
	points := GenerateRandomPoints(10, 2, 50, rng.New(3))

	var buf bytes.Buffer
	require.NoError(t, WritePointSet(&buf, points))

	loaded, err := LoadPointSet(&buf)
	require.NoError(t, err)
	require.Len(t, loaded, 10)

	for i := range points {
		assert.Equal(t, points[i].ID, loaded[i].ID)
		assert.Equal(t, points[i].Payload, loaded[i].Payload)
	}
}

func TestLoadPointSet_SkipsBlankLines(t *testing.T) {
	input := strings.NewReader("{\"id\":1,\"coord\":[1,2]}\n\n{\"id\":2,\"coord\":[3,4]}\n")
	points, err := LoadPointSet(input)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 1, points[0].ID)
	assert.Equal(t, 2, points[1].ID)
}

func TestLoadPointSet_MalformedLine(t *testing.T) {
	input := strings.NewReader("not json\n")
	_, err := LoadPointSet(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}
