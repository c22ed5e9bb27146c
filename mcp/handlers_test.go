package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antipole-index/antipole/domain"
)

func callTool(name string, args map[string]interface{}) mcptypes.CallToolRequest {
	return mcptypes.CallToolRequest{
		Params: mcptypes.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func buildTestIndex(t *testing.T, h *HandlerSet) {
	t.Helper()
	points := []interface{}{}
	for i := 0; i < 20; i++ {
		points = append(points, map[string]interface{}{
			"id":    float64(i),
			"coord": []interface{}{float64(i), float64(i * 2)},
		})
	}

	result, err := h.HandleBuildIndex(context.Background(), callTool("build_index", map[string]interface{}{
		"points":        points,
		"target_radius": float64(5),
		"seed":          float64(7),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, "build_index should succeed: %+v", result.Content)
}

func TestHandleBuildIndex_ExplicitPoints(t *testing.T) {
	h := NewHandlerSet(NewDependencies(nil, ""))
	buildTestIndex(t, h)

	_, err := h.deps.Index()
	assert.NoError(t, err, "build_index should populate the session's active index")
}

func TestHandleBuildIndex_InvalidArguments(t *testing.T) {
	h := NewHandlerSet(NewDependencies(nil, ""))

	result, err := h.HandleBuildIndex(context.Background(), mcptypes.CallToolRequest{
		Params: mcptypes.CallToolParams{Name: "build_index", Arguments: "not a map"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleRangeSearch_RequiresBuiltIndex(t *testing.T) {
	h := NewHandlerSet(NewDependencies(nil, ""))

	result, err := h.HandleRangeSearch(context.Background(), callTool("range_search", map[string]interface{}{
		"query":  []interface{}{float64(0), float64(0)},
		"radius": float64(5),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleRangeSearch_ReturnsMatches(t *testing.T) {
	h := NewHandlerSet(NewDependencies(nil, ""))
	buildTestIndex(t, h)

	result, err := h.HandleRangeSearch(context.Background(), callTool("range_search", map[string]interface{}{
		"query":  []interface{}{float64(0), float64(0)},
		"radius": float64(3),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, "%+v", result.Content)

	text, ok := result.Content[0].(mcptypes.TextContent)
	require.True(t, ok)

	var resp domain.QueryResponse
	require.NoError(t, json.Unmarshal([]byte(text.Text), &resp))
	assert.NotEmpty(t, resp.Matches)
}

func TestHandleKNNSearch_ReturnsKNeighbors(t *testing.T) {
	h := NewHandlerSet(NewDependencies(nil, ""))
	buildTestIndex(t, h)

	result, err := h.HandleKNNSearch(context.Background(), callTool("knn_search", map[string]interface{}{
		"query": []interface{}{float64(0), float64(0)},
		"k":     float64(3),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, "%+v", result.Content)

	text, ok := result.Content[0].(mcptypes.TextContent)
	require.True(t, ok)

	var resp domain.QueryResponse
	require.NoError(t, json.Unmarshal([]byte(text.Text), &resp))
	assert.Len(t, resp.Matches, 3)
}

func TestHandleTreeStats_RequiresBuiltIndex(t *testing.T) {
	h := NewHandlerSet(NewDependencies(nil, ""))

	result, err := h.HandleTreeStats(context.Background(), callTool("tree_stats", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleTreeStats_ReportsShape(t *testing.T) {
	h := NewHandlerSet(NewDependencies(nil, ""))
	buildTestIndex(t, h)

	result, err := h.HandleTreeStats(context.Background(), callTool("tree_stats", map[string]interface{}{}))
	require.NoError(t, err)
	require.False(t, result.IsError, "%+v", result.Content)

	text, ok := result.Content[0].(mcptypes.TextContent)
	require.True(t, ok)

	var stats domain.TreeStats
	require.NoError(t, json.Unmarshal([]byte(text.Text), &stats))
	assert.Equal(t, 20, stats.Points)
}
