package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antipole-index/antipole/domain"
)

func TestReporter_ReportBuild_Text(t *testing.T) {
	var buf bytes.Buffer
	r := New(domain.OutputFormatText, &buf)

	err := r.ReportBuild(&domain.BuildResponse{
		RunID:   "run-1",
		Points:  100,
		Elapsed: 5 * time.Millisecond,
		Stats: domain.TreeStats{
			Points: 100, InternalNodes: 9, Leaves: 10, MaxDepth: 4,
			AvgLeafSize: 10.0, AvgLeafRadius: 3.5,
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "Internal Nodes:  9")
	assert.Contains(t, out, "Avg Leaf Radius: 3.50")
}

func TestReporter_ReportBuild_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := New(domain.OutputFormatJSON, &buf)

	resp := &domain.BuildResponse{RunID: "run-2", Points: 5}
	require.NoError(t, r.ReportBuild(resp))

	var decoded domain.BuildResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, resp.RunID, decoded.RunID)
	assert.Equal(t, resp.Points, decoded.Points)
}

func TestReporter_ReportQuery_Text(t *testing.T) {
	var buf bytes.Buffer
	r := New(domain.OutputFormatText, &buf)

	err := r.ReportQuery(&domain.QueryResponse{
		Matches: []domain.QueryMatch{
			{ID: 1, Coord: []int{1, 2, 3}, Dist: 2.5},
			{ID: 2, Coord: []int{4, 5, 6}, Dist: -1},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2 match(es)")
	assert.Contains(t, out, "2.5000")
	assert.True(t, strings.Contains(out, " ? ") || strings.Contains(out, "?  "))
}

func TestReporter_ReportQuery_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := New(domain.OutputFormatText, &buf)

	require.NoError(t, r.ReportQuery(&domain.QueryResponse{}))
	assert.Contains(t, buf.String(), "0 match(es)")
}

func TestReporter_ReportQuery_YAML(t *testing.T) {
	var buf bytes.Buffer
	r := New(domain.OutputFormatYAML, &buf)

	err := r.ReportQuery(&domain.QueryResponse{
		Matches: []domain.QueryMatch{{ID: 7, Coord: []int{1}, Dist: 0.1}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "id: 7")
}
