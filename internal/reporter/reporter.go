// Package reporter formats build and query responses as text, JSON, or
// YAML: a reporter struct wrapping an io.Writer, one exported Report*
// method per domain response, and an unexported output* method per
// format.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/antipole-index/antipole/domain"
)

// Reporter renders domain responses to an io.Writer in the configured
// output format.
type Reporter struct {
	format domain.OutputFormat
	writer io.Writer
}

// New creates a Reporter that writes report output in format to writer.
func New(format domain.OutputFormat, writer io.Writer) *Reporter {
	return &Reporter{format: format, writer: writer}
}

// ReportBuild writes a build response.
func (r *Reporter) ReportBuild(resp *domain.BuildResponse) error {
	switch r.format {
	case domain.OutputFormatJSON:
		return r.outputJSON(resp)
	case domain.OutputFormatYAML:
		return r.outputYAML(resp)
	default:
		return r.outputBuildText(resp)
	}
}

// ReportQuery writes a query response.
func (r *Reporter) ReportQuery(resp *domain.QueryResponse) error {
	switch r.format {
	case domain.OutputFormatJSON:
		return r.outputJSON(resp)
	case domain.OutputFormatYAML:
		return r.outputYAML(resp)
	default:
		return r.outputQueryText(resp)
	}
}

func (r *Reporter) outputJSON(v any) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (r *Reporter) outputYAML(v any) error {
	encoder := yaml.NewEncoder(r.writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(v)
}

func (r *Reporter) outputBuildText(resp *domain.BuildResponse) error {
	fmt.Fprintf(r.writer, "Build Report\n")
	fmt.Fprintf(r.writer, "============\n\n")
	fmt.Fprintf(r.writer, "Run ID:  %s\n", resp.RunID)
	fmt.Fprintf(r.writer, "Points:  %d\n", resp.Points)
	fmt.Fprintf(r.writer, "Elapsed: %s\n\n", resp.Elapsed)

	fmt.Fprintf(r.writer, "Tree Stats:\n")
	fmt.Fprintf(r.writer, "  Internal Nodes:  %d\n", resp.Stats.InternalNodes)
	fmt.Fprintf(r.writer, "  Leaves:          %d\n", resp.Stats.Leaves)
	fmt.Fprintf(r.writer, "  Max Depth:       %d\n", resp.Stats.MaxDepth)
	fmt.Fprintf(r.writer, "  Avg Leaf Size:   %.2f\n", resp.Stats.AvgLeafSize)
	fmt.Fprintf(r.writer, "  Avg Leaf Radius: %.2f\n", resp.Stats.AvgLeafRadius)
	return nil
}

func (r *Reporter) outputQueryText(resp *domain.QueryResponse) error {
	fmt.Fprintf(r.writer, "Query Results: %d match(es)\n", len(resp.Matches))
	if len(resp.Matches) == 0 {
		return nil
	}

	fmt.Fprintf(r.writer, "%-10s %-8s %s\n", "ID", "Dist", "Coord")
	fmt.Fprint(r.writer, strings.Repeat("-", 40))
	fmt.Fprintln(r.writer)
	for _, m := range resp.Matches {
		dist := "?"
		if m.Dist >= 0 {
			dist = fmt.Sprintf("%.4f", m.Dist)
		}
		fmt.Fprintf(r.writer, "%-10d %-8s %v\n", m.ID, dist, m.Coord)
	}
	return nil
}
