// Package mcp exposes the Antipole Tree index as Model Context Protocol
// tools: build_index, range_search, knn_search, and tree_stats. A
// Dependencies holder and a handler set back tool registration, with a
// single in-process index shared across calls instead of a stateless
// per-call analysis.
package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// PointArg is the wire shape of one point in a build_index call.
type PointArg struct {
	ID    int   `json:"id" jsonschema:"stable identifier for this point"`
	Coord []int `json:"coord" jsonschema:"coordinate vector"`
}

// BuildIndexArgs is the typed argument shape for the build_index tool.
// Either Points is supplied directly, or Generate is positive and a
// random point set of that size is synthesized instead.
type BuildIndexArgs struct {
	Points        []PointArg `json:"points,omitempty" jsonschema:"explicit point set to index"`
	Generate      int        `json:"generate,omitempty" jsonschema:"generate this many random points instead of points"`
	Dimension     int        `json:"dimension,omitempty" jsonschema:"dimensionality of generated points, required with generate"`
	CoordMax      int        `json:"coord_max,omitempty" jsonschema:"max coordinate value for generated points"`
	TargetRadius  float64    `json:"target_radius,omitempty" jsonschema:"target leaf cluster radius"`
	Seed          uint64     `json:"seed,omitempty" jsonschema:"rng seed for generation and tree construction, 0 picks a random seed"`
}

// RangeSearchArgs is the typed argument shape for the range_search tool.
type RangeSearchArgs struct {
	Query  []int   `json:"query" jsonschema:"query point coordinate"`
	Radius float64 `json:"radius" jsonschema:"search radius"`
}

// KNNSearchArgs is the typed argument shape for the knn_search tool.
type KNNSearchArgs struct {
	Query []int `json:"query" jsonschema:"query point coordinate"`
	K     int   `json:"k" jsonschema:"number of neighbors to return"`
}

// TreeStatsArgs is the typed argument shape for the tree_stats tool. It
// takes no parameters; the struct exists so decodeArgs has a uniform
// schema-validation path across all four tools.
type TreeStatsArgs struct{}

// decodeArgs validates raw JSON-RPC tool arguments against T's generated
// schema, then decodes them into T. Using jsonschema.For keeps the
// validated shape and the Go struct in sync instead of hand-checking
// each field with a type assertion.
func decodeArgs[T any](raw map[string]interface{}) (T, error) {
	var zero T

	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return zero, fmt.Errorf("build argument schema: %w", err)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return zero, fmt.Errorf("marshal arguments: %w", err)
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return zero, fmt.Errorf("decode arguments: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return zero, fmt.Errorf("invalid arguments: %w", err)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("decode arguments: %w", err)
	}
	return out, nil
}
