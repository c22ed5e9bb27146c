// Package vector is the thin external collaborator the antipole index is
// built against in this repository: a Euclidean distance function over
// small integer vectors, standing in for the pixel-block descriptors of
// the photomosaic tool the Antipole Tree was originally built for.
package vector

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/antipole-index/antipole/internal/antipole"
)

// Vector is an opaque point payload: a fixed-dimension coordinate in
// small non-negative integers, as stored in a Point.Payload.
type Vector []int

// Distance returns the Euclidean distance between two antipole.Points
// whose payloads are Vectors. It satisfies antipole.Distance and the
// metric-space axioms as long as every indexed point's payload is a
// Vector of the same dimension.
func Distance(p, q *antipole.Point) float64 {
	a, b := p.Payload.(Vector), q.Payload.(Vector)
	sum := 0.0
	for i := range a {
		d := float64(a[i] - b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Record is the on-disk JSON shape of one point in a point-set file: an
// id and its coordinate vector.
type Record struct {
	ID    int   `json:"id"`
	Coord []int `json:"coord"`
}

// ToPoint builds an antipole.Point carrying this record's coordinate as
// its payload.
func (r Record) ToPoint() *antipole.Point {
	return antipole.NewPoint(r.ID, Vector(r.Coord))
}

// MarshalPoint renders a point carrying a Vector payload back to its
// JSON Record form, for writing NDJSON point-set files.
func MarshalPoint(p *antipole.Point) (Record, error) {
	v, ok := p.Payload.(Vector)
	if !ok {
		return Record{}, fmt.Errorf("point %d: payload is not a vector.Vector", p.ID)
	}
	return Record{ID: p.ID, Coord: []int(v)}, nil
}

// ParseRecord decodes a single NDJSON line into a Record.
func ParseRecord(line []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(line, &r); err != nil {
		return Record{}, fmt.Errorf("parse point record: %w", err)
	}
	return r, nil
}
