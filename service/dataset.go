package service

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/antipole-index/antipole/internal/antipole"
	"github.com/antipole-index/antipole/internal/rng"
	"github.com/antipole-index/antipole/internal/vector"
)

// GenerateRandomPoints synthesizes count points of the given dimension,
// each coordinate drawn uniformly from [0, coordMax], mirroring the demo
// dataset generator of the original photomosaic antipole tool (its
// RAND_DATA macro: rand() % VEC_DOMAIN per coordinate).
func GenerateRandomPoints(count, dimension, coordMax int, r rng.Source) []*antipole.Point {
	points := make([]*antipole.Point, count)
	for i := 0; i < count; i++ {
		coord := make([]int, dimension)
		for d := 0; d < dimension; d++ {
			coord[d] = r.IntN(coordMax + 1)
		}
		points[i] = vector.Record{ID: i, Coord: coord}.ToPoint()
	}
	return points
}

// LoadPointSet reads a newline-delimited JSON point-set file (one
// vector.Record per line) from r.
func LoadPointSet(r io.Reader) ([]*antipole.Point, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var points []*antipole.Point
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		rec, err := vector.ParseRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, rec.ToPoint())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read point set: %w", err)
	}
	return points, nil
}

// WritePointSet writes points to w as newline-delimited JSON, one
// vector.Record per line.
func WritePointSet(w io.Writer, points []*antipole.Point) error {
	enc := json.NewEncoder(w)
	for _, p := range points {
		rec, err := vector.MarshalPoint(p)
		if err != nil {
			return err
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("write point %d: %w", p.ID, err)
		}
	}
	return nil
}
