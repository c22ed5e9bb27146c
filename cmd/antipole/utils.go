package main

import (
	"os"

	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/internal/antipole"
	"github.com/antipole-index/antipole/internal/config"
	"github.com/antipole-index/antipole/internal/rng"
	"github.com/antipole-index/antipole/internal/vector"
	"github.com/antipole-index/antipole/service"
)

// resolveOutputFormat picks the effective output format: the --format
// flag if given, else the config file's value, else text.
func resolveOutputFormat(flagValue, configValue string) (domain.OutputFormat, error) {
	value := configValue
	if flagValue != "" {
		value = flagValue
	}
	if value == "" {
		return domain.OutputFormatText, nil
	}
	return domain.ParseOutputFormat(value)
}

// loadPointsFile reads an NDJSON point-set file into domain.PointRecords.
func loadPointsFile(path string) ([]domain.PointRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewInvalidInputError("cannot open points file", err)
	}
	defer f.Close()

	points, err := service.LoadPointSet(f)
	if err != nil {
		return nil, domain.NewInvalidInputError("cannot parse points file", err)
	}
	return pointsToRecords(points), nil
}

// generatePointRecords synthesizes a random dataset per a merged build
// config, as domain.PointRecords ready to embed in a BuildRequest.
func generatePointRecords(cfg config.BuildConfig, seed uint64) []domain.PointRecord {
	source := rng.New(seed)
	dimension := cfg.DimensionHint
	if dimension <= 0 {
		dimension = 1
	}
	points := service.GenerateRandomPoints(cfg.PointCount, dimension, cfg.CoordMax, source)
	return pointsToRecords(points)
}

// savePointRecords writes records to path as NDJSON.
func savePointRecords(path string, records []domain.PointRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return domain.NewOutputError("cannot create points file", err)
	}
	defer f.Close()

	points := make([]*antipole.Point, len(records))
	for i, r := range records {
		points[i] = vector.Record{ID: r.ID, Coord: r.Coord}.ToPoint()
	}
	if err := service.WritePointSet(f, points); err != nil {
		return domain.NewOutputError("cannot write points file", err)
	}
	return nil
}

func pointsToRecords(points []*antipole.Point) []domain.PointRecord {
	records := make([]domain.PointRecord, len(points))
	for i, p := range points {
		records[i] = domain.PointRecord{ID: p.ID, Coord: []int(p.Payload.(vector.Vector))}
	}
	return records
}
