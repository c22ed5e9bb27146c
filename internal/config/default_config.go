package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/antipole-index/antipole/internal/constants"
)

// DefaultConfig returns the built-in configuration used when no
// .antipole.toml file is found and no overrides are supplied.
func DefaultConfig() *Config {
	return &Config{
		Build: BuildConfig{
			TargetRadius:  constants.DefaultTargetRadius,
			DimensionHint: constants.DefaultDimensionHint,
			PointCount:    constants.DefaultPointCount,
			CoordMax:      constants.DefaultCoordMax,
		},
		Query: QueryConfig{
			K:      constants.DefaultK,
			Radius: constants.DefaultRadius,
		},
		Output: OutputConfig{
			Format: constants.DefaultOutputFormat,
		},
	}
}

// DefaultConfigTOML renders DefaultConfig as .antipole.toml text, for the
// init command to write out as a starting point.
func DefaultConfigTOML() (string, error) {
	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
