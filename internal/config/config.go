// Package config loads antipole's project configuration: built-in
// defaults, optionally overridden by a .antipole.toml file, in turn
// overridden by environment variables and CLI flags (see merge.go for
// the precedence order). A plain Config struct carries toml tags, with
// defaults kept in their own file and TOML loading kept apart from flag
// binding.
package config

// BuildConfig controls tree construction defaults.
type BuildConfig struct {
	TargetRadius  float64 `toml:"target_radius"`
	DimensionHint int     `toml:"dimension_hint"`
	PointCount    int     `toml:"point_count"`
	CoordMax      int     `toml:"coord_max"`
	Seed          uint64  `toml:"seed"`
}

// QueryConfig controls default query parameters.
type QueryConfig struct {
	K      int     `toml:"k"`
	Radius float64 `toml:"radius"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format string `toml:"format"`
}

// Config is the root of .antipole.toml.
type Config struct {
	Build  BuildConfig  `toml:"build"`
	Query  QueryConfig  `toml:"query"`
	Output OutputConfig `toml:"output"`
}
