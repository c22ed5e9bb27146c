package config

import (
	"strings"

	"github.com/spf13/viper"
)

// ApplyEnvOverrides layers ANTIPOLE_-prefixed environment variables over
// cfg, sitting between the TOML file and CLI flags in the merge
// precedence (CLI flag > env var > TOML file > built-in default). A set
// variable like ANTIPOLE_BUILD_TARGET_RADIUS overrides cfg.Build.TargetRadius;
// unset variables leave cfg untouched.
func ApplyEnvOverrides(cfg *Config) *Config {
	v := viper.New()
	v.SetEnvPrefix("antipole")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	result := *cfg

	if v.IsSet("build.target_radius") {
		result.Build.TargetRadius = v.GetFloat64("build.target_radius")
	}
	if v.IsSet("build.dimension_hint") {
		result.Build.DimensionHint = v.GetInt("build.dimension_hint")
	}
	if v.IsSet("build.point_count") {
		result.Build.PointCount = v.GetInt("build.point_count")
	}
	if v.IsSet("build.coord_max") {
		result.Build.CoordMax = v.GetInt("build.coord_max")
	}
	if v.IsSet("build.seed") {
		result.Build.Seed = uint64(v.GetInt64("build.seed"))
	}
	if v.IsSet("query.k") {
		result.Query.K = v.GetInt("query.k")
	}
	if v.IsSet("query.radius") {
		result.Query.Radius = v.GetFloat64("query.radius")
	}
	if v.IsSet("output.format") {
		result.Output.Format = v.GetString("output.format")
	}

	return &result
}
