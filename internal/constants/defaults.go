// Package constants collects the default tunables for antipole tree
// construction and queries: named threshold constants kept apart from
// the config structs that carry them.
package constants

const (
	// DefaultTargetRadius is the builder's default upper bound on a
	// leaf cluster's radius when no value is supplied.
	DefaultTargetRadius = 20.0

	// DefaultDimensionHint sets the tournament size (dimensionHint+1)
	// used by the antipole and 1-median selectors' randomized
	// reduction on large point sets, when no value is supplied.
	DefaultDimensionHint = 3

	// DefaultK is the default number of neighbors returned by a k-NN
	// query when a CLI invocation omits --k.
	DefaultK = 10

	// DefaultRadius is the default range-search radius.
	DefaultRadius = 10.0

	// DefaultPointCount is the number of points the demo dataset
	// generator produces when no count is supplied.
	DefaultPointCount = 1000

	// DefaultCoordMax bounds each generated coordinate to [0, DefaultCoordMax].
	DefaultCoordMax = 255

	// DefaultVectorDimension is a default dimensionality for demo point
	// vectors. The dataset generators do not read it; they take the
	// dimension from the build's dimension hint.
	DefaultVectorDimension = 3

	// DefaultConfigFileName is the project config file the loader
	// looks for in the current directory when no path is given.
	DefaultConfigFileName = ".antipole.toml"

	// DefaultOutputFormat is used when neither a flag nor a config
	// file specifies one.
	DefaultOutputFormat = "text"
)
