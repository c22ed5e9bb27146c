package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/antipole-index/antipole/internal/config"
	"github.com/antipole-index/antipole/internal/constants"
)

// explicitFlags extracts which flags were explicitly set on the command
// line, for internal/config.Merge* to know which side of the merge wins.
func explicitFlags(cmd *cobra.Command) map[string]bool {
	flags := make(map[string]bool)
	if cmd != nil {
		cmd.Flags().Visit(func(f *pflag.Flag) {
			flags[f.Name] = true
		})
	}
	return flags
}

// resolveConfig loads the .antipole.toml named by explicitPath, or the one
// found in the current directory, falling back to config.DefaultConfig
// when neither exists, then layers ANTIPOLE_*-prefixed environment
// variables on top (config.ApplyEnvOverrides). CLI flags are merged in
// afterwards by the caller via config.Merge*, so the final precedence is
// CLI flag > env var > TOML file > built-in default.
func resolveConfig(explicitPath string) (*config.Config, error) {
	path := explicitPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return config.ApplyEnvOverrides(config.DefaultConfig()), nil
		}
		path = config.FindConfigFile(cwd, constants.DefaultConfigFileName)
	}
	if path == "" {
		return config.ApplyEnvOverrides(config.DefaultConfig()), nil
	}
	cfg, err := config.LoadTomlConfig(path)
	if err != nil {
		return nil, err
	}
	return config.ApplyEnvOverrides(cfg), nil
}
