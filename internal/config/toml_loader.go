package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// LoadTomlConfig reads and parses a .antipole.toml file at path, returning
// the parsed Config layered on top of DefaultConfig for any field the
// file omits (go-toml/v2 leaves zero values in place for absent keys, so
// defaults are applied first and the file is decoded over them).
func LoadTomlConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// FindConfigFile looks for fileName in dir, returning its path if present
// and an empty string otherwise.
func FindConfigFile(dir, fileName string) string {
	path := filepath.Join(dir, fileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
