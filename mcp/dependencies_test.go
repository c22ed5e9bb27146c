package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antipole-index/antipole/internal/config"
)

func TestNewDependencies_DefaultsConfig(t *testing.T) {
	deps := NewDependencies(nil, "")
	assert.NotNil(t, deps.Config())
	assert.Equal(t, "", deps.ConfigPath())
}

func TestDependencies_IndexRoundTrip(t *testing.T) {
	deps := NewDependencies(config.DefaultConfig(), "/tmp/.antipole.toml")

	_, err := deps.Index()
	assert.Error(t, err, "expected not-built error before SetIndex")

	deps.SetIndex(nil)
	_, err = deps.Index()
	assert.Error(t, err, "a nil index should still report not-built rather than panic downstream")
}
