package mcp

import (
	"sync"

	"github.com/antipole-index/antipole/domain"
	"github.com/antipole-index/antipole/internal/config"
	"github.com/antipole-index/antipole/service"
)

// Dependencies aggregates the shared state required by MCP handlers: the
// loaded configuration and the single index the session builds and
// queries. A stdio MCP server serves one client for its process
// lifetime, so one active index, guarded by a mutex against concurrent
// tool calls, is enough.
type Dependencies struct {
	config     *config.Config
	configPath string

	mu    sync.Mutex
	index *service.Result
}

// NewDependencies constructs the dependency set with sane defaults.
func NewDependencies(cfg *config.Config, configPath string) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Dependencies{config: cfg, configPath: configPath}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.Config {
	return d.config
}

// ConfigPath returns the configured config file path (may be empty).
func (d *Dependencies) ConfigPath() string {
	return d.configPath
}

// SetIndex records the most recently built tree as the session's active
// index.
func (d *Dependencies) SetIndex(result *service.Result) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.index = result
}

// Index returns the session's active index, or an error if build_index
// has not been called yet.
func (d *Dependencies) Index() (*service.Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.index == nil {
		return nil, domain.NewNotBuiltError()
	}
	return d.index, nil
}
