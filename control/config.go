// File: control/config.go
// Author: momentics <momentics@gmail.com>
//
// YAML-backed configuration with defaults, validation and reload hooks.

package control

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config is the library configuration loaded from YAML.
type Config struct {
	Pool PoolConfig `yaml:"pool"`
	Log  LogConfig  `yaml:"log"`
}

// PoolConfig sizes the process-wide buffer pool.
type PoolConfig struct {
	// Capacity is the fixed slot count.
	Capacity int `yaml:"capacity"`

	// Hugepages requests hugepage arena backing where supported.
	Hugepages bool `yaml:"hugepages"`
}

// LogConfig selects the logging level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Pool: PoolConfig{Capacity: 4096},
		Log:  LogConfig{Level: "info"},
	}
}

// LoadConfig reads and validates a YAML config file, filling omitted
// fields from DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the pool cannot honor.
func (c Config) Validate() error {
	if c.Pool.Capacity <= 0 {
		return fmt.Errorf("config: pool capacity must be positive, got %d", c.Pool.Capacity)
	}
	return nil
}

// ConfigStore holds the active configuration and notifies listeners on
// replacement.
type ConfigStore struct {
	mu        sync.RWMutex
	cfg       Config
	listeners []func(Config)
}

// NewConfigStore starts from the given configuration.
func NewConfigStore(cfg Config) *ConfigStore {
	return &ConfigStore{cfg: cfg}
}

// Get returns the active configuration snapshot.
func (cs *ConfigStore) Get() Config {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.cfg
}

// Set replaces the configuration and invokes listeners synchronously,
// in registration order.
func (cs *ConfigStore) Set(cfg Config) {
	cs.mu.Lock()
	cs.cfg = cfg
	listeners := cs.listeners
	cs.mu.Unlock()
	for _, fn := range listeners {
		fn(cfg)
	}
}

// OnReload registers a listener invoked on every Set.
func (cs *ConfigStore) OnReload(fn func(Config)) {
	cs.mu.Lock()
	cs.listeners = append(cs.listeners, fn)
	cs.mu.Unlock()
}
