// Package config loads the optional app settings file. Goal files never go
// through this path; it covers only tool behavior like the save debounce and
// where the goals live.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"almanac/pkg/goal"
)

// Config is the contents of <data dir>/config.yml.
type Config struct {
	// GoalsDir overrides where goal files live; empty means the default
	// data directory.
	GoalsDir string `yaml:"goals_dir,omitempty"`
	// DebounceMs is the quiet period before an edit is written to disk.
	DebounceMs int `yaml:"debounce_ms"`
	// FarFuture is the end date assumed for goals without one, YYYY-MM-DD.
	FarFuture string `yaml:"far_future"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		DebounceMs: 300,
		FarFuture:  goal.DayKey(goal.DefaultFarFuture),
	}
}

// Path returns the config file location inside a data directory.
func Path(dataDir string) string {
	return filepath.Join(dataDir, "config.yml")
}

// Load reads the config file, filling unset fields with defaults. A missing
// file is not an error; a malformed one is, since silently ignoring typos in
// settings is worse than failing.
func Load(dataDir string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(Path(dataDir))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = Default().DebounceMs
	}
	if cfg.FarFuture == "" {
		cfg.FarFuture = Default().FarFuture
	}
	return cfg, nil
}

// WriteDefault writes a starter config file, refusing to clobber an existing
// one.
func WriteDefault(dataDir string) error {
	path := Path(dataDir)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Debounce returns the save quiet period as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// FarFutureDate parses the configured far-future date, falling back to the
// built-in default if it doesn't parse.
func (c Config) FarFutureDate() time.Time {
	d, err := goal.ParseDay(c.FarFuture)
	if err != nil {
		return goal.DefaultFarFuture
	}
	return d
}
