// Package config loads runtime configuration from a YAML file. Missing
// file means defaults — the engine must always be able to start.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "5s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the standard library representation.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds the runtime knobs. Balance tables are code, not config.
type Config struct {
	// TickInterval is the economy recomputation period.
	TickInterval Duration `yaml:"tick_interval"`
	// FlushInterval is the persistence flush period. Rounded to a whole
	// number of ticks.
	FlushInterval Duration `yaml:"flush_interval"`
	// DBPath locates the SQLite save file.
	DBPath string `yaml:"db_path"`
	// APIPort serves the read-only observation API. 0 disables it.
	APIPort int `yaml:"api_port"`
	// Seed makes roster generation deterministic when non-zero.
	Seed int64 `yaml:"seed"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		TickInterval:  Duration(time.Second),
		FlushInterval: Duration(5 * time.Second),
		DBPath:        "data/whoo.db",
		APIPort:       8080,
	}
}

// Load reads the config file at path, filling unset fields with defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = Duration(time.Second)
	}
	if cfg.FlushInterval < cfg.TickInterval {
		cfg.FlushInterval = 5 * cfg.TickInterval
	}
	return cfg, nil
}

// FlushEvery converts the flush interval into a tick count, minimum 1.
func (c Config) FlushEvery() int {
	n := int(c.FlushInterval / c.TickInterval)
	if n < 1 {
		n = 1
	}
	return n
}
