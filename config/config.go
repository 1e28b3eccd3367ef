package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAngleEpsilon = 1e-5
	DefaultMaxPasses    = 1
)

type Config struct {
	/// Largest summed normal angle around a vertex, in radians, still
	/// treated as flat. [Limit: >= 0]
	AngleEpsilon float64 `yaml:"angle_epsilon"`

	/// Number of simplification passes Run may perform. [Limit: >= 1]
	MaxPasses int `yaml:"max_passes"`

	/// Number of goroutines planning regions. 0 or 1 plans on the caller.
	Workers int `yaml:"workers"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`

	/// Rotating log file. Empty logs to stderr.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

func NewConfig() *Config {
	c := &Config{}
	c.Reset()
	return c
}

func (cfg *Config) Reset() {
	cfg.AngleEpsilon = DefaultAngleEpsilon
	cfg.MaxPasses = DefaultMaxPasses
	cfg.Workers = 0
	cfg.Log.Reset()
}

func (cfg *LogConfig) Reset() {
	*cfg = LogConfig{
		Level:      "info",
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

func (cfg *Config) Validate() error {
	if cfg.AngleEpsilon < 0 {
		return errors.Errorf("config: angle_epsilon must be >= 0, got %g", cfg.AngleEpsilon)
	}
	if cfg.MaxPasses < 1 {
		return errors.Errorf("config: max_passes must be >= 1, got %d", cfg.MaxPasses)
	}
	if cfg.Workers < 0 {
		return errors.Errorf("config: workers must be >= 0, got %d", cfg.Workers)
	}
	return nil
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
