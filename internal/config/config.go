// Package config loads the settings of the specter command from TOML or
// YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/govalues/bigdecimal"
)

// DefaultPrecision is the number of digits after the decimal point used by
// division and transcendental functions when the configuration omits it.
const DefaultPrecision = 10

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the complete command configuration
type Config struct {
	Engine EngineConfig `toml:"engine" yaml:"engine"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// EngineConfig holds the arithmetic engine settings
type EngineConfig struct {
	Precision        int `toml:"precision" yaml:"precision"`
	KaratsubaCutoff  int `toml:"karatsuba_cutoff" yaml:"karatsuba_cutoff"`
	NewtonIterations int `toml:"newton_iterations" yaml:"newton_iterations"`
	TaylorFactor     int `toml:"taylor_factor" yaml:"taylor_factor"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Plain bool `toml:"plain" yaml:"plain"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file.
// The format is selected by the file extension: ".yaml" and ".yml" are
// decoded as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Engine.Precision == 0 {
		c.Engine.Precision = DefaultPrecision
	}
	if c.Engine.KaratsubaCutoff == 0 {
		c.Engine.KaratsubaCutoff = bigdecimal.DefaultKaratsubaCutoff
	}
	if c.Engine.NewtonIterations == 0 {
		c.Engine.NewtonIterations = bigdecimal.DefaultNewtonIterations
	}
	if c.Engine.TaylorFactor == 0 {
		c.Engine.TaylorFactor = bigdecimal.DefaultTaylorFactor
	}
}

// validate rejects negative settings.
// Zero values are allowed and replaced by defaults.
func (c *Config) validate() error {
	switch {
	case c.Engine.Precision < 0:
		return fmt.Errorf("engine.precision %v: %w", c.Engine.Precision, ErrInvalidConfig)
	case c.Engine.KaratsubaCutoff < 0:
		return fmt.Errorf("engine.karatsuba_cutoff %v: %w", c.Engine.KaratsubaCutoff, ErrInvalidConfig)
	case c.Engine.NewtonIterations < 0:
		return fmt.Errorf("engine.newton_iterations %v: %w", c.Engine.NewtonIterations, ErrInvalidConfig)
	case c.Engine.TaylorFactor < 0:
		return fmt.Errorf("engine.taylor_factor %v: %w", c.Engine.TaylorFactor, ErrInvalidConfig)
	}
	return nil
}

// Context returns the engine parameters as a [bigdecimal.Context].
func (c *Config) Context() bigdecimal.Context {
	return bigdecimal.Context{
		KaratsubaCutoff:  c.Engine.KaratsubaCutoff,
		NewtonIterations: c.Engine.NewtonIterations,
		TaylorFactor:     c.Engine.TaylorFactor,
	}
}
