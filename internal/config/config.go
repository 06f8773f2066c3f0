// Package config loads fixturegen settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/mllab/fixturegen/internal/fixture"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "fixturegen.hcl"

// Config represents the complete fixturegen configuration
type Config struct {
	Generator *GeneratorSettings `hcl:"generator,block"`
	Logging   *LoggingSettings   `hcl:"logging,block"`
}

// GeneratorSettings controls what is generated and where
type GeneratorSettings struct {
	Seed      *int64 `hcl:"seed,optional"`
	OutputDir string `hcl:"output_dir,optional"`
	Strategy  string `hcl:"strategy,optional"`
}

// LoggingSettings controls log output
type LoggingSettings struct {
	Level           string `hcl:"level,optional"`
	ReportTimestamp bool   `hcl:"report_timestamp,optional"`
}

// Default returns the default configuration
func Default() *Config {
	seed := fixture.DefaultSeed
	return &Config{
		Generator: &GeneratorSettings{
			Seed:     &seed,
			Strategy: fixture.StrategyQuarters.String(),
		},
		Logging: &LoggingSettings{
			Level: "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an
// error; the defaults are returned instead.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()
	if config.Generator == nil {
		config.Generator = defaults.Generator
	}
	if config.Logging == nil {
		config.Logging = defaults.Logging
	}
	if config.Generator.Seed == nil {
		config.Generator.Seed = defaults.Generator.Seed
	}
	if config.Generator.Strategy == "" {
		config.Generator.Strategy = defaults.Generator.Strategy
	}
	if config.Logging.Level == "" {
		config.Logging.Level = defaults.Logging.Level
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	strategy, err := fixture.ParseStrategy(c.Generator.Strategy)
	if err != nil {
		return err
	}
	if !strategy.Supported() {
		return fmt.Errorf("%w: %s", fixture.ErrUnsupportedStrategy, strategy)
	}

	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}

	return nil
}

// Strategy returns the parsed sampling strategy. Call Validate first.
func (c *Config) Strategy() fixture.Strategy {
	s, _ := fixture.ParseStrategy(c.Generator.Strategy)
	return s
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
