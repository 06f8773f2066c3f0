package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/mllab/fixturegen/internal/config"
	"github.com/mllab/fixturegen/internal/fixture"
)

// GenerateCmd writes one fixture file per requested mode.
type GenerateCmd struct {
	Modes    []string `arg:"" optional:"" name:"mode" help:"Datasets to generate (train, test)"`
	Seed     *int64   `kong:"help='Seed for the random stream (overrides config, default 1337)'"`
	Dir      string   `kong:"help='Output directory (default: next to the generator)'"`
	Config   string   `kong:"help='HCL config file (default: fixturegen.hcl next to the generator)'"`
	Strategy string   `kong:"help='Sampling strategy (overrides config)'"`
	Debug    bool     `kong:"help='Enable debug logging'"`
}

// Validate rejects unrecognized modes before anything is written.
func (c *GenerateCmd) Validate() error {
	for _, mode := range c.Modes {
		if _, err := fixture.ParseMode(mode); err != nil {
			return err
		}
	}
	return nil
}

func (c *GenerateCmd) Run() error {
	return c.run(os.Stderr, os.Stdout)
}

func (c *GenerateCmd) run(logOut, out io.Writer) error {
	cfgPath := c.Config
	if cfgPath == "" {
		cfgPath = filepath.Join(sourceDir(), config.DefaultFile)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", cfgPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", cfgPath, err)
	}

	level := cfg.LogLevel()
	if c.Debug {
		level = log.DebugLevel
	}
	logger := setupLogger(logOut, level, cfg.Logging.ReportTimestamp)

	if len(c.Modes) == 0 {
		logger.Warn("No modes given, nothing to generate", "modes", fixture.Modes())
		return nil
	}

	seed := *cfg.Generator.Seed
	if c.Seed != nil {
		seed = *c.Seed
	}

	strategy := cfg.Strategy()
	if c.Strategy != "" {
		if strategy, err = fixture.ParseStrategy(c.Strategy); err != nil {
			return err
		}
	}

	dir := c.outputDir(cfg, cfgPath)
	logger.Debug("Generating fixtures", "seed", seed, "strategy", strategy, "dir", dir, "config", cfgPath)

	gen, err := fixture.New(seed, dir,
		fixture.WithLogger(logger),
		fixture.WithStrategy(strategy),
	)
	if err != nil {
		return err
	}

	results, err := gen.Generate(c.Modes)
	if err != nil {
		return err
	}

	fmt.Fprint(out, renderSummary(results))
	return nil
}

// outputDir picks the flag, then the config value (relative to the config
// file), then the generator's own directory.
func (c *GenerateCmd) outputDir(cfg *config.Config, cfgPath string) string {
	if c.Dir != "" {
		return c.Dir
	}
	if dir := cfg.Generator.OutputDir; dir != "" {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(filepath.Dir(cfgPath), dir)
	}
	return sourceDir()
}
