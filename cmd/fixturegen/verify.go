package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mllab/fixturegen/internal/fixture"
	"github.com/mllab/fixturegen/internal/statistics"
)

// VerifyCmd checks existing fixture files.
type VerifyCmd struct {
	Files []string `arg:"" name:"file" type:"existingfile" help:"Fixture files to check"`
	Debug bool     `kong:"help='Enable debug logging'"`
}

func (c *VerifyCmd) Run() error {
	return c.run(os.Stderr)
}

func (c *VerifyCmd) run(logOut io.Writer) error {
	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := setupLogger(logOut, level, false)

	for _, path := range c.Files {
		stats, err := verifyFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Info("Fixture OK", "file", path, "rows", stats.Rows, "positive_rate", stats.PositiveRate())
		logger.Debug("Fixture summary", "file", path, "stats", stats.String())
	}
	return nil
}

// verifyFile checks one file, expecting the row count its name implies.
func verifyFile(path string) (*statistics.Statistics, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := fixture.Decode(f)
	if err != nil {
		return nil, err
	}

	mode := strings.TrimSuffix(filepath.Base(path), fixture.Ext)
	if err := fixture.Verify(rows, fixture.InstanceCount(mode)); err != nil {
		return nil, err
	}
	return statistics.FromRows(rows), nil
}
