// Command fixturegen writes the labeled 2D point fixtures used by the ML
// test suite.
//
//	fixturegen train test
//	fixturegen verify train.csv test.csv
package main

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Generate GenerateCmd      `cmd:"" default:"withargs" help:"Write fixture files for the given modes"`
	Verify   VerifyCmd        `cmd:"" help:"Check fixture files against the fixture invariants"`
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("fixturegen"),
		kong.Description("Generate labeled 2D point fixtures for the ML test suite"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

// sourceDir is the directory this file was compiled from. Fixtures and the
// config file live next to the generator rather than in the caller's
// working directory.
func sourceDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Dir(file)
}
