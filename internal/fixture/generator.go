package fixture

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/mllab/fixturegen/internal/fileutil"
	"github.com/mllab/fixturegen/internal/randutil"
)

// DefaultSeed is the seed the committed fixtures were generated with.
const DefaultSeed int64 = 1337

const filePerm os.FileMode = 0o644

// Result describes one written fixture file.
type Result struct {
	Mode    string
	Path    string
	Rows    int
	Elapsed time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used to report each file written.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithClock sets the clock used to time each file.
func WithClock(clock quartz.Clock) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

// WithStrategy sets the sampling strategy. Only StrategyQuarters is
// supported; New rejects anything else.
func WithStrategy(s Strategy) Option {
	return func(g *Generator) {
		g.strategy = s
	}
}

// Generator writes fixture files from a single random stream. The stream is
// seeded once in New and advances across every mode and every Generate
// call, so a Generator is not safe for concurrent use.
type Generator struct {
	rng      *rand.Rand
	dir      string
	strategy Strategy
	logger   *log.Logger
	clock    quartz.Clock
}

// New returns a Generator writing into dir, seeded with seed.
func New(seed int64, dir string, opts ...Option) (*Generator, error) {
	g := &Generator{
		rng:      randutil.New(seed),
		dir:      dir,
		strategy: StrategyQuarters,
		logger:   log.New(io.Discard),
		clock:    quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if !g.strategy.Supported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStrategy, g.strategy)
	}
	return g, nil
}

// Dir returns the directory fixtures are written to.
func (g *Generator) Dir() string {
	return g.dir
}

// Path returns the file a token is written to.
func (g *Generator) Path(token string) string {
	return filepath.Join(g.dir, token+Ext)
}

// Generate writes one file per token, in order, and returns a Result for
// each file written. Tokens are not validated: unrecognized ones produce a
// file named after the token with DefaultInstances rows. The first I/O
// error stops generation; files already written are kept and the results
// for them are returned alongside the error.
func (g *Generator) Generate(modes []string) ([]Result, error) {
	results := make([]Result, 0, len(modes))
	for _, mode := range modes {
		res, err := g.generate(mode)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (g *Generator) generate(mode string) (Result, error) {
	count := InstanceCount(mode)
	path := g.Path(mode)
	g.logger.Info("Creating data", "file", path, "mode", mode, "instances", count)

	start := g.clock.Now()
	err := fileutil.WriteAtomic(path, filePerm, func(w io.Writer) error {
		enc := NewEncoder(w)
		if err := enc.WriteHeader(); err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			row, err := Sample(g.rng, g.strategy, i)
			if err != nil {
				return err
			}
			if err := enc.Write(row); err != nil {
				return err
			}
		}
		return enc.Flush()
	})
	if err != nil {
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}

	res := Result{
		Mode:    mode,
		Path:    path,
		Rows:    count,
		Elapsed: g.clock.Since(start),
	}
	g.logger.Debug("Wrote fixture", "file", path, "rows", count, "elapsed", res.Elapsed)
	return res, nil
}

// Generate writes one fixture file per mode into dir using a fresh
// Generator seeded with seed.
func Generate(modes []string, seed int64, dir string) error {
	g, err := New(seed, dir)
	if err != nil {
		return err
	}
	_, err = g.Generate(modes)
	return err
}
