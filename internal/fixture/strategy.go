package fixture

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/mllab/fixturegen/internal/randutil"
)

// Strategy selects how a row's coordinates are drawn.
type Strategy int

const (
	// StrategyQuarters draws X uniformly over [-1, 1) and leaves Y at 0.
	StrategyQuarters Strategy = iota
	// StrategyHalves is recognized by name but has no sampler.
	StrategyHalves
)

var ErrUnsupportedStrategy = errors.New("unsupported strategy")

func (s Strategy) String() string {
	switch s {
	case StrategyQuarters:
		return "quarters"
	case StrategyHalves:
		return "halves"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Supported reports whether Sample can draw rows for s.
func (s Strategy) Supported() bool {
	return s == StrategyQuarters
}

// ParseStrategy maps a strategy name to its value. It accepts every declared
// strategy, supported or not; callers check Supported separately.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "quarters":
		return StrategyQuarters, nil
	case "halves":
		return StrategyHalves, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedStrategy, name)
}

// Sample draws the row at index from rng. The label is always drawn before
// X; reordering the draws changes every fixture generated from a seed.
func Sample(rng *rand.Rand, s Strategy, index int) (Row, error) {
	switch s {
	case StrategyQuarters:
		label := randutil.Label(rng)
		x := Round(randutil.Signed(rng), 2)
		return Row{Index: index, X: x, Y: 0, Type: label}, nil
	default:
		return Row{}, fmt.Errorf("%w: %s", ErrUnsupportedStrategy, s)
	}
}
