package fixture

import (
	"errors"
	"fmt"
)

// Mode names a dataset variant.
type Mode string

const (
	ModeTrain Mode = "train"
	ModeTest  Mode = "test"
)

const (
	TrainInstances   = 1000
	TestInstances    = 100
	DefaultInstances = 1000
)

// ErrUnknownMode is returned by ParseMode for tokens outside Modes().
var ErrUnknownMode = errors.New("unknown mode")

// Modes lists the recognized modes in their canonical order.
func Modes() []Mode {
	return []Mode{ModeTrain, ModeTest}
}

// ParseMode validates a token against the recognized modes.
func ParseMode(token string) (Mode, error) {
	switch Mode(token) {
	case ModeTrain, ModeTest:
		return Mode(token), nil
	}
	return "", fmt.Errorf("%w %q (expected one of %v)", ErrUnknownMode, token, Modes())
}

// InstanceCount returns how many rows a token produces. Unrecognized
// tokens get DefaultInstances rather than an error.
func InstanceCount(token string) int {
	switch Mode(token) {
	case ModeTrain:
		return TrainInstances
	case ModeTest:
		return TestInstances
	default:
		return DefaultInstances
	}
}
