// Package randutil builds the seeded random streams fixtures are drawn from.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG seeds are derived from the one value, so equal seeds always yield
// equal streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Label draws a binary class label, 0 or 1.
func Label(rng *rand.Rand) int {
	return rng.IntN(2)
}

// Unit draws a float in [0, 1).
func Unit(rng *rand.Rand) float64 {
	return rng.Float64()
}

// Signed draws a float in [-1, 1) from a single Unit draw.
func Signed(rng *rand.Rand) float64 {
	return 2*Unit(rng) - 1
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
