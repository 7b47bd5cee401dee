package climber

import "math/rand"

// RNG is the randomness source the world draws from. *rand.Rand satisfies it;
// tests swap in a scripted sequence.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// NewRNG returns a seeded generator.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// Between returns a uniform integer in [lo, hi]. An empty range returns lo
// without drawing.
func Between(r RNG, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// FloatBetween returns a uniform float in [lo, hi).
func FloatBetween(r RNG, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Chance draws once and reports whether the draw fell under p.
func Chance(r RNG, p float64) bool {
	return r.Float64() < p
}
