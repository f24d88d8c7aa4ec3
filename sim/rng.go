package sim

import (
	"math"
	"math/rand"
)

// RNG is the deterministic random source handed to kernels.
// Two RNGs built from the same seed and identical configuration MUST
// produce bit-for-bit identical draw sequences.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type RNG struct {
	seed int64
	src  *rand.Rand
}

// NewRNG creates a seeded RNG.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uniform draws from U(0,1).
func (r *RNG) Uniform() float64 {
	return r.src.Float64()
}

// Norm draws a standard normal variate via Box-Muller.
//
// Each call consumes exactly two uniforms and discards the second
// Box-Muller output. The fixed consumption rate is what lets tests
// replay a kernel's draw sequence with a shadow RNG.
func (r *RNG) Norm() float64 {
	u1 := r.src.Float64()
	u2 := r.src.Float64()
	return boxMuller(u1, u2)
}

// boxMuller maps two uniforms in [0,1) to a standard normal variate.
// u1 is clamped away from zero so the log stays finite; Float64 never
// reaches 1, so the radicand stays non-negative.
func boxMuller(u1, u2 float64) float64 {
	if u1 < 1e-12 {
		u1 = 1e-12
	}
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}

// Angle draws a direction angle from U(0, 2π).
func (r *RNG) Angle() float64 {
	return 2.0 * math.Pi * r.src.Float64()
}
