package sim

import "math"

// Caps for the hit-and-run doubling and shrinking loops.
const (
	hitAndRunDoubleCap = 20
	hitAndRunShrinkCap = 50
)

// HitAndRun picks a random direction, grows a bracket around the
// current point by doubling until both endpoints fall below the slice
// threshold, then shrink-samples along the line like the slice sampler.
// No bracket path is reported.
//
// Draw order per step: Uniform (direction angle), Uniform (threshold),
// then one Uniform per shrink draw.
type HitAndRun struct{}

// Step implements Kernel for HitAndRun.
func (k *HitAndRun) Step(current Point, target *Target, params KernelParams, rng *RNG) Proposal {
	theta := rng.Angle()
	dirX, dirY := math.Cos(theta), math.Sin(theta)
	threshold := target.LogDensity(current.X, current.Y) + math.Log(rng.Uniform())

	at := func(dist float64) Point {
		return Point{X: current.X + dist*dirX, Y: current.Y + dist*dirY}
	}
	logpAt := func(dist float64) float64 {
		p := at(dist)
		return target.LogDensity(p.X, p.Y)
	}

	left, right := -1.0, 1.0
	for i := 0; i < hitAndRunDoubleCap && logpAt(left) > threshold; i++ {
		left *= 2.0
	}
	for i := 0; i < hitAndRunDoubleCap && logpAt(right) > threshold; i++ {
		right *= 2.0
	}

	for i := 0; i < hitAndRunShrinkCap; i++ {
		dist := left + rng.Uniform()*(right-left)
		candidate := at(dist)
		if target.LogDensity(candidate.X, candidate.Y) > threshold {
			return Proposal{Point: candidate, Accepted: true}
		}
		if dist < 0 {
			left = dist
		} else {
			right = dist
		}
	}
	return Proposal{Point: current, Accepted: false}
}
