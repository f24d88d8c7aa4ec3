package sim

import "math"

// Iteration caps for the bracket searches. Exhausting a cap yields an
// unmoved, rejected state rather than an error: a statistically
// inefficient but valid outcome on pathological densities.
const (
	sliceStepOutCap = 100
	sliceShrinkCap  = 100
)

// SliceSampler is an axis-free slice sampler: it draws a random
// direction, brackets the slice through the current point along that
// direction by stepping out, then shrink-samples within the bracket
// until it lands above the threshold.
//
// Path reports the final bracket endpoints, accepted or not.
//
// Draw order per step: Uniform (threshold), Uniform (direction angle),
// Uniform (bracket placement), then one Uniform per shrink draw.
type SliceSampler struct{}

// Step implements Kernel for SliceSampler.
func (k *SliceSampler) Step(current Point, target *Target, params KernelParams, rng *RNG) Proposal {
	threshold := target.LogDensity(current.X, current.Y) + math.Log(rng.Uniform())
	theta := rng.Angle()
	dirX, dirY := math.Cos(theta), math.Sin(theta)

	// initial bracket of width StepSize, positioned so the current point
	// (distance 0) lies inside it
	left := -rng.Uniform() * params.StepSize
	right := left + params.StepSize

	at := func(dist float64) Point {
		return Point{X: current.X + dist*dirX, Y: current.Y + dist*dirY}
	}
	logpAt := func(dist float64) float64 {
		p := at(dist)
		return target.LogDensity(p.X, p.Y)
	}

	for i := 0; i < sliceStepOutCap && logpAt(left) > threshold; i++ {
		left -= params.StepSize
	}
	for i := 0; i < sliceStepOutCap && logpAt(right) > threshold; i++ {
		right += params.StepSize
	}

	for i := 0; i < sliceShrinkCap; i++ {
		dist := left + rng.Uniform()*(right-left)
		candidate := at(dist)
		if target.LogDensity(candidate.X, candidate.Y) > threshold {
			return Proposal{
				Point:    candidate,
				Accepted: true,
				Path:     []Point{at(left), at(right)},
			}
		}
		if dist < 0 {
			left = dist
		} else {
			right = dist
		}
	}
	return Proposal{
		Point:    current,
		Accepted: false,
		Path:     []Point{at(left), at(right)},
	}
}
