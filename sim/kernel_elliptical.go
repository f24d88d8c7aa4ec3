package sim

import "math"

// ellipticalShrinkCap bounds the angle-bracket shrinking loop.
const ellipticalShrinkCap = 50

// EllipticalSlice samples along the ellipse through the current point
// and an auxiliary standard-normal vector. Exact for targets that
// decompose as likelihood × standard-normal prior; on other catalog
// targets it is still a valid experiment to watch, just not exact.
//
// Draw order per step: Norm, Norm (auxiliary vector), Uniform
// (threshold), Uniform (initial angle), then one Uniform per shrink.
type EllipticalSlice struct{}

// Step implements Kernel for EllipticalSlice.
func (k *EllipticalSlice) Step(current Point, target *Target, params KernelParams, rng *RNG) Proposal {
	nuX, nuY := rng.Norm(), rng.Norm()
	threshold := target.LogDensity(current.X, current.Y) + math.Log(rng.Uniform())

	theta := rng.Angle()
	thetaMin, thetaMax := theta-2.0*math.Pi, theta

	for i := 0; i < ellipticalShrinkCap; i++ {
		candidate := Point{
			X: current.X*math.Cos(theta) + nuX*math.Sin(theta),
			Y: current.Y*math.Cos(theta) + nuY*math.Sin(theta),
		}
		if target.LogDensity(candidate.X, candidate.Y) > threshold {
			return Proposal{Point: candidate, Accepted: true}
		}
		// shrink toward zero from whichever side theta fell on
		if theta < 0 {
			thetaMin = theta
		} else {
			thetaMax = theta
		}
		theta = thetaMin + rng.Uniform()*(thetaMax-thetaMin)
	}
	return Proposal{Point: current, Accepted: false}
}
