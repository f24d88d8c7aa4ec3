package sim

import "math"

// independentMHSigma is the fixed proposal scale for IndependentMH.
// Deliberately not user-tunable: the proposal must stay wide enough to
// cover every catalog target or the sampler mixes pathologically.
const independentMHSigma = 1.5

// IndependentMH draws proposals from a fixed zero-centered Gaussian,
// independent of the current state. Because the proposal is not
// symmetric around the current point, the acceptance ratio carries the
// proposal-density correction.
//
// Draw order per step: Norm, Norm, Uniform.
type IndependentMH struct {
	Sigma float64
}

// Step implements Kernel for IndependentMH.
func (k *IndependentMH) Step(current Point, target *Target, params KernelParams, rng *RNG) Proposal {
	candidate := Point{
		X: rng.Norm() * k.Sigma,
		Y: rng.Norm() * k.Sigma,
	}
	// log q up to a constant; the constant cancels in the ratio
	logq := func(p Point) float64 {
		return -0.5 * (p.X*p.X + p.Y*p.Y) / (k.Sigma * k.Sigma)
	}
	logRatio := (target.LogDensity(candidate.X, candidate.Y) + logq(current)) -
		(target.LogDensity(current.X, current.Y) + logq(candidate))
	if math.Log(rng.Uniform()) < logRatio {
		return Proposal{Point: candidate, Accepted: true}
	}
	return Proposal{Point: current, Accepted: false}
}
