package sim

import "math"

// RandomWalkMetropolis proposes a Gaussian jitter of the current
// position and accepts with the Metropolis ratio. The proposal is
// symmetric, so no proposal-density correction term appears.
//
// Draw order per step: Norm (x jitter), Norm (y jitter), Uniform
// (acceptance). Tests rely on this sequence.
type RandomWalkMetropolis struct{}

// Step implements Kernel for RandomWalkMetropolis.
func (k *RandomWalkMetropolis) Step(current Point, target *Target, params KernelParams, rng *RNG) Proposal {
	candidate := Point{
		X: current.X + rng.Norm()*params.StepSize,
		Y: current.Y + rng.Norm()*params.StepSize,
	}
	logRatio := target.LogDensity(candidate.X, candidate.Y) - target.LogDensity(current.X, current.Y)
	if math.Log(rng.Uniform()) < logRatio {
		return Proposal{Point: candidate, Accepted: true}
	}
	return Proposal{Point: current, Accepted: false}
}
