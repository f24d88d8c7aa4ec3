package sim

import (
	"math"
)

// HamiltonianMC simulates Hamiltonian dynamics with a leapfrog
// integrator: auxiliary Gaussian momentum, LeapfrogSteps position/
// momentum updates of size LeapfrogEpsilon, then a Metropolis accept on
// the change in total energy H = -logp + ½‖p‖².
//
// Requires a target with a Gradient. Every integrator position is
// recorded in Path; a rejected step reverts to the current position but
// still carries the attempted trajectory for visualization.
//
// Draw order per step: Norm, Norm (momentum), Uniform (acceptance).
type HamiltonianMC struct{}

// Step implements Kernel for HamiltonianMC.
func (k *HamiltonianMC) Step(current Point, target *Target, params KernelParams, rng *RNG) Proposal {
	pX, pY := rng.Norm(), rng.Norm()
	hStart := hamiltonian(target, current.X, current.Y, pX, pY)

	x, y := current.X, current.Y
	eps := params.LeapfrogEpsilon
	path := make([]Point, 0, params.LeapfrogSteps+1)
	path = append(path, current)

	// leapfrog: half-step momentum, alternating full position and
	// momentum updates, final half-step momentum
	gX, gY := target.Gradient(x, y)
	pX += 0.5 * eps * gX
	pY += 0.5 * eps * gY
	for i := 0; i < params.LeapfrogSteps; i++ {
		x += eps * pX
		y += eps * pY
		path = append(path, Point{X: x, Y: y})
		gX, gY = target.Gradient(x, y)
		if i != params.LeapfrogSteps-1 {
			pX += eps * gX
			pY += eps * gY
		}
	}
	pX += 0.5 * eps * gX
	pY += 0.5 * eps * gY

	hEnd := hamiltonian(target, x, y, pX, pY)
	if math.Log(rng.Uniform()) < hStart-hEnd {
		return Proposal{Point: Point{X: x, Y: y}, Accepted: true, Path: path}
	}
	return Proposal{Point: current, Accepted: false, Path: path}
}

// hamiltonian is the total energy at position (x,y) with momentum (pX,pY).
func hamiltonian(target *Target, x, y, pX, pY float64) float64 {
	return -target.LogDensity(x, y) + 0.5*(pX*pX+pY*pY)
}
