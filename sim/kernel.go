package sim

import "fmt"

// Proposal is the outcome of one kernel step: the next chain position,
// whether the underlying proposal was accepted, and (for kernels that
// traverse a path) the intermediate points of this step.
//
// A rejected Proposal carries the unchanged current position. Rejected
// HMC steps still carry the attempted leapfrog trajectory in Path so a
// caller can visualize the failed leap.
type Proposal struct {
	Point
	Accepted bool
	Path     []Point
}

// Kernel advances a chain by one step. Implementations are stateless
// aside from consuming the random source: the same (current, target,
// params, rng-state) always yields the same Proposal.
//
// Implementations MUST NOT mutate the target or params and MUST draw
// all randomness from the supplied RNG.
type Kernel interface {
	Step(current Point, target *Target, params KernelParams, rng *RNG) Proposal
}

// Valid kernel names, in display order.
var validKernels = []string{"rwm", "mh", "slice", "elliptical", "hitnrun", "hmc"}

// ValidKernels returns the names accepted by NewKernel.
func ValidKernels() []string {
	out := make([]string, len(validKernels))
	copy(out, validKernels)
	return out
}

// NewKernel creates a Kernel by name.
// Unknown names are a selection-time error; no stepping has happened yet.
func NewKernel(name string) (Kernel, error) {
	switch name {
	case "rwm":
		return &RandomWalkMetropolis{}, nil
	case "mh":
		return &IndependentMH{Sigma: independentMHSigma}, nil
	case "slice":
		return &SliceSampler{}, nil
	case "elliptical":
		return &EllipticalSlice{}, nil
	case "hitnrun":
		return &HitAndRun{}, nil
	case "hmc":
		return &HamiltonianMC{}, nil
	default:
		return nil, fmt.Errorf("unknown kernel %q (valid: %v)", name, validKernels)
	}
}
