package sim

import "fmt"

// Parameter ranges accepted by Validate. The reference UI exposes the
// same ranges on its sliders; the engine re-checks them so it stays safe
// as a standalone library.
const (
	MinStepSize = 0.1
	MaxStepSize = 3.0

	MinLeapfrogSteps = 1
	MaxLeapfrogSteps = 50

	MinLeapfrogEpsilon = 0.01
	MaxLeapfrogEpsilon = 0.5
)

// KernelParams groups the shared tunable knobs. A given kernel reads
// only the subset relevant to it (RWM and the slice family read
// StepSize; HMC reads LeapfrogSteps and LeapfrogEpsilon).
type KernelParams struct {
	StepSize        float64 // proposal/bracket width
	LeapfrogSteps   int     // integrator steps per HMC proposal
	LeapfrogEpsilon float64 // integrator step size
}

// DefaultKernelParams returns the engine defaults.
func DefaultKernelParams() KernelParams {
	return KernelParams{
		StepSize:        1.0,
		LeapfrogSteps:   20,
		LeapfrogEpsilon: 0.1,
	}
}

// Validate rejects out-of-range parameters.
func (p KernelParams) Validate() error {
	if p.StepSize < MinStepSize || p.StepSize > MaxStepSize {
		return fmt.Errorf("step size %v out of range [%v, %v]", p.StepSize, MinStepSize, MaxStepSize)
	}
	if p.LeapfrogSteps < MinLeapfrogSteps || p.LeapfrogSteps > MaxLeapfrogSteps {
		return fmt.Errorf("leapfrog steps %v out of range [%v, %v]", p.LeapfrogSteps, MinLeapfrogSteps, MaxLeapfrogSteps)
	}
	if p.LeapfrogEpsilon < MinLeapfrogEpsilon || p.LeapfrogEpsilon > MaxLeapfrogEpsilon {
		return fmt.Errorf("leapfrog epsilon %v out of range [%v, %v]", p.LeapfrogEpsilon, MinLeapfrogEpsilon, MaxLeapfrogEpsilon)
	}
	return nil
}

// ParamsUpdate is a partial KernelParams for Engine.SetParams. Nil
// fields are left unchanged.
type ParamsUpdate struct {
	StepSize        *float64
	LeapfrogSteps   *int
	LeapfrogEpsilon *float64
}

// EngineConfig groups everything needed to construct an Engine.
type EngineConfig struct {
	Target          string       // catalog target name (see ValidTargets)
	Kernel          string       // kernel name (see ValidKernels)
	Params          KernelParams // zero value means DefaultKernelParams
	Seed            int64        // RNG seed; same seed + config = same chain
	HistoryCapacity int          // 0 means DefaultHistoryCapacity
}
