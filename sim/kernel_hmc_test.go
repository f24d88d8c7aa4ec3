package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hmcAcceptanceRate(t *testing.T, target *Target, params KernelParams, steps int) float64 {
	t.Helper()
	kernel := &HamiltonianMC{}
	rng := NewRNG(42)
	current := Point{X: 0.1, Y: 0.1}
	accepted := 0
	for i := 0; i < steps; i++ {
		got := kernel.Step(current, target, params, rng)
		if got.Accepted {
			accepted++
		}
		current = got.Point
	}
	return float64(accepted) / float64(steps)
}

// With a small integrator step the leapfrog nearly conserves energy, so
// acceptance on the gaussian should be close to one; shrinking epsilon
// further must not make it worse.
func TestHMC_EnergyConservationAcceptance(t *testing.T) {
	target, err := NewTarget("gaussian")
	require.NoError(t, err)

	coarse := KernelParams{StepSize: 1.0, LeapfrogSteps: 20, LeapfrogEpsilon: 0.2}
	fine := KernelParams{StepSize: 1.0, LeapfrogSteps: 20, LeapfrogEpsilon: 0.02}

	coarseRate := hmcAcceptanceRate(t, target, coarse, 300)
	fineRate := hmcAcceptanceRate(t, target, fine, 300)

	assert.Greater(t, coarseRate, 0.9)
	assert.GreaterOrEqual(t, fineRate, coarseRate-0.02)
	assert.Greater(t, fineRate, 0.98)
}

// A gradient that disagrees with the log-density wrecks the simulated
// dynamics and acceptance collapses. Guards against silently pairing a
// density with the wrong gradient.
func TestHMC_WrongGradientDegradesAcceptance(t *testing.T) {
	good, err := NewTarget("gaussian")
	require.NoError(t, err)
	bad := &Target{
		Name:       "gaussian-bad-grad",
		LogDensity: good.LogDensity,
		// sign-flipped: pushes the integrator away from the mode
		Gradient: func(x, y float64) (float64, float64) { return x, y },
	}

	params := KernelParams{StepSize: 1.0, LeapfrogSteps: 20, LeapfrogEpsilon: 0.2}
	goodRate := hmcAcceptanceRate(t, good, params, 300)
	badRate := hmcAcceptanceRate(t, bad, params, 300)

	assert.Greater(t, goodRate, 0.9)
	assert.Less(t, badRate, 0.5)
	assert.Less(t, badRate, goodRate)
}

// Every integrator position is recorded, start included, and a
// rejected step still carries the attempted trajectory.
func TestHMC_TrajectoryRecorded(t *testing.T) {
	target, err := NewTarget("banana")
	require.NoError(t, err)
	kernel := &HamiltonianMC{}
	params := KernelParams{StepSize: 1.0, LeapfrogSteps: 15, LeapfrogEpsilon: 0.1}
	rng := NewRNG(9)
	current := Point{X: 0.1, Y: 0.1}

	for i := 0; i < 200; i++ {
		got := kernel.Step(current, target, params, rng)
		require.Len(t, got.Path, params.LeapfrogSteps+1, "step %d", i)
		assert.Equal(t, current, got.Path[0], "step %d", i)
		if got.Accepted {
			assert.Equal(t, got.Point, got.Path[len(got.Path)-1], "step %d", i)
		} else {
			assert.Equal(t, current, got.Point, "step %d", i)
		}
		current = got.Point
	}
}

// The momentum draw comes first (Norm, Norm), so a shadow RNG can
// replay the first leapfrog position bit-for-bit: half-step momentum at
// the start position, then one full position update.
func TestHMC_FirstLeapfrogPositionReplay(t *testing.T) {
	target, err := NewTarget("gaussian")
	require.NoError(t, err)
	kernel := &HamiltonianMC{}
	params := KernelParams{StepSize: 1.0, LeapfrogSteps: 5, LeapfrogEpsilon: 0.1}
	current := Point{X: 0.7, Y: -0.2}

	shadow := NewRNG(21)
	pX, pY := shadow.Norm(), shadow.Norm()
	gX, gY := target.Gradient(current.X, current.Y)
	pX += 0.5 * params.LeapfrogEpsilon * gX
	pY += 0.5 * params.LeapfrogEpsilon * gY
	want := Point{
		X: current.X + params.LeapfrogEpsilon*pX,
		Y: current.Y + params.LeapfrogEpsilon*pY,
	}

	got := kernel.Step(current, target, params, NewRNG(21))
	require.Greater(t, len(got.Path), 1)
	assert.Equal(t, want, got.Path[1])
}
