package sim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BatchResult summarizes one Advance call: how many of the requested
// steps were accepted and the samples emitted, in step order.
type BatchResult struct {
	AcceptedCount int
	Samples       []Sample
}

// Engine drives one kernel over one chain. It performs no randomness
// itself; all draws flow through the RNG it hands to the kernel. The
// engine has no timer or event loop — callers invoke Advance at
// whatever cadence they choose (the reference application calls it once
// per rendering frame).
//
// Thread-safety: NOT thread-safe. One Engine owns one ChainState; run
// concurrent chains as independent Engines.
type Engine struct {
	target  *Target
	kernel  Kernel
	params  KernelParams
	chain   *ChainState
	rng     *RNG
	metrics *Metrics

	kernelName string
	runID      string
}

// NewEngine constructs an Engine from a config. Unknown target or
// kernel names and out-of-range params fail here, before any stepping.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	target, err := NewTarget(cfg.Target)
	if err != nil {
		return nil, err
	}
	kernel, err := NewKernel(cfg.Kernel)
	if err != nil {
		return nil, err
	}
	params := cfg.Params
	if params == (KernelParams{}) {
		params = DefaultKernelParams()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		target:     target,
		kernel:     kernel,
		params:     params,
		chain:      NewChainState(cfg.HistoryCapacity),
		rng:        NewRNG(cfg.Seed),
		metrics:    NewMetrics(),
		kernelName: cfg.Kernel,
	}
	e.Reset()
	return e, nil
}

// SelectTarget switches the target distribution and resets the chain.
func (e *Engine) SelectTarget(name string) error {
	target, err := NewTarget(name)
	if err != nil {
		return err
	}
	e.target = target
	e.Reset()
	return nil
}

// SelectKernel switches the sampling algorithm and resets the chain.
func (e *Engine) SelectKernel(name string) error {
	kernel, err := NewKernel(name)
	if err != nil {
		return err
	}
	e.kernel = kernel
	e.kernelName = name
	e.Reset()
	return nil
}

// SetParams applies a partial parameter update. The merged result is
// validated as a whole; on any out-of-range value the update is
// rejected and the previous params stay in effect. Does not reset the
// chain.
func (e *Engine) SetParams(u ParamsUpdate) error {
	merged := e.params
	if u.StepSize != nil {
		merged.StepSize = *u.StepSize
	}
	if u.LeapfrogSteps != nil {
		merged.LeapfrogSteps = *u.LeapfrogSteps
	}
	if u.LeapfrogEpsilon != nil {
		merged.LeapfrogEpsilon = *u.LeapfrogEpsilon
	}
	if err := merged.Validate(); err != nil {
		return err
	}
	e.params = merged
	return nil
}

// Reset re-seeds the chain at the fixed origin, clears history and
// trajectory, zeroes the metrics, and mints a fresh run ID.
func (e *Engine) Reset() {
	e.chain.Reset()
	e.metrics = NewMetrics()
	e.runID = uuid.NewString()
	logrus.WithFields(logrus.Fields{
		"run":    e.runID,
		"target": e.target.Name,
		"kernel": e.kernelName,
	}).Debug("chain reset")
}

// Advance runs the kernel for steps sequential iterations, folding each
// emitted sample into the chain. steps < 1 is rejected as a contract
// violation rather than treated as a no-op.
func (e *Engine) Advance(steps int) (BatchResult, error) {
	if steps < 1 {
		return BatchResult{}, fmt.Errorf("advance requires steps >= 1, got %d", steps)
	}
	result := BatchResult{Samples: make([]Sample, 0, steps)}
	for i := 0; i < steps; i++ {
		prop := e.kernel.Step(e.chain.Position(), e.target, e.params, e.rng)
		sample := Sample{Point: prop.Point, Accepted: prop.Accepted}
		e.chain.Append(sample)
		e.chain.SetTrajectory(prop.Path)
		if prop.Accepted {
			result.AcceptedCount++
		}
		result.Samples = append(result.Samples, sample)
	}
	e.metrics.Record(steps, result.AcceptedCount)
	logrus.WithFields(logrus.Fields{
		"run":      e.runID,
		"steps":    steps,
		"accepted": result.AcceptedCount,
	}).Trace("advance batch")
	return result, nil
}

// Position returns the current chain position.
func (e *Engine) Position() Point {
	return e.chain.Position()
}

// History returns the retained samples oldest-first.
func (e *Engine) History() []Sample {
	return e.chain.History()
}

// LastTrajectory returns the intermediate path of the most recent step,
// or nil for kernels that move in one jump.
func (e *Engine) LastTrajectory() []Point {
	return e.chain.LastTrajectory()
}

// Params returns the currently effective kernel parameters.
func (e *Engine) Params() KernelParams {
	return e.params
}

// Target returns the active target's name.
func (e *Engine) Target() string {
	return e.target.Name
}

// Kernel returns the active kernel's name.
func (e *Engine) Kernel() string {
	return e.kernelName
}

// RunID identifies the current chain incarnation; Reset mints a new one.
func (e *Engine) RunID() string {
	return e.runID
}

// Metrics returns the counters for the current run.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}
