package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about a sampling run for final
// reporting. Useful for judging mixing behavior (acceptance rate) and
// for sanity-checking the chain against the target's known moments.
type Metrics struct {
	TotalSteps    int // kernel invocations across all Advance calls
	AcceptedSteps int // steps whose proposal was accepted
	Batches       int // number of Advance calls
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Record folds one Advance batch into the counters.
func (m *Metrics) Record(steps, accepted int) {
	m.TotalSteps += steps
	m.AcceptedSteps += accepted
	m.Batches++
}

// AcceptanceRate returns accepted/total, or 0 before any step.
func (m *Metrics) AcceptanceRate() float64 {
	if m.TotalSteps == 0 {
		return 0
	}
	return float64(m.AcceptedSteps) / float64(m.TotalSteps)
}

// ChainMoments are per-coordinate summary statistics of a history.
type ChainMoments struct {
	MeanX, MeanY float64
	StdX, StdY   float64
	Corr         float64 // Pearson correlation between X and Y
}

// Moments computes summary statistics over a sample history.
// Returns the zero value for histories shorter than two samples.
func Moments(history []Sample) ChainMoments {
	if len(history) < 2 {
		return ChainMoments{}
	}
	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	for i, s := range history {
		xs[i] = s.X
		ys[i] = s.Y
	}
	return ChainMoments{
		MeanX: stat.Mean(xs, nil),
		MeanY: stat.Mean(ys, nil),
		StdX:  stat.StdDev(xs, nil),
		StdY:  stat.StdDev(ys, nil),
		Corr:  stat.Correlation(xs, ys, nil),
	}
}

// Print displays aggregated metrics at the end of a run.
func (m *Metrics) Print(runID, targetName, kernelName string, history []Sample) {
	fmt.Println("=== Sampling Metrics ===")
	fmt.Printf("Run                  : %s\n", runID)
	fmt.Printf("Target / Kernel      : %s / %s\n", targetName, kernelName)
	fmt.Printf("Steps                : %d (%d batches)\n", m.TotalSteps, m.Batches)
	fmt.Printf("Accepted             : %d (%.2f%%)\n", m.AcceptedSteps, 100*m.AcceptanceRate())
	if len(history) >= 2 {
		mom := Moments(history)
		fmt.Printf("Mean (x, y)          : (%.4f, %.4f)\n", mom.MeanX, mom.MeanY)
		fmt.Printf("Stddev (x, y)        : (%.4f, %.4f)\n", mom.StdX, mom.StdY)
		fmt.Printf("Corr(x, y)           : %.4f\n", mom.Corr)
	}
}
