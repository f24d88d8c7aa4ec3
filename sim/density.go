package sim

import (
	"fmt"
	"math"
)

// divisionEps guards divisions in gradient formulas against degenerate
// inputs (e.g. the donut density evaluated at the exact origin).
const divisionEps = 1e-9

// Target is a 2D target distribution: an unnormalized log-density and,
// where available, its exact analytic gradient. Targets are immutable
// and stateless; both functions must be pure.
//
// Gradient may be nil. Kernels that need it (HMC) must be paired with a
// target that supplies it — a mismatch between Gradient and LogDensity
// silently corrupts the stationary distribution, so gradients are
// checked against finite differences in tests.
type Target struct {
	Name       string
	LogDensity func(x, y float64) float64
	Gradient   func(x, y float64) (float64, float64)
}

// Valid target names, in display order.
var validTargets = []string{"gaussian", "bimodal", "donut", "banana"}

// ValidTargets returns the names accepted by NewTarget.
func ValidTargets() []string {
	out := make([]string, len(validTargets))
	copy(out, validTargets)
	return out
}

// NewTarget creates a catalog Target by name.
// Unknown names are a selection-time error; no stepping has happened yet.
func NewTarget(name string) (*Target, error) {
	switch name {
	case "gaussian":
		return &Target{
			Name: "gaussian",
			LogDensity: func(x, y float64) float64 {
				return -0.5 * (x*x + y*y)
			},
			Gradient: func(x, y float64) (float64, float64) {
				return -x, -y
			},
		}, nil
	case "bimodal":
		return &Target{
			Name:       "bimodal",
			LogDensity: bimodalLogDensity,
			Gradient:   bimodalGradient,
		}, nil
	case "donut":
		return &Target{
			Name: "donut",
			LogDensity: func(x, y float64) float64 {
				r := math.Sqrt(x*x + y*y)
				d := r - donutRadius
				return -2.0 * d * d
			},
			Gradient: func(x, y float64) (float64, float64) {
				r := math.Sqrt(x*x + y*y)
				// d logp / d r = -4 (r - radius), pushed through r(x,y)
				s := -4.0 * (r - donutRadius) / (r + divisionEps)
				return s * x, s * y
			},
		}, nil
	case "banana":
		return &Target{
			Name: "banana",
			LogDensity: func(x, y float64) float64 {
				a := 1.0 - x
				b := y - x*x
				return -(a*a + 5.0*b*b) / 10.0
			},
			Gradient: func(x, y float64) (float64, float64) {
				b := y - x*x
				dx := (2.0*(1.0-x) + 20.0*x*b) / 10.0
				dy := -b
				return dx, dy
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown target %q (valid: %v)", name, validTargets)
	}
}

const (
	donutRadius  = 2.5
	bimodalShift = 1.5
)

// bimodalLogDensity is the log of an (unnormalized) equal mixture of two
// isotropic unit Gaussians centered at (-1.5,-1.5) and (1.5,1.5).
func bimodalLogDensity(x, y float64) float64 {
	f1 := math.Exp(-0.5 * ((x+bimodalShift)*(x+bimodalShift) + (y+bimodalShift)*(y+bimodalShift)))
	f2 := math.Exp(-0.5 * ((x-bimodalShift)*(x-bimodalShift) + (y-bimodalShift)*(y-bimodalShift)))
	return math.Log(f1 + f2 + divisionEps)
}

// bimodalGradient chains through the mixture: each component contributes
// its Gaussian gradient weighted by its share of the total density.
func bimodalGradient(x, y float64) (float64, float64) {
	f1 := math.Exp(-0.5 * ((x+bimodalShift)*(x+bimodalShift) + (y+bimodalShift)*(y+bimodalShift)))
	f2 := math.Exp(-0.5 * ((x-bimodalShift)*(x-bimodalShift) + (y-bimodalShift)*(y-bimodalShift)))
	total := f1 + f2 + divisionEps
	dx := (f1*(-(x + bimodalShift)) + f2*(-(x - bimodalShift))) / total
	dy := (f1*(-(y + bimodalShift)) + f2*(-(y - bimodalShift))) / total
	return dx, dy
}
