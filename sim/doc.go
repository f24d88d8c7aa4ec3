// Package sim provides the core MCMC sampling engine.
//
// # Reading Guide
//
// Start with these three files to understand the sampling kernel:
//   - density.go: the target distribution catalog (log-densities and analytic gradients)
//   - kernel.go: the Kernel interface and the Proposal type kernels return
//   - engine.go: the Engine that drives a kernel step by step and folds results into the chain
//
// # Architecture
//
// The package is flat. Each sampling algorithm lives in its own file
// (kernel_rwm.go, kernel_mh.go, kernel_slice.go, kernel_elliptical.go,
// kernel_hitandrun.go, kernel_hmc.go) and is selected by name through
// NewKernel. Targets are selected by name through NewTarget. The Engine
// owns exactly one ChainState and one seeded RNG; callers drive it with
// Advance(steps) at whatever cadence they choose — there is no internal
// timer or event loop.
//
// # Key Interfaces
//
// The extension point is a single-method interface:
//   - Kernel: produce the next Proposal from the current position, the
//     target, the tunable parameters, and the random source.
//
// Determinism: every random draw goes through the injected *RNG. Two
// engines built with the same seed and configuration produce bit-for-bit
// identical chains.
package sim
