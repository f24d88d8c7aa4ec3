package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/mcmc-sim/mcmc-sim/sim"
)

var (
	// CLI flags for the sampling run
	targetName      string  // target distribution name
	kernelName      string  // sampling kernel name
	totalSteps      int     // total kernel steps to run
	stepsPerFrame   int     // steps per Advance call (batch size)
	seed            int64   // RNG seed for reproducible chains
	logLevel        string  // log verbosity level
	historyCapacity int     // bounded sample history size
	stepSize        float64 // proposal/bracket width
	leapfrogSteps   int     // HMC integrator steps
	leapfrogEpsilon float64 // HMC integrator step size
	presetsPath     string  // optional tuned-parameter presets YAML
	csvPath         string  // optional CSV dump of emitted samples
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mcmc-sim",
	Short: "Interactive-grade MCMC sampling engine for 2D target densities",
}

// runCmd executes a sampling run using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an MCMC chain and print sampling metrics",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		params := sim.KernelParams{
			StepSize:        stepSize,
			LeapfrogSteps:   leapfrogSteps,
			LeapfrogEpsilon: leapfrogEpsilon,
		}
		if presetsPath != "" {
			if preset, ok := LookupPreset(presetsPath, targetName, kernelName); ok {
				params = mergePresetParams(params, preset,
					cmd.Flags().Changed("step-size"),
					cmd.Flags().Changed("leapfrog-steps"),
					cmd.Flags().Changed("leapfrog-epsilon"))
				logrus.Infof("Using preset params for target=%s kernel=%s: %+v", targetName, kernelName, params)
			}
		}

		engine, err := sim.NewEngine(sim.EngineConfig{
			Target:          targetName,
			Kernel:          kernelName,
			Params:          params,
			Seed:            seed,
			HistoryCapacity: historyCapacity,
		})
		if err != nil {
			logrus.Fatalf("Engine setup failed: %v", err)
		}

		logrus.Infof("Starting run %s: target=%s kernel=%s steps=%d seed=%d",
			engine.RunID(), targetName, kernelName, totalSteps, seed)
		startTime := time.Now()

		var emitted []sim.Sample
		remaining := totalSteps
		for remaining > 0 {
			batch := stepsPerFrame
			if batch > remaining {
				batch = remaining
			}
			result, err := engine.Advance(batch)
			if err != nil {
				logrus.Fatalf("Advance failed: %v", err)
			}
			if csvPath != "" {
				emitted = append(emitted, result.Samples...)
			}
			remaining -= batch
		}

		if csvPath != "" {
			if err := writeSamplesCSV(csvPath, emitted); err != nil {
				logrus.Fatalf("CSV dump failed: %v", err)
			}
		}

		engine.Metrics().Print(engine.RunID(), engine.Target(), engine.Kernel(), engine.History())
		logrus.Infof("Run complete in %v.", time.Since(startTime))
	},
}

// mergePresetParams overlays flag values onto a matched preset.
// Precedence is per field: a flag the user passed explicitly wins over
// the preset; untouched flags take the preset's value.
func mergePresetParams(flags, preset sim.KernelParams, stepSizeSet, leapfrogStepsSet, leapfrogEpsilonSet bool) sim.KernelParams {
	merged := preset
	if stepSizeSet {
		merged.StepSize = flags.StepSize
	}
	if leapfrogStepsSet {
		merged.LeapfrogSteps = flags.LeapfrogSteps
	}
	if leapfrogEpsilonSet {
		merged.LeapfrogEpsilon = flags.LeapfrogEpsilon
	}
	return merged
}

// writeSamplesCSV dumps emitted samples as x,y,accepted rows.
func writeSamplesCSV(path string, samples []sim.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y", "accepted"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.X, 'g', -1, 64),
			strconv.FormatFloat(s.Y, 'g', -1, 64),
			strconv.FormatBool(s.Accepted),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// listCmd prints the valid target and kernel names.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available targets and kernels",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Targets:")
		for _, name := range sim.ValidTargets() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("Kernels:")
		for _, name := range sim.ValidKernels() {
			fmt.Printf("  %s\n", name)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&targetName, "target", "gaussian", "Target distribution (gaussian, bimodal, donut, banana)")
	runCmd.Flags().StringVar(&kernelName, "kernel", "rwm", "Sampling kernel (rwm, mh, slice, elliptical, hitnrun, hmc)")
	runCmd.Flags().IntVar(&totalSteps, "steps", 10000, "Total number of kernel steps")
	runCmd.Flags().IntVar(&stepsPerFrame, "steps-per-frame", 50, "Steps folded into the chain per Advance call")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the chain's random source")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&historyCapacity, "history", sim.DefaultHistoryCapacity, "Bounded sample history capacity")

	// kernel tunables
	runCmd.Flags().Float64Var(&stepSize, "step-size", 1.0, "Proposal/bracket width for rwm and the slice family")
	runCmd.Flags().IntVar(&leapfrogSteps, "leapfrog-steps", 20, "HMC leapfrog integrator steps")
	runCmd.Flags().Float64Var(&leapfrogEpsilon, "leapfrog-epsilon", 0.1, "HMC leapfrog integrator step size")

	runCmd.Flags().StringVar(&presetsPath, "presets", "", "Path to tuned-parameter presets YAML")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Write emitted samples to this CSV file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}
