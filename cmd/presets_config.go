package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/mcmc-sim/mcmc-sim/sim"
)

// PresetsConfig is the YAML schema for tuned kernel parameters.
type PresetsConfig struct {
	Presets []Preset `yaml:"presets"`
	Version string   `yaml:"version"`
}

// Preset pins tuned KernelParams for one (target, kernel) pair.
type Preset struct {
	Target          string  `yaml:"target"`
	Kernel          string  `yaml:"kernel"`
	StepSize        float64 `yaml:"step_size"`
	LeapfrogSteps   int     `yaml:"leapfrog_steps"`
	LeapfrogEpsilon float64 `yaml:"leapfrog_epsilon"`
}

// LookupPreset reads the presets file and returns the params for the
// given (target, kernel) pair. Zero-valued preset fields fall back to
// the engine defaults so presets can pin only the knobs they care about.
func LookupPreset(path, target, kernel string) (sim.KernelParams, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Warnf("Cannot read presets file %s: %v", path, err)
		return sim.KernelParams{}, false
	}

	var cfg PresetsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Warnf("Cannot parse presets file %s: %v", path, err)
		return sim.KernelParams{}, false
	}

	for _, p := range cfg.Presets {
		if p.Target == target && p.Kernel == kernel {
			params := sim.DefaultKernelParams()
			if p.StepSize != 0 {
				params.StepSize = p.StepSize
			}
			if p.LeapfrogSteps != 0 {
				params.LeapfrogSteps = p.LeapfrogSteps
			}
			if p.LeapfrogEpsilon != 0 {
				params.LeapfrogEpsilon = p.LeapfrogEpsilon
			}
			return params, true
		}
	}
	return sim.KernelParams{}, false
}
