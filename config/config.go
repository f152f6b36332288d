// Package config loads and saves the library's three run-configuration
// types — prop.Config, targeted.Config, and parallel.Config — as a single
// YAML document, so a project can commit its property-testing limits
// alongside the rest of its configuration instead of scattering them
// across flags.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/justanotherdot/hedgehog-sub000/parallel"
	"github.com/justanotherdot/hedgehog-sub000/prop"
	"github.com/justanotherdot/hedgehog-sub000/targeted"
)

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// File is the on-disk shape: every section is optional, so a project can
// override just the limits it cares about and inherit defaults elsewhere.
type File struct {
	Prop     *PropSection     `yaml:"prop,omitempty"`
	Targeted *TargetedSection `yaml:"targeted,omitempty"`
	Parallel *ParallelSection `yaml:"parallel,omitempty"`
}

// PropSection mirrors prop.Config.
type PropSection struct {
	TestLimit    int `yaml:"test_limit"`
	ShrinkLimit  int `yaml:"shrink_limit"`
	SizeLimit    int `yaml:"size_limit"`
	DiscardLimit int `yaml:"discard_limit"`
}

// TargetedSection mirrors targeted.Config.
type TargetedSection struct {
	Objective          string  `yaml:"objective"`
	SearchSteps        int     `yaml:"search_steps"`
	InitialTemperature float64 `yaml:"initial_temperature"`
	CoolingRate        float64 `yaml:"cooling_rate"`
	MinTemperature     float64 `yaml:"min_temperature"`
	InitialSamples     int     `yaml:"initial_samples"`
	MaxSearchTimeSecs  float64 `yaml:"max_search_time_secs"`
	SizeLimit          int     `yaml:"size_limit"`
}

// ParallelSection mirrors parallel.Config.
type ParallelSection struct {
	WorkerCount          int    `yaml:"worker_count"`
	WorkDistribution     string `yaml:"work_distribution"`
	TimeoutSecs          float64 `yaml:"timeout_secs"`
	DetectNonDeterminism bool   `yaml:"detect_non_determinism"`
}

// Load reads and parses a YAML config file from path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, err
	}
	return f, nil
}

// Save serializes f as YAML and writes it to path.
func Save(path string, f File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// PropConfig converts the section to a prop.Config, falling back to
// prop.Default() defaults for a nil section.
func (f File) PropConfig() prop.Config {
	cfg := prop.Default()
	if f.Prop == nil {
		return cfg
	}
	if f.Prop.TestLimit > 0 {
		cfg = cfg.WithTests(f.Prop.TestLimit)
	}
	if f.Prop.ShrinkLimit > 0 {
		cfg = cfg.WithShrinks(f.Prop.ShrinkLimit)
	}
	if f.Prop.SizeLimit > 0 {
		cfg = cfg.WithSizeLimit(f.Prop.SizeLimit)
	}
	if f.Prop.DiscardLimit > 0 {
		cfg = cfg.WithDiscardLimit(f.Prop.DiscardLimit)
	}
	return cfg
}

// TargetedConfig converts the section to a targeted.Config, falling back
// to targeted.DefaultConfig() for a nil section.
func (f File) TargetedConfig() targeted.Config {
	cfg := targeted.DefaultConfig()
	if f.Targeted == nil {
		return cfg
	}
	t := f.Targeted
	if t.Objective == "minimize" {
		cfg.Objective = targeted.Minimize
	} else if t.Objective == "maximize" {
		cfg.Objective = targeted.Maximize
	}
	if t.SearchSteps > 0 {
		cfg.SearchSteps = t.SearchSteps
	}
	if t.InitialTemperature > 0 {
		cfg.InitialTemperature = t.InitialTemperature
	}
	if t.CoolingRate > 0 {
		cfg.CoolingRate = t.CoolingRate
	}
	if t.MinTemperature > 0 {
		cfg.MinTemperature = t.MinTemperature
	}
	if t.InitialSamples > 0 {
		cfg.InitialSamples = t.InitialSamples
	}
	if t.MaxSearchTimeSecs > 0 {
		cfg.MaxSearchTime = secondsToDuration(t.MaxSearchTimeSecs)
	}
	if t.SizeLimit > 0 {
		cfg.SizeLimit = t.SizeLimit
	}
	return cfg
}

// ParallelConfig converts the section to a parallel.Config, falling back
// to parallel.DefaultConfig() for a nil section.
func (f File) ParallelConfig() parallel.Config {
	cfg := parallel.DefaultConfig()
	if f.Parallel == nil {
		return cfg
	}
	p := f.Parallel
	if p.WorkerCount > 0 {
		cfg.WorkerCount = p.WorkerCount
	}
	switch p.WorkDistribution {
	case "chunk_based":
		cfg.WorkDistribution = parallel.ChunkBased
	case "work_stealing":
		cfg.WorkDistribution = parallel.WorkStealing
	case "round_robin":
		cfg.WorkDistribution = parallel.RoundRobin
	}
	if p.TimeoutSecs > 0 {
		cfg.Timeout = secondsToDuration(p.TimeoutSecs)
	}
	cfg.DetectNonDeterminism = p.DetectNonDeterminism
	return cfg
}
