package selection

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for a selection run, matching the reference workflow: a fifth of
// the dataset selected hierarchically, with the random baseline simulated at
// four reference fractions of the population.
const (
	DefaultN                   = 0.2
	DefaultBaselineRepetitions = 100
)

// DefaultBaselineSizes are the baseline reference fractions of the dataset.
func DefaultBaselineSizes() []float64 {
	return []float64{0.01, 0.1, 0.2, 0.5}
}

// RunConfig holds a complete selection run configuration, loadable from a
// YAML file. Zero-valued fields mean "not set" and are filled from defaults
// by ApplyDefaults; the CLI layers flag overrides on top.
type RunConfig struct {
	Strategies []string       `yaml:"strategies"`
	N          float64        `yaml:"n"`
	Seed       int64          `yaml:"seed"`
	Baseline   BaselineConfig `yaml:"baseline"`
}

// BaselineConfig holds the random-baseline simulation parameters.
type BaselineConfig struct {
	Sizes       []float64 `yaml:"sizes"`
	Repetitions int       `yaml:"repetitions"`
}

// DefaultRunConfig returns the fully-defaulted configuration.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Strategies: []string{string(StrategyHierarchical)},
		N:          DefaultN,
		Baseline: BaselineConfig{
			Sizes:       DefaultBaselineSizes(),
			Repetitions: DefaultBaselineRepetitions,
		},
	}
}

// LoadRunConfig reads and parses a YAML run configuration file.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields from DefaultRunConfig.
func (c *RunConfig) ApplyDefaults() {
	def := DefaultRunConfig()
	if len(c.Strategies) == 0 {
		c.Strategies = def.Strategies
	}
	if c.N == 0 {
		c.N = def.N
	}
	if len(c.Baseline.Sizes) == 0 {
		c.Baseline.Sizes = def.Baseline.Sizes
	}
	if c.Baseline.Repetitions == 0 {
		c.Baseline.Repetitions = def.Baseline.Repetitions
	}
}

// Validate checks strategy names and parameter ranges. Unlike Select, which
// falls back to random for unknown strategies, configuration validation is
// strict.
func (c *RunConfig) Validate() error {
	for _, s := range c.Strategies {
		if !ValidStrategies[Strategy(s)] {
			return fmt.Errorf("unknown strategy %q", s)
		}
	}
	if c.N <= 0 {
		return fmt.Errorf("n must be positive, got %v", c.N)
	}
	if c.Baseline.Repetitions < 1 {
		return fmt.Errorf("baseline repetitions must be >= 1, got %d", c.Baseline.Repetitions)
	}
	for _, size := range c.Baseline.Sizes {
		if size <= 0 {
			return fmt.Errorf("baseline sizes must be positive, got %v", size)
		}
	}
	return nil
}
