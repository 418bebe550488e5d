package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/surrsel/surrsel/selection"
)

var (
	// CLI flags for the select subcommand
	configPath    string    // Optional YAML run configuration
	nSurrogates   float64   // Surrogate count (>= 1) or dataset fraction (< 1)
	strategies    []string  // Strategies to run
	baselineSizes []float64 // Baseline subset sizes (counts or fractions)
	baselineReps  int       // Random repetitions per baseline size
	outputPath    string    // JSON output path (empty = stdout)
)

// selectCmd runs every requested strategy and contextualizes the scores with
// the random baseline distribution.
var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select surrogates with one or more strategies and score them against the random baseline",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := selection.RunConfig{}
		if configPath != "" {
			loaded, err := selection.LoadRunConfig(configPath)
			if err != nil {
				logrus.Fatalf("Invalid run config: %v", err)
			}
			cfg = *loaded
		}

		// Flags override file values only when set explicitly.
		if cmd.Flags().Changed("n") || cfg.N == 0 {
			cfg.N = nSurrogates
		}
		if cmd.Flags().Changed("strategies") || len(cfg.Strategies) == 0 {
			cfg.Strategies = strategies
		}
		if cmd.Flags().Changed("baseline-sizes") {
			cfg.Baseline.Sizes = baselineSizes
		}
		if cmd.Flags().Changed("baseline-reps") {
			cfg.Baseline.Repetitions = baselineReps
		}
		if !cmd.Flags().Changed("seed") && cfg.Seed != 0 {
			seed = cfg.Seed
		}

		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid run config: %v", err)
		}

		ds, eng := loadEngine()
		startTime := time.Now()

		summary := &selection.RunSummary{}
		for _, strat := range cfg.Strategies {
			indices, score, err := eng.Select(cfg.N, selection.Strategy(strat))
			if err != nil {
				logrus.Fatalf("Selection with strategy %q failed: %v", strat, err)
			}
			logrus.Infof("Strategy %s selected %d surrogates, LARD=%.6f", strat, len(indices), score)
			summary.Results = append(summary.Results, selection.StrategyResult{
				Strategy: strat,
				Indices:  indices,
				IDs:      ds.Labels(indices),
				Score:    score,
			})
		}

		// Baseline at the reference sizes plus the requested size.
		sizes := appendSize(cfg.Baseline.Sizes, cfg.N)
		samples, err := eng.Simulate(sizes, cfg.Baseline.Repetitions)
		if err != nil {
			logrus.Fatalf("Baseline simulation failed: %v", err)
		}
		summary.Baseline = selection.Summarize(samples)

		writeSummary(summary, outputPath)
		logrus.Infof("Selection run complete in %s", time.Since(startTime))
	},
}

// appendSize adds n to sizes unless already present.
func appendSize(sizes []float64, n float64) []float64 {
	for _, s := range sizes {
		if s == n {
			return sizes
		}
	}
	return append(sizes, n)
}

func init() {
	def := selection.DefaultRunConfig()
	selectCmd.Flags().StringVar(&configPath, "config", "", "YAML run configuration file")
	selectCmd.Flags().Float64Var(&nSurrogates, "n", def.N, "Number of surrogates (>= 1) or fraction of the dataset (< 1)")
	selectCmd.Flags().StringSliceVar(&strategies, "strategies", def.Strategies, "Comma-separated strategies (random, lowest, highest, balanced, hierarchical)")
	selectCmd.Flags().Float64SliceVar(&baselineSizes, "baseline-sizes", def.Baseline.Sizes, "Comma-separated baseline subset sizes (counts or fractions)")
	selectCmd.Flags().IntVar(&baselineReps, "baseline-reps", def.Baseline.Repetitions, "Random repetitions per baseline size")
	selectCmd.Flags().StringVar(&outputPath, "output", "", "JSON output path (default stdout)")
}
