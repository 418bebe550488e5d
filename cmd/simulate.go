package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/surrsel/surrsel/selection"
)

var (
	// CLI flags for the simulate subcommand
	simSizes      []float64 // Subset sizes to simulate (counts or fractions)
	simReps       int       // Random repetitions per size
	simOutputPath string    // JSON output path (empty = stdout)
	simRawSamples bool      // Include raw samples in the output
)

// simulateCmd runs the random baseline on its own, without any strategy.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate the random-selection LARD baseline at several subset sizes",
	Run: func(cmd *cobra.Command, args []string) {
		_, eng := loadEngine()

		startTime := time.Now()
		samples, err := eng.Simulate(simSizes, simReps)
		if err != nil {
			logrus.Fatalf("Baseline simulation failed: %v", err)
		}
		logrus.Infof("Simulated %d random selections across %d sizes in %s",
			len(samples), len(simSizes), time.Since(startTime))

		summary := &selection.RunSummary{Baseline: selection.Summarize(samples)}
		if simRawSamples {
			summary.Samples = samples
		}
		writeSummary(summary, simOutputPath)
	},
}

func init() {
	def := selection.DefaultRunConfig()
	simulateCmd.Flags().Float64SliceVar(&simSizes, "sizes", def.Baseline.Sizes, "Comma-separated subset sizes (counts or fractions)")
	simulateCmd.Flags().IntVar(&simReps, "reps", def.Baseline.Repetitions, "Random repetitions per size")
	simulateCmd.Flags().StringVar(&simOutputPath, "output", "", "JSON output path (default stdout)")
	simulateCmd.Flags().BoolVar(&simRawSamples, "raw-samples", false, "Include raw (size, score) samples in the output")
}
