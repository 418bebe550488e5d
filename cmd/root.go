package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/surrsel/surrsel/selection"
)

var (
	// CLI flags shared by all subcommands
	logLevel  string // Log verbosity level
	inputPath string // Descriptor CSV path
	seed      int64  // Master seed for random selection and baseline draws
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "surrsel",
	Short: "Chemical-space surrogate selection and LARD scoring",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEngine loads the descriptor dataset and fits a selection engine on it.
// Fatal on any failure; subcommands need both or nothing.
func loadEngine() (*selection.Dataset, *selection.Engine) {
	if inputPath == "" {
		logrus.Fatalf("No input dataset provided. Use --input.")
	}
	ds, err := selection.LoadDataset(inputPath)
	if err != nil {
		logrus.Fatalf("Failed to load dataset: %v", err)
	}
	eng, err := selection.NewEngine(ds.Features, selection.NewSelectionKey(seed))
	if err != nil {
		logrus.Fatalf("Failed to fit selection engine: %v", err)
	}
	n, d := eng.Dims()
	logrus.Infof("Fitted selection engine on %d structures with %d descriptors (seed=%d)", n, d, seed)
	return ds, eng
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "Descriptor CSV: identifier column followed by numeric descriptor columns")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Master seed for random selection and baseline simulation")

	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(simulateCmd)
}
