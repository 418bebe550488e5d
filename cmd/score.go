package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/surrsel/surrsel/selection"
)

var (
	// CLI flags for the score subcommand
	idsFile         string // File with one row identifier per line
	scoreOutputPath string // JSON output path (empty = stdout)
)

// scoreCmd scores a user-chosen surrogate set given by row identifier, the
// manual counterpart to automated selection.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a manually chosen surrogate set by row identifier",
	Run: func(cmd *cobra.Command, args []string) {
		if idsFile == "" {
			logrus.Fatalf("No surrogate identifiers provided. Use --ids-file.")
		}
		ids, err := readIDs(idsFile)
		if err != nil {
			logrus.Fatalf("Failed to read surrogate identifiers: %v", err)
		}
		if len(ids) == 0 {
			logrus.Fatalf("Identifier file %s contains no identifiers", idsFile)
		}

		ds, eng := loadEngine()
		indices, err := ds.Indices(ids)
		if err != nil {
			logrus.Fatalf("Failed to resolve surrogate identifiers: %v", err)
		}
		score, err := eng.Score(indices)
		if err != nil {
			logrus.Fatalf("Scoring failed: %v", err)
		}
		logrus.Infof("User surrogate set of %d structures scored LARD=%.6f", len(indices), score)

		writeSummary(&selection.RunSummary{
			Results: []selection.StrategyResult{{
				Strategy: "user",
				Indices:  indices,
				IDs:      ids,
				Score:    score,
			}},
		}, scoreOutputPath)
	},
}

// readIDs reads one identifier per line, skipping blank lines.
func readIDs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		if id := strings.TrimSpace(line); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func init() {
	scoreCmd.Flags().StringVar(&idsFile, "ids-file", "", "File with one surrogate row identifier per line")
	scoreCmd.Flags().StringVar(&scoreOutputPath, "output", "", "JSON output path (default stdout)")
}
