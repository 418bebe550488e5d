package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/surrsel/surrsel/selection"
)

// writeSummary encodes the run summary as indented JSON to path, or to
// stdout when path is empty.
func writeSummary(summary *selection.RunSummary, path string) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		logrus.Fatalf("Error encoding run summary: %v", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		logrus.Fatalf("Error writing summary to %s: %v", path, err)
	}
	logrus.Debugf("Successfully wrote summary to '%s'", path)
}
