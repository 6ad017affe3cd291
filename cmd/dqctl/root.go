// cmd/dqctl/root.go
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/qoriq-io/dq-engine/pkg/csvio"
	"github.com/qoriq-io/dq-engine/pkg/model"
	"github.com/qoriq-io/dq-engine/pkg/sample"
)

var rootCmd = &cobra.Command{
	Use:           "dqctl",
	Short:         "CSV data-quality engine: detect, fix, dedupe, and score",
	SilenceUsage:  true,
	SilenceErrors: false,
}

const sampleRowCount = 60

// loadInput reads the dataset for a command: the CSV named by args, or the
// embedded sample when --sample is set.
func loadInput(args []string, useSample bool) ([]model.Row, error) {
	if useSample {
		return sample.Rows(sampleRowCount), nil
	}
	if len(args) == 0 {
		return nil, errors.New("provide an input CSV path or use --sample")
	}
	return csvio.ReadFile(args[0])
}
