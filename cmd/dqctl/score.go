// cmd/dqctl/score.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qoriq-io/dq-engine/pkg/classify"
	"github.com/qoriq-io/dq-engine/pkg/pipeline"
	"github.com/qoriq-io/dq-engine/pkg/report"
)

var (
	scoreHTML   string
	scoreSample bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [input.csv]",
	Short: "Score a dataset before and after fixes without writing it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreHTML, "html", "", "also write an HTML scorecard chart to this path")
	scoreCmd.Flags().BoolVar(&scoreSample, "sample", false, "use the embedded demo dataset instead of an input file")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	rows, err := loadInput(args, scoreSample)
	if err != nil {
		return err
	}

	p, err := pipeline.New(classify.NewResolver(), cfg.MetricsPolicy(), logger)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	res, err := p.Run(rows)
	if err != nil {
		return err
	}

	fmt.Println(report.Scorecard(res.Before, res.After))

	if scoreHTML != "" {
		if err := report.WriteHTMLChart(scoreHTML, res.Before, res.After); err != nil {
			return err
		}
		fmt.Printf("wrote scorecard chart to %s\n", scoreHTML)
	}
	return nil
}
