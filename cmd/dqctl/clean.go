// cmd/dqctl/clean.go
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qoriq-io/dq-engine/pkg/classify"
	"github.com/qoriq-io/dq-engine/pkg/csvio"
	"github.com/qoriq-io/dq-engine/pkg/pipeline"
	"github.com/qoriq-io/dq-engine/pkg/report"
	"github.com/qoriq-io/dq-engine/pkg/store"
)

var (
	cleanOutput string
	cleanSave   string
	cleanSample bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [input.csv]",
	Short: "Run the full quality pass and write the cleaned dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "write the cleaned CSV to this path")
	cleanCmd.Flags().StringVar(&cleanSave, "save", "", "persist the cleaned dataset to the store under this key")
	cleanCmd.Flags().BoolVar(&cleanSample, "sample", false, "use the embedded demo dataset instead of an input file")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	rows, err := loadInput(args, cleanSample)
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

	fmt.Println(report.Summary(res))
	fmt.Println(report.Scorecard(res.Before, res.After))

	if cleanOutput != "" {
		if err := csvio.WriteFile(cleanOutput, res.Rows); err != nil {
			return err
		}
		fmt.Printf("wrote %d rows to %s\n", len(res.Rows), cleanOutput)
	}

	if cleanSave != "" {
		if err := persistRun(cmd.Context(), cleanSave, res); err != nil {
			return err
		}
	}
	return nil
}

func persistRun(ctx context.Context, name string, res *pipeline.Result) error {
	st, err := store.New(ctx, cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	key := store.DatasetKey(name)
	if err := st.SaveDataset(ctx, key, res.Rows); err != nil {
		return err
	}
	if err := st.RecordFixOperations(ctx, res.RunID, res.Operations); err != nil {
		return err
	}
	fmt.Printf("saved dataset under key %q\n", key)
	return nil
}
