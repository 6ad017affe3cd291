// cmd/dqctl/ask.go
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qoriq-io/dq-engine/pkg/ask"
	"github.com/qoriq-io/dq-engine/pkg/classify"
	"github.com/qoriq-io/dq-engine/pkg/store"
)

var askKey string

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a question about a previously saved dataset",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askKey, "key", "", "store key of the saved dataset (required)")
	askCmd.MarkFlagRequired("key")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, err := store.New(ctx, cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	rows, ok, err := st.LoadDataset(ctx, askKey)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("no data saved under key %q; run `dqctl clean --save %s` first\n", askKey, askKey)
		return nil
	}

	index := ask.BuildIndex(rows, classify.NewResolver())
	answer := index.Ask(strings.Join(args, " "))
	printAnswer(answer)
	return nil
}

func printAnswer(a ask.Answer) {
	if a.Headline != "" {
		fmt.Println(a.Headline)
		fmt.Println(strings.Repeat("-", len(a.Headline)))
	}
	if a.Narrative != "" {
		fmt.Println(a.Narrative)
	}
	for _, b := range a.Bullets {
		fmt.Printf("  - %s\n", b)
	}
	if a.Recommendation != "" {
		fmt.Printf("\n%s\n", a.Recommendation)
	}
}
