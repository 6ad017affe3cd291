// pkg/report/report.go
package report

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/qoriq-io/dq-engine/pkg/metrics"
	"github.com/qoriq-io/dq-engine/pkg/pipeline"
)

// Scorecard renders the before/after quality dimensions as a text table.
func Scorecard(before, after metrics.Snapshot) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Dimension", "Before", "After", "Delta"})

	rows := []struct {
		name          string
		before, after int
	}{
		{"Completeness", before.Completeness, after.Completeness},
		{"Consistency", before.Consistency, after.Consistency},
		{"Validity", before.Validity, after.Validity},
		{"Uniqueness", before.Uniqueness, after.Uniqueness},
	}
	for _, r := range rows {
		t.AppendRow(table.Row{r.name, r.before, r.after, signed(r.after - r.before)})
	}

	t.AppendFooter(table.Row{
		"Grade",
		before.Grade(),
		after.Grade(),
		fmt.Sprintf("%.1f avg", after.Average()),
	})
	t.SetStyle(table.StyleLight)
	return t.Render()
}

// Summary renders the run counters as a text table.
func Summary(res *pipeline.Result) string {
	t := table.NewWriter()
	t.AppendRows([]table.Row{
		{"Run ID", res.RunID},
		{"Raw rows", res.RawCount},
		{"Clean rows", res.CleanCount},
		{"Duplicates merged", res.DuplicatesRemoved},
		{"Rows with issues", res.RowsWithIssues()},
		{"Fix operations", len(res.Operations)},
		{"Duration", res.Duration.Round(time.Millisecond).String()},
	})
	t.SetStyle(table.StyleLight)
	return t.Render()
}

func signed(d int) string {
	if d > 0 {
		return fmt.Sprintf("+%d", d)
	}
	return fmt.Sprintf("%d", d)
}
