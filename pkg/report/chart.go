// pkg/report/chart.go
package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/qoriq-io/dq-engine/pkg/metrics"
)

// WriteHTMLChart renders the before/after scorecard as a standalone HTML bar
// chart, the shareable equivalent of the terminal scorecard.
func WriteHTMLChart(path string, before, after metrics.Snapshot) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Data Quality Scorecard",
			Subtitle: fmt.Sprintf("Grade %s before, %s after", before.Grade(), after.Grade()),
		}),
	)

	bar.SetXAxis([]string{"Completeness", "Consistency", "Validity", "Uniqueness"}).
		AddSeries("Before", barData(before)).
		AddSeries("After", barData(after))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := bar.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return f.Close()
}

func barData(s metrics.Snapshot) []opts.BarData {
	return []opts.BarData{
		{Value: s.Completeness},
		{Value: s.Consistency},
		{Value: s.Validity},
		{Value: s.Uniqueness},
	}
}
