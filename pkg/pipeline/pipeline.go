// pkg/pipeline/pipeline.go
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qoriq-io/dq-engine/pkg/classify"
	"github.com/qoriq-io/dq-engine/pkg/dedupe"
	"github.com/qoriq-io/dq-engine/pkg/detect"
	"github.com/qoriq-io/dq-engine/pkg/fixer"
	"github.com/qoriq-io/dq-engine/pkg/metrics"
	"github.com/qoriq-io/dq-engine/pkg/model"
)

// Pipeline runs the full quality pass over a dataset: detect issues on the
// raw rows, repair each row, collapse duplicates, then score before and
// after. The input rows are never mutated.
type Pipeline struct {
	resolver *classify.Resolver
	fixer    *fixer.Fixer
	policy   metrics.Policy
	logger   *zap.Logger
}

// New creates a Pipeline.
func New(resolver *classify.Resolver, policy metrics.Policy, logger *zap.Logger) (*Pipeline, error) {
	if resolver == nil {
		return nil, errors.New("resolver cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	fx, err := fixer.NewFixer(resolver, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create fixer: %w", err)
	}

	return &Pipeline{
		resolver: resolver,
		fixer:    fx,
		policy:   policy,
		logger:   logger,
	}, nil
}

// Result summarizes one pipeline run.
type Result struct {
	RunID             string
	StartedAt         time.Time
	Duration          time.Duration
	RawCount          int
	CleanCount        int
	DuplicatesRemoved int
	Issues            [][]model.Issue // parallel to the input rows
	Operations        []model.FixOperation
	Rows              []model.Row // repaired and deduplicated
	Before            metrics.Snapshot
	After             metrics.Snapshot
}

// RowsWithIssues counts input rows that had at least one detected issue.
func (r *Result) RowsWithIssues() int {
	n := 0
	for _, issues := range r.Issues {
		if len(issues) > 0 {
			n++
		}
	}
	return n
}

// Run executes the pipeline. An empty dataset produces an empty result with
// zero metrics, not an error.
func (p *Pipeline) Run(rows []model.Row) (*Result, error) {
	res := &Result{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
		RawCount:  len(rows),
		Issues:    make([][]model.Issue, len(rows)),
	}

	p.logger.Info("Starting quality run",
		zap.String("run_id", res.RunID),
		zap.Int("rows", len(rows)))

	res.Before = metrics.Compute(rows, p.resolver, p.policy)

	fixed := make([]model.Row, len(rows))
	for i, row := range rows {
		res.Issues[i] = detect.Detect(row, p.resolver)

		out := p.fixer.Apply(row)
		rowID := fmt.Sprintf("%s/row-%d", res.RunID, i+1)
		for j := range out.Operations {
			out.Operations[j].RowIdentifier = rowID
		}
		res.Operations = append(res.Operations, out.Operations...)
		fixed[i] = out.Row
	}

	res.Rows, res.DuplicatesRemoved = dedupe.Deduplicate(fixed, p.resolver)
	res.CleanCount = len(res.Rows)
	res.After = metrics.Compute(res.Rows, p.resolver, p.policy)
	res.Duration = time.Since(res.StartedAt)

	if err := p.verify(res, fixed); err != nil {
		return nil, fmt.Errorf("run verification failed: %w", err)
	}

	p.logger.Info("Completed quality run",
		zap.String("run_id", res.RunID),
		zap.Int("raw_rows", res.RawCount),
		zap.Int("clean_rows", res.CleanCount),
		zap.Int("duplicates_removed", res.DuplicatesRemoved),
		zap.Int("fix_operations", len(res.Operations)),
		zap.Int("rows_with_issues", res.RowsWithIssues()),
		zap.Float64("score_before", res.Before.Average()),
		zap.Float64("score_after", res.After.Average()),
		zap.Duration("duration", res.Duration))

	return res, nil
}
