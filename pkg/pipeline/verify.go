// pkg/pipeline/verify.go
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/qoriq-io/dq-engine/pkg/model"
)

// verify checks the run invariants after the fact: dedupe must conserve row
// counts, and the fixer must be a no-op on rows it already fixed. A failure
// here is an engine bug, not a data problem, so it is returned as a hard
// error.
func (p *Pipeline) verify(res *Result, fixed []model.Row) error {
	if res.CleanCount+res.DuplicatesRemoved != res.RawCount {
		return fmt.Errorf("dedupe lost rows: %d survivors + %d removed != %d input",
			res.CleanCount, res.DuplicatesRemoved, res.RawCount)
	}

	// Idempotence spot check on the first repaired row.
	if len(fixed) > 0 {
		again := p.fixer.Apply(fixed[0])
		if !sameCells(again.Row, fixed[0]) {
			return fmt.Errorf("fixer is not idempotent: second pass changed row 1")
		}
		if fixed[0].Meta != nil && again.Row.Meta.PriorityScore != fixed[0].Meta.PriorityScore {
			return fmt.Errorf("priority score unstable: %d then %d",
				fixed[0].Meta.PriorityScore, again.Row.Meta.PriorityScore)
		}
	}

	p.logger.Debug("Run verification passed",
		zap.String("run_id", res.RunID),
		zap.Int("rows_checked", res.RawCount))
	return nil
}

func sameCells(a, b model.Row) bool {
	if len(a.Cells) != len(b.Cells) {
		return false
	}
	for k, v := range a.Cells {
		if b.Cells[k] != v {
			return false
		}
	}
	return true
}
