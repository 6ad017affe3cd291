package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qoriq-io/dq-engine/pkg/metrics"
	"github.com/qoriq-io/dq-engine/pkg/pipeline"
)

func TestScorecard(t *testing.T) {
	before := metrics.Snapshot{Completeness: 70, Consistency: 40, Validity: 60, Uniqueness: 90}
	after := metrics.Snapshot{Completeness: 95, Consistency: 90, Validity: 85, Uniqueness: 100}

	out := Scorecard(before, after)

	assert.Contains(t, out, "Completeness")
	assert.Contains(t, out, "+25", "delta column carries a sign")
	assert.Contains(t, out, "D", "before grade")
	assert.Contains(t, out, "A", "after grade")
	assert.Contains(t, out, "92.5 avg")
}

func TestScorecardNegativeDelta(t *testing.T) {
	before := metrics.Snapshot{Uniqueness: 100}
	after := metrics.Snapshot{Uniqueness: 90}
	assert.Contains(t, Scorecard(before, after), "-10")
}

func TestSummary(t *testing.T) {
	res := &pipeline.Result{
		RunID:             "run-123",
		RawCount:          60,
		CleanCount:        54,
		DuplicatesRemoved: 6,
	}

	out := Summary(res)
	assert.Contains(t, out, "run-123")
	assert.Contains(t, out, "Duplicates merged")
	assert.Contains(t, out, "54")
}
