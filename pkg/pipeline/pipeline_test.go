package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/qoriq-io/dq-engine/pkg/classify"
	"github.com/qoriq-io/dq-engine/pkg/csvio"
	"github.com/qoriq-io/dq-engine/pkg/metrics"
	"github.com/qoriq-io/dq-engine/pkg/model"
)

const messyCSV = `name,email,phone,state,date,company
 John   Smith ,JOHN@X.COM ,(415) 555-0100,calif,6/3/24,Acme Inc.
Sara Lee,sara@y.com,415.555.0101,NY,2024-02-02,Globex
John Smith,john@x.com,4155550100,texas,2024-03-03,ACME INC
Bob Ray,not-an-email,555,kansas?,never,
`

func newPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := New(classify.NewResolver(), metrics.DefaultPolicy(), zap.NewNop())
	require.NoError(t, err)
	return p
}

func loadRows(t *testing.T) []model.Row {
	t.Helper()
	rows, err := csvio.Read(strings.NewReader(messyCSV))
	require.NoError(t, err)
	return rows
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, metrics.DefaultPolicy(), zap.NewNop())
	assert.Error(t, err)

	_, err = New(classify.NewResolver(), metrics.DefaultPolicy(), nil)
	assert.Error(t, err)
}

func TestRunEndToEnd(t *testing.T) {
	rows := loadRows(t)
	res, err := newPipeline(t).Run(rows)
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 4, res.RawCount)
	assert.Equal(t, 3, res.CleanCount, "the two John Smith rows share an identity")
	assert.Equal(t, 1, res.DuplicatesRemoved)
	assert.Equal(t, res.RawCount, res.CleanCount+res.DuplicatesRemoved)

	john := res.Rows[0]
	assert.Equal(t, "john@x.com", john.Value("email"))
	assert.Equal(t, "CA", john.Value("state"))
	assert.Equal(t, "2024-06-03", john.Value("date"))
	assert.Equal(t, "+1-415-555-0100", john.Value("phone"))
	assert.Equal(t, "Acme", john.Value("company"))
	assert.Equal(t, "John", john.Value("first_name"))
	assert.Equal(t, "Smith", john.Value("last_name"))
	require.NotNil(t, john.Meta)
	assert.Equal(t, 1, john.Meta.Fixes.DuplicateMerged)

	bob := res.Rows[2]
	assert.Equal(t, "Unknown", bob.Value("email"), "unfixable email replaced by sentinel")
}

func TestRunScoresImprove(t *testing.T) {
	res, err := newPipeline(t).Run(loadRows(t))
	require.NoError(t, err)

	assert.Greater(t, res.After.Average(), res.Before.Average())
	assert.Equal(t, 100, res.After.Uniqueness, "dedupe leaves only distinct identities")
}

func TestRunIssuesAndOperations(t *testing.T) {
	res, err := newPipeline(t).Run(loadRows(t))
	require.NoError(t, err)

	require.Len(t, res.Issues, 4)
	assert.NotEmpty(t, res.Issues[0], "row 1 has state and date defects")
	assert.Empty(t, res.Issues[1], "row 2 is already clean")
	assert.Equal(t, 3, res.RowsWithIssues())

	require.NotEmpty(t, res.Operations)
	for _, op := range res.Operations {
		assert.True(t, strings.HasPrefix(op.RowIdentifier, res.RunID+"/row-"),
			"operation %q carries the run-scoped row identifier", op.Operation)
		assert.False(t, op.AppliedAt.IsZero())
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	rows := loadRows(t)
	before := make([]model.Row, len(rows))
	for i, r := range rows {
		before[i] = r.Clone()
	}

	_, err := newPipeline(t).Run(rows)
	require.NoError(t, err)

	for i := range rows {
		assert.Equal(t, before[i].Cells, rows[i].Cells, "row %d mutated", i+1)
		assert.Nil(t, rows[i].Meta)
	}
}

func TestRunDeterministicApartFromRunID(t *testing.T) {
	p := newPipeline(t)

	a, err := p.Run(loadRows(t))
	require.NoError(t, err)
	b, err := p.Run(loadRows(t))
	require.NoError(t, err)

	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, a.Before, b.Before)
	assert.Equal(t, a.After, b.After)
	require.Equal(t, len(a.Rows), len(b.Rows))
	for i := range a.Rows {
		assert.Equal(t, a.Rows[i].Cells, b.Rows[i].Cells)
	}
}

func TestRunEmptyDataset(t *testing.T) {
	res, err := newPipeline(t).Run(nil)
	require.NoError(t, err)

	assert.Zero(t, res.RawCount)
	assert.Zero(t, res.CleanCount)
	assert.Empty(t, res.Rows)
	assert.Equal(t, metrics.Snapshot{}, res.Before)
	assert.Equal(t, metrics.Snapshot{}, res.After)
}
