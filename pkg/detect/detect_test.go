package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qoriq-io/dq-engine/pkg/classify"
	"github.com/qoriq-io/dq-engine/pkg/model"
)

func makeRow(cells map[string]string, columns ...string) model.Row {
	row := model.NewRow(columns)
	for k, v := range cells {
		row.Cells[k] = v
	}
	return row
}

func reasons(issues []model.Issue) []string {
	out := make([]string, len(issues))
	for i, is := range issues {
		out[i] = is.Reason
	}
	return out
}

func TestDetectFlagsRepairableDefects(t *testing.T) {
	// The email survives untouched while state and date are repairable but
	// still defective as uploaded.
	row := makeRow(map[string]string{
		"email":   "JOHN@X.COM ",
		"state":   "calif",
		"date":    "6/3/24",
		"company": "Acme Inc.",
	}, "email", "state", "date", "company")

	issues := Detect(row, classify.NewResolver())
	got := reasons(issues)

	assert.Contains(t, got, model.ReasonInvalidState)
	assert.Contains(t, got, model.ReasonInvalidDate)
	assert.NotContains(t, got, model.ReasonInvalidEmail)
	assert.NotContains(t, got, model.ReasonInvalidPhone, "no phone column, no phone issue")
}

func TestDetectMissingEmailColumn(t *testing.T) {
	row := makeRow(map[string]string{"state": "CA"}, "state")

	issues := Detect(row, classify.NewResolver())
	require.Len(t, issues, 1)
	assert.Equal(t, model.ReasonInvalidEmail, issues[0].Reason)
	assert.Equal(t, "", issues[0].Column, "absent column reported without a name")
}

func TestDetectPhone(t *testing.T) {
	resolver := classify.NewResolver()

	good := makeRow(map[string]string{
		"email": "a@b.co", "state": "CA", "date": "2024-01-01", "phone": "(415) 555-0100",
	}, "email", "state", "date", "phone")
	assert.Empty(t, Detect(good, resolver))

	bad := makeRow(map[string]string{
		"email": "a@b.co", "state": "CA", "date": "2024-01-01", "phone": "555-0100",
	}, "email", "state", "date", "phone")
	assert.Equal(t, []string{model.ReasonInvalidPhone}, reasons(Detect(bad, resolver)))
}

func TestDetectIsPureAndDeterministic(t *testing.T) {
	row := makeRow(map[string]string{
		"email": "bad-email", "state": "texas", "date": "nope",
	}, "email", "state", "date")
	before := row.Clone()

	resolver := classify.NewResolver()
	first := Detect(row, resolver)
	second := Detect(row, resolver)

	assert.Equal(t, first, second)
	assert.Equal(t, before.Cells, row.Cells, "detection must not mutate the row")
}
