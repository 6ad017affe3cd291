package fixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/qoriq-io/dq-engine/pkg/classify"
	"github.com/qoriq-io/dq-engine/pkg/model"
)

func newFixer(t *testing.T) *Fixer {
	t.Helper()
	fx, err := NewFixer(classify.NewResolver(), zap.NewNop())
	require.NoError(t, err)
	return fx
}

func makeRow(cells map[string]string, columns ...string) model.Row {
	row := model.NewRow(columns)
	for k, v := range cells {
		row.Cells[k] = v
	}
	return row
}

func TestApplyCleanRoundTrip(t *testing.T) {
	fx := newFixer(t)
	row := makeRow(map[string]string{
		"email":   "JOHN@X.COM ",
		"state":   "calif",
		"date":    "6/3/24",
		"company": "Acme Inc.",
	}, "email", "state", "date", "company")

	out := fx.Apply(row)

	assert.Equal(t, "john@x.com", out.Row.Value("email"))
	assert.Equal(t, "CA", out.Row.Value("state"))
	assert.Equal(t, "2024-06-03", out.Row.Value("date"))
	assert.Equal(t, "Acme", out.Row.Value("company"))

	assert.Equal(t, model.FixWhitespaceNormalized, out.Record.Applied["email"])
	assert.Equal(t, model.FixStateStandardized, out.Record.Applied["state"])
	assert.Equal(t, model.FixDateStandardized, out.Record.Applied["date"])
	assert.Equal(t, model.FixCompanyNormalized, out.Record.Applied["company"])
	assert.NotEqual(t, model.FixEmailReplaced, out.Record.Applied["email"], "valid email must not be replaced")

	// input untouched
	assert.Equal(t, "JOHN@X.COM ", row.Value("email"))
	assert.Nil(t, row.Meta)
}

func TestApplyReplacesInvalidEmail(t *testing.T) {
	fx := newFixer(t)

	for _, bad := range []string{"", "nope", "a@b", "two words@x.com"} {
		row := makeRow(map[string]string{"email": bad}, "email")
		out := fx.Apply(row)
		assert.Equalf(t, EmailUnknown, out.Row.Value("email"), "email %q", bad)
		assert.Equal(t, model.FixEmailReplaced, out.Record.Applied["email"])
	}
}

func TestApplySplitsName(t *testing.T) {
	fx := newFixer(t)
	row := makeRow(map[string]string{"name": "Ana Maria Cruz", "email": "a@b.co"}, "name", "email")

	out := fx.Apply(row)

	assert.Equal(t, "Ana", out.Row.Value("first_name"))
	assert.Equal(t, "Maria Cruz", out.Row.Value("last_name"))
	assert.Equal(t, "Ana Maria Cruz", out.Row.Value("name"), "combined column stays intact")
	assert.Equal(t, model.FixNameParsed, out.Record.Applied["name"])
}

func TestApplyIdempotent(t *testing.T) {
	fx := newFixer(t)
	row := makeRow(map[string]string{
		"name":    " John   Smith ",
		"email":   "BAD EMAIL",
		"phone":   "(415) 555-0100",
		"state":   "mass",
		"date":    "12/9/23",
		"company": "Globex, LLC",
	}, "name", "email", "phone", "state", "date", "company")

	first := fx.Apply(row)
	second := fx.Apply(first.Row)

	assert.Equal(t, first.Row.Cells, second.Row.Cells)
	assert.Equal(t, first.Row.Meta.PriorityScore, second.Row.Meta.PriorityScore)
	assert.Empty(t, second.Operations, "second pass must change nothing")
}

func TestPriorityScore(t *testing.T) {
	fx := newFixer(t)

	full := makeRow(map[string]string{
		"email":   "a@b.co",
		"phone":   "4155550100",
		"state":   "CA",
		"company": "Acme",
	}, "email", "phone", "state", "company")
	assert.Equal(t, 100, fx.Apply(full).Row.Meta.PriorityScore)

	// Replaced email contributes nothing even though the cell is non-empty.
	noEmail := makeRow(map[string]string{
		"email":   "invalid",
		"phone":   "4155550100",
		"state":   "CA",
		"company": "Acme",
	}, "email", "phone", "state", "company")
	assert.Equal(t, 70, fx.Apply(noEmail).Row.Meta.PriorityScore)

	empty := makeRow(map[string]string{}, "email", "phone", "state", "company")
	assert.Equal(t, 0, fx.Apply(empty).Row.Meta.PriorityScore)
}

func TestApplyRecordsOperations(t *testing.T) {
	fx := newFixer(t)
	row := makeRow(map[string]string{"state": " tex "}, "state")

	out := fx.Apply(row)
	require.Len(t, out.Operations, 2) // whitespace, then state

	ws, st := out.Operations[0], out.Operations[1]
	assert.Equal(t, string(model.FixWhitespaceNormalized), ws.Operation)
	assert.Equal(t, " tex ", ws.OriginalValue)
	assert.Equal(t, "tex", ws.NewValue)
	assert.Equal(t, string(model.FixStateStandardized), st.Operation)
	assert.Equal(t, "TX", st.NewValue)
}
