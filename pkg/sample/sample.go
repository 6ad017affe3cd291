// pkg/sample/sample.go
package sample

import (
	"fmt"
	"strings"

	"github.com/qoriq-io/dq-engine/pkg/model"
)

// Deterministic demo dataset generator. The PRNG is a fixed-seed LCG so the
// same messy CRM rows come out on every run, which keeps demos and tests
// stable without shipping a fixture file.

type lcg struct{ state uint32 }

func newLCG(seed uint32) *lcg { return &lcg{state: seed} }

func (r *lcg) next() float64 {
	r.state = r.state*1664525 + 1013904223
	return float64(r.state) / float64(1<<32)
}

func (r *lcg) pick(options []string) string {
	return options[int(r.next()*float64(len(options)))%len(options)]
}

func (r *lcg) maybeBlank(v string, p float64) string {
	if r.next() < p {
		return ""
	}
	return v
}

var (
	firstNames = []string{"John", "Sara", "Mike", "Priya", "Chen", "Luis", "Aisha", "David", "Emily", "Ravi", "Olivia", "Emma"}
	lastNames  = []string{"Smith", "Patel", "Lee", "Garcia", "Brown", "Khan", "Williams", "Singh", "Johnson", "Gupta"}
	companies  = []string{"Acme Corp", "ACME Corporation", "Globex", "Globex LLC", "Innotech", "Apex Systems", "DataSoft", "Datasoft Inc", "Blue Wave Technologies"}
	states     = []string{"CA", "Calif.", "California", "NY", "New York", "Mass", "MA", "TX", "Texas"}
	dates      = []string{"2024-06-03", "6/3/24", "06/03/2024", "12/9/23", "not-a-date", "2024-01-15"}
	phones     = []string{"(415) 555-0100", "415-555-0100", "4155550100", "555-0100", ""}
	domains    = []string{"gmail.com", "outlook.com", "company.com", "bizmail.com"}
)

// Columns is the header set of the generated dataset.
var Columns = []string{"name", "email", "phone", "company", "state", "created_at"}

// Rows generates n deterministic, deliberately messy CRM rows.
func Rows(n int) []model.Row {
	r := newLCG(42)
	rows := make([]model.Row, 0, n)

	for i := 0; i < n; i++ {
		first := r.pick(firstNames)
		last := r.pick(lastNames)

		email := fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), r.pick(domains))
		email = r.maybeBlank(email, 0.10)
		if r.next() < 0.08 {
			email = strings.ToUpper(email) + " " // casing and whitespace defects
		}

		row := model.NewRow(Columns)
		row.Cells["name"] = r.maybeBlank(first+" "+last, 0.05)
		row.Cells["email"] = email
		row.Cells["phone"] = r.pick(phones)
		row.Cells["company"] = r.maybeBlank(r.pick(companies), 0.08)
		row.Cells["state"] = r.maybeBlank(r.pick(states), 0.10)
		row.Cells["created_at"] = r.pick(dates)
		rows = append(rows, row)

		// Occasionally repeat the identity to seed duplicates for dedupe.
		if r.next() < 0.12 && len(rows) < n {
			dup := row.Clone()
			dup.Cells["state"] = r.pick(states)
			rows = append(rows, dup)
			i++
		}
	}
	return rows
}
