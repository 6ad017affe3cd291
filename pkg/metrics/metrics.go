// pkg/metrics/metrics.go
package metrics

import (
	"math"
	"strings"

	"github.com/qoriq-io/dq-engine/pkg/classify"
	"github.com/qoriq-io/dq-engine/pkg/model"
	"github.com/qoriq-io/dq-engine/pkg/normalize"
)

// ConsistencyMode selects how the Consistency dimension is computed. The
// product shipped two formulas over time; the joint state+date check is the
// reproducible default, the blended average is kept as a policy option.
type ConsistencyMode string

const (
	ConsistencyJoint   ConsistencyMode = "joint"
	ConsistencyBlended ConsistencyMode = "blended"
)

// Policy holds the tunable parts of metric computation.
type Policy struct {
	Consistency ConsistencyMode
}

// DefaultPolicy returns the standard joint-validity policy.
func DefaultPolicy() Policy {
	return Policy{Consistency: ConsistencyJoint}
}

// Snapshot is the four-dimension quality score of a row collection at a point
// in time. Each dimension is an integer in [0,100]. Snapshots are values;
// computing the "after" state produces a new one.
type Snapshot struct {
	Completeness int
	Consistency  int
	Validity     int
	Uniqueness   int
}

// Average returns the unweighted mean of the four dimensions.
func (s Snapshot) Average() float64 {
	return float64(s.Completeness+s.Consistency+s.Validity+s.Uniqueness) / 4
}

// Grade maps the snapshot's average onto a letter grade.
func (s Snapshot) Grade() string {
	return Grade(s.Average())
}

// Grade converts a 0-100 score to a letter grade.
func Grade(pct float64) string {
	switch {
	case pct >= 90:
		return "A"
	case pct >= 80:
		return "B"
	case pct >= 70:
		return "C"
	case pct >= 60:
		return "D"
	default:
		return "F"
	}
}

// Compute scores a row collection. An empty collection yields the zero
// snapshot rather than an error. Field resolution uses the first row's
// headers; rows missing a resolved column simply score as empty cells.
func Compute(rows []model.Row, resolver *classify.Resolver, policy Policy) Snapshot {
	if len(rows) == 0 {
		return Snapshot{}
	}

	res := resolver.Resolve(rows[0].Columns)
	emailCol, _ := res.Header(classify.KindEmail)
	stateCol, _ := res.Header(classify.KindState)
	dateCol, _ := res.Header(classify.KindDate)
	companyCol, _ := res.Header(classify.KindCompany)
	scored := []string{emailCol, stateCol, dateCol, companyCol}

	n := len(rows)
	filled, total := 0, 0
	validEmails := 0
	consistent := 0
	seen := make(map[string]struct{}, n)

	for _, row := range rows {
		for _, col := range scored {
			total++
			if col != "" && strings.TrimSpace(row.Value(col)) != "" {
				filled++
			}
		}

		if emailCol != "" && normalize.ValidEmail(row.Value(emailCol)) {
			validEmails++
		}

		if stateCol != "" && dateCol != "" &&
			normalize.KnownStateCode(row.Value(stateCol)) &&
			normalize.ISODate(row.Value(dateCol)) {
			consistent++
		}

		key := strings.ToLower(row.Value(emailCol)) + "||" + strings.ToLower(row.Value(companyCol))
		seen[key] = struct{}{}
	}

	snap := Snapshot{
		Completeness: pct(filled, total),
		Validity:     pct(validEmails, n),
		Consistency:  pct(consistent, n),
		Uniqueness:   pct(len(seen), n),
	}

	if policy.Consistency == ConsistencyBlended {
		snap.Consistency = clamp(int(math.Round(float64(snap.Completeness+snap.Validity) / 2)))
	}
	return snap
}

func pct(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return clamp(int(math.Round(float64(part) / float64(whole) * 100)))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
