// pkg/detect/detect.go
package detect

import (
	"github.com/qoriq-io/dq-engine/pkg/classify"
	"github.com/qoriq-io/dq-engine/pkg/model"
	"github.com/qoriq-io/dq-engine/pkg/normalize"
)

// Detect inspects a row's original values and returns the data-quality issues
// found. The row is never mutated; calling Detect twice on the same row yields
// the same issue set.
//
// Field resolution follows the row's own header order. A missing email-like
// column counts as an invalid email; a missing phone-like column is not
// flagged, matching the weaker phone contract.
func Detect(row model.Row, resolver *classify.Resolver) []model.Issue {
	res := resolver.Resolve(row.Columns)
	var issues []model.Issue

	emailCol, hasEmailCol := res.Header(classify.KindEmail)
	if !hasEmailCol || !normalize.ValidEmail(row.Value(emailCol)) {
		issues = append(issues, model.Issue{Column: emailCol, Reason: model.ReasonInvalidEmail})
	}

	if stateCol, ok := res.Header(classify.KindState); ok {
		// The value must already be a known two-letter code; nicknames and
		// full names are repairable but still count as a defect here.
		if !normalize.KnownStateCode(row.Value(stateCol)) {
			issues = append(issues, model.Issue{Column: stateCol, Reason: model.ReasonInvalidState})
		}
	}

	if dateCol, ok := res.Header(classify.KindDate); ok {
		if _, dateOK := normalize.Date(row.Value(dateCol)); !dateOK {
			issues = append(issues, model.Issue{Column: dateCol, Reason: model.ReasonInvalidDate})
		}
	}

	if phoneCol, ok := res.Header(classify.KindPhone); ok {
		if !normalize.ValidPhone(row.Value(phoneCol)) {
			issues = append(issues, model.Issue{Column: phoneCol, Reason: model.ReasonInvalidPhone})
		}
	}

	return issues
}
