// pkg/model/issue.go
package model

// Issue reason strings surfaced by the detector.
const (
	ReasonInvalidEmail = "invalid_email"
	ReasonInvalidState = "invalid_state"
	ReasonInvalidDate  = "invalid_date"
	ReasonInvalidPhone = "invalid_phone"
)

// Issue describes one detected, unrepaired data-quality defect in one cell.
// Issues are computed from original values only and never mutate the row.
//
// Column is empty when the defect is the absence of a classifiable column
// (e.g. no email-like header at all).
type Issue struct {
	Column string
	Reason string
}
