// pkg/model/fix.go
package model

import "time"

// FixKind identifies one category of repair applied to a cell.
type FixKind string

const (
	FixWhitespaceNormalized FixKind = "whitespace_normalized"
	FixEmailReplaced        FixKind = "email_replaced"
	FixCompanyNormalized    FixKind = "company_normalized"
	FixNameParsed           FixKind = "name_parsed"
	FixStateStandardized    FixKind = "state_standardized"
	FixPhoneStandardized    FixKind = "phone_standardized"
	FixDateStandardized     FixKind = "date_standardized"
)

// FixRecord describes which repairs were applied to a row. It is attached to
// the row as metadata and never exported as a data column.
type FixRecord struct {
	Applied         map[string]FixKind // column name -> repair applied
	DuplicateMerged int                // duplicates merged into this row by dedupe
}

// NewFixRecord creates an empty fix record.
func NewFixRecord() FixRecord {
	return FixRecord{Applied: make(map[string]FixKind)}
}

// Record notes that a repair was applied to a column.
func (fr *FixRecord) Record(column string, kind FixKind) {
	if fr.Applied == nil {
		fr.Applied = make(map[string]FixKind)
	}
	fr.Applied[column] = kind
}

// Has reports whether any repair was recorded for a column.
func (fr FixRecord) Has(column string) bool {
	_, ok := fr.Applied[column]
	return ok
}

// Empty reports whether the record holds no repairs and no merge count.
func (fr FixRecord) Empty() bool {
	return len(fr.Applied) == 0 && fr.DuplicateMerged == 0
}

// Clone returns a deep copy of the record.
func (fr FixRecord) Clone() FixRecord {
	out := FixRecord{
		Applied:         make(map[string]FixKind, len(fr.Applied)),
		DuplicateMerged: fr.DuplicateMerged,
	}
	for k, v := range fr.Applied {
		out.Applied[k] = v
	}
	return out
}

// FixOperation is the audit-trail form of a single cell repair: which column
// changed, from what to what, and why. Operations are collected per pipeline
// run and may be persisted to the store's fix_operations table.
type FixOperation struct {
	Column        string
	OriginalValue string
	NewValue      string
	RowIdentifier string // assigned by the pipeline, stable within a run
	Operation     string // FixKind that produced the change
	Reason        string
	AppliedAt     time.Time
}
