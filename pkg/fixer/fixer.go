// pkg/fixer/fixer.go
package fixer

import (
	"errors"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/qoriq-io/dq-engine/pkg/classify"
	"github.com/qoriq-io/dq-engine/pkg/model"
	"github.com/qoriq-io/dq-engine/pkg/normalize"
)

// EmailUnknown is the sentinel written over email cells that are missing or
// fail validation.
const EmailUnknown = "Unknown"

// canonicalPhone matches the formatter's own +1-XXX-XXX-XXXX output so the
// priority score treats already-fixed numbers as valid.
var canonicalPhone = regexp.MustCompile(`^\+1-\d{3}-\d{3}-\d{4}$`)

// Fixer repairs rows cell by cell, producing a new row plus a structured
// record of every repair applied. Applying the fixer to a row it has already
// fixed changes nothing; only the priority score is recomputed, to the same
// value.
type Fixer struct {
	resolver *classify.Resolver
	logger   *zap.Logger
}

// NewFixer creates a Fixer.
func NewFixer(resolver *classify.Resolver, logger *zap.Logger) (*Fixer, error) {
	if resolver == nil {
		return nil, errors.New("resolver cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Fixer{resolver: resolver, logger: logger}, nil
}

// Result is the outcome of fixing one row.
type Result struct {
	Row        model.Row
	Record     model.FixRecord
	Operations []model.FixOperation
}

// Apply repairs a single row. The input row is left untouched.
func (f *Fixer) Apply(row model.Row) Result {
	out := row.Clone()
	record := model.NewFixRecord()
	var ops []model.FixOperation

	recordFix := func(column, original, cleaned string, kind model.FixKind, reason string) {
		record.Record(column, kind)
		ops = append(ops, model.FixOperation{
			Column:        column,
			OriginalValue: original,
			NewValue:      cleaned,
			Operation:     string(kind),
			Reason:        reason,
			AppliedAt:     time.Now(),
		})
	}

	// 1) Whitespace pass over every cell. Later steps see cleaned values.
	for _, col := range out.Columns {
		original := out.Value(col)
		cleaned := normalize.Whitespace(original)
		if cleaned != original {
			out.Cells[col] = cleaned
			recordFix(col, original, cleaned, model.FixWhitespaceNormalized, "untidy_whitespace")
		}
	}

	res := f.resolver.Resolve(out.Columns)

	// 2) Email: invalid or missing values become the sentinel; valid values
	// keep their lowercase-trimmed form.
	emailCol, hasEmail := res.Header(classify.KindEmail)
	if hasEmail {
		raw := out.Value(emailCol)
		if !normalize.ValidEmail(raw) {
			if raw != EmailUnknown {
				recordFix(emailCol, raw, EmailUnknown, model.FixEmailReplaced, "missing_or_invalid_email")
				out.Cells[emailCol] = EmailUnknown
			}
		} else {
			out.Cells[emailCol] = normalize.Email(raw)
		}
	}

	// 3) Company legal-form cleanup.
	companyCol, hasCompany := res.Header(classify.KindCompany)
	if hasCompany {
		original := out.Value(companyCol)
		cleaned := normalize.Company(original)
		if cleaned != original {
			out.Cells[companyCol] = cleaned
			recordFix(companyCol, original, cleaned, model.FixCompanyNormalized, "legal_form_or_casing")
		}
	}

	// 4) Person name split into components; the combined column stays intact.
	if nameCol, ok := res.Header(classify.KindPersonName); ok {
		first, last := normalize.SplitName(out.Value(nameCol))
		if out.Value("first_name") != first || out.Value("last_name") != last {
			out.Set("first_name", first)
			out.Set("last_name", last)
			recordFix(nameCol, out.Value(nameCol), first+" / "+last, model.FixNameParsed, "combined_name_split")
		}
	}

	// 5) State standardization.
	stateCol, hasState := res.Header(classify.KindState)
	if hasState {
		original := out.Value(stateCol)
		cleaned := normalize.State(original)
		if cleaned != original {
			out.Cells[stateCol] = cleaned
			recordFix(stateCol, original, cleaned, model.FixStateStandardized, "non_standard_state")
		}
	}

	// 6) Phone formatting.
	phoneCol, hasPhone := res.Header(classify.KindPhone)
	if hasPhone {
		original := out.Value(phoneCol)
		cleaned := normalize.Phone(original)
		if cleaned != original {
			out.Cells[phoneCol] = cleaned
			recordFix(phoneCol, original, cleaned, model.FixPhoneStandardized, "unformatted_ten_digit_number")
		}
	}

	// 7) Date standardization. Unparseable dates are left as-is; they were
	// already surfaced by detection.
	if dateCol, ok := res.Header(classify.KindDate); ok {
		original := out.Value(dateCol)
		if iso, dateOK := normalize.Date(original); dateOK && iso != original {
			out.Cells[dateCol] = iso
			recordFix(dateCol, original, iso, model.FixDateStandardized, "non_iso_date")
		}
	}

	// 8) Priority score, always recomputed from the repaired values.
	score := 0
	if hasEmail && normalize.ValidEmail(out.Value(emailCol)) {
		score += 30
	}
	if hasPhone && phoneValid(out.Value(phoneCol)) {
		score += 25
	}
	if hasState && normalize.KnownStateCode(out.Value(stateCol)) {
		score += 25
	}
	if hasCompany && out.Value(companyCol) != "" {
		score += 20
	}

	if out.Meta != nil {
		// Carry forward repairs from earlier passes (and any merge count).
		for col, kind := range out.Meta.Fixes.Applied {
			if !record.Has(col) {
				record.Record(col, kind)
			}
		}
		record.DuplicateMerged = out.Meta.Fixes.DuplicateMerged
	}
	out.Meta = &model.RowMeta{Fixes: record, PriorityScore: score}

	if len(ops) > 0 {
		f.logger.Debug("Applied fixes to row",
			zap.Int("operations", len(ops)),
			zap.Int("priority_score", score))
	}

	return Result{Row: out, Record: record, Operations: ops}
}

func phoneValid(v string) bool {
	return normalize.ValidPhone(v) || canonicalPhone.MatchString(v)
}
