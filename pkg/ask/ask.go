// pkg/ask/ask.go
//
// Keyword-intent question answering over a cleaned dataset. This is pattern
// matching over fix metadata, not natural-language understanding; the point
// is to narrate what the fix engine already did.
package ask

import (
	"fmt"
	"strings"

	"github.com/qoriq-io/dq-engine/pkg/classify"
	"github.com/qoriq-io/dq-engine/pkg/model"
)

// Index is a lowercase view over a cleaned dataset, built once per dataset.
type Index struct {
	rows     []indexedRow
	resolver *classify.Resolver
}

type indexedRow struct {
	raw  model.Row
	norm map[string]string // lowercase column -> lowercase value
}

// BuildIndex prepares a dataset for questioning.
func BuildIndex(rows []model.Row, resolver *classify.Resolver) *Index {
	if resolver == nil {
		resolver = classify.NewResolver()
	}
	ix := &Index{resolver: resolver}
	for _, row := range rows {
		norm := make(map[string]string, len(row.Cells))
		for k, v := range row.Cells {
			norm[strings.ToLower(k)] = strings.ToLower(strings.TrimSpace(v))
		}
		ix.rows = append(ix.rows, indexedRow{raw: row, norm: norm})
	}
	return ix
}

// Answer is the engine's response to one question.
type Answer struct {
	Type           string // "insight", "text", "help", or "error"
	Headline       string
	Narrative      string
	Bullets        []string
	Recommendation string
}

type intent struct {
	wantsLowQuality   bool
	wantsMissingEmail bool
}

func parseIntent(question string) intent {
	q := strings.ToLower(question)
	return intent{
		wantsLowQuality:   strings.Contains(q, "why") || strings.Contains(q, "low"),
		wantsMissingEmail: strings.Contains(q, "missing email") || strings.Contains(q, "no email"),
	}
}

// Ask answers a question from the indexed dataset.
func (ix *Index) Ask(question string) Answer {
	if ix == nil || len(ix.rows) == 0 {
		return Answer{
			Type:      "error",
			Narrative: "No data available. Run a clean pass and save the dataset first.",
		}
	}

	in := parseIntent(question)

	if in.wantsMissingEmail {
		return ix.missingEmailAnswer()
	}
	if in.wantsLowQuality {
		return ix.lowQualityAnswer()
	}

	return Answer{
		Type:      "help",
		Narrative: "Try one of these:",
		Bullets: []string{
			"Why is my data quality low?",
			"Show missing email",
		},
	}
}

func (ix *Index) lowQualityAnswer() Answer {
	var badEmail, badPhone, badState, badDate int
	for _, r := range ix.rows {
		if r.raw.Meta == nil {
			continue
		}
		for _, kind := range r.raw.Meta.Fixes.Applied {
			switch kind {
			case model.FixEmailReplaced:
				badEmail++
			case model.FixPhoneStandardized:
				badPhone++
			case model.FixStateStandardized:
				badState++
			case model.FixDateStandardized:
				badDate++
			}
		}
	}

	return Answer{
		Type:      "insight",
		Headline:  "Why your quality score moved",
		Narrative: "Identity fields were repaired across the dataset, which drives match and routing confidence.",
		Bullets: []string{
			fmt.Sprintf("%d records had missing or invalid emails (replaced)", badEmail),
			fmt.Sprintf("%d records had non-standard state formatting (standardized)", badState),
			fmt.Sprintf("%d phone numbers were normalized", badPhone),
			fmt.Sprintf("%d dates were aligned to ISO format", badDate),
		},
		Recommendation: "Standardize these fields at ingestion to keep the score up.",
	}
}

func (ix *Index) missingEmailAnswer() Answer {
	const maxListed = 10

	var affected []string
	for _, r := range ix.rows {
		if r.raw.Meta == nil || !hasKind(r.raw.Meta.Fixes, model.FixEmailReplaced) {
			continue
		}
		affected = append(affected, ix.rowLabel(r.raw))
		if len(affected) == maxListed {
			break
		}
	}

	if len(affected) == 0 {
		return Answer{Type: "text", Narrative: "No contacts are missing email anymore."}
	}

	return Answer{
		Type:           "insight",
		Headline:       "Contacts missing email (repaired)",
		Narrative:      "These contacts had a missing or invalid email address:",
		Bullets:        affected,
		Recommendation: "Sync with your CRM owner to enforce required email fields.",
	}
}

func hasKind(fr model.FixRecord, kind model.FixKind) bool {
	for _, k := range fr.Applied {
		if k == kind {
			return true
		}
	}
	return false
}

// rowLabel names a row for display, preferring company, then person name.
func (ix *Index) rowLabel(row model.Row) string {
	res := ix.resolver.Resolve(row.Columns)
	if col, ok := res.Header(classify.KindCompany); ok {
		if v := strings.TrimSpace(row.Value(col)); v != "" {
			return v
		}
	}
	if col, ok := res.Header(classify.KindPersonName); ok {
		if v := strings.TrimSpace(row.Value(col)); v != "" {
			return v
		}
	}
	return "[Unknown]"
}
