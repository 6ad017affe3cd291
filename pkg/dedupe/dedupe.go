// pkg/dedupe/dedupe.go
package dedupe

import (
	"strings"

	"github.com/qoriq-io/dq-engine/pkg/classify"
	"github.com/qoriq-io/dq-engine/pkg/model"
)

// IdentityKey derives the composite duplicate-detection key for a row:
// lowercased email and company joined by "||". It is recomputed on demand and
// never stored on the row.
func IdentityKey(row model.Row, resolver *classify.Resolver) string {
	res := resolver.Resolve(row.Columns)

	var email, company string
	if col, ok := res.Header(classify.KindEmail); ok {
		email = row.Value(col)
	}
	if col, ok := res.Header(classify.KindCompany); ok {
		company = row.Value(col)
	}
	return strings.ToLower(email) + "||" + strings.ToLower(company)
}

// Deduplicate collapses rows sharing an identity key. The first row seen for
// a key survives, keeping its original relative order; each later duplicate
// is dropped and counted on the survivor's fix record. The input slice is not
// modified; survivors are copies.
func Deduplicate(rows []model.Row, resolver *classify.Resolver) (survivors []model.Row, removed int) {
	seen := make(map[string]int, len(rows))
	survivors = make([]model.Row, 0, len(rows))

	for _, row := range rows {
		key := IdentityKey(row, resolver)
		idx, dup := seen[key]
		if !dup {
			seen[key] = len(survivors)
			survivors = append(survivors, row.Clone())
			continue
		}

		removed++
		canonical := &survivors[idx]
		if canonical.Meta == nil {
			canonical.Meta = &model.RowMeta{Fixes: model.NewFixRecord()}
		}
		canonical.Meta.Fixes.DuplicateMerged++
	}

	return survivors, removed
}
