// pkg/classify/classify.go
package classify

import "strings"

// FieldKind is the semantic category inferred from a column header.
type FieldKind string

const (
	KindEmail      FieldKind = "email"
	KindPhone      FieldKind = "phone"
	KindState      FieldKind = "state"
	KindDate       FieldKind = "date"
	KindCompany    FieldKind = "company"
	KindPersonName FieldKind = "person_name"
	KindOther      FieldKind = "other"
)

// kindPriority is the order in which alias sets are consulted. The first kind
// whose alias set contains the header wins.
var kindPriority = []FieldKind{
	KindEmail,
	KindPhone,
	KindDate,
	KindState,
	KindCompany,
	KindPersonName,
}

// aliases maps each kind to the lowercase header names that identify it.
// When multiple raw headers mean the same thing, they all appear here.
var aliases = map[FieldKind]map[string]struct{}{
	KindEmail: set(
		"email", "email_address", "emailaddress", "e-mail",
		"contact_email", "contactemail",
	),
	KindPhone: set(
		"phone", "phone_number", "phonenumber", "mobile",
		"contact_phone", "contactphone",
	),
	KindDate: set(
		"date", "created_at", "createdat", "created date",
		"last_contacted", "lastcontacted",
	),
	KindState: set(
		"state", "st", "st_code", "state_code", "region",
	),
	KindCompany: set(
		"company", "company_name", "companyname", "account", "account_name",
	),
	KindPersonName: set(
		"name", "full_name", "fullname", "contact_name", "contactname",
	),
}

func set(keys ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return m
}

// substringFallbacks are consulted, in order, when no alias matches exactly.
var substringFallbacks = []struct {
	fragment string
	kind     FieldKind
}{
	{"email", KindEmail},
	{"phone", KindPhone},
	{"mobile", KindPhone},
	{"date", KindDate},
	{"state", KindState},
	{"region", KindState},
	{"company", KindCompany},
	{"account", KindCompany},
	{"name", KindPersonName},
}

// Classify maps a column header to its semantic field kind. It is total:
// any header it cannot place returns KindOther.
func Classify(header string) FieldKind {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return KindOther
	}

	for _, kind := range kindPriority {
		if _, ok := aliases[kind][h]; ok {
			return kind
		}
	}

	for _, fb := range substringFallbacks {
		if strings.Contains(h, fb.fragment) {
			return fb.kind
		}
	}

	return KindOther
}
