package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		header string
		want   FieldKind
	}{
		{"email", KindEmail},
		{"Email", KindEmail},
		{"  EMAIL_ADDRESS ", KindEmail},
		{"contact_email", KindEmail},
		{"phone", KindPhone},
		{"Mobile", KindPhone},
		{"contact_phone", KindPhone},
		{"date", KindDate},
		{"created_at", KindDate},
		{"last_contacted", KindDate},
		{"state", KindState},
		{"ST", KindState},
		{"st_code", KindState},
		{"Region", KindState},
		{"company", KindCompany},
		{"company_name", KindCompany},
		{"Account", KindCompany},
		{"name", KindPersonName},
		{"Full_Name", KindPersonName},
		{"revenue", KindOther},
		{"", KindOther},

		// substring fallbacks
		{"work_email_addr", KindEmail},
		{"cell phone no", KindPhone},
		{"signup_date_utc", KindDate},
		{"home_state_abbrev", KindState},
		{"parent_company_id", KindCompany},
		{"nickname", KindPersonName},
	}

	for _, tt := range tests {
		if got := Classify(tt.header); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// "contact_email" and "contact_phone" are both alias hits; a header that
	// could fall back to multiple kinds must follow the fallback order.
	if got := Classify("email_or_phone"); got != KindEmail {
		t.Errorf("Classify(email_or_phone) = %v, want email (fallback order)", got)
	}
}

func TestResolverFirstHeaderWins(t *testing.T) {
	rs := NewResolver()
	res := rs.Resolve([]string{"contact_email", "email", "state", "region"})

	if h, _ := res.Header(KindEmail); h != "contact_email" {
		t.Errorf("email resolved to %q, want contact_email", h)
	}
	if h, _ := res.Header(KindState); h != "state" {
		t.Errorf("state resolved to %q, want state", h)
	}
	if _, ok := res.Header(KindPhone); ok {
		t.Error("phone should not resolve for these headers")
	}
}

func TestResolverCaches(t *testing.T) {
	rs := NewResolver()
	headers := []string{"email", "state"}

	a := rs.Resolve(headers)
	b := rs.Resolve([]string{"email", "state"})
	if len(a) != len(b) {
		t.Fatal("resolutions differ")
	}
	for k, v := range a {
		if b[k] != v {
			t.Errorf("cached resolution mismatch for %v: %q vs %q", k, v, b[k])
		}
	}
}
