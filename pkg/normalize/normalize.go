// pkg/normalize/normalize.go
//
// Pure, total cell normalizers. Every function returns its input unchanged
// when the value is already canonical, so each canonical form is a fixed
// point and repeated normalization is a no-op.
package normalize

import (
	"regexp"
	"strings"
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	usDatePattern  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonDigits      = regexp.MustCompile(`\D`)
	punctuation    = regexp.MustCompile(`[.,]`)
	twoLetterToken = regexp.MustCompile(`^[A-Za-z]{2}$`)
	legalSuffixes  = regexp.MustCompile(`(?i)\b(inc|llc|ltd|corp|co|company)\b`)
)

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func isEmpty(v string) bool {
	return strings.TrimSpace(v) == ""
}

// Whitespace trims the value and collapses internal whitespace runs to single
// spaces.
func Whitespace(v string) string {
	return whitespaceRuns.ReplaceAllString(strings.TrimSpace(v), " ")
}

// ValidEmail reports whether the trimmed value has the shape local@domain.tld
// with no embedded whitespace.
func ValidEmail(v string) bool {
	return emailPattern.MatchString(strings.TrimSpace(v))
}

// Email lowercases and trims an email-like value. Values without an "@" are
// returned unchanged; deciding what to do with them is the fix engine's call,
// not the normalizer's.
func Email(v string) string {
	trimmed := strings.TrimSpace(v)
	if !strings.Contains(trimmed, "@") {
		return v
	}
	return strings.ToLower(trimmed)
}

// State maps a state value to its two-letter postal code. Two-letter tokens
// are uppercased as-is; otherwise the nickname table and then the full-name
// table are consulted. Unrecognized values come back unchanged and stay
// invalid downstream.
func State(v string) string {
	if isEmpty(v) {
		return v
	}

	raw := Whitespace(punctuation.ReplaceAllString(strings.ToLower(strings.TrimSpace(v)), ""))

	if twoLetterToken.MatchString(raw) {
		return strings.ToUpper(raw)
	}
	if code, ok := nicknameToCode[raw]; ok {
		return code
	}
	if code, ok := fullStateToCode[raw]; ok {
		return code
	}
	return v
}

// Date converts MM/DD/YY and MM/DD/YYYY values to ISO YYYY-MM-DD, expanding
// two-digit years into the 2000s. Already-ISO values pass through. Anything
// else is reported not ok and returned unchanged.
func Date(v string) (iso string, ok bool) {
	s := strings.TrimSpace(v)
	if s == "" {
		return v, false
	}

	if m := usDatePattern.FindStringSubmatch(s); m != nil {
		mm, dd, yy := m[1], m[2], m[3]
		if len(yy) == 2 {
			yy = "20" + yy
		}
		if len(mm) == 1 {
			mm = "0" + mm
		}
		if len(dd) == 1 {
			dd = "0" + dd
		}
		return yy + "-" + mm + "-" + dd, true
	}

	if isoDatePattern.MatchString(s) {
		return s, true
	}
	return v, false
}

// ISODate reports whether the value already has the YYYY-MM-DD shape.
func ISODate(v string) bool {
	return isoDatePattern.MatchString(strings.TrimSpace(v))
}

// Phone strips non-digit characters and, when exactly ten digits remain,
// formats the number as +1-XXX-XXX-XXXX. Any other digit count leaves the
// original value untouched.
func Phone(v string) string {
	if isEmpty(v) {
		return v
	}
	digits := nonDigits.ReplaceAllString(v, "")
	if len(digits) != 10 {
		return v
	}
	return "+1-" + digits[0:3] + "-" + digits[3:6] + "-" + digits[6:]
}

// ValidPhone reports whether the value reduces to exactly ten digits.
func ValidPhone(v string) bool {
	return len(nonDigits.ReplaceAllString(v, "")) == 10
}

// Company strips punctuation and legal-suffix tokens (Inc, LLC, Ltd, Corp,
// Co, Company), collapses whitespace, and title-cases each word.
func Company(v string) string {
	if isEmpty(v) {
		return v
	}
	s := punctuation.ReplaceAllString(v, "")
	s = legalSuffixes.ReplaceAllString(s, "")
	return TitleCase(Whitespace(s))
}

// TitleCase lowercases the value and uppercases the first letter of each
// space-separated word.
func TitleCase(v string) string {
	words := strings.Split(strings.ToLower(v), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// SplitName splits a combined person name on whitespace: the first token is
// the given name, the remaining tokens joined by single spaces form the
// family name. A single-token name yields an empty family name.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
