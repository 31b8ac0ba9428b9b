// Package identity derives stable interaction identifiers for menu items.
//
// Items carry no explicit primary key, so the like counter is keyed by a
// normalisation of the display title. Distinct titles that normalise to the
// same id are not disambiguated; their counts merge. That is a documented
// property of the data contract, not a defect to patch here.
package identity

import (
	"strings"
	"unicode"
)

const separator = '_'

// Resolve maps a menu item title to its derived interaction id. The mapping
// is deterministic: lowercase, whitespace runs collapse to a single "_", and
// anything outside letters, digits, "_" and "-" is dropped.
func Resolve(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsSpace(r):
			pendingSep = b.Len() > 0
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == separator || r == '-':
			if pendingSep {
				b.WriteRune(separator)
				pendingSep = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
