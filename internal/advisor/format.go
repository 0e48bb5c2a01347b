package advisor

import (
	"strings"
	"unicode"
)

// titleCase upper-cases the first letter of each alphabetic run, leaving
// separators such as underscores in place ("web_application" ->
// "Web_Application").
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
