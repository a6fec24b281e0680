package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// ComposeFullTitle builds the display title for a record: all-uppercase raw
// titles are converted to title case, the brand is prepended unless the title
// already starts with it, and the variant attribute values are appended in
// declaration order as a parenthesized list.
func ComposeFullTitle(rawTitle, brandTitle string, variantValues []string) string {
	fullTitle := strings.TrimSpace(rawTitle)

	if isUpper(fullTitle) {
		fullTitle = titleCaser.String(strings.ToLower(fullTitle))
	}

	if !strings.HasPrefix(strings.ToLower(fullTitle), strings.ToLower(brandTitle)) {
		fullTitle = strings.TrimSpace(brandTitle + " " + fullTitle)
	}

	if len(variantValues) > 0 {
		fullTitle = fullTitle + " (" + strings.Join(variantValues, ", ") + ")"
	}
	return fullTitle
}

// isUpper reports whether s contains at least one letter and no lower-case
// letters.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
