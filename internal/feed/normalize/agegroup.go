package normalize

import (
	"regexp"
	"strings"
)

const (
	AgeGroupAdult = "adult"
	AgeGroupKids  = "kids"
)

var youthWord = regexp.MustCompile(`(?i)\byouth\b`)

// AgeGroup resolves the age group attribute. An explicit attribute value is
// taken first (lower-cased), defaulting to adult; products denominated
// "youth" in the full title or the description are forced to kids, the token
// the feed expects, regardless of the explicit value.
func AgeGroup(explicit, fullTitle, description string) string {
	ageGroup := strings.ToLower(strings.TrimSpace(explicit))
	if ageGroup == "" {
		ageGroup = AgeGroupAdult
	}

	if youthWord.MatchString(fullTitle) || youthWord.MatchString(description) {
		ageGroup = AgeGroupKids
	}
	return ageGroup
}
