package normalize

import (
	"strings"

	"catalogfeed_api/internal/feed/model"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderUnisex = "unisex"
)

// Gender resolves the gender attribute for a record. An explicit attribute
// value wins; when it is absent or unisex the composed full title is scanned
// for men/women tokens, and when that stays unresolved the category tree is
// searched for a node titled "men" or "women". Everything else is unisex.
func Gender(explicit, fullTitle string, categories []model.CategoryNode) string {
	gender := strings.ToLower(strings.TrimSpace(explicit))
	if gender == "" {
		gender = GenderUnisex
	}

	if gender == GenderUnisex {
		gender = genderFromTitle(fullTitle)
	}
	if gender == GenderUnisex {
		gender = genderFromCategories(categories)
	}
	return gender
}

func genderFromTitle(fullTitle string) string {
	ft := strings.ToLower(fullTitle)
	switch {
	case containsToken(ft, "men"):
		return GenderMale
	case containsToken(ft, "women"):
		return GenderFemale
	}
	return GenderUnisex
}

// containsToken reports whether the title mentions the word standalone or as
// a possessive: " men ", " men's ", or a trailing " men"/" men's".
func containsToken(title, word string) bool {
	return strings.Contains(title, " "+word+" ") ||
		strings.Contains(title, " "+word+"'s ") ||
		strings.HasSuffix(title, " "+word) ||
		strings.HasSuffix(title, " "+word+"'s")
}

// genderFromCategories walks the category tree depth-first; the first node
// titled men or women decides.
func genderFromCategories(nodes []model.CategoryNode) string {
	for _, node := range nodes {
		switch strings.ToLower(node.Title) {
		case "men":
			return GenderMale
		case "women":
			return GenderFemale
		}
		if g := genderFromCategories(node.Subs); g != GenderUnisex {
			return g
		}
	}
	return GenderUnisex
}
