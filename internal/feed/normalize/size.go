package normalize

import "strings"

// sizeRule maps a lower-case prefix of the raw size to its canonical token.
type sizeRule struct {
	prefixes []string
	code     string
}

// Rule order matters: "extra small"/"x small" must fire before "small",
// "extra large" before "large", and so on. Evaluation stops at the first
// matching rule.
var sizeRules = []sizeRule{
	{[]string{"2 xs"}, "XXS"},
	{[]string{"extra small", "x small"}, "XS"},
	{[]string{"small", "youth small"}, "S"},
	{[]string{"medium", "youth medium"}, "M"},
	{[]string{"large", "youth large"}, "L"},
	{[]string{"extra large", "x large", "youth extra large", "youth xl"}, "XL"},
	{[]string{"2 xl"}, "2XL"},
	{[]string{"3 xl"}, "3XL"},
	{[]string{"4 xl"}, "4XL"},
	{[]string{"5 xl"}, "5XL"},
	{[]string{"6 xl"}, "6XL"},
}

// Size maps a raw size value onto the canonical size tokens the feed expects
// (XXS..6XL). Unrecognized values pass through unchanged, including "".
func Size(raw string) string {
	lower := strings.ToLower(raw)
	for _, rule := range sizeRules {
		for _, prefix := range rule.prefixes {
			if strings.HasPrefix(lower, prefix) {
				return rule.code
			}
		}
	}
	return raw
}
