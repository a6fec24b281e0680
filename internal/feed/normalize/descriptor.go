// Package normalize implements the attribute policies that turn raw,
// source-specific product fields into the canonical values the feed
// templates expect.
package normalize

import (
	"strings"

	"catalogfeed_api/internal/catalog/models"
)

// VariantDescriptor is the parsed per-variant attribute set. Values keeps the
// declaration order of the attributes, which the title composer relies on.
type VariantDescriptor struct {
	Attributes map[string]string
	Values     []string
}

// Get returns the attribute value for key, or "" when absent.
func (d VariantDescriptor) Get(key string) string {
	if d.Attributes == nil {
		return ""
	}
	return d.Attributes[key]
}

// ParseVariantTitle parses a free-text variant title of the form
// `"Color: Graphite Grey","Size: 2 XL"` into a descriptor. A title equal to
// "default" (case-insensitive) yields an empty descriptor. Tokens without a
// colon are kept as value-only entries; that happens with titles like
// "Oil change kit" and is not an error.
func ParseVariantTitle(title string) VariantDescriptor {
	d := VariantDescriptor{Attributes: map[string]string{}}

	title = strings.TrimSpace(title)
	if strings.EqualFold(title, "default") || title == "" {
		return d
	}

	for _, token := range strings.Split(title, ",") {
		key, value, found := strings.Cut(token, ":")
		if !found {
			d.Values = append(d.Values, cleanToken(token))
			continue
		}
		k := cleanToken(key)
		v := cleanToken(value)
		d.Attributes[k] = v
		d.Values = append(d.Values, v)
	}
	return d
}

// DescriptorFromOptions builds a descriptor from structured option
// attributes, preserving their declaration order.
func DescriptorFromOptions(options []models.RawOption) VariantDescriptor {
	d := VariantDescriptor{Attributes: make(map[string]string, len(options))}
	for _, opt := range options {
		d.Attributes[opt.Name] = opt.Value
		d.Values = append(d.Values, opt.Value)
	}
	return d
}

func cleanToken(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}
