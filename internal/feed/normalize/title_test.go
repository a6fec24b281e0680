package normalize

import "testing"

func TestComposeFullTitle(t *testing.T) {
	tests := []struct {
		name          string
		rawTitle      string
		brandTitle    string
		variantValues []string
		want          string
	}{
		{
			name:       "brand prepended",
			rawTitle:   "Ranger Glove",
			brandTitle: "Fox",
			want:       "Fox Ranger Glove",
		},
		{
			name:       "brand not duplicated",
			rawTitle:   "Fox Ranger Glove",
			brandTitle: "Fox",
			want:       "Fox Ranger Glove",
		},
		{
			name:       "brand prefix check is case-insensitive",
			rawTitle:   "fox Ranger Glove",
			brandTitle: "Fox",
			want:       "fox Ranger Glove",
		},
		{
			name:     "no brand",
			rawTitle: "Ranger Glove",
			want:     "Ranger Glove",
		},
		{
			name:       "all caps converted to title case",
			rawTitle:   "RANGER GLOVE",
			brandTitle: "Fox",
			want:       "Fox Ranger Glove",
		},
		{
			name:          "variant values appended in order",
			rawTitle:      "Ranger Glove",
			brandTitle:    "Fox",
			variantValues: []string{"Graphite Grey", "2XL"},
			want:          "Fox Ranger Glove (Graphite Grey, 2XL)",
		},
		{
			name:          "values without brand",
			rawTitle:      "Ranger Glove",
			variantValues: []string{"Oil change kit"},
			want:          "Ranger Glove (Oil change kit)",
		},
		{
			name:     "mixed case left alone",
			rawTitle: "RANGEr Glove",
			want:     "RANGEr Glove",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeFullTitle(tt.rawTitle, tt.brandTitle, tt.variantValues)
			if got != tt.want {
				t.Errorf("ComposeFullTitle(%q, %q, %v) = %q, want %q",
					tt.rawTitle, tt.brandTitle, tt.variantValues, got, tt.want)
			}
		})
	}
}
