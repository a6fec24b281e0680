package lightspeed

import (
	"encoding/json"
	"testing"
)

func TestMapProductOrdersVariantsAndImages(t *testing.T) {
	p := apiProduct{
		ID:          100,
		FullTitle:   "Ranger Glove",
		Description: "A sturdy trail glove.",
		URL:         "/fox-ranger-glove",
		Brand:       json.RawMessage(`{"title":"Fox"}`),
		Variants: map[string]apiVariant{
			"1002": {ID: 1002, SortOrder: 2, Title: `"Size: Small"`},
			"1001": {ID: 1001, SortOrder: 1, Title: `"Size: Medium"`},
			"1003": {ID: 1003, SortOrder: 1, Title: `"Size: Large"`},
		},
		Categories: map[string]apiCategory{
			"1": {ID: 1, Depth: 1, SortOrder: 1, URL: "apparel", Title: "Apparel", IsVisible: true},
		},
		Images: map[string]apiImage{
			"2": {ID: 2, SortOrder: 2, Src: "https://cdn.example.com/2/file.jpg"},
			"1": {ID: 1, SortOrder: 1, Src: "https://cdn.example.com/1/file.jpg"},
		},
	}

	raw := mapProduct(p)

	if raw.ID != "100" {
		t.Errorf("ID = %q, want 100", raw.ID)
	}
	if raw.Brand == nil || raw.Brand.Title != "Fox" {
		t.Errorf("Brand = %+v, want Fox", raw.Brand)
	}

	var variantIDs []string
	for _, v := range raw.Variants {
		variantIDs = append(variantIDs, v.ID)
	}
	// sortOrder first, id breaks the tie between 1001 and 1003.
	want := []string{"1001", "1003", "1002"}
	if len(variantIDs) != 3 || variantIDs[0] != want[0] || variantIDs[1] != want[1] || variantIDs[2] != want[2] {
		t.Errorf("variant order = %v, want %v", variantIDs, want)
	}

	if len(raw.Images) != 2 || raw.Images[0].Src != "https://cdn.example.com/1/file.jpg" {
		t.Errorf("image order = %+v", raw.Images)
	}
	if len(raw.Categories) != 1 || !raw.Categories[0].Enabled {
		t.Errorf("categories = %+v", raw.Categories)
	}
}

func TestMapBrand(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		isNil bool
	}{
		{"object", `{"title":"Fox"}`, "Fox", false},
		{"false instead of object", `false`, "", true},
		{"empty", ``, "", true},
		{"object without title", `{}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapBrand(json.RawMessage(tt.raw))
			if tt.isNil {
				if got != nil {
					t.Errorf("mapBrand(%s) = %+v, want nil", tt.raw, got)
				}
				return
			}
			if got == nil || got.Title != tt.want {
				t.Errorf("mapBrand(%s) = %+v, want title %q", tt.raw, got, tt.want)
			}
		})
	}
}
