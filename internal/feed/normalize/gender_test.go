package normalize

import (
	"testing"

	"catalogfeed_api/internal/feed/model"
)

func TestGender(t *testing.T) {
	tests := []struct {
		name       string
		explicit   string
		fullTitle  string
		categories []model.CategoryNode
		want       string
	}{
		{"default unisex", "", "Fox Ranger Glove", nil, "unisex"},
		{"explicit male", "Male", "Fox Ranger Glove", nil, "male"},
		{"explicit female", "Female", "Fox Ranger Glove", nil, "female"},
		{"trailing men", "", "Fox Ranger Glove Men", nil, "male"},
		{"trailing women", "", "Fox Ranger Glove Women", nil, "female"},
		{"trailing possessive men", "", "Fox Ranger Glove Men's", nil, "male"},
		{"trailing possessive women", "", "Fox Ranger Glove Women's", nil, "female"},
		{"men token mid-title", "", "Fox Men Ranger Glove", nil, "male"},
		{"women does not match men token", "", "Fox Ranger Glove Women", nil, "female"},
		{
			name:       "category resolves when title does not",
			explicit:   "",
			fullTitle:  "Fox Ranger Glove",
			categories: []model.CategoryNode{{Title: "Women"}},
			want:       "female",
		},
		{
			name:      "nested category resolves",
			explicit:  "",
			fullTitle: "Fox Ranger Glove",
			categories: []model.CategoryNode{
				{Title: "MTB gear", Subs: []model.CategoryNode{{Title: "Men"}}},
			},
			want: "male",
		},
		{
			name:       "unrelated category stays unisex",
			explicit:   "",
			fullTitle:  "Fox Ranger Glove",
			categories: []model.CategoryNode{{Title: "MTB gear"}},
			want:       "unisex",
		},
		{
			name:       "title wins over category",
			explicit:   "",
			fullTitle:  "Fox Ranger Glove Men",
			categories: []model.CategoryNode{{Title: "Women"}},
			want:       "male",
		},
		{
			name:      "explicit wins over title",
			explicit:  "Female",
			fullTitle: "Fox Ranger Glove Men",
			want:      "female",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gender(tt.explicit, tt.fullTitle, tt.categories); got != tt.want {
				t.Errorf("Gender(%q, %q) = %q, want %q", tt.explicit, tt.fullTitle, got, tt.want)
			}
		})
	}
}
