package normalize

import "testing"

func TestAgeGroup(t *testing.T) {
	tests := []struct {
		name        string
		explicit    string
		fullTitle   string
		description string
		want        string
	}{
		{"default adult", "", "Fox Ranger Glove", "", "adult"},
		{"explicit lowered", "Kids", "Fox Ranger Glove", "", "kids"},
		{"youth in title forces kids", "", "Fox Ranger Glove Youth", "", "kids"},
		{"youth overrides explicit adult", "Adult", "Fox Ranger Glove Youth", "", "kids"},
		{"youth in description forces kids", "", "Fox Ranger Glove", "A glove for youth riders.", "kids"},
		{"youth must be a whole word", "", "Fox Youthful Glove", "", "adult"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeGroup(tt.explicit, tt.fullTitle, tt.description); got != tt.want {
				t.Errorf("AgeGroup(%q, %q, %q) = %q, want %q", tt.explicit, tt.fullTitle, tt.description, got, tt.want)
			}
		})
	}
}
