package normalize

import "testing"

func TestAvailable(t *testing.T) {
	lightspeedModes := []string{"disabled", "indicator"}
	ccvshopModes := []string{"backorder"}

	tests := []struct {
		name     string
		stock    int
		tracking string
		modes    []string
		want     bool
	}{
		{"in stock always available", 1, "", nil, true},
		{"no stock no tracking", 0, "", lightspeedModes, false},
		{"no stock tracking normal", 0, "normal", lightspeedModes, false},
		{"no stock tracking disabled", 0, "disabled", lightspeedModes, true},
		{"no stock tracking indicator", 0, "indicator", lightspeedModes, true},
		{"no stock backorder allowed", 0, "backorder", ccvshopModes, true},
		{"backorder not accepted by other vocabulary", 0, "backorder", lightspeedModes, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Available(tt.stock, tt.tracking, tt.modes); got != tt.want {
				t.Errorf("Available(%d, %q) = %v, want %v", tt.stock, tt.tracking, got, tt.want)
			}
		})
	}
}
