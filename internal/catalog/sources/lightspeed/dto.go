package lightspeed

import "encoding/json"

// API response DTOs. The catalog payload keys variants, categories and images
// by id; fields that are sometimes `false` instead of an object (brand,
// category image) are kept as raw JSON and decoded lazily.
type countResponse struct {
	Count int `json:"count"`
}

type catalogResponse struct {
	Products []apiProduct `json:"products"`
}

type apiProduct struct {
	ID          int64                  `json:"id"`
	IsVisible   bool                   `json:"isVisible"`
	URL         string                 `json:"url"`
	FullTitle   string                 `json:"fulltitle"`
	Description string                 `json:"description"`
	Brand       json.RawMessage        `json:"brand"`
	Variants    map[string]apiVariant  `json:"variants"`
	Categories  map[string]apiCategory `json:"categories"`
	Images      map[string]apiImage    `json:"images"`
}

type apiBrand struct {
	Title string `json:"title"`
}

type apiVariant struct {
	ID            int64   `json:"id"`
	SortOrder     int     `json:"sortOrder"`
	Title         string  `json:"title"`
	StockLevel    int     `json:"stockLevel"`
	StockTracking string  `json:"stockTracking"`
	PriceIncl     float64 `json:"priceIncl"`
	OldPriceIncl  float64 `json:"oldPriceIncl"`
	EAN           string  `json:"ean"`
	ArticleCode   string  `json:"articleCode"`
	Weight        float64 `json:"weight"`
}

type apiCategory struct {
	ID        int    `json:"id"`
	IsVisible bool   `json:"isVisible"`
	Depth     int    `json:"depth"`
	SortOrder int    `json:"sortOrder"`
	URL       string `json:"url"`
	Title     string `json:"title"`
}

type apiImage struct {
	ID        int64  `json:"id"`
	SortOrder int    `json:"sortOrder"`
	Src       string `json:"src"`
}
