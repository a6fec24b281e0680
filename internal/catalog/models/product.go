// Package models holds the source-agnostic raw catalog shapes both upstream
// adapters map into. A RawProduct is owned by a single refresh cycle and
// consumed once by the record builder.
package models

// RawProduct is one product as fetched from the upstream platform, already
// filtered to visible products by the adapter.
type RawProduct struct {
	ID          string
	Title       string
	Description string
	// URLSlug is the shop-relative product slug without extension.
	URLSlug    string
	Brand      *RawBrand
	Variants   []RawVariant
	Categories []RawCategory
	// Images are ordered by the upstream sort order; only the full-size
	// source URLs are kept.
	Images []RawImage
}

type RawBrand struct {
	Title string
}

// RawVariant is one purchasable unit of a product.
type RawVariant struct {
	ID string
	// Title is the free-text variant descriptor used by platforms that
	// encode options as a single string ("Color: Graphite Grey","Size: 2 XL").
	Title      string
	StockLevel int
	// StockTracking is the platform's stock tracking mode; vocabulary is
	// source-specific (lightspeed: normal/disabled/indicator,
	// ccvshop: normal/backorder).
	StockTracking string
	PriceIncl     float64
	OldPriceIncl  float64
	EAN           string
	ArticleCode   string
	Weight        float64
	// Options carries structured option attributes, in declaration order,
	// for platforms that expose them that way instead of a free-text title.
	Options []RawOption
}

// RawOption is a single named variant attribute, e.g. Color -> Graphite Grey.
type RawOption struct {
	Name  string
	Value string
}

// RawCategory is one category membership of a product. Depth/SortOrder/URL
// are populated by the lightspeed shape; Enabled and path position by the
// ccvshop shape.
type RawCategory struct {
	ID        int
	Depth     int
	SortOrder int
	URL       string
	Title     string
	Enabled   bool
}

type RawImage struct {
	Src       string
	SortOrder int
}
