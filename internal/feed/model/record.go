// Package model defines the canonical product record handed to the feed
// templates. Records are built once per refresh and are immutable afterwards;
// the rendered feed text is the durable artifact, records are not persisted.
package model

// CategoryNode is one node of the reconstructed category hierarchy.
type CategoryNode struct {
	Title string
	Subs  []CategoryNode
}

// Price groups the current and the previous (compare-at) price, tax included.
// Zero values mean the price is absent.
type Price struct {
	PriceIncl    float64
	OldPriceIncl float64
}

type Brand struct {
	Title string
}

// DeliveryDateMessage carries the configured delivery estimates for variants
// whose stock tracking only indicates availability.
type DeliveryDateMessage struct {
	InStock    string
	OutOfStock string
}

// Record is the canonical representation of one product variant, ready for
// feed rendering. Exactly one Record exists per visible (product, variant)
// pair, in variant visit order. Optional fields stay zero-valued so the
// templates can apply per-field presence checks.
type Record struct {
	// ID is the product and variant identifiers joined with an underscore.
	ID          string
	ItemGroupID string
	FullTitle   string
	Description string
	URL         string
	StockLevel  int
	Available   bool
	Price       Price
	EAN         string
	Code        string
	// Weight is always present; variants without a usable weight get the
	// minimum shippable default.
	Weight     float64
	Images     []string
	Brand      *Brand
	Categories []CategoryNode
	Color      string
	Size       string
	// Gender is one of male, female, unisex.
	Gender string
	// AgeGroup is one of adult, kids.
	AgeGroup string
	// PickupSLA is same_day when the variant is in stock, multi-week
	// otherwise.
	PickupSLA           string
	DeliveryDateMessage *DeliveryDateMessage
}
