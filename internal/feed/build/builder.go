// Package build assembles canonical product records from raw catalog data.
// Build is a pure function of its input: it returns a fresh record sequence
// per call and keeps no state between refreshes.
package build

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"catalogfeed_api/internal/catalog/models"
	"catalogfeed_api/internal/feed/model"
	"catalogfeed_api/internal/feed/normalize"
	"catalogfeed_api/pkg/logger"
)

var (
	ErrMissingProductID = errors.New("product has no identifier")
	ErrMissingVariantID = errors.New("variant has no identifier")
)

// SourceCapabilities is the per-platform behavior the builder needs. The
// builder never knows which upstream platform it is fed by; the selected
// source injects its own implementation.
type SourceCapabilities interface {
	// VariantDescriptor extracts the ordered attribute set of a variant,
	// parsing the free-text title or reading structured options.
	VariantDescriptor(v *models.RawVariant) normalize.VariantDescriptor
	// BuildCategoryTree reconstructs the category hierarchy from the
	// platform's category shape.
	BuildCategoryTree(p *models.RawProduct) []model.CategoryNode
	// ModesNotRequiringStock lists the stock tracking modes under which a
	// variant counts as available without stock.
	ModesNotRequiringStock() []string
	// IndicatorMode returns the tracking mode that carries delivery date
	// messages, or "" when the platform has none.
	IndicatorMode() string
}

// ProductError labels a build failure with the offending product and its
// serialized raw payload for diagnostics.
type ProductError struct {
	ProductID string
	Payload   []byte
	Err       error
}

func (e *ProductError) Error() string {
	return fmt.Sprintf("processing product %s: %v", e.ProductID, e.Err)
}

func (e *ProductError) Unwrap() error { return e.Err }

// Builder turns raw products into canonical records.
type Builder struct {
	caps     SourceCapabilities
	domain   string
	delivery model.DeliveryDateMessage
	logger   *logger.BaseLogger
}

func NewBuilder(caps SourceCapabilities, domain string, delivery model.DeliveryDateMessage, logWriter io.Writer) *Builder {
	return &Builder{
		caps:     caps,
		domain:   domain,
		delivery: delivery,
		logger:   logger.NewLogger(logWriter, "[Builder]"),
	}
}

// Build produces one record per (product, variant) pair, in the order the
// adapter returned them. One bad product aborts the whole build; no partial
// result is returned.
func (b *Builder) Build(products []models.RawProduct) ([]model.Record, error) {
	records := make([]model.Record, 0, len(products))
	for i := range products {
		product := &products[i]
		b.logger.Log("product %s has %d variants", product.ID, len(product.Variants))

		for j := range product.Variants {
			record, err := b.buildRecord(product, &product.Variants[j])
			if err != nil {
				return nil, b.productError(product, err)
			}
			records = append(records, record)
		}
	}
	return records, nil
}

func (b *Builder) buildRecord(p *models.RawProduct, v *models.RawVariant) (model.Record, error) {
	if p.ID == "" {
		return model.Record{}, ErrMissingProductID
	}
	if v.ID == "" {
		return model.Record{}, ErrMissingVariantID
	}

	descriptor := b.caps.VariantDescriptor(v)
	categories := b.caps.BuildCategoryTree(p)
	size := normalize.Size(descriptor.Get("Size"))

	brandTitle := ""
	if p.Brand != nil {
		brandTitle = p.Brand.Title
	}
	fullTitle := normalize.ComposeFullTitle(p.Title, brandTitle, displayValues(descriptor, size))

	record := model.Record{
		ID:          p.ID + "_" + v.ID,
		ItemGroupID: p.ID,
		FullTitle:   fullTitle,
		Description: p.Description,
		URL:         b.domain + p.URLSlug + ".html",
		StockLevel:  v.StockLevel,
		Available:   normalize.Available(v.StockLevel, v.StockTracking, b.caps.ModesNotRequiringStock()),
		Price:       model.Price{PriceIncl: v.PriceIncl, OldPriceIncl: v.OldPriceIncl},
		EAN:         v.EAN,
		Code:        v.ArticleCode,
		Weight:      normalize.Weight(v.Weight),
		Categories:  categories,
		Color:       strings.ToLower(descriptor.Get("Color")),
		Size:        size,
		Gender:      normalize.Gender(descriptor.Get("Gender"), fullTitle, categories),
		AgeGroup:    normalize.AgeGroup(descriptor.Get("Age Group"), fullTitle, p.Description),
		PickupSLA:   pickupSLA(v.StockLevel),
	}

	for _, image := range p.Images {
		record.Images = append(record.Images, image.Src)
	}
	if brandTitle != "" {
		record.Brand = &model.Brand{Title: brandTitle}
	}
	if indicator := b.caps.IndicatorMode(); indicator != "" && v.StockTracking == indicator {
		delivery := b.delivery
		record.DeliveryDateMessage = &delivery
	}
	return record, nil
}

// displayValues returns the variant values to show in the composed title,
// with the raw size value replaced by its normalized form.
func displayValues(d normalize.VariantDescriptor, size string) []string {
	raw := d.Get("Size")
	if raw == "" || raw == size {
		return d.Values
	}
	values := make([]string, len(d.Values))
	for i, val := range d.Values {
		if val == raw {
			values[i] = size
		} else {
			values[i] = val
		}
	}
	return values
}

// pickupSLA is the in-store pickup promise: same day when in stock, the
// conservative multi-week window otherwise.
func pickupSLA(stockLevel int) string {
	if stockLevel > 0 {
		return "same_day"
	}
	return "multi-week"
}

func (b *Builder) productError(p *models.RawProduct, err error) error {
	payload, marshalErr := json.MarshalIndent(p, "", "  ")
	if marshalErr != nil {
		payload = []byte(fmt.Sprintf("unserializable product: %v", marshalErr))
	}
	b.logger.Log("error processing product %s: %v", p.ID, err)
	b.logger.Log("product data:\n%s", payload)
	return &ProductError{ProductID: p.ID, Payload: payload, Err: err}
}
