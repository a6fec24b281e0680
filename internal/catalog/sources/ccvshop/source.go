// Package ccvshop adapts the CCV Shop catalog shape: structured option
// attributes on attribute combinations, breadcrumb category paths with
// enabled flags, and a backorder mode that sells without stock.
package ccvshop

import (
	"context"
	"io"
	"sort"
	"strconv"
	"time"

	"catalogfeed_api/config"
	"catalogfeed_api/internal/catalog/cache"
	"catalogfeed_api/internal/catalog/models"
	"catalogfeed_api/internal/feed/model"
	"catalogfeed_api/internal/feed/normalize"
)

// The backorder mode is the platform's "allow preorder" analogue.
const stockTrackingBackorder = "backorder"

var modesNotRequiringStock = []string{stockTrackingBackorder}

type Source struct {
	client *Client
}

func NewSource(cfg config.SourceConfig, store cache.Store, cacheTTL time.Duration, logWriter io.Writer) *Source {
	return &Source{client: NewClient(cfg, store, cacheTTL, logWriter)}
}

func (s *Source) FetchVisibleProducts(ctx context.Context) ([]models.RawProduct, error) {
	products, err := s.client.getVisibleProducts(ctx)
	if err != nil {
		return nil, err
	}

	raw := make([]models.RawProduct, 0, len(products))
	for _, p := range products {
		raw = append(raw, mapProduct(p))
	}
	return raw, nil
}

func (s *Source) VariantDescriptor(v *models.RawVariant) normalize.VariantDescriptor {
	return normalize.DescriptorFromOptions(v.Options)
}

func (s *Source) BuildCategoryTree(p *models.RawProduct) []model.CategoryNode {
	return normalize.BuildPathTree(p.Categories)
}

func (s *Source) ModesNotRequiringStock() []string {
	return modesNotRequiringStock
}

// IndicatorMode returns ""; CCV Shop has no indicator-style tracking, so no
// delivery date messages are attached.
func (s *Source) IndicatorMode() string {
	return ""
}

func mapProduct(p apiProduct) models.RawProduct {
	raw := models.RawProduct{
		ID:          strconv.FormatInt(p.ID, 10),
		Title:       p.Name,
		Description: p.Description,
		URLSlug:     p.Slug,
	}
	if p.Brand != nil && p.Brand.Name != "" {
		raw.Brand = &models.RawBrand{Title: p.Brand.Name}
	}

	for _, v := range p.Variants {
		tracking := "normal"
		if v.AllowBackorder {
			tracking = stockTrackingBackorder
		}
		options := make([]models.RawOption, 0, len(v.Options))
		for _, opt := range v.Options {
			options = append(options, models.RawOption{Name: opt.Name, Value: opt.Value})
		}
		raw.Variants = append(raw.Variants, models.RawVariant{
			ID:            strconv.FormatInt(v.ID, 10),
			StockLevel:    v.Stock,
			StockTracking: tracking,
			PriceIncl:     v.Price,
			OldPriceIncl:  v.OldPrice,
			EAN:           v.EAN,
			ArticleCode:   v.SKU,
			Weight:        v.Weight,
			Options:       options,
		})
	}

	// The category path arrives root-first already; keep it as-is.
	for _, c := range p.Categories {
		raw.Categories = append(raw.Categories, models.RawCategory{
			ID:      c.ID,
			Title:   c.Name,
			Enabled: c.Enabled,
		})
	}

	photos := make([]apiPhoto, len(p.Photos))
	copy(photos, p.Photos)
	sort.SliceStable(photos, func(i, j int) bool { return photos[i].SortOrder < photos[j].SortOrder })
	for _, photo := range photos {
		raw.Images = append(raw.Images, models.RawImage{Src: photo.FileURL, SortOrder: photo.SortOrder})
	}
	return raw
}
