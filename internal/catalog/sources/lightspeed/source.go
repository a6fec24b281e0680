// Package lightspeed adapts the Lightspeed eCom catalog shape: free-text
// variant titles, depth/sortOrder category collections and the
// disabled/indicator stock tracking vocabulary.
package lightspeed

import (
	"context"
	"io"
	"time"

	"catalogfeed_api/config"
	"catalogfeed_api/internal/catalog/cache"
	"catalogfeed_api/internal/catalog/models"
	"catalogfeed_api/internal/feed/model"
	"catalogfeed_api/internal/feed/normalize"
)

// Stock tracking modes under which Lightspeed products are sellable without
// stock: tracking disabled entirely, or the stock level used as an indicator
// only (preorders allowed).
var modesNotRequiringStock = []string{"disabled", "indicator"}

// Source is the Lightspeed catalog adapter plus its capability set.
type Source struct {
	client *Client
}

func NewSource(cfg config.SourceConfig, store cache.Store, cacheTTL time.Duration, logWriter io.Writer) *Source {
	return &Source{client: NewClient(cfg, store, cacheTTL, logWriter)}
}

// FetchVisibleProducts returns the visible catalog mapped to the raw model,
// in API order.
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
	return normalize.ParseVariantTitle(v.Title)
}

func (s *Source) BuildCategoryTree(p *models.RawProduct) []model.CategoryNode {
	return normalize.BuildDepthTree(p.Categories)
}

func (s *Source) ModesNotRequiringStock() []string {
	return modesNotRequiringStock
}

func (s *Source) IndicatorMode() string {
	return "indicator"
}
