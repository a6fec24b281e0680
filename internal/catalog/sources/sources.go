// Package sources selects the upstream catalog adapter for the configured
// platform kind. The record builder receives only the capability set; it
// never learns which platform it is fed by.
package sources

import (
	"context"
	"fmt"
	"io"
	"time"

	"catalogfeed_api/config"
	"catalogfeed_api/internal/catalog/cache"
	"catalogfeed_api/internal/catalog/models"
	"catalogfeed_api/internal/catalog/sources/ccvshop"
	"catalogfeed_api/internal/catalog/sources/lightspeed"
	"catalogfeed_api/internal/feed/build"
)

const (
	KindLightspeed = "lightspeed"
	KindCCVShop    = "ccvshop"
)

// Adapter supplies the visible raw catalog for one refresh cycle. Pagination,
// auth and caching are adapter concerns.
type Adapter interface {
	FetchVisibleProducts(ctx context.Context) ([]models.RawProduct, error)
}

// Source bundles an adapter with its capability set.
type Source interface {
	Adapter
	build.SourceCapabilities
}

// New constructs the source for the configured kind. An unknown kind is a
// configuration error and fails fast.
func New(cfg config.SourceConfig, store cache.Store, cacheTTL time.Duration, logWriter io.Writer) (Source, error) {
	switch cfg.Kind {
	case KindLightspeed:
		return lightspeed.NewSource(cfg, store, cacheTTL, logWriter), nil
	case KindCCVShop:
		return ccvshop.NewSource(cfg, store, cacheTTL, logWriter), nil
	default:
		return nil, fmt.Errorf("unknown catalog source kind %q", cfg.Kind)
	}
}
