package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"catalogfeed_api/internal/catalog/sources"
	"catalogfeed_api/internal/feed/build"
	"catalogfeed_api/internal/feed/render"
	"catalogfeed_api/internal/feed/storage"
	"catalogfeed_api/metrics"
	"catalogfeed_api/pkg/logger"
)

// Feed template files and the names the rendered feeds are stored under.
const (
	TemplateShoppingOnlineInventoryFeed = "TEMPLATE_gmc_shopping_online_inventory.xml"
	ShoppingOnlineInventoryFeedFilename = "gmc_shopping_online_inventory_feed.xml"
	TemplateLocalListingsFeed           = "TEMPLATE_gmc_local_listings.xml"
	LocalListingsFeedFilename           = "gmc_local_listings_feed.xml"
)

// FeedGenerator runs the refresh cycle: fetch the visible catalog, build the
// canonical record set, render both feeds, persist both. Each refresh
// recomputes everything from freshly fetched raw data.
type FeedGenerator struct {
	source  sources.Source
	builder *build.Builder
	engine  *render.Engine
	store   storage.Store
	logger  *logger.BaseLogger
}

func NewFeedGenerator(source sources.Source, builder *build.Builder, engine *render.Engine, store storage.Store, logWriter io.Writer) *FeedGenerator {
	return &FeedGenerator{
		source:  source,
		builder: builder,
		engine:  engine,
		store:   store,
		logger:  logger.NewLogger(logWriter, "[FeedGenerator]"),
	}
}

// RefreshFeedFiles rebuilds and persists both feed files. On any error
// nothing is written: the stored feeds keep their last-known-good content.
func (g *FeedGenerator) RefreshFeedFiles(ctx context.Context) error {
	start := time.Now()
	products, records, err := g.refresh(ctx)
	metrics.RecordRefresh(err, time.Since(start), products, records)
	return err
}

func (g *FeedGenerator) refresh(ctx context.Context) (int, int, error) {
	products, err := g.source.FetchVisibleProducts(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("fetching catalog: %w", err)
	}

	records, err := g.builder.Build(products)
	if err != nil {
		return len(products), 0, err
	}

	// Render both feeds before writing either, so a template failure
	// cannot leave the two files out of step.
	shoppingFeed, err := g.engine.Render(TemplateShoppingOnlineInventoryFeed, records)
	if err != nil {
		return len(products), len(records), err
	}
	g.logger.Log("shopping online inventory feed generated successfully")

	localFeed, err := g.engine.Render(TemplateLocalListingsFeed, records)
	if err != nil {
		return len(products), len(records), err
	}
	g.logger.Log("local listings feed generated successfully")

	if err := g.store.Save(ctx, ShoppingOnlineInventoryFeedFilename, []byte(shoppingFeed)); err != nil {
		return len(products), len(records), fmt.Errorf("saving %s: %w", ShoppingOnlineInventoryFeedFilename, err)
	}
	if err := g.store.Save(ctx, LocalListingsFeedFilename, []byte(localFeed)); err != nil {
		return len(products), len(records), fmt.Errorf("saving %s: %w", LocalListingsFeedFilename, err)
	}

	g.logger.Log("successfully generated feed file: %s", ShoppingOnlineInventoryFeedFilename)
	g.logger.Log("successfully generated feed file: %s", LocalListingsFeedFilename)
	return len(products), len(records), nil
}

// ReadFeedFile returns the stored content of one feed file.
func (g *FeedGenerator) ReadFeedFile(ctx context.Context, filename string) ([]byte, error) {
	return g.store.Read(ctx, filename)
}
