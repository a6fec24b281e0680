// Package app wires the feed generator together and serves its HTTP entry
// points.
package app

import (
	"io"
	"net/http"
	"time"

	"catalogfeed_api/config"
	"catalogfeed_api/internal/catalog/cache"
	"catalogfeed_api/internal/catalog/sources"
	"catalogfeed_api/internal/feed/app/web"
	"catalogfeed_api/internal/feed/app/web/handlers"
	"catalogfeed_api/internal/feed/build"
	"catalogfeed_api/internal/feed/model"
	"catalogfeed_api/internal/feed/render"
	"catalogfeed_api/internal/feed/storage"
	"catalogfeed_api/pkg/dbconnect"
	"catalogfeed_api/pkg/dbconnect/postgres"
	"catalogfeed_api/pkg/logger"
	"catalogfeed_api/pkg/middleware"
)

type FeedServer struct {
	cfg       *config.AppConfig
	logWriter io.Writer
	logger    *logger.BaseLogger
}

func NewFeedServer(cfg *config.AppConfig, logWriter io.Writer) *FeedServer {
	return &FeedServer{
		cfg:       cfg,
		logWriter: logWriter,
		logger:    logger.NewLogger(logWriter, "[FeedServer]"),
	}
}

// Run builds the dependency graph from the config and serves until the
// listener fails. Construction is fail-fast: an unknown source kind or
// storage backend aborts startup.
func (s *FeedServer) Run() error {
	cacheStore := cache.NewNoop()
	if s.cfg.Redis.Enabled {
		cacheStore = cache.NewRedis(s.cfg.Redis)
	}
	cacheTTL := time.Duration(s.cfg.Redis.TTLSeconds) * time.Second

	source, err := sources.New(s.cfg.Source, cacheStore, cacheTTL, s.logWriter)
	if err != nil {
		return err
	}

	var connector dbconnect.DbConnector
	if s.cfg.Storage.Backend == "postgres" {
		connector = postgres.NewPgConnector(&s.cfg.Postgres)
	}
	store, err := storage.New(s.cfg.Storage, connector, s.logWriter)
	if err != nil {
		return err
	}

	engine, err := render.NewEngine(s.cfg.Shop, s.cfg.Server.TemplatesDir, s.logWriter)
	if err != nil {
		return err
	}

	builder := build.NewBuilder(source, s.cfg.Shop.Domain, model.DeliveryDateMessage{
		InStock:    s.cfg.Delivery.InStockMessage,
		OutOfStock: s.cfg.Delivery.OutOfStockMessage,
	}, s.logWriter)

	generator := NewFeedGenerator(source, builder, engine, store, s.logWriter)

	routes := &web.Routes{
		Refresh:  handlers.NewRefreshHandler(generator, s.logWriter),
		Shopping: handlers.NewFeedHandler(generator, ShoppingOnlineInventoryFeedFilename),
		Local:    handlers.NewFeedHandler(generator, LocalListingsFeedFilename),
	}

	mux := http.NewServeMux()
	routes.Register(mux)

	s.logger.Log("listening on %s", s.cfg.Server.Addr)
	return http.ListenAndServe(s.cfg.Server.Addr, middleware.PrometheusMiddleware(mux))
}
