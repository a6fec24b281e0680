package lightspeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"catalogfeed_api/config"
	"catalogfeed_api/internal/catalog/cache"
	"catalogfeed_api/pkg/logger"
)

const perPageMax = 250

// Client pulls the catalog from the Lightspeed eCom REST API using basic
// auth, paging through /catalog.json. A keyed cache with a short TTL sits in
// front of the full-catalog fetch so back-to-back refreshes don't hammer the
// API.
type Client struct {
	baseURL   string
	apiKey    string
	apiSecret string
	perPage   int
	cacheTTL  time.Duration

	http    *http.Client
	limiter *rate.Limiter
	cache   cache.Store
	logger  *logger.BaseLogger
}

func NewClient(cfg config.SourceConfig, store cache.Store, cacheTTL time.Duration, logWriter io.Writer) *Client {
	perPage := cfg.PageSize
	if perPage <= 0 || perPage > perPageMax {
		perPage = perPageMax
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		perPage:   perPage,
		cacheTTL:  cacheTTL,
		http:      &http.Client{Timeout: 100 * time.Second},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		cache:     store,
		logger:    logger.NewLogger(logWriter, "[LightspeedClient]"),
	}
}

func (c *Client) getProductCount(ctx context.Context) (int, error) {
	var count countResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/catalog/count.json", c.baseURL), &count); err != nil {
		return 0, fmt.Errorf("fetching product count: %w", err)
	}
	c.logger.Log("total products: %d", count.Count)
	return count.Count, nil
}

func (c *Client) getAllProducts(ctx context.Context) ([]apiProduct, error) {
	cacheKey := fmt.Sprintf("%s-gmc-feed-all-products", c.apiKey)
	if cached, ok := c.cache.Get(ctx, cacheKey); ok {
		var products []apiProduct
		if err := json.Unmarshal(cached, &products); err == nil {
			c.logger.Log("serving %d products from cache", len(products))
			return products, nil
		}
	}

	totalCount, err := c.getProductCount(ctx)
	if err != nil {
		return nil, err
	}
	totalPages := (totalCount + c.perPage - 1) / c.perPage

	products := make([]apiProduct, 0, totalCount)
	for page := 1; page <= totalPages; page++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		url := fmt.Sprintf("%s/catalog.json?limit=%d&page=%d", c.baseURL, c.perPage, page)
		var response catalogResponse
		if err := c.getJSON(ctx, url, &response); err != nil {
			return nil, fmt.Errorf("fetching page %d/%d: %w", page, totalPages, err)
		}
		products = append(products, response.Products...)
		c.logger.Log("fetched page %d/%d", page, totalPages)
	}
	c.logger.Log("successfully retrieved %d products", len(products))

	if encoded, err := json.Marshal(products); err == nil {
		c.cache.Set(ctx, cacheKey, encoded, c.cacheTTL)
	}
	return products, nil
}

// getVisibleProducts filters the catalog down to visible products only.
func (c *Client) getVisibleProducts(ctx context.Context) ([]apiProduct, error) {
	products, err := c.getAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]apiProduct, 0, len(products))
	for _, p := range products {
		if p.IsVisible {
			visible = append(visible, p)
		}
	}
	c.logger.Log("found %d visible products", len(visible))
	return visible, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
