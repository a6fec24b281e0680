package ccvshop

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

const pageLimit = 100

// Client pulls the catalog from the CCV Shop REST API, paging with
// start/limit until a short page signals the end. Like the lightspeed
// client, a short-TTL keyed cache fronts the full-catalog fetch.
type Client struct {
	baseURL   string
	apiKey    string
	apiSecret string
	cacheTTL  time.Duration

	http    *http.Client
	limiter *rate.Limiter
	cache   cache.Store
	logger  *logger.BaseLogger
}

func NewClient(cfg config.SourceConfig, store cache.Store, cacheTTL time.Duration, logWriter io.Writer) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		cacheTTL:  cacheTTL,
		http:      &http.Client{Timeout: 100 * time.Second},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		cache:     store,
		logger:    logger.NewLogger(logWriter, "[CCVShopClient]"),
	}
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

	var products []apiProduct
	for start := 0; ; start += pageLimit {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		url := fmt.Sprintf("%s/api/rest/v1/products?start=%d&limit=%d", c.baseURL, start, pageLimit)
		var response productsResponse
		if err := c.getJSON(ctx, url, &response); err != nil {
			return nil, fmt.Errorf("fetching products from %d: %w", start, err)
		}
		products = append(products, response.Items...)
		c.logger.Log("fetched %d products (total %d)", len(response.Items), len(products))

		if len(response.Items) < pageLimit {
			break
		}
	}
	c.logger.Log("successfully retrieved %d products", len(products))

	if encoded, err := json.Marshal(products); err == nil {
		c.cache.Set(ctx, cacheKey, encoded, c.cacheTTL)
	}
	return products, nil
}

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
