package lightspeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"catalogfeed_api/config"
	"catalogfeed_api/internal/catalog/cache"
)

// memoryCache is an in-process cache.Store for tests.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	return value, ok
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func catalogServer(t *testing.T, products []apiProduct, perPage int, requests *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		if _, _, ok := r.BasicAuth(); !ok {
			t.Error("request is missing basic auth")
		}
		switch r.URL.Path {
		case "/catalog/count.json":
			fmt.Fprintf(w, `{"count": %d}`, len(products))
		case "/catalog.json":
			page := 1
			fmt.Sscanf(r.URL.Query().Get("page"), "%d", &page)
			start := (page - 1) * perPage
			end := start + perPage
			if start > len(products) {
				start = len(products)
			}
			if end > len(products) {
				end = len(products)
			}
			json.NewEncoder(w).Encode(catalogResponse{Products: products[start:end]})
		default:
			http.NotFound(w, r)
		}
	}))
}

func testSourceConfig(baseURL string, pageSize int) config.SourceConfig {
	return config.SourceConfig{
		Kind:              "lightspeed",
		BaseURL:           baseURL,
		APIKey:            "key",
		APISecret:         "secret",
		PageSize:          pageSize,
		RequestsPerSecond: 1000,
	}
}

func TestGetAllProductsPages(t *testing.T) {
	products := []apiProduct{
		{ID: 1, IsVisible: true},
		{ID: 2, IsVisible: true},
		{ID: 3, IsVisible: false},
	}
	var requests int
	server := catalogServer(t, products, 2, &requests)
	defer server.Close()

	client := NewClient(testSourceConfig(server.URL, 2), cache.NewNoop(), time.Second, io.Discard)

	got, err := client.getAllProducts(context.Background())
	if err != nil {
		t.Fatalf("getAllProducts: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d products, want 3", len(got))
	}
	// one count request plus two pages
	if requests != 3 {
		t.Errorf("server saw %d requests, want 3", requests)
	}
}

func TestGetVisibleProductsFilters(t *testing.T) {
	products := []apiProduct{
		{ID: 1, IsVisible: true},
		{ID: 2, IsVisible: false},
		{ID: 3, IsVisible: true},
	}
	var requests int
	server := catalogServer(t, products, 250, &requests)
	defer server.Close()

	client := NewClient(testSourceConfig(server.URL, 0), cache.NewNoop(), time.Second, io.Discard)

	got, err := client.getVisibleProducts(context.Background())
	if err != nil {
		t.Fatalf("getVisibleProducts: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("visible products = %+v", got)
	}
}

func TestGetAllProductsServedFromCache(t *testing.T) {
	var requests int
	server := catalogServer(t, nil, 250, &requests)
	defer server.Close()

	store := newMemoryCache()
	cached, err := json.Marshal([]apiProduct{{ID: 42, IsVisible: true}})
	if err != nil {
		t.Fatal(err)
	}
	store.Set(context.Background(), "key-gmc-feed-all-products", cached, time.Second)

	client := NewClient(testSourceConfig(server.URL, 250), store, time.Second, io.Discard)

	got, err := client.getAllProducts(context.Background())
	if err != nil {
		t.Fatalf("getAllProducts: %v", err)
	}
	if len(got) != 1 || got[0].ID != 42 {
		t.Errorf("cached products = %+v", got)
	}
	if requests != 0 {
		t.Errorf("server saw %d requests, want 0 on cache hit", requests)
	}
}

func TestGetAllProductsPopulatesCache(t *testing.T) {
	products := []apiProduct{{ID: 7, IsVisible: true}}
	var requests int
	server := catalogServer(t, products, 250, &requests)
	defer server.Close()

	store := newMemoryCache()
	client := NewClient(testSourceConfig(server.URL, 250), store, time.Second, io.Discard)

	if _, err := client.getAllProducts(context.Background()); err != nil {
		t.Fatalf("getAllProducts: %v", err)
	}
	if _, ok := store.Get(context.Background(), "key-gmc-feed-all-products"); !ok {
		t.Error("cache was not populated after a fetch")
	}
}

func TestGetJSONNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(testSourceConfig(server.URL, 250), cache.NewNoop(), time.Second, io.Discard)

	if _, err := client.getProductCount(context.Background()); err == nil {
		t.Error("expected an error on a non-200 response")
	}
}
