package sources

import (
	"io"
	"testing"
	"time"

	"catalogfeed_api/config"
	"catalogfeed_api/internal/catalog/cache"
	"catalogfeed_api/internal/catalog/sources/ccvshop"
	"catalogfeed_api/internal/catalog/sources/lightspeed"
)

func TestNewSelectsAdapter(t *testing.T) {
	store := cache.NewNoop()

	source, err := New(config.SourceConfig{Kind: KindLightspeed}, store, time.Second, io.Discard)
	if err != nil {
		t.Fatalf("New(lightspeed): %v", err)
	}
	if _, ok := source.(*lightspeed.Source); !ok {
		t.Errorf("source is %T, want *lightspeed.Source", source)
	}

	source, err = New(config.SourceConfig{Kind: KindCCVShop}, store, time.Second, io.Discard)
	if err != nil {
		t.Fatalf("New(ccvshop): %v", err)
	}
	if _, ok := source.(*ccvshop.Source); !ok {
		t.Errorf("source is %T, want *ccvshop.Source", source)
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New(config.SourceConfig{Kind: "shopify"}, cache.NewNoop(), time.Second, io.Discard); err == nil {
		t.Error("expected an error for an unknown source kind")
	}
}
