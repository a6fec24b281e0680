// Package cache provides the keyed, time-bounded raw-catalog cache that sits
// in front of the source adapters. Caching lives here on purpose: the record
// builder stays a pure function and never retains state between refreshes.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"catalogfeed_api/config"
)

// Store is a byte cache with per-key expiry. Get reports a miss with ok=false
// and never fails the caller: a broken cache degrades to fetching upstream.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type redisStore struct {
	client *redis.Client
}

// NewRedis builds a redis-backed Store from the app config.
func NewRedis(cfg config.RedisConfig) Store {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		DB:   0,
	})
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		// Both redis.Nil and cache outages degrade to a miss.
		return nil, false
	}
	return value, true
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	s.client.Set(ctx, key, value, ttl)
}

type noopStore struct{}

// NewNoop returns a Store that never hits; used when caching is disabled.
func NewNoop() Store { return noopStore{} }

func (noopStore) Get(context.Context, string) ([]byte, bool)         { return nil, false }
func (noopStore) Set(context.Context, string, []byte, time.Duration) {}
