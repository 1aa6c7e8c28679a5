// Package scancache caches stable classpath sweeps with sturdyc.
//
// Cache is a registry store: the registry owns the single instance and ClearAll drops
// every cached sweep. Scanners created by Wrap share that instance and namespace their
// keys by the digest of the universe they sweep.
package scancache

import (
	"context"
	"fmt"
	"sync/atomic"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/viccon/sturdyc"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache holds cached sweep results keyed by universe, query kind and argument.
type Cache struct {
	client *sturdyc.Client[any]
}

// New creates a Cache sized by cfg.
func New(cfg domain.CacheSettings) (*Cache, error) {
	if err := validateSettings(cfg); err != nil {
		return nil, zerr.Wrap(err, domain.ErrInvalidSettings.Error())
	}
	return &Cache{
		client: sturdyc.New[any](cfg.Capacity, cfg.NumShards, cfg.TTL, cfg.EvictionPercentage),
	}, nil
}

// Init sizes a default-constructed Cache with the default settings.
func (c *Cache) Init() error {
	fresh, err := New(domain.DefaultCacheSettings())
	if err != nil {
		return err
	}
	*c = *fresh
	return nil
}

// Clear drops every cached sweep.
func (c *Cache) Clear() {
	for _, key := range c.client.ScanKeys() {
		c.client.Delete(key)
	}
}

// Len returns the number of cached sweeps.
func (c *Cache) Len() int {
	return c.client.Size()
}

// Wrap returns a scanner that serves sweeps of next from the cache.
// namespace must change whenever the universe behind next changes.
func (c *Cache) Wrap(next ports.StableScanner, namespace uint64) *Scanner {
	return &Scanner{cache: c, next: next, namespace: fmt.Sprintf("%016x", namespace)}
}

func validateSettings(cfg domain.CacheSettings) error {
	return validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&cfg.NumShards, validation.Required, validation.Min(1), validation.Max(cfg.Capacity)),
		validation.Field(&cfg.TTL, validation.Required),
		validation.Field(&cfg.EvictionPercentage, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

// fetch returns the cached value for key or runs fn. Errors are never cached.
// A hit marks the vertex carried by ctx, if any, as cached.
func fetch[V any](ctx context.Context, c *Cache, key string, fn func(context.Context) (V, error)) (V, error) {
	var missed atomic.Bool
	v, err := sturdyc.GetOrFetch(ctx, c.client, key, func(ctx context.Context) (V, error) {
		missed.Store(true)
		return fn(ctx)
	})
	if err == nil && !missed.Load() {
		if vertex, ok := ports.VertexFromContext(ctx); ok {
			vertex.Cached()
		}
	}
	return v, err
}
