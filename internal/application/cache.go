package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"careerpath/internal/ports"
)

// CacheVersion is the schema version written into every cache envelope.
// Bump it when a cached payload changes shape.
const CacheVersion = 1

type envelope struct {
	Version int             `json:"v"`
	Data    json.RawMessage `json:"data"`
}

// Cache stores JSON values in a KVStore under a versioned envelope.
// Reads never fail: an absent, stale or unreadable entry is a miss.
type Cache struct {
	store   ports.KVStore
	version int
	ttl     time.Duration
	log     *zap.Logger
}

// NewCache creates a Cache. A zero ttl keeps entries until deleted.
func NewCache(store ports.KVStore, ttl time.Duration, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		store:   store,
		version: CacheVersion,
		ttl:     ttl,
		log:     log,
	}
}

// WithVersion returns a copy of the cache reading and writing another schema version
func (c *Cache) WithVersion(version int) *Cache {
	cp := *c
	cp.version = version
	return &cp
}

// GetJSON decodes the entry at key into v and reports whether it was a hit
func (c *Cache) GetJSON(ctx context.Context, key string, v any) bool {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			c.log.Debug("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.log.Debug("cache entry malformed", zap.String("key", key), zap.Error(err))
		return false
	}
	if env.Version != c.version {
		c.log.Debug("cache entry version mismatch",
			zap.String("key", key),
			zap.Int("got", env.Version),
			zap.Int("want", c.version))
		return false
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		c.log.Debug("cache payload malformed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// PutJSON encodes v and stores it at key
func (c *Cache) PutJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	raw, err := json.Marshal(envelope{Version: c.version, Data: data})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.store.Delete(ctx, key); err != nil && !errors.Is(err, ports.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the keys under prefix when the underlying store supports it
func (c *Cache) Keys(ctx context.Context, prefix string) ([]string, error) {
	lister, ok := c.store.(ports.KeyLister)
	if !ok {
		return nil, fmt.Errorf("store %T cannot list keys", c.store)
	}
	return lister.Keys(ctx, prefix)
}
