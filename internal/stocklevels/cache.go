package stocklevels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "stocklevels:warehouse:"

// Cache holds normalized stock rows per warehouse in redis. The worker's
// warmup task populates it; the read path serves cached rows and falls
// back to the live backend on a miss. Nil receiver and nil client both
// degrade to a miss, so the gateway runs without redis too.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Put stores the normalized rows for one warehouse.
func (c *Cache) Put(ctx context.Context, warehouseID string, rows []StockLevel) error {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode stock rows: %w", err)
	}
	if err := c.client.Set(ctx, cacheKeyPrefix+warehouseID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache stock rows: %w", err)
	}
	return nil
}

// Get loads the cached rows for one warehouse; ok is false on a miss.
func (c *Cache) Get(ctx context.Context, warehouseID string) ([]StockLevel, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, cacheKeyPrefix+warehouseID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read stock cache: %w", err)
	}
	var rows []StockLevel
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, false, fmt.Errorf("decode stock cache: %w", err)
	}
	return rows, true, nil
}

// Invalidate drops the cached rows for one warehouse, e.g. after an
// upsert changed a quantity.
func (c *Cache) Invalidate(ctx context.Context, warehouseID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, cacheKeyPrefix+warehouseID).Err()
}
