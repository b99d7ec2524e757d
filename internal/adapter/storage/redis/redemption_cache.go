package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedemptionCache implements ports.RedemptionCache. It holds the JSON of
// completed redemptions keyed by voucher code so repeat scans return the
// original result without touching the database.
type RedemptionCache struct {
	client goredis.Cmdable
	prefix string
}

// NewRedemptionCache creates a new Redis-backed redemption cache.
func NewRedemptionCache(client goredis.Cmdable) *RedemptionCache {
	return &RedemptionCache{
		client: client,
		prefix: "redemption:",
	}
}

// Get returns nil, nil if the voucher code has no cached redemption.
func (c *RedemptionCache) Get(ctx context.Context, voucherCode string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+voucherCode).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis redemption get: %w", err)
	}
	return val, nil
}

func (c *RedemptionCache) Set(ctx context.Context, voucherCode string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+voucherCode, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis redemption set: %w", err)
	}
	return nil
}
