package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SettlementLock implements ports.SettlementLock with SET NX. The TTL bounds
// how long a crashed holder can block an order.
type SettlementLock struct {
	client goredis.Cmdable
	prefix string
}

// NewSettlementLock creates a new Redis-backed settlement lock.
func NewSettlementLock(client goredis.Cmdable) *SettlementLock {
	return &SettlementLock{
		client: client,
		prefix: "lock:settlement:",
	}
}

// Acquire returns true if the lock was taken, false if another holder has it.
func (l *SettlementLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis settlement lock: %w", err)
	}
	return result == "OK", nil
}

func (l *SettlementLock) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis settlement unlock: %w", err)
	}
	return nil
}
