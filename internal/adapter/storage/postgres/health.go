package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const healthTimeout = 2 * time.Second

// HealthCheck reports PostgreSQL as healthy once it answers and the
// settlement schema is in place.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var migrated bool
	err := h.pool.QueryRow(ctx, `SELECT to_regclass('public.wallet_issuance_outbox') IS NOT NULL`).Scan(&migrated)
	if err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	if !migrated {
		return errors.New("schema not migrated")
	}
	return nil
}

func (h *HealthCheck) Name() string { return "postgresql" }
