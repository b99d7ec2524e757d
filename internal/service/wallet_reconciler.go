package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"

	"github.com/rs/zerolog"
)

// ReconcilerConfig tunes the wallet issuance retry loop.
type ReconcilerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	BaseBackoff  time.Duration
	MaxBackoff   time.Duration
	Lease        time.Duration
}

func (c ReconcilerConfig) withDefaults() ReconcilerConfig {
	if c.PollInterval <= 0 {
		c.PollInterval = 15 * time.Second
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 20
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 8
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 30 * time.Second
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = time.Hour
	}
	if c.Lease <= 0 {
		c.Lease = 2 * time.Minute
	}
	return c
}

// WalletReconciler retries wallet issuance for confirmed orders whose
// instances were not all created during settlement. Only the missing
// instances are issued, so a retry after partial success does not
// over-issue.
type WalletReconciler struct {
	outbox  ports.WalletOutboxRepository
	wallets ports.WalletVoucherRepository
	issuer  ports.WalletIssuer
	cfg     ReconcilerConfig
	now     func() time.Time
	log     zerolog.Logger
}

func NewWalletReconciler(
	outbox ports.WalletOutboxRepository,
	wallets ports.WalletVoucherRepository,
	issuer ports.WalletIssuer,
	cfg ReconcilerConfig,
	log zerolog.Logger,
) *WalletReconciler {
	return &WalletReconciler{
		outbox:  outbox,
		wallets: wallets,
		issuer:  issuer,
		cfg:     cfg.withDefaults(),
		now:     time.Now,
		log:     log,
	}
}

// Run polls until ctx is cancelled.
func (r *WalletReconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
			r.log.Error().Err(err).Msg("wallet reconciliation pass failed")
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce claims one batch of due tasks and processes it. It returns the
// number of tasks completed.
func (r *WalletReconciler) RunOnce(ctx context.Context) (int, error) {
	tasks, err := r.outbox.ClaimDue(ctx, r.cfg.BatchSize, r.now().UTC(), r.cfg.Lease)
	if err != nil {
		return 0, fmt.Errorf("claim wallet issuance tasks: %w", err)
	}

	done := 0
	for i := range tasks {
		if ctx.Err() != nil {
			break
		}
		if r.process(ctx, &tasks[i]) {
			done++
		}
	}
	if len(tasks) > 0 {
		r.log.Info().Int("claimed", len(tasks)).Int("completed", done).Msg("wallet reconciliation pass")
	}
	return done, nil
}

func (r *WalletReconciler) process(ctx context.Context, t *domain.WalletIssuanceTask) bool {
	err := r.issueMissing(ctx, t)
	if err == nil {
		if err := r.outbox.MarkDone(ctx, t.ID); err != nil {
			r.log.Error().Err(err).Int64("order_id", t.OrderID).Msg("could not mark wallet issuance done")
			return false
		}
		return true
	}

	attempts := t.Attempts + 1
	if attempts >= r.cfg.MaxAttempts {
		r.log.Error().
			Err(err).
			Int64("order_id", t.OrderID).
			Int("attempts", attempts).
			Str("side_effect", "wallet_issuance").
			Msg("wallet issuance abandoned, manual reconciliation required")
		if err := r.outbox.MarkFailed(ctx, t.ID, attempts, err.Error()); err != nil {
			r.log.Error().Err(err).Int64("order_id", t.OrderID).Msg("could not mark wallet issuance failed")
		}
		return false
	}

	next := r.now().UTC().Add(domain.BackoffAfter(attempts, r.cfg.BaseBackoff, r.cfg.MaxBackoff))
	r.log.Warn().
		Err(err).
		Int64("order_id", t.OrderID).
		Int("attempts", attempts).
		Time("next_attempt_at", next).
		Msg("wallet issuance retry scheduled")
	if err := r.outbox.Reschedule(ctx, t.ID, attempts, err.Error(), next); err != nil {
		r.log.Error().Err(err).Int64("order_id", t.OrderID).Msg("could not reschedule wallet issuance")
	}
	return false
}

func (r *WalletReconciler) issueMissing(ctx context.Context, t *domain.WalletIssuanceTask) error {
	have, err := r.wallets.CountByOrder(ctx, t.OrderID)
	if err != nil {
		return fmt.Errorf("count issued vouchers: %w", err)
	}
	missing := t.Quantity - have
	if missing <= 0 {
		return nil
	}

	_, err = r.issuer.CreateInstances(ctx, ports.IssueRequest{
		OrderID:      t.OrderID,
		UserID:       t.UserID,
		VoucherID:    t.VoucherID,
		MerchantID:   t.MerchantID,
		Denomination: t.Denomination,
		Quantity:     missing,
	})
	if err != nil {
		return fmt.Errorf("issue %d missing vouchers: %w", missing, err)
	}
	r.log.Info().Int64("order_id", t.OrderID).Int("issued", missing).Msg("missing wallet vouchers issued")
	return nil
}
