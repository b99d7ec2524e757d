package service

import (
	"context"
	"fmt"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"

	"github.com/rs/zerolog"
)

const defaultSuspensionReason = "Merchant suspended"

// SuspensionHandler reacts to merchant suspension events: payouts are put
// on hold and the merchant's live vouchers are paused.
type SuspensionHandler struct {
	payouts  ports.PayoutService
	vouchers ports.VoucherRepository
	log      zerolog.Logger
}

func NewSuspensionHandler(payouts ports.PayoutService, vouchers ports.VoucherRepository, log zerolog.Logger) *SuspensionHandler {
	return &SuspensionHandler{payouts: payouts, vouchers: vouchers, log: log}
}

// HandleMerchantSuspended is registered for MERCHANT_SUSPENDED events.
// Undecodable events are dropped; storage errors are returned so the
// consumer retries. Both steps are idempotent.
func (h *SuspensionHandler) HandleMerchantSuspended(ctx context.Context, evt domain.Event) error {
	p, err := domain.DecodePayload[domain.MerchantSuspendedPayload](evt)
	if err != nil {
		h.log.Warn().Err(err).Str("event_id", evt.EventID).Msg("dropping malformed merchant event")
		return nil
	}
	if p.MerchantID <= 0 {
		h.log.Warn().Str("event_id", evt.EventID).Msg("dropping merchant event without merchant_id")
		return nil
	}
	if p.Reason == "" {
		p.Reason = defaultSuspensionReason
	}

	hold, err := h.payouts.CreateHold(ctx, p.MerchantID, p.Reason)
	if err != nil {
		return fmt.Errorf("hold payouts for merchant %d: %w", p.MerchantID, err)
	}

	paused, err := h.vouchers.PauseActiveByMerchant(ctx, p.MerchantID)
	if err != nil {
		return fmt.Errorf("pause vouchers for merchant %d: %w", p.MerchantID, err)
	}

	h.log.Info().
		Int64("merchant_id", p.MerchantID).
		Int64("hold_id", hold.ID).
		Int64("vouchers_paused", paused).
		Msg("merchant suspension applied")
	return nil
}
