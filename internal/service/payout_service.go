package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"

	"github.com/rs/zerolog"
)

// PayoutServiceImpl implements ports.PayoutService.
type PayoutServiceImpl struct {
	repo ports.PayoutHoldRepository
	log  zerolog.Logger
}

func NewPayoutService(repo ports.PayoutHoldRepository, log zerolog.Logger) *PayoutServiceImpl {
	return &PayoutServiceImpl{repo: repo, log: log}
}

// CreateHold places an ACTIVE payout hold on a merchant. If one is already
// active it is returned unchanged, including its original reason.
func (s *PayoutServiceImpl) CreateHold(ctx context.Context, merchantID int64, reason string) (*domain.PayoutHold, error) {
	if merchantID <= 0 {
		return nil, apperror.Validation("merchant_id must be positive")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperror.Validation("reason is required")
	}

	existing, err := s.repo.GetActiveByMerchant(ctx, merchantID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get active hold: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	hold := &domain.PayoutHold{MerchantID: merchantID, Reason: reason}
	created, err := s.repo.CreateIfAbsent(ctx, hold)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create hold: %w", err))
	}
	if !created {
		// Lost the race to a concurrent caller.
		existing, err = s.repo.GetActiveByMerchant(ctx, merchantID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("get active hold: %w", err))
		}
		if existing == nil {
			return nil, apperror.InternalError(fmt.Errorf("payout hold for merchant %d vanished", merchantID))
		}
		return existing, nil
	}

	s.log.Warn().
		Int64("merchant_id", merchantID).
		Str("reason", reason).
		Int64("hold_id", hold.ID).
		Msg("payout hold created")
	return hold, nil
}

func (s *PayoutServiceImpl) ListActiveHolds(ctx context.Context) ([]domain.PayoutHold, error) {
	holds, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list active holds: %w", err))
	}
	return holds, nil
}
