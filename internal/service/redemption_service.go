package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const defaultRedemptionCacheTTL = 24 * time.Hour

// RedemptionServiceImpl implements ports.RedemptionService. Idempotency is
// keyed on the voucher code: Redis answers repeat scans first, the unique
// index on redemptions.voucher_code is the durable guard behind it.
type RedemptionServiceImpl struct {
	redemptions ports.RedemptionRepository
	wallets     ports.WalletVoucherRepository
	transactor  ports.DBTransactor
	cache       ports.RedemptionCache
	qr          ports.QRCodec
	events      *eventEmitter
	cacheTTL    time.Duration
	now         func() time.Time
	log         zerolog.Logger
}

// NewRedemptionService creates a new RedemptionServiceImpl. cache, pub and
// notifier may be nil.
func NewRedemptionService(
	redemptions ports.RedemptionRepository,
	wallets ports.WalletVoucherRepository,
	transactor ports.DBTransactor,
	cache ports.RedemptionCache,
	qr ports.QRCodec,
	pub ports.EventPublisher,
	notifier ports.NotificationSender,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *RedemptionServiceImpl {
	if cacheTTL <= 0 {
		cacheTTL = defaultRedemptionCacheTTL
	}
	return &RedemptionServiceImpl{
		redemptions: redemptions,
		wallets:     wallets,
		transactor:  transactor,
		cache:       cache,
		qr:          qr,
		events:      newEventEmitter(pub, notifier, log),
		cacheTTL:    cacheTTL,
		now:         time.Now,
		log:         log,
	}
}

// Redeem consumes a wallet voucher at a merchant. Redeeming a code that was
// already redeemed returns the original record unchanged.
func (s *RedemptionServiceImpl) Redeem(ctx context.Context, req ports.RedeemRequest) (*domain.Redemption, error) {
	code, err := s.resolveCode(req)
	if err != nil {
		return nil, err
	}
	if req.MerchantID <= 0 {
		return nil, apperror.Validation("merchant_id must be positive")
	}

	// Layer 1: Redis
	if rd := s.cached(ctx, code); rd != nil {
		return replay(rd, req.MerchantID)
	}

	// Layer 2: DB
	existing, err := s.redemptions.GetByVoucherCode(ctx, code)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get redemption: %w", err))
	}
	if existing != nil {
		s.remember(ctx, existing)
		return replay(existing, req.MerchantID)
	}

	rd, replayed, err := s.redeemLocked(ctx, code, req)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, rd)
	if replayed {
		return replay(rd, req.MerchantID)
	}

	s.log.Info().
		Str("redemption_code", rd.RedemptionCode).
		Str("voucher_code", rd.VoucherCode).
		Int64("merchant_id", rd.MerchantID).
		Str("amount", rd.Amount.StringFixed(domain.MoneyScale)).
		Msg("voucher redeemed")

	return rd, nil
}

// redeemLocked runs the state checks and writes with the wallet voucher row
// locked. replayed is true when a concurrent call redeemed the code first.
func (s *RedemptionServiceImpl) redeemLocked(ctx context.Context, code string, req ports.RedeemRequest) (*domain.Redemption, bool, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wv, err := s.wallets.GetByCodeForUpdate(ctx, dbTx, code)
	if err != nil {
		return nil, false, lockError("lock wallet voucher", err)
	}
	if wv == nil {
		return nil, false, apperror.ErrNotFound("voucher")
	}

	// The previous holder of the lock may have just redeemed it.
	existing, err := s.redemptions.GetByVoucherCode(ctx, code)
	if err != nil {
		return nil, false, apperror.ErrDatabaseError(fmt.Errorf("get redemption: %w", err))
	}
	if existing != nil {
		return existing, true, nil
	}

	if wv.MerchantID != req.MerchantID {
		return nil, false, apperror.ErrForbidden("voucher belongs to another merchant")
	}
	now := s.now().UTC()
	if !wv.HasValue() {
		return nil, false, apperror.ErrInvalidState(fmt.Sprintf("voucher is %s with no value left", wv.Status))
	}
	if wv.IsExpiredAt(now) {
		return nil, false, apperror.ErrInvalidState("voucher has expired")
	}

	amount, err := redemptionAmount(req.Amount, wv.RemainingValue)
	if err != nil {
		return nil, false, err
	}

	rd := &domain.Redemption{
		RedemptionCode:   newRedemptionCode(),
		WalletVoucherID:  wv.ID,
		VoucherCode:      wv.VoucherCode,
		MerchantID:       req.MerchantID,
		RedeemedByUserID: req.RedeemedByUserID,
		Amount:           amount,
		Location:         req.Location,
		Status:           domain.RedemptionStatusConfirmed,
		RedeemedAt:       now,
	}

	inserted, err := s.redemptions.Insert(ctx, dbTx, rd)
	if err != nil {
		return nil, false, apperror.ErrDatabaseError(fmt.Errorf("insert redemption: %w", err))
	}
	if !inserted {
		_ = dbTx.Rollback(ctx)
		existing, err := s.redemptions.GetByVoucherCode(ctx, code)
		if err != nil {
			return nil, false, apperror.ErrDatabaseError(fmt.Errorf("load concurrent redemption: %w", err))
		}
		if existing == nil {
			return nil, false, apperror.InternalError(fmt.Errorf("redemption of %s missing after conflict", code))
		}
		return existing, true, nil
	}

	// A redemption consumes the whole instance.
	if err := s.wallets.UpdateRemaining(ctx, dbTx, wv.ID, decimal.Zero, domain.WalletVoucherStatusUsed); err != nil {
		return nil, false, apperror.ErrDatabaseError(fmt.Errorf("mark voucher used: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, false, apperror.ErrDatabaseError(fmt.Errorf("commit redemption: %w", err))
	}

	s.events.emit(ctx, domain.TopicRedemptionEvents, domain.EventRedemptionCompleted,
		domain.CorrelationKey(rd.ID), domain.RedemptionEventPayload{
			RedemptionID:    rd.ID,
			RedemptionCode:  rd.RedemptionCode,
			WalletVoucherID: rd.WalletVoucherID,
			VoucherCode:     rd.VoucherCode,
			MerchantID:      rd.MerchantID,
			Amount:          rd.Amount,
			RedeemedAt:      rd.RedeemedAt,
		})
	s.events.notify(ctx, domain.Notification{
		UserID:  wv.UserID,
		Type:    domain.NotificationVoucherRedeemed,
		Title:   "Voucher redeemed",
		Message: fmt.Sprintf("Voucher %s was redeemed for %s.", rd.VoucherCode, rd.Amount.StringFixed(domain.MoneyScale)),
		Data:    map[string]string{"voucher_code": rd.VoucherCode, "redemption_code": rd.RedemptionCode},
	})

	return rd, false, nil
}

// resolveCode picks the voucher code from the request, verifying the QR
// payload when one is given.
func (s *RedemptionServiceImpl) resolveCode(req ports.RedeemRequest) (string, error) {
	code := normalizeCode(req.VoucherCode)
	if req.QRPayload == "" {
		if code == "" {
			return "", apperror.Validation("voucher_code or qr_payload is required")
		}
		return code, nil
	}

	decoded, err := s.qr.Decode(req.QRPayload)
	if err != nil {
		s.log.Warn().Err(err).Int64("merchant_id", req.MerchantID).Msg("rejected qr payload")
		return "", apperror.ErrInvalidQRPayload()
	}
	decoded = normalizeCode(decoded)
	if code != "" && code != decoded {
		return "", apperror.Validation("voucher_code does not match qr_payload")
	}
	return decoded, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// redemptionAmount defaults to the remaining value and rejects amounts
// outside (0, remaining].
func redemptionAmount(requested *decimal.Decimal, remaining decimal.Decimal) (decimal.Decimal, error) {
	if requested == nil {
		return remaining, nil
	}
	if !requested.IsPositive() {
		return decimal.Zero, apperror.Validation("amount must be positive")
	}
	if requested.GreaterThan(remaining) {
		return decimal.Zero, apperror.Validation("amount exceeds remaining voucher value")
	}
	return *requested, nil
}

// replay returns a stored redemption to the merchant that made it.
func replay(rd *domain.Redemption, merchantID int64) (*domain.Redemption, error) {
	if rd.MerchantID != merchantID {
		return nil, apperror.ErrForbidden("voucher was redeemed by another merchant")
	}
	return rd, nil
}

func (s *RedemptionServiceImpl) cached(ctx context.Context, code string) *domain.Redemption {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, code)
	if err != nil {
		s.log.Warn().Err(err).Str("voucher_code", code).Msg("redis redemption check failed, falling through to DB")
		return nil
	}
	if raw == nil {
		return nil
	}
	var rd domain.Redemption
	if err := json.Unmarshal(raw, &rd); err != nil {
		s.log.Warn().Err(err).Str("voucher_code", code).Msg("ignoring undecodable cached redemption")
		return nil
	}
	return &rd
}

func (s *RedemptionServiceImpl) remember(ctx context.Context, rd *domain.Redemption) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(rd)
	if err == nil {
		err = s.cache.Set(ctx, rd.VoucherCode, raw, s.cacheTTL)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("voucher_code", rd.VoucherCode).Str("side_effect", "redemption_cache").Msg("failed to cache redemption")
	}
}
