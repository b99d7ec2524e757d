package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"

	"github.com/rs/zerolog"
)

const maxVoucherCodeAttempts = 5

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	repo       ports.WalletVoucherRepository
	transactor ports.DBTransactor
	qr         ports.QRCodec
	events     *eventEmitter
	now        func() time.Time
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl. notifier may be nil.
func NewWalletService(
	repo ports.WalletVoucherRepository,
	transactor ports.DBTransactor,
	qr ports.QRCodec,
	notifier ports.NotificationSender,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		repo:       repo,
		transactor: transactor,
		qr:         qr,
		events:     newEventEmitter(nil, notifier, log),
		now:        time.Now,
		log:        log,
	}
}

// CreateInstances mints one instance per unit of quantity. Instances are
// written one by one; on failure the ones already created are returned
// along with the error and stay valid.
func (s *WalletServiceImpl) CreateInstances(ctx context.Context, req ports.IssueRequest) ([]domain.WalletVoucher, error) {
	switch {
	case req.OrderID <= 0, req.UserID <= 0, req.VoucherID <= 0, req.MerchantID <= 0:
		return nil, apperror.Validation("order_id, user_id, voucher_id and merchant_id must be positive")
	case req.Quantity <= 0:
		return nil, apperror.Validation("quantity must be positive")
	case !req.Denomination.IsPositive():
		return nil, apperror.Validation("denomination must be positive")
	}

	created := make([]domain.WalletVoucher, 0, req.Quantity)
	for i := 0; i < req.Quantity; i++ {
		wv, err := s.createOne(ctx, req)
		if err != nil {
			s.log.Error().
				Err(err).
				Int64("order_id", req.OrderID).
				Int("created", len(created)).
				Int("quantity", req.Quantity).
				Msg("wallet issuance stopped part way")
			return created, err
		}
		created = append(created, *wv)

		s.events.notify(ctx, domain.Notification{
			UserID:  wv.UserID,
			Type:    domain.NotificationVoucherReceived,
			Title:   "New voucher in your wallet",
			Message: fmt.Sprintf("Voucher %s worth %s is ready to use.", wv.VoucherCode, wv.Denomination.StringFixed(domain.MoneyScale)),
			Data:    map[string]string{"voucher_code": wv.VoucherCode, "order_id": domain.CorrelationKey(wv.OrderID)},
		})
	}

	s.log.Info().Int64("order_id", req.OrderID).Int("issued", len(created)).Msg("wallet vouchers issued")
	return created, nil
}

func (s *WalletServiceImpl) createOne(ctx context.Context, req ports.IssueRequest) (*domain.WalletVoucher, error) {
	now := s.now().UTC()
	validUntil := now.Add(domain.WalletVoucherValidity)

	for attempt := 0; attempt < maxVoucherCodeAttempts; attempt++ {
		code := newVoucherCode()

		exists, err := s.repo.ExistsByCode(ctx, code)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("check voucher code: %w", err))
		}
		if exists {
			continue
		}

		payload, err := s.qr.Encode(code, validUntil)
		if err != nil {
			return nil, apperror.InternalError(err)
		}

		wv := &domain.WalletVoucher{
			VoucherCode:    code,
			QRPayload:      payload,
			UserID:         req.UserID,
			OrderID:        req.OrderID,
			VoucherID:      req.VoucherID,
			MerchantID:     req.MerchantID,
			Denomination:   req.Denomination,
			RemainingValue: req.Denomination,
			Status:         domain.WalletVoucherStatusActive,
			ValidFrom:      now,
			ValidUntil:     validUntil,
		}
		err = s.repo.Create(ctx, wv)
		if err == nil {
			return wv, nil
		}
		if !errors.Is(err, ports.ErrDuplicate) {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("create wallet voucher: %w", err))
		}
	}
	return nil, apperror.InternalError(fmt.Errorf("no unique voucher code after %d attempts", maxVoucherCodeAttempts))
}

// Gift hands an ACTIVE instance with value left to another user. Checks
// run in order: ownership, state, recipient.
func (s *WalletServiceImpl) Gift(ctx context.Context, req ports.GiftRequest) (*domain.WalletVoucher, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wv, err := s.repo.GetByIDForUpdate(ctx, dbTx, req.WalletVoucherID)
	if err != nil {
		return nil, lockError("lock wallet voucher", err)
	}
	if wv == nil || wv.UserID != req.SenderUserID {
		return nil, apperror.ErrNotFound("wallet voucher")
	}

	now := s.now().UTC()
	if !wv.HasValue() {
		return nil, apperror.ErrInvalidState("only active vouchers with remaining value can be gifted")
	}
	if wv.IsExpiredAt(now) {
		return nil, apperror.ErrInvalidState("voucher has expired")
	}
	if req.RecipientUserID <= 0 {
		return nil, apperror.Validation("recipient_user_id must be positive")
	}
	if req.RecipientUserID == req.SenderUserID {
		return nil, apperror.Validation("cannot gift a voucher to yourself")
	}

	recipient := req.RecipientUserID
	wv.UserID = recipient
	wv.IsGift = true
	wv.GiftedToUserID = &recipient
	wv.GiftedAt = &now
	wv.GiftMessage = nil
	if msg := strings.TrimSpace(req.Message); msg != "" {
		wv.GiftMessage = &msg
	}

	if err := s.repo.UpdateGift(ctx, dbTx, wv); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update gift: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit gift: %w", err))
	}

	s.log.Info().
		Int64("wallet_voucher_id", wv.ID).
		Int64("from_user_id", req.SenderUserID).
		Int64("to_user_id", recipient).
		Msg("wallet voucher gifted")

	n := domain.Notification{
		UserID:  recipient,
		Type:    domain.NotificationVoucherGifted,
		Title:   "You received a gift voucher",
		Message: fmt.Sprintf("Voucher %s worth %s was gifted to you.", wv.VoucherCode, wv.RemainingValue.StringFixed(domain.MoneyScale)),
		Data:    map[string]string{"voucher_code": wv.VoucherCode, "from_user_id": domain.CorrelationKey(req.SenderUserID)},
	}
	if wv.GiftMessage != nil {
		n.Data["gift_message"] = *wv.GiftMessage
	}
	s.events.notify(ctx, n)

	return wv, nil
}

func (s *WalletServiceImpl) ListVouchers(ctx context.Context, params ports.WalletVoucherListParams) ([]domain.WalletVoucher, int64, error) {
	params.Page, params.Size = clampPage(params.Page, params.Size)
	list, total, err := s.repo.ListByUser(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list wallet vouchers: %w", err))
	}
	return list, total, nil
}
