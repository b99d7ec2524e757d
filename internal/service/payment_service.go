package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"

	"github.com/rs/zerolog"
)

// Result messages.
const (
	msgPaymentCompleted   = "Payment completed successfully"
	msgPaymentAlreadyDone = "Payment already completed"
	msgWalletSyncPending  = "Payment completed; wallet sync pending"
)

// SettlementConfig bounds the collaborator calls made while settling.
type SettlementConfig struct {
	ReserveTimeout     time.Duration
	WalletIssueTimeout time.Duration
	LockTTL            time.Duration
}

// PaymentServiceImpl implements ports.PaymentService. Settlement runs
// reserve, confirm and issue in that order; each step commits on its own.
// Confirm is the commit point: after it succeeds a wallet failure never
// fails the payment.
type PaymentServiceImpl struct {
	orders ports.OrderLedger
	stock  ports.StockLedger
	wallet ports.WalletIssuer
	outbox ports.WalletOutboxRepository
	lock   ports.SettlementLock
	cfg    SettlementConfig
	now    func() time.Time
	log    zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl. outbox and lock may
// be nil: without an outbox failed issuance is only logged, without a lock
// concurrent payments for one order rely on the conditional confirm.
func NewPaymentService(
	orders ports.OrderLedger,
	stock ports.StockLedger,
	wallet ports.WalletIssuer,
	outbox ports.WalletOutboxRepository,
	lock ports.SettlementLock,
	cfg SettlementConfig,
	log zerolog.Logger,
) *PaymentServiceImpl {
	if cfg.ReserveTimeout <= 0 {
		cfg.ReserveTimeout = 5 * time.Second
	}
	if cfg.WalletIssueTimeout <= 0 {
		cfg.WalletIssueTimeout = 10 * time.Second
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 30 * time.Second
	}
	return &PaymentServiceImpl{
		orders: orders,
		stock:  stock,
		wallet: wallet,
		outbox: outbox,
		lock:   lock,
		cfg:    cfg,
		now:    time.Now,
		log:    log,
	}
}

// ProcessPayment settles an order. Paying an already confirmed order again
// returns success without reserving or issuing anything.
func (s *PaymentServiceImpl) ProcessPayment(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentResult, error) {
	method := strings.ToUpper(strings.TrimSpace(req.PaymentMethod))
	if method == "" {
		return nil, apperror.Validation("payment_method is required")
	}

	order, err := s.checkPayable(ctx, req)
	if err != nil || order.IsConfirmed() {
		return alreadyPaid(order), err
	}

	unlock, err := s.acquire(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// Another instance may have settled the order while we waited.
	order, err = s.checkPayable(ctx, req)
	if err != nil || order.IsConfirmed() {
		return alreadyPaid(order), err
	}

	rctx, cancel := context.WithTimeout(ctx, s.cfg.ReserveTimeout)
	reservation, err := s.stock.Reserve(rctx, ports.ReserveRequest{
		VoucherID:    order.VoucherID,
		Denomination: order.Denomination,
		Quantity:     order.Quantity,
	})
	cancel()
	if err != nil {
		s.log.Warn().Err(err).Int64("order_id", order.ID).Msg("stock reservation failed")
		return nil, apperror.ErrReservationFailed(err)
	}

	paymentID := newPaymentID(method)
	merchantID := reservation.MerchantID
	confirmed, err := s.orders.ConfirmOrder(ctx, ports.ConfirmOrderRequest{
		OrderID:       order.ID,
		PaymentID:     paymentID,
		PaymentMethod: method,
		MerchantID:    &merchantID,
	})
	if err != nil {
		s.releaseReservation(ctx, order, err)
		return nil, err
	}

	s.log.Info().
		Int64("order_id", confirmed.ID).
		Str("payment_id", paymentID).
		Str("amount", req.Amount.StringFixed(domain.MoneyScale)).
		Msg("payment settled")

	issued, pending := s.issue(ctx, confirmed, merchantID)

	result := &ports.PaymentResult{
		OrderID:           confirmed.ID,
		OrderNumber:       confirmed.OrderNumber,
		PaymentID:         paymentID,
		PaymentStatus:     confirmed.PaymentStatus,
		Amount:            confirmed.TotalAmount,
		Message:           msgPaymentCompleted,
		IssuedVouchers:    issued,
		WalletSyncPending: pending,
	}
	if pending {
		result.Message = msgWalletSyncPending
	}
	return result, nil
}

// checkPayable loads the order and applies the ownership, amount and state
// checks. A confirmed order is returned without error.
func (s *PaymentServiceImpl) checkPayable(ctx context.Context, req ports.PaymentRequest) (*domain.Order, error) {
	order, err := s.orders.FindOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !order.IsOwnedBy(req.UserID) {
		return nil, apperror.ErrForbidden("order belongs to another user")
	}
	if !req.Amount.Equal(order.TotalAmount) {
		return nil, apperror.ErrAmountMismatch()
	}
	if order.IsConfirmed() {
		return order, nil
	}
	if !order.CanTransition() {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("order is %s and cannot be paid", order.OrderStatus))
	}
	return order, nil
}

func alreadyPaid(order *domain.Order) *ports.PaymentResult {
	if order == nil {
		return nil
	}
	r := &ports.PaymentResult{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		PaymentStatus: order.PaymentStatus,
		Amount:        order.TotalAmount,
		Message:       msgPaymentAlreadyDone,
	}
	if order.PaymentID != nil {
		r.PaymentID = *order.PaymentID
	}
	return r
}

// acquire takes the per-order settlement lock. If Redis is unreachable the
// payment proceeds unlocked; the conditional confirm still prevents a
// double settlement but not a double reservation.
func (s *PaymentServiceImpl) acquire(ctx context.Context, orderID int64) (func(), error) {
	noop := func() {}
	if s.lock == nil {
		return noop, nil
	}

	key := "order:" + domain.CorrelationKey(orderID)
	ok, err := s.lock.Acquire(ctx, key, s.cfg.LockTTL)
	if err != nil {
		s.log.Warn().Err(err).Int64("order_id", orderID).Msg("settlement lock unavailable, continuing unlocked")
		return noop, nil
	}
	if !ok {
		return nil, apperror.ErrPaymentInProgress()
	}

	return func() {
		if err := s.lock.Release(context.WithoutCancel(ctx), key); err != nil {
			s.log.Warn().Err(err).Int64("order_id", orderID).Msg("settlement lock release failed")
		}
	}, nil
}

// releaseReservation gives stock back when confirmation fails after a
// successful reservation.
func (s *PaymentServiceImpl) releaseReservation(ctx context.Context, order *domain.Order, cause error) {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ReserveTimeout)
	defer cancel()

	if err := s.stock.Release(rctx, order.VoucherID, order.Quantity); err != nil {
		s.log.Error().
			Err(err).
			AnErr("cause", cause).
			Int64("order_id", order.ID).
			Int64("voucher_id", order.VoucherID).
			Int("quantity", order.Quantity).
			Str("side_effect", "stock_release").
			Msg("reserved stock could not be released")
		return
	}
	s.log.Warn().Err(cause).Int64("order_id", order.ID).Msg("order confirmation failed, reservation released")
}

// issue mints the wallet instances for a confirmed order. On failure the
// order is queued for the reconciler and the payment still succeeds.
func (s *PaymentServiceImpl) issue(ctx context.Context, order *domain.Order, merchantID int64) (int, bool) {
	wctx, cancel := context.WithTimeout(ctx, s.cfg.WalletIssueTimeout)
	defer cancel()

	req := ports.IssueRequest{
		OrderID:      order.ID,
		UserID:       order.UserID,
		VoucherID:    order.VoucherID,
		MerchantID:   merchantID,
		Denomination: order.Denomination,
		Quantity:     order.Quantity,
	}
	instances, err := s.wallet.CreateInstances(wctx, req)
	if err == nil {
		return len(instances), false
	}

	s.log.Error().
		Err(err).
		Int64("order_id", order.ID).
		Int("issued", len(instances)).
		Int("quantity", order.Quantity).
		Str("side_effect", "wallet_issuance").
		Msg("wallet issuance failed after payment")

	if s.outbox != nil {
		lastErr := err.Error()
		task := &domain.WalletIssuanceTask{
			OrderID:       req.OrderID,
			UserID:        req.UserID,
			VoucherID:     req.VoucherID,
			MerchantID:    req.MerchantID,
			Denomination:  req.Denomination,
			Quantity:      req.Quantity,
			LastError:     &lastErr,
			NextAttemptAt: s.now().UTC(),
		}
		if err := s.outbox.Enqueue(context.WithoutCancel(ctx), task); err != nil {
			s.log.Error().
				Err(err).
				Int64("order_id", order.ID).
				Str("side_effect", "wallet_outbox").
				Msg("wallet issuance could not be queued for retry")
		}
	}
	return len(instances), true
}

// GetPaymentStatus reports the payment state of one of the user's orders.
func (s *PaymentServiceImpl) GetPaymentStatus(ctx context.Context, userID, orderID int64) (*ports.PaymentResult, error) {
	order, err := s.orders.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	r := &ports.PaymentResult{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		PaymentStatus: order.PaymentStatus,
		Amount:        order.TotalAmount,
		Message:       domain.PaymentStatusMessage(order.PaymentStatus),
	}
	if order.PaymentID != nil {
		r.PaymentID = *order.PaymentID
	}
	return r, nil
}
