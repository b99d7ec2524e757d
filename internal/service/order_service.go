package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"

	"github.com/rs/zerolog"
)

const maxOrderNumberAttempts = 5

// OrderService implements ports.OrderLedger.
type OrderService struct {
	orderRepo ports.OrderRepository
	events    *eventEmitter
	now       func() time.Time
	log       zerolog.Logger
}

// NewOrderService creates a new OrderService. pub may be nil.
func NewOrderService(orderRepo ports.OrderRepository, pub ports.EventPublisher, log zerolog.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		events:    newEventEmitter(pub, nil, log),
		now:       time.Now,
		log:       log,
	}
}

// CreateOrder prices and records a PENDING order. The voucher itself is not
// looked up here; availability and the merchant are resolved when payment
// reserves stock.
func (s *OrderService) CreateOrder(ctx context.Context, req ports.CreateOrderRequest) (*domain.Order, error) {
	switch {
	case req.UserID <= 0:
		return nil, apperror.ErrMissingIdentity()
	case req.VoucherID <= 0:
		return nil, apperror.Validation("voucher_id must be positive")
	case req.Quantity <= 0:
		return nil, apperror.Validation("quantity must be positive")
	case !req.Denomination.IsPositive():
		return nil, apperror.Validation("denomination must be positive")
	}

	subtotal := domain.Subtotal(req.Denomination, req.Quantity)
	fee, merchantAmount := domain.SplitCommission(subtotal)

	order := &domain.Order{
		UserID:         req.UserID,
		VoucherID:      req.VoucherID,
		Quantity:       req.Quantity,
		Denomination:   req.Denomination,
		Subtotal:       subtotal,
		PlatformFee:    fee,
		MerchantAmount: merchantAmount,
		TotalAmount:    subtotal,
		PaymentStatus:  domain.PaymentStatusPending,
		OrderStatus:    domain.OrderStatusPending,
	}

	if err := s.insertWithUniqueNumber(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("order_id", order.ID).
		Str("order_number", order.OrderNumber).
		Int64("user_id", order.UserID).
		Str("total_amount", order.TotalAmount.StringFixed(domain.MoneyScale)).
		Msg("order created")

	s.events.emit(ctx, domain.TopicOrderEvents, domain.EventOrderCreated,
		domain.CorrelationKey(order.ID), domain.NewOrderEventPayload(order))

	return order, nil
}

func (s *OrderService) insertWithUniqueNumber(ctx context.Context, order *domain.Order) error {
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		number := newOrderNumber(s.now())

		exists, err := s.orderRepo.ExistsByOrderNumber(ctx, number)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("check order number: %w", err))
		}
		if exists {
			continue
		}

		order.OrderNumber = number
		err = s.orderRepo.Create(ctx, order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ports.ErrDuplicate) {
			return apperror.ErrDatabaseError(fmt.Errorf("create order: %w", err))
		}
	}
	return apperror.InternalError(fmt.Errorf("no unique order number after %d attempts", maxOrderNumberAttempts))
}

// ConfirmOrder marks a PENDING order paid. The conditional update makes a
// concurrent confirm or cancel lose cleanly with InvalidState.
func (s *OrderService) ConfirmOrder(ctx context.Context, req ports.ConfirmOrderRequest) (*domain.Order, error) {
	if req.PaymentID == "" {
		return nil, apperror.Validation("payment_id is required")
	}

	order, err := s.orderRepo.Confirm(ctx, ports.ConfirmParams{
		OrderID:       req.OrderID,
		PaymentID:     req.PaymentID,
		PaymentMethod: req.PaymentMethod,
		MerchantID:    req.MerchantID,
		PaidAt:        s.now().UTC(),
	})
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("confirm order: %w", err))
	}
	if order == nil {
		current, err := s.FindOrder(ctx, req.OrderID)
		if err != nil {
			return nil, err
		}
		return nil, apperror.ErrInvalidState(fmt.Sprintf("order is %s, only PENDING orders can be confirmed", current.OrderStatus))
	}

	s.log.Info().
		Int64("order_id", order.ID).
		Str("payment_id", req.PaymentID).
		Msg("order confirmed")

	s.events.emit(ctx, domain.TopicOrderEvents, domain.EventOrderConfirmed,
		domain.CorrelationKey(order.ID), domain.NewOrderEventPayload(order))

	return order, nil
}

// CancelOrder cancels a PENDING order owned by userID. Confirmed orders
// have to go through a refund instead.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, userID int64) error {
	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return err
	}
	if order.IsConfirmed() {
		return apperror.ErrInvalidState("confirmed orders cannot be cancelled, request a refund")
	}
	if !order.CanTransition() {
		return apperror.ErrInvalidState(fmt.Sprintf("order is already %s", order.OrderStatus))
	}

	ok, err := s.orderRepo.Cancel(ctx, orderID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("cancel order: %w", err))
	}
	if !ok {
		return apperror.ErrInvalidState("order changed state while cancelling")
	}

	order.OrderStatus = domain.OrderStatusCancelled
	order.PaymentStatus = domain.PaymentStatusCancelled

	s.log.Info().Int64("order_id", orderID).Int64("user_id", userID).Msg("order cancelled")
	s.events.emit(ctx, domain.TopicOrderEvents, domain.EventOrderCancelled,
		domain.CorrelationKey(orderID), domain.NewOrderEventPayload(order))
	return nil
}

// FindOrder loads an order without checking ownership.
func (s *OrderService) FindOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	if orderID <= 0 {
		return nil, apperror.ErrNotFound("order")
	}
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.IsOwnedBy(userID) {
		return nil, apperror.ErrForbidden("order belongs to another user")
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID int64, page, size int) ([]domain.Order, int64, error) {
	page, size = clampPage(page, size)
	orders, total, err := s.orderRepo.ListByUser(ctx, userID, page, size)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list orders: %w", err))
	}
	return orders, total, nil
}
