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

// StockService implements ports.StockLedger. Every stock change happens
// while the voucher row is held with SELECT ... FOR UPDATE.
type StockService struct {
	voucherRepo ports.VoucherRepository
	transactor  ports.DBTransactor
	now         func() time.Time
	log         zerolog.Logger
}

// NewStockService creates a new StockService.
func NewStockService(voucherRepo ports.VoucherRepository, transactor ports.DBTransactor, log zerolog.Logger) *StockService {
	return &StockService{
		voucherRepo: voucherRepo,
		transactor:  transactor,
		now:         time.Now,
		log:         log,
	}
}

// Reserve takes quantity units of a voucher at denomination. Checks run in
// order: availability, denomination, stock. A sold-out limited voucher is
// reported as insufficient stock.
func (s *StockService) Reserve(ctx context.Context, req ports.ReserveRequest) (*domain.ReservationResult, error) {
	if req.VoucherID <= 0 {
		return nil, apperror.Validation("voucher_id must be positive")
	}
	if req.Quantity <= 0 {
		return nil, apperror.Validation("quantity must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	v, err := s.voucherRepo.GetByIDForUpdate(ctx, dbTx, req.VoucherID)
	if err != nil {
		return nil, lockError("lock voucher", err)
	}
	if v == nil {
		return nil, apperror.ErrNotFound("voucher")
	}

	if !v.IsOnSaleAt(s.now()) {
		return nil, apperror.ErrVoucherUnavailable()
	}
	if !v.AcceptsDenomination(req.Denomination) {
		return nil, apperror.ErrInvalidDenomination()
	}
	if !v.HasStockFor(req.Quantity) {
		return nil, apperror.ErrInsufficientStock()
	}

	stock := v.StockQuantity
	if !v.UnlimitedStock {
		left := v.AvailableStock() - req.Quantity
		stock = &left
	}
	if err := s.voucherRepo.UpdateStock(ctx, dbTx, v.ID, stock, v.TotalSold+req.Quantity); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update stock: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit reservation: %w", err))
	}

	result := &domain.ReservationResult{
		VoucherID:      v.ID,
		MerchantID:     v.MerchantID,
		VoucherTitle:   v.Title,
		Denomination:   req.Denomination,
		Quantity:       req.Quantity,
		UnlimitedStock: v.UnlimitedStock,
	}
	if !v.UnlimitedStock {
		result.RemainingStock = stock
	}

	ev := s.log.Info().
		Int64("voucher_id", v.ID).
		Int64("merchant_id", v.MerchantID).
		Int("quantity", req.Quantity)
	if !v.UnlimitedStock {
		ev = ev.Int("remaining_stock", *stock)
	}
	ev.Msg("voucher stock reserved")

	return result, nil
}

// Release returns quantity units to a voucher after a reservation whose
// order could not be confirmed.
func (s *StockService) Release(ctx context.Context, voucherID int64, quantity int) error {
	if voucherID <= 0 {
		return apperror.Validation("voucher_id must be positive")
	}
	if quantity <= 0 {
		return apperror.Validation("quantity must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	v, err := s.voucherRepo.GetByIDForUpdate(ctx, dbTx, voucherID)
	if err != nil {
		return lockError("lock voucher", err)
	}
	if v == nil {
		return apperror.ErrNotFound("voucher")
	}

	stock := v.StockQuantity
	if !v.UnlimitedStock {
		restored := v.AvailableStock() + quantity
		stock = &restored
	}
	sold := v.TotalSold - quantity
	if sold < 0 {
		sold = 0
	}

	if err := s.voucherRepo.UpdateStock(ctx, dbTx, v.ID, stock, sold); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update stock: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit release: %w", err))
	}

	s.log.Info().Int64("voucher_id", v.ID).Int("quantity", quantity).Msg("voucher stock released")
	return nil
}

// lockError maps a failed row lock: a deadline hit while waiting is a lock
// timeout, anything else a database error.
func lockError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.ErrLockTimeout(fmt.Errorf("%s: %w", op, err))
	}
	return apperror.ErrDatabaseError(fmt.Errorf("%s: %w", op, err))
}
