package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, order_number, user_id, voucher_id, merchant_id, quantity,
		denomination::text, subtotal::text, platform_fee::text, merchant_amount::text, total_amount::text,
		payment_status, order_status, payment_id, payment_method, paid_at, created_at, updated_at`

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create inserts a new order and fills in its generated id and timestamps.
// A clash on order_number is reported as ports.ErrDuplicate.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (order_number, user_id, voucher_id, merchant_id, quantity,
			denomination, subtotal, platform_fee, merchant_amount, total_amount, payment_status, order_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		o.OrderNumber, o.UserID, o.VoucherID, o.MerchantID, o.Quantity,
		money(o.Denomination), money(o.Subtotal), money(o.PlatformFee), money(o.MerchantAmount), money(o.TotalAmount),
		o.PaymentStatus, o.OrderStatus,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return wrapWriteErr("insert order", err)
	}
	return nil
}

// ExistsByOrderNumber reports whether an order number is taken.
func (r *OrderRepo) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE order_number = $1)`, orderNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check order number: %w", err)
	}
	return exists, nil
}

// GetByID fetches an order by id.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return o, nil
}

// ListByUser returns a page of a user's orders, newest first, and the total count.
func (r *OrderRepo) ListByUser(ctx context.Context, userID int64, page, size int) ([]domain.Order, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, size, offset(page, size))
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0, size)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return orders, total, nil
}

// Confirm atomically moves a PENDING order to CONFIRMED/COMPLETED. The
// status predicate makes concurrent confirmations race safely: only one
// update matches.
func (r *OrderRepo) Confirm(ctx context.Context, p ports.ConfirmParams) (*domain.Order, error) {
	query := `UPDATE orders
		SET order_status = 'CONFIRMED', payment_status = 'COMPLETED',
			payment_id = $2, payment_method = $3, merchant_id = COALESCE($4, merchant_id),
			paid_at = $5, updated_at = NOW()
		WHERE id = $1 AND order_status = 'PENDING'
		RETURNING ` + orderColumns

	o, err := scanOrder(r.pool.QueryRow(ctx, query, p.OrderID, p.PaymentID, p.PaymentMethod, p.MerchantID, p.PaidAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("confirm order: %w", err)
	}
	return o, nil
}

// Cancel moves a PENDING order to CANCELLED.
func (r *OrderRepo) Cancel(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE orders SET order_status = 'CANCELLED', payment_status = 'CANCELLED', updated_at = NOW()
		WHERE id = $1 AND order_status = 'PENDING'`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("cancel order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	o := &domain.Order{}
	var denom, subtotal, fee, merchant, total string
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.VoucherID, &o.MerchantID, &o.Quantity,
		&denom, &subtotal, &fee, &merchant, &total,
		&o.PaymentStatus, &o.OrderStatus, &o.PaymentID, &o.PaymentMethod, &o.PaidAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"denomination", denom, &o.Denomination},
		{"subtotal", subtotal, &o.Subtotal},
		{"platform_fee", fee, &o.PlatformFee},
		{"merchant_amount", merchant, &o.MerchantAmount},
		{"total_amount", total, &o.TotalAmount},
	}
	for _, f := range fields {
		d, err := parseMoney(f.name, f.raw)
		if err != nil {
			return nil, err
		}
		*f.dst = d
	}
	return o, nil
}
