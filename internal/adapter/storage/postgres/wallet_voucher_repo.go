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

const walletVoucherColumns = `id, voucher_code, qr_payload, user_id, order_id, voucher_id, merchant_id,
		denomination::text, remaining_value::text, status, valid_from, valid_until,
		is_gift, gifted_to_user_id, gift_message, gifted_at, created_at, updated_at`

// WalletVoucherRepo implements ports.WalletVoucherRepository.
type WalletVoucherRepo struct {
	pool Pool
}

// NewWalletVoucherRepo creates a new WalletVoucherRepo.
func NewWalletVoucherRepo(pool Pool) *WalletVoucherRepo {
	return &WalletVoucherRepo{pool: pool}
}

// Create inserts an issued instance. A clash on voucher_code is reported as
// ports.ErrDuplicate.
func (r *WalletVoucherRepo) Create(ctx context.Context, wv *domain.WalletVoucher) error {
	query := `INSERT INTO wallet_vouchers (voucher_code, qr_payload, user_id, order_id, voucher_id, merchant_id,
			denomination, remaining_value, status, valid_from, valid_until, is_gift)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		wv.VoucherCode, wv.QRPayload, wv.UserID, wv.OrderID, wv.VoucherID, wv.MerchantID,
		money(wv.Denomination), money(wv.RemainingValue), wv.Status, wv.ValidFrom, wv.ValidUntil, wv.IsGift,
	).Scan(&wv.ID, &wv.CreatedAt, &wv.UpdatedAt)
	if err != nil {
		return wrapWriteErr("insert wallet voucher", err)
	}
	return nil
}

// ExistsByCode reports whether a voucher code has been issued.
func (r *WalletVoucherRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM wallet_vouchers WHERE voucher_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check voucher code: %w", err)
	}
	return exists, nil
}

// CountByOrder returns how many instances were issued for an order.
func (r *WalletVoucherRepo) CountByOrder(ctx context.Context, orderID int64) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM wallet_vouchers WHERE order_id = $1`, orderID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count wallet vouchers: %w", err)
	}
	return n, nil
}

// GetByIDForUpdate fetches an instance by id with a row lock.
func (r *WalletVoucherRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.WalletVoucher, error) {
	query := `SELECT ` + walletVoucherColumns + ` FROM wallet_vouchers WHERE id = $1 FOR UPDATE`

	wv, err := scanWalletVoucher(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet voucher for update: %w", err)
	}
	return wv, nil
}

// GetByCodeForUpdate fetches an instance by voucher code with a row lock.
func (r *WalletVoucherRepo) GetByCodeForUpdate(ctx context.Context, tx pgx.Tx, code string) (*domain.WalletVoucher, error) {
	query := `SELECT ` + walletVoucherColumns + ` FROM wallet_vouchers WHERE voucher_code = $1 FOR UPDATE`

	wv, err := scanWalletVoucher(tx.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet voucher by code for update: %w", err)
	}
	return wv, nil
}

// ListByUser returns a page of a user's instances, newest first.
func (r *WalletVoucherRepo) ListByUser(ctx context.Context, p ports.WalletVoucherListParams) ([]domain.WalletVoucher, int64, error) {
	var status *string
	if p.Status != nil {
		s := string(*p.Status)
		status = &s
	}

	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM wallet_vouchers WHERE user_id = $1 AND ($2::text IS NULL OR status = $2)`,
		p.UserID, status,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count wallet vouchers: %w", err)
	}

	query := `SELECT ` + walletVoucherColumns + ` FROM wallet_vouchers
		WHERE user_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, p.UserID, status, p.Size, offset(p.Page, p.Size))
	if err != nil {
		return nil, 0, fmt.Errorf("list wallet vouchers: %w", err)
	}
	defer rows.Close()

	list := make([]domain.WalletVoucher, 0, p.Size)
	for rows.Next() {
		wv, err := scanWalletVoucher(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan wallet voucher: %w", err)
		}
		list = append(list, *wv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list wallet vouchers: %w", err)
	}
	return list, total, nil
}

// UpdateGift writes new ownership and gift metadata for a locked instance.
func (r *WalletVoucherRepo) UpdateGift(ctx context.Context, tx pgx.Tx, wv *domain.WalletVoucher) error {
	query := `UPDATE wallet_vouchers
		SET user_id = $2, is_gift = $3, gifted_to_user_id = $4, gift_message = $5, gifted_at = $6, updated_at = NOW()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, wv.ID, wv.UserID, wv.IsGift, wv.GiftedToUserID, wv.GiftMessage, wv.GiftedAt)
	if err != nil {
		return fmt.Errorf("update wallet voucher gift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update wallet voucher gift: wallet voucher %d not found", wv.ID)
	}
	return nil
}

// UpdateRemaining writes the remaining value and status of a locked instance.
func (r *WalletVoucherRepo) UpdateRemaining(ctx context.Context, tx pgx.Tx, id int64, remaining decimal.Decimal, status domain.WalletVoucherStatus) error {
	query := `UPDATE wallet_vouchers SET remaining_value = $2, status = $3, updated_at = NOW() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, money(remaining), status)
	if err != nil {
		return fmt.Errorf("update wallet voucher value: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update wallet voucher value: wallet voucher %d not found", id)
	}
	return nil
}

func scanWalletVoucher(row rowScanner) (*domain.WalletVoucher, error) {
	wv := &domain.WalletVoucher{}
	var denom, remaining string
	err := row.Scan(
		&wv.ID, &wv.VoucherCode, &wv.QRPayload, &wv.UserID, &wv.OrderID, &wv.VoucherID, &wv.MerchantID,
		&denom, &remaining, &wv.Status, &wv.ValidFrom, &wv.ValidUntil,
		&wv.IsGift, &wv.GiftedToUserID, &wv.GiftMessage, &wv.GiftedAt, &wv.CreatedAt, &wv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if wv.Denomination, err = parseMoney("denomination", denom); err != nil {
		return nil, err
	}
	if wv.RemainingValue, err = parseMoney("remaining_value", remaining); err != nil {
		return nil, err
	}
	return wv, nil
}
