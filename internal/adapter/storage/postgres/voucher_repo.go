package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const voucherColumns = `id, merchant_id, title, denominations::text[], stock_quantity, unlimited_stock,
		total_sold, valid_from, valid_until, status, created_at, updated_at`

// VoucherRepo implements ports.VoucherRepository.
type VoucherRepo struct {
	pool Pool
}

// NewVoucherRepo creates a new VoucherRepo.
func NewVoucherRepo(pool Pool) *VoucherRepo {
	return &VoucherRepo{pool: pool}
}

// GetByID fetches a voucher without locking.
func (r *VoucherRepo) GetByID(ctx context.Context, id int64) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE id = $1`

	v, err := scanVoucher(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher by id: %w", err)
	}
	return v, nil
}

// GetByIDForUpdate fetches a voucher with a row lock held until tx ends.
// This MUST be called within a transaction.
func (r *VoucherRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE id = $1 FOR UPDATE`

	v, err := scanVoucher(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher for update: %w", err)
	}
	return v, nil
}

// UpdateStock writes the stock counters of a locked voucher.
func (r *VoucherRepo) UpdateStock(ctx context.Context, tx pgx.Tx, id int64, stockQuantity *int, totalSold int) error {
	query := `UPDATE vouchers SET stock_quantity = $1, total_sold = $2, updated_at = NOW() WHERE id = $3`

	tag, err := tx.Exec(ctx, query, stockQuantity, totalSold, id)
	if err != nil {
		return fmt.Errorf("update voucher stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update voucher stock: voucher %d not found", id)
	}
	return nil
}

// PauseActiveByMerchant pauses every ACTIVE voucher of a merchant and
// returns how many were paused.
func (r *VoucherRepo) PauseActiveByMerchant(ctx context.Context, merchantID int64) (int64, error) {
	query := `UPDATE vouchers SET status = $1, updated_at = NOW() WHERE merchant_id = $2 AND status = $3`

	tag, err := r.pool.Exec(ctx, query, domain.VoucherStatusPaused, merchantID, domain.VoucherStatusActive)
	if err != nil {
		return 0, fmt.Errorf("pause merchant vouchers: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanVoucher(row rowScanner) (*domain.Voucher, error) {
	v := &domain.Voucher{}
	var denoms []string
	err := row.Scan(
		&v.ID, &v.MerchantID, &v.Title, &denoms, &v.StockQuantity, &v.UnlimitedStock,
		&v.TotalSold, &v.ValidFrom, &v.ValidUntil, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	for _, s := range denoms {
		d, err := parseMoney("denomination", s)
		if err != nil {
			return nil, err
		}
		v.Denominations = append(v.Denominations, d)
	}
	return v, nil
}
