package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const redemptionColumns = `id, redemption_code, wallet_voucher_id, voucher_code, merchant_id,
		redeemed_by_user_id, amount::text, location, status, redeemed_at`

// RedemptionRepo implements ports.RedemptionRepository. The unique index on
// voucher_code is the durable idempotency guard for redemptions.
type RedemptionRepo struct {
	pool Pool
}

// NewRedemptionRepo creates a new RedemptionRepo.
func NewRedemptionRepo(pool Pool) *RedemptionRepo {
	return &RedemptionRepo{pool: pool}
}

// Insert records a redemption inside tx. It returns false, without error,
// when the voucher code was already redeemed.
func (r *RedemptionRepo) Insert(ctx context.Context, tx pgx.Tx, rd *domain.Redemption) (bool, error) {
	query := `INSERT INTO redemptions (redemption_code, wallet_voucher_id, voucher_code, merchant_id,
			redeemed_by_user_id, amount, location, status, redeemed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (voucher_code) DO NOTHING
		RETURNING id`

	err := tx.QueryRow(ctx, query,
		rd.RedemptionCode, rd.WalletVoucherID, rd.VoucherCode, rd.MerchantID,
		rd.RedeemedByUserID, money(rd.Amount), rd.Location, rd.Status, rd.RedeemedAt,
	).Scan(&rd.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, wrapWriteErr("insert redemption", err)
	}
	return true, nil
}

// GetByVoucherCode fetches the redemption of a voucher code, if any.
func (r *RedemptionRepo) GetByVoucherCode(ctx context.Context, code string) (*domain.Redemption, error) {
	query := `SELECT ` + redemptionColumns + ` FROM redemptions WHERE voucher_code = $1`

	rd := &domain.Redemption{}
	var amount string
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&rd.ID, &rd.RedemptionCode, &rd.WalletVoucherID, &rd.VoucherCode, &rd.MerchantID,
		&rd.RedeemedByUserID, &amount, &rd.Location, &rd.Status, &rd.RedeemedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get redemption by voucher code: %w", err)
	}
	if rd.Amount, err = parseMoney("amount", amount); err != nil {
		return nil, err
	}
	return rd, nil
}
