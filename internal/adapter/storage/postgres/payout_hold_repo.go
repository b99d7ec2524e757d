package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const payoutHoldColumns = `id, merchant_id, reason, status, created_at, released_at`

// PayoutHoldRepo implements ports.PayoutHoldRepository.
type PayoutHoldRepo struct {
	pool Pool
}

// NewPayoutHoldRepo creates a new PayoutHoldRepo.
func NewPayoutHoldRepo(pool Pool) *PayoutHoldRepo {
	return &PayoutHoldRepo{pool: pool}
}

// CreateIfAbsent inserts an ACTIVE hold unless the merchant already has one.
// The partial unique index on (merchant_id) WHERE status = 'ACTIVE' decides
// races between concurrent callers.
func (r *PayoutHoldRepo) CreateIfAbsent(ctx context.Context, h *domain.PayoutHold) (bool, error) {
	query := `INSERT INTO payout_holds (merchant_id, reason, status)
		VALUES ($1, $2, 'ACTIVE')
		ON CONFLICT (merchant_id) WHERE status = 'ACTIVE' DO NOTHING
		RETURNING id, status, created_at`

	err := r.pool.QueryRow(ctx, query, h.MerchantID, h.Reason).Scan(&h.ID, &h.Status, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("insert payout hold: %w", err)
	}
	return true, nil
}

// GetActiveByMerchant returns the merchant's ACTIVE hold, or nil.
func (r *PayoutHoldRepo) GetActiveByMerchant(ctx context.Context, merchantID int64) (*domain.PayoutHold, error) {
	query := `SELECT ` + payoutHoldColumns + ` FROM payout_holds WHERE merchant_id = $1 AND status = 'ACTIVE'`

	h := &domain.PayoutHold{}
	err := r.pool.QueryRow(ctx, query, merchantID).Scan(&h.ID, &h.MerchantID, &h.Reason, &h.Status, &h.CreatedAt, &h.ReleasedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active payout hold: %w", err)
	}
	return h, nil
}

// ListActive returns every ACTIVE hold, oldest first.
func (r *PayoutHoldRepo) ListActive(ctx context.Context) ([]domain.PayoutHold, error) {
	query := `SELECT ` + payoutHoldColumns + ` FROM payout_holds WHERE status = 'ACTIVE' ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active payout holds: %w", err)
	}
	defer rows.Close()

	holds := []domain.PayoutHold{}
	for rows.Next() {
		var h domain.PayoutHold
		if err := rows.Scan(&h.ID, &h.MerchantID, &h.Reason, &h.Status, &h.CreatedAt, &h.ReleasedAt); err != nil {
			return nil, fmt.Errorf("scan payout hold: %w", err)
		}
		holds = append(holds, h)
	}
	return holds, rows.Err()
}
