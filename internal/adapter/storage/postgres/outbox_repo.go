package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
)

const outboxColumns = `id, order_id, user_id, voucher_id, merchant_id, denomination::text, quantity,
		status, attempts, last_error, next_attempt_at, created_at, updated_at`

// OutboxRepo implements ports.WalletOutboxRepository on the
// wallet_issuance_outbox table.
type OutboxRepo struct {
	pool Pool
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(pool Pool) *OutboxRepo {
	return &OutboxRepo{pool: pool}
}

// Enqueue stores a PENDING task due immediately. One task per order: a
// repeat enqueue for the same order is ignored.
func (r *OutboxRepo) Enqueue(ctx context.Context, t *domain.WalletIssuanceTask) error {
	query := `INSERT INTO wallet_issuance_outbox (order_id, user_id, voucher_id, merchant_id, denomination,
			quantity, status, attempts, last_error, next_attempt_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'PENDING', 0, $7, $8)
		ON CONFLICT (order_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		t.OrderID, t.UserID, t.VoucherID, t.MerchantID, money(t.Denomination),
		t.Quantity, t.LastError, t.NextAttemptAt,
	)
	if err != nil {
		return fmt.Errorf("enqueue wallet issuance: %w", err)
	}
	return nil
}

// ClaimDue leases up to limit due tasks by pushing their next_attempt_at to
// now+lease. SKIP LOCKED lets several workers claim disjoint batches.
func (r *OutboxRepo) ClaimDue(ctx context.Context, limit int, now time.Time, lease time.Duration) ([]domain.WalletIssuanceTask, error) {
	query := `UPDATE wallet_issuance_outbox SET next_attempt_at = $3, updated_at = NOW()
		WHERE id IN (
			SELECT id FROM wallet_issuance_outbox
			WHERE status = 'PENDING' AND next_attempt_at <= $1
			ORDER BY next_attempt_at, id
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + outboxColumns

	rows, err := r.pool.Query(ctx, query, now, limit, now.Add(lease))
	if err != nil {
		return nil, fmt.Errorf("claim wallet issuance tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.WalletIssuanceTask
	for rows.Next() {
		var t domain.WalletIssuanceTask
		var denom string
		if err := rows.Scan(
			&t.ID, &t.OrderID, &t.UserID, &t.VoucherID, &t.MerchantID, &denom, &t.Quantity,
			&t.Status, &t.Attempts, &t.LastError, &t.NextAttemptAt, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan wallet issuance task: %w", err)
		}
		if t.Denomination, err = parseMoney("denomination", denom); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// MarkDone completes a task.
func (r *OutboxRepo) MarkDone(ctx context.Context, id int64) error {
	return r.setState(ctx, id, `UPDATE wallet_issuance_outbox SET status = 'DONE', updated_at = NOW() WHERE id = $1`, id)
}

// Reschedule records a failed attempt and the next due time.
func (r *OutboxRepo) Reschedule(ctx context.Context, id int64, attempts int, lastErr string, next time.Time) error {
	return r.setState(ctx, id, `UPDATE wallet_issuance_outbox
		SET attempts = $2, last_error = $3, next_attempt_at = $4, updated_at = NOW() WHERE id = $1`,
		id, attempts, lastErr, next)
}

// MarkFailed parks a task after its final attempt.
func (r *OutboxRepo) MarkFailed(ctx context.Context, id int64, attempts int, lastErr string) error {
	return r.setState(ctx, id, `UPDATE wallet_issuance_outbox
		SET status = 'FAILED', attempts = $2, last_error = $3, updated_at = NOW() WHERE id = $1`,
		id, attempts, lastErr)
}

func (r *OutboxRepo) setState(ctx context.Context, id int64, query string, args ...any) error {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update wallet issuance task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update wallet issuance task: task %d not found", id)
	}
	return nil
}
