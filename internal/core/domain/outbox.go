package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IssuanceTaskStatus is the state of a wallet issuance outbox row.
type IssuanceTaskStatus string

const (
	IssuanceTaskPending IssuanceTaskStatus = "PENDING"
	IssuanceTaskDone    IssuanceTaskStatus = "DONE"
	IssuanceTaskFailed  IssuanceTaskStatus = "FAILED"
)

// WalletIssuanceTask records a confirmed order whose wallet instances were
// not (fully) issued during settlement.
type WalletIssuanceTask struct {
	ID            int64              `json:"id"`
	OrderID       int64              `json:"order_id"`
	UserID        int64              `json:"user_id"`
	VoucherID     int64              `json:"voucher_id"`
	MerchantID    int64              `json:"merchant_id"`
	Denomination  decimal.Decimal    `json:"denomination"`
	Quantity      int                `json:"quantity"`
	Status        IssuanceTaskStatus `json:"status"`
	Attempts      int                `json:"attempts"`
	LastError     *string            `json:"last_error,omitempty"`
	NextAttemptAt time.Time          `json:"next_attempt_at"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// BackoffAfter returns the delay before attempt n+1, doubling from base and
// capped at max.
func BackoffAfter(attempts int, base, max time.Duration) time.Duration {
	d := base
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= max {
			return max
		}
	}
	if d > max {
		return max
	}
	return d
}
