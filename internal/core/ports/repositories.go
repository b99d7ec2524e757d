package ports

import (
	"context"
	"errors"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// ErrDuplicate is wrapped by repositories when a unique constraint rejects a write.
var ErrDuplicate = errors.New("duplicate key")

// VoucherRepository defines persistence operations for voucher products.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type VoucherRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Voucher, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Voucher, error)
	UpdateStock(ctx context.Context, tx pgx.Tx, id int64, stockQuantity *int, totalSold int) error
	PauseActiveByMerchant(ctx context.Context, merchantID int64) (int64, error)
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64, page, size int) ([]domain.Order, int64, error)
	// Confirm moves a PENDING order to CONFIRMED/COMPLETED. It returns nil
	// when no PENDING order with that id exists.
	Confirm(ctx context.Context, params ConfirmParams) (*domain.Order, error)
	// Cancel moves a PENDING order to CANCELLED. It returns false when no
	// PENDING order with that id exists.
	Cancel(ctx context.Context, id int64) (bool, error)
}

// ConfirmParams holds the settlement data written on confirmation.
type ConfirmParams struct {
	OrderID       int64
	PaymentID     string
	PaymentMethod string
	MerchantID    *int64
	PaidAt        time.Time
}

// WalletVoucherRepository defines persistence operations for issued voucher instances.
type WalletVoucherRepository interface {
	Create(ctx context.Context, wv *domain.WalletVoucher) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	CountByOrder(ctx context.Context, orderID int64) (int, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.WalletVoucher, error)
	GetByCodeForUpdate(ctx context.Context, tx pgx.Tx, code string) (*domain.WalletVoucher, error)
	ListByUser(ctx context.Context, params WalletVoucherListParams) ([]domain.WalletVoucher, int64, error)
	UpdateGift(ctx context.Context, tx pgx.Tx, wv *domain.WalletVoucher) error
	UpdateRemaining(ctx context.Context, tx pgx.Tx, id int64, remaining decimal.Decimal, status domain.WalletVoucherStatus) error
}

// WalletVoucherListParams holds filter + pagination for listing a user's wallet.
type WalletVoucherListParams struct {
	UserID int64
	Status *domain.WalletVoucherStatus
	Page   int
	Size   int
}

// RedemptionRepository defines persistence operations for redemptions.
type RedemptionRepository interface {
	// Insert returns false when a redemption for the same voucher code
	// already exists.
	Insert(ctx context.Context, tx pgx.Tx, r *domain.Redemption) (bool, error)
	GetByVoucherCode(ctx context.Context, code string) (*domain.Redemption, error)
}

// PayoutHoldRepository defines persistence operations for payout holds.
type PayoutHoldRepository interface {
	// CreateIfAbsent returns false when the merchant already has an ACTIVE hold.
	CreateIfAbsent(ctx context.Context, hold *domain.PayoutHold) (bool, error)
	GetActiveByMerchant(ctx context.Context, merchantID int64) (*domain.PayoutHold, error)
	ListActive(ctx context.Context) ([]domain.PayoutHold, error)
}

// WalletOutboxRepository persists wallet issuance retries.
type WalletOutboxRepository interface {
	Enqueue(ctx context.Context, task *domain.WalletIssuanceTask) error
	// ClaimDue leases up to limit due PENDING tasks until now+lease.
	ClaimDue(ctx context.Context, limit int, now time.Time, lease time.Duration) ([]domain.WalletIssuanceTask, error)
	MarkDone(ctx context.Context, id int64) error
	Reschedule(ctx context.Context, id int64, attempts int, lastErr string, next time.Time) error
	MarkFailed(ctx context.Context, id int64, attempts int, lastErr string) error
}

// AuditRepository defines persistence for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
