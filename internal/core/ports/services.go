package ports

import (
	"context"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// --- Infrastructure Ports ---

// EventPublisher publishes domain events to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, evt domain.Event) error
}

// NotificationSender hands notification requests to the notification service.
type NotificationSender interface {
	Send(ctx context.Context, n domain.Notification) error
}

// RedemptionCache is the Redis-layer redemption lookup (fast path).
type RedemptionCache interface {
	Get(ctx context.Context, voucherCode string) ([]byte, error) // Returns cached redemption JSON or nil
	Set(ctx context.Context, voucherCode string, value []byte, ttl time.Duration) error
}

// SettlementLock serialises settlement of a single order across instances.
type SettlementLock interface {
	// Acquire returns true if the lock was taken, false if already held.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// QRCodec signs and verifies the QR payload printed on a wallet voucher.
type QRCodec interface {
	Encode(voucherCode string, validUntil time.Time) (string, error)
	Decode(payload string) (string, error)
}

// HealthChecker is one dependency probed by GET /health.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}

// --- Service Ports (Business Logic) ---

// StockLedger reserves and releases voucher stock.
type StockLedger interface {
	Reserve(ctx context.Context, req ReserveRequest) (*domain.ReservationResult, error)
	Release(ctx context.Context, voucherID int64, quantity int) error
}

// ReserveRequest holds input for a stock reservation.
type ReserveRequest struct {
	VoucherID    int64
	Denomination decimal.Decimal
	Quantity     int
}

// OrderLedger owns the order lifecycle.
type OrderLedger interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error)
	ConfirmOrder(ctx context.Context, req ConfirmOrderRequest) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID, userID int64) error
	// FindOrder loads an order without an ownership check.
	FindOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64, page, size int) ([]domain.Order, int64, error)
}

// CreateOrderRequest holds input for order creation.
type CreateOrderRequest struct {
	UserID       int64
	VoucherID    int64
	Denomination decimal.Decimal
	Quantity     int
}

// ConfirmOrderRequest holds the settlement outcome for an order.
type ConfirmOrderRequest struct {
	OrderID       int64
	PaymentID     string
	PaymentMethod string
	MerchantID    *int64
}

// PaymentService settles payments for orders.
type PaymentService interface {
	ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
	GetPaymentStatus(ctx context.Context, userID, orderID int64) (*PaymentResult, error)
}

// PaymentRequest holds validated input for payment processing.
type PaymentRequest struct {
	UserID        int64
	OrderID       int64
	PaymentMethod string
	Amount        decimal.Decimal
}

// PaymentResult is the outcome of a payment call.
type PaymentResult struct {
	OrderID           int64                `json:"order_id"`
	OrderNumber       string               `json:"order_number"`
	PaymentID         string               `json:"payment_id,omitempty"`
	PaymentStatus     domain.PaymentStatus `json:"payment_status"`
	Amount            decimal.Decimal      `json:"amount"`
	Message           string               `json:"message"`
	IssuedVouchers    int                  `json:"issued_vouchers"`
	WalletSyncPending bool                 `json:"wallet_sync_pending"`
}

// WalletIssuer mints wallet voucher instances for a paid order.
type WalletIssuer interface {
	CreateInstances(ctx context.Context, req IssueRequest) ([]domain.WalletVoucher, error)
}

// IssueRequest holds input for wallet issuance.
type IssueRequest struct {
	OrderID      int64
	UserID       int64
	VoucherID    int64
	MerchantID   int64
	Denomination decimal.Decimal
	Quantity     int
}

// WalletService manages a user's wallet vouchers.
type WalletService interface {
	WalletIssuer
	Gift(ctx context.Context, req GiftRequest) (*domain.WalletVoucher, error)
	ListVouchers(ctx context.Context, params WalletVoucherListParams) ([]domain.WalletVoucher, int64, error)
}

// GiftRequest holds input for gifting a voucher instance.
type GiftRequest struct {
	SenderUserID    int64
	WalletVoucherID int64
	RecipientUserID int64
	Message         string
}

// RedemptionService consumes voucher instances at merchants.
type RedemptionService interface {
	Redeem(ctx context.Context, req RedeemRequest) (*domain.Redemption, error)
}

// RedeemRequest holds input for a redemption. Exactly one of VoucherCode
// and QRPayload is expected; Amount nil means the full remaining value.
type RedeemRequest struct {
	VoucherCode      string
	QRPayload        string
	MerchantID       int64
	RedeemedByUserID *int64
	Amount           *decimal.Decimal
	Location         *string
}

// PayoutService manages merchant payout holds.
type PayoutService interface {
	CreateHold(ctx context.Context, merchantID int64, reason string) (*domain.PayoutHold, error)
	ListActiveHolds(ctx context.Context) ([]domain.PayoutHold, error)
}

// AuditService records audit logs asynchronously.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
