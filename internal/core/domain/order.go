package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the business lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

// PaymentStatus is the payment lifecycle of an order.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
)

// Order is a user's purchase intent for a quantity of one voucher at one
// denomination. MerchantID stays nil until the stock reservation resolves it.
type Order struct {
	ID             int64           `json:"id"`
	OrderNumber    string          `json:"order_number"`
	UserID         int64           `json:"user_id"`
	VoucherID      int64           `json:"voucher_id"`
	MerchantID     *int64          `json:"merchant_id,omitempty"`
	Quantity       int             `json:"quantity"`
	Denomination   decimal.Decimal `json:"denomination"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	PlatformFee    decimal.Decimal `json:"platform_fee"`
	MerchantAmount decimal.Decimal `json:"merchant_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	OrderStatus    OrderStatus     `json:"order_status"`
	PaymentID      *string         `json:"payment_id,omitempty"`
	PaymentMethod  *string         `json:"payment_method,omitempty"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID int64) bool {
	return o.UserID == userID
}

// IsConfirmed reports whether payment has already been settled.
func (o *Order) IsConfirmed() bool {
	return o.OrderStatus == OrderStatusConfirmed
}

// CanTransition reports whether the order may leave PENDING. Orders only
// move PENDING -> CONFIRMED or PENDING -> CANCELLED.
func (o *Order) CanTransition() bool {
	return o.OrderStatus == OrderStatusPending
}

// PaymentStatusMessage is the human-readable description of a payment status.
func PaymentStatusMessage(s PaymentStatus) string {
	switch s {
	case PaymentStatusPending:
		return "Payment is pending"
	case PaymentStatusProcessing:
		return "Payment is being processed"
	case PaymentStatusCompleted:
		return "Payment completed successfully"
	case PaymentStatusFailed:
		return "Payment failed"
	case PaymentStatusRefunded:
		return "Payment has been refunded"
	case PaymentStatusCancelled:
		return "Payment was cancelled"
	default:
		return "Unknown payment status"
	}
}
