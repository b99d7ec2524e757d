package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletVoucherStatus is the lifecycle state of an issued voucher instance.
type WalletVoucherStatus string

const (
	WalletVoucherStatusActive    WalletVoucherStatus = "ACTIVE"
	WalletVoucherStatusUsed      WalletVoucherStatus = "USED"
	WalletVoucherStatusExpired   WalletVoucherStatus = "EXPIRED"
	WalletVoucherStatusCancelled WalletVoucherStatus = "CANCELLED"
	WalletVoucherStatusGifted    WalletVoucherStatus = "GIFTED"
)

// WalletVoucherValidity is how long an issued instance can be redeemed.
const WalletVoucherValidity = 365 * 24 * time.Hour

// WalletVoucher is a redeemable voucher instance owned by a user.
// Invariants: RemainingValue <= Denomination; USED implies RemainingValue == 0.
type WalletVoucher struct {
	ID             int64               `json:"id"`
	VoucherCode    string              `json:"voucher_code"`
	QRPayload      string              `json:"qr_payload"`
	UserID         int64               `json:"user_id"`
	OrderID        int64               `json:"order_id"`
	VoucherID      int64               `json:"voucher_id"`
	MerchantID     int64               `json:"merchant_id"`
	Denomination   decimal.Decimal     `json:"denomination"`
	RemainingValue decimal.Decimal     `json:"remaining_value"`
	Status         WalletVoucherStatus `json:"status"`
	ValidFrom      time.Time           `json:"valid_from"`
	ValidUntil     time.Time           `json:"valid_until"`
	IsGift         bool                `json:"is_gift"`
	GiftedToUserID *int64              `json:"gifted_to_user_id,omitempty"`
	GiftMessage    *string             `json:"gift_message,omitempty"`
	GiftedAt       *time.Time          `json:"gifted_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// HasValue reports whether the instance is ACTIVE with value left.
func (w *WalletVoucher) HasValue() bool {
	return w.Status == WalletVoucherStatusActive && w.RemainingValue.IsPositive()
}

// IsExpiredAt reports whether the validity window has closed.
func (w *WalletVoucher) IsExpiredAt(now time.Time) bool {
	return now.After(w.ValidUntil)
}
