package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RedemptionStatus is the state of a redemption record.
type RedemptionStatus string

const (
	RedemptionStatusPending   RedemptionStatus = "PENDING"
	RedemptionStatusConfirmed RedemptionStatus = "CONFIRMED"
	RedemptionStatusCancelled RedemptionStatus = "CANCELLED"
	RedemptionStatusDisputed  RedemptionStatus = "DISPUTED"
)

// Redemption records a voucher instance being consumed at a merchant.
// VoucherCode is unique: one confirmed redemption per issued code.
type Redemption struct {
	ID               int64            `json:"id"`
	RedemptionCode   string           `json:"redemption_code"`
	WalletVoucherID  int64            `json:"wallet_voucher_id"`
	VoucherCode      string           `json:"voucher_code"`
	MerchantID       int64            `json:"merchant_id"`
	RedeemedByUserID *int64           `json:"redeemed_by_user_id,omitempty"`
	Amount           decimal.Decimal  `json:"amount"`
	Location         *string          `json:"location,omitempty"`
	Status           RedemptionStatus `json:"status"`
	RedeemedAt       time.Time        `json:"redeemed_at"`
}

// PayoutHoldStatus is the state of a payout hold.
type PayoutHoldStatus string

const (
	PayoutHoldStatusActive   PayoutHoldStatus = "ACTIVE"
	PayoutHoldStatusReleased PayoutHoldStatus = "RELEASED"
)

// PayoutHold blocks payouts to a merchant. At most one ACTIVE hold exists
// per merchant.
type PayoutHold struct {
	ID         int64            `json:"id"`
	MerchantID int64            `json:"merchant_id"`
	Reason     string           `json:"reason"`
	Status     PayoutHoldStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	ReleasedAt *time.Time       `json:"released_at,omitempty"`
}
