package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus represents the catalogue state of a voucher product.
type VoucherStatus string

const (
	VoucherStatusDraft   VoucherStatus = "DRAFT"
	VoucherStatusActive  VoucherStatus = "ACTIVE"
	VoucherStatusPaused  VoucherStatus = "PAUSED"
	VoucherStatusExpired VoucherStatus = "EXPIRED"
	VoucherStatusDeleted VoucherStatus = "DELETED"
)

// Voucher is a merchant's sellable voucher product. StockQuantity is nil
// or ignored when UnlimitedStock is set.
type Voucher struct {
	ID             int64             `json:"id"`
	MerchantID     int64             `json:"merchant_id"`
	Title          string            `json:"title"`
	Denominations  []decimal.Decimal `json:"denominations"`
	StockQuantity  *int              `json:"stock_quantity,omitempty"`
	UnlimitedStock bool              `json:"unlimited_stock"`
	TotalSold      int               `json:"total_sold"`
	ValidFrom      *time.Time        `json:"valid_from,omitempty"`
	ValidUntil     *time.Time        `json:"valid_until,omitempty"`
	Status         VoucherStatus     `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// IsOnSaleAt reports whether the voucher is ACTIVE and now falls inside its
// validity window. Stock is checked separately.
func (v *Voucher) IsOnSaleAt(now time.Time) bool {
	if v.Status != VoucherStatusActive {
		return false
	}
	if v.ValidFrom != nil && now.Before(*v.ValidFrom) {
		return false
	}
	if v.ValidUntil != nil && now.After(*v.ValidUntil) {
		return false
	}
	return true
}

// AcceptsDenomination reports whether d is offered. An empty allow-list
// accepts any denomination. Comparison is by decimal value, so 50 == 50.00.
func (v *Voucher) AcceptsDenomination(d decimal.Decimal) bool {
	if len(v.Denominations) == 0 {
		return true
	}
	for _, allowed := range v.Denominations {
		if allowed.Equal(d) {
			return true
		}
	}
	return false
}

// AvailableStock returns the remaining stock, treating a missing quantity
// on a limited voucher as zero.
func (v *Voucher) AvailableStock() int {
	if v.StockQuantity == nil {
		return 0
	}
	return *v.StockQuantity
}

// HasStockFor reports whether quantity units can be sold.
func (v *Voucher) HasStockFor(quantity int) bool {
	return v.UnlimitedStock || v.AvailableStock() >= quantity
}

// ReservationResult is returned by a successful stock reservation.
type ReservationResult struct {
	VoucherID      int64           `json:"voucher_id"`
	MerchantID     int64           `json:"merchant_id"`
	VoucherTitle   string          `json:"voucher_title"`
	Denomination   decimal.Decimal `json:"denomination"`
	Quantity       int             `json:"quantity"`
	RemainingStock *int            `json:"remaining_stock"`
	UnlimitedStock bool            `json:"unlimited_stock"`
}
