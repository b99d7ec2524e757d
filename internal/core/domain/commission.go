package domain

import "github.com/shopspring/decimal"

var (
	// PlatformFeeRate is the platform's share of an order subtotal.
	PlatformFeeRate = decimal.RequireFromString("0.08")
	// MerchantShareRate is the merchant's share of an order subtotal.
	MerchantShareRate = decimal.RequireFromString("0.92")
)

// MoneyScale is the number of decimal places money is kept at.
const MoneyScale = 2

// Subtotal returns denomination x quantity rounded half-up to MoneyScale.
func Subtotal(denomination decimal.Decimal, quantity int) decimal.Decimal {
	return denomination.Mul(decimal.NewFromInt(int64(quantity))).Round(MoneyScale)
}

// SplitCommission computes the platform fee and merchant amount for a
// subtotal. Each share is rounded half-up independently; the two are not
// reconciled against the subtotal.
func SplitCommission(subtotal decimal.Decimal) (platformFee, merchantAmount decimal.Decimal) {
	platformFee = subtotal.Mul(PlatformFeeRate).Round(MoneyScale)
	merchantAmount = subtotal.Mul(MerchantShareRate).Round(MoneyScale)
	return platformFee, merchantAmount
}
