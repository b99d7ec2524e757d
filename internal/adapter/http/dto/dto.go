package dto

import (
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ---- Internal (service-to-service) ----

// ReserveRequest is the request body for a stock reservation.
type ReserveRequest struct {
	Denomination decimal.Decimal `json:"denomination" binding:"positive_money"`
	Quantity     int             `json:"quantity" binding:"required,gt=0,lte=100"`
}

// ReleaseRequest is the request body for returning reserved stock.
type ReleaseRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// IssueRequest is the request body for wallet issuance.
type IssueRequest struct {
	OrderID      int64           `json:"order_id" binding:"required,gt=0"`
	UserID       int64           `json:"user_id" binding:"required,gt=0"`
	VoucherID    int64           `json:"voucher_id" binding:"required,gt=0"`
	MerchantID   int64           `json:"merchant_id" binding:"required,gt=0"`
	Denomination decimal.Decimal `json:"denomination" binding:"positive_money"`
	Quantity     int             `json:"quantity" binding:"required,gt=0,lte=100"`
}

// HoldRequest is the request body for placing a payout hold.
type HoldRequest struct {
	MerchantID int64  `json:"merchant_id" binding:"required,gt=0"`
	Reason     string `json:"reason" binding:"required,max=500"`
}

// IssuedVoucherResponse summarises one issued wallet voucher. It mirrors
// the shape the remote wallet client decodes.
type IssuedVoucherResponse struct {
	ID           int64           `json:"id"`
	VoucherCode  string          `json:"voucher_code"`
	UserID       int64           `json:"user_id"`
	OrderID      int64           `json:"order_id"`
	VoucherID    int64           `json:"voucher_id"`
	MerchantID   int64           `json:"merchant_id"`
	Denomination decimal.Decimal `json:"denomination"`
	Status       string          `json:"status"`
	ValidUntil   time.Time       `json:"valid_until"`
}

// ---- Public ----

// CreateOrderRequest is the request body for order creation.
type CreateOrderRequest struct {
	VoucherID    int64           `json:"voucher_id" binding:"required,gt=0"`
	Denomination decimal.Decimal `json:"denomination" binding:"positive_money"`
	Quantity     int             `json:"quantity" binding:"required,gt=0,lte=100"`
}

// PaymentRequest is the request body for paying an order.
type PaymentRequest struct {
	OrderID       int64           `json:"order_id" binding:"required,gt=0"`
	PaymentMethod string          `json:"payment_method" binding:"required,max=32,safe_id"`
	Amount        decimal.Decimal `json:"amount" binding:"positive_money"`
}

// GiftRequest is the request body for gifting a wallet voucher.
type GiftRequest struct {
	RecipientUserID int64  `json:"recipient_user_id" binding:"required,gt=0"`
	Message         string `json:"message" binding:"max=500"`
}

// RedeemRequest is the request body for a redemption. One of VoucherCode
// and QRPayload is required. MerchantID is optional and must match the
// X-Merchant-Id header when given.
type RedeemRequest struct {
	VoucherCode string           `json:"voucher_code" binding:"required_without=QRPayload,omitempty,voucher_code"`
	QRPayload   string           `json:"qr_payload" binding:"required_without=VoucherCode,max=2048"`
	MerchantID  int64            `json:"merchant_id" binding:"omitempty,gt=0"`
	Amount      *decimal.Decimal `json:"amount,omitempty" binding:"omitempty,positive_money"`
	Location    *string          `json:"location,omitempty" binding:"omitempty,max=200"`
}

// WalletListQuery holds the query parameters for listing wallet vouchers.
type WalletListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE USED EXPIRED CANCELLED GIFTED"`
	Page   int    `form:"page" binding:"omitempty,gte=0"`
	Size   int    `form:"size" binding:"omitempty,gte=1,lte=100"`
}

// PageQuery holds the pagination query parameters.
type PageQuery struct {
	Page int `form:"page" binding:"omitempty,gte=0"`
	Size int `form:"size" binding:"omitempty,gte=1,lte=100"`
}

// NewIssuedVoucherResponses converts issued instances. The QR payload is
// left out; holders fetch it from their wallet.
func NewIssuedVoucherResponses(list []domain.WalletVoucher) []IssuedVoucherResponse {
	out := make([]IssuedVoucherResponse, 0, len(list))
	for _, wv := range list {
		out = append(out, IssuedVoucherResponse{
			ID:           wv.ID,
			VoucherCode:  wv.VoucherCode,
			UserID:       wv.UserID,
			OrderID:      wv.OrderID,
			VoucherID:    wv.VoucherID,
			MerchantID:   wv.MerchantID,
			Denomination: wv.Denomination,
			Status:       string(wv.Status),
			ValidUntil:   wv.ValidUntil,
		})
	}
	return out
}
