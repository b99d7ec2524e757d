package client

import (
	"context"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"

	"github.com/shopspring/decimal"
)

// WalletClient implements ports.WalletIssuer against a remote wallet service.
type WalletClient struct {
	base
}

func NewWalletClient(baseURL, secret string, timeout time.Duration) *WalletClient {
	return &WalletClient{base: newBase("wallet-service", baseURL, secret, timeout)}
}

type issueBody struct {
	OrderID      int64           `json:"order_id"`
	UserID       int64           `json:"user_id"`
	VoucherID    int64           `json:"voucher_id"`
	MerchantID   int64           `json:"merchant_id"`
	Denomination decimal.Decimal `json:"denomination"`
	Quantity     int             `json:"quantity"`
}

func (c *WalletClient) CreateInstances(ctx context.Context, req ports.IssueRequest) ([]domain.WalletVoucher, error) {
	var out []domain.WalletVoucher
	err := c.post(ctx, "/api/v1/wallet/issue", issueBody{
		OrderID:      req.OrderID,
		UserID:       req.UserID,
		VoucherID:    req.VoucherID,
		MerchantID:   req.MerchantID,
		Denomination: req.Denomination,
		Quantity:     req.Quantity,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
