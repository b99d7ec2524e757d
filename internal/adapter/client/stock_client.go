package client

import (
	"context"
	"fmt"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"

	"github.com/shopspring/decimal"
)

// StockClient implements ports.StockLedger against a remote voucher service.
type StockClient struct {
	base
}

func NewStockClient(baseURL, secret string, timeout time.Duration) *StockClient {
	return &StockClient{base: newBase("voucher-service", baseURL, secret, timeout)}
}

type reserveBody struct {
	Denomination decimal.Decimal `json:"denomination"`
	Quantity     int             `json:"quantity"`
}

type releaseBody struct {
	Quantity int `json:"quantity"`
}

func (c *StockClient) Reserve(ctx context.Context, req ports.ReserveRequest) (*domain.ReservationResult, error) {
	var res domain.ReservationResult
	path := fmt.Sprintf("/api/v1/vouchers/%d/reserve", req.VoucherID)
	if err := c.post(ctx, path, reserveBody{Denomination: req.Denomination, Quantity: req.Quantity}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *StockClient) Release(ctx context.Context, voucherID int64, quantity int) error {
	path := fmt.Sprintf("/api/v1/vouchers/%d/release", voucherID)
	return c.post(ctx, path, releaseBody{Quantity: quantity}, nil)
}
