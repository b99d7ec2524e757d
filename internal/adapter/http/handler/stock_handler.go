package handler

import (
	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/dto"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// StockHandler serves the internal stock endpoints.
type StockHandler struct {
	stock ports.StockLedger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stock ports.StockLedger) *StockHandler {
	return &StockHandler{stock: stock}
}

// Reserve handles POST /api/v1/vouchers/:id/reserve.
func (h *StockHandler) Reserve(c *gin.Context) {
	voucherID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.stock.Reserve(c.Request.Context(), ports.ReserveRequest{
		VoucherID:    voucherID,
		Denomination: req.Denomination,
		Quantity:     req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock reserved", result)
}

// Release handles POST /api/v1/vouchers/:id/release.
func (h *StockHandler) Release(c *gin.Context) {
	voucherID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.stock.Release(c.Request.Context(), voucherID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock released", gin.H{"voucher_id": voucherID, "quantity": req.Quantity})
}
