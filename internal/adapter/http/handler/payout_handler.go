package handler

import (
	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/dto"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// PayoutHandler serves the internal payout hold endpoints.
type PayoutHandler struct {
	payouts ports.PayoutService
}

// NewPayoutHandler creates a new PayoutHandler.
func NewPayoutHandler(payouts ports.PayoutService) *PayoutHandler {
	return &PayoutHandler{payouts: payouts}
}

// CreateHold handles POST /api/v1/payouts/holds.
func (h *PayoutHandler) CreateHold(c *gin.Context) {
	var req dto.HoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	hold, err := h.payouts.CreateHold(c.Request.Context(), req.MerchantID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Payout hold created", hold)
}

// ListHolds handles GET /api/v1/payouts/holds.
func (h *PayoutHandler) ListHolds(c *gin.Context) {
	holds, err := h.payouts.ListActiveHolds(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", holds)
}
