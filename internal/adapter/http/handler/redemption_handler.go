package handler

import (
	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/dto"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/middleware"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// RedemptionHandler handles merchant redemption scans.
type RedemptionHandler struct {
	redemptions ports.RedemptionService
}

// NewRedemptionHandler creates a new RedemptionHandler.
func NewRedemptionHandler(redemptions ports.RedemptionService) *RedemptionHandler {
	return &RedemptionHandler{redemptions: redemptions}
}

// Redeem handles POST /api/v1/redemptions. The redeeming merchant is the
// one named in X-Merchant-Id. A replayed scan by the same merchant gets the
// original redemption back.
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	merchantID, ok := middleware.MerchantID(c)
	if !ok {
		response.Error(c, apperror.ErrMissingMerchantIdentity())
		return
	}
	if req.MerchantID != 0 && req.MerchantID != merchantID {
		response.Error(c, apperror.ErrForbidden("merchant_id does not match the calling merchant"))
		return
	}

	in := ports.RedeemRequest{
		VoucherCode: req.VoucherCode,
		QRPayload:   req.QRPayload,
		MerchantID:  merchantID,
		Amount:      req.Amount,
		Location:    req.Location,
	}
	if id, ok := middleware.UserID(c); ok {
		in.RedeemedByUserID = &id
	}

	rd, err := h.redemptions.Redeem(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Voucher redeemed", rd)
}
