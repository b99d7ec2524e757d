package handler

import (
	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/dto"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment-related endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// ProcessPayment handles POST /api/v1/payments.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.paymentSvc.ProcessPayment(c.Request.Context(), ports.PaymentRequest{
		UserID:        userID,
		OrderID:       req.OrderID,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result.Message, result)
}

// GetStatus handles GET /api/v1/payments/:orderId.
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	orderID, err := pathID(c, "orderId")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.paymentSvc.GetPaymentStatus(c.Request.Context(), userID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", result)
}
