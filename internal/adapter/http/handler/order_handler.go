package handler

import (
	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/dto"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orders ports.OrderLedger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders ports.OrderLedger) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /api/v1/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), ports.CreateOrderRequest{
		UserID:       userID,
		VoucherID:    req.VoucherID,
		Denomination: req.Denomination,
		Quantity:     req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order created", order)
}

// List handles GET /api/v1/orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	page, size := pageParams(q.Page, q.Size)

	orders, total, err := h.orders.ListOrders(c.Request.Context(), userID, page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, orders, page, size, total)
}

// Get handles GET /api/v1/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", order)
}

// Cancel handles POST /api/v1/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.orders.CancelOrder(c.Request.Context(), orderID, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order cancelled", gin.H{"order_id": orderID})
}
