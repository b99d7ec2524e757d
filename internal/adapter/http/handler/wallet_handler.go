package handler

import (
	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/dto"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet endpoints, including internal issuance.
type WalletHandler struct {
	wallet ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallet ports.WalletService) *WalletHandler {
	return &WalletHandler{wallet: wallet}
}

// Issue handles POST /api/v1/wallet/issue.
func (h *WalletHandler) Issue(c *gin.Context) {
	var req dto.IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	issued, err := h.wallet.CreateInstances(c.Request.Context(), ports.IssueRequest{
		OrderID:      req.OrderID,
		UserID:       req.UserID,
		VoucherID:    req.VoucherID,
		MerchantID:   req.MerchantID,
		Denomination: req.Denomination,
		Quantity:     req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Wallet vouchers issued", dto.NewIssuedVoucherResponses(issued))
}

// ListVouchers handles GET /api/v1/wallet/vouchers.
func (h *WalletHandler) ListVouchers(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var q dto.WalletListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	params := ports.WalletVoucherListParams{UserID: userID}
	params.Page, params.Size = pageParams(q.Page, q.Size)
	if q.Status != "" {
		st := domain.WalletVoucherStatus(q.Status)
		params.Status = &st
	}

	list, total, err := h.wallet.ListVouchers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, list, params.Page, params.Size, total)
}

// Gift handles POST /api/v1/wallet/vouchers/:id/gift.
func (h *WalletHandler) Gift(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	walletVoucherID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.GiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wv, err := h.wallet.Gift(c.Request.Context(), ports.GiftRequest{
		SenderUserID:    userID,
		WalletVoucherID: walletVoucherID,
		RecipientUserID: req.RecipientUserID,
		Message:         req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Voucher gifted", wv)
}
