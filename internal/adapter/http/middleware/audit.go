package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
}

// auditRoutes maps registered route patterns to audit actions.
var auditRoutes = map[string]auditRoute{
	"POST /api/v1/orders":                   {domain.AuditActionOrderCreate, "order"},
	"POST /api/v1/orders/:id/cancel":        {domain.AuditActionOrderCancel, "order"},
	"POST /api/v1/payments":                 {domain.AuditActionPayment, "order"},
	"POST /api/v1/wallet/vouchers/:id/gift": {domain.AuditActionGift, "wallet_voucher"},
	"POST /api/v1/redemptions":              {domain.AuditActionRedeem, "redemption"},
	"POST /api/v1/vouchers/:id/reserve":     {domain.AuditActionReserve, "voucher"},
	"POST /api/v1/vouchers/:id/release":     {domain.AuditActionRelease, "voucher"},
	"POST /api/v1/wallet/issue":             {domain.AuditActionWalletIssue, "order"},
	"POST /api/v1/payouts/holds":            {domain.AuditActionPayoutHold, "payout_hold"},
}

// AuditLog records successful write operations after the handler ran.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		route, ok := auditRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		entry := &domain.AuditLog{
			ID:           uuid.New(),
			Action:       route.action,
			ResourceType: route.resourceType,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			CreatedAt:    time.Now().UTC(),
		}
		if id, ok := UserID(c); ok {
			entry.ActorID = &id
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"internal":   c.GetBool(CtxInternal),
			"request_id": c.GetString(response.RequestIDKey),
		})
		entry.Details = string(details)

		auditSvc.Log(c.Request.Context(), entry)
	}
}
