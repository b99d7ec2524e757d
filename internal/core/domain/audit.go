package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionOrderCreate AuditAction = "ORDER_CREATE"
	AuditActionOrderCancel AuditAction = "ORDER_CANCEL"
	AuditActionPayment     AuditAction = "PAYMENT"
	AuditActionGift        AuditAction = "GIFT"
	AuditActionRedeem      AuditAction = "REDEEM"
	AuditActionReserve     AuditAction = "STOCK_RESERVE"
	AuditActionRelease     AuditAction = "STOCK_RELEASE"
	AuditActionWalletIssue AuditAction = "WALLET_ISSUE"
	AuditActionPayoutHold  AuditAction = "PAYOUT_HOLD"
)

// AuditLog records a single write operation. ActorID is the user id for
// public calls and nil for internal service calls.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *int64      `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
