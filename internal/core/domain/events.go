package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Topics.
const (
	TopicOrderEvents      = "kado24.order.events"
	TopicRedemptionEvents = "kado24.redemption.events"
	TopicNotifications    = "kado24.notification.requests"
	TopicMerchantEvents   = "kado24.merchant.events"
)

// Event types.
const (
	EventOrderCreated        = "ORDER_CREATED"
	EventOrderConfirmed      = "ORDER_CONFIRMED"
	EventOrderCancelled      = "ORDER_CANCELLED"
	EventRedemptionCompleted = "REDEMPTION_COMPLETED"
	EventMerchantSuspended   = "MERCHANT_SUSPENDED"
	EventNotification        = "NOTIFICATION_REQUESTED"
)

// EventVersion is the envelope schema version.
const EventVersion = 1

// Event is the envelope for every message on the bus.
type Event struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// NewEvent wraps payload in an envelope.
func NewEvent(eventType, producer, correlationID string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Event{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  EventVersion,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		CorrelationID: correlationID,
		Payload:       raw,
	}, nil
}

// DecodePayload unmarshals the envelope payload into T.
func DecodePayload[T any](e Event) (T, error) {
	var t T
	if err := json.Unmarshal(e.Payload, &t); err != nil {
		return t, fmt.Errorf("decode %s payload: %w", e.EventType, err)
	}
	return t, nil
}

// CorrelationKey formats an id as an event correlation / partition key.
func CorrelationKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

type OrderEventPayload struct {
	OrderID        int64           `json:"order_id"`
	OrderNumber    string          `json:"order_number"`
	UserID         int64           `json:"user_id"`
	VoucherID      int64           `json:"voucher_id"`
	MerchantID     *int64          `json:"merchant_id,omitempty"`
	Quantity       int             `json:"quantity"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PlatformFee    decimal.Decimal `json:"platform_fee"`
	MerchantAmount decimal.Decimal `json:"merchant_amount"`
	OrderStatus    OrderStatus     `json:"order_status"`
	PaymentID      *string         `json:"payment_id,omitempty"`
}

// NewOrderEventPayload snapshots an order for publishing.
func NewOrderEventPayload(o *Order) OrderEventPayload {
	return OrderEventPayload{
		OrderID:        o.ID,
		OrderNumber:    o.OrderNumber,
		UserID:         o.UserID,
		VoucherID:      o.VoucherID,
		MerchantID:     o.MerchantID,
		Quantity:       o.Quantity,
		TotalAmount:    o.TotalAmount,
		PlatformFee:    o.PlatformFee,
		MerchantAmount: o.MerchantAmount,
		OrderStatus:    o.OrderStatus,
		PaymentID:      o.PaymentID,
	}
}

type RedemptionEventPayload struct {
	RedemptionID    int64           `json:"redemption_id"`
	RedemptionCode  string          `json:"redemption_code"`
	WalletVoucherID int64           `json:"wallet_voucher_id"`
	VoucherCode     string          `json:"voucher_code"`
	MerchantID      int64           `json:"merchant_id"`
	Amount          decimal.Decimal `json:"amount"`
	RedeemedAt      time.Time       `json:"redeemed_at"`
}

// MerchantSuspendedPayload is consumed from the merchant service.
type MerchantSuspendedPayload struct {
	MerchantID int64  `json:"merchant_id"`
	Reason     string `json:"reason"`
}

// NotificationType identifies a user-facing notification template.
type NotificationType string

const (
	NotificationVoucherReceived NotificationType = "VOUCHER_RECEIVED"
	NotificationVoucherGifted   NotificationType = "VOUCHER_GIFTED"
	NotificationVoucherRedeemed NotificationType = "VOUCHER_REDEEMED"
)

// Notification is a delivery request handed to the notification service.
type Notification struct {
	UserID  int64             `json:"user_id"`
	Type    NotificationType  `json:"type"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}
