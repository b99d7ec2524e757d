package service

import (
	"context"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/logger"

	"github.com/rs/zerolog"
)

// eventEmitter sends events and notifications best-effort. Failures are
// logged with a side_effect field and never returned.
type eventEmitter struct {
	pub      ports.EventPublisher
	notifier ports.NotificationSender
	log      zerolog.Logger
}

func newEventEmitter(pub ports.EventPublisher, notifier ports.NotificationSender, log zerolog.Logger) *eventEmitter {
	return &eventEmitter{pub: pub, notifier: notifier, log: log}
}

func (e *eventEmitter) emit(ctx context.Context, topic, eventType, key string, payload any) {
	if e.pub == nil {
		return
	}
	evt, err := domain.NewEvent(eventType, logger.ServiceName, key, payload)
	if err == nil {
		err = e.pub.Publish(ctx, topic, evt)
	}
	if err != nil {
		e.log.Warn().
			Err(err).
			Str("side_effect", "event_publish").
			Str("event_type", eventType).
			Str("correlation_id", key).
			Msg("event not published")
	}
}

func (e *eventEmitter) notify(ctx context.Context, n domain.Notification) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.Send(ctx, n); err != nil {
		e.log.Warn().
			Err(err).
			Str("side_effect", "notification").
			Str("notification_type", string(n.Type)).
			Int64("user_id", n.UserID).
			Msg("notification not sent")
	}
}
