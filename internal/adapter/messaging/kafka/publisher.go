package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/logger"

	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
)

// Header keys attached to every published message.
const (
	HeaderEventType    = "x-event-type"
	HeaderEventVersion = "x-event-version"
)

// Publisher implements ports.EventPublisher and ports.NotificationSender on
// top of a Producer. Messages are keyed by correlation id so events for one
// order land on one partition.
type Publisher struct {
	producer *Producer
}

func NewPublisher(p *Producer) *Publisher {
	return &Publisher{producer: p}
}

func (p *Publisher) Publish(ctx context.Context, topic string, evt domain.Event) error {
	msg, err := encode(topic, evt)
	if err != nil {
		return err
	}
	if err := p.producer.Enqueue(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", evt.EventType, err)
	}
	return nil
}

func (p *Publisher) Send(ctx context.Context, n domain.Notification) error {
	evt, err := notificationEvent(n)
	if err != nil {
		return err
	}
	return p.Publish(ctx, domain.TopicNotifications, evt)
}

func encode(topic string, evt domain.Event) (kafkago.Message, error) {
	b, err := json.Marshal(evt)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("marshal %s: %w", evt.EventType, err)
	}
	return kafkago.Message{
		Topic: topic,
		Key:   []byte(evt.CorrelationID),
		Value: b,
		Time:  evt.OccurredAt,
		Headers: []kafkago.Header{
			{Key: HeaderEventType, Value: []byte(evt.EventType)},
			{Key: HeaderEventVersion, Value: []byte(strconv.Itoa(evt.EventVersion))},
		},
	}, nil
}

func notificationEvent(n domain.Notification) (domain.Event, error) {
	return domain.NewEvent(domain.EventNotification, logger.ServiceName, domain.CorrelationKey(n.UserID), n)
}

// LogPublisher stands in for Kafka when no brokers are configured. It
// writes each event to the log and never fails.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher(log zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (l *LogPublisher) Publish(_ context.Context, topic string, evt domain.Event) error {
	l.log.Info().
		Str("topic", topic).
		Str("event_id", evt.EventID).
		Str("event_type", evt.EventType).
		Str("correlation_id", evt.CorrelationID).
		RawJSON("payload", evt.Payload).
		Msg("event published (log only)")
	return nil
}

func (l *LogPublisher) Send(ctx context.Context, n domain.Notification) error {
	evt, err := notificationEvent(n)
	if err != nil {
		return err
	}
	return l.Publish(ctx, domain.TopicNotifications, evt)
}
