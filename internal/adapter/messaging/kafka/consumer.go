package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/config"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"

	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
)

// Handler processes one decoded event. A nil return commits the offset.
type Handler func(ctx context.Context, evt domain.Event) error

type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Consumer reads one topic in a consumer group and dispatches events by
// type. Messages are handled in order. Malformed events and events with no
// handler are committed and skipped. A failing handler is retried with
// capped backoff until it succeeds or ctx ends, and the offset is only
// committed after success, so an uncommitted event is redelivered on the
// next start.
type Consumer struct {
	r        messageReader
	handlers map[string]Handler
	log      zerolog.Logger

	backoff    time.Duration
	maxBackoff time.Duration
}

// NewConsumer creates a group reader for topic.
func NewConsumer(cfg config.KafkaConfig, topic string, log zerolog.Logger) *Consumer {
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.ConsumerGroup,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0,
	})
	return newConsumer(r, log)
}

func newConsumer(r messageReader, log zerolog.Logger) *Consumer {
	return &Consumer{
		r:          r,
		handlers:   make(map[string]Handler),
		log:        log,
		backoff:    500 * time.Millisecond,
		maxBackoff: 30 * time.Second,
	}
}

// Handle registers h for eventType. Events with no handler are committed
// and skipped.
func (c *Consumer) Handle(eventType string, h Handler) {
	c.handlers[eventType] = h
}

// Run blocks until ctx is cancelled or the reader fails.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.r.Close()

	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if !c.dispatch(ctx, m) {
			return nil
		}

		if err := c.r.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.log.Error().Err(err).Int64("offset", m.Offset).Msg("commit failed")
		}
	}
}

// dispatch reports whether m is done with and may be committed. It only
// returns false when ctx ends before the handler succeeds.
func (c *Consumer) dispatch(ctx context.Context, m kafkago.Message) bool {
	var evt domain.Event
	if err := json.Unmarshal(m.Value, &evt); err != nil {
		c.log.Warn().Err(err).Int64("offset", m.Offset).Msg("skipping malformed event")
		return true
	}

	h, ok := c.handlers[evt.EventType]
	if !ok {
		return true
	}

	wait := c.backoff
	for attempt := 1; ; attempt++ {
		err := h(ctx, evt)
		if err == nil {
			return true
		}
		c.log.Warn().
			Err(err).
			Str("event_id", evt.EventID).
			Str("event_type", evt.EventType).
			Int64("offset", m.Offset).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("event handler failed, retrying")

		select {
		case <-ctx.Done():
			c.log.Warn().Str("event_id", evt.EventID).Int64("offset", m.Offset).Msg("leaving event uncommitted for redelivery")
			return false
		case <-time.After(wait):
		}
		wait = min(wait*2, c.maxBackoff)
	}
}
