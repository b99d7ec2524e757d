package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/config"

	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
)

var (
	// ErrProducerClosed is returned when publishing after Close.
	ErrProducerClosed = errors.New("kafka producer closed")
	// ErrBufferFull is returned when the write loop has fallen behind.
	ErrBufferFull = errors.New("kafka producer buffer full")
)

const writeTimeout = 10 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Producer buffers messages in memory and writes them from a single
// goroutine. Each message carries its own topic.
type Producer struct {
	w     messageWriter
	inbox chan kafkago.Message
	done  chan struct{}
	log   zerolog.Logger

	mu      sync.RWMutex
	closed  bool
	started bool
}

// NewProducer builds a producer for cfg.Brokers.
func NewProducer(cfg config.KafkaConfig, log zerolog.Logger) *Producer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: false,
		Transport:              &kafkago.Transport{ClientID: cfg.ClientID},
	}
	return newProducer(w, cfg.BufferSize, log)
}

func newProducer(w messageWriter, buf int, log zerolog.Logger) *Producer {
	if buf <= 0 {
		buf = 1
	}
	return &Producer{
		w:     w,
		inbox: make(chan kafkago.Message, buf),
		done:  make(chan struct{}),
		log:   log,
	}
}

// Start runs the write loop until Close drains the inbox.
func (p *Producer) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	base := context.WithoutCancel(ctx)
	go func() {
		defer close(p.done)
		for m := range p.inbox {
			p.write(base, m)
		}
		if err := p.w.Close(); err != nil {
			p.log.Error().Err(err).Msg("closing kafka writer")
		}
	}()
}

func (p *Producer) write(ctx context.Context, m kafkago.Message) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := p.w.WriteMessages(ctx, m); err != nil {
		p.log.Error().
			Err(err).
			Str("topic", m.Topic).
			Str("key", string(m.Key)).
			Str("side_effect", "event_publish").
			Msg("kafka write failed")
	}
}

// Enqueue hands m to the write loop. It never waits: when the buffer is
// full the message is rejected with ErrBufferFull.
func (p *Producer) Enqueue(ctx context.Context, m kafkago.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrProducerClosed
	}
	if m.Time.IsZero() {
		m.Time = time.Now()
	}
	select {
	case p.inbox <- m:
		return nil
	default:
		return ErrBufferFull
	}
}

// Close stops accepting messages and waits for buffered ones to be written.
func (p *Producer) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.inbox)
	started := p.started
	p.mu.Unlock()

	if started {
		<-p.done
		return
	}
	_ = p.w.Close()
}
