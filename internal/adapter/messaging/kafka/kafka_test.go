package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"

	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafkago.Message
	fail   error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail != nil {
		return w.fail
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *fakeWriter) written() []kafkago.Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]kafkago.Message(nil), w.msgs...)
}

func header(m kafkago.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProducer_FlushesOnClose(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, 8, zerolog.Nop())
	p.Start(context.Background())

	for i := 0; i < 5; i++ {
		require.NoError(t, p.Enqueue(context.Background(), kafkago.Message{Topic: "t", Value: []byte{byte(i)}}))
	}
	p.Close()

	assert.Len(t, w.written(), 5)
	assert.True(t, w.closed)
	assert.ErrorIs(t, p.Enqueue(context.Background(), kafkago.Message{}), ErrProducerClosed)
}

func TestProducer_WriteErrorIsLoggedNotReturned(t *testing.T) {
	w := &fakeWriter{fail: errors.New("broker down")}
	p := newProducer(w, 1, zerolog.Nop())
	p.Start(context.Background())

	assert.NoError(t, p.Enqueue(context.Background(), kafkago.Message{Topic: "t"}))
	p.Close()
	assert.Empty(t, w.written())
}

func TestProducer_EnqueueFullBufferFailsFast(t *testing.T) {
	p := newProducer(&fakeWriter{}, 1, zerolog.Nop())
	require.NoError(t, p.Enqueue(context.Background(), kafkago.Message{}))

	assert.ErrorIs(t, p.Enqueue(context.Background(), kafkago.Message{}), ErrBufferFull)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Enqueue(ctx, kafkago.Message{}), context.Canceled)
	p.Close()
}

// hangingWriter blocks every write until release is closed.
type hangingWriter struct {
	release chan struct{}
}

func (w *hangingWriter) WriteMessages(ctx context.Context, _ ...kafkago.Message) error {
	select {
	case <-w.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *hangingWriter) Close() error { return nil }

func TestPublisher_Publish_HungBrokerDoesNotBlockCaller(t *testing.T) {
	w := &hangingWriter{release: make(chan struct{})}
	prod := newProducer(w, 1, zerolog.Nop())
	prod.Start(context.Background())
	pub := NewPublisher(prod)

	evt, err := domain.NewEvent(domain.EventOrderConfirmed, "test", "21", domain.OrderEventPayload{OrderID: 21})
	require.NoError(t, err)

	finished := make(chan []error, 1)
	go func() {
		var errs []error
		for i := 0; i < 5; i++ {
			errs = append(errs, pub.Publish(context.Background(), domain.TopicOrderEvents, evt))
		}
		finished <- errs
	}()

	select {
	case errs := <-finished:
		var full int
		for _, err := range errs {
			if errors.Is(err, ErrBufferFull) {
				full++
			}
		}
		assert.GreaterOrEqual(t, full, 3)
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a hung broker")
	}

	close(w.release)
	prod.Close()
}

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	prod := newProducer(w, 4, zerolog.Nop())
	prod.Start(context.Background())
	pub := NewPublisher(prod)

	evt, err := domain.NewEvent(domain.EventOrderConfirmed, "test", "21", domain.OrderEventPayload{OrderID: 21})
	require.NoError(t, err)

	require.NoError(t, pub.Publish(context.Background(), domain.TopicOrderEvents, evt))
	prod.Close()

	msgs := w.written()
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.TopicOrderEvents, msgs[0].Topic)
	assert.Equal(t, "21", string(msgs[0].Key))
	assert.Equal(t, domain.EventOrderConfirmed, header(msgs[0], HeaderEventType))
	assert.Equal(t, "1", header(msgs[0], HeaderEventVersion))

	var decoded domain.Event
	require.NoError(t, json.Unmarshal(msgs[0].Value, &decoded))
	assert.Equal(t, evt.EventID, decoded.EventID)
}

func TestPublisher_Send(t *testing.T) {
	w := &fakeWriter{}
	prod := newProducer(w, 4, zerolog.Nop())
	prod.Start(context.Background())
	pub := NewPublisher(prod)

	require.NoError(t, pub.Send(context.Background(), domain.Notification{
		UserID: 8, Type: domain.NotificationVoucherGifted, Title: "Gift", Message: "You received a voucher",
	}))
	prod.Close()

	msgs := w.written()
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.TopicNotifications, msgs[0].Topic)
	assert.Equal(t, "8", string(msgs[0].Key))

	var evt domain.Event
	require.NoError(t, json.Unmarshal(msgs[0].Value, &evt))
	n, err := domain.DecodePayload[domain.Notification](evt)
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationVoucherGifted, n.Type)
}

func TestLogPublisher(t *testing.T) {
	lp := NewLogPublisher(zerolog.Nop())
	evt, err := domain.NewEvent(domain.EventOrderCreated, "test", "1", map[string]int{"order_id": 1})
	require.NoError(t, err)

	assert.NoError(t, lp.Publish(context.Background(), domain.TopicOrderEvents, evt))
	assert.NoError(t, lp.Send(context.Background(), domain.Notification{UserID: 1}))
}

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	committed []int64
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	if len(r.msgs) == 0 {
		r.mu.Unlock()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	r.mu.Unlock()
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *fakeReader) committedSnapshot() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.committed...)
}

func eventMessage(t *testing.T, offset int64, eventType string, payload any) kafkago.Message {
	t.Helper()
	evt, err := domain.NewEvent(eventType, "merchant-service", "3", payload)
	require.NoError(t, err)
	b, err := json.Marshal(evt)
	require.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: b}
}

func TestConsumer_DispatchesAndCommits(t *testing.T) {
	r := &fakeReader{msgs: []kafkago.Message{
		eventMessage(t, 1, domain.EventMerchantSuspended, domain.MerchantSuspendedPayload{MerchantID: 3, Reason: "fraud"}),
		{Offset: 2, Value: []byte("not json")},
		eventMessage(t, 3, "MERCHANT_APPROVED", map[string]int{"merchant_id": 4}),
	}}
	c := newConsumer(r, zerolog.Nop())

	var got []domain.MerchantSuspendedPayload
	c.Handle(domain.EventMerchantSuspended, func(_ context.Context, evt domain.Event) error {
		p, err := domain.DecodePayload[domain.MerchantSuspendedPayload](evt)
		if err != nil {
			return err
		}
		got = append(got, p)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	require.Eventually(t, func() bool { return len(r.committedSnapshot()) == 3 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].MerchantID)
	assert.True(t, r.closed)
}

func TestConsumer_FailingHandlerLeavesOffsetUncommitted(t *testing.T) {
	r := &fakeReader{msgs: []kafkago.Message{
		eventMessage(t, 42, domain.EventMerchantSuspended, domain.MerchantSuspendedPayload{MerchantID: 3}),
	}}
	c := newConsumer(r, zerolog.Nop())
	c.backoff = time.Millisecond
	c.maxBackoff = 4 * time.Millisecond

	var mu sync.Mutex
	calls := 0
	c.Handle(domain.EventMerchantSuspended, func(context.Context, domain.Event) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return errors.New("database unavailable")
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 5
	}, time.Second, time.Millisecond)
	assert.Empty(t, r.committedSnapshot())

	cancel()
	require.NoError(t, <-done)
	assert.Empty(t, r.committedSnapshot())
	assert.True(t, r.closed)
}

func TestConsumer_RecoveredHandlerCommits(t *testing.T) {
	r := &fakeReader{msgs: []kafkago.Message{
		eventMessage(t, 7, domain.EventMerchantSuspended, domain.MerchantSuspendedPayload{MerchantID: 3}),
	}}
	c := newConsumer(r, zerolog.Nop())
	c.backoff = time.Millisecond

	calls := 0
	c.Handle(domain.EventMerchantSuspended, func(context.Context, domain.Event) error {
		calls++
		if calls < 4 {
			return errors.New("db down")
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	require.Eventually(t, func() bool { return len(r.committedSnapshot()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 4, calls)
	assert.Equal(t, []int64{7}, r.committedSnapshot())
}
