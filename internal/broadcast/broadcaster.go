package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"healthmonitor/internal/domain"
	"healthmonitor/internal/metrics"
)

const (
	DefaultQueueSize   = 16
	DefaultSendTimeout = 2 * time.Second
)

// Sink is one subscriber's outbound channel. Send must honour the deadline
// carried by ctx.
type Sink interface {
	Send(ctx context.Context, payload []byte) error
	Close() error
}

type SnapshotSource interface {
	Snapshot() domain.MetricsSnapshot
}

type IDGenerator interface {
	Next() string
}

type Recorder interface {
	SubscriberAdded()
	SubscriberRemoved(reason string)
	EventPublished(eventType string)
}

type Config struct {
	QueueSize   int
	SendTimeout time.Duration
}

// Broadcaster fans events out to every registered subscriber. Each subscriber
// has a bounded queue drained by its own writer goroutine, so a slow or dead
// subscriber never blocks Publish or delays the others.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[string]*Subscription
	closed bool

	source      SnapshotSource
	ids         IDGenerator
	recorder    Recorder
	logger      *slog.Logger
	queueSize   int
	sendTimeout time.Duration
}

func New(source SnapshotSource, ids IDGenerator, recorder Recorder, cfg Config, logger *slog.Logger) *Broadcaster {
	b := &Broadcaster{
		subs:        make(map[string]*Subscription),
		source:      source,
		ids:         ids,
		recorder:    recorder,
		logger:      logger,
		queueSize:   cfg.QueueSize,
		sendTimeout: cfg.SendTimeout,
	}
	if b.queueSize <= 0 {
		b.queueSize = DefaultQueueSize
	}
	if b.sendTimeout <= 0 {
		b.sendTimeout = DefaultSendTimeout
	}
	if b.recorder == nil {
		b.recorder = nopRecorder{}
	}
	return b
}

type nopRecorder struct{}

func (nopRecorder) SubscriberAdded() {}
func (nopRecorder) SubscriberRemoved(string) {}
func (nopRecorder) EventPublished(string) {}

// Subscribe registers sink and queues a metrics snapshot as its first
// message. A subscriber whose snapshot cannot be encoded is not registered
// and its sink is closed. After Close the returned subscription is already
// finished.
func (b *Broadcaster) Subscribe(sink Sink) *Subscription {
	ctx, cancel := context.WithCancel(context.Background())
	sub := &Subscription{
		id:     b.ids.Next(),
		sink:   sink,
		queue:  make(chan []byte, b.queueSize),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
		b:      b,
	}

	initial, err := json.Marshal(domain.MetricsEvent(b.source.Snapshot()))
	if err != nil {
		b.logger.Error("failed to marshal initial snapshot, rejecting subscriber",
			slog.String("subscriber", sub.id),
			slog.String("error", err.Error()))
		cancel()
		go sub.writeLoop()
		return sub
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		cancel()
		go sub.writeLoop()
		return sub
	}
	b.subs[sub.id] = sub
	sub.queue <- initial
	b.mu.Unlock()

	b.recorder.SubscriberAdded()
	b.logger.Info("dashboard subscriber connected",
		slog.String("subscriber", sub.id),
		slog.Int("subscribers", b.Len()))

	go sub.writeLoop()
	return sub
}

// Unsubscribe removes sub. Removing an already removed subscription is a no-op.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.remove(sub, metrics.RemovedUnsubscribed)
}

// Publish delivers ev to every current subscriber in publish order. Failures
// are handled per subscriber and never reported to the caller.
func (b *Broadcaster) Publish(ev domain.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		b.logger.Error("failed to marshal event",
			slog.String("type", string(ev.Type)),
			slog.String("error", err.Error()))
		return
	}

	b.mu.Lock()
	var slow []*Subscription
	for _, sub := range b.subs {
		select {
		case sub.queue <- payload:
		default:
			slow = append(slow, sub)
		}
	}
	for _, sub := range slow {
		b.removeLocked(sub, metrics.RemovedSlow)
	}
	b.mu.Unlock()

	b.recorder.EventPublished(string(ev.Type))
}

func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close removes every subscriber and rejects new ones.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for _, sub := range b.subs {
		b.removeLocked(sub, metrics.RemovedShutdown)
	}
}

func (b *Broadcaster) remove(sub *Subscription, reason string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeLocked(sub, reason)
}

func (b *Broadcaster) removeLocked(sub *Subscription, reason string) {
	if cur, ok := b.subs[sub.id]; !ok || cur != sub {
		return
	}
	delete(b.subs, sub.id)
	sub.cancel()
	b.recorder.SubscriberRemoved(reason)

	attrs := []any{slog.String("subscriber", sub.id), slog.String("reason", reason)}
	if reason == metrics.RemovedSlow {
		b.logger.Warn("subscriber queue full, dropping subscriber", attrs...)
		return
	}
	b.logger.Info("dashboard subscriber disconnected", attrs...)
}

type Subscription struct {
	id     string
	sink   Sink
	queue  chan []byte
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	b      *Broadcaster
}

func (s *Subscription) ID() string {
	return s.id
}

// Done is closed once the subscription is removed and its sink closed.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) Close() {
	s.b.Unsubscribe(s)
}

func (s *Subscription) writeLoop() {
	defer close(s.done)
	defer func() {
		if err := s.sink.Close(); err != nil {
			s.b.logger.Debug("failed to close subscriber sink",
				slog.String("subscriber", s.id),
				slog.String("error", err.Error()))
		}
	}()

	for {
		select {
		case <-s.ctx.Done():
			return
		case payload := <-s.queue:
			ctx, cancel := context.WithTimeout(s.ctx, s.b.sendTimeout)
			err := s.sink.Send(ctx, payload)
			cancel()
			if err != nil {
				if s.ctx.Err() != nil {
					return
				}
				s.b.logger.Warn("failed to send to subscriber",
					slog.String("subscriber", s.id),
					slog.String("error", err.Error()))
				s.b.remove(s, metrics.RemovedSendFailed)
				return
			}
		}
	}
}
