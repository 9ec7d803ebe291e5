package broadcast_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthmonitor/internal/broadcast"
	"healthmonitor/internal/domain"
	"healthmonitor/internal/idgen"
	"healthmonitor/internal/monitor"
)

type fakeSink struct {
	mu       sync.Mutex
	messages [][]byte
	sendErr  error
	block    chan struct{}
	closed   bool
}

func (s *fakeSink) Send(ctx context.Context, payload []byte) error {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return s.sendErr
	}
	s.messages = append(s.messages, payload)
	return nil
}

func (s *fakeSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSink) Events(t *testing.T) []domain.RawEvent {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RawEvent, len(s.messages))
	for i, m := range s.messages {
		require.NoError(t, json.Unmarshal(m, &out[i]))
	}
	return out
}

func (s *fakeSink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func (s *fakeSink) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func newTestBroadcaster(t *testing.T, cfg broadcast.Config) (*broadcast.Broadcaster, *monitor.Store) {
	t.Helper()
	ids, err := idgen.New()
	require.NoError(t, err)
	store := monitor.NewStore()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	b := broadcast.New(store, ids, nil, cfg, logger)
	t.Cleanup(b.Close)
	return b, store
}

func waitDone(t *testing.T, sub *broadcast.Subscription) {
	t.Helper()
	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not finish")
	}
}

func TestSubscribe_SendsInitialSnapshot(t *testing.T) {
	b, store := newTestBroadcaster(t, broadcast.Config{})
	store.RecordRequest("/")

	sink := &fakeSink{}
	b.Subscribe(sink)

	require.Eventually(t, func() bool { return sink.Count() == 1 }, time.Second, 5*time.Millisecond)

	events := sink.Events(t)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventMetrics, events[0].Type)

	var snap domain.MetricsSnapshot
	require.NoError(t, json.Unmarshal(events[0].Data, &snap))
	assert.Equal(t, uint64(1), snap.Requests)
	assert.Equal(t, 1, b.Len())
}

func TestPublish_RoundTripsSnapshot(t *testing.T) {
	b, store := newTestBroadcaster(t, broadcast.Config{})
	store.RecordRequest("/work")
	store.RecordThemeChange(domain.ThemeDeveloper)
	store.RecordSuspicious("198.51.100.7", true)

	sink := &fakeSink{}
	b.Subscribe(sink)
	require.Eventually(t, func() bool { return sink.Count() == 1 }, time.Second, 5*time.Millisecond)

	want := store.Snapshot()
	b.Publish(domain.MetricsEvent(want))
	require.Eventually(t, func() bool { return sink.Count() == 2 }, time.Second, 5*time.Millisecond)

	var got domain.MetricsSnapshot
	require.NoError(t, json.Unmarshal(sink.Events(t)[1].Data, &got))
	assert.Equal(t, want, got)
}

func TestPublish_FailingSubscriberDoesNotAffectOthers(t *testing.T) {
	b, _ := newTestBroadcaster(t, broadcast.Config{})

	broken := &fakeSink{}
	healthy := &fakeSink{}
	brokenSub := b.Subscribe(broken)
	b.Subscribe(healthy)
	require.Eventually(t, func() bool { return broken.Count() == 1 && healthy.Count() == 1 }, time.Second, 5*time.Millisecond)

	broken.mu.Lock()
	broken.sendErr = errors.New("connection reset")
	broken.mu.Unlock()

	alert := domain.Alert{Type: "test", Message: "hello", Severity: domain.SeverityMedium}
	assert.NotPanics(t, func() { b.Publish(domain.AlertEvent(alert)) })

	require.Eventually(t, func() bool { return healthy.Count() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, domain.EventAlert, healthy.Events(t)[1].Type)

	waitDone(t, brokenSub)
	assert.True(t, broken.IsClosed())
	assert.Equal(t, 1, b.Len())
}

func TestPublish_PreservesOrder(t *testing.T) {
	const n = 100
	b, _ := newTestBroadcaster(t, broadcast.Config{QueueSize: n + 1})

	sinks := []*fakeSink{{}, {}, {}}
	for _, s := range sinks {
		b.Subscribe(s)
	}

	for i := range n {
		b.Publish(domain.AlertEvent(domain.Alert{Message: fmt.Sprintf("%03d", i)}))
	}

	for _, s := range sinks {
		require.Eventually(t, func() bool { return s.Count() == n+1 }, 2*time.Second, 5*time.Millisecond)
		events := s.Events(t)
		assert.Equal(t, domain.EventMetrics, events[0].Type)
		for i, ev := range events[1:] {
			var a domain.Alert
			require.NoError(t, json.Unmarshal(ev.Data, &a))
			assert.Equal(t, fmt.Sprintf("%03d", i), a.Message)
		}
	}
}

func TestPublish_SlowSubscriberIsPruned(t *testing.T) {
	b, _ := newTestBroadcaster(t, broadcast.Config{QueueSize: 2, SendTimeout: time.Minute})

	slow := &fakeSink{block: make(chan struct{})}
	fast := &fakeSink{}
	slowSub := b.Subscribe(slow)
	b.Subscribe(fast)

	for range 5 {
		b.Publish(domain.AlertEvent(domain.Alert{Message: "burst"}))
	}

	waitDone(t, slowSub)
	require.Eventually(t, func() bool { return fast.Count() == 6 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, b.Len())
}

func TestPublish_SendTimeoutPrunesSubscriber(t *testing.T) {
	b, _ := newTestBroadcaster(t, broadcast.Config{SendTimeout: 20 * time.Millisecond})

	stuck := &fakeSink{block: make(chan struct{})}
	sub := b.Subscribe(stuck)

	waitDone(t, sub)
	assert.Equal(t, 0, b.Len())
	assert.True(t, stuck.IsClosed())
}

func TestUnsubscribe_Idempotent(t *testing.T) {
	b, _ := newTestBroadcaster(t, broadcast.Config{})

	sink := &fakeSink{}
	sub := b.Subscribe(sink)
	assert.NotEmpty(t, sub.ID())

	b.Unsubscribe(sub)
	assert.NotPanics(t, func() {
		b.Unsubscribe(sub)
		sub.Close()
	})

	waitDone(t, sub)
	assert.Equal(t, 0, b.Len())
	assert.True(t, sink.IsClosed())

	b.Publish(domain.AlertEvent(domain.Alert{Message: "after"}))
	assert.LessOrEqual(t, sink.Count(), 1)
}

func TestClose_RejectsNewSubscribers(t *testing.T) {
	b, _ := newTestBroadcaster(t, broadcast.Config{})

	first := &fakeSink{}
	firstSub := b.Subscribe(first)
	b.Close()
	waitDone(t, firstSub)

	late := &fakeSink{}
	lateSub := b.Subscribe(late)
	waitDone(t, lateSub)

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, late.Count())
	assert.True(t, late.IsClosed())
}

type snapshotFunc func() domain.MetricsSnapshot

func (f snapshotFunc) Snapshot() domain.MetricsSnapshot { return f() }

func TestSubscribe_UnencodableSnapshotClosesSink(t *testing.T) {
	ids, err := idgen.New()
	require.NoError(t, err)

	source := snapshotFunc(func() domain.MetricsSnapshot {
		return domain.MetricsSnapshot{
			Alerts: []domain.Alert{{Timestamp: time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)}},
		}
	})
	b := broadcast.New(source, ids, nil, broadcast.Config{}, slog.New(slog.NewTextHandler(os.Stdout, nil)))
	t.Cleanup(b.Close)

	sink := &fakeSink{}
	sub := b.Subscribe(sink)
	waitDone(t, sub)

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, sink.Count())
	assert.True(t, sink.IsClosed())
}
