package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"healthmonitor/internal/domain"
)

const DefaultFetchTimeout = 5 * time.Second

type State int

const (
	StateConnecting State = iota
	StateLive
	StateOffline
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateLive:
		return "live"
	case StateOffline:
		return "offline"
	default:
		return "unknown"
	}
}

type Fetcher interface {
	FetchSnapshot(ctx context.Context) (domain.MetricsSnapshot, error)
}

// Sync tracks the dashboard's view of the monitor. It is driven by channel
// events and falls back to a single snapshot fetch when the channel fails.
// It never reopens the channel on its own.
type Sync struct {
	mu       sync.Mutex
	state    State
	snapshot *domain.MetricsSnapshot

	fetcher      Fetcher
	fetchTimeout time.Duration
	onAlert      func(domain.Alert)
	updates      chan struct{}
	logger       *slog.Logger
}

type Option func(*Sync)

func WithFetchTimeout(d time.Duration) Option {
	return func(s *Sync) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithAlertHandler sets the callback for alert events received while live.
func WithAlertHandler(fn func(domain.Alert)) Option {
	return func(s *Sync) {
		s.onAlert = fn
	}
}

func New(fetcher Fetcher, logger *slog.Logger, opts ...Option) *Sync {
	s := &Sync{
		state:        StateConnecting,
		fetcher:      fetcher,
		fetchTimeout: DefaultFetchTimeout,
		onAlert:      func(domain.Alert) {},
		updates:      make(chan struct{}, 1),
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sync) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Sync) Connected() bool {
	return s.State() == StateLive
}

// Snapshot returns the displayed snapshot, or false before one has arrived.
func (s *Sync) Snapshot() (domain.MetricsSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return domain.MetricsSnapshot{}, false
	}
	return *s.snapshot, true
}

// Updates signals after every state or snapshot change. Signals coalesce, so
// readers should re-read State and Snapshot on each receive.
func (s *Sync) Updates() <-chan struct{} {
	return s.updates
}

func (s *Sync) HandleOpen() {
	s.mu.Lock()
	changed := s.state == StateConnecting
	if changed {
		s.state = StateLive
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// HandleMessage applies one channel message. Malformed messages are logged
// and dropped.
func (s *Sync) HandleMessage(data []byte) {
	var ev domain.RawEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		s.logger.Warn("dropped malformed message", slog.String("error", err.Error()))
		return
	}

	switch ev.Type {
	case domain.EventMetrics:
		var snap domain.MetricsSnapshot
		if err := json.Unmarshal(ev.Data, &snap); err != nil {
			s.logger.Warn("dropped malformed metrics event", slog.String("error", err.Error()))
			return
		}
		s.mu.Lock()
		live := s.state == StateLive
		if live {
			s.snapshot = &snap
		}
		s.mu.Unlock()
		if live {
			s.notify()
		}
	case domain.EventAlert:
		var a domain.Alert
		if err := json.Unmarshal(ev.Data, &a); err != nil {
			s.logger.Warn("dropped malformed alert event", slog.String("error", err.Error()))
			return
		}
		if s.State() == StateLive {
			s.onAlert(a)
		}
	default:
		s.logger.Debug("ignored event", slog.String("type", string(ev.Type)))
	}
}

func (s *Sync) HandleError(ctx context.Context, err error) {
	s.logger.Warn("monitor channel failed", slog.String("error", err.Error()))
	s.goOffline(ctx)
}

func (s *Sync) HandleClose(ctx context.Context) {
	s.logger.Info("monitor channel closed")
	s.goOffline(ctx)
}

// goOffline enters Offline and issues exactly one bounded snapshot fetch.
// Repeated failures while already offline do nothing.
func (s *Sync) goOffline(ctx context.Context) {
	s.mu.Lock()
	if s.state == StateOffline {
		s.mu.Unlock()
		return
	}
	s.state = StateOffline
	s.mu.Unlock()
	s.notify()

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	snap, err := s.fetcher.FetchSnapshot(fetchCtx)
	if err != nil {
		s.logger.Warn("fallback snapshot fetch failed", slog.String("error", err.Error()))
		return
	}

	s.mu.Lock()
	s.snapshot = &snap
	s.mu.Unlock()
	s.notify()
}

func (s *Sync) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
