package monitor

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"healthmonitor/internal/domain"
)

const (
	DefaultAlertCapacity  = 50
	DefaultSnapshotAlerts = 10
)

// Store owns the runtime counters and the alert log for one process.
type Store struct {
	mu sync.RWMutex

	now            func() time.Time
	memory         MemoryReader
	snapshotAlerts int

	startTime time.Time
	requests  uint64
	errors    uint64
	themes    map[domain.Theme]uint64
	pageViews map[domain.Page]uint64

	suspicious        uint64
	blocked           map[string]struct{}
	lastSecurityEvent *time.Time

	alerts *AlertLog
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithMemoryReader(r MemoryReader) Option {
	return func(s *Store) {
		if r != nil {
			s.memory = r
		}
	}
}

func WithAlertCapacity(n int) Option {
	return func(s *Store) {
		s.alerts = NewAlertLog(n)
	}
}

// WithSnapshotAlerts caps the alerts included in snapshots. Negative values
// keep the default.
func WithSnapshotAlerts(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.snapshotAlerts = n
		}
	}
}

type noMemory struct{}

func (noMemory) Read() domain.Memory { return domain.Memory{} }

func NewStore(opts ...Option) *Store {
	s := &Store{
		now:            time.Now,
		memory:         noMemory{},
		snapshotAlerts: DefaultSnapshotAlerts,
		themes:         make(map[domain.Theme]uint64, len(domain.Themes)),
		pageViews:      make(map[domain.Page]uint64, len(domain.Pages)),
		blocked:        make(map[string]struct{}),
		alerts:         NewAlertLog(DefaultAlertCapacity),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, t := range domain.Themes {
		s.themes[t] = 0
	}
	for _, p := range domain.Pages {
		s.pageViews[p] = 0
	}
	s.startTime = s.now().UTC()
	return s
}

func (s *Store) RecordRequest(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests++
	if page, ok := domain.PageForPath(path); ok {
		s.pageViews[page]++
	}
}

func (s *Store) RecordError() {
	s.mu.Lock()
	s.errors++
	s.mu.Unlock()
}

// RecordThemeChange counts a switch to a known theme and logs a theme_change
// alert. Unknown themes leave the store untouched and return false.
func (s *Store) RecordThemeChange(theme domain.Theme) (domain.Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.themes[theme]; !ok {
		return domain.Alert{}, false
	}
	s.themes[theme]++

	a := domain.Alert{
		Type:      domain.AlertTypeThemeChange,
		Message:   fmt.Sprintf("User switched to %s theme", theme),
		Severity:  domain.SeverityLow,
		Timestamp: s.now().UTC(),
	}
	s.alerts.Push(a)
	return a, true
}

// RecordAlert stores a caller-supplied alert. A zero timestamp is set to now.
func (s *Store) RecordAlert(a domain.Alert) domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.Timestamp.IsZero() {
		a.Timestamp = s.now().UTC()
	}
	s.alerts.Push(a)
	return a
}

// RecordSuspicious counts a suspicious request from ip. With block set, the
// first call for an ip adds it to the blocklist and returns a security alert.
func (s *Store) RecordSuspicious(ip string, block bool) (domain.Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	s.suspicious++
	s.lastSecurityEvent = &now

	if !block {
		return domain.Alert{}, false
	}
	if _, ok := s.blocked[ip]; ok {
		return domain.Alert{}, false
	}
	s.blocked[ip] = struct{}{}

	a := domain.Alert{
		Type:      domain.AlertTypeSecurity,
		Message:   fmt.Sprintf("Blocked %s after repeated rate limit violations", ip),
		Severity:  domain.SeverityHigh,
		Timestamp: now,
	}
	s.alerts.Push(a)
	return a, true
}

func (s *Store) IsBlocked(ip string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocked[ip]
	return ok
}

func (s *Store) Uptime() int64 {
	return int64(s.now().Sub(s.startTime) / time.Second)
}

func (s *Store) Memory() domain.Memory {
	return s.memory.Read()
}

func (s *Store) Snapshot() domain.MetricsSnapshot {
	mem := s.memory.Read()

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now().UTC()
	snap := domain.MetricsSnapshot{
		StartTime: s.startTime,
		Uptime:    int64(now.Sub(s.startTime) / time.Second),
		Requests:  s.requests,
		Errors:    s.errors,
		Themes:    make(map[domain.Theme]uint64, len(s.themes)),
		PageViews: make(map[domain.Page]uint64, len(s.pageViews)),
		Security: domain.Security{
			SuspiciousRequests: s.suspicious,
			BlockedIPs:         make([]string, 0, len(s.blocked)),
		},
		Memory:    mem,
		Timestamp: now,
		Alerts:    s.alerts.Recent(s.snapshotAlerts),
	}
	for k, v := range s.themes {
		snap.Themes[k] = v
	}
	for k, v := range s.pageViews {
		snap.PageViews[k] = v
	}
	for ip := range s.blocked {
		snap.Security.BlockedIPs = append(snap.Security.BlockedIPs, ip)
	}
	slices.Sort(snap.Security.BlockedIPs)
	if s.lastSecurityEvent != nil {
		t := *s.lastSecurityEvent
		snap.Security.LastSecurityEvent = &t
	}
	return snap
}

// Alerts returns every stored alert, newest first.
func (s *Store) Alerts() []domain.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alerts.Recent(-1)
}
