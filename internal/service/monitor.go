package service

import (
	"log/slog"
	"time"

	"healthmonitor/internal/domain"
	"healthmonitor/internal/validation"
)

const (
	StatusHealthy    = "healthy"
	BootstrapMessage = "Health monitor initialized"
)

type Config struct {
	Version         string
	StrikeThreshold int
}

// MonitorService applies inbound observations to the store and publishes
// one alert event for every mutation that produced an alert.
type MonitorService struct {
	store     Store
	publisher Publisher
	strikes   StrikeCounter
	cfg       Config
	now       func() time.Time
	logger    *slog.Logger
}

func NewMonitorService(store Store, publisher Publisher, strikes StrikeCounter, cfg Config, logger *slog.Logger) *MonitorService {
	return &MonitorService{
		store:     store,
		publisher: publisher,
		strikes:   strikes,
		cfg:       cfg,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *MonitorService) RecordRequest(path string) {
	s.store.RecordRequest(path)
}

func (s *MonitorService) RecordError() {
	s.store.RecordError()
}

// ChangeTheme records a theme switch. Unknown themes leave the store
// untouched and return validation.ErrUnknownTheme.
func (s *MonitorService) ChangeTheme(theme string) error {
	t, err := validation.ParseTheme(theme)
	if err != nil {
		return err
	}
	if a, ok := s.store.RecordThemeChange(t); ok {
		s.publisher.Publish(domain.AlertEvent(a))
	}
	return nil
}

func (s *MonitorService) SubmitAlert(a domain.Alert) domain.Alert {
	stored := s.store.RecordAlert(a)
	s.publisher.Publish(domain.AlertEvent(stored))
	return stored
}

// FlagSuspicious counts a strike against ip. Once the strike count reaches
// the threshold the ip is blocked and a security alert is published.
func (s *MonitorService) FlagSuspicious(ip string) {
	count := s.strikes.Strike(ip)
	block := s.cfg.StrikeThreshold > 0 && count >= s.cfg.StrikeThreshold

	a, ok := s.store.RecordSuspicious(ip, block)
	if !ok {
		return
	}
	s.logger.Warn("ip blocked",
		slog.String("ip", ip),
		slog.Int("strikes", count),
	)
	s.publisher.Publish(domain.AlertEvent(a))
}

func (s *MonitorService) IsBlocked(ip string) bool {
	return s.store.IsBlocked(ip)
}

func (s *MonitorService) Health() domain.Health {
	return domain.Health{
		Status:    StatusHealthy,
		Uptime:    s.store.Uptime(),
		Memory:    s.store.Memory(),
		Timestamp: s.now().UTC(),
		Version:   s.cfg.Version,
	}
}

func (s *MonitorService) Snapshot() domain.MetricsSnapshot {
	return s.store.Snapshot()
}

// Bootstrap records the system initialization alert. It is called once the
// store and broadcaster are wired together.
func (s *MonitorService) Bootstrap() domain.Alert {
	return s.SubmitAlert(domain.Alert{
		Type:     domain.AlertTypeSystem,
		Message:  BootstrapMessage,
		Severity: domain.SeverityLow,
	})
}
