package broadcast

import (
	"context"
	"log/slog"
	"time"

	"healthmonitor/internal/domain"
)

const DefaultInterval = 5 * time.Second

type Publisher interface {
	Publish(ev domain.Event)
}

// PeriodicPublisher pushes a fresh snapshot to all subscribers on a fixed
// interval, independent of inbound traffic.
type PeriodicPublisher struct {
	source   SnapshotSource
	target   Publisher
	interval time.Duration
	logger   *slog.Logger
}

func NewPeriodicPublisher(source SnapshotSource, target Publisher, interval time.Duration, logger *slog.Logger) *PeriodicPublisher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &PeriodicPublisher{
		source:   source,
		target:   target,
		interval: interval,
		logger:   logger,
	}
}

// Run ticks until ctx is done.
func (p *PeriodicPublisher) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("periodic snapshot publisher started", slog.Duration("interval", p.interval))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("periodic snapshot publisher stopped")
			return nil
		case <-ticker.C:
			p.Tick()
		}
	}
}

func (p *PeriodicPublisher) Tick() {
	p.target.Publish(domain.MetricsEvent(p.source.Snapshot()))
}
