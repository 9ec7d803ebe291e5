package handler

//go:generate go tool mockery

import (
	"healthmonitor/internal/broadcast"
	"healthmonitor/internal/domain"
)

type MonitorService interface {
	Health() domain.Health
	Snapshot() domain.MetricsSnapshot
	ChangeTheme(theme string) error
	SubmitAlert(a domain.Alert) domain.Alert
}

type Hub interface {
	Subscribe(sink broadcast.Sink) *broadcast.Subscription
}
