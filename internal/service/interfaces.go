package service

//go:generate go tool mockery

import (
	"healthmonitor/internal/domain"
)

type Store interface {
	RecordRequest(path string)
	RecordError()
	RecordThemeChange(theme domain.Theme) (domain.Alert, bool)
	RecordAlert(a domain.Alert) domain.Alert
	RecordSuspicious(ip string, block bool) (domain.Alert, bool)
	IsBlocked(ip string) bool
	Uptime() int64
	Memory() domain.Memory
	Snapshot() domain.MetricsSnapshot
}

type Publisher interface {
	Publish(ev domain.Event)
}

type StrikeCounter interface {
	Strike(key string) int
}
