package metrics

import "time"

type HTTPMetric struct {
	Time       time.Time
	Method     string
	Path       string
	StatusCode int
	DurationMs float64
	ClientIP   string
	Error      string
}

type InfraMetric struct {
	Time          time.Time
	CacheHits     int64
	CacheMisses   int64
	CacheHitRatio float64
}

// Reasons a subscriber leaves the broadcaster.
const (
	RemovedUnsubscribed = "unsubscribed"
	RemovedSendFailed   = "send_failed"
	RemovedSlow         = "slow"
	RemovedShutdown     = "shutdown"
)
