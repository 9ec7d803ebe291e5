package monitor

import "healthmonitor/internal/domain"

// AlertLog is a fixed-capacity ring buffer of alerts. Once full, each Push
// evicts the oldest entry.
type AlertLog struct {
	buf  []domain.Alert
	next int
	size int
}

func NewAlertLog(capacity int) *AlertLog {
	return &AlertLog{buf: make([]domain.Alert, max(1, capacity))}
}

func (l *AlertLog) Push(a domain.Alert) {
	l.buf[l.next] = a
	l.next = (l.next + 1) % len(l.buf)
	if l.size < len(l.buf) {
		l.size++
	}
}

func (l *AlertLog) Len() int {
	return l.size
}

func (l *AlertLog) Cap() int {
	return len(l.buf)
}

// Recent returns up to n alerts, newest first. A negative n returns all of them.
func (l *AlertLog) Recent(n int) []domain.Alert {
	if n < 0 || n > l.size {
		n = l.size
	}
	out := make([]domain.Alert, n)
	idx := l.next
	for i := range n {
		idx = (idx - 1 + len(l.buf)) % len(l.buf)
		out[i] = l.buf[idx]
	}
	return out
}
