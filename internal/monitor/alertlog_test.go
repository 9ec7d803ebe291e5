package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"healthmonitor/internal/domain"
)

func alertsWithMessages(msgs ...string) []domain.Alert {
	out := make([]domain.Alert, len(msgs))
	for i, m := range msgs {
		out[i] = domain.Alert{Message: m}
	}
	return out
}

func TestAlertLog_Wraparound(t *testing.T) {
	l := NewAlertLog(3)
	for _, m := range []string{"a", "b", "c", "d", "e"} {
		l.Push(domain.Alert{Message: m})
	}

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 3, l.Cap())
	assert.Equal(t, alertsWithMessages("e", "d", "c"), l.Recent(-1))
	assert.Equal(t, alertsWithMessages("e", "d"), l.Recent(2))
}

func TestAlertLog_RecentBeyondSize(t *testing.T) {
	l := NewAlertLog(5)
	l.Push(domain.Alert{Message: "only"})

	assert.Equal(t, alertsWithMessages("only"), l.Recent(10))
	assert.Empty(t, NewAlertLog(5).Recent(10))
}

func TestAlertLog_MinimumCapacity(t *testing.T) {
	l := NewAlertLog(0)
	l.Push(domain.Alert{Message: "x"})
	l.Push(domain.Alert{Message: "y"})

	assert.Equal(t, alertsWithMessages("y"), l.Recent(-1))
}
