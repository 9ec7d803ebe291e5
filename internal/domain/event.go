package domain

import "encoding/json"

type EventType string

const (
	EventMetrics EventType = "metrics"
	EventAlert   EventType = "alert"
)

// Event is the message pushed over the subscription channel. Data holds a
// MetricsSnapshot for EventMetrics and an Alert for EventAlert.
type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data"`
}

func MetricsEvent(s MetricsSnapshot) Event {
	return Event{Type: EventMetrics, Data: s}
}

func AlertEvent(a Alert) Event {
	return Event{Type: EventAlert, Data: a}
}

// RawEvent is the receiving side of Event, with Data left undecoded until the
// type is known.
type RawEvent struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data"`
}
