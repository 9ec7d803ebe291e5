package domain

import "time"

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

const (
	AlertTypeThemeChange = "theme_change"
	AlertTypeSystem      = "system"
	AlertTypeSecurity    = "security"
	AlertTypeCustom      = "custom"
)

type Alert struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

type AckResponse struct {
	Success bool `json:"success"`
}
