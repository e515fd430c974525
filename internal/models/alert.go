package models

import "time"

// AlertTargetAll broadcasts to every zone.
const AlertTargetAll = "all"

type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "info"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

type Alert struct {
	ID        string        `json:"id"`
	AlertType string        `json:"alertType"`
	Target    string        `json:"target"`
	Language  string        `json:"language"`
	Message   string        `json:"message"`
	Severity  AlertSeverity `json:"severity"`
	Timestamp time.Time     `json:"timestamp"`
	Status    string        `json:"status"`
	AudioURL  string        `json:"audioUrl,omitempty"`
}
