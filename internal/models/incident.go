package models

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

type IncidentType string

const (
	IncidentTypeFire          IncidentType = "fire"
	IncidentTypeMedical       IncidentType = "medical"
	IncidentTypeSecurity      IncidentType = "security"
	IncidentTypePanic         IncidentType = "panic"
	IncidentTypeCrowd         IncidentType = "crowd"
	IncidentTypeEnvironmental IncidentType = "environmental"
	IncidentTypeTechnical     IncidentType = "technical"
	IncidentTypeOther         IncidentType = "other"
)

// IncidentTypes lists the known incident types in display order.
var IncidentTypes = []IncidentType{
	IncidentTypeFire,
	IncidentTypeMedical,
	IncidentTypeSecurity,
	IncidentTypePanic,
	IncidentTypeCrowd,
	IncidentTypeEnvironmental,
	IncidentTypeTechnical,
	IncidentTypeOther,
}

// ParseIncidentType maps free-form input ("Fire", " MEDICAL ") to a known type.
// Anything unrecognised becomes IncidentTypeOther.
func ParseIncidentType(s string) IncidentType {
	t := IncidentType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range IncidentTypes {
		if t == known {
			return t
		}
	}
	return IncidentTypeOther
}

type IncidentStatus string

const (
	IncidentStatusActive        IncidentStatus = "active"
	IncidentStatusOngoing       IncidentStatus = "ongoing"
	IncidentStatusInvestigating IncidentStatus = "investigating"
	IncidentStatusResolved      IncidentStatus = "resolved"
	IncidentStatusEscalated     IncidentStatus = "escalated"
	// IncidentStatusUnknown is never sent upstream; it marks values outside the enum.
	IncidentStatusUnknown IncidentStatus = "unknown"
)

var IncidentStatuses = []IncidentStatus{
	IncidentStatusActive,
	IncidentStatusOngoing,
	IncidentStatusInvestigating,
	IncidentStatusResolved,
	IncidentStatusEscalated,
}

// ParseIncidentStatus normalises case and whitespace and returns
// IncidentStatusUnknown for values outside the enumeration.
func ParseIncidentStatus(s string) IncidentStatus {
	st := IncidentStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range IncidentStatuses {
		if st == known {
			return st
		}
	}
	return IncidentStatusUnknown
}

func (s IncidentStatus) Valid() bool {
	return ParseIncidentStatus(string(s)) != IncidentStatusUnknown
}

// Open reports whether the incident still needs attention.
func (s IncidentStatus) Open() bool {
	return s != IncidentStatusResolved
}

// Tone is the display style for a status badge. Unknown values get "neutral".
func (s IncidentStatus) Tone() string {
	switch ParseIncidentStatus(string(s)) {
	case IncidentStatusActive, IncidentStatusEscalated:
		return "danger"
	case IncidentStatusOngoing:
		return "warning"
	case IncidentStatusInvestigating:
		return "info"
	case IncidentStatusResolved:
		return "success"
	}
	return "neutral"
}

// CanTransition implements reported -> (investigating|ongoing) -> resolved with an
// escalated branch reachable from every open state. Resolved is terminal.
func CanTransition(from, to IncidentStatus) bool {
	from = ParseIncidentStatus(string(from))
	to = ParseIncidentStatus(string(to))
	if to == IncidentStatusUnknown || from == IncidentStatusResolved {
		return false
	}
	if from == to {
		return true
	}
	switch to {
	case IncidentStatusEscalated, IncidentStatusResolved:
		return true
	case IncidentStatusInvestigating, IncidentStatusOngoing:
		return from != IncidentStatusUnknown
	case IncidentStatusActive:
		return from == IncidentStatusEscalated
	}
	return false
}

type IncidentPriority string

const (
	PriorityCritical IncidentPriority = "critical"
	PriorityHigh     IncidentPriority = "high"
	PriorityMedium   IncidentPriority = "medium"
	PriorityLow      IncidentPriority = "low"
)

var IncidentPriorities = []IncidentPriority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

func ParseIncidentPriority(s string) (IncidentPriority, bool) {
	p := IncidentPriority(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range IncidentPriorities {
		if p == known {
			return p, true
		}
	}
	return "", false
}

const (
	MinSeverity = 1
	MaxSeverity = 5
)

// Location is a point with an optional human readable address.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// ResponderSnapshot is the copy of a responder embedded in an incident.
type ResponderSnapshot struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Type   ResponderType   `json:"type,omitempty"`
	ETA    string          `json:"eta,omitempty"`
	Status ResponderStatus `json:"status,omitempty"`
}

type EnvironmentalData struct {
	Temperature float64 `json:"temperature,omitempty"`
	Humidity    float64 `json:"humidity,omitempty"`
	AirQuality  float64 `json:"airQuality,omitempty"`
	SmokeLevel  float64 `json:"smokeLevel,omitempty"`
}

type CrowdData struct {
	Density        float64 `json:"density,omitempty"`
	EstimatedCount int     `json:"estimatedCount,omitempty"`
	Movement       string  `json:"movement,omitempty"`
}

type MediaCount struct {
	Images int `json:"images"`
	Videos int `json:"videos"`
	Audio  int `json:"audio"`
}

type Incident struct {
	ID                string             `json:"id"`
	Type              IncidentType       `json:"type"`
	Status            IncidentStatus     `json:"status"`
	Priority          IncidentPriority   `json:"priority,omitempty"`
	Severity          int                `json:"severity,omitempty"`
	Zone              string             `json:"zone"`
	Location          Location           `json:"location"`
	Description       string             `json:"description,omitempty"`
	Timestamp         time.Time          `json:"timestamp"`
	ReportedBy        string             `json:"reportedBy,omitempty"`
	AssignedResponder *ResponderSnapshot `json:"assignedResponder,omitempty"`
	Environmental     *EnvironmentalData `json:"environmental,omitempty"`
	Crowd             *CrowdData         `json:"crowd,omitempty"`
	Media             MediaCount         `json:"mediaCount"`
	LastUpdated       time.Time          `json:"lastUpdated"`
	ResolvedAt        *time.Time         `json:"resolvedAt"`
}

// UnmarshalJSON tolerates enum fields of the wrong JSON type: a non-string
// type, status or priority decodes as empty and a non-integer severity as 0,
// which Normalized then renders as unknown.
func (i *Incident) UnmarshalJSON(data []byte) error {
	type plain Incident
	aux := struct {
		*plain
		Type     json.RawMessage `json:"type"`
		Status   json.RawMessage `json:"status"`
		Priority json.RawMessage `json:"priority"`
		Severity json.RawMessage `json:"severity"`
	}{plain: (*plain)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	i.Type = IncidentType(looseString(aux.Type))
	i.Status = IncidentStatus(looseString(aux.Status))
	i.Priority = IncidentPriority(looseString(aux.Priority))
	i.Severity = looseInt(aux.Severity)
	return nil
}

func looseString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func looseInt(raw json.RawMessage) int {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || f != math.Trunc(f) {
		return 0
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

// SeverityValid reports whether Severity is an integer in [1,5].
func (i Incident) SeverityValid() bool {
	return i.Severity >= MinSeverity && i.Severity <= MaxSeverity
}

// Normalized returns a copy whose status is inside the enumeration (or unknown)
// and whose severity is zero when out of range, so views can fall back to a
// neutral style instead of failing.
func (i Incident) Normalized() Incident {
	i.Status = ParseIncidentStatus(string(i.Status))
	i.Type = ParseIncidentType(string(i.Type))
	if p, ok := ParseIncidentPriority(string(i.Priority)); ok {
		i.Priority = p
	} else {
		i.Priority = ""
	}
	if !i.SeverityValid() {
		i.Severity = 0
	}
	return i
}

// IncidentNote is an operator note stored under an incident.
type IncidentNote struct {
	ID        string    `json:"id,omitempty"`
	Text      string    `json:"text"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
