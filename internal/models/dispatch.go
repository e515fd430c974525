package models

import (
	"time"

	"github.com/google/uuid"
)

// DispatchState is a step of the report/dispatch saga.
type DispatchState string

const (
	DispatchIncidentCreated DispatchState = "incident_created"
	DispatchPending         DispatchState = "dispatch_pending"
	DispatchDispatched      DispatchState = "dispatched"
	DispatchNoResponder     DispatchState = "no_responder"
	DispatchFailed          DispatchState = "dispatch_failed"
)

// Retryable reports whether a manual dispatch retry makes sense. A saga left
// in dispatch_pending means the process died mid-call.
func (s DispatchState) Retryable() bool {
	switch s {
	case DispatchIncidentCreated, DispatchPending, DispatchNoResponder, DispatchFailed:
		return true
	}
	return false
}

// DispatchSaga records the two writes of a report: the incident and its
// optional responder assignment.
type DispatchSaga struct {
	ID            uuid.UUID     `json:"id"`
	IncidentID    string        `json:"incidentId"`
	Zone          string        `json:"zone"`
	IncidentType  IncidentType  `json:"incidentType"`
	Location      Location      `json:"location"`
	State         DispatchState `json:"state"`
	ResponderID   *string       `json:"responderId,omitempty"`
	ResponderName *string       `json:"responderName,omitempty"`
	ETA           *string       `json:"eta,omitempty"`
	LastError     *string       `json:"lastError,omitempty"`
	Attempts      int           `json:"attempts"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
