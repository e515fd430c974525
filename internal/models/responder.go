package models

import (
	"errors"
	"time"
)

type ResponderType string

const (
	ResponderTypeFire      ResponderType = "fire"
	ResponderTypeMedical   ResponderType = "medical"
	ResponderTypeSecurity  ResponderType = "security"
	ResponderTypePolice    ResponderType = "police"
	ResponderTypeVolunteer ResponderType = "volunteer"
)

type ResponderStatus string

const (
	ResponderAvailable ResponderStatus = "available"
	ResponderEnRoute   ResponderStatus = "en_route"
	ResponderOnScene   ResponderStatus = "on_scene"
	ResponderReturning ResponderStatus = "returning"
	ResponderOffline   ResponderStatus = "offline"
)

// Equipment health cut-offs used by the responder statistics.
const (
	LowBatteryThreshold = 20
	PoorSignalThreshold = 30
)

var ErrAssignmentInconsistent = errors.New("assigned responder must be en_route or on_scene")

type Position struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	LastUpdate time.Time `json:"lastUpdate"`
}

type ContactInfo struct {
	Phone string `json:"phone,omitempty"`
	Radio string `json:"radio,omitempty"`
	Email string `json:"email,omitempty"`
}

type Equipment struct {
	BatteryLevel   int  `json:"batteryLevel"`
	SignalStrength int  `json:"signalStrength"`
	MedicalKit     bool `json:"medicalKit"`
	Defibrillator  bool `json:"defibrillator"`
}

type Responder struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Type             ResponderType   `json:"type"`
	Status           ResponderStatus `json:"status"`
	Vehicle          string          `json:"vehicle,omitempty"`
	Position         Position        `json:"position"`
	Contact          ContactInfo     `json:"contact"`
	Equipment        Equipment       `json:"equipment"`
	AssignedIncident *string         `json:"assignedIncident"`
	ETA              *string         `json:"eta"`
	Speed            float64         `json:"speed,omitempty"`
	Specializations  []string        `json:"specializations,omitempty"`
}

func (r Responder) Assigned() bool {
	return r.AssignedIncident != nil && *r.AssignedIncident != ""
}

// AssignedTo reports whether the responder is currently assigned to incidentID.
func (r Responder) AssignedTo(incidentID string) bool {
	return r.Assigned() && *r.AssignedIncident == incidentID
}

// Assign points the responder at an incident and puts it en route. Applying the
// same assignment twice yields the same record.
func (r *Responder) Assign(incidentID, eta string) {
	id := incidentID
	r.AssignedIncident = &id
	r.Status = ResponderEnRoute
	r.ETA = nil
	if eta != "" {
		e := eta
		r.ETA = &e
	}
}

// Unassign clears the assignment and the ETA together and frees the responder.
func (r *Responder) Unassign() {
	r.AssignedIncident = nil
	r.ETA = nil
	r.Status = ResponderAvailable
}

// Validate checks the assignment invariant.
func (r Responder) Validate() error {
	if r.Assigned() && r.Status != ResponderEnRoute && r.Status != ResponderOnScene {
		return ErrAssignmentInconsistent
	}
	return nil
}

// Snapshot returns the projection embedded in incidents.
func (r Responder) Snapshot() *ResponderSnapshot {
	s := &ResponderSnapshot{
		ID:     r.ID,
		Name:   r.Name,
		Type:   r.Type,
		Status: r.Status,
	}
	if r.ETA != nil {
		s.ETA = *r.ETA
	}
	return s
}

func (r Responder) LowBattery() bool {
	return r.Equipment.BatteryLevel < LowBatteryThreshold
}

func (r Responder) PoorSignal() bool {
	return r.Equipment.SignalStrength < PoorSignalThreshold
}
