package syncer

import (
	"context"
	"time"

	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/models"
	"github.com/sirupsen/logrus"
)

type RespondersAPI interface {
	List(ctx context.Context) ([]models.Responder, error)
	Create(ctx context.Context, r models.Responder) (models.Responder, error)
	Update(ctx context.Context, r models.Responder) (models.Responder, error)
	Assign(ctx context.Context, req api.AssignRequest) (string, error)
	Unassign(ctx context.Context, id string) error
	UpdatePosition(ctx context.Context, id string, pos models.Position) error
}

const ResourceResponders = "responders"

// Responders is the polled responder list. The responder record owns the
// assignment; incidents only carry a projection of it (see ProjectAssignments).
type Responders struct {
	*Resource[models.Responder]
	api RespondersAPI
}

func NewResponders(a RespondersAPI, interval time.Duration, logger *logrus.Logger) *Responders {
	key := func(r models.Responder) string { return r.ID }
	return &Responders{
		Resource: NewResource(ResourceResponders, a.List, key, interval, logger),
		api:      a,
	}
}

func (s *Responders) Create(ctx context.Context, r models.Responder) (models.Responder, error) {
	saved, err := s.api.Create(ctx, r)
	if err != nil {
		return models.Responder{}, err
	}
	s.Upsert(saved)
	return saved, nil
}

func (s *Responders) Update(ctx context.Context, r models.Responder) (models.Responder, error) {
	if err := r.Validate(); err != nil {
		return models.Responder{}, err
	}
	saved, err := s.api.Update(ctx, r)
	if err != nil {
		return models.Responder{}, err
	}
	s.Upsert(saved)
	return saved, nil
}

// AssignToIncident records a manual assignment. Calling it twice with the same
// ids leaves the responder en route to that incident.
func (s *Responders) AssignToIncident(ctx context.Context, responderID, incidentID, eta string) (models.Responder, error) {
	got, err := s.api.Assign(ctx, api.AssignRequest{ResponderID: responderID, IncidentID: incidentID, ETA: eta})
	if err != nil {
		return models.Responder{}, err
	}
	return s.applyAssignment(responderID, incidentID, got), nil
}

// ApplyAssignment mirrors an assignment the backend already made, e.g. by the
// nearest-responder dispatch.
func (s *Responders) ApplyAssignment(r models.Responder, incidentID, eta string) models.Responder {
	if _, ok := s.Find(r.ID); !ok {
		r.Assign(incidentID, eta)
		s.Upsert(r)
		return r
	}
	return s.applyAssignment(r.ID, incidentID, eta)
}

func (s *Responders) applyAssignment(responderID, incidentID, eta string) models.Responder {
	out, ok := s.Mutate(responderID, func(r *models.Responder) { r.Assign(incidentID, eta) })
	if !ok {
		out = models.Responder{ID: responderID}
		out.Assign(incidentID, eta)
	}
	return out
}

// Unassign frees the responder. assignedIncident and eta are cleared together.
func (s *Responders) Unassign(ctx context.Context, responderID string) (models.Responder, error) {
	if err := s.api.Unassign(ctx, responderID); err != nil {
		return models.Responder{}, err
	}
	out, ok := s.Mutate(responderID, func(r *models.Responder) { r.Unassign() })
	if !ok {
		out = models.Responder{ID: responderID}
		out.Unassign()
	}
	return out, nil
}

func (s *Responders) UpdatePosition(ctx context.Context, responderID string, lat, lng float64) (models.Responder, error) {
	pos := models.Position{Lat: lat, Lng: lng, LastUpdate: s.now()}
	if err := s.api.UpdatePosition(ctx, responderID, pos); err != nil {
		return models.Responder{}, err
	}
	out, ok := s.Mutate(responderID, func(r *models.Responder) { r.Position = pos })
	if !ok {
		out = models.Responder{ID: responderID, Position: pos}
	}
	return out, nil
}

// Available returns responders that can take a new assignment.
func (s *Responders) Available() []models.Responder {
	return FilterResponders(s.Data(), ResponderQuery{Status: models.ResponderAvailable})
}

type ResponderQuery struct {
	Status models.ResponderStatus
	Type   models.ResponderType
}

func FilterResponders(list []models.Responder, q ResponderQuery) []models.Responder {
	out := make([]models.Responder, 0, len(list))
	for _, r := range list {
		if (q.Status == "" || r.Status == q.Status) && (q.Type == "" || r.Type == q.Type) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Responders) Filter(q ResponderQuery) []models.Responder {
	return FilterResponders(s.Data(), q)
}

type ResponderStats struct {
	Total             int                            `json:"total"`
	Available         int                            `json:"available"`
	Assigned          int                            `json:"assigned"`
	ByStatus          map[models.ResponderStatus]int `json:"byStatus"`
	ByType            map[models.ResponderType]int   `json:"byType"`
	AvgBattery        float64                        `json:"avgBattery"`
	AvgSignal         float64                        `json:"avgSignal"`
	LowBattery        []models.Responder             `json:"lowBattery"`
	PoorSignal        []models.Responder             `json:"poorSignal"`
	InconsistentState []string                       `json:"inconsistentState,omitempty"`
}

// ComputeResponderStats aggregates counts and equipment health over list.
func ComputeResponderStats(list []models.Responder) ResponderStats {
	st := ResponderStats{
		Total:      len(list),
		ByStatus:   map[models.ResponderStatus]int{},
		ByType:     map[models.ResponderType]int{},
		LowBattery: []models.Responder{},
		PoorSignal: []models.Responder{},
	}
	var battery, signal int
	for _, r := range list {
		st.ByStatus[r.Status]++
		st.ByType[r.Type]++
		if r.Status == models.ResponderAvailable {
			st.Available++
		}
		if r.Assigned() {
			st.Assigned++
		}
		if r.LowBattery() {
			st.LowBattery = append(st.LowBattery, r)
		}
		if r.PoorSignal() {
			st.PoorSignal = append(st.PoorSignal, r)
		}
		if r.Validate() != nil {
			st.InconsistentState = append(st.InconsistentState, r.ID)
		}
		battery += r.Equipment.BatteryLevel
		signal += r.Equipment.SignalStrength
	}
	if st.Total > 0 {
		st.AvgBattery = float64(battery) / float64(st.Total)
		st.AvgSignal = float64(signal) / float64(st.Total)
	}
	return st
}

func (s *Responders) Stats() ResponderStats {
	return ComputeResponderStats(s.Data())
}
