package syncer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentsAPI is the part of api.Incidents the syncer needs.
type IncidentsAPI interface {
	List(ctx context.Context, filter api.IncidentFilter) ([]models.Incident, error)
	Create(ctx context.Context, in api.NewIncident) (models.Incident, error)
	Update(ctx context.Context, id string, patch api.IncidentUpdate) (models.Incident, error)
	Delete(ctx context.Context, id string) error
	AddNote(ctx context.Context, id string, note models.IncidentNote) (models.IncidentNote, error)
}

const ResourceIncidents = "incidents"

// Incidents is the polled incident list. Every record is normalized on the
// way in, so views only ever see in-range severities and known statuses (or
// IncidentStatusUnknown).
type Incidents struct {
	*Resource[models.Incident]
	api IncidentsAPI
}

func NewIncidents(a IncidentsAPI, filter api.IncidentFilter, interval time.Duration, logger *logrus.Logger) *Incidents {
	fetch := func(ctx context.Context) ([]models.Incident, error) {
		list, err := a.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		out := make([]models.Incident, len(list))
		for i, inc := range list {
			out[i] = inc.Normalized()
		}
		return out, nil
	}
	key := func(i models.Incident) string { return i.ID }
	return &Incidents{
		Resource: NewResource(ResourceIncidents, fetch, key, interval, logger),
		api:      a,
	}
}

func (s *Incidents) Create(ctx context.Context, in api.NewIncident) (models.Incident, error) {
	inc, err := s.api.Create(ctx, in)
	if err != nil {
		return models.Incident{}, err
	}
	inc = inc.Normalized()
	s.Upsert(inc)
	return inc, nil
}

// Track adds an incident created elsewhere (the report saga or media analysis)
// to the local list.
func (s *Incidents) Track(inc models.Incident) models.Incident {
	inc = inc.Normalized()
	s.Upsert(inc)
	return inc
}

func (s *Incidents) Update(ctx context.Context, id string, patch api.IncidentUpdate) (models.Incident, error) {
	inc, err := s.api.Update(ctx, id, patch)
	if err != nil {
		return models.Incident{}, err
	}
	inc = inc.Normalized()
	s.Upsert(inc)
	return inc, nil
}

// SetStatus moves an incident along its lifecycle. Resolving stamps resolvedAt.
func (s *Incidents) SetStatus(ctx context.Context, id string, status models.IncidentStatus) (models.Incident, error) {
	current, ok := s.Find(id)
	if ok && !models.CanTransition(current.Status, status) {
		return models.Incident{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}
	patch := api.IncidentUpdate{Status: &status}
	if status == models.IncidentStatusResolved {
		now := s.now()
		patch.ResolvedAt = &now
	}
	return s.Update(ctx, id, patch)
}

func (s *Incidents) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.Remove(id)
	return nil
}

func (s *Incidents) AddNote(ctx context.Context, id, text, author string) (models.IncidentNote, error) {
	note := models.IncidentNote{Text: text, Author: author, CreatedAt: s.now()}
	saved, err := s.api.AddNote(ctx, id, note)
	if err != nil {
		return models.IncidentNote{}, err
	}
	s.Mutate(id, func(inc *models.Incident) { inc.LastUpdated = saved.CreatedAt })
	return saved, nil
}

// IncidentQuery filters incidents; empty fields match everything.
type IncidentQuery struct {
	Status   models.IncidentStatus
	Type     models.IncidentType
	Zone     string
	Priority models.IncidentPriority
}

func (q IncidentQuery) match(i models.Incident) bool {
	return (q.Status == "" || i.Status == q.Status) &&
		(q.Type == "" || i.Type == q.Type) &&
		(q.Zone == "" || i.Zone == q.Zone) &&
		(q.Priority == "" || i.Priority == q.Priority)
}

// FilterIncidents returns the incidents matching q, in list order.
func FilterIncidents(list []models.Incident, q IncidentQuery) []models.Incident {
	out := make([]models.Incident, 0, len(list))
	for _, inc := range list {
		if q.match(inc) {
			out = append(out, inc)
		}
	}
	return out
}

func (s *Incidents) Filter(q IncidentQuery) []models.Incident {
	return FilterIncidents(s.Data(), q)
}

func (s *Incidents) ByStatus(status models.IncidentStatus) []models.Incident {
	return s.Filter(IncidentQuery{Status: status})
}

func (s *Incidents) ByZone(zone string) []models.Incident {
	return s.Filter(IncidentQuery{Zone: zone})
}

// Open returns every incident that is not resolved.
func (s *Incidents) Open() []models.Incident {
	out := []models.Incident{}
	for _, inc := range s.Data() {
		if inc.Status.Open() {
			out = append(out, inc)
		}
	}
	return out
}

type IncidentStats struct {
	Total      int                             `json:"total"`
	Open       int                             `json:"open"`
	Critical   int                             `json:"critical"`
	Unassigned int                             `json:"unassigned"`
	ByStatus   map[models.IncidentStatus]int   `json:"byStatus"`
	ByType     map[models.IncidentType]int     `json:"byType"`
	ByPriority map[models.IncidentPriority]int `json:"byPriority"`
	// TypeShare is each type's rounded share of Total in percent.
	TypeShare map[models.IncidentType]int `json:"typeShare"`
}

// ComputeIncidentStats aggregates counts over list.
func ComputeIncidentStats(list []models.Incident) IncidentStats {
	st := IncidentStats{
		Total:      len(list),
		ByStatus:   map[models.IncidentStatus]int{},
		ByType:     map[models.IncidentType]int{},
		ByPriority: map[models.IncidentPriority]int{},
		TypeShare:  map[models.IncidentType]int{},
	}
	for _, inc := range list {
		st.ByStatus[inc.Status]++
		st.ByType[inc.Type]++
		if inc.Priority != "" {
			st.ByPriority[inc.Priority]++
		}
		if inc.Status.Open() {
			st.Open++
			if inc.AssignedResponder == nil {
				st.Unassigned++
			}
		}
		if inc.Priority == models.PriorityCritical && inc.Status.Open() {
			st.Critical++
		}
	}
	if st.Total > 0 {
		for t, n := range st.ByType {
			st.TypeShare[t] = int(math.Round(float64(n) / float64(st.Total) * 100))
		}
	}
	return st
}

func (s *Incidents) Stats() IncidentStats {
	return ComputeIncidentStats(s.Data())
}
