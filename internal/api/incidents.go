package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/models"
)

type IncidentFilter struct {
	Status   string
	Type     string
	Zone     string
	Priority string
	Limit    int
}

func (f IncidentFilter) query() map[string]string {
	q := map[string]string{
		"status":   f.Status,
		"type":     f.Type,
		"zone":     f.Zone,
		"priority": f.Priority,
	}
	if f.Limit > 0 {
		q["limit"] = strconv.Itoa(f.Limit)
	}
	return q
}

// NewIncident is the create payload.
type NewIncident struct {
	Type        models.IncidentType     `json:"type"`
	Status      models.IncidentStatus   `json:"status"`
	Priority    models.IncidentPriority `json:"priority,omitempty"`
	Severity    int                     `json:"severity,omitempty"`
	Zone        string                  `json:"zone"`
	Location    models.Location         `json:"location"`
	Description string                  `json:"description,omitempty"`
	ReportedBy  string                  `json:"reportedBy,omitempty"`
	Timestamp   time.Time               `json:"timestamp"`
}

// IncidentUpdate is a partial update; nil fields are left alone.
type IncidentUpdate struct {
	Status      *models.IncidentStatus   `json:"status,omitempty"`
	Priority    *models.IncidentPriority `json:"priority,omitempty"`
	Severity    *int                     `json:"severity,omitempty"`
	Description *string                  `json:"description,omitempty"`
	ResolvedAt  *time.Time               `json:"resolvedAt,omitempty"`
}

type DispatchRequest struct {
	IncidentID string              `json:"incidentId"`
	Lat        float64             `json:"lat"`
	Lng        float64             `json:"lng"`
	Type       models.IncidentType `json:"type,omitempty"`
	Zone       string              `json:"zone,omitempty"`
}

// DispatchResult is the nearest-responder reply. Success=false is the
// "no responder available" signal.
type DispatchResult struct {
	Success   bool              `json:"success"`
	Responder *models.Responder `json:"responder,omitempty"`
	ETA       string            `json:"eta,omitempty"`
	Distance  float64           `json:"distance,omitempty"`
	Message   string            `json:"message,omitempty"`
}

type Incidents struct {
	c *client.Client
}

func NewIncidents(c *client.Client) *Incidents {
	return &Incidents{c: c}
}

func incidentPath(id string) string {
	return "/incidents/" + url.PathEscape(id)
}

func (a *Incidents) List(ctx context.Context, filter IncidentFilter) ([]models.Incident, error) {
	var raw json.RawMessage
	if err := a.c.Get(ctx, "/incidents", &raw, client.Query(filter.query())); err != nil {
		return nil, err
	}
	return decodeList[models.Incident](raw, "incidents")
}

func (a *Incidents) Get(ctx context.Context, id string) (models.Incident, error) {
	var raw json.RawMessage
	if err := a.c.Get(ctx, incidentPath(id), &raw); err != nil {
		return models.Incident{}, err
	}
	return decodeItem[models.Incident](raw, "incident")
}

func (a *Incidents) Create(ctx context.Context, in NewIncident) (models.Incident, error) {
	var raw json.RawMessage
	if err := a.c.Post(ctx, "/incidents", in, &raw); err != nil {
		return models.Incident{}, err
	}
	return decodeItem[models.Incident](raw, "incident")
}

func (a *Incidents) Update(ctx context.Context, id string, patch IncidentUpdate) (models.Incident, error) {
	var raw json.RawMessage
	if err := a.c.Put(ctx, incidentPath(id), patch, &raw); err != nil {
		return models.Incident{}, err
	}
	if len(raw) == 0 {
		// some deployments answer 204; read back the stored document
		return a.Get(ctx, id)
	}
	return decodeItem[models.Incident](raw, "incident")
}

// Delete is only reached from the admin bulk action.
func (a *Incidents) Delete(ctx context.Context, id string) error {
	return a.c.Delete(ctx, incidentPath(id), nil)
}

func (a *Incidents) AddNote(ctx context.Context, id string, note models.IncidentNote) (models.IncidentNote, error) {
	var raw json.RawMessage
	if err := a.c.Post(ctx, incidentPath(id)+"/notes", note, &raw); err != nil {
		return models.IncidentNote{}, err
	}
	return decodeItem[models.IncidentNote](raw, "note")
}

func (a *Incidents) Notes(ctx context.Context, id string) ([]models.IncidentNote, error) {
	var raw json.RawMessage
	if err := a.c.Get(ctx, incidentPath(id)+"/notes", &raw); err != nil {
		return nil, err
	}
	return decodeList[models.IncidentNote](raw, "notes")
}

// DispatchNearest asks the backend to pick and assign the closest available
// responder.
func (a *Incidents) DispatchNearest(ctx context.Context, req DispatchRequest) (DispatchResult, error) {
	var out DispatchResult
	if err := a.c.Post(ctx, "/dispatch_responder", req, &out); err != nil {
		return DispatchResult{}, err
	}
	return out, nil
}
