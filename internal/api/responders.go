package api

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/models"
)

type AssignRequest struct {
	ResponderID string `json:"responderId"`
	IncidentID  string `json:"incidentId"`
	ETA         string `json:"eta,omitempty"`
}

type assignReply struct {
	Success   bool              `json:"success"`
	Responder *models.Responder `json:"responder"`
	ETA       string            `json:"eta"`
	Message   string            `json:"message"`
}

type Responders struct {
	c *client.Client
}

func NewResponders(c *client.Client) *Responders {
	return &Responders{c: c}
}

func responderPath(id string) string {
	return "/responders/" + url.PathEscape(id)
}

func (a *Responders) List(ctx context.Context) ([]models.Responder, error) {
	var raw json.RawMessage
	if err := a.c.Get(ctx, "/responders", &raw); err != nil {
		return nil, err
	}
	return decodeList[models.Responder](raw, "responders")
}

func (a *Responders) Get(ctx context.Context, id string) (models.Responder, error) {
	var raw json.RawMessage
	if err := a.c.Get(ctx, responderPath(id), &raw); err != nil {
		return models.Responder{}, err
	}
	return decodeItem[models.Responder](raw, "responder")
}

func (a *Responders) Create(ctx context.Context, r models.Responder) (models.Responder, error) {
	var raw json.RawMessage
	if err := a.c.Post(ctx, "/responders", r, &raw); err != nil {
		return models.Responder{}, err
	}
	return decodeItem[models.Responder](raw, "responder")
}

func (a *Responders) Update(ctx context.Context, r models.Responder) (models.Responder, error) {
	var raw json.RawMessage
	if err := a.c.Put(ctx, responderPath(r.ID), r, &raw); err != nil {
		return models.Responder{}, err
	}
	return decodeItem[models.Responder](raw, "responder")
}

// Assign posts a manual assignment. The returned ETA is the server's estimate
// when it sent one, otherwise the requested one.
func (a *Responders) Assign(ctx context.Context, req AssignRequest) (string, error) {
	var out assignReply
	if err := a.c.Post(ctx, "/assign_responder", req, &out); err != nil {
		return "", err
	}
	switch {
	case out.ETA != "":
		return out.ETA, nil
	case out.Responder != nil && out.Responder.ETA != nil:
		return *out.Responder.ETA, nil
	}
	return req.ETA, nil
}

func (a *Responders) Unassign(ctx context.Context, id string) error {
	return a.c.Post(ctx, responderPath(id)+"/unassign", struct{}{}, nil)
}

func (a *Responders) UpdatePosition(ctx context.Context, id string, pos models.Position) error {
	return a.c.Put(ctx, responderPath(id)+"/position", pos, nil)
}
