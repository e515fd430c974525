package api

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/models"
)

type Zones struct {
	c *client.Client
}

func NewZones(c *client.Client) *Zones {
	return &Zones{c: c}
}

func zonePath(id string) string {
	return "/zones/" + url.PathEscape(id)
}

func (a *Zones) List(ctx context.Context) ([]models.Zone, error) {
	var raw json.RawMessage
	if err := a.c.Get(ctx, "/zones", &raw); err != nil {
		return nil, err
	}
	return decodeList[models.Zone](raw, "zones")
}

func (a *Zones) Get(ctx context.Context, id string) (models.Zone, error) {
	var raw json.RawMessage
	if err := a.c.Get(ctx, zonePath(id), &raw); err != nil {
		return models.Zone{}, err
	}
	return decodeItem[models.Zone](raw, "zone")
}

func (a *Zones) Create(ctx context.Context, z models.Zone) (models.Zone, error) {
	var raw json.RawMessage
	if err := a.c.Post(ctx, "/zones", z, &raw); err != nil {
		return models.Zone{}, err
	}
	return decodeItem[models.Zone](raw, "zone")
}

// Update writes the whole zone document and returns what the server stored.
// An empty reply body is treated as confirmation of the sent document.
func (a *Zones) Update(ctx context.Context, z models.Zone) (models.Zone, error) {
	var raw json.RawMessage
	if err := a.c.Put(ctx, zonePath(z.ID), z, &raw); err != nil {
		return models.Zone{}, err
	}
	if len(raw) == 0 {
		return z, nil
	}
	return decodeItem[models.Zone](raw, "zone")
}
