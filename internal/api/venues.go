package api

import (
	"context"
	"encoding/json"

	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/models"
)

type Venues struct {
	c *client.Client
}

func NewVenues(c *client.Client) *Venues {
	return &Venues{c: c}
}

// Create submits the venue form. With AutoZone set the backend fills in the
// zone blueprints.
func (a *Venues) Create(ctx context.Context, v models.Venue) (models.Venue, error) {
	var raw json.RawMessage
	if err := a.c.Post(ctx, "/venue", v, &raw); err != nil {
		return models.Venue{}, err
	}
	return decodeItem[models.Venue](raw, "venue")
}

func (a *Venues) Get(ctx context.Context) (models.Venue, error) {
	var raw json.RawMessage
	if err := a.c.Get(ctx, "/venue", &raw); err != nil {
		return models.Venue{}, err
	}
	return decodeItem[models.Venue](raw, "venue")
}
