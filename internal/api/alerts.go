package api

import (
	"context"
	"encoding/json"

	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/models"
)

type Alerts struct {
	c *client.Client
}

func NewAlerts(c *client.Client) *Alerts {
	return &Alerts{c: c}
}

func (a *Alerts) Send(ctx context.Context, alert models.Alert) (models.Alert, error) {
	var raw json.RawMessage
	if err := a.c.Post(ctx, "/alerts", alert, &raw); err != nil {
		return models.Alert{}, err
	}
	if len(raw) == 0 {
		return alert, nil
	}
	return decodeItem[models.Alert](raw, "alert")
}

func (a *Alerts) List(ctx context.Context) ([]models.Alert, error) {
	var raw json.RawMessage
	if err := a.c.Get(ctx, "/alerts", &raw); err != nil {
		return nil, err
	}
	return decodeList[models.Alert](raw, "alerts")
}
