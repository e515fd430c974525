package api

import (
	"context"

	"github.com/shenikar/drishti/internal/client"
)

type Health struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}

type SystemStats struct {
	ActiveIncidents     int `json:"activeIncidents"`
	AvailableResponders int `json:"availableResponders"`
	CriticalZones       int `json:"criticalZones"`
	TotalOccupancy      int `json:"totalOccupancy"`
	CamerasOnline       int `json:"camerasOnline"`
}

type System struct {
	c *client.Client
}

func NewSystem(c *client.Client) *System {
	return &System{c: c}
}

func (a *System) Health(ctx context.Context) (Health, error) {
	var out Health
	if err := a.c.Get(ctx, "/system/health", &out, client.Public()); err != nil {
		return Health{}, err
	}
	return out, nil
}

func (a *System) Stats(ctx context.Context) (SystemStats, error) {
	var out SystemStats
	if err := a.c.Get(ctx, "/system/stats", &out); err != nil {
		return SystemStats{}, err
	}
	return out, nil
}
