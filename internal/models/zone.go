package models

import (
	"math"
	"time"
)

type ZoneStatus string

const (
	ZoneStatusNormal   ZoneStatus = "normal"
	ZoneStatusActive   ZoneStatus = "active"
	ZoneStatusCritical ZoneStatus = "critical"
)

// Density thresholds in percent of capacity.
const (
	CriticalDensityPercent = 90
	ActiveDensityPercent   = 70
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Capacity holds occupancy figures. MaxOccupancy and CurrentOccupancy are
// pointers because upstream documents frequently omit them.
type Capacity struct {
	MaxOccupancy     *int    `json:"maxOccupancy,omitempty"`
	CurrentOccupancy *int    `json:"currentOccupancy,omitempty"`
	CrowdDensity     float64 `json:"crowdDensity"`
}

type SensorCounts struct {
	Cameras     int `json:"cameras"`
	Thermal     int `json:"thermal"`
	Audio       int `json:"audio"`
	Environment int `json:"environment"`
}

type EmergencyExit struct {
	ID       string `json:"id"`
	Location LatLng `json:"location"`
	Status   string `json:"status"`
}

type Zone struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Status         ZoneStatus      `json:"status"`
	Boundaries     []LatLng        `json:"boundaries,omitempty"`
	Capacity       Capacity        `json:"capacity"`
	Sensors        SensorCounts    `json:"sensors"`
	EmergencyExits []EmergencyExit `json:"emergencyExits,omitempty"`
	LastUpdate     time.Time       `json:"lastUpdate"`
}

// DensityPercent returns round(current/max*100) when both figures are present
// and max is positive, otherwise the server supplied crowdDensity.
func (z Zone) DensityPercent() int {
	c := z.Capacity
	if c.MaxOccupancy != nil && c.CurrentOccupancy != nil && *c.MaxOccupancy > 0 {
		return DensityPercent(*c.CurrentOccupancy, *c.MaxOccupancy)
	}
	return int(math.Round(c.CrowdDensity))
}

// DensityPercent is occupancy as a rounded percentage of capacity.
func DensityPercent(occupancy, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(float64(occupancy) / float64(capacity) * 100))
}

// StatusForDensity derives the zone tier: >=90% critical, >=70% active, else normal.
func StatusForDensity(percent int) ZoneStatus {
	switch {
	case percent >= CriticalDensityPercent:
		return ZoneStatusCritical
	case percent >= ActiveDensityPercent:
		return ZoneStatusActive
	}
	return ZoneStatusNormal
}

// WithOccupancy returns a copy with the new occupancy, recomputed density and
// derived status.
func (z Zone) WithOccupancy(occupancy int, now time.Time) Zone {
	occ := occupancy
	z.Capacity.CurrentOccupancy = &occ
	pct := z.DensityPercent()
	z.Capacity.CrowdDensity = float64(pct)
	z.Status = StatusForDensity(pct)
	z.LastUpdate = now
	return z
}
