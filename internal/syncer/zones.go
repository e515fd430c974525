package syncer

import (
	"context"
	"time"

	"github.com/shenikar/drishti/internal/models"
	"github.com/sirupsen/logrus"
)

type ZonesAPI interface {
	List(ctx context.Context) ([]models.Zone, error)
	Create(ctx context.Context, z models.Zone) (models.Zone, error)
	Update(ctx context.Context, z models.Zone) (models.Zone, error)
}

const ResourceZones = "zones"

type Zones struct {
	*Resource[models.Zone]
	api ZonesAPI
}

func NewZones(a ZonesAPI, interval time.Duration, logger *logrus.Logger) *Zones {
	key := func(z models.Zone) string { return z.ID }
	return &Zones{
		Resource: NewResource(ResourceZones, a.List, key, interval, logger),
		api:      a,
	}
}

func (s *Zones) Create(ctx context.Context, z models.Zone) (models.Zone, error) {
	saved, err := s.api.Create(ctx, z)
	if err != nil {
		return models.Zone{}, err
	}
	s.Upsert(saved)
	return saved, nil
}

func (s *Zones) Update(ctx context.Context, z models.Zone) (models.Zone, error) {
	saved, err := s.api.Update(ctx, z)
	if err != nil {
		return models.Zone{}, err
	}
	s.Upsert(saved)
	return saved, nil
}

// UpdateOccupancy sets a zone's head count, recomputes its density and
// derives the status tier (>=90% critical, >=70% active) before writing the
// whole document back.
func (s *Zones) UpdateOccupancy(ctx context.Context, zoneID string, occupancy int) (models.Zone, error) {
	if occupancy < 0 {
		return models.Zone{}, ErrNegativeOccupancy
	}
	current, ok := s.Find(zoneID)
	if !ok {
		return models.Zone{}, ErrNotFound
	}

	now := s.now()
	saved, err := s.api.Update(ctx, current.WithOccupancy(occupancy, now))
	if err != nil {
		return models.Zone{}, err
	}
	// сервер может вернуть документ без пересчёта, поэтому выводим заново
	saved = saved.WithOccupancy(occupancy, now)
	s.Upsert(saved)
	return saved, nil
}

// ByName finds a zone by id or display name; reports reference zones by name.
func (s *Zones) ByName(name string) (models.Zone, bool) {
	for _, z := range s.Data() {
		if z.ID == name || z.Name == name {
			return z, true
		}
	}
	return models.Zone{}, false
}

func FilterZones(list []models.Zone, status models.ZoneStatus) []models.Zone {
	out := make([]models.Zone, 0, len(list))
	for _, z := range list {
		if status == "" || z.Status == status {
			out = append(out, z)
		}
	}
	return out
}

func (s *Zones) ByStatus(status models.ZoneStatus) []models.Zone {
	return FilterZones(s.Data(), status)
}

type ZoneStats struct {
	Total          int                       `json:"total"`
	ByStatus       map[models.ZoneStatus]int `json:"byStatus"`
	TotalOccupancy int                       `json:"totalOccupancy"`
	TotalCapacity  int                       `json:"totalCapacity"`
	AvgDensity     float64                   `json:"avgDensity"`
	Critical       []models.Zone             `json:"critical"`
}

// ComputeZoneStats aggregates zone counts. Status is taken from the density
// when it can be derived, so a lagging server status does not hide a
// critical zone.
func ComputeZoneStats(list []models.Zone) ZoneStats {
	st := ZoneStats{
		Total:    len(list),
		ByStatus: map[models.ZoneStatus]int{},
		Critical: []models.Zone{},
	}
	var density int
	for _, z := range list {
		pct := z.DensityPercent()
		status := z.Status
		if z.Capacity.MaxOccupancy != nil && z.Capacity.CurrentOccupancy != nil {
			status = models.StatusForDensity(pct)
		}
		st.ByStatus[status]++
		if status == models.ZoneStatusCritical {
			st.Critical = append(st.Critical, z)
		}
		if z.Capacity.CurrentOccupancy != nil {
			st.TotalOccupancy += *z.Capacity.CurrentOccupancy
		}
		if z.Capacity.MaxOccupancy != nil {
			st.TotalCapacity += *z.Capacity.MaxOccupancy
		}
		density += pct
	}
	if st.Total > 0 {
		st.AvgDensity = float64(density) / float64(st.Total)
	}
	return st
}

func (s *Zones) Stats() ZoneStats {
	return ComputeZoneStats(s.Data())
}
