package service

import (
	"context"
	"fmt"

	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/events"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/syncer"
	"github.com/sirupsen/logrus"
)

// SystemOverview - сводка для главной страницы. Ошибки бэкенда не прерывают
// сборку: локальные счетчики строятся из кешей.
type SystemOverview struct {
	Health      *api.Health          `json:"health,omitempty"`
	HealthError string               `json:"healthError,omitempty"`
	Stats       *api.SystemStats     `json:"stats,omitempty"`
	StatsError  string               `json:"statsError,omitempty"`
	Incidents   syncer.IncidentStats  `json:"incidents"`
	Responders  syncer.ResponderStats `json:"responders"`
	Zones       syncer.ZoneStats      `json:"zones"`
}

// OperationsService определяет контракт для зон, спасателей, контактов и площадки
type OperationsService interface {
	ListZones(status string) syncer.State[models.Zone]
	RefreshZones(ctx context.Context) (syncer.State[models.Zone], error)
	ZoneStats() syncer.ZoneStats
	CreateZone(ctx context.Context, z models.Zone) (models.Zone, error)
	UpdateZoneOccupancy(ctx context.Context, zoneID string, occupancy int) (models.Zone, error)

	ListResponders(q syncer.ResponderQuery) syncer.State[models.Responder]
	RefreshResponders(ctx context.Context) (syncer.State[models.Responder], error)
	ResponderStats() syncer.ResponderStats
	AvailableResponders() []models.Responder
	CreateResponder(ctx context.Context, r models.Responder) (models.Responder, error)
	UpdateResponder(ctx context.Context, r models.Responder) (models.Responder, error)
	UnassignResponder(ctx context.Context, id string) (models.Responder, error)
	UpdateResponderPosition(ctx context.Context, id string, lat, lng float64) (models.Responder, error)

	ListContacts(ctx context.Context) ([]models.EmergencyContact, error)
	CreateContact(ctx context.Context, c models.EmergencyContact) (models.EmergencyContact, error)
	UpdateContact(ctx context.Context, c models.EmergencyContact) (models.EmergencyContact, error)

	Health(ctx context.Context) (api.Health, error)
	Overview(ctx context.Context) SystemOverview

	CreateVenue(ctx context.Context, v models.Venue) (models.Venue, error)
	GetVenue(ctx context.Context) (models.Venue, error)
}

type operationsService struct {
	zones      *syncer.Zones
	responders *syncer.Responders
	incidents  *syncer.Incidents
	contacts   ContactsAPI
	system     SystemAPI
	venues     VenuesAPI
	events     EventPublisher
	logger     *logrus.Logger
}

func NewOperationsService(
	zones *syncer.Zones,
	responders *syncer.Responders,
	incidents *syncer.Incidents,
	contacts ContactsAPI,
	system SystemAPI,
	venues VenuesAPI,
	publisher EventPublisher,
	logger *logrus.Logger,
) OperationsService {
	return &operationsService{
		zones:      zones,
		responders: responders,
		incidents:  incidents,
		contacts:   contacts,
		system:     system,
		venues:     venues,
		events:     publisher,
		logger:     logger,
	}
}

func (s *operationsService) ListZones(status string) syncer.State[models.Zone] {
	state := s.zones.State()
	if status != "" {
		state.Data = syncer.FilterZones(state.Data, models.ZoneStatus(status))
	}
	return state
}

func (s *operationsService) RefreshZones(ctx context.Context) (syncer.State[models.Zone], error) {
	err := s.zones.Refresh(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"service": "operations", "method": "RefreshZones"}).
			WithError(err).Warn("Zone refresh failed")
	}
	return s.zones.State(), err
}

func (s *operationsService) ZoneStats() syncer.ZoneStats {
	return s.zones.Stats()
}

func (s *operationsService) CreateZone(ctx context.Context, z models.Zone) (models.Zone, error) {
	if z.Name == "" {
		return models.Zone{}, fmt.Errorf("service: zone name is required: %w", ErrInvalidInput)
	}
	created, err := s.zones.Create(ctx, z)
	if err != nil {
		return models.Zone{}, fmt.Errorf("service: create zone: %w", err)
	}
	return created, nil
}

// UpdateZoneOccupancy пересчитывает плотность и уровень зоны
func (s *operationsService) UpdateZoneOccupancy(ctx context.Context, zoneID string, occupancy int) (models.Zone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "operations",
		"method":    "UpdateZoneOccupancy",
		"zone_id":   zoneID,
		"occupancy": occupancy,
	})

	z, err := s.zones.UpdateOccupancy(ctx, zoneID, occupancy)
	if err != nil {
		log.WithError(err).Warn("Failed to update zone occupancy")
		return models.Zone{}, fmt.Errorf("service: update occupancy: %w", err)
	}

	if err := s.events.Publish(ctx, events.ZoneOccupancy, z.ID, z); err != nil {
		log.WithError(err).Warn("Failed to publish event")
	}
	log.WithFields(logrus.Fields{
		"density": z.DensityPercent(),
		"status":  z.Status,
	}).Info("Zone occupancy updated")
	return z, nil
}

func (s *operationsService) ListResponders(q syncer.ResponderQuery) syncer.State[models.Responder] {
	state := s.responders.State()
	state.Data = syncer.FilterResponders(state.Data, q)
	return state
}

func (s *operationsService) RefreshResponders(ctx context.Context) (syncer.State[models.Responder], error) {
	err := s.responders.Refresh(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"service": "operations", "method": "RefreshResponders"}).
			WithError(err).Warn("Responder refresh failed")
	}
	return s.responders.State(), err
}

func (s *operationsService) ResponderStats() syncer.ResponderStats {
	return s.responders.Stats()
}

func (s *operationsService) AvailableResponders() []models.Responder {
	out := s.responders.Available()
	if out == nil {
		out = []models.Responder{}
	}
	return out
}

func (s *operationsService) CreateResponder(ctx context.Context, r models.Responder) (models.Responder, error) {
	if r.Name == "" {
		return models.Responder{}, fmt.Errorf("service: responder name is required: %w", ErrInvalidInput)
	}
	created, err := s.responders.Create(ctx, r)
	if err != nil {
		return models.Responder{}, fmt.Errorf("service: create responder: %w", err)
	}
	return created, nil
}

func (s *operationsService) UpdateResponder(ctx context.Context, r models.Responder) (models.Responder, error) {
	if err := r.Validate(); err != nil {
		return models.Responder{}, fmt.Errorf("service: %v: %w", err, ErrInvalidInput)
	}
	updated, err := s.responders.Update(ctx, r)
	if err != nil {
		return models.Responder{}, fmt.Errorf("service: update responder: %w", err)
	}
	return updated, nil
}

// UnassignResponder освобождает спасателя: назначение и ETA очищаются вместе
func (s *operationsService) UnassignResponder(ctx context.Context, id string) (models.Responder, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "operations",
		"method":       "UnassignResponder",
		"responder_id": id,
	})

	var previous string
	if r, ok := s.responders.Find(id); ok && r.AssignedIncident != nil {
		previous = *r.AssignedIncident
	}

	r, err := s.responders.Unassign(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to unassign responder")
		return models.Responder{}, fmt.Errorf("service: unassign responder: %w", err)
	}

	payload := map[string]string{"responderId": id, "incidentId": previous}
	if err := s.events.Publish(ctx, events.ResponderUnassigned, id, payload); err != nil {
		log.WithError(err).Warn("Failed to publish event")
	}
	log.WithField("incident_id", previous).Info("Responder unassigned")
	return r, nil
}

func (s *operationsService) UpdateResponderPosition(ctx context.Context, id string, lat, lng float64) (models.Responder, error) {
	r, err := s.responders.UpdatePosition(ctx, id, lat, lng)
	if err != nil {
		return models.Responder{}, fmt.Errorf("service: update position: %w", err)
	}
	return r, nil
}

func (s *operationsService) ListContacts(ctx context.Context) ([]models.EmergencyContact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"service": "operations", "method": "ListContacts"}).
			WithError(err).Warn("Failed to list emergency contacts")
		return nil, fmt.Errorf("service: list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []models.EmergencyContact{}
	}
	return contacts, nil
}

func (s *operationsService) CreateContact(ctx context.Context, c models.EmergencyContact) (models.EmergencyContact, error) {
	if c.Service == "" {
		return models.EmergencyContact{}, fmt.Errorf("service: contact service name is required: %w", ErrInvalidInput)
	}
	created, err := s.contacts.Create(ctx, c)
	if err != nil {
		return models.EmergencyContact{}, fmt.Errorf("service: create contact: %w", err)
	}
	return created, nil
}

func (s *operationsService) UpdateContact(ctx context.Context, c models.EmergencyContact) (models.EmergencyContact, error) {
	updated, err := s.contacts.Update(ctx, c)
	if err != nil {
		return models.EmergencyContact{}, fmt.Errorf("service: update contact: %w", err)
	}
	return updated, nil
}

func (s *operationsService) Health(ctx context.Context) (api.Health, error) {
	h, err := s.system.Health(ctx)
	if err != nil {
		return api.Health{}, fmt.Errorf("service: health: %w", err)
	}
	return h, nil
}

// Overview собирает сводку из бэкенда и локальных кешей
func (s *operationsService) Overview(ctx context.Context) SystemOverview {
	log := s.logger.WithFields(logrus.Fields{"service": "operations", "method": "Overview"})

	out := SystemOverview{
		Incidents:  syncer.ComputeIncidentStats(syncer.ProjectAssignments(s.incidents.Data(), s.responders.Data())),
		Responders: s.responders.Stats(),
		Zones:      s.zones.Stats(),
	}
	if h, err := s.system.Health(ctx); err != nil {
		log.WithError(err).Warn("Failed to fetch system health")
		out.HealthError = err.Error()
	} else {
		out.Health = &h
	}
	if st, err := s.system.Stats(ctx); err != nil {
		log.WithError(err).Warn("Failed to fetch system stats")
		out.StatsError = err.Error()
	} else {
		out.Stats = &st
	}
	return out
}

// CreateVenue отправляет настройку площадки. Зоны, созданные бэкендом,
// подтягиваются внеочередным обновлением.
func (s *operationsService) CreateVenue(ctx context.Context, v models.Venue) (models.Venue, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "operations",
		"method":     "CreateVenue",
		"event_name": v.EventName,
	})
	if v.EventName == "" {
		return models.Venue{}, fmt.Errorf("service: event name is required: %w", ErrInvalidInput)
	}

	created, err := s.venues.Create(ctx, v)
	if err != nil {
		log.WithError(err).Error("Failed to create venue")
		return models.Venue{}, fmt.Errorf("service: create venue: %w", err)
	}
	if err := s.zones.Refresh(ctx); err != nil {
		log.WithError(err).Warn("Zone refresh after venue setup failed")
	}
	log.WithField("zones", len(created.Zones)).Info("Venue created")
	return created, nil
}

func (s *operationsService) GetVenue(ctx context.Context) (models.Venue, error) {
	v, err := s.venues.Get(ctx)
	if err != nil {
		return models.Venue{}, fmt.Errorf("service: get venue: %w", err)
	}
	return v, nil
}
