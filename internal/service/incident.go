package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/drishti/internal/dispatch"
	"github.com/shenikar/drishti/internal/events"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/syncer"
	"github.com/sirupsen/logrus"
)

const defaultPendingLimit = 50

// IncidentDetail - инцидент вместе с заметками для страницы деталей
type IncidentDetail struct {
	Incident models.Incident       `json:"incident"`
	Notes    []models.IncidentNote `json:"notes"`
	// NotesError заполняется, если заметки не удалось загрузить
	NotesError string `json:"notesError,omitempty"`
}

// IncidentService определяет контракт для представлений и действий с инцидентами
type IncidentService interface {
	ListIncidents(q syncer.IncidentQuery) syncer.State[models.Incident]
	RefreshIncidents(ctx context.Context) (syncer.State[models.Incident], error)
	IncidentStats() syncer.IncidentStats
	GetIncident(ctx context.Context, id string) (IncidentDetail, error)
	ReportIncident(ctx context.Context, form dispatch.ReportForm) (dispatch.Outcome, error)
	UpdateStatus(ctx context.Context, id, status string) (models.Incident, error)
	AddNote(ctx context.Context, id, text, author string) (models.IncidentNote, error)
	AssignResponder(ctx context.Context, incidentID, responderID, eta string) (models.Responder, error)
	DeleteIncident(ctx context.Context, id string) error
	GetDispatch(ctx context.Context, id uuid.UUID) (*models.DispatchSaga, error)
	RetryDispatch(ctx context.Context, id uuid.UUID) (dispatch.Outcome, error)
	PendingDispatches(ctx context.Context, limit int) ([]*models.DispatchSaga, error)
}

type incidentService struct {
	incidents  *syncer.Incidents
	responders *syncer.Responders
	reader     IncidentReader
	dispatcher Dispatcher
	events     EventPublisher
	logger     *logrus.Logger
}

func NewIncidentService(
	incidents *syncer.Incidents,
	responders *syncer.Responders,
	reader IncidentReader,
	dispatcher Dispatcher,
	publisher EventPublisher,
	logger *logrus.Logger,
) IncidentService {
	return &incidentService{
		incidents:  incidents,
		responders: responders,
		reader:     reader,
		dispatcher: dispatcher,
		events:     publisher,
		logger:     logger,
	}
}

// ListIncidents возвращает состояние кеша с отфильтрованным списком.
// Снимок назначенного спасателя всегда берется из записи спасателя.
func (s *incidentService) ListIncidents(q syncer.IncidentQuery) syncer.State[models.Incident] {
	state := s.incidents.State()
	state.Data = syncer.ProjectAssignments(syncer.FilterIncidents(state.Data, q), s.responders.Data())
	return state
}

// RefreshIncidents принудительно перечитывает список. Ошибка загрузки
// остается в State.Error, старые данные сохраняются.
func (s *incidentService) RefreshIncidents(ctx context.Context) (syncer.State[models.Incident], error) {
	err := s.incidents.Refresh(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "incident",
			"method":  "RefreshIncidents",
		}).WithError(err).Warn("Incident refresh failed")
	}
	return s.ListIncidents(syncer.IncidentQuery{}), err
}

func (s *incidentService) IncidentStats() syncer.IncidentStats {
	return syncer.ComputeIncidentStats(syncer.ProjectAssignments(s.incidents.Data(), s.responders.Data()))
}

// GetIncident берет инцидент из кеша, при промахе читает его с бэкенда
func (s *incidentService) GetIncident(ctx context.Context, id string) (IncidentDetail, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	inc, ok := s.incidents.Find(id)
	if !ok {
		log.Debug("Incident cache miss, fetching from backend")
		fetched, err := s.reader.Get(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Failed to fetch incident")
			return IncidentDetail{}, fmt.Errorf("service: get incident: %w", err)
		}
		inc = s.incidents.Track(fetched)
	}
	inc = syncer.ProjectAssignments([]models.Incident{inc}, s.responders.Data())[0]

	detail := IncidentDetail{Incident: inc, Notes: []models.IncidentNote{}}
	notes, err := s.reader.Notes(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch incident notes")
		detail.NotesError = err.Error()
	} else if notes != nil {
		detail.Notes = notes
	}
	return detail, nil
}

func (s *incidentService) ReportIncident(ctx context.Context, form dispatch.ReportForm) (dispatch.Outcome, error) {
	out, err := s.dispatcher.Report(ctx, form)
	if err != nil {
		return out, fmt.Errorf("service: report incident: %w", err)
	}
	return out, nil
}

// UpdateStatus переводит инцидент в новый статус по машине состояний
func (s *incidentService) UpdateStatus(ctx context.Context, id, status string) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": id,
		"status":      status,
	})

	next := models.ParseIncidentStatus(status)
	if next == models.IncidentStatusUnknown {
		return models.Incident{}, fmt.Errorf("service: unknown status %q: %w", status, ErrInvalidInput)
	}

	inc, err := s.incidents.SetStatus(ctx, id, next)
	if err != nil {
		log.WithError(err).Warn("Failed to update incident status")
		return models.Incident{}, fmt.Errorf("service: update status: %w", err)
	}

	s.publish(ctx, events.IncidentStatus, inc.ID, inc, log)
	log.Info("Incident status updated")
	return inc, nil
}

func (s *incidentService) AddNote(ctx context.Context, id, text, author string) (models.IncidentNote, error) {
	if text == "" {
		return models.IncidentNote{}, fmt.Errorf("service: empty note: %w", ErrInvalidInput)
	}
	note, err := s.incidents.AddNote(ctx, id, text, author)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "incident",
			"method":      "AddNote",
			"incident_id": id,
		}).WithError(err).Warn("Failed to add note")
		return models.IncidentNote{}, fmt.Errorf("service: add note: %w", err)
	}
	return note, nil
}

// AssignResponder - ручное назначение спасателя из списка доступных
func (s *incidentService) AssignResponder(ctx context.Context, incidentID, responderID, eta string) (models.Responder, error) {
	r, err := s.dispatcher.Assign(ctx, incidentID, responderID, eta)
	if err != nil {
		return models.Responder{}, fmt.Errorf("service: assign responder: %w", err)
	}
	return r, nil
}

// DeleteIncident - удаление доступно только администратору
func (s *incidentService) DeleteIncident(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.incidents.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident")
		return fmt.Errorf("service: delete incident: %w", err)
	}
	log.Info("Incident deleted")
	return nil
}

func (s *incidentService) GetDispatch(ctx context.Context, id uuid.UUID) (*models.DispatchSaga, error) {
	saga, err := s.dispatcher.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: get dispatch: %w", err)
	}
	return saga, nil
}

func (s *incidentService) RetryDispatch(ctx context.Context, id uuid.UUID) (dispatch.Outcome, error) {
	out, err := s.dispatcher.RetryDispatch(ctx, id)
	if err != nil {
		return out, fmt.Errorf("service: retry dispatch: %w", err)
	}
	return out, nil
}

// PendingDispatches возвращает саги без назначенного спасателя
func (s *incidentService) PendingDispatches(ctx context.Context, limit int) ([]*models.DispatchSaga, error) {
	if limit < 1 || limit > 200 {
		limit = defaultPendingLimit
	}
	sagas, err := s.dispatcher.Pending(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: pending dispatches: %w", err)
	}
	if sagas == nil {
		sagas = []*models.DispatchSaga{}
	}
	return sagas, nil
}

func (s *incidentService) publish(ctx context.Context, eventType, key string, payload any, log *logrus.Entry) {
	if err := s.events.Publish(ctx, eventType, key, payload); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Warn("Failed to publish event")
	}
}
