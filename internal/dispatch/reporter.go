// Package dispatch runs the report flow: create the incident, then ask the
// backend for the nearest responder. The two writes are not transactional, so
// each report is tracked as a saga whose state survives a failed or empty
// dispatch and can be retried by hand.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/events"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/pkg/metrics"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidReport        = errors.New("invalid report")
	ErrSagaNotFound         = errors.New("dispatch saga not found")
	ErrAlreadyDispatched    = errors.New("incident already has a responder")
	ErrResponderNotFound    = errors.New("responder not found")
	ErrResponderUnavailable = errors.New("responder is not available")
)

const (
	MsgReported    = "Incident reported successfully"
	MsgNoResponder = "No responder available"
)

// SagaRepository persists sagas. Cache misses return (nil, nil).
type SagaRepository interface {
	Create(ctx context.Context, saga *models.DispatchSaga) error
	Update(ctx context.Context, saga *models.DispatchSaga) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DispatchSaga, error)
	GetByIncident(ctx context.Context, incidentID string) (*models.DispatchSaga, error)
	ListByState(ctx context.Context, states []models.DispatchState, limit int) ([]*models.DispatchSaga, error)
	GetSagaFromCache(ctx context.Context, id uuid.UUID) (*models.DispatchSaga, error)
	SetSagaCache(ctx context.Context, saga *models.DispatchSaga) error
	InvalidateSagaCache(ctx context.Context, id uuid.UUID) error
}

// IncidentStore creates incidents and keeps the local list current.
type IncidentStore interface {
	Create(ctx context.Context, in api.NewIncident) (models.Incident, error)
}

// Dispatcher asks the backend for the nearest available responder.
type Dispatcher interface {
	DispatchNearest(ctx context.Context, req api.DispatchRequest) (api.DispatchResult, error)
}

// ResponderStore is the responder cache plus the manual assignment call.
type ResponderStore interface {
	Find(id string) (models.Responder, bool)
	AssignToIncident(ctx context.Context, responderID, incidentID, eta string) (models.Responder, error)
	ApplyAssignment(r models.Responder, incidentID, eta string) models.Responder
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
}

// Level is the terminal visual state of a report.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelFailure Level = "failure"
)

// Outcome is what the operator sees after submitting a report.
type Outcome struct {
	Level           Level                `json:"level"`
	Message         string               `json:"message"`
	DispatchMessage string               `json:"dispatchMessage,omitempty"`
	Incident        *models.Incident     `json:"incident,omitempty"`
	Saga            *models.DispatchSaga `json:"saga,omitempty"`
}

// ReportForm is the report-incident form. Type and status accept any casing.
type ReportForm struct {
	Zone        string   `json:"zone" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Status      string   `json:"status" validate:"required"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=critical high medium low Critical High Medium Low"`
	Severity    int      `json:"severity" validate:"omitempty,min=1,max=5"`
	Description string   `json:"description" validate:"max=2000"`
	Lat         *float64 `json:"lat" validate:"required,latitude"`
	Lng         *float64 `json:"lng" validate:"required,longitude"`
	Address     string   `json:"address"`
	ReportedBy  string   `json:"reportedBy"`
}

type Reporter struct {
	incidents  IncidentStore
	dispatcher Dispatcher
	responders ResponderStore
	repo       SagaRepository
	events     EventPublisher
	validate   *validator.Validate
	logger     *logrus.Logger
	now        func() time.Time
}

func NewReporter(
	incidents IncidentStore,
	dispatcher Dispatcher,
	responders ResponderStore,
	repo SagaRepository,
	publisher EventPublisher,
	logger *logrus.Logger,
) *Reporter {
	return &Reporter{
		incidents:  incidents,
		dispatcher: dispatcher,
		responders: responders,
		repo:       repo,
		events:     publisher,
		validate:   validator.New(),
		logger:     logger,
		now:        time.Now,
	}
}

// normalize validates the form and turns it into the create payload.
func (r *Reporter) normalize(form ReportForm) (api.NewIncident, error) {
	if err := r.validate.Struct(form); err != nil {
		return api.NewIncident{}, fmt.Errorf("%w: %w", ErrInvalidReport, err)
	}
	status := models.ParseIncidentStatus(form.Status)
	if status == models.IncidentStatusUnknown || status == models.IncidentStatusResolved {
		return api.NewIncident{}, fmt.Errorf("%w: status %q", ErrInvalidReport, form.Status)
	}

	severity := form.Severity
	if severity == 0 {
		severity = 3
	}
	priority, ok := models.ParseIncidentPriority(form.Priority)
	if !ok {
		priority = priorityForSeverity(severity)
	}

	return api.NewIncident{
		Type:        models.ParseIncidentType(form.Type),
		Status:      status,
		Priority:    priority,
		Severity:    severity,
		Zone:        form.Zone,
		Location:    models.Location{Lat: *form.Lat, Lng: *form.Lng, Address: form.Address},
		Description: form.Description,
		ReportedBy:  form.ReportedBy,
		Timestamp:   r.now().UTC(),
	}, nil
}

func priorityForSeverity(severity int) models.IncidentPriority {
	switch {
	case severity >= 5:
		return models.PriorityCritical
	case severity == 4:
		return models.PriorityHigh
	case severity <= 2:
		return models.PriorityLow
	}
	return models.PriorityMedium
}

// Report creates the incident and dispatches the nearest responder. The
// incident stays persisted when dispatch fails; that case is a warning, not a
// failure. The returned error is non-nil only when nothing was created.
func (r *Reporter) Report(ctx context.Context, form ReportForm) (Outcome, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service": "Reporter",
		"method":  "Report",
		"zone":    form.Zone,
	})

	in, err := r.normalize(form)
	if err != nil {
		log.WithError(err).Warn("Report form rejected")
		return Outcome{Level: LevelFailure, Message: err.Error()}, err
	}

	incident, err := r.incidents.Create(ctx, in)
	if err != nil {
		log.WithError(err).Error("Failed to create incident")
		return Outcome{Level: LevelFailure, Message: "Failed to report incident: " + err.Error()},
			fmt.Errorf("dispatch: create incident: %w", err)
	}
	log = log.WithField("incident_id", incident.ID)
	log.Info("Incident created")
	r.publish(ctx, events.IncidentReported, incident.ID, incident)

	now := r.now().UTC()
	saga := &models.DispatchSaga{
		ID:           uuid.New(),
		IncidentID:   incident.ID,
		Zone:         incident.Zone,
		IncidentType: incident.Type,
		Location:     incident.Location,
		State:        models.DispatchIncidentCreated,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.repo.Create(ctx, saga); err != nil {
		// отчёт уже принят бэкендом; теряем только возможность повтора
		log.WithError(err).Error("Failed to record dispatch saga")
	}

	out := r.dispatch(ctx, saga, log)
	out.Message = MsgReported
	out.Incident = &incident
	return out, nil
}

// RetryDispatch re-runs the dispatch step of a saga that has no responder yet.
func (r *Reporter) RetryDispatch(ctx context.Context, sagaID uuid.UUID) (Outcome, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service": "Reporter",
		"method":  "RetryDispatch",
		"saga_id": sagaID,
	})

	saga, err := r.Get(ctx, sagaID)
	if err != nil {
		return Outcome{Level: LevelFailure, Message: err.Error()}, err
	}
	if !saga.State.Retryable() {
		return Outcome{Level: LevelFailure, Message: ErrAlreadyDispatched.Error(), Saga: saga}, ErrAlreadyDispatched
	}

	out := r.dispatch(ctx, saga, log.WithField("incident_id", saga.IncidentID))
	out.Message = "Dispatch retried"
	return out, nil
}

// dispatch runs one nearest-responder attempt and records the result.
func (r *Reporter) dispatch(ctx context.Context, saga *models.DispatchSaga, log *logrus.Entry) Outcome {
	saga.Attempts++
	r.transition(ctx, saga, models.DispatchPending, log)

	res, err := r.dispatcher.DispatchNearest(ctx, api.DispatchRequest{
		IncidentID: saga.IncidentID,
		Lat:        saga.Location.Lat,
		Lng:        saga.Location.Lng,
		Type:       saga.IncidentType,
		Zone:       saga.Zone,
	})

	switch {
	case err != nil:
		msg := err.Error()
		saga.LastError = &msg
		r.transition(ctx, saga, models.DispatchFailed, log)
		log.WithError(err).Warn("Dispatch failed, incident kept without responder")
		r.publish(ctx, events.DispatchFailed, saga.IncidentID, saga)
		return Outcome{Level: LevelWarning, DispatchMessage: "Dispatch failed: " + msg, Saga: saga}

	case !res.Success || res.Responder == nil:
		msg := res.Message
		if msg == "" {
			msg = MsgNoResponder
		}
		saga.LastError = &msg
		r.transition(ctx, saga, models.DispatchNoResponder, log)
		log.Warn("No responder available")
		r.publish(ctx, events.DispatchNoResponder, saga.IncidentID, saga)
		return Outcome{Level: LevelWarning, DispatchMessage: MsgNoResponder, Saga: saga}
	}

	eta := res.ETA
	if eta == "" && res.Responder.ETA != nil {
		eta = *res.Responder.ETA
	}
	responder := r.responders.ApplyAssignment(*res.Responder, saga.IncidentID, eta)
	r.markDispatched(saga, responder.ID, res.Responder.Name, eta)
	r.transition(ctx, saga, models.DispatchDispatched, log)
	log.WithField("responder_id", responder.ID).Info("Responder dispatched")
	r.publish(ctx, events.ResponderDispatched, saga.IncidentID, saga)

	return Outcome{Level: LevelSuccess, DispatchMessage: dispatchedMessage(res.Responder.Name, eta), Saga: saga}
}

func dispatchedMessage(name, eta string) string {
	if name == "" {
		name = "unit"
	}
	if eta == "" {
		return fmt.Sprintf("Responder %s dispatched", name)
	}
	return fmt.Sprintf("Responder %s dispatched, ETA %s", name, eta)
}

func (r *Reporter) markDispatched(saga *models.DispatchSaga, responderID, name, eta string) {
	saga.ResponderID = &responderID
	saga.ResponderName = &name
	saga.ETA = nil
	if eta != "" {
		saga.ETA = &eta
	}
	saga.LastError = nil
}

// Assign is the manual assignment from the incident view. Only responders
// that are currently available can be picked.
func (r *Reporter) Assign(ctx context.Context, incidentID, responderID, eta string) (models.Responder, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":      "Reporter",
		"method":       "Assign",
		"incident_id":  incidentID,
		"responder_id": responderID,
	})

	current, ok := r.responders.Find(responderID)
	if !ok {
		return models.Responder{}, ErrResponderNotFound
	}
	if current.Status != models.ResponderAvailable && !current.AssignedTo(incidentID) {
		log.WithField("status", current.Status).Warn("Responder not available for assignment")
		return models.Responder{}, ErrResponderUnavailable
	}

	assigned, err := r.responders.AssignToIncident(ctx, responderID, incidentID, eta)
	if err != nil {
		log.WithError(err).Error("Failed to assign responder")
		return models.Responder{}, fmt.Errorf("dispatch: assign responder: %w", err)
	}
	log.Info("Responder assigned")

	saga, err := r.repo.GetByIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to load saga for incident")
	} else if saga != nil {
		var assignedETA string
		if assigned.ETA != nil {
			assignedETA = *assigned.ETA
		}
		r.markDispatched(saga, responderID, current.Name, assignedETA)
		r.transition(ctx, saga, models.DispatchDispatched, log)
	}

	r.publish(ctx, events.ResponderAssigned, incidentID, assigned)
	return assigned, nil
}

// Get reads a saga through the cache.
func (r *Reporter) Get(ctx context.Context, id uuid.UUID) (*models.DispatchSaga, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service": "Reporter",
		"method":  "Get",
		"saga_id": id,
	})

	saga, err := r.repo.GetSagaFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read saga from cache")
	}
	if saga != nil {
		return saga, nil
	}

	saga, err = r.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSagaNotFound) {
			return nil, ErrSagaNotFound
		}
		log.WithError(err).Error("Failed to load saga")
		return nil, fmt.Errorf("dispatch: get saga: %w", err)
	}

	if err := r.repo.SetSagaCache(ctx, saga); err != nil {
		log.WithError(err).Warn("Failed to cache saga")
	}
	return saga, nil
}

// Pending lists sagas still waiting for a responder.
func (r *Reporter) Pending(ctx context.Context, limit int) ([]*models.DispatchSaga, error) {
	sagas, err := r.repo.ListByState(ctx, []models.DispatchState{
		models.DispatchIncidentCreated,
		models.DispatchPending,
		models.DispatchNoResponder,
		models.DispatchFailed,
	}, limit)
	if err != nil {
		return nil, fmt.Errorf("dispatch: list pending sagas: %w", err)
	}
	return sagas, nil
}

func (r *Reporter) transition(ctx context.Context, saga *models.DispatchSaga, state models.DispatchState, log *logrus.Entry) {
	saga.State = state
	saga.UpdatedAt = r.now().UTC()
	if err := r.repo.Update(ctx, saga); err != nil {
		log.WithError(err).WithField("state", state).Error("Failed to persist saga state")
	}
	if err := r.repo.InvalidateSagaCache(ctx, saga.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate saga cache")
	}
	switch state {
	case models.DispatchDispatched, models.DispatchNoResponder, models.DispatchFailed:
		metrics.IncDispatchOutcome(string(state))
	}
}

func (r *Reporter) publish(ctx context.Context, eventType, key string, payload any) {
	if err := r.events.Publish(ctx, eventType, key, payload); err != nil {
		r.logger.WithError(err).WithField("event", eventType).Warn("Failed to publish event")
	}
}
