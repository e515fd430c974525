package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/dispatch"
	"github.com/shenikar/drishti/internal/media"
	"github.com/shenikar/drishti/internal/models"
)

// ErrInvalidInput - входные данные не прошли проверку до обращения к бэкенду
var ErrInvalidInput = errors.New("invalid input")

// SessionManager определяет контракт для хранилища сессии оператора
type SessionManager interface {
	Login(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context) error
	Current(ctx context.Context) (models.Credentials, error)
}

// Authenticator обменивает логин и пароль на учетные данные
type Authenticator interface {
	Login(ctx context.Context, userID, password string) (models.Credentials, error)
}

// IncidentReader читает инцидент и его заметки напрямую с бэкенда
type IncidentReader interface {
	Get(ctx context.Context, id string) (models.Incident, error)
	Notes(ctx context.Context, id string) ([]models.IncidentNote, error)
}

// Dispatcher определяет контракт саги "создать инцидент + назначить спасателя"
type Dispatcher interface {
	Report(ctx context.Context, form dispatch.ReportForm) (dispatch.Outcome, error)
	RetryDispatch(ctx context.Context, sagaID uuid.UUID) (dispatch.Outcome, error)
	Assign(ctx context.Context, incidentID, responderID, eta string) (models.Responder, error)
	Get(ctx context.Context, id uuid.UUID) (*models.DispatchSaga, error)
	Pending(ctx context.Context, limit int) ([]*models.DispatchSaga, error)
}

type ContactsAPI interface {
	List(ctx context.Context) ([]models.EmergencyContact, error)
	Create(ctx context.Context, contact models.EmergencyContact) (models.EmergencyContact, error)
	Update(ctx context.Context, contact models.EmergencyContact) (models.EmergencyContact, error)
}

type SystemAPI interface {
	Health(ctx context.Context) (api.Health, error)
	Stats(ctx context.Context) (api.SystemStats, error)
}

type VenuesAPI interface {
	Create(ctx context.Context, v models.Venue) (models.Venue, error)
	Get(ctx context.Context) (models.Venue, error)
}

type AlertsAPI interface {
	Send(ctx context.Context, alert models.Alert) (models.Alert, error)
	List(ctx context.Context) ([]models.Alert, error)
}

// AgentAPI определяет контракт AI-агента
type AgentAPI interface {
	Chat(ctx context.Context, req api.ChatRequest) (string, error)
	Summary(ctx context.Context, req api.SummaryRequest) (api.Summary, error)
	ResourceRecommendations(ctx context.Context, zoneID string) ([]api.ResourceRecommendation, error)
	CommandActions(ctx context.Context, incidentID string) ([]api.CommandAction, error)
	GenerateAlertMessage(ctx context.Context, req api.AlertMessageRequest) (string, error)
	TextToSpeech(ctx context.Context, req api.SpeechRequest) (api.Speech, error)
	Predict(ctx context.Context, req api.ForecastRequest) (api.Forecast, error)
}

// MediaAnalyzer определяет контракт конвейера анализа кадров
type MediaAnalyzer interface {
	Capture(ctx context.Context, zone string) (media.Result, error)
	AnalyzeImage(ctx context.Context, zone, filename, contentType string, data []byte, notes string) (media.Result, error)
	Status() string
	Last() (media.Result, bool)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
}
