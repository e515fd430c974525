package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/events"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/syncer"
	"github.com/shenikar/drishti/internal/webhook"
	"github.com/sirupsen/logrus"
)

const defaultAlertLanguage = "en"

// AlertDraft - данные формы отправки оповещения
type AlertDraft struct {
	AlertType string
	Target    string
	Language  string
	Message   string
	Severity  models.AlertSeverity
	// GenerateMessage просит AI-агента написать текст, даже если Message заполнен
	GenerateMessage bool
	Context         string
	WithAudio       bool
}

// AlertResult - отправленное оповещение и побочные результаты
type AlertResult struct {
	Alert      models.Alert `json:"alert"`
	Generated  bool         `json:"generated"`
	AudioError string       `json:"audioError,omitempty"`
	// Queued - доставка поставлена в очередь вебхука
	Queued bool `json:"queued"`
}

// AlertService определяет контракт для оповещений
type AlertService interface {
	SendAlert(ctx context.Context, draft AlertDraft, sentBy string) (AlertResult, error)
	ListAlerts(ctx context.Context) ([]models.Alert, error)
}

type alertService struct {
	alerts  AlertsAPI
	agent   AgentAPI
	zones   *syncer.Zones
	webhook webhook.WebhookPublisher
	events  EventPublisher
	logger  *logrus.Logger
	now     func() time.Time
}

func NewAlertService(
	alerts AlertsAPI,
	agent AgentAPI,
	zones *syncer.Zones,
	webhookPublisher webhook.WebhookPublisher,
	publisher EventPublisher,
	logger *logrus.Logger,
) AlertService {
	return &alertService{
		alerts:  alerts,
		agent:   agent,
		zones:   zones,
		webhook: webhookPublisher,
		events:  publisher,
		logger:  logger,
		now:     time.Now,
	}
}

// SendAlert: при необходимости генерирует текст и аудио, отправляет
// оповещение и ставит доставку вебхука в очередь
func (s *alertService) SendAlert(ctx context.Context, draft AlertDraft, sentBy string) (AlertResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "SendAlert",
		"target":   draft.Target,
		"severity": draft.Severity,
	})
	log.Info("Attempting to send alert")

	if draft.Language == "" {
		draft.Language = defaultAlertLanguage
	}
	if draft.Severity == "" {
		draft.Severity = models.AlertSeverityInfo
	}
	zones, err := s.targetZones(draft.Target)
	if err != nil {
		return AlertResult{}, err
	}

	var res AlertResult
	message := strings.TrimSpace(draft.Message)
	if draft.GenerateMessage || message == "" {
		generated, err := s.agent.GenerateAlertMessage(ctx, api.AlertMessageRequest{
			AlertType: draft.AlertType,
			Target:    draft.Target,
			Language:  draft.Language,
			Severity:  draft.Severity,
			Context:   draft.Context,
		})
		if err != nil {
			log.WithError(err).Error("Failed to generate alert message")
			return AlertResult{}, fmt.Errorf("service: generate alert message: %w", err)
		}
		message = generated
		res.Generated = true
	}

	alert := models.Alert{
		ID:        uuid.NewString(),
		AlertType: draft.AlertType,
		Target:    draft.Target,
		Language:  draft.Language,
		Message:   message,
		Severity:  draft.Severity,
		Timestamp: s.now(),
		Status:    "sent",
	}

	if draft.WithAudio {
		speech, err := s.agent.TextToSpeech(ctx, api.SpeechRequest{Text: message, Language: draft.Language})
		if err != nil {
			// аудио необязательно, оповещение уходит без него
			log.WithError(err).Warn("Text to speech failed")
			res.AudioError = err.Error()
		} else {
			alert.AudioURL = speech.AudioURL
			if alert.AudioURL == "" && speech.AudioContent != "" {
				alert.AudioURL = "data:audio/mpeg;base64," + speech.AudioContent
			}
		}
	}

	sent, err := s.alerts.Send(ctx, alert)
	if err != nil {
		log.WithError(err).Error("Failed to send alert")
		return AlertResult{}, fmt.Errorf("service: send alert: %w", err)
	}
	res.Alert = sent

	delivery := webhook.AlertDelivery{
		Alert:     sent,
		SentBy:    sentBy,
		Zones:     zones,
		Timestamp: s.now(),
	}
	if err := s.webhook.Publish(ctx, delivery); err != nil {
		log.WithError(err).Error("Failed to enqueue alert webhook")
	} else {
		res.Queued = true
	}
	if err := s.events.Publish(ctx, events.AlertSent, sent.Target, sent); err != nil {
		log.WithError(err).Warn("Failed to publish event")
	}

	log.WithField("alert_id", sent.ID).Info("Alert sent successfully")
	return res, nil
}

// targetZones возвращает зоны, попадающие под оповещение. Пока кеш зон пуст,
// цель не проверяется.
func (s *alertService) targetZones(target string) ([]models.Zone, error) {
	if target == "" {
		return nil, fmt.Errorf("service: alert target is required: %w", ErrInvalidInput)
	}
	all := s.zones.Data()
	if target == models.AlertTargetAll {
		return all, nil
	}
	if len(all) == 0 {
		return nil, nil
	}
	z, ok := s.zones.ByName(target)
	if !ok {
		return nil, fmt.Errorf("service: unknown alert target %q: %w", target, ErrInvalidInput)
	}
	return []models.Zone{z}, nil
}

func (s *alertService) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	alerts, err := s.alerts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: list alerts: %w", err)
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}
	return alerts, nil
}
