package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/media"
	"github.com/shenikar/drishti/internal/syncer"
	"github.com/sirupsen/logrus"
)

const maxChatMessage = 4000

// MediaStatus - текущий шаг конвейера и последний результат
type MediaStatus struct {
	Status string        `json:"status"`
	Last   *media.Result `json:"last,omitempty"`
}

// IntelService определяет контракт AI-сводок, чата и анализа кадров
type IntelService interface {
	Summary(ctx context.Context, zoneID string) (api.Summary, error)
	Chat(ctx context.Context, message, sessionID string) (string, error)
	Recommendations(ctx context.Context, zoneID string) ([]api.ResourceRecommendation, error)
	CommandActions(ctx context.Context, incidentID string) ([]api.CommandAction, error)
	Forecast(ctx context.Context, zoneID string, horizonMinutes int) (api.Forecast, error)
	AnalyzeMedia(ctx context.Context, zone, filename, contentType string, data []byte, notes string) (media.Result, error)
	CaptureFrame(ctx context.Context, zone string) (media.Result, error)
	MediaStatus() MediaStatus
}

type intelService struct {
	agent     AgentAPI
	analyzer  MediaAnalyzer
	incidents *syncer.Incidents
	logger    *logrus.Logger
}

func NewIntelService(agent AgentAPI, analyzer MediaAnalyzer, incidents *syncer.Incidents, logger *logrus.Logger) IntelService {
	return &intelService{
		agent:     agent,
		analyzer:  analyzer,
		incidents: incidents,
		logger:    logger,
	}
}

// Summary запрашивает AI-сводку; один повтор выполняет клиент агента
func (s *intelService) Summary(ctx context.Context, zoneID string) (api.Summary, error) {
	req := api.SummaryRequest{Scope: "venue"}
	if zoneID != "" {
		req = api.SummaryRequest{Scope: "zone", ZoneID: zoneID}
	}
	sum, err := s.agent.Summary(ctx, req)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "intel",
			"method":  "Summary",
			"zone_id": zoneID,
		}).WithError(err).Warn("AI summary unavailable")
		return api.Summary{}, fmt.Errorf("service: summary: %w", err)
	}
	return sum, nil
}

func (s *intelService) Chat(ctx context.Context, message, sessionID string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" || len(message) > maxChatMessage {
		return "", fmt.Errorf("service: chat message must be 1-%d chars: %w", maxChatMessage, ErrInvalidInput)
	}
	reply, err := s.agent.Chat(ctx, api.ChatRequest{Message: message, SessionID: sessionID})
	if err != nil {
		s.logger.WithFields(logrus.Fields{"service": "intel", "method": "Chat"}).
			WithError(err).Warn("Agent chat failed")
		return "", fmt.Errorf("service: chat: %w", err)
	}
	return reply, nil
}

func (s *intelService) Recommendations(ctx context.Context, zoneID string) ([]api.ResourceRecommendation, error) {
	recs, err := s.agent.ResourceRecommendations(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("service: recommendations: %w", err)
	}
	if recs == nil {
		recs = []api.ResourceRecommendation{}
	}
	return recs, nil
}

func (s *intelService) CommandActions(ctx context.Context, incidentID string) ([]api.CommandAction, error) {
	actions, err := s.agent.CommandActions(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("service: command actions: %w", err)
	}
	if actions == nil {
		actions = []api.CommandAction{}
	}
	return actions, nil
}

func (s *intelService) Forecast(ctx context.Context, zoneID string, horizonMinutes int) (api.Forecast, error) {
	if zoneID == "" {
		return api.Forecast{}, fmt.Errorf("service: zone is required: %w", ErrInvalidInput)
	}
	if horizonMinutes <= 0 {
		horizonMinutes = 30
	}
	f, err := s.agent.Predict(ctx, api.ForecastRequest{ZoneID: zoneID, HorizonMinutes: horizonMinutes})
	if err != nil {
		return api.Forecast{}, fmt.Errorf("service: forecast: %w", err)
	}
	return f, nil
}

// AnalyzeMedia прогоняет загруженный файл через анализ кадра
func (s *intelService) AnalyzeMedia(ctx context.Context, zone, filename, contentType string, data []byte, notes string) (media.Result, error) {
	if zone == "" {
		return media.Result{}, fmt.Errorf("service: zone is required: %w", ErrInvalidInput)
	}
	res, err := s.analyzer.AnalyzeImage(ctx, zone, filename, contentType, data, notes)
	if err != nil {
		return res, fmt.Errorf("service: analyze media: %w", err)
	}
	s.trackIncident(res)
	return res, nil
}

func (s *intelService) CaptureFrame(ctx context.Context, zone string) (media.Result, error) {
	if zone == "" {
		return media.Result{}, fmt.Errorf("service: zone is required: %w", ErrInvalidInput)
	}
	res, err := s.analyzer.Capture(ctx, zone)
	if err != nil {
		return res, fmt.Errorf("service: capture frame: %w", err)
	}
	s.trackIncident(res)
	return res, nil
}

// trackIncident кладет инцидент, созданный анализом, в кеш без ожидания опроса
func (s *intelService) trackIncident(res media.Result) {
	if res.Analysis == nil || res.Analysis.Incident == nil {
		return
	}
	inc := s.incidents.Track(*res.Analysis.Incident)
	s.logger.WithFields(logrus.Fields{
		"service":     "intel",
		"zone":        res.Zone,
		"incident_id": inc.ID,
	}).Info("Incident auto-created from media analysis")
}

func (s *intelService) MediaStatus() MediaStatus {
	out := MediaStatus{Status: s.analyzer.Status()}
	if last, ok := s.analyzer.Last(); ok {
		out.Last = &last
	}
	return out
}
