package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/models"
)

var ErrEmptyAgentReply = errors.New("agent returned an empty reply")

type ChatRequest struct {
	Message   string         `json:"message"`
	SessionID string         `json:"session_id,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
}

type SummaryRequest struct {
	Scope  string `json:"scope,omitempty"`
	ZoneID string `json:"zone_id,omitempty"`
}

type Summary struct {
	Text        string    `json:"summary"`
	GeneratedAt time.Time `json:"generated_at"`
}

type ResourceRecommendation struct {
	Zone          string `json:"zone"`
	ResponderType string `json:"responderType"`
	Count         int    `json:"count"`
	Reason        string `json:"reason"`
}

type CommandAction struct {
	Action    string `json:"action"`
	Target    string `json:"target"`
	Priority  string `json:"priority"`
	Rationale string `json:"rationale,omitempty"`
}

type AlertMessageRequest struct {
	AlertType string               `json:"alertType"`
	Target    string               `json:"target"`
	Language  string               `json:"language"`
	Severity  models.AlertSeverity `json:"severity"`
	Context   string               `json:"context,omitempty"`
}

type SpeechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Speech holds either a hosted audio URL or base64 audio content.
type Speech struct {
	AudioURL     string `json:"audioUrl,omitempty"`
	AudioContent string `json:"audioContent,omitempty"`
}

type ForecastRequest struct {
	ZoneID         string `json:"zoneId"`
	HorizonMinutes int    `json:"horizonMinutes"`
}

type Forecast struct {
	ZoneID             string  `json:"zoneId"`
	HorizonMinutes     int     `json:"horizonMinutes"`
	PredictedOccupancy int     `json:"predictedOccupancy"`
	PredictedDensity   float64 `json:"predictedDensity"`
	Risk               string  `json:"risk"`
	Confidence         float64 `json:"confidence"`
}

// Agent talks to the AI agent service. Replies are structured JSON or markdown
// text; text replies are accepted under several field names.
type Agent struct {
	c *client.Client
}

func NewAgent(c *client.Client) *Agent {
	return &Agent{c: c}
}

// Chat runs one free-form agent query and returns its markdown answer.
func (a *Agent) Chat(ctx context.Context, req ChatRequest) (string, error) {
	var raw json.RawMessage
	if err := a.c.Post(ctx, "/chat", req, &raw); err != nil {
		return "", err
	}
	text := replyText(raw, "response", "reply", "answer", "text", "message")
	if text == "" {
		return "", ErrEmptyAgentReply
	}
	return text, nil
}

// Summary asks for the situation summary. An empty or failed reply is retried
// exactly once before the error is returned.
func (a *Agent) Summary(ctx context.Context, req SummaryRequest) (Summary, error) {
	s, err := a.summaryOnce(ctx, req)
	if err == nil {
		return s, nil
	}
	if errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrSignedOut) || ctx.Err() != nil {
		return Summary{}, err
	}
	return a.summaryOnce(ctx, req)
}

func (a *Agent) summaryOnce(ctx context.Context, req SummaryRequest) (Summary, error) {
	var raw json.RawMessage
	if err := a.c.Post(ctx, "/ai_summary", req, &raw); err != nil {
		return Summary{}, err
	}
	text := replyText(raw, "summary", "response", "text")
	if text == "" {
		return Summary{}, ErrEmptyAgentReply
	}
	out := Summary{Text: text}
	var meta struct {
		GeneratedAt time.Time `json:"generated_at"`
	}
	if json.Unmarshal(raw, &meta) == nil {
		out.GeneratedAt = meta.GeneratedAt
	}
	return out, nil
}

func (a *Agent) ResourceRecommendations(ctx context.Context, zoneID string) ([]ResourceRecommendation, error) {
	var raw json.RawMessage
	if err := a.c.Post(ctx, "/ai_resource_recommendations", map[string]string{"zone_id": zoneID}, &raw); err != nil {
		return nil, err
	}
	return decodeList[ResourceRecommendation](raw, "recommendations")
}

func (a *Agent) CommandActions(ctx context.Context, incidentID string) ([]CommandAction, error) {
	var raw json.RawMessage
	if err := a.c.Post(ctx, "/ai_command_actions", map[string]string{"incident_id": incidentID}, &raw); err != nil {
		return nil, err
	}
	return decodeList[CommandAction](raw, "actions")
}

func (a *Agent) GenerateAlertMessage(ctx context.Context, req AlertMessageRequest) (string, error) {
	var raw json.RawMessage
	if err := a.c.Post(ctx, "/generate_alert_message", req, &raw); err != nil {
		return "", err
	}
	text := replyText(raw, "message", "alert", "text")
	if text == "" {
		return "", ErrEmptyAgentReply
	}
	return text, nil
}

func (a *Agent) TextToSpeech(ctx context.Context, req SpeechRequest) (Speech, error) {
	var out Speech
	if err := a.c.Post(ctx, "/text_to_speech", req, &out); err != nil {
		return Speech{}, err
	}
	if out.AudioURL == "" && out.AudioContent == "" {
		return Speech{}, ErrEmptyAgentReply
	}
	return out, nil
}

// Predict returns the crowd forecast for a zone.
func (a *Agent) Predict(ctx context.Context, req ForecastRequest) (Forecast, error) {
	var out Forecast
	if err := a.c.Post(ctx, "/predict", req, &out); err != nil {
		return Forecast{}, err
	}
	return out, nil
}

// replyText pulls text out of a reply that is either a JSON string or an
// object carrying the text under one of keys.
func replyText(raw json.RawMessage, keys ...string) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if json.Unmarshal(trimmed, &s) == nil {
			return strings.TrimSpace(s)
		}
		return ""
	}
	var obj map[string]json.RawMessage
	if json.Unmarshal(trimmed, &obj) != nil {
		return ""
	}
	for _, k := range keys {
		v, ok := obj[k]
		if !ok {
			continue
		}
		var s string
		if json.Unmarshal(v, &s) == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
