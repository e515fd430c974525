package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/media"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type intelDeps struct {
	caches
	agent    *mocks.MockAgentAPI
	analyzer *mocks.MockMediaAnalyzer
}

func newTestIntelService(t *testing.T) (IntelService, intelDeps) {
	ctrl := gomock.NewController(t)
	deps := intelDeps{
		caches:   newTestCaches(t, ctrl, nil, nil, nil),
		agent:    mocks.NewMockAgentAPI(ctrl),
		analyzer: mocks.NewMockMediaAnalyzer(ctrl),
	}
	return NewIntelService(deps.agent, deps.analyzer, deps.incidents, newTestLogger()), deps
}

func TestAnalyzeMedia_TracksAutoCreatedIncident(t *testing.T) {
	// Подготовка
	svc, deps := newTestIntelService(t)
	ctx := context.Background()
	res := media.Result{
		Zone:   "Zone A",
		Status: media.StatusComplete,
		Analysis: &models.MediaAnalysis{
			PersonCount:  120,
			FireDetected: true,
			Incident:     &models.Incident{ID: "auto-1", Type: "Fire", Status: "Active", Zone: "Zone A"},
		},
	}

	// Ожидания
	deps.analyzer.EXPECT().
		AnalyzeImage(ctx, "Zone A", "gate.jpg", "image/jpeg", []byte{1, 2}, "").
		Return(res, nil).Times(1)

	// Действие
	got, err := svc.AnalyzeMedia(ctx, "Zone A", "gate.jpg", "image/jpeg", []byte{1, 2}, "")

	// Проверки
	require.NoError(t, err)
	assert.True(t, got.Analysis.Hazardous())
	inc, ok := deps.incidents.Find("auto-1")
	require.True(t, ok)
	assert.Equal(t, models.IncidentTypeFire, inc.Type)
}

func TestAnalyzeMedia_RequiresZone(t *testing.T) {
	svc, deps := newTestIntelService(t)

	deps.analyzer.EXPECT().AnalyzeImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.AnalyzeMedia(context.Background(), "", "x.jpg", "image/jpeg", []byte{1}, "")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCaptureFrame_ErrorKeepsResult(t *testing.T) {
	svc, deps := newTestIntelService(t)
	failure := media.Result{Zone: "Zone A", Status: "Error: no camera configured", Error: "no camera configured"}

	deps.analyzer.EXPECT().Capture(gomock.Any(), "Zone A").Return(failure, media.ErrNoCamera).Times(1)

	res, err := svc.CaptureFrame(context.Background(), "Zone A")

	assert.ErrorIs(t, err, media.ErrNoCamera)
	assert.Equal(t, failure.Status, res.Status)
}

func TestSummary_ZoneScope(t *testing.T) {
	svc, deps := newTestIntelService(t)

	deps.agent.EXPECT().Summary(gomock.Any(), api.SummaryRequest{Scope: "zone", ZoneID: "z1"}).
		Return(api.Summary{Text: "All calm"}, nil).Times(1)

	sum, err := svc.Summary(context.Background(), "z1")

	require.NoError(t, err)
	assert.Equal(t, "All calm", sum.Text)
}

func TestSummary_Failure(t *testing.T) {
	svc, deps := newTestIntelService(t)

	deps.agent.EXPECT().Summary(gomock.Any(), api.SummaryRequest{Scope: "venue"}).
		Return(api.Summary{}, api.ErrEmptyAgentReply).Times(1)

	_, err := svc.Summary(context.Background(), "")

	assert.ErrorIs(t, err, api.ErrEmptyAgentReply)
}

func TestChat_Validation(t *testing.T) {
	svc, deps := newTestIntelService(t)

	deps.agent.EXPECT().Chat(gomock.Any(), api.ChatRequest{Message: "status of gate 3?"}).
		Return("Gate 3 is clear.", nil).Times(1)

	_, err := svc.Chat(context.Background(), "   ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	reply, err := svc.Chat(context.Background(), " status of gate 3? ", "")
	require.NoError(t, err)
	assert.Equal(t, "Gate 3 is clear.", reply)
}

func TestMediaStatus_IncludesLastResult(t *testing.T) {
	svc, deps := newTestIntelService(t)

	deps.analyzer.EXPECT().Status().Return(media.StatusAnalyzing).Times(1)
	deps.analyzer.EXPECT().Last().Return(media.Result{Zone: "Zone B"}, true).Times(1)

	st := svc.MediaStatus()

	assert.Equal(t, media.StatusAnalyzing, st.Status)
	require.NotNil(t, st.Last)
	assert.Equal(t, "Zone B", st.Last.Zone)
}

func TestForecast_DefaultsHorizon(t *testing.T) {
	svc, deps := newTestIntelService(t)

	deps.agent.EXPECT().Predict(gomock.Any(), api.ForecastRequest{ZoneID: "z1", HorizonMinutes: 30}).
		Return(api.Forecast{}, errors.New("model offline")).Times(1)

	_, err := svc.Forecast(context.Background(), "z1", 0)

	assert.Error(t, err)
}
