package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/events"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/service/mocks"
	"github.com/shenikar/drishti/internal/webhook"
	webhook_mocks "github.com/shenikar/drishti/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type alertDeps struct {
	caches
	alerts  *mocks.MockAlertsAPI
	agent   *mocks.MockAgentAPI
	webhook *webhook_mocks.MockWebhookPublisher
	events  *mocks.MockEventPublisher
}

func newTestAlertService(t *testing.T, zones []models.Zone) (*alertService, alertDeps) {
	ctrl := gomock.NewController(t)
	deps := alertDeps{
		caches:  newTestCaches(t, ctrl, nil, nil, zones),
		alerts:  mocks.NewMockAlertsAPI(ctrl),
		agent:   mocks.NewMockAgentAPI(ctrl),
		webhook: webhook_mocks.NewMockWebhookPublisher(ctrl),
		events:  mocks.NewMockEventPublisher(ctrl),
	}
	svc := NewAlertService(deps.alerts, deps.agent, deps.zones, deps.webhook, deps.events, newTestLogger()).(*alertService)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC) }
	return svc, deps
}

func TestSendAlert_GeneratesMessageAndQueuesWebhook(t *testing.T) {
	// Подготовка
	zones := []models.Zone{{ID: "z1", Name: "Zone A"}, {ID: "z2", Name: "Zone B"}}
	svc, deps := newTestAlertService(t, zones)
	ctx := context.Background()
	draft := AlertDraft{AlertType: "evacuation", Target: "Zone A", Severity: models.AlertSeverityCritical}

	// Ожидания
	deps.agent.EXPECT().GenerateAlertMessage(ctx, api.AlertMessageRequest{
		AlertType: "evacuation", Target: "Zone A", Language: "en", Severity: models.AlertSeverityCritical,
	}).Return("Please move calmly to Gate 3.", nil).Times(1)
	deps.alerts.EXPECT().Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.Alert) (models.Alert, error) {
			assert.Equal(t, "Please move calmly to Gate 3.", a.Message)
			assert.NotEmpty(t, a.ID)
			return a, nil
		}).Times(1)
	deps.webhook.EXPECT().Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, d webhook.AlertDelivery) error {
			assert.Equal(t, "op1", d.SentBy)
			require.Len(t, d.Zones, 1)
			assert.Equal(t, "z1", d.Zones[0].ID)
			return nil
		}).Times(1)
	deps.events.EXPECT().Publish(ctx, events.AlertSent, "Zone A", gomock.Any()).Return(nil).Times(1)

	// Действие
	res, err := svc.SendAlert(ctx, draft, "op1")

	// Проверки
	require.NoError(t, err)
	assert.True(t, res.Generated)
	assert.True(t, res.Queued)
	assert.Equal(t, "en", res.Alert.Language)
}

func TestSendAlert_AudioFailureIsNotFatal(t *testing.T) {
	svc, deps := newTestAlertService(t, nil)
	ctx := context.Background()

	deps.agent.EXPECT().GenerateAlertMessage(gomock.Any(), gomock.Any()).Times(0)
	deps.agent.EXPECT().TextToSpeech(ctx, api.SpeechRequest{Text: "Gates closing", Language: "hi"}).
		Return(api.Speech{}, errors.New("tts down")).Times(1)
	deps.alerts.EXPECT().Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.Alert) (models.Alert, error) { return a, nil }).Times(1)
	deps.webhook.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)
	deps.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	res, err := svc.SendAlert(ctx, AlertDraft{
		Target: models.AlertTargetAll, Language: "hi", Message: "Gates closing", WithAudio: true,
	}, "op1")

	require.NoError(t, err)
	assert.Equal(t, "tts down", res.AudioError)
	assert.False(t, res.Queued)
	assert.Equal(t, models.AlertSeverityInfo, res.Alert.Severity)
}

func TestSendAlert_InlineAudioContent(t *testing.T) {
	svc, deps := newTestAlertService(t, nil)

	deps.agent.EXPECT().TextToSpeech(gomock.Any(), gomock.Any()).
		Return(api.Speech{AudioContent: "QUJD"}, nil).Times(1)
	deps.alerts.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a models.Alert) (models.Alert, error) { return a, nil }).Times(1)
	deps.webhook.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	res, err := svc.SendAlert(context.Background(), AlertDraft{Target: "all", Message: "x", WithAudio: true}, "op1")

	require.NoError(t, err)
	assert.Equal(t, "data:audio/mpeg;base64,QUJD", res.Alert.AudioURL)
}

func TestSendAlert_UnknownTarget(t *testing.T) {
	svc, deps := newTestAlertService(t, []models.Zone{{ID: "z1", Name: "Zone A"}})

	deps.alerts.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SendAlert(context.Background(), AlertDraft{Target: "Zone Q", Message: "hi"}, "op1")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSendAlert_SendFailureSkipsWebhook(t *testing.T) {
	svc, deps := newTestAlertService(t, nil)

	deps.alerts.EXPECT().Send(gomock.Any(), gomock.Any()).Return(models.Alert{}, errors.New("Bad Gateway")).Times(1)
	deps.webhook.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SendAlert(context.Background(), AlertDraft{Target: "all", Message: "hi"}, "op1")

	assert.Error(t, err)
}
