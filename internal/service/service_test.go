package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/syncer"
	syncer_mocks "github.com/shenikar/drishti/internal/syncer/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

// caches - синхронизаторы поверх моков API, заполненные начальными данными
type caches struct {
	incidents     *syncer.Incidents
	responders    *syncer.Responders
	zones         *syncer.Zones
	incidentsAPI  *syncer_mocks.MockIncidentsAPI
	respondersAPI *syncer_mocks.MockRespondersAPI
	zonesAPI      *syncer_mocks.MockZonesAPI
}

func newTestCaches(t *testing.T, ctrl *gomock.Controller, incidents []models.Incident, responders []models.Responder, zones []models.Zone) caches {
	t.Helper()
	logger := newTestLogger()
	c := caches{
		incidentsAPI:  syncer_mocks.NewMockIncidentsAPI(ctrl),
		respondersAPI: syncer_mocks.NewMockRespondersAPI(ctrl),
		zonesAPI:      syncer_mocks.NewMockZonesAPI(ctrl),
	}
	c.incidents = syncer.NewIncidents(c.incidentsAPI, api.IncidentFilter{}, 0, logger)
	c.responders = syncer.NewResponders(c.respondersAPI, 0, logger)
	c.zones = syncer.NewZones(c.zonesAPI, 0, logger)

	ctx := context.Background()
	c.incidentsAPI.EXPECT().List(gomock.Any(), api.IncidentFilter{}).Return(incidents, nil).Times(1)
	c.respondersAPI.EXPECT().List(gomock.Any()).Return(responders, nil).Times(1)
	c.zonesAPI.EXPECT().List(gomock.Any()).Return(zones, nil).Times(1)
	require.NoError(t, c.incidents.Refresh(ctx))
	require.NoError(t, c.responders.Refresh(ctx))
	require.NoError(t, c.zones.Refresh(ctx))
	return c
}
