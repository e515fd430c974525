package syncer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/syncer/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func newTestResponders(t *testing.T) (*Responders, *mocks.MockRespondersAPI) {
	ctrl := gomock.NewController(t)
	apiMock := mocks.NewMockRespondersAPI(ctrl)
	s := NewResponders(apiMock, 0, newTestLogger())
	s.now = func() time.Time { return fixedNow }
	return s, apiMock
}

func newTestZones(t *testing.T) (*Zones, *mocks.MockZonesAPI) {
	ctrl := gomock.NewController(t)
	apiMock := mocks.NewMockZonesAPI(ctrl)
	s := NewZones(apiMock, 0, newTestLogger())
	s.now = func() time.Time { return fixedNow }
	return s, apiMock
}

func newTestIncidents(t *testing.T) (*Incidents, *mocks.MockIncidentsAPI) {
	ctrl := gomock.NewController(t)
	apiMock := mocks.NewMockIncidentsAPI(ctrl)
	s := NewIncidents(apiMock, api.IncidentFilter{}, 0, newTestLogger())
	s.now = func() time.Time { return fixedNow }
	return s, apiMock
}

func TestIncidents_RefreshNormalizesRecords(t *testing.T) {
	// Подготовка
	s, apiMock := newTestIncidents(t)
	ctx := context.Background()

	apiMock.EXPECT().
		List(ctx, api.IncidentFilter{}).
		Return([]models.Incident{
			{ID: "i1", Type: "Fire", Status: "Ongoing", Severity: 4, Priority: "HIGH"},
			{ID: "i2", Type: "alien", Status: "on_fire", Severity: 9},
		}, nil).
		Times(1)

	// Действие
	err := s.Refresh(ctx)

	// Проверки
	require.NoError(t, err)
	data := s.Data()
	require.Len(t, data, 2)
	assert.Equal(t, models.IncidentStatusOngoing, data[0].Status)
	assert.Equal(t, models.IncidentTypeFire, data[0].Type)
	assert.Equal(t, models.PriorityHigh, data[0].Priority)
	assert.Equal(t, 4, data[0].Severity)

	assert.Equal(t, models.IncidentStatusUnknown, data[1].Status)
	assert.Equal(t, "neutral", data[1].Status.Tone())
	assert.Equal(t, models.IncidentTypeOther, data[1].Type)
	assert.Zero(t, data[1].Severity)
}

func TestIncidents_FailedPollKeepsList(t *testing.T) {
	// Подготовка
	s, apiMock := newTestIncidents(t)
	ctx := context.Background()

	gomock.InOrder(
		apiMock.EXPECT().List(ctx, api.IncidentFilter{}).Return([]models.Incident{{ID: "i1", Status: "active", Severity: 2}}, nil),
		apiMock.EXPECT().List(ctx, api.IncidentFilter{}).Return(nil, errors.New("502 Bad Gateway")),
	)
	require.NoError(t, s.Refresh(ctx))

	// Действие
	err := s.Refresh(ctx)

	// Проверки
	require.Error(t, err)
	st := s.State()
	require.Len(t, st.Data, 1)
	assert.Equal(t, "i1", st.Data[0].ID)
	assert.Equal(t, "502 Bad Gateway", st.Error)
}

func TestIncidents_SetStatusResolvedStampsTime(t *testing.T) {
	s, apiMock := newTestIncidents(t)
	ctx := context.Background()
	s.Track(models.Incident{ID: "i1", Status: models.IncidentStatusOngoing, Severity: 3})

	resolved := models.IncidentStatusResolved
	apiMock.EXPECT().
		Update(ctx, "i1", api.IncidentUpdate{Status: &resolved, ResolvedAt: &fixedNow}).
		Return(models.Incident{ID: "i1", Status: resolved, Severity: 3, ResolvedAt: &fixedNow}, nil)

	inc, err := s.SetStatus(ctx, "i1", resolved)

	require.NoError(t, err)
	assert.Equal(t, resolved, inc.Status)
	cached, ok := s.Find("i1")
	require.True(t, ok)
	assert.Equal(t, resolved, cached.Status)
}

func TestIncidents_SetStatusRejectsReopeningResolved(t *testing.T) {
	s, _ := newTestIncidents(t)
	s.Track(models.Incident{ID: "i1", Status: models.IncidentStatusResolved, Severity: 1})

	_, err := s.SetStatus(context.Background(), "i1", models.IncidentStatusActive)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestIncidents_DeleteRemovesAfterConfirm(t *testing.T) {
	s, apiMock := newTestIncidents(t)
	ctx := context.Background()
	s.Track(models.Incident{ID: "i1", Status: models.IncidentStatusActive})
	s.Track(models.Incident{ID: "i2", Status: models.IncidentStatusActive})

	gomock.InOrder(
		apiMock.EXPECT().Delete(ctx, "i1").Return(errors.New("500 Internal Server Error")),
		apiMock.EXPECT().Delete(ctx, "i1").Return(nil),
	)

	require.Error(t, s.Delete(ctx, "i1"))
	assert.Len(t, s.Data(), 2)

	require.NoError(t, s.Delete(ctx, "i1"))
	require.Len(t, s.Data(), 1)
	assert.Equal(t, "i2", s.Data()[0].ID)
}

func TestIncidents_Selectors(t *testing.T) {
	s, _ := newTestIncidents(t)
	for _, inc := range []models.Incident{
		{ID: "1", Type: models.IncidentTypeFire, Status: models.IncidentStatusActive, Priority: models.PriorityCritical, Zone: "Zone A"},
		{ID: "2", Type: models.IncidentTypeFire, Status: models.IncidentStatusResolved, Priority: models.PriorityLow, Zone: "Zone B"},
		{ID: "3", Type: models.IncidentTypeMedical, Status: models.IncidentStatusOngoing, Priority: models.PriorityHigh, Zone: "Zone A",
			AssignedResponder: &models.ResponderSnapshot{ID: "r1"}},
		{ID: "4", Type: models.IncidentTypeCrowd, Status: models.IncidentStatusEscalated, Priority: models.PriorityCritical, Zone: "Zone C"},
	} {
		s.Track(inc)
	}

	assert.Len(t, s.ByZone("Zone A"), 2)
	assert.Len(t, s.ByStatus(models.IncidentStatusResolved), 1)
	assert.Len(t, s.Open(), 3)
	assert.Len(t, s.Filter(IncidentQuery{Type: models.IncidentTypeFire, Zone: "Zone A"}), 1)

	st := s.Stats()
	assert.Equal(t, 4, st.Total)
	assert.Equal(t, 3, st.Open)
	assert.Equal(t, 2, st.Critical)
	assert.Equal(t, 2, st.Unassigned)
	assert.Equal(t, 2, st.ByType[models.IncidentTypeFire])
	assert.Equal(t, 50, st.TypeShare[models.IncidentTypeFire])
	assert.Equal(t, 25, st.TypeShare[models.IncidentTypeMedical])
	assert.Equal(t, 2, st.ByPriority[models.PriorityCritical])
}

func TestResponders_AssignTwiceIsIdempotent(t *testing.T) {
	// Подготовка
	s, apiMock := newTestResponders(t)
	ctx := context.Background()
	s.Upsert(models.Responder{ID: "r1", Name: "John Smith", Status: models.ResponderAvailable})

	req := api.AssignRequest{ResponderID: "r1", IncidentID: "i1", ETA: "5 min"}
	apiMock.EXPECT().Assign(ctx, req).Return("5 min", nil).Times(2)

	// Действие
	first, err := s.AssignToIncident(ctx, "r1", "i1", "5 min")
	require.NoError(t, err)
	second, err := s.AssignToIncident(ctx, "r1", "i1", "5 min")
	require.NoError(t, err)

	// Проверки
	assert.Equal(t, first, second)
	cached, ok := s.Find("r1")
	require.True(t, ok)
	require.NotNil(t, cached.AssignedIncident)
	assert.Equal(t, "i1", *cached.AssignedIncident)
	assert.Equal(t, models.ResponderEnRoute, cached.Status)
	assert.Equal(t, "5 min", *cached.ETA)
	assert.Len(t, s.Data(), 1)
	assert.NoError(t, cached.Validate())
}

func TestResponders_AssignFailureLeavesRecord(t *testing.T) {
	s, apiMock := newTestResponders(t)
	ctx := context.Background()
	s.Upsert(models.Responder{ID: "r1", Status: models.ResponderAvailable})

	apiMock.EXPECT().Assign(ctx, gomock.Any()).Return("", errors.New("409 Conflict"))

	_, err := s.AssignToIncident(ctx, "r1", "i1", "")

	require.Error(t, err)
	cached, _ := s.Find("r1")
	assert.False(t, cached.Assigned())
	assert.Equal(t, models.ResponderAvailable, cached.Status)
}

func TestResponders_UnassignClearsIncidentAndETATogether(t *testing.T) {
	// Подготовка
	s, apiMock := newTestResponders(t)
	ctx := context.Background()
	s.Upsert(models.Responder{
		ID:               "r1",
		Status:           models.ResponderOnScene,
		AssignedIncident: strPtr("i1"),
		ETA:              strPtr("2 min"),
	})
	apiMock.EXPECT().Unassign(ctx, "r1").Return(nil)

	// Действие
	out, err := s.Unassign(ctx, "r1")

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, out.AssignedIncident)
	assert.Nil(t, out.ETA)
	assert.Equal(t, models.ResponderAvailable, out.Status)
	cached, _ := s.Find("r1")
	assert.Nil(t, cached.AssignedIncident)
	assert.Nil(t, cached.ETA)
}

func TestResponders_UpdatePosition(t *testing.T) {
	s, apiMock := newTestResponders(t)
	ctx := context.Background()
	s.Upsert(models.Responder{ID: "r1"})

	pos := models.Position{Lat: 12.97, Lng: 77.59, LastUpdate: fixedNow}
	apiMock.EXPECT().UpdatePosition(ctx, "r1", pos).Return(nil)

	out, err := s.UpdatePosition(ctx, "r1", 12.97, 77.59)

	require.NoError(t, err)
	assert.Equal(t, pos, out.Position)
}

func TestResponders_UpdatePositionNotCached(t *testing.T) {
	// Подготовка
	s, apiMock := newTestResponders(t)
	ctx := context.Background()
	pos := models.Position{Lat: 12.97, Lng: 77.59, LastUpdate: fixedNow}
	apiMock.EXPECT().UpdatePosition(ctx, "r9", pos).Return(nil)

	// Действие
	out, err := s.UpdatePosition(ctx, "r9", 12.97, 77.59)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "r9", out.ID)
	assert.Equal(t, pos, out.Position)
}

func TestResponders_UpdateRejectsInconsistentAssignment(t *testing.T) {
	s, _ := newTestResponders(t)

	_, err := s.Update(context.Background(), models.Responder{ID: "r1", Status: models.ResponderAvailable, AssignedIncident: strPtr("i1")})

	assert.ErrorIs(t, err, models.ErrAssignmentInconsistent)
}

func TestResponders_Stats(t *testing.T) {
	s, _ := newTestResponders(t)
	s.Upsert(models.Responder{ID: "r1", Type: models.ResponderTypeFire, Status: models.ResponderAvailable,
		Equipment: models.Equipment{BatteryLevel: 80, SignalStrength: 90}})
	s.Upsert(models.Responder{ID: "r2", Type: models.ResponderTypeMedical, Status: models.ResponderEnRoute,
		AssignedIncident: strPtr("i1"), Equipment: models.Equipment{BatteryLevel: 10, SignalStrength: 20}})
	s.Upsert(models.Responder{ID: "r3", Type: models.ResponderTypeMedical, Status: models.ResponderAvailable,
		Equipment: models.Equipment{BatteryLevel: 60, SignalStrength: 40}})

	st := s.Stats()

	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 2, st.Available)
	assert.Equal(t, 1, st.Assigned)
	assert.Equal(t, 2, st.ByType[models.ResponderTypeMedical])
	assert.InDelta(t, 50.0, st.AvgBattery, 0.001)
	assert.InDelta(t, 50.0, st.AvgSignal, 0.001)
	require.Len(t, st.LowBattery, 1)
	assert.Equal(t, "r2", st.LowBattery[0].ID)
	require.Len(t, st.PoorSignal, 1)
	assert.Equal(t, "r2", st.PoorSignal[0].ID)
	assert.Empty(t, st.InconsistentState)
	assert.Len(t, s.Available(), 2)
}

func TestZones_UpdateOccupancyDerivesCriticalTier(t *testing.T) {
	// Подготовка
	s, apiMock := newTestZones(t)
	ctx := context.Background()
	s.Upsert(models.Zone{
		ID:       "zone-a",
		Name:     "Zone A",
		Status:   models.ZoneStatusNormal,
		Capacity: models.Capacity{MaxOccupancy: intPtr(1200), CurrentOccupancy: intPtr(400), CrowdDensity: 33},
	})

	apiMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, z models.Zone) (models.Zone, error) {
			assert.Equal(t, 1100, *z.Capacity.CurrentOccupancy)
			assert.Equal(t, 92.0, z.Capacity.CrowdDensity)
			assert.Equal(t, models.ZoneStatusCritical, z.Status)
			return z, nil
		})

	// Действие
	z, err := s.UpdateOccupancy(ctx, "zone-a", 1100)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 92, z.DensityPercent())
	assert.Equal(t, models.ZoneStatusCritical, z.Status)
	assert.Equal(t, fixedNow, z.LastUpdate)
	cached, _ := s.Find("zone-a")
	assert.Equal(t, models.ZoneStatusCritical, cached.Status)
}

func TestZones_UpdateOccupancyRederivesServerEcho(t *testing.T) {
	s, apiMock := newTestZones(t)
	ctx := context.Background()
	s.Upsert(models.Zone{ID: "zone-b", Capacity: models.Capacity{MaxOccupancy: intPtr(1000)}})

	// сервер вернул документ со старым статусом
	apiMock.EXPECT().Update(ctx, gomock.Any()).
		Return(models.Zone{ID: "zone-b", Status: models.ZoneStatusNormal, Capacity: models.Capacity{MaxOccupancy: intPtr(1000)}}, nil)

	z, err := s.UpdateOccupancy(ctx, "zone-b", 750)

	require.NoError(t, err)
	assert.Equal(t, 75, z.DensityPercent())
	assert.Equal(t, models.ZoneStatusActive, z.Status)
}

func TestZones_UpdateOccupancyUnknownZone(t *testing.T) {
	s, _ := newTestZones(t)

	_, err := s.UpdateOccupancy(context.Background(), "nope", 10)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateOccupancy(context.Background(), "nope", -1)
	assert.ErrorIs(t, err, ErrNegativeOccupancy)
}

func TestZones_StatsUseDerivedTier(t *testing.T) {
	s, _ := newTestZones(t)
	s.Upsert(models.Zone{ID: "a", Name: "Zone A", Status: models.ZoneStatusNormal,
		Capacity: models.Capacity{MaxOccupancy: intPtr(1200), CurrentOccupancy: intPtr(1100)}})
	s.Upsert(models.Zone{ID: "b", Name: "Zone B", Status: models.ZoneStatusActive,
		Capacity: models.Capacity{CrowdDensity: 71}})

	st := s.Stats()

	assert.Equal(t, 2, st.Total)
	assert.Equal(t, 1, st.ByStatus[models.ZoneStatusCritical])
	assert.Equal(t, 1, st.ByStatus[models.ZoneStatusActive])
	require.Len(t, st.Critical, 1)
	assert.Equal(t, "a", st.Critical[0].ID)
	assert.Equal(t, 1100, st.TotalOccupancy)
	assert.Equal(t, 1200, st.TotalCapacity)
	assert.InDelta(t, 81.5, st.AvgDensity, 0.001)

	z, ok := s.ByName("Zone B")
	require.True(t, ok)
	assert.Equal(t, "b", z.ID)
}

func TestProjectAssignments(t *testing.T) {
	incidents := []models.Incident{
		{ID: "i1", AssignedResponder: &models.ResponderSnapshot{ID: "ghost", Name: "Stale"}},
		{ID: "i2"},
		{ID: "i3", AssignedResponder: &models.ResponderSnapshot{ID: "r2"}},
	}
	responders := []models.Responder{
		{ID: "r1", Name: "John Smith", Status: models.ResponderEnRoute, AssignedIncident: strPtr("i2"), ETA: strPtr("4 min")},
		{ID: "r2", Name: "Asha Rao", Status: models.ResponderAvailable},
		{ID: "r3", Name: "Second", Status: models.ResponderEnRoute, AssignedIncident: strPtr("i2")},
	}

	out := ProjectAssignments(incidents, responders)

	require.Len(t, out, 3)
	assert.Nil(t, out[0].AssignedResponder)
	require.NotNil(t, out[1].AssignedResponder)
	assert.Equal(t, "r1", out[1].AssignedResponder.ID)
	assert.Equal(t, "John Smith", out[1].AssignedResponder.Name)
	assert.Equal(t, "4 min", out[1].AssignedResponder.ETA)
	assert.Nil(t, out[2].AssignedResponder)
	// входной срез не меняется
	assert.Equal(t, "ghost", incidents[0].AssignedResponder.ID)
}
