package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/config"
	"github.com/shenikar/drishti/internal/dispatch"
	"github.com/shenikar/drishti/internal/handler/http/v1/mocks"
	"github.com/shenikar/drishti/internal/media"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/service"
	"github.com/shenikar/drishti/internal/session"
	"github.com/shenikar/drishti/internal/syncer"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	auth      *mocks.MockAuthService
	incidents *mocks.MockIncidentService
	ops       *mocks.MockOperationsService
	alerts    *mocks.MockAlertService
	intel     *mocks.MockIntelService
}

var (
	adminCreds     = models.Credentials{Token: "tok", UserID: "admin", AccessCode: models.AdminAccessCode}
	responderCreds = models.Credentials{Token: "tok", UserID: "unit-7", AccessCode: 1}
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testServices, *gin.Engine) {
	ctrl := gomock.NewController(t)
	svc := testServices{
		auth:      mocks.NewMockAuthService(ctrl),
		incidents: mocks.NewMockIncidentService(ctrl),
		ops:       mocks.NewMockOperationsService(ctrl),
		alerts:    mocks.NewMockAlertService(ctrl),
		intel:     mocks.NewMockIntelService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{CameraZone: "Main Stage"}

	handler := NewHandler(svc.auth, svc.incidents, svc.ops, svc.alerts, svc.intel, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, svc, router
}

// withSession - мидлварь найдет активную сессию с указанными данными
func withSession(svc testServices, creds models.Credentials) {
	svc.auth.EXPECT().Current(gomock.Any()).Return(creds, nil)
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestLogin_Success(t *testing.T) {
	_, svc, router := newTestHandler(t)

	// Ожидания
	svc.auth.EXPECT().Login(gomock.Any(), "admin", "secret").Return(adminCreds, nil)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/login", jsonBody(t, LoginRequest{UserID: "admin", Password: "secret"}))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.UserID)
	assert.True(t, resp.IsAdmin)
	assert.Equal(t, models.RoleAdmin, resp.Role)
	assert.NotContains(t, w.Body.String(), "tok")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.auth.EXPECT().Login(gomock.Any(), "admin", "wrong").Return(models.Credentials{}, api.ErrInvalidCredentials)

	w := makeRequest(router, http.MethodPost, "/api/v1/login", jsonBody(t, LoginRequest{UserID: "admin", Password: "wrong"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, api.ErrInvalidCredentials.Error(), resp.Error)
	assert.Empty(t, resp.Redirect)
}

func TestLogin_ValidationError(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/login", jsonBody(t, map[string]string{"userid": "admin"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionMiddleware_NoSession(t *testing.T) {
	_, svc, router := newTestHandler(t)

	// Ожидания
	svc.auth.EXPECT().Current(gomock.Any()).Return(models.Credentials{}, session.ErrNoSession)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil)

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Unauthorized", resp.Error)
	assert.Equal(t, "/login", resp.Redirect)
}

func TestSessionMiddleware_StoreFailure(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.auth.EXPECT().Current(gomock.Any()).Return(models.Credentials{}, errors.New("redis down"))

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAdminOnly_ResponderForbidden(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, responderCreds)

	w := makeRequest(router, http.MethodGet, "/api/v1/zones", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden", decodeError(t, w).Error)
}

func TestAdminOnly_ResponderSeesIncidents(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, responderCreds)
	svc.incidents.EXPECT().ListIncidents(syncer.IncidentQuery{}).
		Return(syncer.State[models.Incident]{Data: []models.Incident{{ID: "inc-1"}}})

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "inc-1")
}

func TestCurrentSession(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, responderCreds)

	w := makeRequest(router, http.MethodGet, "/api/v1/session", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unit-7", resp.UserID)
	assert.False(t, resp.IsAdmin)
	assert.Equal(t, models.RoleResponder, resp.Role)
}

func TestLogout(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/logout", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListIncidents_Filters(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.incidents.EXPECT().ListIncidents(syncer.IncidentQuery{
		Status:   models.IncidentStatusActive,
		Type:     models.IncidentTypeMedical,
		Zone:     "Main Stage",
		Priority: models.PriorityHigh,
	}).Return(syncer.State[models.Incident]{Data: []models.Incident{}})

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?status=Active&type=MEDICAL&zone=Main%20Stage&priority=high", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_InvalidPriority(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?priority=urgent", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportIncident_Created(t *testing.T) {
	_, svc, router := newTestHandler(t)

	// Подготовка
	lat, lng := 12.9716, 77.5946
	sagaID := uuid.New()
	incident := &models.Incident{
		ID:     "inc-42",
		Type:   models.IncidentTypeMedical,
		Status: models.IncidentStatusActive,
		Zone:   "Main Stage",
		AssignedResponder: &models.ResponderSnapshot{
			ID:   "resp-1",
			Name: "John Smith",
			ETA:  "2 min",
		},
	}
	outcome := dispatch.Outcome{
		Level:           dispatch.LevelSuccess,
		Message:         "Incident reported",
		DispatchMessage: "Dispatched John Smith (2 min)",
		Incident:        incident,
		Saga:            &models.DispatchSaga{ID: sagaID, State: models.DispatchDispatched},
	}

	// Ожидания
	withSession(svc, responderCreds)
	svc.incidents.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, form dispatch.ReportForm) (dispatch.Outcome, error) {
			assert.Equal(t, "unit-7", form.ReportedBy)
			assert.Equal(t, "Main Stage", form.Zone)
			require.NotNil(t, form.Lat)
			assert.Equal(t, lat, *form.Lat)
			return outcome, nil
		})

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/report", jsonBody(t, ReportIncidentRequest{
		Zone:   "Main Stage",
		Type:   "Medical",
		Status: "Active",
		Lat:    &lat,
		Lng:    &lng,
	}))

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Level)
	assert.Equal(t, sagaID.String(), resp.SagaID)
	assert.Equal(t, models.DispatchDispatched, resp.DispatchState)
	assert.Contains(t, w.Body.String(), "John Smith")
}

func TestReportIncident_MissingLocation(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/report", jsonBody(t, map[string]string{
		"zone": "Main Stage", "type": "fire", "status": "active",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportIncident_BackendError(t *testing.T) {
	_, svc, router := newTestHandler(t)
	lat, lng := 1.0, 2.0

	withSession(svc, adminCreds)
	svc.incidents.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).
		Return(dispatch.Outcome{}, fmt.Errorf("dispatch: create incident: %w", &client.StatusError{Code: 500, Status: "500 Internal Server Error"}))

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/report", jsonBody(t, ReportIncidentRequest{
		Zone: "Gate A", Type: "fire", Status: "active", Lat: &lat, Lng: &lng,
	}))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.incidents.EXPECT().GetIncident(gomock.Any(), "missing").
		Return(service.IncidentDetail{}, &client.StatusError{Code: http.StatusNotFound, Status: "404 Not Found"})

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateIncidentStatus_Conflict(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.incidents.EXPECT().UpdateStatus(gomock.Any(), "inc-1", "active").
		Return(models.Incident{}, fmt.Errorf("%w: resolved -> active", syncer.ErrInvalidTransition))

	w := makeRequest(router, http.MethodPatch, "/api/v1/incidents/inc-1/status", jsonBody(t, UpdateStatusRequest{Status: "active"}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddNote_UsesSessionAuthor(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, responderCreds)
	svc.incidents.EXPECT().AddNote(gomock.Any(), "inc-1", "Crowd cleared", "unit-7").
		Return(models.IncidentNote{ID: "n-1", Text: "Crowd cleared"}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/inc-1/notes", jsonBody(t, AddNoteRequest{Text: "Crowd cleared"}))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAssignResponder_Unavailable(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.incidents.EXPECT().AssignResponder(gomock.Any(), "inc-1", "resp-2", "").
		Return(models.Responder{}, dispatch.ErrResponderUnavailable)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/inc-1/assign", jsonBody(t, AssignResponderRequest{ResponderID: "resp-2"}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteIncident_AdminOnly(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, responderCreds)

	w := makeRequest(router, http.MethodDelete, "/api/v1/incidents/inc-1", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteIncident_Success(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.incidents.EXPECT().DeleteIncident(gomock.Any(), "inc-1").Return(nil)

	w := makeRequest(router, http.MethodDelete, "/api/v1/incidents/inc-1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetDispatch_InvalidID(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)

	w := makeRequest(router, http.MethodGet, "/api/v1/dispatch/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRetryDispatch_AlreadyDispatched(t *testing.T) {
	_, svc, router := newTestHandler(t)
	id := uuid.New()

	withSession(svc, adminCreds)
	svc.incidents.EXPECT().RetryDispatch(gomock.Any(), id).Return(dispatch.Outcome{}, dispatch.ErrAlreadyDispatched)

	w := makeRequest(router, http.MethodPost, "/api/v1/dispatch/"+id.String()+"/retry", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPendingDispatches_Limit(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.incidents.EXPECT().PendingDispatches(gomock.Any(), 5).Return([]*models.DispatchSaga{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/dispatch?limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestUpdateZoneOccupancy(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.ops.EXPECT().UpdateZoneOccupancy(gomock.Any(), "z-1", 1100).
		Return(models.Zone{ID: "z-1", Status: models.ZoneStatusCritical}, nil)

	w := makeRequest(router, http.MethodPut, "/api/v1/zones/z-1/occupancy", jsonBody(t, map[string]int{"currentOccupancy": 1100}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"critical"`)
}

func TestUpdateZoneOccupancy_Negative(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)

	w := makeRequest(router, http.MethodPut, "/api/v1/zones/z-1/occupancy", jsonBody(t, map[string]int{"currentOccupancy": -1}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateResponder_Inconsistent(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.ops.EXPECT().UpdateResponder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.Responder) (models.Responder, error) {
			assert.Equal(t, "resp-1", r.ID)
			return models.Responder{}, fmt.Errorf("%w: assigned responder must be en route or on scene", service.ErrInvalidInput)
		})

	w := makeRequest(router, http.MethodPut, "/api/v1/responders/resp-1", jsonBody(t, map[string]string{"name": "John Smith", "status": "available"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendAlert_UsesSessionUser(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.alerts.EXPECT().SendAlert(gomock.Any(), gomock.Any(), "admin").
		DoAndReturn(func(_ context.Context, d service.AlertDraft, _ string) (service.AlertResult, error) {
			assert.Equal(t, "all", d.Target)
			assert.Equal(t, models.AlertSeverity("critical"), d.Severity)
			return service.AlertResult{Alert: models.Alert{ID: "a-1", Target: "all"}, Queued: true}, nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts", jsonBody(t, SendAlertRequest{
		AlertType: "evacuation",
		Target:    "all",
		Message:   "Move to exits",
		Severity:  "critical",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"queued":true`)
}

func TestSendAlert_InvalidSeverity(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)

	w := makeRequest(router, http.MethodPost, "/api/v1/alerts", jsonBody(t, SendAlertRequest{
		AlertType: "evacuation", Target: "all", Severity: "panic",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAISummary_AgentUnavailable(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.intel.EXPECT().Summary(gomock.Any(), "z-1").Return(api.Summary{}, api.ErrEmptyAgentReply)

	w := makeRequest(router, http.MethodGet, "/api/v1/ai/summary?zone=z-1", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAIChat(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.intel.EXPECT().Chat(gomock.Any(), "How crowded is Gate A?", "s-1").Return("Gate A is at 64%", nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/ai/chat", jsonBody(t, ChatRequest{Message: "How crowded is Gate A?", SessionID: "s-1"}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Gate A is at 64%", resp.Reply)
}

func TestAIForecast_DefaultHorizon(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.intel.EXPECT().Forecast(gomock.Any(), "z-1", 30).Return(api.Forecast{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/ai/forecast/z-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyzeMedia_Upload(t *testing.T) {
	_, svc, router := newTestHandler(t)

	// Подготовка
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("zone", "Gate A"))
	require.NoError(t, mw.WriteField("notes", "north side"))
	fw, err := mw.CreateFormFile("file", "gate.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	// Ожидания
	withSession(svc, adminCreds)
	svc.intel.EXPECT().
		AnalyzeMedia(gomock.Any(), "Gate A", "gate.jpg", gomock.Any(), []byte{0xFF, 0xD8, 0xFF, 0xE0}, "north side").
		Return(media.Result{Zone: "Gate A", Status: media.StatusComplete, At: time.Now()}, nil)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/media/analyze", &buf, map[string]string{"Content-Type": mw.FormDataContentType()})

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gate A")
}

func TestAnalyzeMedia_MissingFile(t *testing.T) {
	_, svc, router := newTestHandler(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("zone", "Gate A"))
	require.NoError(t, mw.Close())

	withSession(svc, adminCreds)

	w := makeRequest(router, http.MethodPost, "/api/v1/media/analyze", &buf, map[string]string{"Content-Type": mw.FormDataContentType()})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCaptureFrame_DefaultZone(t *testing.T) {
	_, svc, router := newTestHandler(t)

	withSession(svc, adminCreds)
	svc.intel.EXPECT().CaptureFrame(gomock.Any(), "Main Stage").Return(media.Result{}, media.ErrNoCamera)

	w := makeRequest(router, http.MethodPost, "/api/v1/media/capture", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthCheck_Public(t *testing.T) {
	_, svc, router := newTestHandler(t)

	svc.ops.EXPECT().Health(gomock.Any()).Return(api.Health{Status: "healthy"}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("service: %w", service.ErrInvalidInput), http.StatusBadRequest},
		{"invalid report", dispatch.ErrInvalidReport, http.StatusBadRequest},
		{"signed out", client.ErrSignedOut, http.StatusUnauthorized},
		{"upstream unauthorized", client.ErrUnauthorized, http.StatusUnauthorized},
		{"cache miss", syncer.ErrNotFound, http.StatusNotFound},
		{"saga missing", dispatch.ErrSagaNotFound, http.StatusNotFound},
		{"upstream 404", &client.StatusError{Code: 404}, http.StatusNotFound},
		{"upstream 500", &client.StatusError{Code: 500}, http.StatusBadGateway},
		{"timeout", fmt.Errorf("wrap: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"no camera", media.ErrNoCamera, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorStatus(tt.err))
		})
	}
}
