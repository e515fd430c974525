package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/session"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPIClient(t *testing.T, mux *http.ServeMux) *client.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	sess := session.New(session.NewMemoryStore())
	require.NoError(t, sess.Login(context.Background(), models.Credentials{Token: "tok", UserID: "op", AccessCode: 127}))
	return client.New(srv.URL, 0, sess, logger)
}

func TestDecodeList_Shapes(t *testing.T) {
	bare := json.RawMessage(`[{"id":"z1"},{"id":"z2"}]`)
	wrapped := json.RawMessage(`{"zones":[{"id":"z1"},{"id":"z2"}]}`)
	data := json.RawMessage(`{"data":[{"id":"z1"},{"id":"z2"}],"total":2}`)

	for _, raw := range []json.RawMessage{bare, wrapped, data} {
		zones, err := decodeList[models.Zone](raw, "zones")
		require.NoError(t, err)
		require.Len(t, zones, 2)
		assert.Equal(t, "z2", zones[1].ID)
	}

	empty, err := decodeList[models.Zone](json.RawMessage(`null`), "zones")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = decodeList[models.Zone](json.RawMessage(`{"other":[]}`), "zones")
	assert.Error(t, err)

	_, err = decodeList[models.Zone](json.RawMessage(`42`), "zones")
	assert.Error(t, err)
}

func TestDecodeList_MixedIncidentFields(t *testing.T) {
	raw := json.RawMessage(`{"incidents":[{"id":"i1","severity":3},{"id":"i2","status":"weird","severity":2.5}]}`)

	items, err := decodeList[models.Incident](raw, "incidents")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Severity)
	assert.Equal(t, 0, items[1].Severity)
	assert.Equal(t, models.IncidentStatusUnknown, items[1].Normalized().Status)
}

func TestDecodeItem_Shapes(t *testing.T) {
	bare, err := decodeItem[models.Incident](json.RawMessage(`{"id":"i1","type":"fire"}`), "incident")
	require.NoError(t, err)
	assert.Equal(t, "i1", bare.ID)

	wrapped, err := decodeItem[models.Incident](json.RawMessage(`{"success":true,"incident":{"id":"i2"}}`), "incident")
	require.NoError(t, err)
	assert.Equal(t, "i2", wrapped.ID)
}

func TestIncidents_ListSendsFilter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/incidents", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		assert.Equal(t, "Zone A", r.URL.Query().Get("zone"))
		_, _ = io.WriteString(w, `{"incidents":[{"id":"i1","status":"active","severity":3}]}`)
	})
	incidents := NewIncidents(newTestAPIClient(t, mux))

	list, err := incidents.List(context.Background(), IncidentFilter{Status: "active", Zone: "Zone A"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].Severity)
}

func TestIncidents_DispatchNearest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/dispatch_responder", func(w http.ResponseWriter, r *http.Request) {
		var req DispatchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "inc-1", req.IncidentID)
		assert.Equal(t, 12.9716, req.Lat)
		_, _ = io.WriteString(w, `{"success":true,"responder":{"id":"r1","name":"John Smith"},"eta":"4 min"}`)
	})
	incidents := NewIncidents(newTestAPIClient(t, mux))

	res, err := incidents.DispatchNearest(context.Background(), DispatchRequest{IncidentID: "inc-1", Lat: 12.9716, Lng: 77.5946})
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.NotNil(t, res.Responder)
	assert.Equal(t, "John Smith", res.Responder.Name)
	assert.Equal(t, "4 min", res.ETA)
}

func TestIncidents_UpdateWithEmptyReplyReadsBack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/incidents/i1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = io.WriteString(w, `{"id":"i1","status":"resolved"}`)
	})
	incidents := NewIncidents(newTestAPIClient(t, mux))

	resolved := models.IncidentStatusResolved
	inc, err := incidents.Update(context.Background(), "i1", IncidentUpdate{Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusResolved, inc.Status)
}

func TestResponders_AssignPrefersServerETA(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/assign_responder", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"responder":{"id":"r1","eta":"7 min"}}`)
	})
	responders := NewResponders(newTestAPIClient(t, mux))

	eta, err := responders.Assign(context.Background(), AssignRequest{ResponderID: "r1", IncidentID: "i1", ETA: "10 min"})
	require.NoError(t, err)
	assert.Equal(t, "7 min", eta)
}

func TestAgent_SummaryRetriesOnceOnEmptyReply(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/ai_summary", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			_, _ = io.WriteString(w, `{"summary":""}`)
			return
		}
		_, _ = io.WriteString(w, `{"summary":"## All clear\nNo active incidents."}`)
	})
	agent := NewAgent(newTestAPIClient(t, mux))

	s, err := agent.Summary(context.Background(), SummaryRequest{})
	require.NoError(t, err)
	assert.Contains(t, s.Text, "All clear")
	assert.Equal(t, int32(2), calls.Load())
}

func TestAgent_SummaryGivesUpAfterOneRetry(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/ai_summary", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})
	agent := NewAgent(newTestAPIClient(t, mux))

	_, err := agent.Summary(context.Background(), SummaryRequest{})
	assert.True(t, client.IsStatus(err, http.StatusBadGateway))
	assert.Equal(t, int32(2), calls.Load())
}

func TestAgent_ChatAcceptsPlainString(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `"Send two medical units to Zone B"`)
	})
	agent := NewAgent(newTestAPIClient(t, mux))

	reply, err := agent.Chat(context.Background(), ChatRequest{Message: "what now?"})
	require.NoError(t, err)
	assert.Equal(t, "Send two medical units to Zone B", reply)
}

func TestAuth_LoginRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	auth := NewAuth(newTestAPIClient(t, mux))

	_, err := auth.Login(context.Background(), "op", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUploads_PresignAndAnalyze(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload/presigned-url", func(w http.ResponseWriter, r *http.Request) {
		var req UploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Zone A", req.Zone)
		assert.Equal(t, "image/jpeg", req.MimeType)
		_, _ = io.WriteString(w, `{"url":"https://storage.test/put","objectPath":"frames/a.jpg","docId":"d1"}`)
	})
	mux.HandleFunc("/analyze-media", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"personCount":41,"smokeDetected":true,"suggestedAction":"Open exit 3"}`)
	})
	uploads := NewUploads(newTestAPIClient(t, mux))

	ticket, err := uploads.PresignedURL(context.Background(), UploadRequest{Filename: "a.jpg", MimeType: "image/jpeg", Zone: "Zone A", Type: "image"})
	require.NoError(t, err)
	assert.Equal(t, "d1", ticket.DocID)

	analysis, err := uploads.AnalyzeMedia(context.Background(), AnalyzeRequest{FileURL: ticket.URL, Zone: "Zone A", DocID: ticket.DocID})
	require.NoError(t, err)
	assert.Equal(t, 41, analysis.PersonCount)
	assert.True(t, analysis.Hazardous())
}
