package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/events"
	"github.com/shenikar/drishti/internal/media/mocks"
	"github.com/shenikar/drishti/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type failingSource struct{ err error }

func (f failingSource) Frame(context.Context) (image.Image, error) { return nil, f.err }

func newTestAnalyzer(t *testing.T, src FrameSource) (*Analyzer, *mocks.MockUploads, *mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	uploads := mocks.NewMockUploads(ctrl)
	pub := mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	a := NewAnalyzer(src, uploads, pub, "drishti-media", true, logger)
	a.now = func() time.Time { return time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC) }
	return a, uploads, pub
}

func TestCapture_Success(t *testing.T) {
	// Подготовка
	a, uploads, pub := newTestAnalyzer(t, NewStaticSource(nil))
	ticket := models.UploadTicket{URL: "https://storage/put", ObjectPath: "Zone A/frame.jpg", DocID: "doc-1"}

	// Ожидания
	uploads.EXPECT().PresignedURL(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req api.UploadRequest) (models.UploadTicket, error) {
			assert.Equal(t, "Zone A", req.Zone)
			assert.Equal(t, "image/jpeg", req.MimeType)
			assert.Equal(t, "drishti-media", req.Bucket)
			return ticket, nil
		})
	uploads.EXPECT().Put(gomock.Any(), ticket, "image/jpeg", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.UploadTicket, _ string, data []byte) error {
			assert.Equal(t, []byte{0xFF, 0xD8}, data[:2])
			return nil
		})
	uploads.EXPECT().AnalyzeMedia(gomock.Any(), api.AnalyzeRequest{
		FileURL: "https://storage/put", Zone: "Zone A", DocID: "doc-1", AutoIncident: true,
	}).Return(models.MediaAnalysis{PersonCount: 41, SmokeDetected: true}, nil)
	pub.EXPECT().Publish(gomock.Any(), events.MediaAnalyzed, "Zone A", gomock.Any()).Return(nil)

	// Действие
	res, err := a.Capture(context.Background(), "Zone A")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, res.Status)
	assert.Equal(t, "doc-1", res.DocID)
	require.NotNil(t, res.Analysis)
	assert.Equal(t, 41, res.Analysis.PersonCount)
	assert.Equal(t, StatusComplete, a.Status())

	last, ok := a.Last()
	assert.True(t, ok)
	assert.Equal(t, res, last)
}

func TestCapture_SourceError(t *testing.T) {
	a, _, _ := newTestAnalyzer(t, failingSource{err: ErrNoCamera})

	res, err := a.Capture(context.Background(), "Zone A")

	assert.ErrorIs(t, err, ErrNoCamera)
	assert.Contains(t, res.Status, "Error: ")
	assert.Contains(t, a.Status(), "no camera configured")
}

func TestAnalyzeImage_UploadFailure(t *testing.T) {
	a, uploads, _ := newTestAnalyzer(t, nil)
	putErr := errors.New("storage unavailable")

	uploads.EXPECT().PresignedURL(gomock.Any(), gomock.Any()).Return(models.UploadTicket{URL: "u"}, nil)
	uploads.EXPECT().Put(gomock.Any(), gomock.Any(), "image/png", []byte("png")).Return(putErr)

	res, err := a.AnalyzeImage(context.Background(), "Zone B", "crowd.png", "image/png", []byte("png"), "")

	assert.ErrorIs(t, err, putErr)
	assert.Equal(t, "Zone B", res.Zone)
	assert.Nil(t, res.Analysis)
}

func TestAnalyzeImage_EmptyData(t *testing.T) {
	a, _, _ := newTestAnalyzer(t, nil)

	_, err := a.AnalyzeImage(context.Background(), "Zone B", "x.jpg", "image/jpeg", nil, "")

	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestAnalyzeImage_PublishFailureIsNotFatal(t *testing.T) {
	a, uploads, pub := newTestAnalyzer(t, nil)

	uploads.EXPECT().PresignedURL(gomock.Any(), gomock.Any()).Return(models.UploadTicket{URL: "u", DocID: "d"}, nil)
	uploads.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	uploads.EXPECT().AnalyzeMedia(gomock.Any(), gomock.Any()).Return(models.MediaAnalysis{PersonCount: 3}, nil)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	res, err := a.AnalyzeImage(context.Background(), "Zone C", "", "image/jpeg", []byte{1}, "")

	require.NoError(t, err)
	assert.Equal(t, 3, res.Analysis.PersonCount)
}

func TestLive_ContinuesAfterErrors(t *testing.T) {
	// Подготовка
	var calls atomic.Int32
	src := failingSource{err: errors.New("camera offline")}
	a, _, _ := newTestAnalyzer(t, src)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	// Действие
	go func() {
		defer close(done)
		a.Live(ctx, "Zone A", 5*time.Millisecond, func(res Result) {
			assert.NotEmpty(t, res.Error)
			if calls.Add(1) == 3 {
				cancel()
			}
		})
	}()

	// Проверки
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("live loop did not stop")
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
	assert.Equal(t, StatusIdle, a.Status())
}

func TestSnapshotSource_Frame(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_ = png.Encode(w, image.NewGray(image.Rect(0, 0, 4, 3)))
	}))
	defer srv.Close()

	img, err := NewSnapshotSource(srv.URL, time.Second).Frame(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
}

func TestSnapshotSource_Errors(t *testing.T) {
	_, err := NewSnapshotSource("", time.Second).Frame(context.Background())
	assert.ErrorIs(t, err, ErrNoCamera)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	_, err = NewSnapshotSource(srv.URL, time.Second).Frame(context.Background())
	assert.Error(t, err)
}

func TestNewFrameSource(t *testing.T) {
	ctx := context.Background()

	demo, err := NewFrameSource("", time.Second, true).Frame(ctx)
	require.NoError(t, err)
	assert.Equal(t, 640, demo.Bounds().Dx())

	_, err = NewFrameSource("", time.Second, false).Frame(ctx)
	assert.ErrorIs(t, err, ErrNoCamera)

	assert.IsType(t, &SnapshotSource{}, NewFrameSource("http://cam.local/snap.jpg", time.Second, true))
}

func TestEncodeJPEG_RejectsEmpty(t *testing.T) {
	_, err := EncodeJPEG(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, ErrEmptyImage)

	data, err := EncodeJPEG(image.NewGray(image.Rect(0, 0, 8, 8)))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
