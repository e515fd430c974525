// Package media captures camera frames and runs them through the vision
// pipeline: encode to JPEG, upload through a signed URL, then ask the
// backend to analyze the stored object.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/events"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// Status texts shown next to the capture button.
const (
	StatusIdle      = "Idle"
	StatusCapturing = "Capturing frame..."
	StatusUploading = "Uploading..."
	StatusAnalyzing = "Analyzing..."
	StatusComplete  = "Analysis complete"
	statusErrPrefix = "Error: "
)

const jpegQuality = 85

var ErrEmptyImage = errors.New("empty image")

// Uploads is the part of api.Uploads the analyzer needs.
type Uploads interface {
	PresignedURL(ctx context.Context, req api.UploadRequest) (models.UploadTicket, error)
	Put(ctx context.Context, ticket models.UploadTicket, contentType string, data []byte) error
	AnalyzeMedia(ctx context.Context, req api.AnalyzeRequest) (models.MediaAnalysis, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
}

// Result is one finished (or failed) analysis.
type Result struct {
	Zone       string                `json:"zone"`
	Status     string                `json:"status"`
	DocID      string                `json:"docId,omitempty"`
	ObjectPath string                `json:"objectPath,omitempty"`
	Analysis   *models.MediaAnalysis `json:"analysis,omitempty"`
	Error      string                `json:"error,omitempty"`
	At         time.Time             `json:"at"`
}

type Analyzer struct {
	source       FrameSource
	uploads      Uploads
	events       EventPublisher
	bucket       string
	autoIncident bool
	logger       *logrus.Logger
	now          func() time.Time

	mu     sync.RWMutex
	status string
	last   *Result
}

func NewAnalyzer(source FrameSource, uploads Uploads, publisher EventPublisher, bucket string, autoIncident bool, logger *logrus.Logger) *Analyzer {
	return &Analyzer{
		source:       source,
		uploads:      uploads,
		events:       publisher,
		bucket:       bucket,
		autoIncident: autoIncident,
		logger:       logger,
		now:          time.Now,
		status:       StatusIdle,
	}
}

// Status returns the current pipeline step.
func (a *Analyzer) Status() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}

// Last returns the most recent result, if any.
func (a *Analyzer) Last() (Result, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.last == nil {
		return Result{}, false
	}
	return *a.last, true
}

func (a *Analyzer) setStatus(s string) {
	a.mu.Lock()
	a.status = s
	a.mu.Unlock()
}

// Capture grabs one frame from the camera and analyzes it for zone.
func (a *Analyzer) Capture(ctx context.Context, zone string) (Result, error) {
	a.setStatus(StatusCapturing)
	frame, err := a.source.Frame(ctx)
	if err != nil {
		return a.fail(zone, fmt.Errorf("media: capture: %w", err))
	}

	data, err := EncodeJPEG(frame)
	if err != nil {
		return a.fail(zone, err)
	}
	name := fmt.Sprintf("frame-%s-%s.jpg", a.now().UTC().Format("20060102T150405"), uuid.NewString()[:8])
	return a.analyze(ctx, zone, name, "image/jpeg", data, "live capture")
}

// AnalyzeImage runs uploaded bytes through the same pipeline.
func (a *Analyzer) AnalyzeImage(ctx context.Context, zone, filename, contentType string, data []byte, notes string) (Result, error) {
	if len(data) == 0 {
		return a.fail(zone, ErrEmptyImage)
	}
	if filename == "" {
		filename = "upload-" + uuid.NewString()[:8]
	}
	return a.analyze(ctx, zone, filename, contentType, data, notes)
}

func (a *Analyzer) analyze(ctx context.Context, zone, filename, contentType string, data []byte, notes string) (Result, error) {
	log := a.logger.WithFields(logrus.Fields{
		"service": "Analyzer",
		"zone":    zone,
		"file":    filename,
	})

	a.setStatus(StatusUploading)
	ticket, err := a.uploads.PresignedURL(ctx, api.UploadRequest{
		Filename: filename,
		MimeType: contentType,
		Zone:     zone,
		Notes:    notes,
		Type:     "image",
		Bucket:   a.bucket,
	})
	if err != nil {
		return a.fail(zone, fmt.Errorf("media: presign: %w", err))
	}
	if err := a.uploads.Put(ctx, ticket, contentType, data); err != nil {
		return a.fail(zone, fmt.Errorf("media: upload: %w", err))
	}

	a.setStatus(StatusAnalyzing)
	analysis, err := a.uploads.AnalyzeMedia(ctx, api.AnalyzeRequest{
		FileURL:      ticket.URL,
		Zone:         zone,
		DocID:        ticket.DocID,
		AutoIncident: a.autoIncident,
	})
	if err != nil {
		return a.fail(zone, fmt.Errorf("media: analyze: %w", err))
	}

	res := Result{
		Zone:       zone,
		Status:     StatusComplete,
		DocID:      ticket.DocID,
		ObjectPath: ticket.ObjectPath,
		Analysis:   &analysis,
		At:         a.now(),
	}
	a.record(res)
	metrics.IncMediaAnalysis("ok")
	log.WithFields(logrus.Fields{
		"persons":   analysis.PersonCount,
		"hazardous": analysis.Hazardous(),
	}).Info("Frame analyzed")

	if err := a.events.Publish(ctx, events.MediaAnalyzed, zone, res); err != nil {
		log.WithError(err).Warn("Failed to publish analysis event")
	}
	return res, nil
}

func (a *Analyzer) fail(zone string, err error) (Result, error) {
	res := Result{
		Zone:   zone,
		Status: statusErrPrefix + err.Error(),
		Error:  err.Error(),
		At:     a.now(),
	}
	a.record(res)
	metrics.IncMediaAnalysis("error")
	a.logger.WithError(err).WithField("zone", zone).Warn("Frame analysis failed")
	return res, err
}

func (a *Analyzer) record(res Result) {
	a.mu.Lock()
	a.status = res.Status
	a.last = &res
	a.mu.Unlock()
}

// Live captures and analyzes a frame every interval until ctx ends. A failed
// cycle is reported through onResult and the loop keeps going.
func (a *Analyzer) Live(ctx context.Context, zone string, interval time.Duration, onResult func(Result)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res, _ := a.Capture(ctx, zone)
		if ctx.Err() != nil {
			a.setStatus(StatusIdle)
			return
		}
		if onResult != nil {
			onResult(res)
		}

		select {
		case <-ctx.Done():
			a.setStatus(StatusIdle)
			return
		case <-ticker.C:
		}
	}
}

// EncodeJPEG encodes a frame for upload.
func EncodeJPEG(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("media: encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
