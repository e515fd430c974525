package media

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // регистрация декодеров для image.Decode
	_ "image/png"
	"io"
	"net/http"
	"time"
)

var ErrNoCamera = errors.New("no camera configured")

// FrameSource yields the current camera frame.
type FrameSource interface {
	Frame(ctx context.Context) (image.Image, error)
}

// NewFrameSource picks the camera snapshot source when url is set. Without a
// url, demo mode serves a blank frame and otherwise captures fail with
// ErrNoCamera.
func NewFrameSource(url string, timeout time.Duration, demo bool) FrameSource {
	if url == "" && demo {
		return NewStaticSource(nil)
	}
	return NewSnapshotSource(url, timeout)
}

// SnapshotSource pulls a still from an IP camera's snapshot URL.
type SnapshotSource struct {
	url    string
	client *http.Client
}

func NewSnapshotSource(url string, timeout time.Duration) *SnapshotSource {
	return &SnapshotSource{url: url, client: &http.Client{Timeout: timeout}}
}

func (s *SnapshotSource) Frame(ctx context.Context) (image.Image, error) {
	if s.url == "" {
		return nil, ErrNoCamera
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("media: build snapshot request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media: fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media: snapshot returned %s", resp.Status)
	}
	img, _, err := image.Decode(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("media: decode snapshot: %w", err)
	}
	return img, nil
}

// StaticSource always returns the same frame. A nil image yields a blank
// 640x480 frame.
type StaticSource struct {
	img image.Image
}

func NewStaticSource(img image.Image) *StaticSource {
	if img == nil {
		img = image.NewGray(image.Rect(0, 0, 640, 480))
	}
	return &StaticSource{img: img}
}

func (s *StaticSource) Frame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.img, nil
}
