// Package client is the single HTTP wrapper every backend call goes through.
// It attaches the JSON content type and the bearer token, decodes JSON
// replies, and turns 401/403 into a forced sign-out.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shenikar/drishti/internal/session"
	"github.com/shenikar/drishti/pkg/metrics"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnauthorized is returned after the backend rejected the token.
	ErrUnauthorized = errors.New("Unauthorized")
	// ErrSignedOut is returned for protected calls made without a stored token.
	// No request is sent in that case.
	ErrSignedOut = errors.New("signed out")
)

// StatusError carries a non-2xx reply other than 401/403.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return e.Status
	}
	return http.StatusText(e.Code)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
	logger  *logrus.Logger
}

// New builds a client for baseURL. timeout 0 leaves requests bounded only by
// their context.
func New(baseURL string, timeout time.Duration, sess *session.Session, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
		logger:  logger,
	}
}

type requestOptions struct {
	public bool
	query  map[string]string
}

type RequestOption func(*requestOptions)

// Public marks an endpoint that works without a session.
func Public() RequestOption {
	return func(o *requestOptions) { o.public = true }
}

// Query adds non-empty query parameters.
func Query(params map[string]string) RequestOption {
	return func(o *requestOptions) { o.query = params }
}

func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPut, path, body, out, opts...)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPatch, path, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out, opts...)
}

// Do performs one round trip. body is JSON encoded when non-nil; out, when
// non-nil, receives the decoded reply. There are no retries at this layer.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" && !o.public {
		return ErrSignedOut
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: build %s %s: %w", method, path, err)
	}
	if len(o.query) > 0 {
		q := req.URL.Query()
		for k, v := range o.query {
			if v != "" {
				q.Set(k, v)
			}
		}
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	endpoint := endpointLabel(path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream(method, endpoint, 0, time.Since(start))
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(method, endpoint, resp.StatusCode, time.Since(start))

	log := c.logger.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": resp.StatusCode,
	})

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		log.Warn("Backend rejected session, signing out")
		if err := c.session.Expire(ctx, fmt.Sprintf("%s %s returned %d", method, path, resp.StatusCode)); err != nil {
			log.WithError(err).Error("Failed to clear session")
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		log.Debug("Backend returned error status")
		return &StatusError{Code: resp.StatusCode, Status: statusText(resp), Body: string(raw)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("client: decode %s %s: %w", method, path, err)
	}
	return nil
}

// PutObject uploads raw bytes to a signed URL. The URL already carries its
// authorization, so no bearer token is attached.
func (c *Client) PutObject(ctx context.Context, url, contentType string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("client: build upload: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream(http.MethodPut, "object", 0, time.Since(start))
		return fmt.Errorf("client: upload: %w", err)
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(http.MethodPut, "object", resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Status: statusText(resp)}
	}
	return nil
}

// statusText returns "403 Forbidden" style text without the protocol prefix.
func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

// endpointLabel keeps metric cardinality low: "/incidents/abc/notes" -> "incidents".
func endpointLabel(path string) string {
	p := strings.TrimPrefix(path, "/")
	p = strings.TrimPrefix(p, "api/")
	if i := strings.IndexAny(p, "/?"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "root"
	}
	return p
}
