// Package session holds the operator session: the token, user id and access
// code returned by login. It is the only process-wide mutable state of the
// console, and Login/Logout/Expire are its only mutators.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/shenikar/drishti/internal/models"
)

// Storage keys. Their absence means signed out.
const (
	KeyToken      = "token"
	KeyUserID     = "userid"
	KeyAccessCode = "accesscode"
)

var ErrNoSession = errors.New("no active session")

// Store is a flat key-value store for the session fields.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	// SetMany writes all fields in one step.
	SetMany(ctx context.Context, fields map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}

// Session wraps a Store and notifies listeners when an upstream auth failure
// forces a sign-out.
type Session struct {
	store Store

	mu        sync.RWMutex
	listeners []func(reason string)
}

func New(store Store) *Session {
	return &Session{store: store}
}

// Login persists the credentials returned by the auth endpoint.
func (s *Session) Login(ctx context.Context, creds models.Credentials) error {
	if creds.Token == "" {
		return fmt.Errorf("session: empty token")
	}
	err := s.store.SetMany(ctx, map[string]string{
		KeyToken:      creds.Token,
		KeyUserID:     creds.UserID,
		KeyAccessCode: strconv.Itoa(creds.AccessCode),
	})
	if err != nil {
		// a token without its access code would read as the restricted role
		_ = s.store.Delete(ctx, KeyToken, KeyUserID, KeyAccessCode)
		return fmt.Errorf("session: store credentials: %w", err)
	}
	return nil
}

// Logout clears every session field.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, KeyToken, KeyUserID, KeyAccessCode); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}

// Expire clears the session and tells listeners to route back to sign-in.
func (s *Session) Expire(ctx context.Context, reason string) error {
	err := s.Logout(ctx)

	s.mu.RLock()
	listeners := append([]func(string){}, s.listeners...)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn(reason)
	}
	return err
}

// OnExpire registers a callback for forced sign-outs.
func (s *Session) OnExpire(fn func(reason string)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Token returns the bearer token, or "" when signed out.
func (s *Session) Token(ctx context.Context) (string, error) {
	token, ok, err := s.store.Get(ctx, KeyToken)
	if err != nil {
		return "", fmt.Errorf("session: read token: %w", err)
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

// Current returns the stored credentials or ErrNoSession.
func (s *Session) Current(ctx context.Context) (models.Credentials, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return models.Credentials{}, err
	}
	if token == "" {
		return models.Credentials{}, ErrNoSession
	}

	creds := models.Credentials{Token: token}
	if creds.UserID, _, err = s.store.Get(ctx, KeyUserID); err != nil {
		return models.Credentials{}, fmt.Errorf("session: read userid: %w", err)
	}
	code, ok, err := s.store.Get(ctx, KeyAccessCode)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("session: read accesscode: %w", err)
	}
	if ok {
		// an unparsable code degrades to the restricted role
		creds.AccessCode, _ = strconv.Atoi(code)
	}
	return creds, nil
}
