package service

import (
	"context"
	"fmt"

	"github.com/shenikar/drishti/internal/models"
	"github.com/sirupsen/logrus"
)

// AuthService определяет контракт входа и выхода оператора
type AuthService interface {
	Login(ctx context.Context, userID, password string) (models.Credentials, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (models.Credentials, error)
}

type authService struct {
	auth    Authenticator
	session SessionManager
	logger  *logrus.Logger
}

func NewAuthService(auth Authenticator, session SessionManager, logger *logrus.Logger) AuthService {
	return &authService{
		auth:    auth,
		session: session,
		logger:  logger,
	}
}

// Login проверяет учетные данные на бэкенде и сохраняет сессию
func (s *authService) Login(ctx context.Context, userID, password string) (models.Credentials, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"user_id": userID,
	})
	if userID == "" || password == "" {
		return models.Credentials{}, fmt.Errorf("service: userid and password are required: %w", ErrInvalidInput)
	}

	creds, err := s.auth.Login(ctx, userID, password)
	if err != nil {
		log.WithError(err).Warn("Login rejected")
		return models.Credentials{}, fmt.Errorf("service: login: %w", err)
	}
	if err := s.session.Login(ctx, creds); err != nil {
		log.WithError(err).Error("Failed to persist session")
		return models.Credentials{}, fmt.Errorf("service: store session: %w", err)
	}

	log.WithField("role", creds.Role()).Info("Operator signed in")
	return creds, nil
}

// Logout очищает сессию
func (s *authService) Logout(ctx context.Context) error {
	if err := s.session.Logout(ctx); err != nil {
		s.logger.WithError(err).Error("Failed to clear session")
		return fmt.Errorf("service: logout: %w", err)
	}
	s.logger.Info("Operator signed out")
	return nil
}

func (s *authService) Current(ctx context.Context) (models.Credentials, error) {
	return s.session.Current(ctx)
}
