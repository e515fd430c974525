package v1

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/config"
	"github.com/shenikar/drishti/internal/dispatch"
	"github.com/shenikar/drishti/internal/media"
	"github.com/shenikar/drishti/internal/service"
	"github.com/shenikar/drishti/internal/session"
	"github.com/shenikar/drishti/internal/syncer"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService      service.AuthService
	incidentService  service.IncidentService
	operationService service.OperationsService
	alertService     service.AlertService
	intelService     service.IntelService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	authService service.AuthService,
	incidentService service.IncidentService,
	operationService service.OperationsService,
	alertService service.AlertService,
	intelService service.IntelService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authService:      authService,
		incidentService:  incidentService,
		operationService: operationService,
		alertService:     alertService,
		intelService:     intelService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// bind разбирает JSON и проверяет теги validate. При ошибке ответ уже отправлен.
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP-статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status := errorStatus(err)
	entry := log.WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}

	switch status {
	case http.StatusUnauthorized:
		if errors.Is(err, api.ErrInvalidCredentials) {
			c.JSON(status, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(status, ErrorResponse{Error: "Unauthorized", Redirect: loginRedirect})
	case http.StatusInternalServerError:
		c.JSON(status, ErrorResponse{Error: "internal server error"})
	default:
		c.JSON(status, ErrorResponse{Error: err.Error()})
	}
}

func errorStatus(err error) int {
	var (
		validationErrs validator.ValidationErrors
		statusErr      *client.StatusError
		urlErr         *url.Error
	)
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, dispatch.ErrInvalidReport),
		errors.Is(err, syncer.ErrNegativeOccupancy),
		errors.Is(err, media.ErrEmptyImage),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, api.ErrInvalidCredentials),
		errors.Is(err, client.ErrUnauthorized),
		errors.Is(err, client.ErrSignedOut),
		errors.Is(err, session.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, syncer.ErrNotFound),
		errors.Is(err, dispatch.ErrSagaNotFound),
		errors.Is(err, dispatch.ErrResponderNotFound),
		client.IsStatus(err, http.StatusNotFound):
		return http.StatusNotFound
	case errors.Is(err, syncer.ErrInvalidTransition),
		errors.Is(err, dispatch.ErrResponderUnavailable),
		errors.Is(err, dispatch.ErrAlreadyDispatched):
		return http.StatusConflict
	case errors.Is(err, media.ErrNoCamera):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &statusErr),
		errors.As(err, &urlErr),
		errors.Is(err, api.ErrEmptyAgentReply):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// @Summary Sign in
// @Description Exchange operator credentials for a session. The token stays server side.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Operator credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Invalid user id or password"
// @Failure 502 {object} ErrorResponse "Auth service unavailable"
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")
	if !h.bind(c, log, &input) {
		return
	}

	creds, err := h.authService.Login(c.Request.Context(), input.UserID, input.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CredentialsToSessionResponse(creds))
}

// @Summary Sign out
// @Description Clear the operator session.
// @Tags Auth
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Current session
// @Description Return the signed-in operator and role.
// @Tags Auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /session [get]
func (h *Handler) currentSession(c *gin.Context) {
	creds, ok := credentialsFrom(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	c.JSON(http.StatusOK, CredentialsToSessionResponse(creds))
}

// @Summary Get application health status
// @Description Backend health as reported by the system endpoint.
// @Tags System
// @Produce json
// @Success 200 {object} api.Health
// @Failure 502 {object} ErrorResponse "Backend unavailable"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	log := h.logger.WithField("method", "healthCheck")
	health, err := h.operationService.Health(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, health)
}

// @Summary System overview
// @Description Backend stats plus counters computed from the local caches.
// @Tags System
// @Produce json
// @Success 200 {object} service.SystemOverview
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /system/overview [get]
func (h *Handler) systemOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.operationService.Overview(c.Request.Context()))
}
