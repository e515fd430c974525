package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/drishti/internal/models"
	"github.com/shenikar/drishti/internal/service"
	"github.com/shenikar/drishti/internal/session"
	"github.com/sirupsen/logrus"
)

const (
	credentialsKey = "credentials"
	loginRedirect  = "/login"
)

// SessionAuthMiddleware - пропускает запрос только при активной сессии оператора
func SessionAuthMiddleware(auth service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, err := auth.Current(c.Request.Context())
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				log.WithField("path", c.FullPath()).Debug("Request without session")
				abortUnauthorized(c)
				return
			}
			log.WithError(err).Error("Failed to read session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}

		c.Set(credentialsKey, creds)
		c.Next()
	}
}

// AdminOnlyMiddleware - доступ только для accesscode 127. Роль responder видит
// только инциденты.
func AdminOnlyMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, ok := credentialsFrom(c)
		if !ok {
			abortUnauthorized(c)
			return
		}
		if !creds.IsAdmin() {
			log.WithFields(logrus.Fields{
				"user_id": creds.UserID,
				"path":    c.FullPath(),
			}).Warn("Admin route denied")
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
			return
		}
		c.Next()
	}
}

func credentialsFrom(c *gin.Context) (models.Credentials, bool) {
	v, ok := c.Get(credentialsKey)
	if !ok {
		return models.Credentials{}, false
	}
	creds, ok := v.(models.Credentials)
	return creds, ok
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized", Redirect: loginRedirect})
}
