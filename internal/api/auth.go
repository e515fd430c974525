package api

import (
	"context"
	"errors"

	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid user id or password")

type Auth struct {
	c *client.Client
}

func NewAuth(c *client.Client) *Auth {
	return &Auth{c: c}
}

type loginRequest struct {
	UserID   string `json:"userid"`
	Password string `json:"password"`
}

// Login exchanges a user id and password for session credentials.
func (a *Auth) Login(ctx context.Context, userID, password string) (models.Credentials, error) {
	var creds models.Credentials
	err := a.c.Post(ctx, "/api/login", loginRequest{UserID: userID, Password: password}, &creds, client.Public())
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return models.Credentials{}, ErrInvalidCredentials
		}
		return models.Credentials{}, err
	}
	if creds.Token == "" {
		return models.Credentials{}, ErrInvalidCredentials
	}
	if creds.UserID == "" {
		creds.UserID = userID
	}
	return creds, nil
}
