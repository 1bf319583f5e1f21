package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/proaim/proaimctl/internal/client/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginData is the payload under "data" in a successful login response.
type loginData struct {
	Token     string      `json:"token"`
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      models.Role `json:"role"`
}

// Login posts credentials to /auth/login and normalizes the response into
// (token, user). It does not persist anything and does not attach the
// token; that is the auth service's job, so a failed persist can never
// leave a half-attached session.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	var data loginData
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{
		Username: username,
		Password: password,
	}, &data)
	if err != nil {
		return "", nil, err
	}

	if data.Token == "" {
		return "", nil, fmt.Errorf("%w: login response carried no token", ErrRequestFailed)
	}

	user := &models.User{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Role:      data.Role,
	}
	return data.Token, user, nil
}

type registerData struct {
	Token string `json:"token"`
}

// Register posts new-account fields to /auth/register. The backend may or
// may not auto-login the new account; when it does, the returned token is
// non-empty and the caller decides whether to adopt it.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var data registerData
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &data); err != nil {
		return "", err
	}
	return data.Token, nil
}
