package gateway

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// AuthService covers login, logout and the current-user lookup.
type AuthService struct {
	client *Client
}

func (c *Client) Auth() *AuthService {
	return &AuthService{client: c}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login authenticates and, when the response carries a token, configures it
// on the gateway so every following request is authenticated.
func (as *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := as.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Body:   LoginRequest{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, errors.New("[AuthService.Login] login response carried no token")
	}
	if err := as.client.ConfigureToken(resp.Token); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout tells the backend to invalidate the session, then clears the local
// token even if the request itself failed.
func (as *AuthService) Logout(ctx context.Context) error {
	reqErr := as.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/auth/logout"}, nil)
	if err := as.client.ClearToken(); err != nil {
		return err
	}
	return reqErr
}

// Me returns the authenticated user.
func (as *AuthService) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := as.client.Do(ctx, Request{Path: "/api/auth/me"}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
