package backend

import (
	"context"

	"github.com/OthonLozano/NetCinema-WebApplication/internal/model"
)

// Login exchanges credentials for a bearer token.  The backend is the only
// party that validates passwords; this gateway just forwards them.
func (c *Client) Login(ctx context.Context, username, password string) (*model.AuthResponse, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}
	var out model.AuthResponse
	if err := c.post(ctx, "/usuarios/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a customer account.  The password travels plaintext in
// the body and is hashed backend-side.
func (c *Client) Register(ctx context.Context, in model.User) (*model.User, error) {
	var out model.User
	if err := c.post(ctx, "/usuarios", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserByUsername fetches the profile stored for a username, used to fill
// the session after login.
func (c *Client) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	var out model.User
	if err := c.get(ctx, "/usuarios/username/"+username, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
