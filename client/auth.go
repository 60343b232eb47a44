package client

import (
	"context"
	"net/http"

	"github.com/soukhub/soukhub-go/schema"
	"github.com/soukhub/soukhub-go/session"
)

// Login exchanges credentials for a bearer token and persists the session
// wholesale: token first, then the full profile snapshot.
func (c *Client) Login(ctx context.Context, email, password string) (*schema.User, error) {
	resp, err := do[schema.LoginResponse](ctx, c, http.MethodPost, "/auth/login",
		schema.Credentials{Email: email, Password: password}, "login failed")
	if err != nil {
		return nil, err
	}
	if err := c.store.SaveToken(resp.Token); err != nil {
		return nil, err
	}
	if err := c.store.SaveProfile(session.ProfileOf(resp.User)); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Register creates an account; it does not log the account in.
func (c *Client) Register(ctx context.Context, request schema.RegisterRequest) (*schema.User, error) {
	user, err := do[schema.User](ctx, c, http.MethodPost, "/auth/register", request, "registration failed")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout notifies the backend and clears the local session regardless of the
// remote outcome, so stale credentials never outlive an explicit logout.
func (c *Client) Logout(ctx context.Context) error {
	_, err := do[struct{}](ctx, c, http.MethodPost, "/auth/logout", nil, "logout failed")
	if cerr := c.store.Clear(); cerr != nil {
		return cerr
	}
	return err
}

// Me fetches the account record behind the stored credential.
func (c *Client) Me(ctx context.Context) (*schema.User, error) {
	user, err := get[schema.User](ctx, c, "/users/me", "failed to load profile")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe updates the account record and refreshes the stored profile
// snapshot with the backend's view.
func (c *Client) UpdateMe(ctx context.Context, user schema.User) (*schema.User, error) {
	updated, err := do[schema.User](ctx, c, http.MethodPut, "/users/me", user, "failed to update profile")
	if err != nil {
		return nil, err
	}
	if err := c.store.SaveProfile(session.ProfileOf(updated)); err != nil {
		return nil, err
	}
	return &updated, nil
}
