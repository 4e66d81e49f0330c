package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cubtton/storefront/internal/domain"
	"github.com/google/uuid"
)

// Session is an authenticated GoTrue session.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         struct {
		ID    uuid.UUID `json:"id"`
		Email string    `json:"email"`
	} `json:"user"`
}

type SignUpParams struct {
	Email    string
	Password string
	FullName string
	Username string
}

// SignUp registers a new user, carrying the display name and username as
// user metadata. The profile row is created by the backend.
func (c *Client) SignUp(ctx context.Context, p SignUpParams) (Session, error) {
	body := map[string]any{
		"email":    p.Email,
		"password": p.Password,
		"data": map[string]any{
			"full_name": p.FullName,
			"username":  p.Username,
		},
	}

	var session Session
	if err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/signup",
		body:   body,
	}, &session); err != nil {
		return Session{}, fmt.Errorf("signup: %w", err)
	}

	c.setAccessToken(session.AccessToken)
	return session, nil
}

// SignIn authenticates with email and password and keeps the access token
// on the client for subsequent calls.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	var session Session
	if err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/token",
		query:  url.Values{"grant_type": []string{"password"}},
		body: map[string]string{
			"email":    email,
			"password": password,
		},
	}, &session); err != nil {
		return Session{}, fmt.Errorf("sign in: %w", err)
	}

	c.setAccessToken(session.AccessToken)
	return session, nil
}

// SignOut revokes the current session and drops the access token. Signing
// out while not signed in is a no-op.
func (c *Client) SignOut(ctx context.Context) error {
	if !c.signedIn() {
		return nil
	}

	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/logout",
	}, nil)
	c.setAccessToken("")
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// GetCurrentUser returns the signed-in identity with its profile role, or
// nil when nobody is signed in. The role falls back to "client" when the
// profile row is missing or unreadable.
func (c *Client) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	if !c.signedIn() {
		return nil, nil
	}

	var user struct {
		ID    uuid.UUID `json:"id"`
		Email string    `json:"email"`
	}
	if err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/auth/v1/user",
	}, &user); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &domain.User{
		ID:    user.ID,
		Email: user.Email,
		Role:  c.profileRole(ctx, user.ID),
	}, nil
}

func (c *Client) profileRole(ctx context.Context, id uuid.UUID) string {
	var profile struct {
		Role string `json:"role"`
	}
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/rest/v1/profiles",
		query: url.Values{
			"id":     []string{"eq." + id.String()},
			"select": []string{"role"},
		},
		single: true,
	}, &profile)
	if err != nil || profile.Role == "" {
		// profile row may not exist yet right after signup
		return domain.RoleClient
	}
	return profile.Role
}

func (c *Client) signedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken != ""
}
