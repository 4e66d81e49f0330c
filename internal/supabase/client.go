// Package supabase is a minimal client for the hosted backend the
// storefront delegates to: GoTrue authentication and PostgREST order
// submission. Row-level security stays on the platform side; this client
// only passes calls through.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cubtton/storefront/internal/port"
)

// The client is both the auth collaborator and the order-submission API
// consumed at checkout.
var (
	_ port.AuthProvider = (*Client)(nil)
	_ port.OrderCreator = (*Client)(nil)
)

// Config holds client configuration. APIKey is the project's anon key; it
// authenticates the app, not the user.
type Config struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
}

// Client talks to one Supabase project. It carries the signed-in user's
// access token, set by SignIn and cleared by SignOut.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	mu          sync.RWMutex
	accessToken string
}

func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("APIKey is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// APIError is a non-2xx response from the platform, with the
// human-readable message it carried.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	prefer string
	// single asks PostgREST for exactly one object instead of an array
	single bool
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("apikey", c.apiKey)
	httpReq.Header.Set("Authorization", "Bearer "+c.bearerToken())
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.prefer != "" {
		httpReq.Header.Set("Prefer", req.prefer)
	}
	if req.single {
		httpReq.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data, resp.Status),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// bearerToken returns the user's access token when signed in, the anon key
// otherwise.
func (c *Client) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.accessToken != "" {
		return c.accessToken
	}
	return c.apiKey
}

func (c *Client) setAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

// errorMessage extracts the message from an error body. PostgREST uses
// "message", GoTrue uses "msg" or "error_description".
func errorMessage(data []byte, fallback string) string {
	var body struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		for _, msg := range []string{body.Message, body.Msg, body.ErrorDescription} {
			if msg != "" {
				return msg
			}
		}
	}
	return fallback
}
