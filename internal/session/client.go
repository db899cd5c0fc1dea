package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrLoginFailed is wrapped by every login rejection so callers can
// distinguish bad credentials from transport failures.
var ErrLoginFailed = errors.New("login failed")

// Client is the HTTP implementation of API against the ERP server.
type Client struct {
	baseURL string
	http    *http.Client
}

// Ensure Client implements API
var _ API = (*Client)(nil)

// NewClient creates an API client for the server at baseURL
// (e.g. "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Login posts the credentials to the organization's login endpoint
// and returns the session value from the response.
func (c *Client) Login(ctx context.Context, orgSlug, username, password string) (*AuthUser, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	url := fmt.Sprintf("%s/org/%s/auth/login", c.baseURL, orgSlug)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrLoginFailed, apiErr.Error)
		}
		return nil, fmt.Errorf("%w: status %d", ErrLoginFailed, resp.StatusCode)
	}

	user := &AuthUser{}
	if err := json.NewDecoder(resp.Body).Decode(user); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if user.OrganizationSlug == "" {
		user.OrganizationSlug = orgSlug
	}
	if !user.complete() {
		return nil, fmt.Errorf("%w: incomplete response", ErrLoginFailed)
	}

	return user, nil
}

// Logout posts to the organization's logout endpoint with the bearer
// token. Callers treat any error as non-fatal.
func (c *Client) Logout(ctx context.Context, orgSlug, token string) error {
	url := fmt.Sprintf("%s/org/%s/auth/logout", c.baseURL, orgSlug)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build logout request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("logout rejected: status %d", resp.StatusCode)
	}
	return nil
}
