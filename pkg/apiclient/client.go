// Package apiclient is a small HTTP client for the service API that manages
// the session token: it attaches the bearer header, and on a 401 from any
// endpoint except login it refreshes the token once and retries the request
// once. A failed refresh clears the session.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrSessionExpired is returned when the token is rejected and the refresh
// attempt fails. The caller must authenticate again.
var ErrSessionExpired = errors.New("session expired")

const (
	loginPath   = "/api/auth/login"
	refreshPath = "/api/auth/refresh"
)

// Client talks to the service API with automatic token refresh.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	token string
}

// New builds a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs a session token, e.g. after register or login.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current session token, empty when logged out.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

type authPayload struct {
	Token string `json:"token"`
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}
	resp, err := c.send(ctx, http.MethodPost, loginPath, body, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed: status %d", resp.StatusCode)
	}
	var out authPayload
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	c.SetToken(out.Token)
	return nil
}

// Do performs an authenticated request against path. On a 401 it refreshes
// the token once and retries once; it never refreshes for the login
// endpoint and never retries more than once.
func (c *Client) Do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	resp, err := c.send(ctx, method, path, body, c.Token())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || path == loginPath {
		return resp, nil
	}
	resp.Body.Close()

	if err := c.refresh(ctx); err != nil {
		c.SetToken("")
		return nil, ErrSessionExpired
	}
	return c.send(ctx, method, path, body, c.Token())
}

// DoJSON performs an authenticated request and decodes the JSON response
// into out when out is non-nil.
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return err
		}
	}

	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("request failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) refresh(ctx context.Context) error {
	token := c.Token()
	if token == "" {
		return errors.New("no session token")
	}

	resp, err := c.send(ctx, http.MethodPost, refreshPath, nil, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("refresh failed: status %d", resp.StatusCode)
	}
	var out authPayload
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	c.SetToken(out.Token)
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.http.Do(req)
}
