// Package spotify implements the collaborator contracts against the remote
// media service: an authenticated HTTP client shared by the search, library
// and query accessors, and a playback controller holding the persistent
// real-time connection. The session core never sees these types directly,
// only the interfaces in tunetypes.
package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"tuneshell/internal/config"
	"tuneshell/internal/logger"
)

// Credentials are the two tokens every remote call carries.
type Credentials struct {
	AccessToken string
	ClientToken string
}

// Authenticator supplies fresh credentials. The login flow itself (cookies,
// token refresh) lives outside this package; the client only needs
// something it can ask for credentials, and ask again after a 401.
type Authenticator interface {
	Authenticate(ctx context.Context) (Credentials, error)
}

// StaticAuthenticator hands out fixed tokens from configuration. It covers
// the common case of tokens injected through the environment.
type StaticAuthenticator struct {
	Credentials Credentials
}

// Authenticate returns the configured tokens.
func (s *StaticAuthenticator) Authenticate(_ context.Context) (Credentials, error) {
	if s.Credentials.AccessToken == "" {
		return Credentials{}, fmt.Errorf("no access token configured")
	}
	return s.Credentials, nil
}

// Client is the authenticated HTTP client shared by the accessors. It
// refreshes credentials once on a 401 and replays the request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	wsURL      string
	auth       Authenticator

	mu    sync.Mutex
	creds Credentials
}

// NewClient builds a Client from configuration and an authenticator.
func NewClient(cfg *config.Config, auth Authenticator) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL:    cfg.APIBaseURL,
		wsURL:      cfg.RealtimeURL,
		auth:       auth,
	}
}

func (c *Client) credentials(ctx context.Context) (Credentials, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.creds.AccessToken == "" {
		creds, err := c.auth.Authenticate(ctx)
		if err != nil {
			return Credentials{}, fmt.Errorf("authentication failed: %w", err)
		}
		c.creds = creds
	}
	return c.creds, nil
}

func (c *Client) resetCredentials() {
	c.mu.Lock()
	c.creds = Credentials{}
	c.mu.Unlock()
}

// get issues an authenticated GET with query parameters and decodes the
// JSON response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

// post issues an authenticated POST with a JSON body and decodes the JSON
// response into out (out may be nil).
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, out any) error {
	resp, err := c.doOnce(ctx, method, path, params, body)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		// Token expired: reset and replay once with fresh credentials.
		_ = resp.Body.Close()
		c.resetCredentials()
		resp, err = c.doOnce(ctx, method, path, params, body)
		if err != nil {
			return err
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: remote returned %s: %s", method, path, resp.Status, bytes.TrimSpace(data))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}
	return nil
}

func (c *Client) doOnce(ctx context.Context, method, path string, params url.Values, body any) (*http.Response, error) {
	creds, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	if creds.ClientToken != "" {
		req.Header.Set("Client-Token", creds.ClientToken)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	}

	logger.Debug("Remote request", "method", method, "path", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}
