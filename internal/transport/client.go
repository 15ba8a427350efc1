// Package transport issues every request the SDK makes: one client,
// configured once with the API base URL and a default JSON content type.
// Attaching the bearer token is the caller's responsibility per call site,
// via WithBearer. The one global side effect lives here: any 401/403
// response triggers the auth-failure handler before the error is returned,
// regardless of which operation made the call.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/rs/zerolog"

	"github.com/seranise/kedesh-go/internal/apierror"
)

// AuthFailureHandler is invoked on every 401/403 response with the path the
// application was on when the call failed. The session layer implements it:
// record the path for post-login return, clear persisted tokens, redirect to
// the login route.
type AuthFailureHandler interface {
	HandleAuthFailure(currentPath string)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger

	// currentPath reports where the application is when a call fails;
	// the view layer supplies it, the CLI leaves the default.
	currentPath   func() string
	onAuthFailure AuthFailureHandler
}

type Option func(*Client)

// WithTimeout bounds each request. The default is no timeout, matching the
// web client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithCredentials enables a cookie jar so server-set cookies ride along,
// the build variant equivalent of axios withCredentials.
func WithCredentials() Option {
	return func(c *Client) {
		jar, err := cookiejar.New(nil)
		if err == nil {
			c.httpClient.Jar = jar
		}
	}
}

func WithCurrentPath(fn func() string) Option {
	return func(c *Client) { c.currentPath = fn }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{},
		logger:      zerolog.Nop(),
		currentPath: func() string { return "/" },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAuthFailureHandler wires the session teardown hook. It is set after
// construction because the session layer itself issues requests through
// this client.
func (c *Client) SetAuthFailureHandler(h AuthFailureHandler) {
	c.onAuthFailure = h
}

// RequestOption mutates a single outgoing request.
type RequestOption func(*http.Request)

// WithBearer attaches Authorization: Bearer <token>.
func WithBearer(token string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// Get issues a GET and decodes the JSON response into out (out may be nil).
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out, opts)
}

// Post issues a POST with a JSON-encoded body (body may be nil).
func (c *Client) Post(ctx context.Context, path string, body any, out any, opts ...RequestOption) error {
	_, err := c.PostWithStatus(ctx, path, body, out, opts...)
	return err
}

// PostWithStatus is Post, additionally reporting the HTTP status code so
// callers that branch on it (activation prompts) can keep it in state.
func (c *Client) PostWithStatus(ctx context.Context, path string, body any, out any, opts ...RequestOption) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.doStatus(ctx, http.MethodPost, path, "application/json", reader, out, opts)
}

// PostMultipart issues a POST whose body was prepared by the form package;
// contentType carries the multipart boundary.
func (c *Client) PostMultipart(ctx context.Context, path, contentType string, body io.Reader, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, contentType, body, out, opts)
}

// PostMultipartWithStatus is PostMultipart, reporting the HTTP status code.
func (c *Client) PostMultipartWithStatus(ctx context.Context, path, contentType string, body io.Reader, out any, opts ...RequestOption) (int, error) {
	return c.doStatus(ctx, http.MethodPost, path, contentType, body, out, opts)
}

// Delete issues a DELETE and decodes the JSON response into out.
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, out, opts)
}

// DeleteWithStatus is Delete, reporting the HTTP status code.
func (c *Client) DeleteWithStatus(ctx context.Context, path string, out any, opts ...RequestOption) (int, error) {
	return c.doStatus(ctx, http.MethodDelete, path, "", nil, out, opts)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any, opts []RequestOption) error {
	_, err := c.doStatus(ctx, method, path, contentType, body, out, opts)
	return err
}

func (c *Client) doStatus(ctx context.Context, method, path, contentType string, body io.Reader, out any, opts []RequestOption) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := apierror.Decode(resp.StatusCode, data)

		// The interceptor fires unconditionally, even when the failing
		// call was non-critical, interrupting whatever was in progress.
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			c.logger.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("auth failure, tearing down session")
			if c.onAuthFailure != nil {
				c.onAuthFailure.HandleAuthFailure(c.currentPath())
			}
		}

		return resp.StatusCode, apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
