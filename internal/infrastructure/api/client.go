// Package api is the single point of outbound communication with the
// bdtuition backend: bearer header injection, global 401 handling, response
// envelope decoding and the error taxonomy mapping.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// TokenSource yields the current bearer token at call time. The session
// store implements it; the client never caches a token.
type TokenSource interface {
	Token() string
}

// Client wraps outbound requests against the versioned REST base path.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	deviceID       string
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithDeviceID attaches a per-install identifier to every request.
func WithDeviceID(id string) Option {
	return func(c *Client) { c.deviceID = id }
}

// NewClient builds a client. onUnauthorized runs synchronously whenever any
// call receives a 401, before the error is propagated; the session store's
// clear goes there. It may be nil.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, onUnauthorized func(), opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{Timeout: timeout},
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requestOptions carries per-call knobs.
type requestOptions struct {
	requireAuth bool
	query       url.Values
	contentType string
	rawBody     io.Reader
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

// RequireAuth rejects the call with domain.ErrNotAuthenticated before any
// network I/O when no token is held.
func RequireAuth() RequestOption {
	return func(o *requestOptions) { o.requireAuth = true }
}

// WithQuery attaches query parameters.
func WithQuery(q url.Values) RequestOption {
	return func(o *requestOptions) { o.query = q }
}

// withRawBody sends a prebuilt body (multipart) with its content type.
func withRawBody(body io.Reader, contentType string) RequestOption {
	return func(o *requestOptions) {
		o.rawBody = body
		o.contentType = contentType
	}
}

// Get issues a GET and decodes the 2xx response body into out when non-nil.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post issues a POST with a JSON body and decodes the 2xx response into out.
func (c *Client) Post(ctx context.Context, path string, body any, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

// PostMultipart issues a POST with a prebuilt multipart body.
func (c *Client) PostMultipart(ctx context.Context, path string, form *FormData, out any, opts ...RequestOption) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return fmt.Errorf("encoding multipart form: %w", err)
	}
	opts = append(opts, withRawBody(body, contentType))
	return c.do(ctx, http.MethodPost, path, nil, out, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any, opts ...RequestOption) error {
	options := requestOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	// Token is read at call time, not construction time. Absence is not an
	// error by itself; unauthenticated endpoints exist.
	token := ""
	if c.tokens != nil {
		token = c.tokens.Token()
	}
	if options.requireAuth && token == "" {
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrNotAuthenticated)
	}

	reqURL := c.baseURL + path
	if len(options.query) > 0 {
		reqURL += "?" + options.query.Encode()
	}

	var reqBody io.Reader
	contentType := "application/json"
	switch {
	case options.rawBody != nil:
		reqBody = options.rawBody
		contentType = options.contentType
	case body != nil:
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.deviceID != "" {
		req.Header.Set("X-Device-ID", c.deviceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: reading response: %w", method, path, domain.ErrNetwork)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Global behavior, not per-call opt-in: any expired or invalid token
		// clears the session before the caller sees the error.
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
		}
	}
	return nil
}

func classifyTransportError(method, path string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrTimeout)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrTimeout)
	}
	return fmt.Errorf("%s %s: %w: %v", method, path, domain.ErrNetwork, err)
}

// errorEnvelope is the backend's non-2xx body shape.
type errorEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func decodeAPIError(status int, body []byte) error {
	apiErr := &domain.APIError{StatusCode: status}
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Message = envelope.Message
		apiErr.Fields = envelope.Errors
	}
	return apiErr
}
