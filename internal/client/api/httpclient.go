package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/proaim/proaimctl/internal/common"
)

// HTTPClient is the Client implementation over net/http.
//
// The CLI is single-threaded, so the token field needs no locking; writes
// happen only through SetToken/ClearToken between requests.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	token   string
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:8080/api"). timeout bounds each request;
// zero means no client-side deadline.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) { c.token = token }

func (c *HTTPClient) ClearToken() { c.token = "" }

func (c *HTTPClient) Token() string { return c.token }

// envelope is the backend's uniform response wrapper:
// {success, message, data, timestamp}.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do performs one request/response exchange. On 2xx it decodes the
// envelope's data field (or, for endpoints without an envelope, the whole
// body) into out. On failure it returns a sentinel-wrapped error carrying
// the server message when one was present.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var env envelope
	// A non-JSON body (proxy error page etc.) leaves env zero-valued.
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapError(resp.StatusCode, env.Message)
	}

	if out == nil {
		return nil
	}
	data := env.Data
	if data == nil {
		// Some endpoints return the payload bare, without the envelope.
		data = raw
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// mapError converts a non-2xx status plus the optional server message into
// a sentinel-wrapped Error.
func (c *HTTPClient) mapError(status int, message string) error {
	var sentinel error
	switch status {
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	default:
		sentinel = ErrRequestFailed
	}
	if message == "" {
		return fmt.Errorf("%w: status %d", sentinel, status)
	}
	return &Error{Message: message, Err: sentinel}
}
