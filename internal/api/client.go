// Package api wraps the Plane REST API: a thin resty client that attaches
// the API key header and per-request timeout, and maps response statuses to
// error categories. Every failure is surfaced immediately; there are no
// retries and no caching.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/planehq/plane-cli/internal/logging"
	"github.com/planehq/plane-cli/internal/settings"
	"github.com/planehq/plane-cli/internal/spinner"
)

// versionPath is appended to the configured host for every request.
const versionPath = "/api/v1"

// Options controls the cosmetic behavior of the client.
type Options struct {
	// ShowProgress enables the request spinner. It only takes effect when
	// stderr is a terminal, so machine-readable output stays clean.
	ShowProgress bool

	// Debug wires resty's request/response tracing to Logger.
	Debug  bool
	Logger zerolog.Logger
}

// Client issues authenticated requests against a Plane deployment.
type Client struct {
	http     *resty.Client
	progress bool
}

// New builds a Client from resolved settings. It fails fast when no API key
// was resolved, since no Plane endpoint can be called without one.
func New(s *settings.Settings, opts Options) (*Client, error) {
	if s.APIKey == nil || *s.APIKey == "" {
		return nil, errors.New(
			`API key is required: set it via --api-key, PLANE_CLI_API_KEY, a config file, or "plane auth login"`)
	}

	http := resty.New().
		SetBaseURL(strings.TrimRight(s.BaseURL, "/") + versionPath).
		SetTimeout(time.Duration(s.Timeout) * time.Second).
		SetHeader("X-API-Key", *s.APIKey)

	if opts.Debug {
		http.SetLogger(logging.Resty(opts.Logger))
		http.SetDebug(true)
	}

	return &Client{http: http, progress: opts.ShowProgress}, nil
}

// Get fetches path relative to the API base, with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	stop := c.startProgress("Fetching")
	defer stop()

	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	return handleResponse(resp)
}

// Post creates a resource; body is marshaled as JSON.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	stop := c.startProgress("Creating")
	defer stop()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	return handleResponse(resp)
}

// Patch applies a partial update; body is marshaled as JSON.
func (c *Client) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	stop := c.startProgress("Updating")
	defer stop()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Patch(path)
	if err != nil {
		return nil, fmt.Errorf("PATCH %s: %w", path, err)
	}
	return handleResponse(resp)
}

// Delete removes a resource.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	stop := c.startProgress("Deleting")
	defer stop()

	resp, err := c.http.R().SetContext(ctx).Delete(path)
	if err != nil {
		return nil, fmt.Errorf("DELETE %s: %w", path, err)
	}
	return handleResponse(resp)
}

func handleResponse(resp *resty.Response) (json.RawMessage, error) {
	if !resp.IsSuccess() {
		return nil, mapStatusError(resp)
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("failed to parse response JSON (status %d)", resp.StatusCode())
	}
	return json.RawMessage(body), nil
}

// startProgress shows a spinner on stderr while a request is outstanding
// and returns the function that clears it.
func (c *Client) startProgress(message string) func() {
	if !c.progress || !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}
	s := spinner.Start(os.Stderr, message)
	return func() { _ = s.Stop() }
}
