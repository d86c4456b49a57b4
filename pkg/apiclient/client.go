// Package apiclient is the typed HTTP client for the MCP instance backend.
//
// It covers the three operations the console needs (list, create, delete)
// and normalizes every failure into one of TransportError, BackendError or
// DecodeError. Nothing is retried or cached: each call is a single round
// trip whose outcome goes straight back to the caller.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/getmockd/mcpconsole/pkg/instance"
	"github.com/getmockd/mcpconsole/pkg/logging"
)

// collectionPath is the backend's instance collection.
const collectionPath = "/mcp"

// Client is an HTTP client for the instance backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string // optional bearer token
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithToken sets a bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the collection URL, for diagnostics.
func (c *Client) Endpoint() string {
	return c.baseURL + collectionPath
}

// List returns every instance the backend knows about, in backend order.
func (c *Client) List(ctx context.Context) ([]instance.Instance, error) {
	resp, err := c.get(ctx, collectionPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, c.parseError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: http.MethodGet, URL: c.Endpoint(), Err: err}
	}

	var list []instance.Instance
	if err := decodeChecked(body, true, "instance list", &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []instance.Instance{}
	}
	c.log.Debug("listed instances", "count", len(list))
	return list, nil
}

// Create asks the backend to provision an instance from draft and returns
// the backend's canonical copy. The draft is sent as-is; validating it is
// the caller's job.
func (c *Client) Create(ctx context.Context, draft instance.Draft) (*instance.Instance, error) {
	if draft.PermittedCategories == nil {
		draft.PermittedCategories = []string{}
	}
	resp, err := c.post(ctx, collectionPath, draft)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return nil, c.parseError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: http.MethodPost, URL: c.Endpoint(), Err: err}
	}

	var created instance.Instance
	if err := decodeChecked(body, false, "created instance", &created); err != nil {
		return nil, err
	}
	c.log.Info("created instance", "id", created.ID, "name", created.Name)
	return &created, nil
}

// Delete removes the instance with the given id. Whether the id exists is
// the backend's call; its error is returned verbatim.
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.delete(ctx, collectionPath+"/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		return c.parseError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	c.log.Info("deleted instance", "id", id)
	return nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &TransportError{Method: http.MethodGet, URL: c.baseURL + path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, &TransportError{Method: http.MethodPost, URL: c.baseURL + path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req)
}

func (c *Client) delete(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return nil, &TransportError{Method: http.MethodDelete, URL: c.baseURL + path, Err: err}
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}
	c.log.Debug("request completed",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start))
	return resp, nil
}

// parseError turns a non-2xx response into a *BackendError carrying the
// raw body text.
func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &BackendError{
		Status: resp.StatusCode,
		Body:   string(body),
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
