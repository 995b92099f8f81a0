package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/config"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/metrics"
)

const responseBodyReadLimit int64 = 2048

// Client talks to the storefront REST API that owns all catalog, cart,
// review, and auth state. Every request carries the caller's context so
// abandoned gateway requests cancel their upstream calls too.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *metrics.UpstreamMetrics
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithMetrics attaches request instrumentation.
func WithMetrics(m *metrics.UpstreamMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds the upstream API client from config.
func NewClient(cfg config.UpstreamConfig, opts ...Option) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "upstream base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := &Client{
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: timeout}
	}

	return client, nil
}

// Request describes one call against the upstream API. Resource names the
// logical collection being fetched ("menu", "cart", "reviews") and feeds
// both metrics labels and error messages.
type Request struct {
	Method   string
	Path     string
	Query    url.Values
	Body     any
	Token    string
	Resource string
}

// Do executes the request and returns the raw `data` payload from the
// upstream envelope. A 2xx response without a data field is treated as a
// failed fetch.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "upstream client not configured")
	}

	resource := req.Resource
	if resource == "" {
		resource = "resource"
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("marshal %s request", resource))
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.buildURL(req.Path, req.Query), body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("build %s request", resource))
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.observeFailure(resource)
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, fmt.Sprintf("failed to fetch %s", resource))
	}
	defer func() { _ = resp.Body.Close() }()

	c.observeRequest(resource, req.Method, resp.StatusCode, time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.observeFailure(resource)
		return nil, c.statusError(resource, resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observeFailure(resource)
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, fmt.Sprintf("read %s response", resource))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		// DELETE and logout style endpoints legitimately return nothing.
		return nil, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.observeFailure(resource)
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, fmt.Sprintf("decode %s response", resource))
	}
	if envelope.Data == nil {
		c.observeFailure(resource)
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, fmt.Sprintf("failed to fetch %s", resource))
	}

	return envelope.Data, nil
}

// Get fetches a resource and decodes the envelope data into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, token, resource string, out any) error {
	data, err := c.Do(ctx, Request{
		Method:   http.MethodGet,
		Path:     path,
		Query:    query,
		Token:    token,
		Resource: resource,
	})
	if err != nil {
		return err
	}
	return decodeInto(data, resource, out)
}

// Post sends body and decodes the envelope data into out when out is non-nil.
func (c *Client) Post(ctx context.Context, path string, body any, token, resource string, out any) error {
	data, err := c.Do(ctx, Request{
		Method:   http.MethodPost,
		Path:     path,
		Body:     body,
		Token:    token,
		Resource: resource,
	})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeInto(data, resource, out)
}

// Patch sends a partial update.
func (c *Client) Patch(ctx context.Context, path string, body any, token, resource string, out any) error {
	data, err := c.Do(ctx, Request{
		Method:   http.MethodPatch,
		Path:     path,
		Body:     body,
		Token:    token,
		Resource: resource,
	})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeInto(data, resource, out)
}

// Delete removes a resource upstream.
func (c *Client) Delete(ctx context.Context, path, token, resource string) error {
	_, err := c.Do(ctx, Request{
		Method:   http.MethodDelete,
		Path:     path,
		Token:    token,
		Resource: resource,
	})
	return err
}

func decodeInto(data json.RawMessage, resource string, out any) error {
	if out == nil {
		return nil
	}
	if data == nil {
		return pkgerrors.New(pkgerrors.CodeUpstream, fmt.Sprintf("failed to fetch %s", resource))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, fmt.Sprintf("decode %s payload", resource))
	}
	return nil
}

func (c *Client) statusError(resource string, resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	detail := strings.TrimSpace(string(msg))

	code := pkgerrors.CodeUpstream
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = pkgerrors.CodeValidation
	case http.StatusUnauthorized:
		code = pkgerrors.CodeUnauthorized
	case http.StatusForbidden:
		code = pkgerrors.CodeForbidden
	case http.StatusNotFound:
		code = pkgerrors.CodeNotFound
	case http.StatusConflict:
		code = pkgerrors.CodeConflict
	}

	return pkgerrors.Wrap(code, fmt.Errorf("status %d: %s", resp.StatusCode, detail), fmt.Sprintf("failed to fetch %s", resource))
}

func (c *Client) buildURL(path string, query url.Values) string {
	trimmed := strings.TrimLeft(path, "/")
	u := fmt.Sprintf("%s/%s", c.baseURL, trimmed)
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}
	return u
}

func (c *Client) observeRequest(resource, method string, status int, elapsed time.Duration) {
	if c.metrics != nil {
		c.metrics.ObserveRequest(resource, method, status, elapsed)
	}
}

func (c *Client) observeFailure(resource string) {
	if c.metrics != nil {
		c.metrics.IncFailure(resource)
	}
}
