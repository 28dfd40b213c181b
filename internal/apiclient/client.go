// Package apiclient talks to the OctoFit REST API.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"example.com/octofit/internal/observability"
	"example.com/octofit/internal/platform/requestctx"
)

// maxDrainBytes bounds how much of an error body is read before closing.
const maxDrainBytes = 64 << 10

// Option configures optional behaviour for the Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger overrides the logger used to report failures.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// Client issues JSON requests against a fixed base address.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
	timeout    time.Duration
}

// New constructs a Client. The base address is concatenated with each
// request path as-is, so it should not end in a slash.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: log.New(log.Writer(), "[apiclient] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL reports the configured API address.
func (c *Client) BaseURL() string { return c.baseURL }

// RequestOption customises a single request.
type RequestOption func(*requestConfig)

type requestConfig struct {
	endpoint string
	header   http.Header
}

// WithHeader adds a header to the request. Caller headers override the
// JSON defaults.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		rc.header.Set(key, value)
	}
}

// WithEndpoint names the request for metrics and logs. Paths carrying IDs
// should use a stable template such as "users/{id}".
func WithEndpoint(name string) RequestOption {
	return func(rc *requestConfig) {
		rc.endpoint = name
	}
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Do issues a request and decodes the JSON response into out. A nil out
// discards the body. Failures are logged and returned unchanged in kind:
// *APIError for non-2xx statuses, *DecodeError for bodies that are not
// JSON, and the wrapped transport error otherwise.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, out any, opts ...RequestOption) error {
	rc := requestConfig{endpoint: "other", header: make(http.Header)}
	for _, opt := range opts {
		opt(&rc)
	}

	start := time.Now()
	err := c.do(ctx, method, path, body, out, rc)
	recordRequest(rc.endpoint, outcomeOf(err), time.Since(start))
	if err != nil {
		c.logger.Printf("API request failed: %s %s: %v", method, path, err)
		return err
	}
	observability.RecordUpstreamSuccess(rc.endpoint, time.Now())
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any, rc requestConfig) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id, ok := requestctx.RequestID(ctx); ok {
		req.Header.Set(requestctx.HeaderRequestID, id)
	}
	for key, values := range rc.header {
		req.Header[key] = values
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		return &APIError{StatusCode: resp.StatusCode, Status: statusText(resp), Path: path}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("read %s: %w", path, ctxErr)
		}
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// APIError represents a non-successful API response.
type APIError struct {
	StatusCode int
	Status     string
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d %s", e.StatusCode, e.Status)
}

// DecodeError reports a successful response whose body was not valid JSON
// for the expected shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StatusCode extracts the HTTP status from an *APIError anywhere in the
// chain, or returns 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func outcomeOf(err error) string {
	var (
		apiErr    *APIError
		decodeErr *DecodeError
	)
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &apiErr):
		return "http_error"
	case errors.As(err, &decodeErr):
		return "decode_error"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "transport_error"
	}
}
