// Package api is a client for the hotel REST API. The API owns all bookings,
// rooms, users and reports; this package only moves JSON back and forth.
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

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName       = "github.com/vangoframework/hotelier/internal/api"
	defaultUserAgent = "hotelier/1.0"
	requestIDHeader  = "X-Request-ID"
)

// Observer is notified after every API call.
type Observer interface {
	ObserveAPICall(operation string, status int, elapsed time.Duration)
}

// APIError is returned for non-2xx responses.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api %s: status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("api %s: %s (status %d)", e.Operation, e.Message, e.StatusCode)
}

// StatusCode returns the HTTP status of an *APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether the API rejected the caller's credentials.
func IsUnauthorized(err error) bool {
	code := StatusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// IsNotFound reports whether the API answered 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// Client talks to the hotel API. A Client is safe for concurrent use;
// WithToken returns a copy bound to one user's access token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	token      string
	tracer     trace.Tracer
	observer   Observer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithObserver registers a call observer, typically the metrics recorder.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithTracer sets the tracer used for client spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// New creates a client for the API at baseURL.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  defaultUserAgent,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// WithToken returns a copy of the client that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// send performs one request. Non-2xx responses are turned into *APIError and
// the body is closed; otherwise the caller owns resp.Body.
func (c *Client) send(ctx context.Context, op, method, path string, query url.Values, in any) (resp *http.Response, err error) {
	ctx, span := c.tracer.Start(ctx, "api."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", path),
		))
	start := time.Now()
	defer func() {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		} else if code := StatusCode(err); code != 0 {
			status = code
		}
		span.SetAttributes(attribute.Int("http.status_code", status))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if c.observer != nil {
			c.observer.ObserveAPICall(op, status, time.Since(start))
		}
	}()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", op, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	requestID := middleware.GetReqID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(requestIDHeader, requestID)

	resp, err = c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api %s: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		apiErr := &APIError{Operation: op, StatusCode: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &msg) == nil {
			apiErr.Message = msg.Message
		}
		return nil, apiErr
	}

	return resp, nil
}

// do performs a request and decodes a JSON response into out (if non-nil).
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, in, out any) error {
	resp, err := c.send(ctx, op, method, path, query, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

// Health checks that the API answers at all.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.send(ctx, "health", http.MethodGet, "/", nil, nil)
	if err != nil {
		// A 4xx still means the API is serving.
		if code := StatusCode(err); code >= 400 && code < 500 {
			return nil
		}
		return err
	}
	resp.Body.Close()
	return nil
}
