// Package upstream implements the HTTP client for the gym API gateway. All
// dashboard data lives behind that gateway; this package owns the transport
// concerns (timeouts, bearer credentials, error classification) so the rest
// of the service only sees domain records and sentinel errors.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gimnasiojp/gym-dashboard/internal/api/metrics"
	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

type ctxKey struct{}

// WithToken returns a context carrying the session's upstream bearer token.
// Every request made with that context attaches it, the same way the SPA's
// request interceptor did.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(ctxKey{}).(string)
	return token
}

// Authorize sets the bearer header when the request's context carries an
// upstream token.
func Authorize(req *http.Request) {
	if token := tokenFrom(req.Context()); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// Config captures the settings for reaching the gym API gateway.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the shared transport under the per-service wrappers.
type Client struct {
	http    *http.Client
	baseURL string
	log     zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
		log:     log,
	}
}

// doJSON issues one request against the gateway. body and out may be nil.
// Transport failures surface as ErrUpstreamUnavailable; non-2xx statuses as
// *domain.UpstreamError carrying the gateway's message when it sent one.
// A 404 still matches ErrResourceNotFound under errors.Is, but stays a
// *domain.UpstreamError so the login resolver can treat it as a rejection.
func (c *Client) doJSON(ctx context.Context, service, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	Authorize(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(service, "unreachable").Inc()
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("gym api unreachable")
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(service, "unreachable").Inc()
		return fmt.Errorf("%w: read response: %v", domain.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		metrics.UpstreamRequestsTotal.WithLabelValues(service, "error").Inc()
		return &domain.UpstreamError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(service, "ok").Inc()
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// Ping checks the gateway's health endpoint. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	return c.doJSON(ctx, "health", http.MethodGet, "/api/users/health", nil, nil)
}

// errorMessage pulls the gateway's error envelope out of a failure body.
// Both {"message": ...} and {"error": ...} shapes occur in the wild.
func errorMessage(data []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}
