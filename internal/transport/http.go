// Package transport executes assembled console requests over HTTP.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/pitabwire/fabconsole/auth"
	"github.com/pitabwire/fabconsole/config"
	"github.com/pitabwire/fabconsole/internal/observability"
	"github.com/pitabwire/fabconsole/model"
)

// RequestIDHeader is set on every request that does not already carry one.
const RequestIDHeader = "X-Request-Id"

// HTTPTransport is the model.Transport used against a real console. It is
// safe for concurrent use.
type HTTPTransport struct {
	client   *http.Client
	auth     auth.Authenticator
	logger   *zap.Logger
	metrics  *observability.Metrics
	retry    config.RetryConfig
	breaker  *Breaker
	maxBytes int64
}

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithHTTPClient replaces the client built from the configuration.
func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTPTransport) {
		if c != nil {
			t.client = c
		}
	}
}

// WithAuthenticator sets the authenticator. The default sends no credentials.
func WithAuthenticator(a auth.Authenticator) Option {
	return func(t *HTTPTransport) {
		if a != nil {
			t.auth = a
		}
	}
}

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(l *zap.Logger) Option {
	return func(t *HTTPTransport) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMetrics records request metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(t *HTTPTransport) { t.metrics = m }
}

// New creates an HTTPTransport from cfg.
func New(cfg *config.Config, opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		client:   newHTTPClient(cfg),
		auth:     auth.NoAuth{},
		logger:   zap.NewNop(),
		retry:    cfg.Retry,
		maxBytes: cfg.MaxResponseBytes,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.maxBytes <= 0 {
		t.maxBytes = 32 << 20
	}
	t.breaker = NewBreaker(cfg.Breaker, func(s BreakerState) {
		t.metrics.SetCircuitBreakerState(float64(s))
		if s == BreakerOpen {
			t.logger.Warn("transport: circuit breaker opened")
		}
	})
	return t
}

func newHTTPClient(cfg *config.Config) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxConnsPerHost:     50,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	if cfg.DisableSSLVerification {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for dev consoles
	}
	return &http.Client{Timeout: cfg.Timeout, Transport: tr}
}

// Breaker returns the circuit breaker, or nil when it is disabled.
func (t *HTTPTransport) Breaker() *Breaker { return t.breaker }

// retryableStatus marks a response that may succeed on a later attempt.
type retryableStatus struct{ code int }

func (e *retryableStatus) Error() string { return "retryable status " + strconv.Itoa(e.code) }

// Execute sends req and returns the decoded response. Non-2xx responses
// are returned as *model.HTTPError.
func (t *HTTPTransport) Execute(ctx context.Context, req *model.RequestEnvelope) (*model.ResponseEnvelope, error) {
	start := time.Now()
	logger := observability.LoggerFrom(ctx, t.logger)

	var body []byte
	if req.Body != nil {
		var err error
		if body, err = json.Marshal(req.Body); err != nil {
			return nil, fmt.Errorf("transport: %s: marshal body: %w", req.Operation, err)
		}
	}

	headers := req.Headers.Clone()
	if headers == nil {
		headers = http.Header{}
	}
	if headers.Get(RequestIDHeader) == "" {
		headers.Set(RequestIDHeader, uuid.NewString())
	}
	if headers.Get("User-Agent") == "" {
		headers.Set("User-Agent", observability.UserAgent())
	}
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(observability.AttrRequestID.String(headers.Get(RequestIDHeader)))

	logger.Debug("console request",
		zap.String("method", req.Method),
		zap.String("url", req.FullURL()),
		zap.Any("headers", observability.RedactHeaders(headers)),
		zap.Any("body", observability.RedactBody(req.Body, nil)),
	)

	policy := t.backoffPolicy()
	var (
		resp *model.ResponseEnvelope
		err  error
	)
	for attempt := 0; ; attempt++ {
		resp, err = t.attempt(ctx, req, headers, body)
		if !t.shouldRetry(ctx, req.Method, resp, err) || attempt >= t.retry.MaxRetries {
			break
		}
		wait := policy.NextBackOff()
		if wait == backoff.Stop {
			break
		}
		t.metrics.RecordRetry(req.Operation)
		span.AddEvent("retry", trace.WithAttributes(observability.AttrAttempt.Int(attempt+1)))
		logger.Warn("transport: retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("max", t.retry.MaxRetries),
			zap.Duration("wait", wait),
			zap.NamedError("cause", retryCause(resp, err)),
		)
		select {
		case <-ctx.Done():
			t.metrics.RecordRequest(req.Operation, req.Method, 0, time.Since(start))
			return nil, fmt.Errorf("transport: %s: %w", req.Operation, ctx.Err())
		case <-time.After(wait):
		}
	}

	duration := time.Since(start)
	if err != nil {
		t.metrics.RecordRequest(req.Operation, req.Method, 0, duration)
		logger.Debug("console request failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, err
	}

	t.metrics.RecordRequest(req.Operation, req.Method, resp.StatusCode, duration)
	logger.Debug("console response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration),
		zap.Int("bytes", len(resp.RawBody)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    errorMessage(resp.Result, resp.StatusCode),
			Response:   resp,
		}
	}
	return resp, nil
}

func (t *HTTPTransport) backoffPolicy() backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if t.retry.InitialInterval > 0 {
		exp.InitialInterval = t.retry.InitialInterval
	}
	if t.retry.MaxInterval > 0 {
		exp.MaxInterval = t.retry.MaxInterval
	}
	exp.Multiplier = 2
	exp.MaxElapsedTime = 0
	exp.Reset()
	return exp
}

// shouldRetry allows retries for 429 on any method, and for network errors
// and 5xx on idempotent methods only. The breaker being open and context
// cancellation are final.
func (t *HTTPTransport) shouldRetry(ctx context.Context, method string, resp *model.ResponseEnvelope, err error) bool {
	if t.retry.MaxRetries <= 0 || ctx.Err() != nil {
		return false
	}
	if err != nil {
		return !errors.Is(err, ErrCircuitOpen) && !isDecodeError(err) && isIdempotent(method)
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return true
	case resp.StatusCode >= 500:
		return isIdempotent(method)
	}
	return false
}

func retryCause(resp *model.ResponseEnvelope, err error) error {
	if err != nil {
		return err
	}
	return &retryableStatus{code: resp.StatusCode}
}

// attempt performs one round trip. A returned error means no usable
// response was received.
func (t *HTTPTransport) attempt(ctx context.Context, req *model.RequestEnvelope, headers http.Header, body []byte) (*model.ResponseEnvelope, error) {
	if err := t.breaker.Allow(); err != nil {
		return nil, err
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	hreq, err := http.NewRequestWithContext(ctx, req.Method, req.FullURL(), rd)
	if err != nil {
		return nil, fmt.Errorf("transport: %s: build request: %w", req.Operation, err)
	}
	hreq.Header = headers.Clone()
	observability.InjectTraceHeaders(ctx, hreq.Header)
	if err := t.auth.Authenticate(hreq); err != nil {
		return nil, fmt.Errorf("transport: %s: authenticate: %w", req.Operation, err)
	}

	hresp, err := t.client.Do(hreq)
	if err != nil {
		t.breaker.RecordFailure()
		return nil, fmt.Errorf("transport: %s: request failed: %w", req.Operation, err)
	}
	defer hresp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(hresp.Body, t.maxBytes+1))
	if err != nil {
		t.breaker.RecordFailure()
		return nil, fmt.Errorf("transport: %s: read response: %w", req.Operation, err)
	}
	if int64(len(raw)) > t.maxBytes {
		return nil, fmt.Errorf("transport: %s: response exceeds %d bytes", req.Operation, t.maxBytes)
	}

	if hresp.StatusCode >= 500 {
		t.breaker.RecordFailure()
	} else {
		t.breaker.RecordSuccess()
	}

	resp := &model.ResponseEnvelope{
		StatusCode: hresp.StatusCode,
		Status:     hresp.Status,
		Headers:    hresp.Header,
		RawBody:    raw,
	}
	result, err := decodeBody(hresp.Header.Get("Content-Type"), raw)
	if err != nil {
		if hresp.StatusCode >= 200 && hresp.StatusCode <= 299 {
			return nil, fmt.Errorf("transport: %s: %w", req.Operation, err)
		}
		// Error bodies that are not valid JSON are kept as text.
		result = string(raw)
	}
	resp.Result = result
	return resp, nil
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodDelete,
		http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
