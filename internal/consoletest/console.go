// Package consoletest provides a scriptable in-process blockchain console
// for tests. Every catalog operation is routed; responses can be scripted
// per operation and every request is recorded for later assertion.
package consoletest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pitabwire/fabconsole/internal/catalog"
	"github.com/pitabwire/fabconsole/internal/observability"
)

// Console is a mock console server.
type Console struct {
	t      testing.TB
	server *httptest.Server

	mu         sync.RWMutex
	operations map[string]*operationConfig
	received   map[string][]*RecordedRequest
	unmatched  []*RecordedRequest
}

// RecordedRequest captures one request received by the console.
type RecordedRequest struct {
	Operation  string
	Method     string
	Path       string
	PathParams map[string]string
	Query      url.Values
	Headers    http.Header
	Body       map[string]any
	RawBody    []byte
	// TraceID is the trace the request arrived in, empty when none was propagated.
	TraceID    string
	ReceivedAt time.Time
}

type operationConfig struct {
	mu        sync.Mutex
	responses []*mockResponse
	current   int
}

type mockResponse struct {
	status      int
	body        any
	text        string
	contentType string
	delay       time.Duration
	connError   bool
}

// OperationMock configures the responses of one operation.
type OperationMock struct {
	console *Console
	opID    string
}

// New starts a console and registers its shutdown with t.Cleanup.
func New(t testing.TB) *Console {
	t.Helper()

	c := &Console{
		t:          t,
		operations: make(map[string]*operationConfig),
		received:   make(map[string][]*RecordedRequest),
	}

	r := chi.NewRouter()
	r.Use(observability.TracingMiddleware)
	for _, desc := range catalog.All() {
		r.MethodFunc(desc.Method, desc.PathTemplate, c.handleOperation(desc.ID))
	}
	r.NotFound(c.handleUnmatched)
	r.MethodNotAllowed(c.handleUnmatched)

	c.server = httptest.NewServer(r)
	t.Cleanup(c.server.Close)
	return c
}

// URL returns the base URL of the console.
func (c *Console) URL() string { return c.server.URL }

// Client returns an HTTP client that talks to the console.
func (c *Console) Client() *http.Client { return c.server.Client() }

// OnOperation returns a builder for the responses of operationID.
// Responses are served in order; the last one repeats.
func (c *Console) OnOperation(operationID string) *OperationMock {
	return &OperationMock{console: c, opID: operationID}
}

// RespondWith serves body as JSON with the given status.
func (om *OperationMock) RespondWith(status int, body any) *OperationMock {
	om.console.addResponse(om.opID, &mockResponse{status: status, body: body})
	return om
}

// RespondWithError serves the console's error envelope.
func (om *OperationMock) RespondWithError(status int, message string) *OperationMock {
	return om.RespondWith(status, map[string]any{
		"statusCode": status,
		"msgs":       []string{message},
	})
}

// RespondWithText serves a non-JSON body.
func (om *OperationMock) RespondWithText(status int, contentType, text string) *OperationMock {
	om.console.addResponse(om.opID, &mockResponse{status: status, text: text, contentType: contentType})
	return om
}

// RespondWithDelay serves body after delay.
func (om *OperationMock) RespondWithDelay(delay time.Duration, status int, body any) *OperationMock {
	om.console.addResponse(om.opID, &mockResponse{status: status, body: body, delay: delay})
	return om
}

// RespondWithConnectionError closes the connection without a response.
func (om *OperationMock) RespondWithConnectionError() *OperationMock {
	om.console.addResponse(om.opID, &mockResponse{connError: true})
	return om
}

func (c *Console) addResponse(opID string, resp *mockResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg, ok := c.operations[opID]
	if !ok {
		cfg = &operationConfig{}
		c.operations[opID] = cfg
	}
	cfg.responses = append(cfg.responses, resp)
}

func (c *Console) record(opID string, r *http.Request) *RecordedRequest {
	rec := &RecordedRequest{
		Operation:  opID,
		Method:     r.Method,
		Path:       r.URL.EscapedPath(),
		PathParams: make(map[string]string),
		Query:      r.URL.Query(),
		Headers:    r.Header.Clone(),
		TraceID:    observability.TraceIDFromContext(r.Context()),
		ReceivedAt: time.Now(),
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			rec.PathParams[key] = rctx.URLParams.Values[i]
		}
	}
	if r.Body != nil {
		body, _ := io.ReadAll(r.Body)
		rec.RawBody = body
		if len(body) > 0 {
			var parsed map[string]any
			if err := json.Unmarshal(body, &parsed); err == nil {
				rec.Body = parsed
			}
		}
	}
	return rec
}

func (c *Console) handleOperation(opID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := c.record(opID, r)
		c.mu.Lock()
		c.received[opID] = append(c.received[opID], rec)
		c.mu.Unlock()

		resp := c.nextResponse(opID)
		if resp == nil {
			WriteJSON(w, http.StatusOK, map[string]any{"status": "ok"})
			return
		}

		if resp.connError {
			conn, _, err := http.NewResponseController(w).Hijack()
			if err == nil {
				conn.Close()
			}
			return
		}

		if resp.delay > 0 {
			select {
			case <-time.After(resp.delay):
			case <-r.Context().Done():
				return
			}
		}

		if resp.contentType != "" {
			w.Header().Set("Content-Type", resp.contentType)
			w.WriteHeader(resp.status)
			io.WriteString(w, resp.text)
			return
		}
		WriteJSON(w, resp.status, resp.body)
	}
}

func (c *Console) handleUnmatched(w http.ResponseWriter, r *http.Request) {
	rec := c.record("", r)
	c.mu.Lock()
	c.unmatched = append(c.unmatched, rec)
	c.mu.Unlock()
	WriteJSON(w, http.StatusNotFound, map[string]any{
		"statusCode": http.StatusNotFound,
		"msgs":       []string{fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path)},
	})
}

func (c *Console) nextResponse(opID string) *mockResponse {
	c.mu.RLock()
	cfg, ok := c.operations[opID]
	c.mu.RUnlock()
	if !ok {
		return nil
	}

	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	if len(cfg.responses) == 0 {
		return nil
	}
	idx := cfg.current
	if idx >= len(cfg.responses) {
		idx = len(cfg.responses) - 1
	} else {
		cfg.current++
	}
	return cfg.responses[idx]
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// AssertCalled verifies that operationID was called expectedCount times.
func (c *Console) AssertCalled(t testing.TB, operationID string, expectedCount int) {
	t.Helper()
	c.mu.RLock()
	actual := len(c.received[operationID])
	c.mu.RUnlock()
	if actual != expectedCount {
		t.Errorf("console: operation %q called %d times, want %d", operationID, actual, expectedCount)
	}
}

// AssertNotCalled verifies that operationID was never called.
func (c *Console) AssertNotCalled(t testing.TB, operationID string) {
	t.Helper()
	c.AssertCalled(t, operationID, 0)
}

// LastRequest returns the last request for operationID, or nil.
func (c *Console) LastRequest(operationID string) *RecordedRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	reqs := c.received[operationID]
	if len(reqs) == 0 {
		return nil
	}
	return reqs[len(reqs)-1]
}

// AllRequests returns every request for operationID.
func (c *Console) AllRequests(operationID string) []*RecordedRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*RecordedRequest(nil), c.received[operationID]...)
}

// TotalRequests counts every request received, routed or not.
func (c *Console) TotalRequests() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := len(c.unmatched)
	for _, reqs := range c.received {
		n += len(reqs)
	}
	return n
}

// Unmatched returns requests that matched no catalog route.
func (c *Console) Unmatched() []*RecordedRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*RecordedRequest(nil), c.unmatched...)
}

// Reset clears recorded requests and scripted responses.
func (c *Console) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.operations = make(map[string]*operationConfig)
	c.received = make(map[string][]*RecordedRequest)
	c.unmatched = nil
}
