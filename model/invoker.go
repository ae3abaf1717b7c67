package model

import "context"

// Transport executes an assembled request against the console. It is the
// only place network I/O happens; implementations own authentication,
// retries, timeouts and response decoding.
type Transport interface {
	Execute(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error)
}

// TransportFunc adapts a plain function to the Transport interface.
type TransportFunc func(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error)

// Execute calls f(ctx, req).
func (f TransportFunc) Execute(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error) {
	return f(ctx, req)
}

// CallParameters is the flat, caller-supplied input of a single call.
// Fields are keyed by caller field name (camelCase); Headers override any
// default header of the same name.
type CallParameters struct {
	Fields  map[string]any    `json:"fields,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Params is a shorthand for CallParameters{Fields: fields}.
func Params(fields map[string]any) CallParameters {
	return CallParameters{Fields: fields}
}

// WithHeader returns a copy of p with the header set.
func (p CallParameters) WithHeader(name, value string) CallParameters {
	h := make(map[string]string, len(p.Headers)+1)
	for k, v := range p.Headers {
		h[k] = v
	}
	h[name] = value
	p.Headers = h
	return p
}
