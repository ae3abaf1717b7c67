package model

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/mitchellh/mapstructure"
)

// RequestEnvelope is the fully assembled request for one call. It only
// lives for the duration of a dispatch.
type RequestEnvelope struct {
	Operation string
	Method    string
	// URL is the service URL joined with Path, without the query string.
	URL     string
	Path    string
	Query   url.Values
	Body    map[string]any
	Headers http.Header
}

// FullURL returns URL with the encoded query string appended.
func (r *RequestEnvelope) FullURL() string {
	if len(r.Query) == 0 {
		return r.URL
	}
	return r.URL + "?" + r.Query.Encode()
}

// ResponseEnvelope is the normalized result of a call.
type ResponseEnvelope struct {
	StatusCode int         `json:"status_code"`
	Status     string      `json:"status"`
	Headers    http.Header `json:"headers,omitempty"`
	// Result is the decoded JSON body, or the body text for non-JSON media types.
	Result  any    `json:"result,omitempty"`
	RawBody []byte `json:"-"`
}

// Decode maps Result into out, a pointer to a struct or map. Struct
// fields are matched by their json tag.
func (r *ResponseEnvelope) Decode(out any) error {
	if r == nil || r.Result == nil {
		return fmt.Errorf("model: response has no result to decode")
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("model: build decoder: %w", err)
	}
	if err := dec.Decode(r.Result); err != nil {
		return fmt.Errorf("model: decode result: %w", err)
	}
	return nil
}

// ResultMap returns Result as a JSON object, or nil when it is not one.
func (r *ResponseEnvelope) ResultMap() map[string]any {
	if r == nil {
		return nil
	}
	m, _ := r.Result.(map[string]any)
	return m
}
