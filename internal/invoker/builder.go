// Package invoker turns an operation descriptor plus caller parameters into
// a concrete request and hands it to a transport.
package invoker

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/pitabwire/fabconsole/model"
)

// AnalyticsHeader identifies the calling operation to the console.
const AnalyticsHeader = "X-IBMCloud-SDK-Analytics"

const defaultAccept = "application/json"

// Builder assembles request envelopes. It is immutable after construction
// and safe for concurrent use.
type Builder struct {
	baseURL        string
	defaultHeaders map[string]string
}

// NewBuilder returns a Builder for the given service URL. defaultHeaders
// are applied to every request with the lowest precedence.
func NewBuilder(serviceURL string, defaultHeaders map[string]string) *Builder {
	h := make(map[string]string, len(defaultHeaders))
	for k, v := range defaultHeaders {
		h[k] = v
	}
	return &Builder{
		baseURL:        strings.TrimRight(serviceURL, "/"),
		defaultHeaders: h,
	}
}

// Build validates params against desc and returns the assembled request.
// It performs no I/O. When required fields are missing it returns a
// *model.MissingParameterError naming all of them.
func (b *Builder) Build(desc model.OperationDescriptor, params model.CallParameters) (*model.RequestEnvelope, error) {
	if missing := missingRequired(desc, params.Fields); len(missing) > 0 {
		return nil, &model.MissingParameterError{Operation: desc.ID, Fields: missing}
	}

	path, err := resolvePath(desc, params.Fields)
	if err != nil {
		return nil, err
	}

	return &model.RequestEnvelope{
		Operation: desc.ID,
		Method:    desc.Method,
		URL:       b.baseURL + path,
		Path:      path,
		Query:     buildQuery(desc, params.Fields),
		Body:      buildBody(desc, params.Fields),
		Headers:   b.buildHeaders(desc, params.Headers),
	}, nil
}

// missingRequired returns the required names with no usable value, in
// descriptor order.
func missingRequired(desc model.OperationDescriptor, fields map[string]any) []string {
	var missing []string
	for _, name := range desc.Required {
		v, ok := fields[name]
		if !ok || isMissing(v) {
			missing = append(missing, name)
		}
	}
	return missing
}

// isMissing reports whether v counts as absent: nil, a nil pointer,
// interface, map, slice, func or chan, or an empty string (also behind a
// pointer). Zero numbers and false are present.
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.String:
		return rv.Len() == 0
	}
	return false
}

// isEmptyList reports whether v is a slice or array with no elements.
func isEmptyList(v any) bool {
	rv := reflect.ValueOf(deref(v))
	return (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Len() == 0
}

// deref follows pointers so that *string and string format alike.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

func resolvePath(desc model.OperationDescriptor, fields map[string]any) (string, error) {
	path := desc.PathTemplate
	for _, f := range desc.FieldsIn(model.InPath) {
		v, ok := fields[f.Name]
		if !ok || isMissing(v) || isEmptyList(v) {
			return "", &model.MissingParameterError{Operation: desc.ID, Fields: []string{f.Name}}
		}
		path = strings.ReplaceAll(path, "{"+f.WireName+"}", url.PathEscape(formatValue(v)))
	}
	return path, nil
}

func buildQuery(desc model.OperationDescriptor, fields map[string]any) url.Values {
	var q url.Values
	for _, f := range desc.FieldsIn(model.InQuery) {
		v, ok := fields[f.Name]
		if !ok || isMissing(v) || isEmptyList(v) {
			continue
		}
		if q == nil {
			q = url.Values{}
		}
		q.Set(f.WireName, formatValue(v))
	}
	return q
}

// buildBody returns nil when no body field has a value. Values are passed
// through untouched apart from pointer dereferencing.
func buildBody(desc model.OperationDescriptor, fields map[string]any) map[string]any {
	var body map[string]any
	for _, f := range desc.FieldsIn(model.InBody) {
		v, ok := fields[f.Name]
		if !ok || isMissing(v) {
			continue
		}
		if body == nil {
			body = map[string]any{}
		}
		body[f.WireName] = deref(v)
	}
	return body
}

// formatValue renders a path or query value. Slices are comma-joined.
func formatValue(v any) string {
	v = deref(v)
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(t, ",")
	case fmt.Stringer:
		return t.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = formatValue(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

// buildHeaders applies, in increasing precedence: configured defaults, the
// analytics header, Accept and Content-Type, then caller headers.
func (b *Builder) buildHeaders(desc model.OperationDescriptor, caller map[string]string) http.Header {
	h := make(http.Header)

	for k, v := range b.defaultHeaders {
		h.Set(sanitizeHeader(k), sanitizeHeader(v))
	}

	h.Set(AnalyticsHeader, "service_name=blockchain;service_version=V3;operation_id="+desc.ID)

	accept := desc.Accept
	if accept == "" {
		accept = defaultAccept
	}
	h.Set("Accept", accept)
	switch desc.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		h.Set("Content-Type", "application/json")
	}

	for k, v := range caller {
		h.Set(sanitizeHeader(k), sanitizeHeader(v))
	}

	return h
}

// sanitizeHeader strips newlines and carriage returns to prevent header injection.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return s
}
