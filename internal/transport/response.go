package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// errDecode wraps malformed JSON bodies.
var errDecode = errors.New("decode response")

func isDecodeError(err error) bool { return errors.Is(err, errDecode) }

// decodeBody turns a response body into a result. JSON media types (and
// bodies without a content type that parse as JSON) decode into generic
// values; everything else is returned as text.
func decodeBody(contentType string, raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	if contentType == "" {
		var v any
		if json.Unmarshal(raw, &v) == nil {
			return v, nil
		}
		return string(raw), nil
	}

	if !isJSONMediaType(contentType) {
		return string(raw), nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", errDecode, err)
	}
	return v, nil
}

func isJSONMediaType(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// errorMessage extracts the most specific message from a console error
// body, falling back to the status text.
func errorMessage(result any, status int) string {
	switch v := result.(type) {
	case map[string]any:
		for _, key := range []string{"error", "message", "errorMessage"} {
			if s := messageOf(v[key]); s != "" {
				return s
			}
		}
		for _, key := range []string{"msgs", "errors"} {
			if list, ok := v[key].([]any); ok && len(list) > 0 {
				if s := messageOf(list[0]); s != "" {
					return s
				}
			}
		}
	case string:
		if s := strings.TrimSpace(v); s != "" && len(s) <= 512 {
			return s
		}
	}
	return http.StatusText(status)
}

// messageOf returns v when it is a non-empty string, or its "message" or
// "reason" member when it is an object.
func messageOf(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		for _, key := range []string{"message", "reason"} {
			if s, ok := t[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
