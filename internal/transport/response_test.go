package transport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name   string
		result any
		status int
		want   string
	}{
		{"error string", map[string]any{"error": "component not found"}, 404, "component not found"},
		{"error object", map[string]any{"error": map[string]any{"message": "bad msp"}}, 400, "bad msp"},
		{"message", map[string]any{"message": "rate limited", "statusCode": 429}, 429, "rate limited"},
		{"errorMessage", map[string]any{"errorMessage": "no such tag"}, 404, "no such tag"},
		{"msgs", map[string]any{"msgs": []any{"invalid zone", "other"}}, 400, "invalid zone"},
		{"errors list", map[string]any{"errors": []any{map[string]any{"message": "first"}}}, 400, "first"},
		{"errors reason", map[string]any{"errors": []any{map[string]any{"reason": "quota"}}}, 403, "quota"},
		{"empty object", map[string]any{}, 500, http.StatusText(500)},
		{"text body", "upstream timed out\n", 504, "upstream timed out"},
		{"nil", nil, 502, http.StatusText(502)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.result, tt.status))
		})
	}
}

func TestDecodeBody(t *testing.T) {
	v, err := decodeBody("application/json; charset=utf-8", []byte(`{"status":"ok"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"status": "ok"}, v)

	v, err = decodeBody("text/plain", []byte("openapi: 3.0.0"))
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.0", v)

	v, err = decodeBody("", []byte(`[1,2]`))
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2)}, v)

	v, err = decodeBody("application/json", nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = decodeBody("application/problem+json", []byte(`{broken`))
	assert.True(t, isDecodeError(err), "malformed JSON error = %v", err)
}
