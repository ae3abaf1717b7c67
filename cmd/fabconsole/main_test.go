package main

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitabwire/fabconsole/internal/catalog"
	"github.com/pitabwire/fabconsole/internal/consoletest"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("BLOCKCHAIN_AUTH_TYPE", "noauth")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, prometheus.NewRegistry())
	return code, stdout.String(), stderr.String()
}

func TestOperations(t *testing.T) {
	code, out, _ := runCLI(t, "operations")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(catalog.IDs())+1)
	assert.True(t, strings.HasPrefix(lines[0], "OPERATION"))
	assert.Contains(t, out, "/ak/api/v3/components/{id}")
}

func TestCall(t *testing.T) {
	c := consoletest.New(t)
	c.OnOperation(catalog.GetComponent).RespondWith(http.StatusOK, map[string]any{"display_name": "Org1 CA"})

	code, out, errOut := runCLI(t, "--service-url", c.URL(),
		"call", "getComponent", "--param", "id=org1ca", "--param", "cache=skip",
		"--header", "X-Trace=1", "--camel")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, `"displayName": "Org1 CA"`)
	assert.Contains(t, out, `"display_name": "Org1 CA"`)

	rec := c.LastRequest(catalog.GetComponent)
	require.NotNil(t, rec)
	assert.Equal(t, "/ak/api/v3/components/org1ca", rec.Path)
	assert.Equal(t, "skip", rec.Query.Get("cache"))
	assert.Equal(t, "1", rec.Headers.Get("X-Trace"))
}

func TestCall_jsonFields(t *testing.T) {
	c := consoletest.New(t)

	code, _, errOut := runCLI(t, "--service-url", c.URL(),
		"call", "createCa", "--param", "displayName=org1ca",
		"--json", `configOverride={"ca":{"debug":true}}`, "--json", "replicas=2")
	require.Equal(t, 0, code, errOut)

	rec := c.LastRequest(catalog.CreateCa)
	require.NotNil(t, rec)
	assert.Equal(t, map[string]any{"ca": map[string]any{"debug": true}}, rec.Body["config_override"])
	assert.Equal(t, float64(2), rec.Body["replicas"])
}

func TestCall_errors(t *testing.T) {
	c := consoletest.New(t)

	code, _, errOut := runCLI(t, "--service-url", c.URL(), "call", "createCa")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "missing required parameters: displayName, configOverride")

	code, _, errOut = runCLI(t, "--service-url", c.URL(), "call", "getNothing")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown operation")

	code, _, errOut = runCLI(t, "--service-url", c.URL(), "call", "getHealth", "--param", "novalue")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "not name=value")

	assert.Zero(t, c.TotalRequests())

	code, _, errOut = runCLI(t, "call", "getHealth")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "service_url is required")
}

func TestHealth_httpError(t *testing.T) {
	c := consoletest.New(t)
	c.OnOperation(catalog.GetHealth).RespondWithError(http.StatusServiceUnavailable, "console is starting")

	code, _, errOut := runCLI(t, "--service-url", c.URL(), "health")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "HTTP 503: console is starting")
}

func TestVersions(t *testing.T) {
	c := consoletest.New(t)
	c.OnOperation(catalog.GetFabVersions).RespondWith(http.StatusOK, map[string]any{
		"versions": map[string]any{
			"peer": map[string]any{
				"2.2.10-1": map[string]any{"default": true},
				"2.5.4-1":  map[string]any{},
			},
		},
	})

	code, out, errOut := runCLI(t, "--service-url", c.URL(), "versions", "--type", "peer")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "2.5.4-1\n2.2.10-1 (default)\n", out)

	code, out, errOut = runCLI(t, "--service-url", c.URL(), "versions", "--constraint", "~2.2")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "2.2.10-1\n", out)
}

func TestVerifyOpenAPI_reportsDrift(t *testing.T) {
	c := consoletest.New(t)
	c.OnOperation(catalog.GetSwagger).RespondWithText(http.StatusOK, "text/plain", `openapi: 3.0.0
info:
  title: console
  version: "3"
paths: {}
`)

	code, out, errOut := runCLI(t, "--service-url", c.URL(), "verify-openapi")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "getComponent: missing: not in document")
	assert.Contains(t, errOut, "42 differences found")
}

func TestParseKeyValues(t *testing.T) {
	got, err := parseKeyValues([]string{"a=1", "b=x=y", "c="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "x=y", "c": ""}, got)

	_, err = parseKeyValues([]string{"=1"})
	assert.Error(t, err)

	got, err = parseKeyValues(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseFields_badJSON(t *testing.T) {
	_, err := parseFields(nil, []string{"replicas={"})
	assert.ErrorContains(t, err, "--json replicas")
}
