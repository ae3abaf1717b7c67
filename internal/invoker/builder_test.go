package invoker

import (
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitabwire/fabconsole/internal/catalog"
	"github.com/pitabwire/fabconsole/model"
)

const testServiceURL = "https://console.example.com:8443/"

func newTestBuilder() *Builder {
	return NewBuilder(testServiceURL, map[string]string{
		"X-Console-Tenant": "org1",
		"Accept":           "application/xml",
	})
}

func requiredOnly(desc model.OperationDescriptor) map[string]any {
	fields := map[string]any{}
	for _, name := range desc.Required {
		fields[name] = "v-" + name
	}
	return fields
}

func TestBuild_missingAllRequired(t *testing.T) {
	b := newTestBuilder()
	for _, desc := range catalog.All() {
		if len(desc.Required) == 0 {
			continue
		}
		t.Run(desc.ID, func(t *testing.T) {
			req, err := b.Build(desc, model.CallParameters{})
			require.Error(t, err)
			assert.Nil(t, req)
			assert.True(t, errors.Is(err, model.ErrMissingParameter))

			var mpe *model.MissingParameterError
			require.True(t, errors.As(err, &mpe))
			assert.Equal(t, desc.ID, mpe.Operation)
			assert.Equal(t, desc.Required, mpe.Fields)
		})
	}
}

func TestBuild_requiredOnly_hasNoOptionalKeys(t *testing.T) {
	b := newTestBuilder()
	for _, desc := range catalog.All() {
		t.Run(desc.ID, func(t *testing.T) {
			req, err := b.Build(desc, model.Params(requiredOnly(desc)))
			require.NoError(t, err)

			assert.NotContains(t, req.Path, "{")
			wantBody := 0
			wantQuery := 0
			for _, name := range desc.Required {
				f, _ := desc.Field(name)
				switch f.In {
				case model.InBody:
					wantBody++
					assert.Equal(t, "v-"+name, req.Body[f.WireName])
				case model.InQuery:
					wantQuery++
					assert.Equal(t, "v-"+name, req.Query.Get(f.WireName))
				}
			}
			assert.Len(t, req.Body, wantBody)
			assert.Len(t, req.Query, wantQuery)
			if wantBody == 0 {
				assert.Nil(t, req.Body)
			}
		})
	}
}

func TestBuild_someMissing_listsOnlyThose(t *testing.T) {
	desc := catalog.MustLookup(catalog.CreateOrderer)
	_, err := newTestBuilder().Build(desc, model.Params(map[string]any{
		"mspId":  "org1msp",
		"crypto": map[string]any{},
		"zone":   "dal10",
	}))

	var mpe *model.MissingParameterError
	require.ErrorAs(t, err, &mpe)
	assert.Equal(t, []string{"ordererType", "displayName"}, mpe.Fields)
	assert.EqualError(t, err, "createOrderer: missing required parameters: ordererType, displayName")
}

func TestBuild_missingValueRule(t *testing.T) {
	desc := catalog.MustLookup(catalog.GetComponent)
	var nilPtr *string
	empty := ""

	for name, v := range map[string]any{
		"nil":              nil,
		"empty string":     "",
		"nil pointer":      nilPtr,
		"pointer to empty": &empty,
	} {
		_, err := newTestBuilder().Build(desc, model.Params(map[string]any{"id": v}))
		assert.ErrorIs(t, err, model.ErrMissingParameter, name)
	}

	desc = catalog.MustLookup(catalog.CaAction)
	req, err := newTestBuilder().Build(desc, model.Params(map[string]any{"id": 0, "restart": false}))
	require.NoError(t, err)
	assert.Equal(t, "/ak/api/v3/kubernetes/components/fabric-ca/0/actions", req.Path)
	assert.Equal(t, map[string]any{"restart": false}, req.Body)
}

func TestBuild_typedNilIsMissing(t *testing.T) {
	desc := catalog.MustLookup(catalog.CreateCa)

	_, err := newTestBuilder().Build(desc, model.Params(map[string]any{
		"displayName":    "org1ca",
		"configOverride": map[string]any(nil),
	}))
	var mpe *model.MissingParameterError
	require.ErrorAs(t, err, &mpe)
	assert.Equal(t, []string{"configOverride"}, mpe.Fields)

	req, err := newTestBuilder().Build(desc, model.Params(map[string]any{
		"displayName":    "org1ca",
		"configOverride": map[string]any{},
		"tags":           []string(nil),
		"resources":      map[string]any(nil),
	}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"display_name":    "org1ca",
		"config_override": map[string]any{},
	}, req.Body)
}

func TestBuild_pathResolution(t *testing.T) {
	req, err := newTestBuilder().Build(catalog.MustLookup(catalog.GetComponent),
		model.Params(map[string]any{"id": "abc123"}))
	require.NoError(t, err)

	assert.Equal(t, "/ak/api/v3/components/abc123", req.Path)
	assert.Equal(t, "https://console.example.com:8443/ak/api/v3/components/abc123", req.URL)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, catalog.GetComponent, req.Operation)
}

func TestBuild_pathValuesAreEscaped(t *testing.T) {
	req, err := newTestBuilder().Build(catalog.MustLookup(catalog.GetComponentsByTag),
		model.Params(map[string]any{"tag": "team a/b"}))
	require.NoError(t, err)
	assert.Equal(t, "/ak/api/v3/components/tags/team%20a%2Fb", req.Path)
}

func TestBuild_getComponentsByTag(t *testing.T) {
	req, err := newTestBuilder().Build(catalog.MustLookup(catalog.GetComponentsByTag),
		model.Params(map[string]any{"tag": "prod"}))
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/ak/api/v3/components/tags/prod", req.Path)
	assert.Empty(t, req.Query)
	assert.Nil(t, req.Body)
	assert.Empty(t, req.Headers.Get("Content-Type"))
}

func TestBuild_queryFormatting(t *testing.T) {
	cache := model.CacheSkip
	req, err := newTestBuilder().Build(catalog.MustLookup(catalog.ListComponents),
		model.Params(map[string]any{
			"deploymentAttrs": model.AttrsIncluded,
			"cache":           &cache,
			"parsedCerts":     "",
			"unknownField":    "ignored",
		}))
	require.NoError(t, err)

	assert.Equal(t, "included", req.Query.Get("deployment_attrs"))
	assert.Equal(t, "skip", req.Query.Get("cache"))
	assert.NotContains(t, req.Query, "parsed_certs")
	assert.NotContains(t, req.Query, "unknownField")
	assert.Len(t, req.Query, 2)

	req, err = newTestBuilder().Build(catalog.MustLookup(catalog.ListNotifications),
		model.Params(map[string]any{"limit": 25, "skip": 0, "componentId": []string{"peer1", "peer2"}}))
	require.NoError(t, err)
	assert.Equal(t, "25", req.Query.Get("limit"))
	assert.Equal(t, "0", req.Query.Get("skip"))
	assert.Equal(t, "peer1,peer2", req.Query.Get("component_id"))

	req, err = newTestBuilder().Build(catalog.MustLookup(catalog.ListNotifications),
		model.Params(map[string]any{"componentId": []string{}, "limit": 5}))
	require.NoError(t, err)
	assert.NotContains(t, req.Query, "component_id")
	assert.Equal(t, "limit=5", req.Query.Encode())
}

func TestBuild_createCaBody(t *testing.T) {
	override := map[string]any{"ca": map[string]any{"registry": map[string]any{"maxenrollments": -1}}}
	req, err := newTestBuilder().Build(catalog.MustLookup(catalog.CreateCa),
		model.Params(map[string]any{
			"displayName":    "My CA",
			"configOverride": override,
		}))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/ak/api/v3/kubernetes/components/fabric-ca", req.Path)
	assert.Equal(t, map[string]any{
		"display_name":    "My CA",
		"config_override": override,
	}, req.Body)
	assert.Equal(t, "application/json", req.Headers.Get("Content-Type"))
}

func TestBuild_headerPrecedence(t *testing.T) {
	desc := catalog.MustLookup(catalog.GetSettings)

	req, err := newTestBuilder().Build(desc, model.CallParameters{})
	require.NoError(t, err)
	assert.Equal(t, "org1", req.Headers.Get("X-Console-Tenant"))
	// The operation default beats the configured default.
	assert.Equal(t, "application/json", req.Headers.Get("Accept"))
	assert.Equal(t, "service_name=blockchain;service_version=V3;operation_id=getSettings",
		req.Headers.Get(AnalyticsHeader))
	assert.Empty(t, req.Headers.Get("Content-Type"))

	req, err = newTestBuilder().Build(desc, model.CallParameters{}.
		WithHeader("Accept", "text/plain").
		WithHeader("X-Console-Tenant", "org2").
		WithHeader(AnalyticsHeader, "custom"))
	require.NoError(t, err)
	assert.Equal(t, "text/plain", req.Headers.Get("Accept"))
	assert.Equal(t, "org2", req.Headers.Get("X-Console-Tenant"))
	assert.Equal(t, "custom", req.Headers.Get(AnalyticsHeader))
}

func TestBuild_descriptorAccept(t *testing.T) {
	req, err := newTestBuilder().Build(catalog.MustLookup(catalog.GetSwagger), model.CallParameters{})
	require.NoError(t, err)
	assert.Equal(t, "text/plain", req.Headers.Get("Accept"))
}

func TestBuild_headersAreSanitized(t *testing.T) {
	req, err := newTestBuilder().Build(catalog.MustLookup(catalog.GetHealth),
		model.CallParameters{}.WithHeader("X-Note", "a\r\nInjected: yes"))
	require.NoError(t, err)
	assert.Equal(t, "aInjected: yes", req.Headers.Get("X-Note"))
	assert.Empty(t, req.Headers.Get("Injected"))
}

func TestBuild_isDeterministic(t *testing.T) {
	desc := catalog.MustLookup(catalog.CreatePeer)
	params := model.CallParameters{
		Fields: map[string]any{
			"mspId":       "org1msp",
			"displayName": "Org1 Peer",
			"crypto":      map[string]any{"enrollment": map[string]any{"component": "x"}},
			"stateDb":     model.StateDBCouch,
			"tags":        []string{"a", "b"},
		},
		Headers: map[string]string{"X-Trace": "1"},
	}

	b := newTestBuilder()
	first, err := b.Build(desc, params)
	require.NoError(t, err)
	second, err := b.Build(desc, params)
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first, second), "two builds differ:\n%+v\n%+v", first, second)
}

func TestBuild_getPostmanAuthTypeInQuery(t *testing.T) {
	req, err := newTestBuilder().Build(catalog.MustLookup(catalog.GetPostman),
		model.Params(map[string]any{"authType": model.PostmanAPIKey, "apiKey": "k"}))
	require.NoError(t, err)
	assert.Equal(t, "api_key", req.Query.Get("auth_type"))
	assert.Equal(t, "k", req.Query.Get("api_key"))
	assert.Nil(t, req.Body)
}

func TestNewBuilder_copiesDefaults(t *testing.T) {
	defaults := map[string]string{"X-A": "1"}
	b := NewBuilder("https://c.example.com", defaults)
	defaults["X-A"] = "2"

	req, err := b.Build(catalog.MustLookup(catalog.GetHealth), model.CallParameters{})
	require.NoError(t, err)
	assert.Equal(t, "1", req.Headers.Get("X-A"))
}
