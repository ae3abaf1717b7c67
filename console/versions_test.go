package console

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitabwire/fabconsole/internal/catalog"
	"github.com/pitabwire/fabconsole/model"
)

var versionsBody = map[string]any{
	"versions": map[string]any{
		"peer": map[string]any{
			"2.2.10-1": map[string]any{"default": true, "version": "2.2.10-1"},
			"2.5.4-2":  map[string]any{"version": "2.5.4-2"},
			"2.5.4-1":  map[string]any{"version": "2.5.4-1"},
			"1.4.12-4": map[string]any{"version": "1.4.12-4"},
		},
		"ca": map[string]any{
			"1.5.7-1": map[string]any{"default": true},
		},
	},
}

func TestParseFabricVersions(t *testing.T) {
	fv, err := ParseFabricVersions(&model.ResponseEnvelope{Result: versionsBody})
	require.NoError(t, err)

	sorted := fv.Sorted("peer")
	require.Len(t, sorted, 4)
	got := make([]string, len(sorted))
	for i, v := range sorted {
		got[i] = v.Version
	}
	assert.Equal(t, []string{"2.5.4-2", "2.5.4-1", "2.2.10-1", "1.4.12-4"}, got)

	latest, ok := fv.Latest("peer")
	require.True(t, ok)
	assert.Equal(t, "2.5.4-2", latest.Version)

	def, ok := fv.Default("peer")
	require.True(t, ok)
	assert.Equal(t, "2.2.10-1", def.Version)

	ca, ok := fv.Default("ca")
	require.True(t, ok)
	assert.Equal(t, "1.5.7-1", ca.Version, "version falls back to the map key")

	_, ok = fv.Latest("orderer")
	assert.False(t, ok)
}

func TestFabricVersions_Matching(t *testing.T) {
	fv, err := ParseFabricVersions(&model.ResponseEnvelope{Result: versionsBody})
	require.NoError(t, err)

	v, err := fv.Matching("peer", "~2.2")
	require.NoError(t, err)
	assert.Equal(t, "2.2.10-1", v.Version)

	v, err = fv.Matching("peer", "< 2")
	require.NoError(t, err)
	assert.Equal(t, "1.4.12-4", v.Version)

	_, err = fv.Matching("peer", ">= 3")
	assert.Error(t, err)

	_, err = fv.Matching("peer", "not a constraint")
	assert.Error(t, err)
}

func TestParseFabricVersions_badResult(t *testing.T) {
	_, err := ParseFabricVersions(&model.ResponseEnvelope{Result: "text"})
	assert.Error(t, err)
}

func TestService_FabricVersions(t *testing.T) {
	svc, c := newTestService(t)
	c.OnOperation(catalog.GetFabVersions).RespondWith(http.StatusOK, versionsBody)

	latest, err := svc.LatestFabricVersion(context.Background(), "peer")
	require.NoError(t, err)
	assert.Equal(t, "2.5.4-2", latest.Version)

	def, err := svc.DefaultFabricVersion(context.Background(), "peer")
	require.NoError(t, err)
	assert.Equal(t, "2.2.10-1", def.Version)

	_, err = svc.DefaultFabricVersion(context.Background(), "orderer")
	assert.Error(t, err)

	assert.Equal(t, "skip", c.LastRequest(catalog.GetFabVersions).Query.Get("cache"))
}
