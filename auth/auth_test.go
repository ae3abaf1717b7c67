package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitabwire/fabconsole/config"
)

func TestNew_selectsAuthenticator(t *testing.T) {
	tests := []struct {
		cfg     config.AuthConfig
		want    Authenticator
		wantErr bool
	}{
		{config.AuthConfig{Type: config.AuthNone}, NoAuth{}, false},
		{config.AuthConfig{Type: config.AuthBasic, Username: "admin", Password: "pw"}, Basic{}, false},
		{config.AuthConfig{Type: config.AuthBasic, Username: "admin"}, nil, true},
		{config.AuthConfig{Type: config.AuthBearer, BearerToken: "tok"}, BearerToken{}, false},
		{config.AuthConfig{Type: config.AuthBearer}, nil, true},
		{config.AuthConfig{Type: config.AuthIAM, APIKey: "key"}, &IAM{}, false},
		{config.AuthConfig{Type: config.AuthIAM}, nil, true},
		{config.AuthConfig{Type: "kerberos"}, nil, true},
	}
	for _, tt := range tests {
		a, err := New(tt.cfg, nil)
		if tt.wantErr {
			assert.Error(t, err, "%+v", tt.cfg)
			continue
		}
		require.NoError(t, err, "%+v", tt.cfg)
		assert.IsType(t, tt.want, a, "%+v", tt.cfg)
	}
}

func TestBasic_Authenticate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://console.example.com/ak/api/v3/health", nil)
	require.NoError(t, (Basic{Username: "admin", Password: "pw"}).Authenticate(req))

	u, p, ok := req.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, "admin", u)
	assert.Equal(t, "pw", p)
}

func TestBearerToken_Authenticate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://console.example.com/ak/api/v3/health", nil)
	require.NoError(t, (BearerToken{Token: "abc"}).Authenticate(req))
	assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
}

func TestNoAuth_Authenticate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://console.example.com/ak/api/v3/health", nil)
	require.NoError(t, (NoAuth{}).Authenticate(req))
	assert.Empty(t, req.Header.Get("Authorization"))
}
