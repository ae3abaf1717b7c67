// Package auth provides the request authenticators used by the console
// client: none, HTTP basic, a static bearer token, and IAM api key
// exchange.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/pitabwire/fabconsole/config"
)

// Authenticator decorates an outbound request with credentials.
type Authenticator interface {
	// Authenticate sets credentials on req. It may perform I/O using
	// req.Context().
	Authenticate(req *http.Request) error
	// Validate reports configuration problems before first use.
	Validate() error
}

// NoAuth sends requests without credentials.
type NoAuth struct{}

// Authenticate implements Authenticator.
func (NoAuth) Authenticate(*http.Request) error { return nil }

// Validate implements Authenticator.
func (NoAuth) Validate() error { return nil }

// Basic sends HTTP basic credentials.
type Basic struct {
	Username string
	Password string
}

// Authenticate implements Authenticator.
func (b Basic) Authenticate(req *http.Request) error {
	req.SetBasicAuth(b.Username, b.Password)
	return nil
}

// Validate implements Authenticator.
func (b Basic) Validate() error {
	if b.Username == "" || b.Password == "" {
		return errors.New("auth: basic auth needs a username and a password")
	}
	return nil
}

// BearerToken sends a fixed bearer token.
type BearerToken struct {
	Token string
}

// Authenticate implements Authenticator.
func (b BearerToken) Authenticate(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+b.Token)
	return nil
}

// Validate implements Authenticator.
func (b BearerToken) Validate() error {
	if b.Token == "" {
		return errors.New("auth: bearer token is empty")
	}
	return nil
}

// New returns the authenticator selected by cfg.Type. client is used for
// IAM token exchange and may be nil.
func New(cfg config.AuthConfig, client *http.Client, opts ...IAMOption) (Authenticator, error) {
	var a Authenticator
	switch cfg.Type {
	case config.AuthNone:
		a = NoAuth{}
	case config.AuthBasic:
		a = Basic{Username: cfg.Username, Password: cfg.Password}
	case config.AuthBearer:
		a = BearerToken{Token: cfg.BearerToken}
	case config.AuthIAM, "":
		a = NewIAM(cfg.APIKey, cfg.URL, client, opts...)
	default:
		return nil, fmt.Errorf("auth: unknown type %q", cfg.Type)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}
