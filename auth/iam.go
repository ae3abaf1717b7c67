package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/pitabwire/fabconsole/config"
)

const (
	iamGrantType = "urn:ibm:params:oauth:grant-type:apikey"
	// refreshWindow is how long before expiry a cached token is replaced.
	refreshWindow = 60 * time.Second
)

// IAM exchanges an api key for a bearer token and caches the token until
// shortly before it expires. It is safe for concurrent use.
type IAM struct {
	apiKey    string
	url       string
	client    *http.Client
	logger    *zap.Logger
	onRefresh func(ok bool)
	now       func() time.Time

	mu     sync.RWMutex
	token  string
	expiry time.Time
}

// IAMOption configures an IAM authenticator.
type IAMOption func(*IAM)

// WithLogger sets the logger for refresh warnings.
func WithLogger(l *zap.Logger) IAMOption {
	return func(a *IAM) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithRefreshHook is called after every token exchange with its outcome.
func WithRefreshHook(fn func(ok bool)) IAMOption {
	return func(a *IAM) { a.onRefresh = fn }
}

// NewIAM creates an IAM authenticator. An empty tokenURL selects
// config.DefaultIAMURL.
func NewIAM(apiKey, tokenURL string, client *http.Client, opts ...IAMOption) *IAM {
	if tokenURL == "" {
		tokenURL = config.DefaultIAMURL
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	a := &IAM{
		apiKey: apiKey,
		url:    tokenURL,
		client: client,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Validate implements Authenticator.
func (a *IAM) Validate() error {
	if a.apiKey == "" {
		return errors.New("auth: iam api key is empty")
	}
	if _, err := url.ParseRequestURI(a.url); err != nil {
		return fmt.Errorf("auth: iam url %q: %w", a.url, err)
	}
	return nil
}

// Authenticate implements Authenticator.
func (a *IAM) Authenticate(req *http.Request) error {
	token, err := a.Token(req)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// Token returns a cached token or fetches a new one. The request only
// supplies the context for the exchange.
func (a *IAM) Token(req *http.Request) (string, error) {
	a.mu.RLock()
	token, expiry := a.token, a.expiry
	a.mu.RUnlock()

	now := a.now()
	if token != "" && now.Add(refreshWindow).Before(expiry) {
		return token, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// The wait for the lock may have been long.
	now = a.now()

	// Another goroutine may have refreshed while we waited.
	if a.token != "" && now.Add(refreshWindow).Before(a.expiry) {
		return a.token, nil
	}

	fresh, freshExpiry, err := a.fetch(req)
	if a.onRefresh != nil {
		a.onRefresh(err == nil)
	}
	if err != nil {
		// Degraded mode: keep using a token that has not actually expired.
		if a.token != "" && now.Before(a.expiry) {
			a.logger.Warn("iam: refresh failed, using cached token", zap.Error(err))
			return a.token, nil
		}
		return "", err
	}

	a.token, a.expiry = fresh, freshExpiry
	return fresh, nil
}

type iamTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Expiration  int64  `json:"expiration"`
}

func (a *IAM) fetch(parent *http.Request) (string, time.Time, error) {
	form := url.Values{}
	form.Set("grant_type", iamGrantType)
	form.Set("apikey", a.apiKey)

	req, err := http.NewRequestWithContext(parent.Context(), http.MethodPost, a.url, strings.NewReader(form.Encode()))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: build iam request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: iam request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: read iam response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("auth: iam token endpoint returned %d", resp.StatusCode)
	}

	var tr iamTokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", time.Time{}, fmt.Errorf("auth: parse iam response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", time.Time{}, errors.New("auth: iam response has no access_token")
	}

	return tr.AccessToken, a.expiryOf(tr), nil
}

// expiryOf prefers the exp claim of the token itself and falls back to the
// expiration fields of the response.
func (a *IAM) expiryOf(tr iamTokenResponse) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tr.AccessToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	switch {
	case tr.Expiration > 0:
		return time.Unix(tr.Expiration, 0)
	case tr.ExpiresIn > 0:
		return a.now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	// Unknown lifetime: refresh on next use.
	return a.now()
}
