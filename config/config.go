// Package config loads and validates client configuration from YAML files
// and environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment variable read by Load and FromEnv.
const EnvPrefix = "BLOCKCHAIN"

// Supported authentication types.
const (
	AuthNone   = "noauth"
	AuthBasic  = "basic"
	AuthBearer = "bearer"
	AuthIAM    = "iam"
)

// DefaultIAMURL is the token endpoint used when AuthConfig.URL is empty.
const DefaultIAMURL = "https://iam.cloud.ibm.com/identity/token"

// Config is the root client configuration. It is read once at construction
// and never mutated by the client afterwards.
type Config struct {
	ServiceURL     string            `yaml:"service_url" envconfig:"URL"`
	DefaultHeaders map[string]string `yaml:"default_headers" envconfig:"DEFAULT_HEADERS"`
	Timeout        time.Duration     `yaml:"timeout" envconfig:"TIMEOUT"`
	// DisableSSLVerification skips TLS certificate checks. Development only.
	DisableSSLVerification bool `yaml:"disable_ssl_verification" envconfig:"DISABLE_SSL"`
	// FixCaseResults adds camelCase twins to the keys of object results.
	FixCaseResults   bool                `yaml:"fix_case_results" envconfig:"FIX_CASE_RESULTS"`
	MaxResponseBytes int64               `yaml:"max_response_bytes" envconfig:"MAX_RESPONSE_BYTES"`
	Auth             AuthConfig          `yaml:"auth" envconfig:"AUTH"`
	Retry            RetryConfig         `yaml:"retry" envconfig:"RETRY"`
	Breaker          BreakerConfig       `yaml:"circuit_breaker" envconfig:"BREAKER"`
	Observability    ObservabilityConfig `yaml:"observability" envconfig:"OBSERVABILITY"`
}

// AuthConfig selects and configures the request authenticator.
type AuthConfig struct {
	Type        string `yaml:"type" envconfig:"TYPE"`
	APIKey      string `yaml:"apikey" envconfig:"APIKEY"`
	URL         string `yaml:"url" envconfig:"URL"`
	BearerToken string `yaml:"bearer_token" envconfig:"BEARER_TOKEN"`
	Username    string `yaml:"username" envconfig:"USERNAME"`
	Password    string `yaml:"password" envconfig:"PASSWORD"`
}

// RetryConfig describes transport retries. MaxRetries of 0 disables them.
type RetryConfig struct {
	MaxRetries  int           `yaml:"max_retries" envconfig:"MAX_RETRIES"`
	MaxInterval time.Duration `yaml:"max_interval" envconfig:"MAX_INTERVAL"`
	// InitialInterval is the first backoff delay.
	InitialInterval time.Duration `yaml:"initial_interval" envconfig:"INITIAL_INTERVAL"`
}

// BreakerConfig describes the transport circuit breaker. A FailureThreshold
// of 0 disables it.
type BreakerConfig struct {
	FailureThreshold int           `yaml:"failure_threshold" envconfig:"FAILURE_THRESHOLD"`
	SuccessThreshold int           `yaml:"success_threshold" envconfig:"SUCCESS_THRESHOLD"`
	Timeout          time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
}

// ObservabilityConfig describes logging and tracing settings.
type ObservabilityConfig struct {
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	// Debug logs every request and response (bodies redacted).
	Debug   bool          `yaml:"debug" envconfig:"DEBUG"`
	Tracing TracingConfig `yaml:"tracing" envconfig:"TRACING"`
}

// TracingConfig describes distributed tracing settings.
type TracingConfig struct {
	Enabled      bool    `yaml:"enabled" envconfig:"ENABLED"`
	Exporter     string  `yaml:"exporter" envconfig:"EXPORTER"`
	Endpoint     string  `yaml:"endpoint" envconfig:"ENDPOINT"`
	SamplingRate float64 `yaml:"sampling_rate" envconfig:"SAMPLING_RATE"`
}

// Defaults returns a Config with sensible default values.
func Defaults() *Config {
	return &Config{
		Timeout:          60 * time.Second,
		MaxResponseBytes: 32 << 20,
		Auth: AuthConfig{
			Type: AuthIAM,
			URL:  DefaultIAMURL,
		},
		Retry: RetryConfig{
			MaxInterval:     30 * time.Second,
			InitialInterval: 500 * time.Millisecond,
		},
		Breaker: BreakerConfig{
			SuccessThreshold: 1,
			Timeout:          30 * time.Second,
		},
		Observability: ObservabilityConfig{
			LogLevel: "info",
			Tracing: TracingConfig{
				Exporter:     "otlp",
				SamplingRate: 0.1,
			},
		},
	}
}

// Load reads a YAML config file, applies BLOCKCHAIN_* environment variable
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation: %w", err)
	}
	return cfg, nil
}

// Read is Load without validation, for callers that apply further
// overrides (command-line flags) before calling Validate. An empty path
// reads the environment only.
func Read(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, nil
}

// FromEnv builds a Config from Defaults and BLOCKCHAIN_* variables only.
func FromEnv() (*Config, error) {
	return Load("")
}

// Validate checks that all required fields are present and valid.
func (c *Config) Validate() error {
	var errs []string

	if c.ServiceURL == "" {
		errs = append(errs, "service_url is required")
	} else if u, err := url.Parse(c.ServiceURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Sprintf("service_url %q must be an absolute http(s) URL", c.ServiceURL))
	}
	if c.Timeout < 0 {
		errs = append(errs, "timeout must not be negative")
	}
	if c.Retry.MaxRetries < 0 {
		errs = append(errs, "retry.max_retries must not be negative")
	}
	if c.Breaker.FailureThreshold < 0 {
		errs = append(errs, "circuit_breaker.failure_threshold must not be negative")
	}

	switch c.Auth.Type {
	case AuthNone:
	case AuthBasic:
		if c.Auth.Username == "" || c.Auth.Password == "" {
			errs = append(errs, "auth.username and auth.password are required for basic auth")
		}
	case AuthBearer:
		if c.Auth.BearerToken == "" {
			errs = append(errs, "auth.bearer_token is required for bearer auth")
		}
	case AuthIAM:
		if c.Auth.APIKey == "" {
			errs = append(errs, "auth.apikey is required for iam auth")
		}
	default:
		errs = append(errs, fmt.Sprintf("auth.type %q is not one of %s, %s, %s, %s",
			c.Auth.Type, AuthNone, AuthBasic, AuthBearer, AuthIAM))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// ServiceBase returns ServiceURL without a trailing slash.
func (c *Config) ServiceBase() string {
	return strings.TrimRight(c.ServiceURL, "/")
}
