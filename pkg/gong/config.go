package gong

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/configloader"
)

// DefaultBaseURL is the Gong v2 API endpoint.
const DefaultBaseURL = "https://api.gong.io/v2"

// DefaultTimeout is the fixed per-request timeout on the HTTP call.
const DefaultTimeout = 30 * time.Second

// Environment variables consumed by LoadConfig.
const (
	EnvAccessKey    = "GONG_ACCESS_KEY"
	EnvAccessSecret = "GONG_ACCESS_SECRET"
	EnvBaseURL      = "GONG_BASE_URL"
	EnvConfigFile   = "GONG_CONFIG"
)

// Config specifies the client credentials and transport options.
type Config struct {
	// AccessKey is the Gong access key identifier.
	AccessKey string `json:"access_key,omitempty" yaml:"access_key,omitempty"`
	// AccessSecret is the Gong access secret used to key request signatures.
	AccessSecret string `json:"access_secret,omitempty" yaml:"access_secret,omitempty"`
	// BaseURL overrides the API endpoint, DefaultBaseURL if empty.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	// Timeout overrides the per-request timeout, DefaultTimeout if zero.
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// LoadConfig builds the configuration from the environment, optionally
// starting from a YAML file named by GONG_CONFIG. Environment values take
// precedence over file values. Missing credentials is a fatal configuration
// error.
func LoadConfig() (*Config, error) {
	cfg := new(Config)
	if file := os.Getenv(EnvConfigFile); file != "" {
		err := configloader.UnmarshalAndExpand(file, cfg)
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to load config: %s", file)
		}
	}
	if v := os.Getenv(EnvAccessKey); v != "" {
		cfg.AccessKey = v
	}
	if v := os.Getenv(EnvAccessSecret); v != "" {
		cfg.AccessSecret = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if cfg.AccessKey == "" || cfg.AccessSecret == "" {
		return nil, errors.Errorf("%s and %s environment variables are required", EnvAccessKey, EnvAccessSecret)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg, nil
}
