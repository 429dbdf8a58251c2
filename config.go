package esdc

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups client settings taken from environment variables with the
// prefix "ESDC_". Example: ESDC_API_URL=https://danube.cloud/api
// ESDC_API_KEY=... .
type Config struct {
	APIURL       string        `envconfig:"API_URL" default:"https://danube.cloud/api"`
	APIKey       string        `envconfig:"API_KEY"`
	APIKeyHeader string        `envconfig:"API_KEY_HEADER" default:"ES-API-KEY"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug        bool          `envconfig:"DEBUG" default:"false"`
}

// FromEnv populates Config from environment variables (prefix ESDC_).
func FromEnv() (Config, error) {
	var c Config
	return c, envconfig.Process("ESDC", &c)
}

// NewFromConfig constructs a Client from cfg. Extra options are applied
// after the ones derived from cfg and may override them.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{
		WithHTTPTimeout(cfg.Timeout),
		WithAPIKeyHeader(cfg.APIKeyHeader),
	}
	if cfg.Debug {
		base = append(base, WithDebugLogging(true))
	}
	return New(cfg.APIURL, cfg.APIKey, append(base, opts...)...)
}

// NewFromEnv constructs a Client configured entirely from ESDC_* environment
// variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}
