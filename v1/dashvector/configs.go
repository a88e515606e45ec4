package dashvector

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds a single HTTP exchange when the client builds its own http.Client.
const DefaultTimeout = 10 * time.Second

// Config holds the connection settings for a DashVector cluster.
// NewClient copies it; later changes to the value have no effect on the client.
type Config struct {
	// Endpoint is the cluster host, e.g. "vrs-cn-xxx.dashvector.cn-hangzhou.aliyuncs.com".
	// A bare host is contacted over https. A full URL (http://127.0.0.1:8080) is used as is.
	Endpoint string `yaml:"endpoint" envconfig:"DASH_VECTOR_ENDPOINT"`

	// APIKey is sent in the dashvector-auth-token header.
	APIKey string `yaml:"api_key" envconfig:"DASH_VECTOR_APIKEY"`

	// Timeout for each request. Ignored when WithHTTPClient is used.
	Timeout time.Duration `yaml:"timeout" envconfig:"DASH_VECTOR_TIMEOUT"`
}

// DefaultConfig returns a Config with the default timeout and no credentials.
func DefaultConfig() *Config {
	return &Config{Timeout: DefaultTimeout}
}

// NewConfig reads DASH_VECTOR_ENDPOINT, DASH_VECTOR_APIKEY and
// DASH_VECTOR_TIMEOUT (a Go duration such as "15s").
func NewConfig() *Config {
	cfg := DefaultConfig()
	cfg.Endpoint = os.Getenv("DASH_VECTOR_ENDPOINT")
	cfg.APIKey = os.Getenv("DASH_VECTOR_APIKEY")
	if v := os.Getenv("DASH_VECTOR_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// FromEndpoint returns a default config pointing at endpoint.
func FromEndpoint(endpoint string) *Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

// WithAPIKey sets the API key and returns the config for chaining.
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

// Validate checks that the endpoint and API key are usable.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("dashvector: config is nil")
	}
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("dashvector: missing DASH_VECTOR_ENDPOINT")
	}
	if c.APIKey == "" {
		return fmt.Errorf("dashvector: missing DASH_VECTOR_APIKEY")
	}
	u, err := url.Parse(c.BaseURL())
	if err != nil {
		return fmt.Errorf("dashvector: invalid endpoint %q: %w", c.Endpoint, err)
	}
	if u.Host == "" {
		return fmt.Errorf("dashvector: invalid endpoint %q: no host", c.Endpoint)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("dashvector: negative timeout")
	}
	return nil
}

// BaseURL returns the endpoint with a scheme and without a trailing slash.
func (c *Config) BaseURL() string {
	e := strings.TrimSpace(c.Endpoint)
	if !strings.Contains(e, "://") {
		e = "https://" + e
	}
	return strings.TrimRight(e, "/")
}
