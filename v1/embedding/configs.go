package embedding

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultEndpoint is the DashScope text embedding service.
	DefaultEndpoint = "https://dashscope.aliyuncs.com/api/v1/services/embeddings/text-embedding/text-embedding"

	// DefaultModel produces both dense and sparse vectors.
	DefaultModel = "text-embedding-v3"

	// DefaultMaxBatchSize is the number of texts DashScope accepts per request for v3 models.
	DefaultMaxBatchSize = 10
)

// OutputType selects which representations DashScope returns.
type OutputType string

const (
	OutputDense          OutputType = "dense"
	OutputSparse         OutputType = "sparse"
	OutputDenseAndSparse OutputType = "dense&sparse"
)

// Config holds the DashScope embedding settings.
type Config struct {
	// Endpoint is the full URL of the text-embedding service.
	Endpoint string `yaml:"endpoint" envconfig:"DASH_SCOPE_ENDPOINT"`

	// APIKey is sent as a Bearer token.
	APIKey string `yaml:"api_key" envconfig:"DASH_SCOPE_APIKEY"`

	// Model defaults to text-embedding-v3.
	Model string `yaml:"model" envconfig:"DASH_SCOPE_MODEL"`

	// Dimension of the dense vector; 0 keeps the model default (1024 for v3).
	Dimension int `yaml:"dimension" envconfig:"DASH_SCOPE_DIMENSION"`

	// OutputType defaults to dense&sparse.
	OutputType OutputType `yaml:"output_type" envconfig:"DASH_SCOPE_OUTPUT_TYPE"`

	// MaxBatchSize caps the texts sent per request; larger inputs are split.
	MaxBatchSize int `yaml:"max_batch_size" envconfig:"DASH_SCOPE_MAX_BATCH_SIZE"`

	// HTTPTimeoutS is the HTTP timeout in seconds (default 30).
	HTTPTimeoutS int `yaml:"http_timeout_seconds" envconfig:"DASH_SCOPE_HTTP_TIMEOUT_SECONDS"`
}

// DefaultConfig returns the defaults without an API key.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:     DefaultEndpoint,
		Model:        DefaultModel,
		OutputType:   OutputDenseAndSparse,
		MaxBatchSize: DefaultMaxBatchSize,
		HTTPTimeoutS: 30,
	}
}

// NewConfig reads the configuration from environment variables, keeping
// defaults for anything unset.
func NewConfig() *Config {
	cfg := DefaultConfig()
	if v := os.Getenv("DASH_SCOPE_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	cfg.APIKey = os.Getenv("DASH_SCOPE_APIKEY")
	if v := os.Getenv("DASH_SCOPE_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("DASH_SCOPE_OUTPUT_TYPE"); v != "" {
		cfg.OutputType = OutputType(v)
	}
	cfg.Dimension = positiveInt("DASH_SCOPE_DIMENSION", 0)
	cfg.MaxBatchSize = positiveInt("DASH_SCOPE_MAX_BATCH_SIZE", cfg.MaxBatchSize)
	cfg.HTTPTimeoutS = positiveInt("DASH_SCOPE_HTTP_TIMEOUT_SECONDS", cfg.HTTPTimeoutS)
	return cfg
}

func positiveInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("embedding: config is nil")
	}
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("embedding: missing DASH_SCOPE_ENDPOINT")
	}
	if c.APIKey == "" {
		return fmt.Errorf("embedding: missing DASH_SCOPE_APIKEY")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing model")
	}
	switch c.OutputType {
	case OutputDense, OutputSparse, OutputDenseAndSparse:
	default:
		return fmt.Errorf("embedding: unknown output type %q", c.OutputType)
	}
	if c.Dimension < 0 || c.MaxBatchSize < 0 || c.HTTPTimeoutS < 0 {
		return fmt.Errorf("embedding: dimension, batch size and timeout must not be negative")
	}
	return nil
}

func (c *Config) wantsDense() bool {
	return c.OutputType == OutputDense || c.OutputType == OutputDenseAndSparse
}

func (c *Config) wantsSparse() bool {
	return c.OutputType == OutputSparse || c.OutputType == OutputDenseAndSparse
}
