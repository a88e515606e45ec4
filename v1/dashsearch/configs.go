package dashsearch

import (
	"fmt"

	"github.com/dashsearch/dashsearch-go/v1/dashvector"
	"github.com/dashsearch/dashsearch-go/v1/embedding"
)

// Config bundles the settings of both backing services.
type Config struct {
	VectorStore *dashvector.Config `yaml:"dashvector"`
	Embedding   *embedding.Config  `yaml:"embedding"`
}

// NewConfig reads both sections from the environment (DASH_VECTOR_* and DASH_SCOPE_*).
func NewConfig() *Config {
	return &Config{
		VectorStore: dashvector.NewConfig(),
		Embedding:   embedding.NewConfig(),
	}
}

// Validate validates both sections. See ValidateEmbedding for the extra
// constraints on the embedding section.
func (c *Config) Validate() error {
	if c == nil || c.VectorStore == nil || c.Embedding == nil {
		return fmt.Errorf("dashsearch: dashvector and embedding config are required")
	}
	if err := c.VectorStore.Validate(); err != nil {
		return err
	}
	return ValidateEmbedding(c.Embedding)
}

// ValidateEmbedding checks that an embedding config produces vectors that fit
// the collections this package creates: dense and sparse output, and a dense
// dimension that is unset or equal to Dimension.
func ValidateEmbedding(cfg *embedding.Config) error {
	if cfg == nil {
		return fmt.Errorf("dashsearch: embedding config is required")
	}
	if d := cfg.Dimension; d != 0 && d != Dimension {
		return fmt.Errorf("dashsearch: embedding dimension must be %d, got %d", Dimension, d)
	}
	if cfg.OutputType != embedding.OutputDenseAndSparse {
		return fmt.Errorf("dashsearch: embedding output type must be %q, got %q", embedding.OutputDenseAndSparse, cfg.OutputType)
	}
	return cfg.Validate()
}
