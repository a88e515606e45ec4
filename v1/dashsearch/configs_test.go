package dashsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dashsearch/dashsearch-go/v1/dashvector"
	"github.com/dashsearch/dashsearch-go/v1/embedding"
)

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		emb := embedding.DefaultConfig()
		emb.APIKey = "sk"
		return &Config{
			VectorStore: dashvector.FromEndpoint("vrs-cn-test.dashvector.example.com").WithAPIKey("key"),
			Embedding:   emb,
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Embedding.Dimension = Dimension
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Embedding.Dimension = 512
	assert.ErrorContains(t, cfg.Validate(), "dimension")

	for _, out := range []embedding.OutputType{embedding.OutputDense, embedding.OutputSparse} {
		cfg = valid()
		cfg.Embedding.OutputType = out
		assert.ErrorContains(t, cfg.Validate(), "output type", "output type %s", out)
	}

	cfg = valid()
	cfg.VectorStore.APIKey = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Embedding = nil
	assert.Error(t, cfg.Validate())

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestValidateEmbedding(t *testing.T) {
	assert.Error(t, ValidateEmbedding(nil))

	cfg := embedding.DefaultConfig()
	cfg.APIKey = "sk"
	assert.NoError(t, ValidateEmbedding(cfg))

	cfg.APIKey = ""
	assert.Error(t, ValidateEmbedding(cfg), "embedding's own validation still applies")
}
