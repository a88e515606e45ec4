package dashsearch

import (
	"go.uber.org/fx"

	"github.com/dashsearch/dashsearch-go/v1/dashvector"
	"github.com/dashsearch/dashsearch-go/v1/embedding"
	"github.com/dashsearch/dashsearch-go/v1/logger"
	"github.com/dashsearch/dashsearch-go/v1/observability"
)

// FXModule wires the dashvector and embedding modules and provides *Client.
// Supply *dashvector.Config and *embedding.Config yourself with fx.Decorate
// to override the environment defaults.
var FXModule = fx.Module("dashsearch",
	dashvector.FXModule,
	embedding.FXModule,
	fx.Provide(NewClientWithDI),
)

// Params groups the dependencies of NewClientWithDI.
type Params struct {
	fx.In

	Store           *dashvector.Client
	Embedder        *embedding.Client
	EmbeddingConfig *embedding.Config
	Logger          logger.Logger          `optional:"true"`
	Observer        observability.Observer `optional:"true"`
}

// NewClientWithDI adapts NewClient to fx. It fails when the embedding config
// does not satisfy ValidateEmbedding.
func NewClientWithDI(p Params) (*Client, error) {
	if err := ValidateEmbedding(p.EmbeddingConfig); err != nil {
		return nil, err
	}
	return NewClient(p.Store, p.Embedder, WithLogger(p.Logger), WithObserver(p.Observer))
}
