package embedding

import (
	"context"

	"go.uber.org/fx"

	"github.com/dashsearch/dashsearch-go/v1/logger"
	"github.com/dashsearch/dashsearch-go/v1/observability"
)

// FXModule wires the embedding client into Fx.
//
// It provides:
//   - *Config  (NewConfig, from the environment)
//   - *Client  (NewClientWithDI)
//   - a lifecycle hook releasing HTTP resources on shutdown
var FXModule = fx.Module(
	"embedding",

	fx.Provide(
		NewConfig,
		NewClientWithDI,
	),

	fx.Invoke(RegisterEmbeddingLifecycle),
)

// Params groups the dependencies of NewClientWithDI.
type Params struct {
	fx.In

	Config   *Config
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI adapts NewClient to fx.
func NewClientWithDI(p Params) (*Client, error) {
	return NewClient(p.Config, WithLogger(p.Logger), WithObserver(p.Observer))
}

// RegisterEmbeddingLifecycle closes the client on application shutdown.
func RegisterEmbeddingLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
