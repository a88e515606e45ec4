package dashvector

import (
	"context"

	"go.uber.org/fx"

	"github.com/dashsearch/dashsearch-go/v1/logger"
	"github.com/dashsearch/dashsearch-go/v1/observability"
)

// FXModule provides *Config (from the environment) and *Client, and releases
// idle connections on shutdown.
//
//	app := fx.New(
//	    dashvector.FXModule,
//	    fx.Invoke(func(c *dashvector.Client) { ... }),
//	)
var FXModule = fx.Module("dashvector",
	fx.Provide(
		NewConfig,
		NewClientWithDI,
	),
	fx.Invoke(RegisterDashVectorLifecycle),
)

// Params groups the dependencies of NewClientWithDI. Logger and Observer are
// optional; provide metrics.FXModule to record operation metrics.
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

// RegisterDashVectorLifecycle closes the client when the application stops.
func RegisterDashVectorLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
