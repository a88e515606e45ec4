package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/dashsearch/dashsearch-go/v1/logger"
)

// FXModule provides *Tracer and shuts it down when the application stops.
// A tracer.Config must be supplied; a logger.Logger is optional.
//
//	app := fx.New(
//	    fx.Provide(tracer.NewConfig),
//	    tracer.FXModule,
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// Params groups the dependencies of NewClientWithDI.
type Params struct {
	fx.In

	Config Config
	Logger logger.Logger `optional:"true"`
}

// NewClientWithDI adapts NewClient to fx.
func NewClientWithDI(p Params) (*Tracer, error) {
	return NewClient(p.Config, p.Logger)
}

// RegisterTracerLifecycle flushes and stops the provider on shutdown.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			tracer.logger.Info("shutting down tracer", nil)
			return tracer.Shutdown(ctx)
		},
	})
}
