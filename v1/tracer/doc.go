// Package tracer configures OpenTelemetry tracing for applications built on
// this module.
//
// NewClient creates an sdk TracerProvider, optionally exporting spans over
// OTLP/HTTP, and installs it as the global provider with the W3C trace-context
// and baggage propagators. The dashvector and embedding clients start their
// spans from the global provider and inject traceparent headers into every
// request, so installing the tracer is all that is needed to get end-to-end
// traces.
//
// # Usage
//
//	tr, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "dashsearch",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	    Endpoint:     "otel-collector:4318",
//	    Insecure:     true,
//	}, log)
//	if err != nil {
//	    return err
//	}
//	defer tr.Shutdown(ctx)
//
//	ctx, span := tr.StartSpan(ctx, "index-poems")
//	defer span.End()
//	tr.SetAttributes(span, map[string]interface{}{"collection": "poems"})
//
// # Propagation
//
// Outgoing HTTP calls are propagated by the global propagator set in
// NewClient. GetCarrier returns the same headers as a map, e.g. for logging.
//
// # FX Integration
//
//	app := fx.New(
//	    fx.Provide(tracer.NewConfig),
//	    tracer.FXModule,
//	)
package tracer
