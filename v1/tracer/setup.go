package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/dashsearch/dashsearch-go/v1/logger"
)

// Tracer wraps an OpenTelemetry TracerProvider. NewClient installs it as the
// global provider, so the dashvector and embedding clients pick it up without
// extra wiring. Safe for concurrent use.
type Tracer struct {
	provider *trace.TracerProvider
	logger   logger.Logger
}

// NewClient builds the tracer provider, registers it globally together with
// the W3C trace-context and baggage propagators, and returns the wrapper.
//
// With EnableExport the spans are batched to an OTLP/HTTP exporter; exporter
// construction failures are returned.
//
// Example:
//
//	tr, err := tracer.NewClient(tracer.Config{ServiceName: "dashsearch", AppEnv: "dev"}, log)
//	ctx, span := tr.StartSpan(ctx, "index-poems")
//	defer span.End()
func NewClient(cfg Config, log logger.Logger) (*Tracer, error) {
	if log == nil {
		log = logger.NewNop()
	}

	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		var clientOpts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			clientOpts = append(clientOpts, otlptracehttp.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			clientOpts = append(clientOpts, otlptracehttp.WithInsecure())
		}
		exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(clientOpts...))
		if err != nil {
			log.Error("cannot initiate trace exporter", err)
			return nil, fmt.Errorf("tracer: create exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	log.Info("tracer initialised", nil, map[string]interface{}{
		"service": cfg.ServiceName,
		"export":  cfg.EnableExport,
	})

	return &Tracer{provider: tp, logger: log}, nil
}

// Provider exposes the underlying provider, e.g. for dashvector.WithTracerProvider.
func (t *Tracer) Provider() *trace.TracerProvider {
	return t.provider
}

// Shutdown flushes pending spans and stops the provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
