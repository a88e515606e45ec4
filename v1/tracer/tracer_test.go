package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func newRecordingTracer() (*Tracer, *tracetest.SpanRecorder) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	return &Tracer{provider: tp}, rec
}

func TestStartSpanRecordError(t *testing.T) {
	tr, rec := newRecordingTracer()

	_, span := tr.StartSpan(context.Background(), "query")
	tr.SetAttributes(span, map[string]interface{}{
		"collection": "poems",
		"topk":       5,
		"dense":      true,
		"score":      0.5,
		"other":      []string{"a"},
	})
	tr.RecordErrorOnSpan(span, errors.New("boom"))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "query", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Len(t, ended[0].Attributes(), 5)
}

func TestGetCarrier(t *testing.T) {
	tr, _ := newRecordingTracer()

	assert.Empty(t, tr.GetCarrier(context.Background()))

	ctx, span := tr.StartSpan(context.Background(), "parent")
	defer span.End()

	carrier := tr.GetCarrier(ctx)
	require.Contains(t, carrier, "traceparent")
	assert.Contains(t, carrier["traceparent"], span.SpanContext().TraceID().String())
}

func TestNewClientWithoutExport(t *testing.T) {
	tr, err := NewClient(Config{ServiceName: "test"}, nil)
	require.NoError(t, err)
	require.NotNil(t, tr.Provider())
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestFXModule(t *testing.T) {
	var tr *Tracer
	app := fxtest.New(t,
		fx.Provide(func() Config { return Config{ServiceName: "test"} }),
		FXModule,
		fx.Populate(&tr),
	)
	app.RequireStart()
	assert.NotNil(t, tr)
	app.RequireStop()
}
