package dashvector

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dashsearch/dashsearch-go/v1/observability"
)

// operation tracks one client call: its span, timing and result size.
type operation struct {
	c          *Client
	ctx        context.Context
	span       trace.Span
	name       string
	collection string
	partition  string
	start      time.Time
	size       int64
}

// begin starts the span for op. The caller must call end exactly once:
//
//	ctx, o := c.begin(ctx, "query_docs", collection)
//	defer func() { o.end(err) }()
func (c *Client) begin(ctx context.Context, op, collection string) (context.Context, *operation) {
	ctx, span := c.tracer.Start(ctx, "dashvector."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "dashvector"),
			attribute.String("db.operation", op),
			attribute.String("db.dashvector.collection", collection),
		),
	)
	return ctx, &operation{
		c:          c,
		ctx:        ctx,
		span:       span,
		name:       op,
		collection: collection,
		start:      time.Now(),
	}
}

func (o *operation) setPartition(p string) {
	o.partition = p
	if p != "" {
		o.span.SetAttributes(attribute.String("db.dashvector.partition", p))
	}
}

func (o *operation) setSize(n int) {
	o.size = int64(n)
}

func (o *operation) end(err error) {
	duration := time.Since(o.start)
	fields := map[string]interface{}{
		"operation":   o.name,
		"collection":  o.collection,
		"duration_ms": duration.Milliseconds(),
	}
	if o.partition != "" {
		fields["partition"] = o.partition
	}

	if err != nil {
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
		o.c.logger.WarnWithContext(o.ctx, "dashvector operation failed", err, fields)
	} else {
		o.span.SetAttributes(attribute.Int64("db.dashvector.size", o.size))
		o.c.logger.DebugWithContext(o.ctx, "dashvector operation completed", nil, fields)
	}
	o.span.End()

	o.c.observeOperation(o.name, o.collection, o.partition, duration, err, o.size, nil)
}

// observeOperation notifies the observer, if one is configured.
func (c *Client) observeOperation(op, collection, partition string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}
	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "dashvector",
		Operation:   op,
		Resource:    collection,
		SubResource: partition,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
