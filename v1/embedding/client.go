package embedding

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/dashsearch/dashsearch-go/v1/logger"
	"github.com/dashsearch/dashsearch-go/v1/observability"
)

const instrumentationName = "github.com/dashsearch/dashsearch-go/v1/embedding"

// Client computes dense and sparse embeddings through DashScope.
// Safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client

	logger     logger.Logger
	observer   observability.Observer
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// Option customises a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the internally built *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithObserver(o observability.Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// NewClient validates cfg and returns a client bound to a copy of it.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	c := &Client{
		cfg:        *cfg,
		logger:     logger.NewNop(),
		tracer:     otel.Tracer(instrumentationName),
		propagator: otel.GetTextMapPropagator(),
	}
	c.cfg.Endpoint = strings.TrimRight(strings.TrimSpace(c.cfg.Endpoint), "/")
	if c.cfg.MaxBatchSize == 0 {
		c.cfg.MaxBatchSize = DefaultMaxBatchSize
	}
	timeout := time.Duration(c.cfg.HTTPTimeoutS) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	c.httpClient = &http.Client{Timeout: timeout}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateEmbedding embeds a single text.
func (c *Client) CreateEmbedding(ctx context.Context, text string) (*Embedding, error) {
	out, err := c.CreateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// CreateEmbeddings embeds texts and returns one Embedding per text, in input
// order. Inputs larger than MaxBatchSize are sent as several sequential
// requests. Any transport, service or decoding failure fails the whole call.
func (c *Client) CreateEmbeddings(ctx context.Context, texts []string) (_ []Embedding, err error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("embedding: no texts provided")
	}
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			return nil, fmt.Errorf("embedding: text %d is empty", i)
		}
	}

	ctx, span := c.tracer.Start(ctx, "embedding.create",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("embedding.model", c.cfg.Model),
			attribute.Int("embedding.texts", len(texts)),
		),
	)
	start := time.Now()
	var tokens int64
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			c.logger.WarnWithContext(ctx, "embedding request failed", err, map[string]interface{}{
				"model": c.cfg.Model,
				"texts": len(texts),
			})
		} else {
			span.SetAttributes(attribute.Int64("embedding.tokens", tokens))
		}
		span.End()
		c.observeOperation("embed", time.Since(start), err, tokens, len(texts))
	}()

	out := make([]Embedding, 0, len(texts))
	for from := 0; from < len(texts); from += c.cfg.MaxBatchSize {
		to := min(from+c.cfg.MaxBatchSize, len(texts))
		batch, used, err := c.embedBatch(ctx, texts[from:to])
		if err != nil {
			return nil, err
		}
		tokens += used
		out = append(out, batch...)
	}
	return out, nil
}

// embedBatch performs one request and validates the answer.
func (c *Client) embedBatch(ctx context.Context, texts []string) ([]Embedding, int64, error) {
	req := embeddingRequest{
		Model: c.cfg.Model,
		Input: embeddingInput{Texts: texts},
		Parameters: embeddingParameters{
			OutputType: c.cfg.OutputType,
			Dimension:  c.cfg.Dimension,
		},
	}

	var resp embeddingResponse
	if err := c.postJSON(ctx, req, &resp); err != nil {
		return nil, 0, err
	}
	if resp.Output == nil {
		return nil, 0, fmt.Errorf("%w: missing output", ErrMalformedResponse)
	}
	if len(resp.Output.Embeddings) != len(texts) {
		return nil, 0, fmt.Errorf("%w: got %d embeddings for %d texts", ErrMalformedResponse, len(resp.Output.Embeddings), len(texts))
	}

	out := make([]Embedding, len(texts))
	seen := make([]bool, len(texts))
	for _, e := range resp.Output.Embeddings {
		if e.TextIndex < 0 || e.TextIndex >= len(texts) || seen[e.TextIndex] {
			return nil, 0, fmt.Errorf("%w: unexpected text_index %d", ErrMalformedResponse, e.TextIndex)
		}
		seen[e.TextIndex] = true

		var emb Embedding
		if c.cfg.wantsDense() {
			if len(e.Embedding) == 0 {
				return nil, 0, fmt.Errorf("%w: text %d has no dense embedding", ErrMalformedResponse, e.TextIndex)
			}
			emb.Dense = e.Embedding
		}
		if c.cfg.wantsSparse() {
			if e.SparseEmbedding == nil {
				return nil, 0, fmt.Errorf("%w: text %d has no sparse embedding", ErrMalformedResponse, e.TextIndex)
			}
			sparse, err := newSparseEmbedding(e.SparseEmbedding)
			if err != nil {
				return nil, 0, err
			}
			emb.Sparse = sparse
		}
		out[e.TextIndex] = emb
	}
	return out, resp.Usage.TotalTokens, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) observeOperation(op string, duration time.Duration, err error, size int64, texts int) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveOperation(observability.OperationContext{
		Component: "embedding",
		Operation: op,
		Resource:  c.cfg.Model,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata:  map[string]interface{}{"texts": texts},
	})
}
