package dashvector

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/dashsearch/dashsearch-go/v1/logger"
	"github.com/dashsearch/dashsearch-go/v1/observability"
)

const instrumentationName = "github.com/dashsearch/dashsearch-go/v1/dashvector"

// Client talks to one DashVector cluster. It holds no per-call state and is
// safe for concurrent use.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client

	logger     logger.Logger
	observer   observability.Observer
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// Option customises a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the client's own *http.Client (and its timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for per-operation debug and warning entries.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver reports every operation to o.
func WithObserver(o observability.Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithTracerProvider starts spans from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// NewClient validates cfg and returns a client bound to a copy of it.
//
// Example:
//
//	cfg := dashvector.FromEndpoint(os.Getenv("DASH_VECTOR_ENDPOINT")).
//	    WithAPIKey(os.Getenv("DASH_VECTOR_APIKEY"))
//	client, err := dashvector.NewClient(cfg, dashvector.WithObserver(m))
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:        *cfg,
		baseURL:    cfg.BaseURL(),
		logger:     logger.NewNop(),
		tracer:     otel.Tracer(instrumentationName),
		propagator: otel.GetTextMapPropagator(),
	}
	if c.cfg.Timeout == 0 {
		c.cfg.Timeout = DefaultTimeout
	}
	c.httpClient = &http.Client{Timeout: c.cfg.Timeout}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		return nil, fmt.Errorf("dashvector: http client is nil")
	}
	return c, nil
}

// Endpoint returns the base URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.baseURL
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
