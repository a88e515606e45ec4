// Package embedding computes text embeddings with the DashScope
// text-embedding service.
//
// # Overview
//
// A single request returns, per text, a dense vector and a sparse
// (term-weight) vector; the output type is configurable. The sparse part is
// returned as a SparseEmbedding sorted by ascending index, which can be turned
// into a map with Map().
//
//	client, err := embedding.NewClient(embedding.NewConfig())
//	emb, err := client.CreateEmbedding(ctx, "Before my bed the moonlight glows")
//	// emb.Dense  -> []float32 (1024 dims for text-embedding-v3)
//	// emb.Sparse -> []SparseEntry{{Index: 2, Value: 0.31}, ...}
//
// CreateEmbeddings accepts many texts and keeps input order; inputs larger
// than MaxBatchSize are sent as consecutive requests.
//
// # Configuration
//
// NewConfig reads:
//
//   - DASH_SCOPE_APIKEY (required)
//   - DASH_SCOPE_ENDPOINT (default DefaultEndpoint)
//   - DASH_SCOPE_MODEL (default text-embedding-v3)
//   - DASH_SCOPE_DIMENSION (default: model default)
//   - DASH_SCOPE_OUTPUT_TYPE (dense, sparse or dense&sparse; default dense&sparse)
//   - DASH_SCOPE_MAX_BATCH_SIZE (default 10)
//   - DASH_SCOPE_HTTP_TIMEOUT_SECONDS (default 30)
//
// # Errors
//
// Non-2xx answers are *APIError carrying the DashScope error code and request
// id. A 2xx answer without the expected vectors, or with a duplicated sparse
// index, is ErrMalformedResponse. There is no fallback embedding.
//
// # Fx
//
//	app := fx.New(
//	    embedding.FXModule,
//	    fx.Invoke(func(c *embedding.Client) { ... }),
//	)
package embedding
