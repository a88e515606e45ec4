// Package dashvector is a client for the DashVector vector database REST API.
//
// # Overview
//
// Every method maps to one HTTP call against a cluster endpoint, authenticated
// with the dashvector-auth-token header. Responses share an envelope
// ({"code", "message", "request_id", "output"}); a non-zero code or a non-2xx
// status is returned as *Error.
//
// Collections:
//
//	CreateCollection, DescribeCollection, DeleteCollection,
//	ListCollections, CollectionStats, CollectionReady, WaitCollectionReady
//
// Partitions:
//
//	CreatePartition, DescribePartition, DeletePartition, ListPartitions
//
// Documents:
//
//	InsertDocs, UpsertDocs, UpdateDocs, DeleteDocs, FetchDocs,
//	QueryDocs, QueryGroupBy
//
// # Usage
//
//	cfg := dashvector.NewConfig() // DASH_VECTOR_ENDPOINT, DASH_VECTOR_APIKEY
//	client, err := dashvector.NewClient(cfg)
//	if err != nil {
//	    return err
//	}
//
//	err = client.CreateCollection(ctx, &dashvector.CreateCollectionRequest{
//	    Name:         "poems",
//	    Dimension:    1024,
//	    Metric:       dashvector.MetricDotProduct,
//	    FieldsSchema: map[string]dashvector.FieldType{"title": dashvector.FieldTypeString},
//	})
//	if err := client.WaitCollectionReady(ctx, "poems", 5*time.Second); err != nil {
//	    return err
//	}
//
//	results, err := client.UpsertDocs(ctx, "poems", &dashvector.WriteDocsRequest{
//	    Docs: []dashvector.Doc{{ID: "1", Vector: vec, Fields: map[string]any{"title": "Quiet Night"}}},
//	})
//	for _, r := range results {
//	    if !r.OK() { ... }
//	}
//
// # Queries
//
// A query is anchored on exactly one QueryTarget:
//
//	dashvector.ByVector{Vector: dense, Sparse: sparse} // dense, optionally hybrid
//	dashvector.BySparseVector{Sparse: sparse}
//	dashvector.ByID{ID: "1"}                           // use a stored doc's vector
//	dashvector.ByFilter{}                              // filter only
//
// Filters are SQL where clauses. BuildFilter renders a vectordb.FilterSet into
// that dialect.
//
// # Errors
//
// Validation failures wrap ErrInvalidRequest. Remote failures are *Error;
// IsNotFound recognises missing collections ("Not found collection").
// Batch writes report per-document outcomes in DocOpResult rather than
// failing the whole call.
//
// # Observability
//
// Each call opens an OpenTelemetry client span, injects the W3C trace headers,
// logs through the optional logger and reports to the optional
// observability.Observer (component "dashvector").
//
// # FX
//
// FXModule provides *Config from the environment and *Client.
package dashvector
