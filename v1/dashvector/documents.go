package dashvector

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

// InsertDocs inserts new documents. Documents without an id get one assigned
// by the server, reported in the returned results.
//
// The results hold one entry per document. A document rejected by the server
// shows up as a result with a non-zero Code; it does not turn the call into
// an error as long as the server reported per-document results.
func (c *Client) InsertDocs(ctx context.Context, collection string, req *WriteDocsRequest) ([]DocOpResult, error) {
	return c.writeDocs(ctx, "insert_docs", http.MethodPost, collection, req)
}

// UpsertDocs inserts documents or replaces existing ones with the same id.
// Per-document outcomes are reported like InsertDocs.
func (c *Client) UpsertDocs(ctx context.Context, collection string, req *WriteDocsRequest) ([]DocOpResult, error) {
	return c.writeDocs(ctx, "upsert_docs", http.MethodPost, collection, req, "upsert")
}

// UpdateDocs updates existing documents; unknown ids fail per document.
func (c *Client) UpdateDocs(ctx context.Context, collection string, req *WriteDocsRequest) ([]DocOpResult, error) {
	return c.writeDocs(ctx, "update_docs", http.MethodPut, collection, req)
}

func (c *Client) writeDocs(ctx context.Context, op, method, collection string, req *WriteDocsRequest, suffix ...string) (_ []DocOpResult, err error) {
	ctx, o := c.begin(ctx, op, collection)
	defer func() { o.end(err) }()

	if err = req.validate(); err != nil {
		return nil, err
	}
	o.setPartition(req.Partition)

	path, err := collectionPath(collection, append([]string{"docs"}, suffix...)...)
	if err != nil {
		return nil, err
	}
	results, err := c.callDocOp(ctx, o.name, method, path, req)
	o.setSize(len(results))
	return results, err
}

// DeleteDocs deletes documents by id, or all documents of a partition.
func (c *Client) DeleteDocs(ctx context.Context, collection string, req *DeleteDocsRequest) (_ []DocOpResult, err error) {
	ctx, o := c.begin(ctx, "delete_docs", collection)
	defer func() { o.end(err) }()

	if err = req.validate(); err != nil {
		return nil, err
	}
	o.setPartition(req.Partition)

	path, err := collectionPath(collection, "docs")
	if err != nil {
		return nil, err
	}
	results, err := c.callDocOp(ctx, o.name, http.MethodDelete, path, req)
	o.setSize(len(results))
	return results, err
}

// callDocOp performs a batch document call. When the server fails the call
// but still returns per-document results, those are returned without error.
func (c *Client) callDocOp(ctx context.Context, op, method, path string, body any) ([]DocOpResult, error) {
	env, err := c.call(ctx, op, method, path, nil, body, nil)

	var remote *Error
	if err != nil && !errors.As(err, &remote) {
		return nil, err
	}
	if env == nil || !env.hasOutput() {
		return nil, err
	}

	var results []DocOpResult
	if derr := json.Unmarshal(env.Output, &results); derr != nil {
		if err != nil {
			return nil, err
		}
		return nil, errors.Join(ErrMalformedResponse, derr)
	}
	if err != nil && len(results) == 0 {
		return nil, err
	}
	return results, nil
}

// QueryDocs runs a similarity query. Results are returned in server order,
// best match first.
//
// Example:
//
//	docs, err := client.QueryDocs(ctx, "poems", &dashvector.QueryRequest{
//	    Target: dashvector.ByVector{Vector: dense, Sparse: sparse},
//	    Filter: "author = 'Li Bai'",
//	    TopK:   5,
//	})
func (c *Client) QueryDocs(ctx context.Context, collection string, req *QueryRequest) (_ []Doc, err error) {
	ctx, o := c.begin(ctx, "query_docs", collection)
	defer func() { o.end(err) }()

	body, err := req.body()
	if err != nil {
		return nil, err
	}
	o.setPartition(body.Partition)

	path, err := collectionPath(collection, "query")
	if err != nil {
		return nil, err
	}
	var docs []Doc
	if _, err = c.call(ctx, o.name, http.MethodPost, path, nil, body, &docs); err != nil {
		return nil, err
	}
	o.setSize(len(docs))
	return docs, nil
}

// QueryGroupBy runs a similarity query and buckets the results by the value
// of GroupByField.
func (c *Client) QueryGroupBy(ctx context.Context, collection string, req *GroupByRequest) (_ []Group, err error) {
	ctx, o := c.begin(ctx, "query_group_by", collection)
	defer func() { o.end(err) }()

	body, err := req.body()
	if err != nil {
		return nil, err
	}
	o.setPartition(body.Partition)

	path, err := collectionPath(collection, "query_group_by")
	if err != nil {
		return nil, err
	}
	var groups []Group
	if _, err = c.call(ctx, o.name, http.MethodPost, path, nil, body, &groups); err != nil {
		return nil, err
	}
	o.setSize(len(groups))
	return groups, nil
}

// FetchDocs returns the documents with the given ids keyed by id. Ids that do
// not exist are absent from the map.
func (c *Client) FetchDocs(ctx context.Context, collection string, req *FetchDocsRequest) (_ map[string]Doc, err error) {
	ctx, o := c.begin(ctx, "fetch_docs", collection)
	defer func() { o.end(err) }()

	if req == nil || len(req.IDs) == 0 {
		return nil, invalidf("at least one id is required")
	}
	for _, id := range req.IDs {
		if strings.TrimSpace(id) == "" || strings.Contains(id, ",") {
			return nil, invalidf("invalid id %q", id)
		}
	}
	o.setPartition(req.Partition)

	path, err := collectionPath(collection, "docs")
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("ids", strings.Join(req.IDs, ","))
	if req.Partition != "" {
		q.Set("partition", req.Partition)
	}

	docs := map[string]Doc{}
	if _, err = c.call(ctx, o.name, http.MethodGet, path, q, nil, &docs); err != nil {
		return nil, err
	}
	for id, d := range docs {
		if d.ID == "" {
			d.ID = id
			docs[id] = d
		}
	}
	o.setSize(len(docs))
	return docs, nil
}
