package dashvector

import (
	"context"
	"net/http"
	"time"
)

// DefaultReadyPollInterval is used by WaitCollectionReady when no interval is given.
const DefaultReadyPollInterval = 5 * time.Second

// CreateCollection creates a collection. Creation is asynchronous on the
// server; use WaitCollectionReady before writing to it.
func (c *Client) CreateCollection(ctx context.Context, req *CreateCollectionRequest) (err error) {
	name := ""
	if req != nil {
		name = req.Name
	}
	ctx, o := c.begin(ctx, "create_collection", name)
	defer func() { o.end(err) }()

	body, err := req.body()
	if err != nil {
		return err
	}
	_, err = c.call(ctx, o.name, http.MethodPost, "/v1/collections", nil, body, nil)
	return err
}

// DescribeCollection returns the collection's schema and status. A missing
// collection yields an *Error for which IsNotFound is true.
func (c *Client) DescribeCollection(ctx context.Context, name string) (_ *Collection, err error) {
	ctx, o := c.begin(ctx, "describe_collection", name)
	defer func() { o.end(err) }()

	path, err := collectionPath(name)
	if err != nil {
		return nil, err
	}
	var out Collection
	if _, err = c.call(ctx, o.name, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Name == "" {
		out.Name = name
	}
	return &out, nil
}

// DeleteCollection drops the collection and all its documents.
func (c *Client) DeleteCollection(ctx context.Context, name string) (err error) {
	ctx, o := c.begin(ctx, "delete_collection", name)
	defer func() { o.end(err) }()

	path, err := collectionPath(name)
	if err != nil {
		return err
	}
	_, err = c.call(ctx, o.name, http.MethodDelete, path, nil, nil, nil)
	return err
}

// ListCollections returns the names of all collections of the cluster.
func (c *Client) ListCollections(ctx context.Context) (_ []string, err error) {
	ctx, o := c.begin(ctx, "list_collections", "")
	defer func() { o.end(err) }()

	var names []string
	if _, err = c.call(ctx, o.name, http.MethodGet, "/v1/collections", nil, nil, &names); err != nil {
		return nil, err
	}
	o.setSize(len(names))
	return names, nil
}

// CollectionStats returns document counts and index completeness.
func (c *Client) CollectionStats(ctx context.Context, name string) (_ *CollectionStats, err error) {
	ctx, o := c.begin(ctx, "collection_stats", name)
	defer func() { o.end(err) }()

	path, err := collectionPath(name, "stats")
	if err != nil {
		return nil, err
	}
	var out CollectionStats
	if _, err = c.call(ctx, o.name, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CollectionReady reports whether the collection is SERVING. Any failure,
// including a missing collection, counts as not ready.
func (c *Client) CollectionReady(ctx context.Context, name string) bool {
	col, err := c.DescribeCollection(ctx, name)
	if err != nil {
		c.logger.DebugWithContext(ctx, "collection not ready", err, map[string]interface{}{
			"collection": name,
		})
		return false
	}
	return col.Status == StatusServing
}

// WaitCollectionReady polls CollectionReady every interval until it returns
// true or ctx is done, in which case ctx.Err() is returned. Bound the wait
// with a context deadline.
func (c *Client) WaitCollectionReady(ctx context.Context, name string, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultReadyPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if c.CollectionReady(ctx, name) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
