package dashsearch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dashsearch/dashsearch-go/v1/dashvector"
	"github.com/dashsearch/dashsearch-go/v1/embedding"
	"github.com/dashsearch/dashsearch-go/v1/logger"
	"github.com/dashsearch/dashsearch-go/v1/observability"
	"github.com/dashsearch/dashsearch-go/v1/vectordb"
)

const (
	// ContentField is the stored field holding a record's text.
	ContentField = "__content__"

	// Dimension is the dense vector size of every collection this package
	// creates. It matches the default output of text-embedding-v3.
	Dimension = 1024

	// Metric is the similarity metric of every collection this package creates.
	Metric = dashvector.MetricDotProduct

	// DefaultTopK is the number of search results when WithTopK is not given.
	DefaultTopK = 5
)

// Client stores text records with their embeddings and searches them by
// meaning. It is immutable after construction and safe for concurrent use.
type Client struct {
	store    VectorStore
	embedder Embedder
	logger   logger.Logger
	observer observability.Observer
}

// ClientOption customises a Client at construction.
type ClientOption func(*Client)

func WithLogger(l logger.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithObserver(o observability.Observer) ClientOption {
	return func(c *Client) {
		c.observer = o
	}
}

// NewClient builds a search client on top of an existing store and embedder.
func NewClient(store VectorStore, embedder Embedder, opts ...ClientOption) (*Client, error) {
	if store == nil || embedder == nil {
		return nil, fmt.Errorf("dashsearch: vector store and embedder are required")
	}
	c := &Client{
		store:    store,
		embedder: embedder,
		logger:   logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewClientFromConfig builds the dashvector and embedding clients from cfg
// and wires them together. Logger and observer options are passed down to
// both backing clients.
//
// Example:
//
//	client, err := dashsearch.NewClientFromConfig(dashsearch.NewConfig())
func NewClientFromConfig(cfg *Config, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	probe := &Client{}
	for _, opt := range opts {
		opt(probe)
	}

	store, err := dashvector.NewClient(cfg.VectorStore,
		dashvector.WithLogger(probe.logger),
		dashvector.WithObserver(probe.observer),
	)
	if err != nil {
		return nil, err
	}
	emb, err := embedding.NewClient(cfg.Embedding,
		embedding.WithLogger(probe.logger),
		embedding.WithObserver(probe.observer),
	)
	if err != nil {
		return nil, err
	}
	return NewClient(store, emb, opts...)
}

// CreateCollection creates a collection for records: dense FLOAT vectors of
// size Dimension compared by Metric, the caller's schema plus the reserved
// content field.
func (c *Client) CreateCollection(ctx context.Context, name string, schema map[string]dashvector.FieldType) (err error) {
	start := time.Now()
	defer func() { c.observeOperation("create_collection", name, "", start, err, 0) }()

	if _, ok := schema[ContentField]; ok {
		return ErrReservedField
	}
	fields := make(map[string]dashvector.FieldType, len(schema)+1)
	for k, v := range schema {
		fields[k] = v
	}
	fields[ContentField] = dashvector.FieldTypeString

	err = c.store.CreateCollection(ctx, &dashvector.CreateCollectionRequest{
		Name:         name,
		Dimension:    Dimension,
		DataType:     dashvector.DataTypeFloat,
		Metric:       Metric,
		FieldsSchema: fields,
	})
	if err != nil {
		return fmt.Errorf("dashsearch: create collection %s: %w", name, err)
	}
	c.logger.InfoWithContext(ctx, "collection created", nil, map[string]interface{}{
		"collection": name,
		"dimension":  Dimension,
	})
	return nil
}

// CollectionReady reports whether the collection is serving. Any failure
// reads as not ready.
func (c *Client) CollectionReady(ctx context.Context, name string) bool {
	return c.store.CollectionReady(ctx, name)
}

// WaitCollectionReady polls every interval until the collection is serving
// or ctx is done.
func (c *Client) WaitCollectionReady(ctx context.Context, name string, interval time.Duration) error {
	return c.store.WaitCollectionReady(ctx, name, interval)
}

// CreatePartition adds a partition to a collection.
func (c *Client) CreatePartition(ctx context.Context, collection, partition string) error {
	if err := c.store.CreatePartition(ctx, collection, partition); err != nil {
		return fmt.Errorf("dashsearch: create partition %s/%s: %w", collection, partition, err)
	}
	return nil
}

// AddRecord embeds the record content and upserts it as one document. The
// stored document id is returned; it is assigned by the server when rec.ID
// is empty. Adding a record with an existing id replaces it.
func (c *Client) AddRecord(ctx context.Context, collection string, rec Record, opts ...CallOption) (id string, err error) {
	o := applyCallOptions(opts)
	start := time.Now()
	defer func() { c.observeOperation("add_record", collection, o.partition, start, err, 1) }()

	if strings.TrimSpace(rec.Content) == "" {
		return "", ErrEmptyContent
	}
	if _, ok := rec.Fields[ContentField]; ok {
		return "", ErrReservedField
	}

	emb, err := c.embedder.CreateEmbedding(ctx, rec.Content)
	if err != nil {
		return "", fmt.Errorf("dashsearch: embed record: %w", err)
	}

	fields := make(map[string]any, len(rec.Fields)+1)
	for k, v := range rec.Fields {
		fields[k] = v
	}
	fields[ContentField] = rec.Content

	results, err := c.store.UpsertDocs(ctx, collection, &dashvector.WriteDocsRequest{
		Docs: []dashvector.Doc{{
			ID:           rec.ID,
			Vector:       emb.Dense,
			SparseVector: emb.Sparse.Map(),
			Fields:       fields,
		}},
		Partition: o.partition,
	})
	if err != nil {
		return "", fmt.Errorf("dashsearch: upsert record: %w", err)
	}

	id = rec.ID
	if len(results) > 0 {
		if rerr := results[0].Err(); rerr != nil {
			return "", fmt.Errorf("dashsearch: upsert record: %w", rerr)
		}
		if results[0].ID != "" {
			id = results[0].ID
		}
	}
	if id == "" {
		return "", fmt.Errorf("dashsearch: upsert record: %w: no document id returned", dashvector.ErrMalformedResponse)
	}
	return id, nil
}

// Search embeds query and returns the most similar records, best first.
// Tag filters are combined with AND.
//
// Example:
//
//	records, err := client.Search(ctx, "poems", "homesick moonlight",
//	    dashsearch.WithTopK(3),
//	    dashsearch.WithTagFilters(map[string]string{"author": "Li Bai"}),
//	)
func (c *Client) Search(ctx context.Context, collection, query string, opts ...CallOption) (_ []Record, err error) {
	o := applyCallOptions(opts)
	start := time.Now()
	var size int
	defer func() { c.observeOperation("search", collection, o.partition, start, err, size) }()

	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyContent
	}
	if o.topK <= 0 {
		return nil, fmt.Errorf("%w: topk must be positive, got %d", dashvector.ErrInvalidRequest, o.topK)
	}

	filter, err := TagFilter(o.tagFilters)
	if err != nil {
		return nil, err
	}

	emb, err := c.embedder.CreateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashsearch: embed query: %w", err)
	}

	docs, err := c.store.QueryDocs(ctx, collection, &dashvector.QueryRequest{
		Target:    dashvector.ByVector{Vector: emb.Dense, Sparse: emb.Sparse.Map()},
		Filter:    filter,
		TopK:      o.topK,
		Partition: o.partition,
	})
	if err != nil {
		return nil, fmt.Errorf("dashsearch: query: %w", err)
	}

	records := make([]Record, 0, len(docs))
	for _, d := range docs {
		rec, err := recordFromDoc(d, true)
		if err != nil {
			return nil, fmt.Errorf("dashsearch: doc %s: %w", d.ID, err)
		}
		records = append(records, rec)
	}
	size = len(records)
	return records, nil
}

// GetRecord fetches a record by id.
func (c *Client) GetRecord(ctx context.Context, collection, id string, opts ...CallOption) (*Record, error) {
	o := applyCallOptions(opts)
	docs, err := c.store.FetchDocs(ctx, collection, &dashvector.FetchDocsRequest{
		IDs:       []string{id},
		Partition: o.partition,
	})
	if err != nil {
		return nil, fmt.Errorf("dashsearch: fetch record: %w", err)
	}
	doc, ok := docs[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	rec, err := recordFromDoc(doc, false)
	if err != nil {
		return nil, fmt.Errorf("dashsearch: doc %s: %w", id, err)
	}
	return &rec, nil
}

// DeleteRecords removes records by id and reports the per-id outcome.
func (c *Client) DeleteRecords(ctx context.Context, collection string, ids []string, opts ...CallOption) ([]dashvector.DocOpResult, error) {
	o := applyCallOptions(opts)
	results, err := c.store.DeleteDocs(ctx, collection, &dashvector.DeleteDocsRequest{
		IDs:       ids,
		Partition: o.partition,
	})
	if err != nil {
		return nil, fmt.Errorf("dashsearch: delete records: %w", err)
	}
	return results, nil
}

// TagFilter renders tag equality constraints as a filter clause, e.g.
// {"author": "Li Bai", "dynasty": "Tang"} becomes
// "author = 'Li Bai' and dynasty = 'Tang'". Keys are sorted so the output is
// deterministic. No tags give "".
func TagFilter(tags map[string]string) (string, error) {
	if len(tags) == 0 {
		return "", nil
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	conds := make([]vectordb.FilterCondition, 0, len(keys))
	for _, k := range keys {
		conds = append(conds, vectordb.NewMatch(k, tags[k]))
	}
	filter, err := dashvector.BuildFilter(vectordb.NewFilterSet(vectordb.Must(conds...)))
	if err != nil {
		return "", fmt.Errorf("dashsearch: tag filter: %w", err)
	}
	return filter, nil
}

func (c *Client) observeOperation(op, collection, partition string, start time.Time, err error, size int) {
	if err != nil && !errors.Is(err, context.Canceled) {
		c.logger.Warn("dashsearch operation failed", err, map[string]interface{}{
			"operation":  op,
			"collection": collection,
		})
	}
	if c.observer == nil {
		return
	}
	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "dashsearch",
		Operation:   op,
		Resource:    collection,
		SubResource: partition,
		Duration:    time.Since(start),
		Error:       err,
		Size:        int64(size),
	})
}
