package dashvector

import "strings"

// Limits enforced before a request is sent.
const (
	DefaultTopK      = 10
	MaxTopK          = 1024
	MaxDimension     = 20000
	MaxDocsPerBatch  = 1024
	MaxGroupCount    = 64
	MaxGroupTopK     = 16
	DefaultGroupSize = 1
)

// CreateCollectionRequest describes a new collection.
type CreateCollectionRequest struct {
	Name      string
	Dimension int

	// DataType defaults to FLOAT.
	DataType DataType

	// Metric defaults to cosine. Cosine requires FLOAT vectors.
	Metric Metric

	// FieldsSchema pre-declares scalar fields. Undeclared fields can still be
	// written; declared ones can be filtered on efficiently.
	FieldsSchema map[string]FieldType

	ExtraParams map[string]string
}

type createCollectionBody struct {
	Name         string               `json:"name"`
	Dimension    int                  `json:"dimension"`
	DataType     DataType             `json:"dtype"`
	Metric       Metric               `json:"metric"`
	FieldsSchema map[string]FieldType `json:"fields_schema,omitempty"`
	ExtraParams  map[string]string    `json:"extra_params,omitempty"`
}

func (r *CreateCollectionRequest) body() (*createCollectionBody, error) {
	if r == nil {
		return nil, invalidf("create collection request is nil")
	}
	if strings.TrimSpace(r.Name) == "" {
		return nil, invalidf("collection name is required")
	}
	if r.Dimension <= 0 || r.Dimension > MaxDimension {
		return nil, invalidf("dimension must be in (0, %d], got %d", MaxDimension, r.Dimension)
	}

	b := &createCollectionBody{
		Name:         r.Name,
		Dimension:    r.Dimension,
		DataType:     r.DataType,
		Metric:       r.Metric,
		FieldsSchema: r.FieldsSchema,
		ExtraParams:  r.ExtraParams,
	}
	if b.DataType == "" {
		b.DataType = DataTypeFloat
	}
	if b.Metric == "" {
		b.Metric = MetricCosine
	}

	switch b.DataType {
	case DataTypeFloat, DataTypeInt:
	default:
		return nil, invalidf("unknown data type %q", b.DataType)
	}
	switch b.Metric {
	case MetricCosine, MetricDotProduct, MetricEuclidean:
	default:
		return nil, invalidf("unknown metric %q", b.Metric)
	}
	if b.Metric == MetricCosine && b.DataType != DataTypeFloat {
		return nil, invalidf("metric cosine requires FLOAT vectors")
	}
	for name, ft := range b.FieldsSchema {
		switch ft {
		case FieldTypeBool, FieldTypeString, FieldTypeInt, FieldTypeFloat:
		default:
			return nil, invalidf("field %q has unknown type %q", name, ft)
		}
	}
	return b, nil
}

// WriteDocsRequest is the payload of InsertDocs, UpsertDocs and UpdateDocs.
type WriteDocsRequest struct {
	Docs []Doc `json:"docs"`

	// Partition defaults to the collection's default partition.
	Partition string `json:"partition,omitempty"`
}

func (r *WriteDocsRequest) validate() error {
	if r == nil || len(r.Docs) == 0 {
		return invalidf("at least one doc is required")
	}
	if len(r.Docs) > MaxDocsPerBatch {
		return invalidf("at most %d docs per request, got %d", MaxDocsPerBatch, len(r.Docs))
	}
	return nil
}

// FetchDocsRequest selects documents by id.
type FetchDocsRequest struct {
	IDs       []string
	Partition string
}

// DeleteDocsRequest deletes documents by id, or every document of the
// partition when DeleteAll is set. IDs and DeleteAll are mutually exclusive.
type DeleteDocsRequest struct {
	IDs       []string `json:"ids,omitempty"`
	Partition string   `json:"partition,omitempty"`
	DeleteAll bool     `json:"delete_all,omitempty"`
}

func (r *DeleteDocsRequest) validate() error {
	if r == nil {
		return invalidf("delete request is nil")
	}
	if r.DeleteAll && len(r.IDs) > 0 {
		return invalidf("ids and delete_all are mutually exclusive")
	}
	if !r.DeleteAll && len(r.IDs) == 0 {
		return invalidf("at least one id is required")
	}
	return nil
}

// QueryTarget selects what a query is anchored on. The implementations are
// ByVector, BySparseVector, ByID and ByFilter; exactly one is used per query.
type QueryTarget interface {
	applyTarget(b *queryBody) error
}

// ByVector queries by a dense vector, optionally combined with a sparse one
// for hybrid retrieval.
type ByVector struct {
	Vector []float32
	Sparse SparseVector
}

func (t ByVector) applyTarget(b *queryBody) error {
	if len(t.Vector) == 0 {
		return invalidf("query vector is empty")
	}
	b.Vector = t.Vector
	b.SparseVector = t.Sparse
	return nil
}

// BySparseVector queries by a sparse vector alone.
type BySparseVector struct {
	Sparse SparseVector
}

func (t BySparseVector) applyTarget(b *queryBody) error {
	if len(t.Sparse) == 0 {
		return invalidf("query sparse vector is empty")
	}
	b.SparseVector = t.Sparse
	return nil
}

// ByID queries with the stored vector of an existing document.
type ByID struct {
	ID string
}

func (t ByID) applyTarget(b *queryBody) error {
	if strings.TrimSpace(t.ID) == "" {
		return invalidf("query id is empty")
	}
	b.ID = t.ID
	return nil
}

// ByFilter returns documents matching the request filter without ranking by
// similarity. The request must carry a filter.
type ByFilter struct{}

func (ByFilter) applyTarget(b *queryBody) error {
	if strings.TrimSpace(b.Filter) == "" {
		return invalidf("filter-only query requires a filter")
	}
	return nil
}

// QueryRequest is a similarity query.
type QueryRequest struct {
	Target QueryTarget

	// Filter is a SQL where clause, see BuildFilter.
	Filter string

	// TopK defaults to DefaultTopK.
	TopK int

	Partition     string
	OutputFields  []string
	IncludeVector bool

	// VectorField selects the vector of a multi-vector collection.
	VectorField string
}

// GroupByRequest is a similarity query whose results are bucketed by the
// value of GroupByField.
type GroupByRequest struct {
	Target       QueryTarget
	GroupByField string

	// GroupCount is the number of groups, (0, 64], default 1.
	GroupCount int

	// GroupTopK is the number of docs per group, (0, 16], default 1.
	GroupTopK int

	Filter        string
	Partition     string
	OutputFields  []string
	IncludeVector bool
	VectorField   string
}

type queryBody struct {
	Vector        []float32    `json:"vector,omitempty"`
	SparseVector  SparseVector `json:"sparse_vector,omitempty"`
	ID            string       `json:"id,omitempty"`
	TopK          int          `json:"topk,omitempty"`
	Filter        string       `json:"filter,omitempty"`
	IncludeVector bool         `json:"include_vector"`
	OutputFields  []string     `json:"output_fields,omitempty"`
	Partition     string       `json:"partition,omitempty"`
	VectorField   string       `json:"vector_field,omitempty"`
	GroupByField  string       `json:"group_by_field,omitempty"`
	GroupCount    int          `json:"group_count,omitempty"`
	GroupTopK     int          `json:"group_topk,omitempty"`
}

func (r *QueryRequest) body() (*queryBody, error) {
	if r == nil {
		return nil, invalidf("query request is nil")
	}
	if r.Target == nil {
		return nil, invalidf("query target is required")
	}
	topK := r.TopK
	if topK == 0 {
		topK = DefaultTopK
	}
	if topK < 0 || topK > MaxTopK {
		return nil, invalidf("topk must be in (0, %d], got %d", MaxTopK, r.TopK)
	}

	b := &queryBody{
		TopK:          topK,
		Filter:        r.Filter,
		IncludeVector: r.IncludeVector,
		OutputFields:  r.OutputFields,
		Partition:     r.Partition,
		VectorField:   r.VectorField,
	}
	if err := r.Target.applyTarget(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *GroupByRequest) body() (*queryBody, error) {
	if r == nil {
		return nil, invalidf("group by request is nil")
	}
	if r.Target == nil {
		return nil, invalidf("query target is required")
	}
	if strings.TrimSpace(r.GroupByField) == "" {
		return nil, invalidf("group_by_field is required")
	}

	count, topK := r.GroupCount, r.GroupTopK
	if count == 0 {
		count = DefaultGroupSize
	}
	if topK == 0 {
		topK = DefaultGroupSize
	}
	if count < 0 || count > MaxGroupCount {
		return nil, invalidf("group_count must be in (0, %d], got %d", MaxGroupCount, r.GroupCount)
	}
	if topK < 0 || topK > MaxGroupTopK {
		return nil, invalidf("group_topk must be in (0, %d], got %d", MaxGroupTopK, r.GroupTopK)
	}

	b := &queryBody{
		Filter:        r.Filter,
		IncludeVector: r.IncludeVector,
		OutputFields:  r.OutputFields,
		Partition:     r.Partition,
		VectorField:   r.VectorField,
		GroupByField:  r.GroupByField,
		GroupCount:    count,
		GroupTopK:     topK,
	}
	if err := r.Target.applyTarget(b); err != nil {
		return nil, err
	}
	return b, nil
}
