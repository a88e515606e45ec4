package dashvector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DataType is the element type of a collection's dense vectors.
type DataType string

const (
	DataTypeFloat DataType = "FLOAT"
	DataTypeInt   DataType = "INT"
)

// Metric is the similarity metric of a collection.
type Metric string

const (
	MetricCosine     Metric = "cosine"
	MetricDotProduct Metric = "dotproduct"
	MetricEuclidean  Metric = "euclidean"
)

// FieldType is the declared type of a scalar field in a collection schema.
type FieldType string

const (
	FieldTypeBool   FieldType = "BOOL"
	FieldTypeString FieldType = "STRING"
	FieldTypeInt    FieldType = "INT"
	FieldTypeFloat  FieldType = "FLOAT"
)

// CollectionStatus is the lifecycle state of a collection or partition.
type CollectionStatus string

const (
	StatusInitialized CollectionStatus = "INITIALIZED"
	StatusServing     CollectionStatus = "SERVING"
	StatusDropping    CollectionStatus = "DROPPING"
	StatusError       CollectionStatus = "ERROR"
)

// SparseVector maps dimension index to weight. On the wire the indices are
// JSON object keys, which encoding/json converts to and from int.
type SparseVector map[int]float32

// Doc is a stored or returned document.
//
// Fields holds scalar values; numbers decoded from responses are float64.
// Score is only set on query results.
type Doc struct {
	ID           string         `json:"id,omitempty"`
	Vector       []float32      `json:"vector,omitempty"`
	SparseVector SparseVector   `json:"sparse_vector,omitempty"`
	Fields       map[string]any `json:"fields,omitempty"`
	Score        float32        `json:"score,omitempty"`
}

// DocOpResult is the outcome of one document in a batch write or delete.
type DocOpResult struct {
	ID      string `json:"id"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// OK reports whether the document was processed successfully.
func (r DocOpResult) OK() bool {
	return r.Code == 0
}

// Err returns nil for a successful result and an *Error otherwise.
func (r DocOpResult) Err() error {
	if r.OK() {
		return nil
	}
	return &Error{Operation: "doc " + r.ID, Code: r.Code, Message: r.Message}
}

// Group is one bucket of a group-by query.
type Group struct {
	// GroupID is the value of the group-by field, rendered as text.
	GroupID string `json:"group_id"`
	Docs    []Doc  `json:"docs"`
}

// UnmarshalJSON accepts string, numeric and boolean group ids.
func (g *Group) UnmarshalJSON(data []byte) error {
	var raw struct {
		GroupID json.RawMessage `json:"group_id"`
		Docs    []Doc           `json:"docs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.Docs = raw.Docs
	g.GroupID = ""
	id := bytes.TrimSpace(raw.GroupID)
	if len(id) == 0 || bytes.Equal(id, []byte("null")) {
		return nil
	}
	if id[0] == '"' {
		return json.Unmarshal(id, &g.GroupID)
	}
	g.GroupID = strings.TrimSpace(string(id))
	return nil
}

// Collection is the description returned by DescribeCollection.
type Collection struct {
	Name         string                      `json:"name"`
	Dimension    int                         `json:"dimension"`
	DataType     DataType                    `json:"dtype"`
	Metric       Metric                      `json:"metric"`
	FieldsSchema map[string]FieldType        `json:"fields_schema"`
	Status       CollectionStatus            `json:"status"`
	Partitions   map[string]CollectionStatus `json:"partitions"`
}

// CollectionStats is the output of CollectionStats.
type CollectionStats struct {
	TotalDocCount     Count                     `json:"total_doc_count"`
	IndexCompleteness float64                   `json:"index_completeness"`
	Partitions        map[string]PartitionStats `json:"partitions"`
}

// PartitionStats is the per-partition part of CollectionStats.
type PartitionStats struct {
	TotalDocCount Count `json:"total_doc_count"`
}

// Count is a document count. The service encodes counts either as numbers or
// as numeric strings; both decode.
type Count int64

func (c *Count) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("dashvector: invalid count %q: %w", s, err)
	}
	*c = Count(n)
	return nil
}
