package dashvector

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCollection(t *testing.T) {
	client, fake := newTestClient(t, okHandler(nil))

	err := client.CreateCollection(context.Background(), &CreateCollectionRequest{
		Name:         "poems",
		Dimension:    1024,
		Metric:       MetricDotProduct,
		FieldsSchema: map[string]FieldType{"title": FieldTypeString},
	})
	require.NoError(t, err)

	req := fake.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1/collections", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "poems", req.Body["name"])
	assert.EqualValues(t, 1024, req.Body["dimension"])
	assert.Equal(t, "FLOAT", req.Body["dtype"])
	assert.Equal(t, "dotproduct", req.Body["metric"])
	assert.Equal(t, map[string]any{"title": "STRING"}, req.Body["fields_schema"])
}

func TestCreateCollectionValidation(t *testing.T) {
	client, fake := newTestClient(t, okHandler(nil))
	ctx := context.Background()

	tests := map[string]*CreateCollectionRequest{
		"nil":            nil,
		"no name":        {Dimension: 4},
		"zero dimension": {Name: "c"},
		"huge dimension": {Name: "c", Dimension: MaxDimension + 1},
		"bad metric":     {Name: "c", Dimension: 4, Metric: "manhattan"},
		"bad dtype":      {Name: "c", Dimension: 4, DataType: "DOUBLE"},
		"cosine int":     {Name: "c", Dimension: 4, DataType: DataTypeInt},
		"bad field type": {Name: "c", Dimension: 4, FieldsSchema: map[string]FieldType{"x": "DATE"}},
	}
	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, client.CreateCollection(ctx, req), ErrInvalidRequest)
		})
	}
	assert.Zero(t, fake.count(), "invalid requests must not reach the server")
}

func TestDescribeCollection(t *testing.T) {
	client, fake := newTestClient(t, okHandler(map[string]any{
		"name":          "poems",
		"dimension":     1024,
		"dtype":         "FLOAT",
		"metric":        "dotproduct",
		"fields_schema": map[string]string{"title": "STRING", "__content__": "STRING"},
		"status":        "SERVING",
		"partitions":    map[string]string{"default": "SERVING", "tang": "INITIALIZED"},
	}))

	col, err := client.DescribeCollection(context.Background(), "poems")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, fake.last(t).Method)
	assert.Equal(t, "/v1/collections/poems", fake.last(t).Path)
	assert.Equal(t, 1024, col.Dimension)
	assert.Equal(t, MetricDotProduct, col.Metric)
	assert.Equal(t, StatusServing, col.Status)
	assert.Equal(t, FieldTypeString, col.FieldsSchema["title"])
	assert.Equal(t, StatusInitialized, col.Partitions["tang"])
}

func TestCollectionPathIsEscaped(t *testing.T) {
	client, fake := newTestClient(t, okHandler(nil))

	require.NoError(t, client.DeleteCollection(context.Background(), "my poems"))
	assert.Equal(t, "/v1/collections/my%20poems", fake.last(t).Path)

	assert.ErrorIs(t, client.DeleteCollection(context.Background(), " "), ErrInvalidRequest)
}

func TestCollectionStatsAcceptsStringCounts(t *testing.T) {
	client, fake := newTestClient(t, okHandler(map[string]any{
		"total_doc_count":    "26",
		"index_completeness": 1.0,
		"partitions": map[string]any{
			"default": map[string]any{"total_doc_count": 26},
		},
	}))

	stats, err := client.CollectionStats(context.Background(), "poems")
	require.NoError(t, err)
	assert.Equal(t, "/v1/collections/poems/stats", fake.last(t).Path)
	assert.EqualValues(t, 26, stats.TotalDocCount)
	assert.EqualValues(t, 26, stats.Partitions["default"].TotalDocCount)
	assert.Equal(t, 1.0, stats.IndexCompleteness)
}

// statusSequence serves INITIALIZED for the first n describes, then SERVING.
func statusSequence(n int32, calls *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "INITIALIZED"
		if calls.Add(1) > n {
			status = "SERVING"
		}
		writeEnvelope(w, http.StatusOK, 0, "", map[string]any{"name": "poems", "status": status})
	}
}

func TestCollectionReady(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, statusSequence(1, &calls))
	ctx := context.Background()

	assert.False(t, client.CollectionReady(ctx, "poems"))
	assert.True(t, client.CollectionReady(ctx, "poems"))
}

func TestCollectionReadyFalseOnError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, -2021, "Not found collection", nil)
	})
	assert.False(t, client.CollectionReady(context.Background(), "missing"))
}

func TestWaitCollectionReadyPollsUntilServing(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, statusSequence(3, &calls))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, client.WaitCollectionReady(ctx, "poems", 10*time.Millisecond))
	assert.EqualValues(t, 4, calls.Load(), "three not-ready polls then one ready poll")
}

func TestWaitCollectionReadyHonoursContext(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, statusSequence(1000, &calls))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.WaitCollectionReady(ctx, "poems", 10*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
