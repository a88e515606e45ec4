package dashsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashsearch/dashsearch-go/v1/dashvector"
	"github.com/dashsearch/dashsearch-go/v1/embedding"
)

// fakeEmbeddingServer embeds text as a bag of words: a constant dense vector
// and one sparse entry per distinct word, so ranking follows word overlap.
func fakeEmbeddingServer(t *testing.T, dim int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input struct {
				Texts []string `json:"texts"`
			} `json:"input"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		type entry struct {
			Index int     `json:"index"`
			Value float32 `json:"value"`
		}
		type emb struct {
			TextIndex       int       `json:"text_index"`
			Embedding       []float32 `json:"embedding"`
			SparseEmbedding []entry   `json:"sparse_embedding"`
		}
		out := make([]emb, 0, len(req.Input.Texts))
		for i, text := range req.Input.Texts {
			dense := make([]float32, dim)
			for j := range dense {
				dense[j] = 0.5
			}
			seen := map[int]bool{}
			sparse := []entry{}
			for _, word := range strings.Fields(strings.ToLower(text)) {
				h := fnv.New32a()
				_, _ = h.Write([]byte(word))
				idx := int(h.Sum32() % 100000)
				if !seen[idx] {
					seen[idx] = true
					sparse = append(sparse, entry{Index: idx, Value: 1})
				}
			}
			out = append(out, emb{TextIndex: i, Embedding: dense, SparseEmbedding: sparse})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"output":     map[string]any{"embeddings": out},
			"usage":      map[string]any{"total_tokens": len(req.Input.Texts)},
			"request_id": "emb-1",
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// memoryStore is an in-memory DashVector speaking the REST envelope. Filters
// support conjunctions of field = 'value'.
type memoryStore struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]dashvector.Doc // collection -> partition -> id
	nextID      int
}

var equalityClause = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*) = '((?:[^']|'')*)'(?: and |$)`)

func parseEqualities(filter string) (map[string]string, error) {
	out := map[string]string{}
	for rest := filter; rest != ""; {
		m := equalityClause.FindStringSubmatch(rest)
		if m == nil {
			return nil, fmt.Errorf("unsupported filter %q", filter)
		}
		out[m[1]] = strings.ReplaceAll(m[2], "''", "'")
		rest = rest[len(m[0]):]
	}
	return out, nil
}

func score(a, b dashvector.Doc) float32 {
	var s float32
	for i := range a.Vector {
		if i < len(b.Vector) {
			s += a.Vector[i] * b.Vector[i]
		}
	}
	for idx, v := range a.SparseVector {
		s += v * b.SparseVector[idx]
	}
	return s
}

func partitionName(p string) string {
	if p == "" {
		return "default"
	}
	return p
}

func newMemoryStore(t *testing.T) *httptest.Server {
	t.Helper()
	store := &memoryStore{collections: map[string]map[string]map[string]dashvector.Doc{}}

	reply := func(w http.ResponseWriter, code int, msg string, output any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code": code, "message": msg, "request_id": "req-1", "output": output,
		})
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store.mu.Lock()
		defer store.mu.Unlock()

		if r.Method == http.MethodPost && r.URL.Path == "/v1/collections" {
			var req struct {
				Name string `json:"name"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			store.collections[req.Name] = map[string]map[string]dashvector.Doc{"default": {}}
			reply(w, 0, "Success", nil)
			return
		}

		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/v1/collections/"), "/")
		name, action := parts[0], strings.Join(parts[1:], "/")
		col, ok := store.collections[name]
		if !ok {
			reply(w, -2021, "Not found collection : "+name, nil)
			return
		}

		switch {
		case r.Method == http.MethodGet && action == "":
			reply(w, 0, "Success", map[string]any{"name": name, "status": "SERVING"})

		case r.Method == http.MethodPost && action == "docs/upsert":
			var req dashvector.WriteDocsRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			part := col[partitionName(req.Partition)]
			results := make([]dashvector.DocOpResult, 0, len(req.Docs))
			for _, d := range req.Docs {
				if d.ID == "" {
					store.nextID++
					d.ID = fmt.Sprintf("auto-%d", store.nextID)
				}
				part[d.ID] = d
				results = append(results, dashvector.DocOpResult{ID: d.ID})
			}
			reply(w, 0, "Success", results)

		case r.Method == http.MethodPost && action == "query":
			var req struct {
				Vector       []float32               `json:"vector"`
				SparseVector dashvector.SparseVector `json:"sparse_vector"`
				TopK         int                     `json:"topk"`
				Filter       string                  `json:"filter"`
				Partition    string                  `json:"partition"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			want, err := parseEqualities(req.Filter)
			if err != nil {
				reply(w, -2008, err.Error(), nil)
				return
			}
			probe := dashvector.Doc{Vector: req.Vector, SparseVector: req.SparseVector}
			var hits []dashvector.Doc
			for _, d := range col[partitionName(req.Partition)] {
				matched := true
				for k, v := range want {
					if d.Fields[k] != v {
						matched = false
					}
				}
				if matched {
					hit := dashvector.Doc{ID: d.ID, Fields: d.Fields, Score: score(probe, d)}
					hits = append(hits, hit)
				}
			}
			sort.Slice(hits, func(i, j int) bool {
				if hits[i].Score != hits[j].Score {
					return hits[i].Score > hits[j].Score
				}
				return hits[i].ID < hits[j].ID
			})
			if len(hits) > req.TopK {
				hits = hits[:req.TopK]
			}
			reply(w, 0, "Success", hits)

		case r.Method == http.MethodGet && action == "docs":
			out := map[string]dashvector.Doc{}
			part := col[partitionName(r.URL.Query().Get("partition"))]
			for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
				if d, ok := part[id]; ok {
					out[id] = d
				}
			}
			reply(w, 0, "Success", out)

		case r.Method == http.MethodDelete && action == "docs":
			var req dashvector.DeleteDocsRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			part := col[partitionName(req.Partition)]
			results := make([]dashvector.DocOpResult, 0, len(req.IDs))
			for _, id := range req.IDs {
				if _, ok := part[id]; !ok {
					results = append(results, dashvector.DocOpResult{ID: id, Code: -2999, Message: "not found"})
					continue
				}
				delete(part, id)
				results = append(results, dashvector.DocOpResult{ID: id})
			}
			reply(w, 0, "Success", results)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newRoundTripClient(t *testing.T) *Client {
	t.Helper()
	const dim = 4

	vectorSrv := newMemoryStore(t)
	embedSrv := fakeEmbeddingServer(t, dim)

	embCfg := embedding.DefaultConfig()
	embCfg.Endpoint = embedSrv.URL + "/embeddings"
	embCfg.APIKey = "emb-key"

	client, err := NewClientFromConfig(&Config{
		VectorStore: dashvector.FromEndpoint(vectorSrv.URL).WithAPIKey("vec-key"),
		Embedding:   embCfg,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.CreateCollection(ctx, "poems", map[string]dashvector.FieldType{
		"author":  dashvector.FieldTypeString,
		"dynasty": dashvector.FieldTypeString,
	}))
	require.NoError(t, client.WaitCollectionReady(ctx, "poems", 10*time.Millisecond))
	return client
}

func TestRoundTripAddAndGet(t *testing.T) {
	ctx := context.Background()
	client := newRoundTripClient(t)

	fields := map[string]any{"author": "Li Bai", "dynasty": "Tang", "year": 742.0, "famous": true}
	id, err := client.AddRecord(ctx, "poems", Record{
		ID:      "quiet-night",
		Content: "Before my bed the moonlight glows",
		Fields:  fields,
	})
	require.NoError(t, err)
	assert.Equal(t, "quiet-night", id)

	rec, err := client.GetRecord(ctx, "poems", id)
	require.NoError(t, err)
	assert.Equal(t, "Before my bed the moonlight glows", rec.Content)
	assert.Equal(t, fields, rec.Fields)
}

func TestRoundTripServerAssignedID(t *testing.T) {
	ctx := context.Background()
	client := newRoundTripClient(t)

	id, err := client.AddRecord(ctx, "poems", Record{Content: "spring dawn birds singing"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec, err := client.GetRecord(ctx, "poems", id)
	require.NoError(t, err)
	assert.Equal(t, "spring dawn birds singing", rec.Content)
}

func TestRoundTripUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	client := newRoundTripClient(t)

	for _, content := range []string{"first draft", "final version"} {
		_, err := client.AddRecord(ctx, "poems", Record{ID: "p", Content: content})
		require.NoError(t, err)
	}

	rec, err := client.GetRecord(ctx, "poems", "p")
	require.NoError(t, err)
	assert.Equal(t, "final version", rec.Content)

	records, err := client.Search(ctx, "poems", "version", WithTopK(10))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "p", records[0].ID)
}

func TestRoundTripSearch(t *testing.T) {
	ctx := context.Background()
	client := newRoundTripClient(t)

	poems := []Record{
		{ID: "1", Content: "before my bed the moonlight glows", Fields: map[string]any{"author": "Li Bai", "dynasty": "Tang"}},
		{ID: "2", Content: "the moonlight on the river", Fields: map[string]any{"author": "Du Fu", "dynasty": "Tang"}},
		{ID: "3", Content: "spring sleep unaware of dawn", Fields: map[string]any{"author": "Meng Haoran", "dynasty": "Tang"}},
		{ID: "4", Content: "the bright moonlight over mountains", Fields: map[string]any{"author": "Su Shi", "dynasty": "Song"}},
	}
	for _, p := range poems {
		_, err := client.AddRecord(ctx, "poems", p)
		require.NoError(t, err)
	}

	t.Run("ranked by similarity", func(t *testing.T) {
		records, err := client.Search(ctx, "poems", "moonlight glows before bed", WithTopK(2))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "1", records[0].ID)
		require.NotNil(t, records[0].Score)
		require.NotNil(t, records[1].Score)
		assert.GreaterOrEqual(t, *records[0].Score, *records[1].Score)
	})

	t.Run("every result satisfies the tags", func(t *testing.T) {
		tags := map[string]string{"dynasty": "Tang", "author": "Du Fu"}
		records, err := client.Search(ctx, "poems", "moonlight", WithTopK(10), WithTagFilters(tags))
		require.NoError(t, err)
		require.Len(t, records, 1)
		for _, r := range records {
			for k, v := range tags {
				assert.Equal(t, v, r.Fields[k])
			}
		}
	})

	t.Run("no match", func(t *testing.T) {
		records, err := client.Search(ctx, "poems", "moonlight",
			WithTagFilters(map[string]string{"author": "Nobody"}))
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestRoundTripQuotedTag(t *testing.T) {
	ctx := context.Background()
	client := newRoundTripClient(t)

	_, err := client.AddRecord(ctx, "poems", Record{ID: "q", Content: "a title with a quote", Fields: map[string]any{"title": "it's"}})
	require.NoError(t, err)

	records, err := client.Search(ctx, "poems", "quote", WithTagFilters(map[string]string{"title": "it's"}))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "q", records[0].ID)
}

func TestRoundTripDelete(t *testing.T) {
	ctx := context.Background()
	client := newRoundTripClient(t)

	_, err := client.AddRecord(ctx, "poems", Record{ID: "gone", Content: "short lived"})
	require.NoError(t, err)

	results, err := client.DeleteRecords(ctx, "poems", []string{"gone", "never"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())

	_, err = client.GetRecord(ctx, "poems", "gone")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRoundTripMissingCollection(t *testing.T) {
	ctx := context.Background()
	client := newRoundTripClient(t)

	assert.False(t, client.CollectionReady(ctx, "absent"))

	_, err := client.Search(ctx, "absent", "anything")
	require.Error(t, err)
	assert.True(t, dashvector.IsNotFound(err))
}
