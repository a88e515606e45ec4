package dashvector

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dashsearch/dashsearch-go/v1/observability"
)

const testAPIKey = "test-key"

// capturedRequest is what the fake server saw.
type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   map[string]any
}

type fakeServer struct {
	mu       sync.Mutex
	requests []capturedRequest
}

func (f *fakeServer) last(t *testing.T) capturedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func (f *fakeServer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// newTestClient starts an httptest server running handler and returns a
// client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *fakeServer) {
	t.Helper()
	fake := &fakeServer{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &body)
		}
		fake.mu.Lock()
		fake.requests = append(fake.requests, capturedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   body,
		})
		fake.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(FromEndpoint(srv.URL).WithAPIKey(testAPIKey), opts...)
	require.NoError(t, err)
	return client, fake
}

func writeEnvelope(w http.ResponseWriter, status, code int, message string, output any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":       code,
		"message":    message,
		"request_id": "req-1",
		"output":     output,
	})
}

func okHandler(output any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, 0, "Success", output)
	}
}

// TestObserver records every observed operation.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (o *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.operations = append(o.operations, ctx)
}

func (o *TestObserver) GetOperations() []observability.OperationContext {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]observability.OperationContext, len(o.operations))
	copy(out, o.operations)
	return out
}
