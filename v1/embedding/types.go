package embedding

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMalformedResponse is returned when the service answers 2xx with a body
// that lacks the expected embeddings.
var ErrMalformedResponse = errors.New("embedding: malformed response")

// APIError is a non-2xx answer from DashScope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "embedding: http %d", e.StatusCode)
	if e.Code != "" {
		b.WriteString(" ")
		b.WriteString(e.Code)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.RequestID != "" {
		b.WriteString(" [request_id=")
		b.WriteString(e.RequestID)
		b.WriteString("]")
	}
	return b.String()
}

// SparseEntry is one non-zero dimension of a sparse embedding.
type SparseEntry struct {
	Index int
	Value float32
}

// SparseEmbedding is ordered by ascending Index with no duplicates.
type SparseEmbedding []SparseEntry

// Map returns the entries keyed by index.
func (s SparseEmbedding) Map() map[int]float32 {
	if s == nil {
		return nil
	}
	m := make(map[int]float32, len(s))
	for _, e := range s {
		m[e.Index] = e.Value
	}
	return m
}

// Embedding holds the representations of one text. Dense or Sparse is nil
// when the configured output type excludes it.
type Embedding struct {
	Dense  []float32
	Sparse SparseEmbedding
}

// newSparseEmbedding sorts entries by index and rejects duplicates.
func newSparseEmbedding(entries []sparseEntryWire) (SparseEmbedding, error) {
	out := make(SparseEmbedding, 0, len(entries))
	for _, e := range entries {
		out = append(out, SparseEntry{Index: e.Index, Value: e.Value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	for i := 1; i < len(out); i++ {
		if out[i].Index == out[i-1].Index {
			return nil, fmt.Errorf("%w: duplicate sparse index %d", ErrMalformedResponse, out[i].Index)
		}
	}
	return out, nil
}

// Wire shapes.

type embeddingRequest struct {
	Model      string              `json:"model"`
	Input      embeddingInput      `json:"input"`
	Parameters embeddingParameters `json:"parameters"`
}

type embeddingInput struct {
	Texts []string `json:"texts"`
}

type embeddingParameters struct {
	OutputType OutputType `json:"output_type"`
	Dimension  int        `json:"dimension,omitempty"`
}

type embeddingResponse struct {
	Output *struct {
		Embeddings []embeddingWire `json:"embeddings"`
	} `json:"output"`
	Usage struct {
		TotalTokens int64 `json:"total_tokens"`
	} `json:"usage"`
	RequestID string `json:"request_id"`
}

type embeddingWire struct {
	TextIndex       int               `json:"text_index"`
	Embedding       []float32         `json:"embedding"`
	SparseEmbedding []sparseEntryWire `json:"sparse_embedding"`
}

type sparseEntryWire struct {
	Index int     `json:"index"`
	Value float32 `json:"value"`
	Token string  `json:"token,omitempty"`
}

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}
