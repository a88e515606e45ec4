package dashsearch

import (
	"context"
	"time"

	"github.com/dashsearch/dashsearch-go/v1/dashvector"
	"github.com/dashsearch/dashsearch-go/v1/embedding"
)

// VectorStore is the part of *dashvector.Client the search client uses.
//
//go:generate go tool mockgen -source=interfaces.go -destination=mock_dependencies.go -package=dashsearch
type VectorStore interface {
	CreateCollection(ctx context.Context, req *dashvector.CreateCollectionRequest) error
	CollectionReady(ctx context.Context, name string) bool
	WaitCollectionReady(ctx context.Context, name string, interval time.Duration) error
	CreatePartition(ctx context.Context, collection, partition string) error
	UpsertDocs(ctx context.Context, collection string, req *dashvector.WriteDocsRequest) ([]dashvector.DocOpResult, error)
	QueryDocs(ctx context.Context, collection string, req *dashvector.QueryRequest) ([]dashvector.Doc, error)
	FetchDocs(ctx context.Context, collection string, req *dashvector.FetchDocsRequest) (map[string]dashvector.Doc, error)
	DeleteDocs(ctx context.Context, collection string, req *dashvector.DeleteDocsRequest) ([]dashvector.DocOpResult, error)
}

// Embedder turns text into dense and sparse vectors. *embedding.Client implements it.
type Embedder interface {
	CreateEmbedding(ctx context.Context, text string) (*embedding.Embedding, error)
}

var (
	_ VectorStore = (*dashvector.Client)(nil)
	_ Embedder    = (*embedding.Client)(nil)
)
