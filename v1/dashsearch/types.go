package dashsearch

import "github.com/dashsearch/dashsearch-go/v1/dashvector"

// Record is a piece of searchable text with metadata.
type Record struct {
	// ID is optional on AddRecord; the server assigns one when empty.
	ID string

	Content string

	// Score is set on search results only.
	Score *float32

	// Fields are scalar metadata: strings, bools and numbers. Numbers read
	// back from the store are float64.
	Fields map[string]any
}

// recordFromDoc maps a stored document back to a Record. A missing content
// field yields empty content.
func recordFromDoc(doc dashvector.Doc, withScore bool) (Record, error) {
	rec := Record{ID: doc.ID}
	if withScore {
		score := doc.Score
		rec.Score = &score
	}

	if raw, ok := doc.Fields[ContentField]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return Record{}, ErrMalformedRecord
		}
		rec.Content = s
	}

	if len(doc.Fields) > 0 {
		rec.Fields = make(map[string]any, len(doc.Fields))
		for k, v := range doc.Fields {
			if k != ContentField {
				rec.Fields[k] = v
			}
		}
	}
	return rec, nil
}

// callOptions are the per-call settings shared by the record operations.
type callOptions struct {
	partition  string
	topK       int
	tagFilters map[string]string
}

// CallOption tunes a single AddRecord, Search, GetRecord or DeleteRecords call.
type CallOption func(*callOptions)

// WithPartition targets a partition instead of the default one.
func WithPartition(partition string) CallOption {
	return func(o *callOptions) {
		o.partition = partition
	}
}

// WithTopK sets the number of search results (default 5).
func WithTopK(k int) CallOption {
	return func(o *callOptions) {
		o.topK = k
	}
}

// WithTagFilters restricts search results to records whose fields equal all
// the given values.
func WithTagFilters(tags map[string]string) CallOption {
	return func(o *callOptions) {
		o.tagFilters = tags
	}
}

func applyCallOptions(opts []CallOption) callOptions {
	o := callOptions{topK: DefaultTopK}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
