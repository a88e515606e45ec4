package observability

import "time"

// Observer receives one notification per completed operation.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a single completed operation.
type OperationContext struct {
	// Component is the reporting package, e.g. "dashvector" or "embedding".
	Component string

	// Operation is the logical call, e.g. "query_docs".
	Operation string

	// Resource is the primary target, usually a collection name.
	Resource string

	// SubResource narrows Resource, e.g. a partition name.
	SubResource string

	Duration time.Duration

	// Error is nil on success.
	Error error

	// Size is operation specific: documents written, results returned or tokens used.
	Size int64

	Metadata map[string]interface{}
}

// Status returns "success" or "error" depending on Error.
func (o OperationContext) Status() string {
	if o.Error != nil {
		return "error"
	}
	return "success"
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
