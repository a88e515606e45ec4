// Package observability defines the hook that clients in this module use to
// report the outcome of every remote operation.
//
// Clients (dashvector, embedding, dashsearch) accept an optional Observer and
// call it once per operation with an OperationContext. The metrics package
// ships a Prometheus-backed implementation; tests usually plug in a small
// recording observer.
//
// Example:
//
//	client, _ := dashvector.NewClient(cfg, dashvector.WithObserver(m))
package observability
