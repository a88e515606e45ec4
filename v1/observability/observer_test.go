package observability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationContextStatus(t *testing.T) {
	assert.Equal(t, "success", OperationContext{}.Status())
	assert.Equal(t, "error", OperationContext{Error: errors.New("boom")}.Status())
}

func TestObserverFunc(t *testing.T) {
	var got []OperationContext
	var obs Observer = ObserverFunc(func(ctx OperationContext) {
		got = append(got, ctx)
	})

	obs.ObserveOperation(OperationContext{Component: "dashvector", Operation: "query_docs"})

	if assert.Len(t, got, 1) {
		assert.Equal(t, "query_docs", got[0].Operation)
	}
}
