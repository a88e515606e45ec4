package dashvector

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePartition(t *testing.T) {
	client, fake := newTestClient(t, okHandler(nil))

	require.NoError(t, client.CreatePartition(context.Background(), "poems", "tang"))

	req := fake.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1/collections/poems/partitions", req.Path)
	assert.Equal(t, "tang", req.Body["name"])
}

func TestCreatePartitionRequiresName(t *testing.T) {
	client, fake := newTestClient(t, okHandler(nil))

	err := client.CreatePartition(context.Background(), "poems", "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, fake.count())
}

func TestDescribeAndDeletePartition(t *testing.T) {
	client, fake := newTestClient(t, okHandler("SERVING"))
	ctx := context.Background()

	status, err := client.DescribePartition(ctx, "poems", "tang")
	require.NoError(t, err)
	assert.Equal(t, StatusServing, status)
	assert.Equal(t, "/v1/collections/poems/partitions/tang", fake.last(t).Path)

	require.NoError(t, client.DeletePartition(ctx, "poems", "tang"))
	assert.Equal(t, http.MethodDelete, fake.last(t).Method)
	assert.Equal(t, "/v1/collections/poems/partitions/tang", fake.last(t).Path)
}

func TestListPartitions(t *testing.T) {
	client, fake := newTestClient(t, okHandler([]string{"default", "tang"}))

	names, err := client.ListPartitions(context.Background(), "poems")
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "tang"}, names)
	assert.Equal(t, http.MethodGet, fake.last(t).Method)
}
