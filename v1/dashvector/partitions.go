package dashvector

import (
	"context"
	"net/http"
)

// CreatePartition adds a named partition to a collection.
func (c *Client) CreatePartition(ctx context.Context, collection, partition string) (err error) {
	ctx, o := c.begin(ctx, "create_partition", collection)
	o.setPartition(partition)
	defer func() { o.end(err) }()

	if _, err = pathParam("partition", partition); err != nil {
		return err
	}
	path, err := collectionPath(collection, "partitions")
	if err != nil {
		return err
	}
	body := struct {
		Name string `json:"name"`
	}{Name: partition}
	_, err = c.call(ctx, o.name, http.MethodPost, path, nil, body, nil)
	return err
}

// DescribePartition returns the partition status.
func (c *Client) DescribePartition(ctx context.Context, collection, partition string) (_ CollectionStatus, err error) {
	ctx, o := c.begin(ctx, "describe_partition", collection)
	o.setPartition(partition)
	defer func() { o.end(err) }()

	path, err := partitionPath(collection, partition)
	if err != nil {
		return "", err
	}
	var status CollectionStatus
	if _, err = c.call(ctx, o.name, http.MethodGet, path, nil, nil, &status); err != nil {
		return "", err
	}
	return status, nil
}

// DeletePartition drops a partition and its documents.
func (c *Client) DeletePartition(ctx context.Context, collection, partition string) (err error) {
	ctx, o := c.begin(ctx, "delete_partition", collection)
	o.setPartition(partition)
	defer func() { o.end(err) }()

	path, err := partitionPath(collection, partition)
	if err != nil {
		return err
	}
	_, err = c.call(ctx, o.name, http.MethodDelete, path, nil, nil, nil)
	return err
}

// ListPartitions returns the partition names of a collection.
func (c *Client) ListPartitions(ctx context.Context, collection string) (_ []string, err error) {
	ctx, o := c.begin(ctx, "list_partitions", collection)
	defer func() { o.end(err) }()

	path, err := collectionPath(collection, "partitions")
	if err != nil {
		return nil, err
	}
	var names []string
	if _, err = c.call(ctx, o.name, http.MethodGet, path, nil, nil, &names); err != nil {
		return nil, err
	}
	o.setSize(len(names))
	return names, nil
}
