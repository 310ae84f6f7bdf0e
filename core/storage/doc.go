// Package storage wraps the MinIO client behind a small interface.
//
// Discovery snapshots live in the configured bucket as JSON objects. The
// Client interface covers what the snapshot provider and the integrity check
// need, and core/storage/mocks provides a testify mock of it.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
