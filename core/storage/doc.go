// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the reconciliation feature can read JSON exports of
// sales and stock ledgers and archive generated reports. Both AWS S3 and self-hosted
// MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: ensure the archive bucket is present.
//   - PutObject: uploads an archived report.
//   - GetObject: streams a sales or stock export.
//   - ListObjects: lists archived reports under the report prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	obj, err := client.GetObject(ctx, cfg.Storage.Bucket, cfg.Storage.SalesObject, minio.GetObjectOptions{})
package storage
