package reconciliation

import (
	"bytes"
	"context"
	"fmt"

	"sales-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageStatus describes what the bucket is missing for storage-backed runs and archives.
type StorageStatus struct {
	BucketExists   bool     `json:"bucketExists"`
	MissingExports []string `json:"missingExports"`
	MissingFolders []string `json:"missingFolders"`
}

// OK reports whether nothing is missing.
func (s *StorageStatus) OK() bool {
	return s.BucketExists && len(s.MissingExports) == 0 && len(s.MissingFolders) == 0
}

// CheckStorage verifies the bucket, the sales and stock exports, and the report folder.
func CheckStorage(ctx context.Context, client storage.Client, cfg storage.Config) (*StorageStatus, error) {
	status := &StorageStatus{MissingExports: []string{}, MissingFolders: []string{}}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	status.BucketExists = exists
	if !exists {
		status.MissingExports = append(status.MissingExports, cfg.SalesObject, cfg.StockObject)
		if folder := cfg.ReportObject(""); folder != "" {
			status.MissingFolders = append(status.MissingFolders, folder)
		}
		return status, nil
	}

	for _, object := range []string{cfg.SalesObject, cfg.StockObject} {
		if !hasPrefix(ctx, client, cfg.Bucket, object) {
			status.MissingExports = append(status.MissingExports, object)
		}
	}
	if folder := cfg.ReportObject(""); folder != "" && !hasPrefix(ctx, client, cfg.Bucket, folder) {
		status.MissingFolders = append(status.MissingFolders, folder)
	}
	return status, nil
}

func hasPrefix(ctx context.Context, client storage.Client, bucket, prefix string) bool {
	// Cancelling stops the listing goroutine once the first object is seen
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:  prefix,
		MaxKeys: 1,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err == nil {
			return true
		}
	}
	return false
}

// FixStorage creates the bucket and the missing folders. Missing exports are left alone;
// they are produced upstream.
func FixStorage(ctx context.Context, client storage.Client, cfg storage.Config, logger *zap.Logger, status *StorageStatus) error {
	if !status.BucketExists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("Created bucket", zap.String("bucket", cfg.Bucket))
	}

	for _, folder := range status.MissingFolders {
		_, err := client.PutObject(ctx, cfg.Bucket, folder, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}

	for _, object := range status.MissingExports {
		logger.Warn("Export not found, storage source will fail until it is uploaded", zap.String("object", object))
	}
	return nil
}
