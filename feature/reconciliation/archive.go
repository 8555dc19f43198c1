package reconciliation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"sales-reconciler/core/reconcile"
	"sales-reconciler/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// ArchivedReport describes one report stored in the bucket.
type ArchivedReport struct {
	Object       string    `json:"object"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// Archiver uploads reports to object storage.
type Archiver struct {
	client storage.Client
	cfg    storage.Config
	now    func() time.Time
}

// NewArchiver creates an archiver writing under cfg.ReportPrefix in cfg.Bucket.
func NewArchiver(client storage.Client, cfg storage.Config) *Archiver {
	return &Archiver{client: client, cfg: cfg, now: time.Now}
}

// Save uploads the report as JSON and returns the object name.
func (a *Archiver) Save(ctx context.Context, report *reconcile.Report) (string, error) {
	if a.client == nil {
		return "", fmt.Errorf("archive requires a storage client")
	}

	if err := a.ensureBucket(ctx); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	object := a.cfg.ReportObject(fmt.Sprintf("%d_%s.json", a.now().Unix(), uuid.NewString()))
	_, err = a.client.PutObject(ctx, a.cfg.Bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", object, err)
	}
	return object, nil
}

// List returns archived reports, newest first.
func (a *Archiver) List(ctx context.Context) ([]ArchivedReport, error) {
	if a.client == nil {
		return nil, fmt.Errorf("archive requires a storage client")
	}

	prefix := a.cfg.ReportObject("")
	reports := []ArchivedReport{}
	for obj := range a.client.ListObjects(ctx, a.cfg.Bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		reports = append(reports, ArchivedReport{Object: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].LastModified.After(reports[j].LastModified)
	})
	return reports, nil
}

func (a *Archiver) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.cfg.Bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.cfg.Bucket, minio.MakeBucketOptions{Region: a.cfg.Region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.cfg.Bucket, err)
	}
	return nil
}
