package reconciliation

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"sales-reconciler/core/reconcile"
	"sales-reconciler/core/storage"
	"sales-reconciler/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchiver_Save(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "reconciliation").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "reconciliation", mock.Anything).Return(nil)

	var uploaded string
	client.On("PutObject", mock.Anything, "reconciliation", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "reports/1767225600_") && strings.HasSuffix(name, ".json")
	}), mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, _ := io.ReadAll(args.Get(3).(io.Reader))
			uploaded = string(data)
		}).
		Return(minio.UploadInfo{}, nil)

	a := NewArchiver(client, storage.Config{Bucket: "reconciliation", ReportPrefix: "reports"})
	a.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	object, err := a.Save(context.Background(), &reconcile.Report{IsFullySynced: true, SyncIssues: []reconcile.Issue{}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(object, "reports/1767225600_"))
	assert.Contains(t, uploaded, `"isFullySynced": true`)
	client.AssertExpectations(t)
}

func TestArchiver_SaveUploadFails(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "reconciliation").Return(true, nil)
	client.On("PutObject", mock.Anything, "reconciliation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	a := NewArchiver(client, storage.Config{Bucket: "reconciliation", ReportPrefix: "reports"})
	_, err := a.Save(context.Background(), &reconcile.Report{})
	assert.ErrorIs(t, err, assert.AnError)
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)

	_, err = NewArchiver(nil, storage.Config{}).Save(context.Background(), &reconcile.Report{})
	assert.Error(t, err)
}

func TestArchiver_List(t *testing.T) {
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "reconciliation", minio.ListObjectsOptions{Prefix: "reports/", Recursive: true}).
		Return(mocks.ObjectChan(
			minio.ObjectInfo{Key: "reports/1_a.json", Size: 10, LastModified: older},
			minio.ObjectInfo{Key: "reports/notes.txt", LastModified: newer},
			minio.ObjectInfo{Key: "reports/2_b.json", Size: 20, LastModified: newer},
		))

	a := NewArchiver(client, storage.Config{Bucket: "reconciliation", ReportPrefix: "reports"})
	reports, err := a.List(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "reports/2_b.json", reports[0].Object)
	assert.Equal(t, int64(10), reports[1].Size)
}

func TestArchiver_ListError(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "reconciliation", mock.Anything).
		Return(mocks.ObjectChan(minio.ObjectInfo{Err: assert.AnError}))

	a := NewArchiver(client, storage.Config{Bucket: "reconciliation"})
	_, err := a.List(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
