package reconciliation

import (
	"context"
	"encoding/json"
	"fmt"

	"sales-reconciler/core/reconcile"
	"sales-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageSource reads JSON exports of sales and stock ledgers from object storage.
// Exports are arrays of reconcile.SaleRecord and reconcile.StockLedgerEntry documents.
type StorageSource struct {
	client      storage.Client
	bucket      string
	salesObject string
	stockObject string
	logger      *zap.Logger
}

// NewStorageSource creates a storage-backed source from the storage configuration.
func NewStorageSource(client storage.Client, cfg storage.Config, logger *zap.Logger) *StorageSource {
	return &StorageSource{
		client:      client,
		bucket:      cfg.Bucket,
		salesObject: cfg.SalesObject,
		stockObject: cfg.StockObject,
		logger:      logger,
	}
}

// Name returns the source name.
func (s *StorageSource) Name() string {
	return "storage"
}

// FetchSales reads the sales export and keeps records inside the date range.
// Records that fail to decode are logged and skipped.
func (s *StorageSource) FetchSales(ctx context.Context, rng *reconcile.DateRange) ([]reconcile.SaleRecord, error) {
	docs, err := s.fetch(ctx, s.salesObject)
	if err != nil {
		return nil, err
	}

	records := make([]reconcile.SaleRecord, 0, len(docs))
	for i, doc := range docs {
		var record reconcile.SaleRecord
		if err := json.Unmarshal(doc, &record); err != nil {
			s.logger.Warn("Skipping malformed sale record",
				zap.String("object", s.salesObject), zap.Int("index", i), zap.Error(err))
			continue
		}
		if rng.Contains(record.Date) {
			records = append(records, record)
		}
	}
	return records, nil
}

// FetchStock reads the stock ledger export. Entries that fail to decode are logged and skipped.
func (s *StorageSource) FetchStock(ctx context.Context) ([]reconcile.StockLedgerEntry, error) {
	docs, err := s.fetch(ctx, s.stockObject)
	if err != nil {
		return nil, err
	}

	entries := make([]reconcile.StockLedgerEntry, 0, len(docs))
	for i, doc := range docs {
		var entry reconcile.StockLedgerEntry
		if err := json.Unmarshal(doc, &entry); err != nil {
			s.logger.Warn("Skipping malformed stock ledger entry",
				zap.String("object", s.stockObject), zap.Int("index", i), zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// fetch downloads an export and splits it into its array elements.
// An unreadable export, or one that is not a JSON array, fails the source.
func (s *StorageSource) fetch(ctx context.Context, objectName string) ([]json.RawMessage, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: no storage client", ErrSourceUnavailable)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get %s: %w", ErrSourceUnavailable, objectName, err)
	}
	defer obj.Close()

	var docs []json.RawMessage
	if err := json.NewDecoder(obj).Decode(&docs); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrSourceUnavailable, objectName, err)
	}
	return docs, nil
}
