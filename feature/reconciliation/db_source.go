package reconciliation

import (
	"context"
	"fmt"

	"sales-reconciler/core/reconcile"
	"sales-reconciler/feature/reconciliation/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBSource reads sales and stock ledgers from the application database.
type DBSource struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDBSource creates a database-backed source.
func NewDBSource(db *gorm.DB, logger *zap.Logger) *DBSource {
	return &DBSource{db: db, logger: logger}
}

// Name returns the source name.
func (s *DBSource) Name() string {
	return "database"
}

// FetchSales loads sales, applying the date range in SQL.
func (s *DBSource) FetchSales(ctx context.Context, rng *reconcile.DateRange) ([]reconcile.SaleRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("%w: no database connection", ErrSourceUnavailable)
	}

	// Bounds are normalized to UTC: sqlite compares sale_date as text
	query := s.db.WithContext(ctx).Model(&models.Sale{})
	if rng != nil && rng.Start != nil {
		query = query.Where("sale_date >= ?", rng.Start.UTC())
	}
	if rng != nil && rng.End != nil {
		query = query.Where("sale_date <= ?", rng.End.UTC())
	}

	var rows []models.Sale
	if err := query.Order("sale_date, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to query sales: %w", ErrSourceUnavailable, err)
	}

	records := make([]reconcile.SaleRecord, 0, len(rows))
	for _, row := range rows {
		record, err := row.ToRecord()
		if err != nil {
			s.logger.Warn("Skipping malformed sale line items", zap.Error(err))
		}
		records = append(records, record)
	}
	return records, nil
}

// FetchStock loads every stock ledger row.
func (s *DBSource) FetchStock(ctx context.Context) ([]reconcile.StockLedgerEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("%w: no database connection", ErrSourceUnavailable)
	}

	var rows []models.StockLedger
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to query stock ledgers: %w", ErrSourceUnavailable, err)
	}

	entries := make([]reconcile.StockLedgerEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := row.ToEntry()
		if err != nil {
			s.logger.Warn("Skipping malformed stock series", zap.Error(err))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
