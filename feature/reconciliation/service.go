package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sales-reconciler/core/reconcile"
	"sales-reconciler/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Service runs reconciliations against a Source.
type Service struct {
	source   Source
	engine   *reconcile.Engine
	cache    *reconcile.ReportCache
	archiver *Archiver
	db       *gorm.DB
	logger   *zap.Logger
}

// NewService creates a reconciliation service.
// archiver and db may be nil; the operations that need them then fail.
func NewService(source Source, cfg reconcile.Config, archiver *Archiver, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		source:   source,
		engine:   reconcile.NewEngine(cfg),
		cache:    reconcile.NewReportCache(time.Duration(cfg.CacheTTLSeconds) * time.Second),
		archiver: archiver,
		db:       db,
		logger:   logger,
	}
}

// NewSource picks the record source named by cfg.Source.
func NewSource(cfg reconcile.Config, db *gorm.DB, client storage.Client, storageCfg storage.Config, logger *zap.Logger) (Source, error) {
	switch cfg.Source {
	case reconcile.SourceDatabase, "":
		return NewDBSource(db, logger), nil
	case reconcile.SourceStorage:
		return NewStorageSource(client, storageCfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown reconcile source: %s", cfg.Source)
	}
}

// Verify reconciles sales inside rng against the current stock ledger.
// A nil rng covers all sales. Fetch failures wrap ErrSourceUnavailable.
// Concurrent calls for the same range share one build, which does not stop when
// the caller that started it goes away.
func (s *Service) Verify(ctx context.Context, rng *reconcile.DateRange) (*reconcile.Report, error) {
	buildCtx := context.WithoutCancel(ctx)
	return s.cache.GetOrBuild(rng.Key(), func() (*reconcile.Report, error) {
		return s.build(buildCtx, rng)
	})
}

func (s *Service) build(ctx context.Context, rng *reconcile.DateRange) (*reconcile.Report, error) {
	var (
		sales []reconcile.SaleRecord
		stock []reconcile.StockLedgerEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = s.source.FetchSales(gctx, rng)
		return err
	})
	g.Go(func() error {
		var err error
		stock, err = s.source.FetchStock(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if !errors.Is(err, ErrSourceUnavailable) {
			err = fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		s.logger.Error("Failed to fetch reconciliation data", zap.String("source", s.source.Name()), zap.Error(err))
		return nil, err
	}

	report := s.engine.Reconcile(sales, stock).WithDateRange(rng)

	for _, w := range report.Warnings {
		s.logger.Warn("Data integrity warning",
			zap.String("product_key", w.ProductKey),
			zap.String("code", string(w.Code)),
			zap.String("message", w.Message))
	}
	s.logger.Info("Reconciliation completed",
		zap.String("source", s.source.Name()),
		zap.String("verification_type", report.SyncSummary.VerificationType),
		zap.Int("total_products", report.SyncSummary.TotalProducts),
		zap.Int("synced", report.SyncSummary.SyncedProducts),
		zap.Int("mismatched", report.SyncSummary.MismatchedProducts),
		zap.Int("missing_in_stock", report.SyncSummary.MissingInStock),
		zap.Int("missing_in_sales", report.SyncSummary.MissingInSales),
		zap.Bool("fully_synced", report.IsFullySynced))

	return report, nil
}

// Archive uploads a report and returns its object name.
func (s *Service) Archive(ctx context.Context, report *reconcile.Report) (string, error) {
	if s.archiver == nil {
		return "", fmt.Errorf("archive is not configured")
	}
	object, err := s.archiver.Save(ctx, report)
	if err != nil {
		return "", err
	}
	s.logger.Info("Report archived", zap.String("object", object))
	return object, nil
}

// ListArchives returns previously archived reports.
func (s *Service) ListArchives(ctx context.Context) ([]ArchivedReport, error) {
	if s.archiver == nil {
		return nil, fmt.Errorf("archive is not configured")
	}
	return s.archiver.List(ctx)
}

// CheckSchema verifies the database exposes the columns reconciliation reads.
func (s *Service) CheckSchema() (*SchemaReport, error) {
	return CheckSchema(s.db)
}

// InvalidateCache drops the report cached for rng, or every cached report when rng is nil.
func (s *Service) InvalidateCache(rng *reconcile.DateRange) {
	if rng == nil {
		s.cache.Purge()
		return
	}
	s.cache.Invalidate(rng.Key())
	s.logger.Debug("Report cache invalidated", zap.String("key", rng.Key()))
}
