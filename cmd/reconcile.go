package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"sales-reconciler/core/config"
	"sales-reconciler/core/database"
	"sales-reconciler/core/logger"
	"sales-reconciler/core/reconcile"
	"sales-reconciler/core/storage"
	"sales-reconciler/feature/reconciliation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	startDate     string
	endDate       string
	jsonReport    bool
	archiveReport bool
	sourceFlag    string
)

// reconcileCmd runs a single reconciliation and prints the metrics.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile sales against the stock ledger",
	Long: `Cross-checks sales line items against stock ledger sold counts.

Outputs metrics by default. Use --json to save the full report to a file and
--archive to upload it to the storage bucket.

Examples:
  # All sales
  reconcile

  # January only, saved as JSON
  reconcile --start 2026-01-01 --end 2026-01-31 --json

  # Read the JSON exports from storage instead of the database
  reconcile --source storage --archive`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&startDate, "start", "", "Inclusive start date (YYYY-MM-DD or RFC 3339)")
	reconcileCmd.Flags().StringVar(&endDate, "end", "", "Inclusive end date (YYYY-MM-DD or RFC 3339)")
	reconcileCmd.Flags().BoolVar(&jsonReport, "json", false, "Save the full report as reconciliation_<unix>.json")
	reconcileCmd.Flags().BoolVar(&archiveReport, "archive", false, "Upload the report to the storage bucket")
	reconcileCmd.Flags().StringVar(&sourceFlag, "source", "", "Override reconcile.source (database, storage)")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	startTime := time.Now()

	rng, err := reconcile.ParseDateRange(startDate, endDate)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if sourceFlag != "" {
		cfg.Reconcile.Source = sourceFlag
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	var db *gorm.DB
	if cfg.Reconcile.Source == reconcile.SourceDatabase {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
	}

	var client storage.Client
	if cfg.Reconcile.Source == reconcile.SourceStorage || archiveReport {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	source, err := reconciliation.NewSource(cfg.Reconcile, db, client, cfg.Storage, l)
	if err != nil {
		return err
	}
	svc := reconciliation.NewService(source, cfg.Reconcile, reconciliation.NewArchiver(client, cfg.Storage), db, l)

	l.Info("Starting sales reconciliation", zap.String("source", source.Name()))
	report, err := svc.Verify(ctx, rng)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	if jsonReport {
		filename := fmt.Sprintf("reconciliation_%d.json", time.Now().Unix())
		if err := writeReportFile(filename, report); err != nil {
			return err
		}
		l.Info("Detailed JSON report saved", zap.String("file", filename), zap.Int("issues", len(report.SyncIssues)))
	}

	if archiveReport {
		object, err := svc.Archive(ctx, report)
		if err != nil {
			return fmt.Errorf("failed to archive report: %w", err)
		}
		fmt.Printf("Report archived to: %s/%s\n", cfg.Storage.Bucket, object)
	}

	printReconcileMetrics(os.Stdout, report, time.Since(startTime))
	return nil
}

func writeReportFile(filename string, report *reconcile.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save JSON file: %w", err)
	}
	return nil
}

// printReconcileMetrics writes the summary block and the issue list.
func printReconcileMetrics(w io.Writer, report *reconcile.Report, elapsed time.Duration) {
	s := report.SyncSummary

	fmt.Fprintln(w, "\n=== Sales Reconciliation Metrics ===")
	fmt.Fprintf(w, "Verification: %s\n", s.VerificationType)
	fmt.Fprintf(w, "Total Products: %d\n", s.TotalProducts)
	fmt.Fprintf(w, "Synced: %d\n", s.SyncedProducts)
	fmt.Fprintf(w, "Mismatched: %d\n", s.MismatchedProducts)
	fmt.Fprintf(w, "Missing In Stock: %d\n", s.MissingInStock)
	fmt.Fprintf(w, "Missing In Sales: %d\n", s.MissingInSales)
	fmt.Fprintf(w, "Sales Records: %d\n", s.TotalSalesRecords)
	fmt.Fprintf(w, "Stock Records: %d\n", s.TotalStockRecords)
	fmt.Fprintf(w, "Warnings: %d\n", len(report.Warnings))
	fmt.Fprintf(w, "Fully Synced: %t\n", report.IsFullySynced)
	fmt.Fprintf(w, "Execution Time: %s\n", elapsed.String())

	if len(report.SyncIssues) == 0 {
		return
	}

	fmt.Fprintln(w, "\n=== Issues ===")
	for _, issue := range report.SyncIssues {
		fmt.Fprintf(w, "[%s] %s %s: ledger=%g sales=%g diff=%+g\n",
			issue.Severity, issue.IssueKind, issue.ProductKey,
			issue.StockSoldCount, issue.ActualSales, issue.Difference)
	}
}
