package cmd

import (
	"fmt"

	"sales-reconciler/core/config"
	"sales-reconciler/core/database"
	"sales-reconciler/core/logger"
	"sales-reconciler/core/storage"
	"sales-reconciler/feature/reconciliation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the storage bucket and database used by reconciliation",
	Long: `Checks that the bucket exists with the sales and stock exports and the report folder,
and that the database exposes the reconciliation tables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runStorageCheck(cmd); err != nil {
			return err
		}
		return runSchemaCheck()
	},
}

// storageCheckCmd represents the integrity storage command
var storageCheckCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the bucket layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorageCheck(cmd)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(storageCheckCmd)

	storageCheckCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and missing folders")
}

func runStorageCheck(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	logg.Info("Checking bucket layout...", zap.String("bucket", cfg.Storage.Bucket))
	status, err := reconciliation.CheckStorage(ctx, store, cfg.Storage)
	if err != nil {
		return fmt.Errorf("storage check failed: %w", err)
	}

	if status.OK() {
		logg.Info("Bucket layout is intact.")
		return nil
	}

	logg.Warn("Bucket layout incomplete",
		zap.Bool("bucket_exists", status.BucketExists),
		zap.Strings("missing_exports", status.MissingExports),
		zap.Strings("missing_folders", status.MissingFolders))

	if !fixFlag {
		logg.Info("Run integrity storage with --fix to create the bucket and missing folders.")
		return nil
	}

	logg.Info("Fixing bucket layout...")
	if err := reconciliation.FixStorage(ctx, store, cfg.Storage, logg, status); err != nil {
		return fmt.Errorf("failed to fix storage: %w", err)
	}
	logg.Info("Bucket layout fixed.")
	return nil
}

func runSchemaCheck() error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Database unreachable, skipping schema check", zap.Error(err))
		return nil
	}

	report, err := reconciliation.CheckSchema(db)
	if err != nil {
		return fmt.Errorf("schema check failed: %w", err)
	}
	for _, table := range report.Tables {
		if len(table.Missing) > 0 {
			logg.Warn("Table is missing columns", zap.String("table", table.Table), zap.Strings("missing", table.Missing))
		}
	}
	if report.Valid {
		logg.Info("Database schema is intact.")
	}
	return nil
}
