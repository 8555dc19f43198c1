package cmd

import (
	"fmt"

	"sales-reconciler/core/config"
	"sales-reconciler/core/database"
	"sales-reconciler/core/logger"
	"sales-reconciler/feature/reconciliation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkOnly bool

// migrateCmd creates the sales and stock ledger tables or checks them.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or verify the reconciliation tables",
	Long:  `Auto-migrates the sales and stock_ledgers tables. With --check, only reports missing columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		if !checkOnly {
			if err := reconciliation.Migrate(db); err != nil {
				return err
			}
			l.Info("Schema migrated", zap.String("database", cfg.Database.Name))
		}

		report, err := reconciliation.CheckSchema(db)
		if err != nil {
			return err
		}
		for _, table := range report.Tables {
			if len(table.Missing) > 0 {
				l.Warn("Table is missing columns", zap.String("table", table.Table), zap.Strings("missing", table.Missing))
			} else {
				l.Info("Table OK", zap.String("table", table.Table))
			}
		}
		if !report.Valid {
			return fmt.Errorf("schema check failed")
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&checkOnly, "check", false, "Only verify the schema, do not migrate")
	RootCmd.AddCommand(migrateCmd)
}
