package reconciliation

import (
	"fmt"
	"sort"

	"sales-reconciler/core/database"
	"sales-reconciler/feature/reconciliation/models"

	"gorm.io/gorm"
)

// TableStatus reports the required columns missing from one table.
type TableStatus struct {
	Table   string   `json:"table"`
	Missing []string `json:"missing"`
}

// SchemaReport is the result of a schema check.
type SchemaReport struct {
	Valid  bool          `json:"valid"`
	Tables []TableStatus `json:"tables"`
}

// Migrate creates or updates the sales and stock ledger tables.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return ErrSourceUnavailable
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CheckSchema verifies every table exposes the columns reconciliation reads.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, ErrSourceUnavailable
	}

	tables := make([]string, 0, len(models.RequiredColumns))
	for table := range models.RequiredColumns {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	report := &SchemaReport{Valid: true, Tables: make([]TableStatus, 0, len(tables))}
	for _, table := range tables {
		missing, err := database.MissingColumns(db, table, models.RequiredColumns[table])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		if len(missing) > 0 {
			report.Valid = false
		}
		report.Tables = append(report.Tables, TableStatus{Table: table, Missing: missing})
	}
	return report, nil
}
