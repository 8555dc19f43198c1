// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL connections for production and SQLite for local
// runs and tests, based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, tunes the connection pool and pings the
// server within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table definitions so the
// reconciliation feature can verify its sales and stock tables before running.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return fmt.Errorf("database connection required: %w", err)
//	}
//
//	missing, err := database.MissingColumns(db, "sales", []string{"id", "sale_date"})
package database
