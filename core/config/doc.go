// Package config provides configuration management for the sales reconciler.
//
// It loads an optional .env file with godotenv and then reads environment variables
// through Viper. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Database: MySQL (or SQLite) connection details
//   - Storage: S3/MinIO credentials, bucket, export objects and report prefix
//   - Log: logging level and format
//   - Reconcile: severity threshold, product key separator, report cache TTL, source
//
// Nested keys map to upper-case environment variables joined by underscores,
// e.g. RECONCILE_HIGH_SEVERITY_THRESHOLD=10.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Reconcile.HighSeverityThreshold)
package config
