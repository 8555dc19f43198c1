package storage

import "strings"

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the sales/stock exports and archived reports.
	Bucket string `mapstructure:"bucket" default:"reconciliation"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// SalesObject is the JSON export of sale records read by the storage source.
	SalesObject string `mapstructure:"sales_object" default:"exports/sales.json"`
	// StockObject is the JSON export of stock ledger entries read by the storage source.
	StockObject string `mapstructure:"stock_object" default:"exports/stock.json"`
	// ReportPrefix is the folder archived reports are written under.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
}

// ReportObject returns the object name for an archived report file.
func (c Config) ReportObject(filename string) string {
	prefix := strings.Trim(c.ReportPrefix, "/")
	if prefix == "" {
		return filename
	}
	return prefix + "/" + filename
}
