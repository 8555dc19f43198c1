package reconcile

// Source names accepted by Config.Source.
const (
	SourceDatabase = "database"
	SourceStorage  = "storage"
)

// Config holds the reconciliation settings.
type Config struct {
	// HighSeverityThreshold is the absolute difference above which a mismatch is high severity.
	HighSeverityThreshold float64 `mapstructure:"high_severity_threshold" default:"5"`
	// KeySeparator joins brand and series into a product key.
	KeySeparator string `mapstructure:"key_separator" default:"_"`
	// CacheTTLSeconds caches reports per date range. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
	// Source selects where sales and stock are read from (database, storage).
	Source string `mapstructure:"source" default:"database"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		HighSeverityThreshold: 5,
		KeySeparator:          "_",
		Source:                SourceDatabase,
	}
}

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceDatabase, SourceStorage:
		return true
	default:
		return false
	}
}
