package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"sales-reconciler/core/database"
	"sales-reconciler/core/logger"
	"sales-reconciler/core/reconcile"
	"sales-reconciler/core/server"
	"sales-reconciler/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage holding exports and archived reports.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Reconcile holds the reconciliation engine and source settings.
	Reconcile reconcile.Config `mapstructure:"reconcile"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// A missing .env is normal in production
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if !config.Reconcile.IsValidSource() {
		return nil, fmt.Errorf("unknown reconcile source: %q", config.Reconcile.Source)
	}

	return &config, nil
}

// bindValues registers every leaf key with its `default` tag, walking nested
// section structs by their `mapstructure` names.
func bindValues(v *viper.Viper, section any, prefix string) {
	t := reflect.TypeOf(section)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for _, field := range reflect.VisibleFields(t) {
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.Zero(field.Type).Interface(), key)
			continue
		}

		// Empty defaults are still set so AutomaticEnv can see the key
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
