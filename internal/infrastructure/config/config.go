package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Log     LogConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string // also names the database file: <base>/data/<name>.db
}

// StorageConfig holds embedded database settings
type StorageConfig struct {
	// DataDir forces the base directory when set; it is the first
	// candidate the storage locator tries (env: POS_STORAGE_DATA_DIR).
	DataDir string
	// BusyTimeout bounds the wait on a locked database file before an
	// operation fails with a busy error instead of hanging.
	BusyTimeout time.Duration
	// MaxOpenConns caps the connection pool. The default of 1 matches
	// the single-writer desktop model.
	MaxOpenConns int
	// AllowNegativeStock keeps the historical oversell behavior: stock
	// may go negative as the result of a sale. Set to false to reject
	// oversells instead.
	AllowNegativeStock bool
	// SlowQueryThreshold marks queries worth a warning log.
	SlowQueryThreshold time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load loads configuration from TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with POS_ prefix (e.g. POS_STORAGE_DATA_DIR)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("POS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
		},
		Storage: StorageConfig{
			DataDir:            v.GetString("storage.data_dir"),
			BusyTimeout:        v.GetDuration("storage.busy_timeout"),
			MaxOpenConns:       v.GetInt("storage.max_open_conns"),
			AllowNegativeStock: v.GetBool("storage.allow_negative_stock"),
			SlowQueryThreshold: v.GetDuration("storage.slow_query_threshold"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pos")
	v.SetDefault("storage.data_dir", "")
	v.SetDefault("storage.busy_timeout", 5*time.Second)
	v.SetDefault("storage.max_open_conns", 1)
	v.SetDefault("storage.allow_negative_stock", true)
	v.SetDefault("storage.slow_query_threshold", 200*time.Millisecond)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.App.Name) == "" {
		return fmt.Errorf("app.name must not be empty")
	}
	if c.Storage.BusyTimeout <= 0 {
		return fmt.Errorf("storage.busy_timeout must be positive, got %s", c.Storage.BusyTimeout)
	}
	if c.Storage.MaxOpenConns < 1 {
		return fmt.Errorf("storage.max_open_conns must be at least 1, got %d", c.Storage.MaxOpenConns)
	}
	return nil
}
