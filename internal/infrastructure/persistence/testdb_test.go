package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pos/backend/internal/infrastructure/config"
)

// setupTestDB opens a migrated store on a temp file. A file-backed
// database (rather than :memory:) keeps WAL and foreign-key behavior
// identical to production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(t.TempDir(), "pos-test.db"))
}

func openTestDB(t *testing.T, path string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(dsn(path, testStorageConfig())), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func testStorageConfig() config.StorageConfig {
	return config.StorageConfig{
		BusyTimeout:        5 * time.Second,
		MaxOpenConns:       1,
		AllowNegativeStock: true,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Name: "pos"},
		Storage: testStorageConfig(),
		Log:     config.LogConfig{Level: "error", Format: "console", Output: "stdout"},
	}
}
