package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/logger"
)

const dataSubdir = "data"

// Database holds the embedded database handle. It is passed explicitly
// into each repository constructor; there is no process-wide singleton.
type Database struct {
	DB   *gorm.DB
	Path string
}

// Open resolves a writable base directory, opens the database file under
// <base>/data/<app-name>.db and applies schema migrations. Opening an
// already-initialized store is side-effect-free beyond applying new
// migrations.
func Open(cfg *config.Config, preferred string, log *zap.Logger) (*Database, error) {
	base, err := Locate(cfg.App.Name, preferred, cfg.Storage)
	if err != nil {
		return nil, err
	}
	log.Info("Storage location resolved", zap.String("base", base))

	path := filepath.Join(base, dataSubdir, cfg.App.Name+".db")
	return OpenFile(path, cfg, log)
}

// OpenFile opens and migrates the database file at an explicit path,
// creating it if absent.
func OpenFile(path string, cfg *config.Config, log *zap.Logger) (*Database, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := touch(path); err != nil {
		return nil, fmt.Errorf("failed to create database file: %w", err)
	}

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Storage.SlowQueryThreshold)

	db, err := gorm.Open(sqlite.Open(dsn(path, cfg.Storage)), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Storage.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Storage.MaxOpenConns)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{DB: db, Path: path}, nil
}

// dsn builds the connection string with the durability and concurrency
// pragmas: write-ahead logging, enforced referential integrity, a
// bounded busy wait, and NORMAL fsync (survives process crash, not
// necessarily power loss).
func dsn(path string, cfg config.StorageConfig) string {
	return fmt.Sprintf(
		"file:%s?_journal_mode=WAL&_foreign_keys=on&_synchronous=NORMAL&_busy_timeout=%d&_loc=auto",
		path, cfg.BusyTimeout.Milliseconds(),
	)
}

// touch creates the file if it does not exist yet.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}
