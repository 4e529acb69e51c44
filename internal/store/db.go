package store

import (
	"fmt"

	"github.com/gordonhealth/staff-portal/internal"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDB opens the blob database. Sqlite (a single portal.db file) is the
// default single-tenant deployment; postgres is available for shared hosting.
func OpenDB(cfg internal.StorageConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	switch cfg.Driver {
	case "", "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.GetDSN()), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return db, nil
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.GetDSN()), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
