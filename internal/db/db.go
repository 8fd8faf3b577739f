package db

import (
	"fmt"
	"log"
	"time"

	"github.com/snnyvrz/bookstore/internal/config"
	"github.com/snnyvrz/bookstore/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

// Dialector picks the gorm driver for the configured DB_DRIVER.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("driver %q is not backed by gorm", cfg.DBDriver)
	}
}

// Open connects and pings once.
func Open(dialector gorm.Dialector, gormCfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// ConnectWithRetry opens the configured database, retrying while it is not
// yet reachable.
func ConnectWithRetry(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not connect to db: %w", err)
	}

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		db, openErr := Open(dialector, &gorm.Config{})
		if openErr == nil {
			return db, nil
		}
		err = openErr

		log.Printf("db not ready (attempt %d/%d): %v", attempt, defaultMaxAttempts, err)
		if attempt < defaultMaxAttempts {
			time.Sleep(defaultDelayBetweenTry)
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", defaultMaxAttempts, err)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Book{})
}
