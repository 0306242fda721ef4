package database

import (
	"context"
	"fmt"
	"time"

	"standup-api-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens the Postgres connection pool and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	return Open(postgres.Open(dsn), opts)
}

// Open opens a pool on any gorm dialector. Tests use it with the sqlite driver.
func Open(dialector gorm.Dialector, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialector.Name(), err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates the tables. Parents first so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	all := []interface{}{
		&models.Team{},
		&models.User{},
		&models.Standup{},
		&models.Activity{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Ping checks that the pool can reach the database within ctx
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases every pooled connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
