package main

import (
	"fmt"

	"standup-api-backend/internal/config"
	"standup-api-backend/internal/database"
	"standup-api-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"
	"gorm.io/gorm"
)

// bootstrap loads configuration, sets up logging and opens the database
func bootstrap() (*config.Config, *gorm.DB, error) {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Setup(cfg.LogLevel, nil)

	// Match GOMAXPROCS to the container CPU quota
	if _, err := maxprocs.Set(maxprocs.Logger(logrus.Debugf)); err != nil {
		logrus.WithError(err).Warn("couldn't set automaxprocs")
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
		SkipMigrate:  !cfg.AutoMigrate,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, db, nil
}
