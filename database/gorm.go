package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/projectdesk-api/models"
	"github.com/projectdesk-api/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Models lists every table the API owns, parents before children
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.GitRepository{},
		&models.ProjectLink{},
		&models.HelpDocument{},
		&models.AccessRequest{},
	}
}

// newLogger routes gorm's query log through the shared logrus logger
func newLogger() logger.Interface {
	return logger.New(
		utils.Logger,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)
}

// Open connects to postgres and configures the connection pool
func Open(dbURL string) (*gorm.DB, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Initialize sets up the shared GORM connection and migrates the schema
func Initialize(dbURL string) (*gorm.DB, error) {
	db, err := Open(dbURL)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	var version string
	if err := db.Raw("SELECT version()").Scan(&version).Error; err == nil {
		utils.Logger.Infof("Database: %s", version)
	}
	utils.Logger.Info("Connected to database")

	DB = db
	return db, nil
}
