package database

import (
	"errors"
	"fmt"

	"github.com/projectdesk-api/models"
	"github.com/projectdesk-api/utils"
	"gorm.io/gorm"
)

// DBConnection represents a named database connection
type DBConnection struct {
	DB     *gorm.DB
	Name   string
	DbURL  string
	Models []interface{}
}

// NewDBConnection creates a new database connection
func NewDBConnection(name, dbURL string) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	db, err := Open(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	utils.Logger.Infof("Connected to %s database", name)

	return &DBConnection{
		DB:     db,
		Name:   name,
		DbURL:  dbURL,
		Models: Models(),
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	utils.Logger.Infof("Migrating %s database schema...", c.Name)
	if err := c.DB.AutoMigrate(c.Models...); err != nil {
		return fmt.Errorf("failed to migrate %s database: %w", c.Name, err)
	}
	utils.Logger.Infof("%s database schema migrated", c.Name)
	return nil
}

// copyTable copies every row of T, including soft-deleted ones, from source to target
func copyTable[T any](source, target *gorm.DB, label string) error {
	var rows []T
	if err := source.Unscoped().Order("id").Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to fetch %s: %w", label, err)
	}
	utils.Logger.Infof("Found %d %s to migrate", len(rows), label)
	if len(rows) == 0 {
		return nil
	}
	if err := target.Omit("Members", "Repositories", "Links", "Documents", "User", "Project").Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to migrate %s: %w", label, err)
	}
	return nil
}

// MigrateDataBetweenDatabases copies all rows from source to target in dependency order
func MigrateDataBetweenDatabases(source, target *DBConnection) error {
	utils.Logger.Info("Starting data migration from source to target...")

	return target.DB.Transaction(func(tx *gorm.DB) error {
		if err := copyTable[models.User](source.DB, tx, "users"); err != nil {
			return err
		}
		if err := copyTable[models.Project](source.DB, tx, "projects"); err != nil {
			return err
		}

		// Project membership join table
		var members []map[string]interface{}
		if err := source.DB.Table("project_members").Find(&members).Error; err != nil {
			return fmt.Errorf("failed to fetch project members: %w", err)
		}
		if len(members) > 0 {
			if err := tx.Table("project_members").Create(&members).Error; err != nil {
				return fmt.Errorf("failed to migrate project members: %w", err)
			}
		}

		if err := copyTable[models.GitRepository](source.DB, tx, "repositories"); err != nil {
			return err
		}
		if err := copyTable[models.ProjectLink](source.DB, tx, "links"); err != nil {
			return err
		}
		if err := copyTable[models.HelpDocument](source.DB, tx, "help documents"); err != nil {
			return err
		}
		if err := copyTable[models.AccessRequest](source.DB, tx, "access requests"); err != nil {
			return err
		}

		utils.Logger.Info("Data migration completed successfully")
		return nil
	})
}
