package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amrulpxl/erpcore-docs/internal/models"
)

// Connect opens the SQLite database at path, creating the parent directory
// if it does not exist. The handle is returned to the caller and injected
// where needed; there is no package-level singleton.
func Connect(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	return db, nil
}

// Migrate creates or updates the three content tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Rule{},
		&models.ChangelogEntry{},
		&models.AdminUser{},
	)
}
