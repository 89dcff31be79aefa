// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "github.com/equilibra/v1/internal/infrastructure/persistence/gorm"
	"github.com/equilibra/v1/internal/infrastructure/persistence/memory"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run auto-migration
	err = db.AutoMigrate(
		&gormModels.FoodModel{},
		&gormModels.OverrideModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the foods table with the reference catalog.
// Seeding is skipped when the table already has rows.
func SeedDatabase(db *gorm.DB) error {
	var foodCount int64
	db.Model(&gormModels.FoodModel{}).Count(&foodCount)
	if foodCount > 0 {
		return nil // Already seeded
	}

	for _, f := range memory.SeedCatalog() {
		model, err := gormModels.FoodToModel(f)
		if err != nil {
			return fmt.Errorf("failed to map seed food %q: %w", f.Name, err)
		}
		if err := db.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create seed food %q: %w", f.Name, err)
		}
	}

	return nil
}
