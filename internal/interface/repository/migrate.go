package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the catalog tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(catalogModels()...); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}
	return nil
}
