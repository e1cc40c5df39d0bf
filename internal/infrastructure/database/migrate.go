package database

import (
	"fmt"

	"gorm.io/gorm"

	"gatehouse/internal/infrastructure/persistence/models"
)

// AutoMigrate creates or updates the schema for every persisted model.
// Run at startup before the server accepts traffic.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.ApplicationModel{},
		&models.ClaimModel{},
		&models.ActionLogModel{},
		&models.ShortCodeModel{},
		&models.ModmailThreadModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return nil
}
