package database

import (
	"fmt"
	"log"

	"github.com/acl-api/models"
	"gorm.io/gorm"
)

// Migrate migrates the database schema
func Migrate(db *gorm.DB) error {
	log.Println("Migrating database schema...")
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("✅ Database schema migrated")
	return nil
}
