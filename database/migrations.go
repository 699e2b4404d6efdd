package database

import (
	"log"

	"mit-tracker/mittrack/models"

	"gorm.io/gorm"
)

// RunMigrations runs database migrations to ensure tables are up to date
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&models.Task{}); err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	return nil
}
