package storage

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the catalog database and runs migrations. The handle is
// returned to the caller rather than stashed in a package global so stores
// can be constructed explicitly.
func Connect() (*gorm.DB, error) {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		return nil, errors.New("DB_CONNECTION_STRING environment variable is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error connecting to db: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the experiences table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&experienceRow{}); err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}
	return nil
}
