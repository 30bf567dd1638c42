package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hanuchaudhary/Job-Portal/internal/models"
)

// Connect opens the shared connection pool and migrates the schema. The
// returned handle is created once at startup; request-scoped sessions are
// derived from it with WithContext, never by reopening the client.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	log.Println("Database connection established")

	// Migration: creates tables and the cascade foreign keys declared on the models.
	if err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
		&models.SavedJob{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}
