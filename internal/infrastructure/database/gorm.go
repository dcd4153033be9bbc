package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenGorm opens the relational store for driver ("postgres" or "sqlite").
//
// Supported env vars:
//   - DATABASE_URL (postgres DSN, required for postgres)
//   - SQLITE_PATH (sqlite file, default: offer_agent.db)
func OpenGorm(driver, databaseURL, sqlitePath string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		if databaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
		dialector = postgres.Open(databaseURL)
	case "sqlite", "":
		dialector = sqlite.Open(sqlitePath)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	log.Printf("[storage][gorm] connected driver=%s", driver)
	return db, nil
}
