package database

import (
	"fmt"
	"log"

	"clinic/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LegacyDB is the global connection to the legacy "ident" scheduling system.
// The clinic does not own this schema; it is read-only from our side.
var LegacyDB *gorm.DB

// InitLegacyDB establishes the connection to the legacy Postgres database.
func InitLegacyDB() {
	cfg := config.AppConfig
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.LegacyPGHost,
		cfg.LegacyPGUser,
		cfg.LegacyPGPassword,
		cfg.LegacyPGDatabase,
		cfg.LegacyPGPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to legacy PostgreSQL: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get legacy database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	LegacyDB = db
	log.Println("Connected to legacy PostgreSQL successfully!")
}
