package config

import (
	"fmt"
	"time"

	"Restaurant-Backend/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// cached process-wide handle; replaced on ping failure. Replacement is
// idempotent, so no lock guards it.
var db *gorm.DB

func ConnectDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable connect_timeout=5",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	handle, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := handle.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(45 * time.Second)

	db = handle
	return db, nil
}

// EnsureDB returns the cached handle when it still answers a ping, otherwise
// reconnects. A failed reconnect propagates; the next caller tries again.
func EnsureDB() (*gorm.DB, error) {
	if db != nil {
		sqlDB, err := db.DB()
		if err == nil && sqlDB.Ping() == nil {
			return db, nil
		}
	}
	return ConnectDB()
}
