package migration

import (
	"fmt"
	"log"

	"Restaurant-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.MenuCategory{}); err != nil {
		log.Fatalf("Error migrating menu category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuItem{}); err != nil {
		log.Fatalf("Error migrating menu item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FranchiseApplication{}); err != nil {
		log.Fatalf("Error migrating franchise application database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Offer{}); err != nil {
		log.Fatalf("Error migrating offer database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
