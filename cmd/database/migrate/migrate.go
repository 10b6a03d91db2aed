package migration

import (
	"fmt"
	"log"

	"foodie-journal/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Review{}); err != nil {
		log.Fatalf("Error migrating review database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShopReview{}); err != nil {
		log.Fatalf("Error migrating shop review database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PromoClaim{}); err != nil {
		log.Fatalf("Error migrating promo claim database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
