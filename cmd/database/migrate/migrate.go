package migration

import (
	"Pento-Service/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.FoodReference{}); err != nil {
		log.Fatalf("Error migrating food reference database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserEntitlement{}); err != nil {
		log.Fatalf("Error migrating user entitlement database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
