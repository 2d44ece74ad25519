package migration

import (
	"fmt"
	"log"

	"github.com/koolbreezeandthetrees/ScrapsApp/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.Unit{},
		&entities.Color{},
		&entities.CategoryIngredient{},
		&entities.CategoryRecipe{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.UserInventory{},
		&entities.UserInventoryIngredient{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
