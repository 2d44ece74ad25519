package entities

import (
	"github.com/google/uuid"
)

type UserInventory struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID string    `gorm:"uniqueIndex;not null" json:"user_id"`

	Timestamp
}

type UserInventoryIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	InventoryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"inventory_id"`
	IngredientID uint      `gorm:"not null" json:"ingredient_id"`
	Quantity     float64   `gorm:"not null" json:"quantity"`

	Inventory  *UserInventory `gorm:"foreignKey:InventoryID" json:"-"`
	Ingredient *Ingredient    `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Timestamp
}
