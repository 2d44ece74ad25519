package domain

import "errors"

var (
	MessageSuccessGetInventory    = "inventory retrieved successfully"
	MessageSuccessCreateInventory = "inventory created successfully"
	MessageSuccessAddIngredient   = "ingredient added to inventory"
	MessageSuccessAdjustQuantity  = "inventory quantity updated"

	MessageFailedGetInventory    = "failed to retrieve inventory"
	MessageFailedCreateInventory = "failed to create inventory"
	MessageFailedAddIngredient   = "failed to add ingredient to inventory"
	MessageFailedAdjustQuantity  = "failed to update inventory quantity"

	ErrNoInventory             = errors.New("user inventory not found")
	ErrIngredientNotInInventory = errors.New("ingredient not found in inventory")
)

type (
	// InventoryItemRow is the flat row shape of the inventory join query.
	InventoryItemRow struct {
		ID               uint    `gorm:"column:id"`
		Name             string  `gorm:"column:name"`
		Quantity         float64 `gorm:"column:quantity"`
		CategoryID       uint    `gorm:"column:category_id"`
		UnitID           uint    `gorm:"column:unit_id"`
		UnitName         string  `gorm:"column:unit_name"`
		UnitAbbreviation string  `gorm:"column:unit_abbreviation"`
	}

	InventoryItem struct {
		ID         uint         `json:"id"`
		Name       string       `json:"name"`
		Quantity   float64      `json:"quantity"`
		Unit       UnitResponse `json:"unit"`
		CategoryID uint         `json:"category_id"`
	}

	CategoryIngredientResponse struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	InventorySnapshotResponse struct {
		Categories []CategoryIngredientResponse `json:"categories"`
		Items      map[uint][]InventoryItem     `json:"items_by_category"`
	}

	AddInventoryItemRequest struct {
		IngredientID uint `json:"ingredient_id" validate:"required,min=1"`
	}

	AdjustQuantityRequest struct {
		Delta float64 `json:"delta" validate:"required"`
	}

	InventoryMutationResponse struct {
		Success     bool    `json:"success"`
		NewQuantity float64 `json:"new_quantity"`
	}
)
