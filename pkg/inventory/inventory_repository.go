package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	InventoryRepository interface {
		GetInventoryByUserID(ctx context.Context, userID string) (*entities.UserInventory, error)
		CreateInventory(ctx context.Context, inventory *entities.UserInventory) error
		GetOwnedIngredientIDs(ctx context.Context, inventoryID uuid.UUID) ([]uint, error)
		GetInventoryItems(ctx context.Context, inventoryID uuid.UUID) ([]domain.InventoryItemRow, error)
		GetIngredientCategories(ctx context.Context) ([]entities.CategoryIngredient, error)
		AddIngredient(ctx context.Context, inventoryID uuid.UUID, ingredientID uint) (float64, error)
		AdjustRecordQuantity(ctx context.Context, inventoryID uuid.UUID, ingredientID uint, delta float64) (float64, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetInventoryByUserID(ctx context.Context, userID string) (*entities.UserInventory, error) {
	var inventory entities.UserInventory
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&inventory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoInventory
		}
		return nil, err
	}
	return &inventory, nil
}

func (r *inventoryRepository) CreateInventory(ctx context.Context, inventory *entities.UserInventory) error {
	return r.db.WithContext(ctx).Create(inventory).Error
}

func (r *inventoryRepository) GetOwnedIngredientIDs(ctx context.Context, inventoryID uuid.UUID) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&entities.UserInventoryIngredient{}).
		Where("inventory_id = ?", inventoryID).
		Pluck("ingredient_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *inventoryRepository) GetInventoryItems(ctx context.Context, inventoryID uuid.UUID) ([]domain.InventoryItemRow, error) {
	var rows []domain.InventoryItemRow
	if err := r.db.WithContext(ctx).
		Table("user_inventory_ingredients").
		Select(`ingredients.id AS id, ingredients.name AS name,
			user_inventory_ingredients.quantity AS quantity,
			ingredients.category_ingredient_id AS category_id,
			units.id AS unit_id, units.name AS unit_name, units.abbreviation AS unit_abbreviation`).
		Joins("JOIN ingredients ON ingredients.id = user_inventory_ingredients.ingredient_id").
		Joins("JOIN units ON units.id = ingredients.unit_id").
		Where("user_inventory_ingredients.inventory_id = ?", inventoryID).
		Order("ingredients.name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *inventoryRepository) GetIngredientCategories(ctx context.Context) ([]entities.CategoryIngredient, error) {
	var categories []entities.CategoryIngredient
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// AddIngredient increments the record's quantity by one, creating it with
// quantity 1 when absent. The row lock serializes concurrent adds for the
// same (inventory, ingredient) pair.
func (r *inventoryRepository) AddIngredient(ctx context.Context, inventoryID uuid.UUID, ingredientID uint) (float64, error) {
	var newQuantity float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record entities.UserInventoryIngredient
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("inventory_id = ? AND ingredient_id = ?", inventoryID, ingredientID).
			First(&record).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = entities.UserInventoryIngredient{
				ID:           uuid.New(),
				InventoryID:  inventoryID,
				IngredientID: ingredientID,
				Quantity:     1,
			}
			newQuantity = 1
			return tx.Create(&record).Error
		}
		if err != nil {
			return err
		}

		newQuantity = record.Quantity + 1
		return tx.Model(&entities.UserInventoryIngredient{}).
			Where("id = ?", record.ID).
			Update("quantity", newQuantity).Error
	})
	if err != nil {
		return 0, err
	}
	return newQuantity, nil
}

// applyDelta computes the post-adjustment quantity. A result at or below
// zero floors to 0 and asks for the record to be removed; a record never
// persists with quantity <= 0.
func applyDelta(current, delta float64) (newQuantity float64, remove bool) {
	newQuantity = current + delta
	if newQuantity <= 0 {
		return 0, true
	}
	return newQuantity, false
}

// AdjustRecordQuantity applies a delta under a row lock so concurrent
// adjustments to the same record serialize instead of clobbering each other.
func (r *inventoryRepository) AdjustRecordQuantity(ctx context.Context, inventoryID uuid.UUID, ingredientID uint, delta float64) (float64, error) {
	var newQuantity float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record entities.UserInventoryIngredient
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("inventory_id = ? AND ingredient_id = ?", inventoryID, ingredientID).
			First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrIngredientNotInInventory
			}
			return err
		}

		updated, remove := applyDelta(record.Quantity, delta)
		newQuantity = updated
		if remove {
			return tx.Where("id = ?", record.ID).Delete(&entities.UserInventoryIngredient{}).Error
		}

		return tx.Model(&entities.UserInventoryIngredient{}).
			Where("id = ?", record.ID).
			Update("quantity", updated).Error
	})
	if err != nil {
		return 0, err
	}
	return newQuantity, nil
}
