package ingredient

import (
	"context"
	"errors"

	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/entities"
	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		GetAllIngredients(ctx context.Context) ([]entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error)
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientsByCategoryAndColor(ctx context.Context, categoryID, colorID uint) ([]entities.Ingredient, error)
		GetColorsForCategory(ctx context.Context, categoryID uint) ([]entities.Color, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetAllIngredients(ctx context.Context) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	if err := r.db.WithContext(ctx).
		Preload("Unit").
		Preload("Category").
		Preload("Color").
		Order("name").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error) {
	var ing entities.Ingredient
	if err := r.db.WithContext(ctx).
		Preload("Unit").
		Preload("Category").
		Preload("Color").
		Where("id = ?", id).
		First(&ing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return &ing, nil
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredientsByCategoryAndColor(ctx context.Context, categoryID, colorID uint) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("category_ingredient_id = ? AND color_id = ?", categoryID, colorID).
		Order("name").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetColorsForCategory returns only colors that appear on at least one
// ingredient of the category.
func (r *ingredientRepository) GetColorsForCategory(ctx context.Context, categoryID uint) ([]entities.Color, error) {
	var colors []entities.Color
	if err := r.db.WithContext(ctx).
		Table("ingredients").
		Select("colors.id AS id, colors.name AS name, colors.color_code AS color_code").
		Joins("JOIN colors ON colors.id = ingredients.color_id").
		Where("ingredients.category_ingredient_id = ?", categoryID).
		Group("colors.id, colors.name, colors.color_code").
		Order("colors.name").
		Scan(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}
