package reference

import (
	"context"

	"github.com/koolbreezeandthetrees/ScrapsApp/entities"
	"gorm.io/gorm"
)

type (
	ReferenceRepository interface {
		GetUnits(ctx context.Context) ([]entities.Unit, error)
		CreateUnit(ctx context.Context, unit *entities.Unit) error
		GetColors(ctx context.Context) ([]entities.Color, error)
		CreateColor(ctx context.Context, color *entities.Color) error
		GetIngredientCategories(ctx context.Context) ([]entities.CategoryIngredient, error)
		CreateIngredientCategory(ctx context.Context, category *entities.CategoryIngredient) error
		GetRecipeCategories(ctx context.Context) ([]entities.CategoryRecipe, error)
		CreateRecipeCategory(ctx context.Context, category *entities.CategoryRecipe) error
	}

	referenceRepository struct {
		db *gorm.DB
	}
)

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) GetUnits(ctx context.Context) ([]entities.Unit, error) {
	var units []entities.Unit
	if err := r.db.WithContext(ctx).Order("name").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *referenceRepository) CreateUnit(ctx context.Context, unit *entities.Unit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

func (r *referenceRepository) GetColors(ctx context.Context) ([]entities.Color, error) {
	var colors []entities.Color
	if err := r.db.WithContext(ctx).Order("name").Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

func (r *referenceRepository) CreateColor(ctx context.Context, color *entities.Color) error {
	return r.db.WithContext(ctx).Create(color).Error
}

func (r *referenceRepository) GetIngredientCategories(ctx context.Context) ([]entities.CategoryIngredient, error) {
	var categories []entities.CategoryIngredient
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *referenceRepository) CreateIngredientCategory(ctx context.Context, category *entities.CategoryIngredient) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *referenceRepository) GetRecipeCategories(ctx context.Context) ([]entities.CategoryRecipe, error) {
	var categories []entities.CategoryRecipe
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *referenceRepository) CreateRecipeCategory(ctx context.Context, category *entities.CategoryRecipe) error {
	return r.db.WithContext(ctx).Create(category).Error
}
