package recipe

import (
	"context"
	"errors"

	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/entities"
	"gorm.io/gorm"
)

const recipeJoinSelect = `recipes.id AS recipe_id, recipes.title, recipes.method, recipes.difficulty_level,
	recipes.time, recipes.servings, recipes.image,
	category_recipes.id AS category_id, category_recipes.name AS category_name,
	recipe_ingredients.id AS line_id, recipe_ingredients.quantity_needed,
	ingredients.id AS ingredient_id, ingredients.name AS ingredient_name,
	units.id AS unit_id, units.name AS unit_name, units.abbreviation AS unit_abbreviation`

type (
	RecipeRepository interface {
		GetRecipeJoinRows(ctx context.Context) ([]domain.RecipeJoinRow, error)
		GetRecipeJoinRowsByID(ctx context.Context, recipeID uint) ([]domain.RecipeJoinRow, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipeImage(ctx context.Context, id uint, imageURL string) error
		DeleteRecipe(ctx context.Context, id uint) error
		ReplaceRecipeIngredients(ctx context.Context, recipeID uint, lines []entities.RecipeIngredient) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) joinQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("recipes").
		Select(recipeJoinSelect).
		Joins("JOIN category_recipes ON category_recipes.id = recipes.category_recipe_id").
		Joins("LEFT JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
		Joins("LEFT JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("LEFT JOIN units ON units.id = recipe_ingredients.unit_id")
}

func (r *recipeRepository) GetRecipeJoinRows(ctx context.Context) ([]domain.RecipeJoinRow, error) {
	var rows []domain.RecipeJoinRow
	if err := r.joinQuery(ctx).
		Order("recipes.id, recipe_ingredients.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) GetRecipeJoinRowsByID(ctx context.Context, recipeID uint) ([]domain.RecipeJoinRow, error) {
	var rows []domain.RecipeJoinRow
	if err := r.joinQuery(ctx).
		Where("recipes.id = ?", recipeID).
		Order("recipe_ingredients.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) UpdateRecipeImage(ctx context.Context, id uint, imageURL string) error {
	return r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("image", imageURL).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

// ReplaceRecipeIngredients swaps the full ingredient list in one transaction:
// existing lines are deleted and the new set inserted as a batch.
func (r *recipeRepository) ReplaceRecipeIngredients(ctx context.Context, recipeID uint, lines []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}
