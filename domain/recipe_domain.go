package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetRecipes           = "success get recipes"
	MessageSuccessGetRecipeDetail      = "success get recipe detail"
	MessageSuccessCreateRecipe         = "recipe created successfully"
	MessageSuccessUpdateRecipe         = "recipe updated successfully"
	MessageSuccessDeleteRecipe         = "recipe deleted successfully"
	MessageSuccessReplaceIngredients   = "recipe ingredients replaced successfully"
	MessageSuccessUploadRecipeImage    = "recipe image uploaded successfully"
	MessageSuccessGetRecipeCategories  = "success get recipe categories"

	MessageFailedGetRecipes          = "failed to get recipes"
	MessageFailedGetRecipeDetail     = "failed to get recipe detail"
	MessageFailedCreateRecipe        = "failed to create recipe"
	MessageFailedUpdateRecipe        = "failed to update recipe"
	MessageFailedDeleteRecipe        = "failed to delete recipe"
	MessageFailedReplaceIngredients  = "failed to replace recipe ingredients"
	MessageFailedUploadRecipeImage   = "failed to upload recipe image"
	MessageFailedGetRecipeCategories = "failed to get recipe categories"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	// RecipeJoinRow is one flat row of the recipe left-join query. Category
	// columns are always populated; ingredient-line columns are nil when the
	// recipe has no matching recipe_ingredients row.
	RecipeJoinRow struct {
		RecipeID        uint    `gorm:"column:recipe_id"`
		Title           string  `gorm:"column:title"`
		Method          string  `gorm:"column:method"`
		DifficultyLevel string  `gorm:"column:difficulty_level"`
		Time            int     `gorm:"column:time"`
		Servings        int     `gorm:"column:servings"`
		Image           *string `gorm:"column:image"`
		CategoryID      uint    `gorm:"column:category_id"`
		CategoryName    string  `gorm:"column:category_name"`

		LineID           *uint    `gorm:"column:line_id"`
		QuantityNeeded   *float64 `gorm:"column:quantity_needed"`
		IngredientID     *uint    `gorm:"column:ingredient_id"`
		IngredientName   *string  `gorm:"column:ingredient_name"`
		UnitID           *uint    `gorm:"column:unit_id"`
		UnitName         *string  `gorm:"column:unit_name"`
		UnitAbbreviation *string  `gorm:"column:unit_abbreviation"`
	}

	UnitResponse struct {
		ID           uint   `json:"id"`
		Name         string `json:"name"`
		Abbreviation string `json:"abbreviation"`
	}

	CategoryRecipeResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	IngredientRef struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	RecipeIngredientLine struct {
		ID             uint          `json:"id"`
		RecipeID       uint          `json:"recipe_id"`
		Ingredient     IngredientRef `json:"ingredient"`
		Unit           UnitResponse  `json:"unit"`
		QuantityNeeded float64       `json:"quantity_needed"`
	}

	FullRecipe struct {
		ID              uint                   `json:"id"`
		Title           string                 `json:"title"`
		Method          string                 `json:"method"`
		DifficultyLevel string                 `json:"difficulty_level"`
		Time            int                    `json:"time"`
		Servings        int                    `json:"servings"`
		Image           string                 `json:"image,omitempty"`
		Category        CategoryRecipeResponse `json:"category"`
		Ingredients     []RecipeIngredientLine `json:"ingredients"`
	}

	RecipeIngredientRequest struct {
		IngredientID   uint    `json:"ingredient_id" validate:"required,min=1"`
		UnitID         uint    `json:"unit_id" validate:"required,min=1"`
		QuantityNeeded float64 `json:"quantity_needed" validate:"min=0"`
	}

	CreateRecipeRequest struct {
		Title            string                    `json:"title" validate:"required"`
		Method           string                    `json:"method" validate:"required"`
		DifficultyLevel  string                    `json:"difficulty_level" validate:"required"`
		Time             int                       `json:"time" validate:"min=0"`
		Servings         int                       `json:"servings" validate:"min=0"`
		CategoryRecipeID uint                      `json:"category_recipe_id" validate:"required,min=1"`
		ImageURL         string                    `json:"image_url" validate:"omitempty,url"`
		Ingredients      []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
	}

	UpdateRecipeRequest struct {
		Title            string `json:"title" validate:"required"`
		Method           string `json:"method" validate:"required"`
		DifficultyLevel  string `json:"difficulty_level" validate:"required"`
		Time             int    `json:"time" validate:"min=0"`
		Servings         int    `json:"servings" validate:"min=0"`
		CategoryRecipeID uint   `json:"category_recipe_id" validate:"required,min=1"`
		ImageURL         string `json:"image_url" validate:"omitempty,url"`
	}

	ReplaceIngredientsRequest struct {
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required,dive"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadRecipeImageResponse struct {
		ImageURL string `json:"image_url"`
	}
)
