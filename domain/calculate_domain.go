package domain

var (
	MessageSuccessCalculateRecipes = "success calculate recipes"
	MessageFailedCalculateRecipes  = "failed to calculate recipes"
)

type (
	AnnotatedIngredient struct {
		ID             uint          `json:"id"`
		RecipeID       uint          `json:"recipe_id"`
		Ingredient     IngredientRef `json:"ingredient"`
		Unit           UnitResponse  `json:"unit"`
		QuantityNeeded float64       `json:"quantity_needed"`
		IsMissing      bool          `json:"is_missing"`
	}

	AnnotatedRecipe struct {
		ID                 uint                   `json:"id"`
		Title              string                 `json:"title"`
		Method             string                 `json:"method"`
		DifficultyLevel    string                 `json:"difficulty_level"`
		Time               int                    `json:"time"`
		Servings           int                    `json:"servings"`
		Image              string                 `json:"image,omitempty"`
		Category           CategoryRecipeResponse `json:"category"`
		Ingredients        []AnnotatedIngredient  `json:"ingredients"`
		MissingIngredients []AnnotatedIngredient  `json:"missing_ingredients"`
		MissingCount       int                    `json:"missing_count"`
	}

	RecipeGroup struct {
		MissingCount int               `json:"missing_count"`
		Recipes      []AnnotatedRecipe `json:"recipes"`
	}

	CalculateResponse struct {
		Groups       []RecipeGroup `json:"groups"`
		TotalRecipes int           `json:"total_recipes"`
	}
)
