package entities

type Recipe struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Title            string `gorm:"not null" json:"title"`
	Method           string `gorm:"type:text" json:"method"`
	DifficultyLevel  string `json:"difficulty_level"`
	Time             int    `json:"time"`
	Servings         int    `json:"servings"`
	Image            string `json:"image,omitempty"`
	CategoryRecipeID uint   `gorm:"not null" json:"category_recipe_id"`

	Category *CategoryRecipe `gorm:"foreignKey:CategoryRecipeID" json:"category,omitempty"`
	Timestamp
}

type RecipeIngredient struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	RecipeID       uint    `gorm:"not null;index" json:"recipe_id"`
	IngredientID   uint    `gorm:"not null" json:"ingredient_id"`
	UnitID         uint    `json:"unit_id"`
	QuantityNeeded float64 `json:"quantity_needed"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Unit       *Unit       `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}
