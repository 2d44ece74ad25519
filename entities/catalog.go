package entities

type Unit struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Abbreviation string `gorm:"not null" json:"abbreviation"`
}

type Color struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	ColorCode string `json:"color_code"`
}

type CategoryIngredient struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}

type CategoryRecipe struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

type Ingredient struct {
	ID                   uint   `gorm:"primaryKey" json:"id"`
	Name                 string `gorm:"not null" json:"name"`
	UnitID               uint   `json:"unit_id"`
	CategoryIngredientID uint   `json:"category_ingredient_id"`
	ColorID              uint   `json:"color_id"`

	Unit     *Unit               `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Category *CategoryIngredient `gorm:"foreignKey:CategoryIngredientID" json:"category,omitempty"`
	Color    *Color              `gorm:"foreignKey:ColorID" json:"color,omitempty"`
	Timestamp
}
