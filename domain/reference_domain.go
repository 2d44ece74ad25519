package domain

var (
	MessageSuccessGetUnits                = "success get units"
	MessageSuccessCreateUnit              = "unit created successfully"
	MessageSuccessGetColors               = "success get colors"
	MessageSuccessCreateColor             = "color created successfully"
	MessageSuccessGetIngredientCategories = "success get ingredient categories"
	MessageSuccessCreateCategory          = "category created successfully"

	MessageFailedGetUnits                = "failed to get units"
	MessageFailedCreateUnit              = "failed to create unit"
	MessageFailedGetColors               = "failed to get colors"
	MessageFailedCreateColor             = "failed to create color"
	MessageFailedGetIngredientCategories = "failed to get ingredient categories"
	MessageFailedCreateCategory          = "failed to create category"
)

type (
	CreateUnitRequest struct {
		Name         string `json:"name" validate:"required"`
		Abbreviation string `json:"abbreviation" validate:"required"`
	}

	CreateColorRequest struct {
		Name      string `json:"name" validate:"required"`
		ColorCode string `json:"color_code" validate:"omitempty,hexcolor"`
	}

	CreateIngredientCategoryRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	CreateRecipeCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}
)
