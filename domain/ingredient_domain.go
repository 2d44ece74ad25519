package domain

import "errors"

var (
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessGetIngredient    = "success get ingredient detail"
	MessageSuccessCreateIngredient = "ingredient created successfully"

	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedGetIngredient    = "failed to get ingredient detail"
	MessageFailedCreateIngredient = "failed to create ingredient"

	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	ColorResponse struct {
		ID        uint   `json:"id"`
		Name      string `json:"name"`
		ColorCode string `json:"color_code"`
	}

	IngredientResponse struct {
		ID       uint                       `json:"id"`
		Name     string                     `json:"name"`
		Unit     UnitResponse               `json:"unit"`
		Category CategoryIngredientResponse `json:"category"`
		Color    ColorResponse              `json:"color"`
	}

	CreateIngredientRequest struct {
		Name                 string `json:"name" validate:"required"`
		UnitID               uint   `json:"unit_id" validate:"required,min=1"`
		CategoryIngredientID uint   `json:"category_ingredient_id" validate:"required,min=1"`
		ColorID              uint   `json:"color_id" validate:"required,min=1"`
	}
)
