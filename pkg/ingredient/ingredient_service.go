package ingredient

import (
	"context"

	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/entities"
)

type (
	IngredientService interface {
		GetAllIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id uint) (domain.IngredientResponse, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		GetIngredientsByCategoryAndColor(ctx context.Context, categoryID, colorID uint) ([]domain.IngredientRef, error)
		GetColorsForCategory(ctx context.Context, categoryID uint) ([]domain.ColorResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) GetAllIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetAllIngredients(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		result = append(result, toIngredientResponse(&ing))
	}
	return result, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id uint) (domain.IngredientResponse, error) {
	ing, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ing), nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	ing := entities.Ingredient{
		Name:                 req.Name,
		UnitID:               req.UnitID,
		CategoryIngredientID: req.CategoryIngredientID,
		ColorID:              req.ColorID,
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, &ing); err != nil {
		return domain.IngredientResponse{}, err
	}
	return s.GetIngredientByID(ctx, ing.ID)
}

func (s *ingredientService) GetIngredientsByCategoryAndColor(ctx context.Context, categoryID, colorID uint) ([]domain.IngredientRef, error) {
	ingredients, err := s.ingredientRepository.GetIngredientsByCategoryAndColor(ctx, categoryID, colorID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientRef, 0, len(ingredients))
	for _, ing := range ingredients {
		result = append(result, domain.IngredientRef{ID: ing.ID, Name: ing.Name})
	}
	return result, nil
}

func (s *ingredientService) GetColorsForCategory(ctx context.Context, categoryID uint) ([]domain.ColorResponse, error) {
	colors, err := s.ingredientRepository.GetColorsForCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ColorResponse, 0, len(colors))
	for _, c := range colors {
		result = append(result, domain.ColorResponse{ID: c.ID, Name: c.Name, ColorCode: c.ColorCode})
	}
	return result, nil
}

func toIngredientResponse(ing *entities.Ingredient) domain.IngredientResponse {
	res := domain.IngredientResponse{
		ID:   ing.ID,
		Name: ing.Name,
	}
	if ing.Unit != nil {
		res.Unit = domain.UnitResponse{
			ID:           ing.Unit.ID,
			Name:         ing.Unit.Name,
			Abbreviation: ing.Unit.Abbreviation,
		}
	}
	if ing.Category != nil {
		res.Category = domain.CategoryIngredientResponse{
			ID:          ing.Category.ID,
			Name:        ing.Category.Name,
			Description: ing.Category.Description,
		}
	}
	if ing.Color != nil {
		res.Color = domain.ColorResponse{
			ID:        ing.Color.ID,
			Name:      ing.Color.Name,
			ColorCode: ing.Color.ColorCode,
		}
	}
	return res
}
