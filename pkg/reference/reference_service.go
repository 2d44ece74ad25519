package reference

import (
	"context"

	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/entities"
)

type (
	ReferenceService interface {
		GetUnits(ctx context.Context) ([]domain.UnitResponse, error)
		CreateUnit(ctx context.Context, req domain.CreateUnitRequest) (domain.UnitResponse, error)
		GetColors(ctx context.Context) ([]domain.ColorResponse, error)
		CreateColor(ctx context.Context, req domain.CreateColorRequest) (domain.ColorResponse, error)
		GetIngredientCategories(ctx context.Context) ([]domain.CategoryIngredientResponse, error)
		CreateIngredientCategory(ctx context.Context, req domain.CreateIngredientCategoryRequest) (domain.CategoryIngredientResponse, error)
		GetRecipeCategories(ctx context.Context) ([]domain.CategoryRecipeResponse, error)
		CreateRecipeCategory(ctx context.Context, req domain.CreateRecipeCategoryRequest) (domain.CategoryRecipeResponse, error)
	}

	referenceService struct {
		referenceRepository ReferenceRepository
	}
)

func NewReferenceService(referenceRepository ReferenceRepository) ReferenceService {
	return &referenceService{referenceRepository: referenceRepository}
}

func (s *referenceService) GetUnits(ctx context.Context) ([]domain.UnitResponse, error) {
	units, err := s.referenceRepository.GetUnits(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.UnitResponse, 0, len(units))
	for _, u := range units {
		result = append(result, domain.UnitResponse{ID: u.ID, Name: u.Name, Abbreviation: u.Abbreviation})
	}
	return result, nil
}

func (s *referenceService) CreateUnit(ctx context.Context, req domain.CreateUnitRequest) (domain.UnitResponse, error) {
	unit := entities.Unit{Name: req.Name, Abbreviation: req.Abbreviation}
	if err := s.referenceRepository.CreateUnit(ctx, &unit); err != nil {
		return domain.UnitResponse{}, err
	}
	return domain.UnitResponse{ID: unit.ID, Name: unit.Name, Abbreviation: unit.Abbreviation}, nil
}

func (s *referenceService) GetColors(ctx context.Context) ([]domain.ColorResponse, error) {
	colors, err := s.referenceRepository.GetColors(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ColorResponse, 0, len(colors))
	for _, c := range colors {
		result = append(result, domain.ColorResponse{ID: c.ID, Name: c.Name, ColorCode: c.ColorCode})
	}
	return result, nil
}

func (s *referenceService) CreateColor(ctx context.Context, req domain.CreateColorRequest) (domain.ColorResponse, error) {
	color := entities.Color{Name: req.Name, ColorCode: req.ColorCode}
	if err := s.referenceRepository.CreateColor(ctx, &color); err != nil {
		return domain.ColorResponse{}, err
	}
	return domain.ColorResponse{ID: color.ID, Name: color.Name, ColorCode: color.ColorCode}, nil
}

func (s *referenceService) GetIngredientCategories(ctx context.Context) ([]domain.CategoryIngredientResponse, error) {
	categories, err := s.referenceRepository.GetIngredientCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryIngredientResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, domain.CategoryIngredientResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return result, nil
}

func (s *referenceService) CreateIngredientCategory(ctx context.Context, req domain.CreateIngredientCategoryRequest) (domain.CategoryIngredientResponse, error) {
	category := entities.CategoryIngredient{Name: req.Name, Description: req.Description}
	if err := s.referenceRepository.CreateIngredientCategory(ctx, &category); err != nil {
		return domain.CategoryIngredientResponse{}, err
	}
	return domain.CategoryIngredientResponse{ID: category.ID, Name: category.Name, Description: category.Description}, nil
}

func (s *referenceService) GetRecipeCategories(ctx context.Context) ([]domain.CategoryRecipeResponse, error) {
	categories, err := s.referenceRepository.GetRecipeCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryRecipeResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, domain.CategoryRecipeResponse{ID: c.ID, Name: c.Name})
	}
	return result, nil
}

func (s *referenceService) CreateRecipeCategory(ctx context.Context, req domain.CreateRecipeCategoryRequest) (domain.CategoryRecipeResponse, error) {
	category := entities.CategoryRecipe{Name: req.Name}
	if err := s.referenceRepository.CreateRecipeCategory(ctx, &category); err != nil {
		return domain.CategoryRecipeResponse{}, err
	}
	return domain.CategoryRecipeResponse{ID: category.ID, Name: category.Name}, nil
}
