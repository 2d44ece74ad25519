package recipe

import (
	"context"
	"fmt"

	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/entities"
	"github.com/koolbreezeandthetrees/ScrapsApp/internal/utils/storage"
)

type (
	RecipeService interface {
		GetAllRecipes(ctx context.Context) ([]domain.FullRecipe, error)
		GetRecipeByID(ctx context.Context, id uint) (domain.FullRecipe, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.FullRecipe, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) error
		DeleteRecipe(ctx context.Context, id uint) error
		ReplaceIngredients(ctx context.Context, id uint, req domain.ReplaceIngredientsRequest) error
		UploadRecipeImage(ctx context.Context, id uint, req domain.UploadRecipeImageRequest) (domain.UploadRecipeImageResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) GetAllRecipes(ctx context.Context) ([]domain.FullRecipe, error) {
	rows, err := s.recipeRepository.GetRecipeJoinRows(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateRows(rows), nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uint) (domain.FullRecipe, error) {
	rows, err := s.recipeRepository.GetRecipeJoinRowsByID(ctx, id)
	if err != nil {
		return domain.FullRecipe{}, err
	}

	recipes := AggregateRows(rows)
	if len(recipes) == 0 {
		return domain.FullRecipe{}, domain.ErrRecipeNotFound
	}
	return recipes[0], nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.FullRecipe, error) {
	recipe := entities.Recipe{
		Title:            req.Title,
		Method:           req.Method,
		DifficultyLevel:  req.DifficultyLevel,
		Time:             req.Time,
		Servings:         req.Servings,
		Image:            req.ImageURL,
		CategoryRecipeID: req.CategoryRecipeID,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		return domain.FullRecipe{}, err
	}

	if len(req.Ingredients) > 0 {
		lines := buildIngredientLines(recipe.ID, req.Ingredients)
		if err := s.recipeRepository.ReplaceRecipeIngredients(ctx, recipe.ID, lines); err != nil {
			return domain.FullRecipe{}, err
		}
	}

	return s.GetRecipeByID(ctx, recipe.ID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return err
	}

	recipe.Title = req.Title
	recipe.Method = req.Method
	recipe.DifficultyLevel = req.DifficultyLevel
	recipe.Time = req.Time
	recipe.Servings = req.Servings
	recipe.CategoryRecipeID = req.CategoryRecipeID
	if req.ImageURL != "" {
		recipe.Image = req.ImageURL
	}

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) ReplaceIngredients(ctx context.Context, id uint, req domain.ReplaceIngredientsRequest) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		return err
	}

	lines := buildIngredientLines(id, req.Ingredients)
	return s.recipeRepository.ReplaceRecipeIngredients(ctx, id, lines)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id uint, req domain.UploadRecipeImageRequest) (domain.UploadRecipeImageResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	key := fmt.Sprintf("recipes/%d", id)
	imageURL, err := s.s3.UploadFile(ctx, key, req.Image)
	if err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	if err := s.recipeRepository.UpdateRecipeImage(ctx, id, imageURL); err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	return domain.UploadRecipeImageResponse{ImageURL: imageURL}, nil
}

func buildIngredientLines(recipeID uint, reqs []domain.RecipeIngredientRequest) []entities.RecipeIngredient {
	lines := make([]entities.RecipeIngredient, 0, len(reqs))
	for _, ing := range reqs {
		lines = append(lines, entities.RecipeIngredient{
			RecipeID:       recipeID,
			IngredientID:   ing.IngredientID,
			UnitID:         ing.UnitID,
			QuantityNeeded: ing.QuantityNeeded,
		})
	}
	return lines
}
