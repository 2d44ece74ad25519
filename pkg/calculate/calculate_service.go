package calculate

import (
	"context"

	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/pkg/inventory"
	"github.com/koolbreezeandthetrees/ScrapsApp/pkg/recipe"
)

type (
	CalculateService interface {
		GetAnnotatedRecipes(ctx context.Context, userID string, categoryID uint) (domain.CalculateResponse, error)
	}

	calculateService struct {
		recipeRepository recipe.RecipeRepository
		inventoryService inventory.InventoryService
	}
)

func NewCalculateService(recipeRepository recipe.RecipeRepository, inventoryService inventory.InventoryService) CalculateService {
	return &calculateService{
		recipeRepository: recipeRepository,
		inventoryService: inventoryService,
	}
}

// GetAnnotatedRecipes runs the aggregate -> annotate -> rank pipeline for
// one user. The three stages are sequential, pure computations over the
// two fetches; nothing is cached between requests.
func (s *calculateService) GetAnnotatedRecipes(ctx context.Context, userID string, categoryID uint) (domain.CalculateResponse, error) {
	owned, err := s.inventoryService.GetOwnershipSet(ctx, userID)
	if err != nil {
		return domain.CalculateResponse{}, err
	}

	rows, err := s.recipeRepository.GetRecipeJoinRows(ctx)
	if err != nil {
		return domain.CalculateResponse{}, err
	}

	recipes := recipe.AggregateRows(rows)
	annotated := make([]domain.AnnotatedRecipe, 0, len(recipes))
	for _, r := range recipes {
		annotated = append(annotated, Annotate(r, owned))
	}

	groups := Rank(annotated, categoryID)

	total := 0
	for _, g := range groups {
		total += len(g.Recipes)
	}

	return domain.CalculateResponse{Groups: groups, TotalRecipes: total}, nil
}
