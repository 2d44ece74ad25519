package calculate

import (
	"context"
	"testing"

	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecipeRepository struct {
	rows []domain.RecipeJoinRow
}

func (f *fakeRecipeRepository) GetRecipeJoinRows(ctx context.Context) ([]domain.RecipeJoinRow, error) {
	return f.rows, nil
}

func (f *fakeRecipeRepository) GetRecipeJoinRowsByID(ctx context.Context, recipeID uint) ([]domain.RecipeJoinRow, error) {
	var filtered []domain.RecipeJoinRow
	for _, row := range f.rows {
		if row.RecipeID == recipeID {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

func (f *fakeRecipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	return nil, domain.ErrRecipeNotFound
}

func (f *fakeRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return nil
}

func (f *fakeRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return nil
}

func (f *fakeRecipeRepository) UpdateRecipeImage(ctx context.Context, id uint, imageURL string) error {
	return nil
}

func (f *fakeRecipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return nil
}

func (f *fakeRecipeRepository) ReplaceRecipeIngredients(ctx context.Context, recipeID uint, lines []entities.RecipeIngredient) error {
	return nil
}

type fakeInventoryService struct {
	ownedByUser map[string]map[uint]struct{}
}

func (f *fakeInventoryService) GetOwnershipSet(ctx context.Context, userID string) (map[uint]struct{}, error) {
	if set, ok := f.ownedByUser[userID]; ok {
		return set, nil
	}
	return map[uint]struct{}{}, nil
}

func (f *fakeInventoryService) GetInventory(ctx context.Context, userID string) (domain.InventorySnapshotResponse, error) {
	return domain.InventorySnapshotResponse{}, nil
}

func (f *fakeInventoryService) EnsureInventory(ctx context.Context, userID string) error {
	return nil
}

func (f *fakeInventoryService) AddIngredient(ctx context.Context, userID string, ingredientID uint) (domain.InventoryMutationResponse, error) {
	return domain.InventoryMutationResponse{}, nil
}

func (f *fakeInventoryService) AdjustQuantity(ctx context.Context, userID string, ingredientID uint, delta float64) (domain.InventoryMutationResponse, error) {
	return domain.InventoryMutationResponse{}, nil
}

func joinRow(recipeID uint, catID uint, catName string, lineID, ingID uint, ingName string, qty float64, unitAbbr string) domain.RecipeJoinRow {
	unitID := uint(1)
	unitName := "unit"
	return domain.RecipeJoinRow{
		RecipeID:         recipeID,
		Title:            "Recipe",
		CategoryID:       catID,
		CategoryName:     catName,
		LineID:           &lineID,
		IngredientID:     &ingID,
		IngredientName:   &ingName,
		QuantityNeeded:   &qty,
		UnitID:           &unitID,
		UnitName:         &unitName,
		UnitAbbreviation: &unitAbbr,
	}
}

func TestGetAnnotatedRecipesPipeline(t *testing.T) {
	repo := &fakeRecipeRepository{
		rows: []domain.RecipeJoinRow{
			joinRow(1, 5, "Soup", 100, 10, "Salt", 1, "tsp"),
			joinRow(1, 5, "Soup", 101, 20, "Water", 2, "cup"),
		},
	}
	inv := &fakeInventoryService{
		ownedByUser: map[string]map[uint]struct{}{
			"user-1": {10: {}},
		},
	}

	service := NewCalculateService(repo, inv)

	res, err := service.GetAnnotatedRecipes(context.Background(), "user-1", 0)
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalRecipes)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, 1, res.Groups[0].MissingCount)

	recipe := res.Groups[0].Recipes[0]
	assert.Equal(t, uint(1), recipe.ID)
	assert.Equal(t, 1, recipe.MissingCount)
	require.Len(t, recipe.MissingIngredients, 1)
	assert.Equal(t, "Water", recipe.MissingIngredients[0].Ingredient.Name)
}

func TestGetAnnotatedRecipesUserWithoutInventory(t *testing.T) {
	repo := &fakeRecipeRepository{
		rows: []domain.RecipeJoinRow{
			joinRow(1, 5, "Soup", 100, 10, "Salt", 1, "tsp"),
		},
	}
	inv := &fakeInventoryService{ownedByUser: map[string]map[uint]struct{}{}}

	service := NewCalculateService(repo, inv)

	res, err := service.GetAnnotatedRecipes(context.Background(), "nobody", 0)
	require.NoError(t, err)

	// Owning nothing is not an error; every ingredient is simply missing.
	require.Len(t, res.Groups, 1)
	assert.Equal(t, 1, res.Groups[0].MissingCount)
}

func TestGetAnnotatedRecipesCategoryFilter(t *testing.T) {
	repo := &fakeRecipeRepository{
		rows: []domain.RecipeJoinRow{
			joinRow(1, 5, "Soup", 100, 10, "Salt", 1, "tsp"),
			joinRow(2, 6, "Dessert", 101, 20, "Sugar", 1, "cup"),
		},
	}
	inv := &fakeInventoryService{ownedByUser: map[string]map[uint]struct{}{}}

	service := NewCalculateService(repo, inv)

	res, err := service.GetAnnotatedRecipes(context.Background(), "user-1", 6)
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalRecipes)
	require.Len(t, res.Groups, 1)
	require.Len(t, res.Groups[0].Recipes, 1)
	assert.Equal(t, uint(2), res.Groups[0].Recipes[0].ID)
}
